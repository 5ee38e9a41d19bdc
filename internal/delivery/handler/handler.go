package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"contact-service/internal/delivery/middleware"
	"contact-service/internal/domain"
	"contact-service/internal/usecase"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type contactRequest struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// Handler maps usecase outcomes onto the fixed wire contract. Client
// messages stay deliberately non-specific; the distinct causes live in
// the server log.
type Handler struct {
	uc *usecase.UserUsecase
}

func NewHandler(uc *usecase.UserUsecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid input")
	}

	if err := h.uc.Signup(c.Request().Context(), req.Email, req.Password); err != nil {
		return c.String(http.StatusInternalServerError, "Signup Failed")
	}
	return c.String(http.StatusOK, "User Created")
}

func (h *Handler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid input")
	}

	token, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.String(http.StatusUnauthorized, "User not found")
	case errors.Is(err, domain.ErrWrongPassword):
		return c.String(http.StatusUnauthorized, "Wrong password")
	case err != nil:
		return c.String(http.StatusInternalServerError, "Login Failed")
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) AddContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid input")
	}

	userID, _ := c.Get(middleware.UserIDKey).(string)
	err := h.uc.AddContact(c.Request().Context(), userID, req.Name, req.Note)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.String(http.StatusNotFound, "User not found")
	case err != nil:
		return c.String(http.StatusInternalServerError, "Save Failed")
	}

	return c.String(http.StatusOK, "Saved")
}

func (h *Handler) ListContacts(c echo.Context) error {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	contacts, err := h.uc.ListContacts(c.Request().Context(), userID)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.String(http.StatusNotFound, "User not found")
	case err != nil:
		return c.String(http.StatusInternalServerError, "Lookup Failed")
	}

	return c.JSON(http.StatusOK, contacts)
}
