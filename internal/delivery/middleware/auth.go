package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"contact-service/internal/infrastructure"
)

// UserIDKey is the echo context key under which the session guard
// stores the authenticated user's id.
const UserIDKey = "userID"

// Auth gates protected routes behind a valid session token. The caller
// never learns which check failed; every failure is 403 Invalid Token.
func Auth(jwt *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")

			userID, err := jwt.VerifyToken(token)
			if err != nil {
				log.Warn("AUTH FAILURE - Invalid Token Attempt")
				return c.String(http.StatusForbidden, "Invalid Token")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
