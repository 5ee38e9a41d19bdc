package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"

	"contact-service/internal/domain"
	"contact-service/internal/domain/repositories"
	"contact-service/internal/infrastructure"
)

type UserUsecase struct {
	repo repositories.UserRepository
	jwt  *infrastructure.JWTService
}

func NewUserUsecase(repo repositories.UserRepository, jwt *infrastructure.JWTService) *UserUsecase {
	return &UserUsecase{
		repo: repo,
		jwt:  jwt,
	}
}

// Signup hashes the password and persists a new user with an empty
// contact list. Callers only ever see ErrSignupFailed; the cause stays
// in the server log (and wrapped inside the returned error).
func (uc *UserUsecase) Signup(ctx context.Context, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("SIGNUP FAIL - HASHING: %s: %v", email, err)
		return fmt.Errorf("%w: %w", domain.ErrSignupFailed, err)
	}

	user := domain.NewUser(email, string(hashed))
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		log.Errorf("SIGNUP FAIL: %s: %v", email, err)
		return fmt.Errorf("%w: %w", domain.ErrSignupFailed, err)
	}

	log.Infof("NEW USER CREATED: %s", email)
	return nil
}

// Login verifies credentials and issues a session token. Every outcome
// is logged with the attempted email.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		log.Infof("LOGIN FAIL - USER NOT FOUND: %s", email)
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		log.Errorf("LOGIN FAIL - LOOKUP: %s: %v", email, err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Infof("LOGIN FAIL - WRONG PASSWORD: %s", email)
		return "", domain.ErrWrongPassword
	}

	token, err := uc.jwt.GenerateToken(user.ID)
	if err != nil {
		log.Errorf("LOGIN FAIL - TOKEN: %s: %v", email, err)
		return "", err
	}

	log.Infof("LOGIN SUCCESS: %s", email)
	return token, nil
}

// AddContact appends a contact to the user's list, preserving insertion
// order. An id that no longer resolves is an explicit ErrUserNotFound.
func (uc *UserUsecase) AddContact(ctx context.Context, userID, name, note string) error {
	user, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	contact := domain.Contact{Name: name, Note: note}
	if err := uc.repo.AddContact(ctx, userID, contact); err != nil {
		return err
	}

	log.Infof("CONTACT ADDED FOR USER: %s", user.Email)
	return nil
}

// ListContacts returns the user's contacts verbatim, in stored order.
func (uc *UserUsecase) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	user, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Contacts == nil {
		return []domain.Contact{}, nil
	}
	return user.Contacts, nil
}
