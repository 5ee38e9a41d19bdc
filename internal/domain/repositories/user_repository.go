package repositories

import (
	"context"

	"contact-service/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	AddContact(ctx context.Context, id string, contact domain.Contact) error
}
