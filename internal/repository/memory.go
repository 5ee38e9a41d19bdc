package repository

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"contact-service/internal/domain"
)

// MemoryRepo is an in-memory UserRepository with the same uniqueness
// and not-found semantics as UserRepo. It backs tests and local runs
// that have no MongoDB at hand.
type MemoryRepo struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	emails map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:  make(map[string]*domain.User),
		emails: make(map[string]string),
	}
}

func (r *MemoryRepo) CreateUser(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emails[user.Email]; exists {
		return fmt.Errorf("%w: %s", domain.ErrEmailTaken, user.Email)
	}
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	r.users[user.ID] = cloneUser(user)
	r.emails[user.Email] = user.ID
	return nil
}

func (r *MemoryRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.users[id]), nil
}

func (r *MemoryRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *MemoryRepo) AddContact(_ context.Context, id string, contact domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Contacts = append(user.Contacts, contact)
	return nil
}

// Delete removes a user. Only tests use it, to simulate an id from a
// still-valid token that no longer resolves.
func (r *MemoryRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[id]; ok {
		delete(r.emails, user.Email)
		delete(r.users, id)
	}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Contacts = append([]domain.Contact{}, u.Contacts...)
	return &clone
}
