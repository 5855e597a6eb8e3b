// Package app holds the application services and business logic.
package app

import (
	"context"
	"strings"

	"healthtracker/internal/domain"
)

// UserService encapsulates user management use cases.
type UserService struct {
	repo domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create validates and stores a new user. Names are unique.
func (s *UserService) Create(ctx context.Context, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalid("name must not be empty")
	}
	return s.repo.CreateUser(ctx, name)
}

// Get returns the user with the given ID.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetUser(ctx, id)
}

// GetByName returns the user with the given name.
func (s *UserService) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return s.repo.GetUserByName(ctx, strings.TrimSpace(name))
}

// List returns all users in ascending ID order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

// Update renames a user. A nil name leaves the user unchanged.
func (s *UserService) Update(ctx context.Context, id int64, name *string) (*domain.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return nil, domain.Invalid("name must not be empty")
		}
		u.Name = n
	}
	if err := s.repo.UpdateUser(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes a user together with their entries, goals and meal plans.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}
