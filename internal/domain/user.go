// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User is a person whose intake is tracked.
type User struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	CreateUser(ctx context.Context, name string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByName(ctx context.Context, name string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, u User) error
	DeleteUser(ctx context.Context, id int64) error
}
