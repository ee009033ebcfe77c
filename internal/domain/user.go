package domain

import (
	"context"
)

// User is an operator account. The password is stored as given; hashing
// belongs to an auth layer this service does not have.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type UserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewUser(id string, in UserInput) User {
	return User{
		ID:       id,
		Username: in.Username,
		Password: in.Password,
	}
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, bool)
	GetByUsername(ctx context.Context, username string) (*User, bool)
	Create(ctx context.Context, in UserInput) *User
}
