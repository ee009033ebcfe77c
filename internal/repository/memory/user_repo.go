package memory

import (
	"context"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/identifier"
)

type userRepo struct {
	users *collection[domain.User]
	newID identifier.Generator
}

func NewUserRepository(newID identifier.Generator) domain.UserRepository {
	return &userRepo{
		users: newCollection(func(u domain.User) domain.User { return u }),
		newID: newID,
	}
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, bool) {
	user, ok := r.users.get(id)
	if !ok {
		return nil, false
	}
	return &user, true
}

// GetByUsername is an exact, case-sensitive match. Uniqueness of usernames
// is not enforced here, so the earliest inserted match wins.
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, bool) {
	user, ok := r.users.find(func(u domain.User) bool {
		return u.Username == username
	})
	if !ok {
		return nil, false
	}
	return &user, true
}

func (r *userRepo) Create(ctx context.Context, in domain.UserInput) *domain.User {
	user := r.users.create(r.newID, func(id string) domain.User {
		return domain.NewUser(id, in)
	})
	return &user
}
