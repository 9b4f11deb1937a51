package user

import (
	"context"

	"backend-tracking/internal/domain/pagination"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Search(ctx context.Context, filter SearchFilter, page pagination.Request) ([]*User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
