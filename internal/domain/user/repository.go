package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}
