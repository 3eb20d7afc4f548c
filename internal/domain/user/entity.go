package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. Accounts are seeded or provisioned out of
// band; there is no self-serve registration.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
