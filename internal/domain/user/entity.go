package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Avatar       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
