package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Location     string
	Phone        string
	Role         string
	CreatedAt    time.Time
}

// OtpRecord is one issued one-time password. Records are append-only:
// a record flips from unused to used exactly once and is never deleted.
// ExpiresAt is stored as text ("2006-01-02 15:04:05", UTC) and parsed at
// verification time.
type OtpRecord struct {
	ID        uuid.UUID
	Email     string
	Code      string
	ExpiresAt string
	Used      bool
	CreatedAt time.Time
}
