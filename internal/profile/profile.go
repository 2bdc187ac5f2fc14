package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// Profile holds the tenant's contact and payout details. Upserted
// independently of the application flow.
type Profile struct {
	UserID            uuid.UUID
	FullName          string
	Phone             string
	BankSortCode      string
	BankAccountNumber string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
