package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TdsScheme identifies the third-party deposit protection scheme holding the
// tenant's deposit.
type TdsScheme string

const (
	SchemeDPS        TdsScheme = "DPS"
	SchemeTDS        TdsScheme = "TDS"
	SchemeMyDeposits TdsScheme = "MyDeposits"
)

// Schemes lists every accepted deposit protection scheme.
var Schemes = []TdsScheme{SchemeDPS, SchemeTDS, SchemeMyDeposits}

// TenancyStatus is the lifecycle state of a tenancy. It only ever advances.
type TenancyStatus string

const (
	TenancyOfferGenerated TenancyStatus = "offer_generated"
	TenancyDeedSigned     TenancyStatus = "deed_signed"
	TenancyPaidOut        TenancyStatus = "paid_out"
)

// OfferStatus is the lifecycle state of an offer.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferExpired  OfferStatus = "expired"
)

// DisplayStatus is the tenant-facing status derived from the latest offer.
type DisplayStatus string

const (
	StatusProcessing DisplayStatus = "Processing"
	StatusOfferReady DisplayStatus = "Offer Ready"
	StatusCompleted  DisplayStatus = "Completed"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrOfferNotPending = errors.New("offer is no longer pending")
	ErrOfferExpired    = errors.New("offer has expired")
)

// Property is the rented address an application is made against. Created once
// per application and immutable thereafter.
type Property struct {
	ID          uuid.UUID
	AddressLine string
	City        string
	Postcode    string
	CreatedAt   time.Time
}

// Tenancy links a user to a property and carries the deposit details the
// offer is priced from.
type Tenancy struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	PropertyID     uuid.UUID
	DepositAmount  int64 // whole pounds
	TdsScheme      TdsScheme
	TdsReference   string
	TenancyEndDate time.Time
	CleaningNeeded bool
	PaintingNeeded bool
	HolesNeeded    bool
	FlooringNeeded bool
	Status         TenancyStatus
	CreatedAt      time.Time
}

// Offer is a cash-advance proposal against a tenancy's deposit. The derived
// amounts are persisted so the quote shown at submission time is the quote
// that gets paid.
type Offer struct {
	ID                  uuid.UUID
	TenancyID           uuid.UUID
	OwnerID             uuid.UUID // tenancy owner, loaded via JOIN
	EstimatedRepairCost int64
	ServiceFee          int64
	AdvanceAmount       int64
	Status              OfferStatus
	ExpiresAt           time.Time
	Signature           []byte
	SignedAt            *time.Time
	CreatedAt           time.Time
}

// Contract is the signed Deed of Assignment record, created exactly once when
// the tenant accepts an offer.
type Contract struct {
	ID        uuid.UUID
	OfferID   uuid.UUID
	Signature []byte
	Status    string
	SignedAt  time.Time
	CreatedAt time.Time
}

// Application bundles a tenancy with its property and most recent offer.
type Application struct {
	Tenancy    Tenancy
	Property   Property
	Offer      *Offer
	OwnerEmail string // loaded via JOIN
}

// DisplayStatus derives the tenant-facing status for this application.
func (a *Application) DisplayStatus() DisplayStatus {
	switch {
	case a.Offer == nil:
		return StatusProcessing
	case a.Offer.Status == OfferAccepted:
		return StatusCompleted
	case a.Offer.Status == OfferPending:
		return StatusOfferReady
	default:
		return StatusProcessing
	}
}

// Summary aggregates a user's applications for the dashboard.
type Summary struct {
	Applications int64
	WithOffers   int64
	TotalAdvance int64
}

// Contact is where notifications for an application go.
type Contact struct {
	Email string
	Name  string
}
