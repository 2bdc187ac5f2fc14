package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=application
type Repository interface {
	// CreateApplication persists the property, tenancy and offer of a new
	// application atomically.
	CreateApplication(ctx context.Context, app *Application) error
	GetOffer(ctx context.Context, id uuid.UUID) (*Offer, error)
	// AcceptOffer marks a pending offer accepted, records the signature and
	// creates the contract atomically. Returns ErrOfferNotPending if the
	// offer was no longer pending when the update landed.
	AcceptOffer(ctx context.Context, params AcceptParams) (*Contract, error)
	ExpireOffer(ctx context.Context, id uuid.UUID) error

	LatestApplication(ctx context.Context, userID uuid.UUID) (*Application, error)
	ListApplications(ctx context.Context, filter ListFilter) ([]*Application, error)
	MarkPaidOut(ctx context.Context, tenancyID uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*Summary, error)
	OwnerContact(ctx context.Context, userID uuid.UUID) (*Contact, error)
}

// Notifier delivers transactional e-mail. Failures are logged by the service
// and never fail the triggering operation.
type Notifier interface {
	OfferCreated(ctx context.Context, to Contact, advanceAmount int64, expiresAt time.Time) error
	DeedSigned(ctx context.Context, to Contact, advanceAmount int64) error
}

type AcceptParams struct {
	OfferID   uuid.UUID
	Signature []byte
	SignedAt  time.Time
}

type ListFilter struct {
	TenancyStatus *TenancyStatus
}

type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Submit validates the application form and, on success, creates the
// property, tenancy and pending offer in one transaction. The offer-created
// e-mail is best effort.
func (s *Service) Submit(ctx context.Context, user auth.User, params SubmitParams) (*Application, error) {
	now := time.Now()

	if err := params.Validate(now); err != nil {
		return nil, err
	}

	quote := CalculateOffer(params.DepositAmount, params.Conditions())

	app := &Application{
		Property: Property{
			AddressLine: params.AddressLine,
			City:        params.City,
			Postcode:    params.Postcode,
		},
		Tenancy: Tenancy{
			UserID:         user.ID,
			DepositAmount:  params.DepositAmount,
			TdsScheme:      params.TdsScheme,
			TdsReference:   params.TdsReference,
			TenancyEndDate: params.TenancyEndDate,
			CleaningNeeded: params.CleaningNeeded,
			PaintingNeeded: params.PaintingNeeded,
			HolesNeeded:    params.HolesNeeded,
			FlooringNeeded: params.FlooringNeeded,
			Status:         TenancyOfferGenerated,
		},
		Offer: &Offer{
			EstimatedRepairCost: quote.EstimatedRepairCost,
			ServiceFee:          quote.ServiceFee,
			AdvanceAmount:       quote.AdvanceAmount,
			Status:              OfferPending,
			ExpiresAt:           now.Add(OfferTTL),
		},
	}

	if err := s.repo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	s.notifyOfferCreated(ctx, user.ID, app.Offer)

	return app, nil
}

// Offer returns a single offer, failing closed unless the caller owns the
// tenancy it belongs to.
func (s *Service) Offer(ctx context.Context, user auth.User, offerID uuid.UUID) (*Offer, error) {
	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if offer.OwnerID != user.ID {
		return nil, ErrUnauthorized
	}

	return offer, nil
}

// CurrentOffer returns the latest offer on the caller's most recent tenancy.
func (s *Service) CurrentOffer(ctx context.Context, user auth.User) (*Offer, error) {
	app, err := s.repo.LatestApplication(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if app.Offer == nil {
		return nil, ErrNotFound
	}

	return app.Offer, nil
}

// SignDeed accepts an offer and records the signed Deed of Assignment.
//
// Checks run in order: offer exists, caller owns it, offer is pending, offer
// has not expired. Expiry is persisted lazily at this point. The accept
// itself is a compare-and-swap so two concurrent signings cannot both win.
func (s *Service) SignDeed(ctx context.Context, user auth.User, offerID uuid.UUID, signature []byte) (*Contract, error) {
	if len(signature) == 0 {
		return nil, &ValidationError{Fields: map[string]string{"signature": "signature is required"}}
	}

	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if offer.OwnerID != user.ID {
		return nil, ErrUnauthorized
	}

	if offer.Status != OfferPending {
		return nil, ErrOfferNotPending
	}

	now := time.Now()
	if now.After(offer.ExpiresAt) {
		if err := s.repo.ExpireOffer(ctx, offerID); err != nil {
			slog.Error("failed to mark offer expired", "offer_id", offerID, "error", err)
		}

		return nil, ErrOfferExpired
	}

	contract, err := s.repo.AcceptOffer(ctx, AcceptParams{
		OfferID:   offerID,
		Signature: signature,
		SignedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	s.notifyDeedSigned(ctx, user.ID, offer)

	return contract, nil
}

// Status returns the caller's most recent application with its property and
// latest offer.
func (s *Service) Status(ctx context.Context, user auth.User) (*Application, error) {
	return s.repo.LatestApplication(ctx, user.ID)
}

// Summary returns dashboard aggregates for the caller.
func (s *Service) Summary(ctx context.Context, user auth.User) (*Summary, error) {
	return s.repo.Summary(ctx, user.ID)
}

// ListApplications is the operator view across all users.
func (s *Service) ListApplications(ctx context.Context, filter ListFilter) ([]*Application, error) {
	return s.repo.ListApplications(ctx, filter)
}

// MarkPaidOut advances a signed tenancy to paid_out.
func (s *Service) MarkPaidOut(ctx context.Context, tenancyID uuid.UUID) error {
	return s.repo.MarkPaidOut(ctx, tenancyID)
}

// ExpireOffer is the operator action for sweeping a stale pending offer.
func (s *Service) ExpireOffer(ctx context.Context, offerID uuid.UUID) error {
	return s.repo.ExpireOffer(ctx, offerID)
}

func (s *Service) notifyOfferCreated(ctx context.Context, userID uuid.UUID, offer *Offer) {
	contact, err := s.repo.OwnerContact(ctx, userID)
	if err != nil {
		slog.Error("failed to resolve notification contact", "user_id", userID, "error", err)
		return
	}

	if err := s.notifier.OfferCreated(ctx, *contact, offer.AdvanceAmount, offer.ExpiresAt); err != nil {
		slog.Error("failed to send offer created email", "user_id", userID, "error", err)
	}
}

func (s *Service) notifyDeedSigned(ctx context.Context, userID uuid.UUID, offer *Offer) {
	contact, err := s.repo.OwnerContact(ctx, userID)
	if err != nil {
		slog.Error("failed to resolve notification contact", "user_id", userID, "error", err)
		return
	}

	if err := s.notifier.DeedSigned(ctx, *contact, offer.AdvanceAmount); err != nil {
		slog.Error("failed to send deed signed email", "user_id", userID, "error", err)
	}
}
