package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/application"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectOfferColumns = `
	o.id, o.tenancy_id, t.user_id, o.estimated_repair_cost, o.service_fee, o.advance_amount,
	o.status, o.expires_at, o.signature, o.signed_at, o.created_at
`

func scanOffer(s scanner) (*application.Offer, error) {
	var o application.Offer

	var statusStr string

	var signature []byte

	if err := s.Scan(
		&o.ID, &o.TenancyID, &o.OwnerID, &o.EstimatedRepairCost, &o.ServiceFee, &o.AdvanceAmount,
		&statusStr, &o.ExpiresAt, &signature, &o.SignedAt, &o.CreatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = application.OfferStatus(statusStr)
	o.Signature = signature

	return &o, nil
}

// selectApplicationColumns joins a tenancy with its property, its owner's
// e-mail and its most recent offer. The offer columns are nullable; the
// signature payload is deliberately left out of listings.
const selectApplicationColumns = `
	t.id, t.user_id, t.property_id, t.deposit_amount, t.tds_scheme, t.tds_reference,
	t.tenancy_end_date, t.cleaning_needed, t.painting_needed, t.holes_needed, t.flooring_needed,
	t.status, t.created_at,
	p.address_line_1, p.city, p.postcode, p.created_at,
	u.email,
	o.id, o.estimated_repair_cost, o.service_fee, o.advance_amount, o.status, o.expires_at, o.signed_at, o.created_at
`

const applicationFrom = `
	FROM tenancies t
	JOIN properties p ON p.id = t.property_id
	JOIN users u ON u.id = t.user_id
	LEFT JOIN LATERAL (
		SELECT id, tenancy_id, estimated_repair_cost, service_fee, advance_amount, status, expires_at, signed_at, created_at
		FROM offers
		WHERE tenancy_id = t.id
		ORDER BY created_at DESC
		LIMIT 1
	) o ON true
`

func scanApplication(s scanner) (*application.Application, error) {
	var app application.Application

	var tenancyStatus, tdsScheme string

	var (
		offerID        uuid.NullUUID
		offerRepair    sql.NullInt64
		offerFee       sql.NullInt64
		offerAdvance   sql.NullInt64
		offerStatus    sql.NullString
		offerExpires   sql.NullTime
		offerSignedAt  sql.NullTime
		offerCreatedAt sql.NullTime
	)

	if err := s.Scan(
		&app.Tenancy.ID, &app.Tenancy.UserID, &app.Tenancy.PropertyID, &app.Tenancy.DepositAmount,
		&tdsScheme, &app.Tenancy.TdsReference, &app.Tenancy.TenancyEndDate,
		&app.Tenancy.CleaningNeeded, &app.Tenancy.PaintingNeeded, &app.Tenancy.HolesNeeded, &app.Tenancy.FlooringNeeded,
		&tenancyStatus, &app.Tenancy.CreatedAt,
		&app.Property.AddressLine, &app.Property.City, &app.Property.Postcode, &app.Property.CreatedAt,
		&app.OwnerEmail,
		&offerID, &offerRepair, &offerFee, &offerAdvance, &offerStatus, &offerExpires, &offerSignedAt, &offerCreatedAt,
	); err != nil {
		return nil, err
	}

	app.Tenancy.TdsScheme = application.TdsScheme(tdsScheme)
	app.Tenancy.Status = application.TenancyStatus(tenancyStatus)
	app.Property.ID = app.Tenancy.PropertyID

	if offerID.Valid {
		offer := &application.Offer{
			ID:                  offerID.UUID,
			TenancyID:           app.Tenancy.ID,
			OwnerID:             app.Tenancy.UserID,
			EstimatedRepairCost: offerRepair.Int64,
			ServiceFee:          offerFee.Int64,
			AdvanceAmount:       offerAdvance.Int64,
			Status:              application.OfferStatus(offerStatus.String),
			ExpiresAt:           offerExpires.Time,
			CreatedAt:           offerCreatedAt.Time,
		}

		if offerSignedAt.Valid {
			offer.SignedAt = &offerSignedAt.Time
		}

		app.Offer = offer
	}

	return &app, nil
}

// CreateApplication inserts the property, tenancy and pending offer inside a
// single database transaction so a failed step leaves nothing behind.
func (s *Store) CreateApplication(ctx context.Context, app *application.Application) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	propertyQuery := `
		INSERT INTO properties (address_line_1, city, postcode, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, propertyQuery,
		app.Property.AddressLine, app.Property.City, app.Property.Postcode,
	).Scan(&app.Property.ID, &app.Property.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating property: %w", err)
	}

	app.Tenancy.PropertyID = app.Property.ID

	tenancyQuery := `
		INSERT INTO tenancies (
			user_id, property_id, deposit_amount, tds_scheme, tds_reference, tenancy_end_date,
			cleaning_needed, painting_needed, holes_needed, flooring_needed, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, tenancyQuery,
		app.Tenancy.UserID, app.Tenancy.PropertyID, app.Tenancy.DepositAmount,
		app.Tenancy.TdsScheme, app.Tenancy.TdsReference, app.Tenancy.TenancyEndDate,
		app.Tenancy.CleaningNeeded, app.Tenancy.PaintingNeeded, app.Tenancy.HolesNeeded,
		app.Tenancy.FlooringNeeded, app.Tenancy.Status,
	).Scan(&app.Tenancy.ID, &app.Tenancy.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating tenancy: %w", err)
	}

	app.Offer.TenancyID = app.Tenancy.ID
	app.Offer.OwnerID = app.Tenancy.UserID

	offerQuery := `
		INSERT INTO offers (tenancy_id, estimated_repair_cost, service_fee, advance_amount, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, offerQuery,
		app.Offer.TenancyID, app.Offer.EstimatedRepairCost, app.Offer.ServiceFee,
		app.Offer.AdvanceAmount, app.Offer.Status, app.Offer.ExpiresAt,
	).Scan(&app.Offer.ID, &app.Offer.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating offer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing application: %w", err)
	}

	return nil
}

func (s *Store) GetOffer(ctx context.Context, id uuid.UUID) (*application.Offer, error) {
	query := `SELECT ` + selectOfferColumns + `
		FROM offers o
		JOIN tenancies t ON t.id = o.tenancy_id
		WHERE o.id = $1`

	offer, err := scanOffer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrNotFound
		}

		return nil, fmt.Errorf("getting offer: %w", err)
	}

	return offer, nil
}

// AcceptOffer flips a pending offer to accepted with a compare-and-swap,
// records the signed contract and advances the tenancy, all in one
// transaction. A lost race reports ErrOfferNotPending.
func (s *Store) AcceptOffer(ctx context.Context, params application.AcceptParams) (*application.Contract, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	acceptQuery := `
		UPDATE offers
		SET status = $2, signature = $3, signed_at = $4
		WHERE id = $1 AND status = $5
		RETURNING tenancy_id
	`

	var tenancyID uuid.UUID

	err = tx.QueryRowContext(ctx, acceptQuery,
		params.OfferID, application.OfferAccepted, params.Signature, params.SignedAt, application.OfferPending,
	).Scan(&tenancyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrOfferNotPending
		}

		return nil, fmt.Errorf("accepting offer: %w", err)
	}

	contract := &application.Contract{
		OfferID:   params.OfferID,
		Signature: params.Signature,
		Status:    "signed",
		SignedAt:  params.SignedAt,
	}

	contractQuery := `
		INSERT INTO contracts (offer_id, signature, status, signed_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, contractQuery,
		contract.OfferID, contract.Signature, contract.Status, contract.SignedAt,
	).Scan(&contract.ID, &contract.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating contract: %w", err)
	}

	tenancyQuery := `
		UPDATE tenancies
		SET status = $2
		WHERE id = $1 AND status = $3
	`

	if _, err := tx.ExecContext(ctx, tenancyQuery,
		tenancyID, application.TenancyDeedSigned, application.TenancyOfferGenerated,
	); err != nil {
		return nil, fmt.Errorf("advancing tenancy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing acceptance: %w", err)
	}

	return contract, nil
}

func (s *Store) ExpireOffer(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE offers
		SET status = $2
		WHERE id = $1 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, id, application.OfferExpired, application.OfferPending)
	if err != nil {
		return fmt.Errorf("expiring offer: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return application.ErrOfferNotPending
	}

	return nil
}

func (s *Store) LatestApplication(ctx context.Context, userID uuid.UUID) (*application.Application, error) {
	query := `SELECT ` + selectApplicationColumns + applicationFrom + `
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
		LIMIT 1`

	app, err := scanApplication(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrNotFound
		}

		return nil, fmt.Errorf("getting latest application: %w", err)
	}

	return app, nil
}

func (s *Store) ListApplications(ctx context.Context, filter application.ListFilter) ([]*application.Application, error) {
	query := `SELECT ` + selectApplicationColumns + applicationFrom

	var args []any

	if filter.TenancyStatus != nil {
		query += " WHERE t.status = $1"

		args = append(args, *filter.TenancyStatus)
	}

	query += " ORDER BY t.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*application.Application

	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}

		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}

	return apps, nil
}

func (s *Store) MarkPaidOut(ctx context.Context, tenancyID uuid.UUID) error {
	query := `
		UPDATE tenancies
		SET status = $2
		WHERE id = $1 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, tenancyID, application.TenancyPaidOut, application.TenancyDeedSigned)
	if err != nil {
		return fmt.Errorf("marking tenancy paid out: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return application.ErrNotFound
	}

	return nil
}

func (s *Store) Summary(ctx context.Context, userID uuid.UUID) (*application.Summary, error) {
	query := `
		SELECT COUNT(t.id), COUNT(o.id), COALESCE(SUM(o.advance_amount), 0)
		` + applicationFrom + `
		WHERE t.user_id = $1
	`

	var summary application.Summary

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&summary.Applications, &summary.WithOffers, &summary.TotalAdvance,
	)
	if err != nil {
		return nil, fmt.Errorf("summarising applications: %w", err)
	}

	return &summary, nil
}

func (s *Store) OwnerContact(ctx context.Context, userID uuid.UUID) (*application.Contact, error) {
	query := `
		SELECT u.email, COALESCE(p.full_name, '')
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.id = $1
	`

	var contact application.Contact

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&contact.Email, &contact.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrNotFound
		}

		return nil, fmt.Errorf("getting owner contact: %w", err)
	}

	return &contact, nil
}
