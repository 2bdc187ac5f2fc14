package database

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all tables and indexes if they don't exist. Statements
// are idempotent so it runs on every API start.
func InitSchema(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS profiles (
		user_id UUID PRIMARY KEY REFERENCES users(id),
		full_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		bank_sort_code TEXT NOT NULL,
		bank_account_number TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS magic_links (
		token TEXT PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		email TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		used_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS properties (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		address_line_1 TEXT NOT NULL,
		city TEXT NOT NULL,
		postcode TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS tenancies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id),
		property_id UUID NOT NULL REFERENCES properties(id),
		deposit_amount BIGINT NOT NULL,
		tds_scheme TEXT NOT NULL,
		tds_reference TEXT NOT NULL,
		tenancy_end_date TIMESTAMPTZ NOT NULL,
		cleaning_needed BOOLEAN NOT NULL DEFAULT FALSE,
		painting_needed BOOLEAN NOT NULL DEFAULT FALSE,
		holes_needed BOOLEAN NOT NULL DEFAULT FALSE,
		flooring_needed BOOLEAN NOT NULL DEFAULT FALSE,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS offers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		tenancy_id UUID NOT NULL REFERENCES tenancies(id),
		estimated_repair_cost BIGINT NOT NULL,
		service_fee BIGINT NOT NULL,
		advance_amount BIGINT NOT NULL,
		status TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		signature BYTEA,
		signed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		offer_id UUID NOT NULL REFERENCES offers(id),
		signature BYTEA NOT NULL,
		status TEXT NOT NULL,
		signed_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_tenancies_user_created ON tenancies(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_tenancies_status ON tenancies(status);
	CREATE INDEX IF NOT EXISTS idx_offers_tenancy_created ON offers(tenancy_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_magic_links_user ON magic_links(user_id);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("initialising schema: %w", err)
	}

	return nil
}
