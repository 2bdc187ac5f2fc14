package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT user_id, full_name, phone, bank_sort_code, bank_account_number, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p profile.Profile

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.FullName, &p.Phone, &p.BankSortCode, &p.BankAccountNumber,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profile.ErrNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return &p, nil
}

func (s *Store) UpsertProfile(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, phone, bank_sort_code, bank_account_number, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			bank_sort_code = EXCLUDED.bank_sort_code,
			bank_account_number = EXCLUDED.bank_account_number,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.UserID, p.FullName, p.Phone, p.BankSortCode, p.BankAccountNumber,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	return nil
}
