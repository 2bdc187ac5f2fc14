package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/auth"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	query := `SELECT id, email, created_at FROM users WHERE id = $1`

	var user auth.User

	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `SELECT id, email, created_at FROM users WHERE email = $1`

	var user auth.User

	err := s.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *auth.User) error {
	query := `
		INSERT INTO users (id, email, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`

	if err := s.db.QueryRowContext(ctx, query, user.ID, user.Email).Scan(&user.CreatedAt); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) CreateMagicLink(ctx context.Context, link *auth.MagicLink) error {
	query := `
		INSERT INTO magic_links (token, user_id, email, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query, link.Token, link.UserID, link.Email, link.CreatedAt, link.ExpiresAt)
	if err != nil {
		return fmt.Errorf("creating magic link: %w", err)
	}

	return nil
}

func (s *Store) GetMagicLink(ctx context.Context, token string) (*auth.MagicLink, error) {
	query := `
		SELECT token, user_id, email, created_at, expires_at, used_at
		FROM magic_links
		WHERE token = $1
	`

	var link auth.MagicLink

	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&link.Token, &link.UserID, &link.Email, &link.CreatedAt, &link.ExpiresAt, &link.UsedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting magic link: %w", err)
	}

	return &link, nil
}

func (s *Store) MarkMagicLinkUsed(ctx context.Context, token string, usedAt time.Time) error {
	query := `
		UPDATE magic_links
		SET used_at = $2
		WHERE token = $1 AND used_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, token, usedAt)
	if err != nil {
		return fmt.Errorf("marking magic link used: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return auth.ErrLinkUsed
	}

	return nil
}
