package profile

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=profile
type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpsertProfile(ctx context.Context, p *Profile) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the user's profile, or ErrNotFound if they never saved one.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

type UpsertParams struct {
	FullName          string
	Phone             string
	BankSortCode      string
	BankAccountNumber string
}

// Upsert creates or replaces the user's profile.
func (s *Service) Upsert(ctx context.Context, userID uuid.UUID, params UpsertParams) (*Profile, error) {
	p := &Profile{
		UserID:            userID,
		FullName:          params.FullName,
		Phone:             params.Phone,
		BankSortCode:      params.BankSortCode,
		BankAccountNumber: params.BankAccountNumber,
	}

	if err := s.repo.UpsertProfile(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
