package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error

	CreateMagicLink(ctx context.Context, link *MagicLink) error
	GetMagicLink(ctx context.Context, token string) (*MagicLink, error)
	MarkMagicLinkUsed(ctx context.Context, token string, usedAt time.Time) error
}

// LinkSender delivers the sign-in link. Unlike the application notifications,
// a failure here is surfaced: a login link that never arrives is an error.
type LinkSender interface {
	MagicLink(ctx context.Context, email, url string) error
}

type Config struct {
	SessionSecret string
	SessionTTL    time.Duration
	LinkTTL       time.Duration
	BaseURL       string
}

type Service struct {
	repo   Repository
	sender LinkSender
	cfg    Config
	clock  func() time.Time
}

func NewService(repo Repository, sender LinkSender, cfg Config) *Service {
	return &Service{
		repo:   repo,
		sender: sender,
		cfg:    cfg,
		clock:  time.Now,
	}
}

// RequestLink finds or creates the account for the given address and e-mails
// it a single-use sign-in link.
func (s *Service) RequestLink(ctx context.Context, email string) error {
	parsed, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("parsing email: %w", err)
	}

	email = strings.ToLower(parsed.Address)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		user = &User{ID: uuid.New(), Email: email}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}

	token, err := newToken()
	if err != nil {
		return err
	}

	now := s.clock().UTC()
	link := &MagicLink{
		Token:     token,
		UserID:    user.ID,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.LinkTTL),
	}

	if err := s.repo.CreateMagicLink(ctx, link); err != nil {
		return fmt.Errorf("storing magic link: %w", err)
	}

	url := strings.TrimSuffix(s.cfg.BaseURL, "/") + "/auth/verify?token=" + token

	if err := s.sender.MagicLink(ctx, email, url); err != nil {
		return fmt.Errorf("sending magic link: %w", err)
	}

	return nil
}

// VerifyLink consumes a magic link and returns a signed session token for its
// user. Links are single use and expire after their TTL.
func (s *Service) VerifyLink(ctx context.Context, token string) (string, *User, error) {
	link, err := s.repo.GetMagicLink(ctx, strings.TrimSpace(token))
	if err != nil {
		return "", nil, err
	}

	now := s.clock().UTC()

	if link.UsedAt != nil {
		return "", nil, ErrLinkUsed
	}

	if now.After(link.ExpiresAt) {
		return "", nil, ErrLinkExpired
	}

	if err := s.repo.MarkMagicLinkUsed(ctx, link.Token, now); err != nil {
		return "", nil, fmt.Errorf("marking link used: %w", err)
	}

	user, err := s.repo.GetUser(ctx, link.UserID)
	if err != nil {
		return "", nil, fmt.Errorf("loading user: %w", err)
	}

	session, err := s.issueSession(user, now)
	if err != nil {
		return "", nil, err
	}

	return session, user, nil
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *Service) issueSession(user *User, now time.Time) (string, error) {
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("signing session: %w", err)
	}

	return signed, nil
}

// ParseSession validates a session token and returns the user it identifies.
func (s *Service) ParseSession(token string) (User, error) {
	var claims sessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return User{}, ErrInvalidSession
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return User{}, ErrInvalidSession
	}

	return User{ID: id, Email: claims.Email}, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
