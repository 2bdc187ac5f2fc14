package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/depositflow/depositflow/internal/auth"
)

func testConfig() auth.Config {
	return auth.Config{
		SessionSecret: "test-secret",
		SessionTTL:    30 * 24 * time.Hour,
		LinkTTL:       15 * time.Minute,
		BaseURL:       "https://depositflow.test/",
	}
}

func newService(t *testing.T) (*auth.Service, *auth.MockRepository, *auth.MockLinkSender) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := auth.NewMockRepository(ctrl)
	sender := auth.NewMockLinkSender(ctrl)

	return auth.NewService(repo, sender, testConfig()), repo, sender
}

func TestService_RequestLink(t *testing.T) {
	t.Run("ExistingUser", func(t *testing.T) {
		svc, repo, sender := newService(t)

		user := &auth.User{ID: uuid.New(), Email: "jo@example.com"}

		repo.EXPECT().
			GetUserByEmail(gomock.Any(), "jo@example.com").
			Return(user, nil)
		repo.EXPECT().
			CreateMagicLink(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, link *auth.MagicLink) error {
				assert.Equal(t, user.ID, link.UserID)
				assert.Len(t, link.Token, 64)
				assert.WithinDuration(t, time.Now().Add(15*time.Minute), link.ExpiresAt, time.Minute)
				return nil
			})
		sender.EXPECT().
			MagicLink(gomock.Any(), "jo@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, url string) error {
				assert.True(t, strings.HasPrefix(url, "https://depositflow.test/auth/verify?token="))
				return nil
			})

		require.NoError(t, svc.RequestLink(context.Background(), "jo@example.com"))
	})

	t.Run("NewUserIsCreated", func(t *testing.T) {
		svc, repo, sender := newService(t)

		repo.EXPECT().
			GetUserByEmail(gomock.Any(), "new@example.com").
			Return(nil, auth.ErrNotFound)
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *auth.User) error {
				assert.Equal(t, "new@example.com", user.Email)
				assert.NotEqual(t, uuid.Nil, user.ID)
				return nil
			})
		repo.EXPECT().CreateMagicLink(gomock.Any(), gomock.Any()).Return(nil)
		sender.EXPECT().MagicLink(gomock.Any(), "new@example.com", gomock.Any()).Return(nil)

		require.NoError(t, svc.RequestLink(context.Background(), "new@example.com"))
	})

	t.Run("AddressIsNormalised", func(t *testing.T) {
		svc, repo, sender := newService(t)

		user := &auth.User{ID: uuid.New(), Email: "jo@example.com"}

		repo.EXPECT().
			GetUserByEmail(gomock.Any(), "jo@example.com").
			Return(user, nil)
		repo.EXPECT().CreateMagicLink(gomock.Any(), gomock.Any()).Return(nil)
		sender.EXPECT().MagicLink(gomock.Any(), "jo@example.com", gomock.Any()).Return(nil)

		require.NoError(t, svc.RequestLink(context.Background(), "  Jo@Example.COM "))
	})

	t.Run("InvalidAddress", func(t *testing.T) {
		svc, _, _ := newService(t)

		assert.Error(t, svc.RequestLink(context.Background(), "not-an-email"))
	})

	t.Run("SenderFailureSurfaces", func(t *testing.T) {
		svc, repo, sender := newService(t)

		user := &auth.User{ID: uuid.New(), Email: "jo@example.com"}

		repo.EXPECT().GetUserByEmail(gomock.Any(), "jo@example.com").Return(user, nil)
		repo.EXPECT().CreateMagicLink(gomock.Any(), gomock.Any()).Return(nil)
		sender.EXPECT().
			MagicLink(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("resend is down"))

		assert.Error(t, svc.RequestLink(context.Background(), "jo@example.com"))
	})
}

func TestService_VerifyLink(t *testing.T) {
	user := &auth.User{ID: uuid.New(), Email: "jo@example.com"}

	freshLink := func() *auth.MagicLink {
		return &auth.MagicLink{
			Token:     "abc123",
			UserID:    user.ID,
			Email:     user.Email,
			CreatedAt: time.Now().UTC(),
			ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().GetMagicLink(gomock.Any(), "abc123").Return(freshLink(), nil)
		repo.EXPECT().MarkMagicLinkUsed(gomock.Any(), "abc123", gomock.Any()).Return(nil)
		repo.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil)

		session, got, err := svc.VerifyLink(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, user, got)

		parsed, err := svc.ParseSession(session)
		require.NoError(t, err)
		assert.Equal(t, user.ID, parsed.ID)
		assert.Equal(t, user.Email, parsed.Email)
	})

	t.Run("AlreadyUsed", func(t *testing.T) {
		svc, repo, _ := newService(t)

		link := freshLink()
		link.UsedAt = new(time.Now().UTC().Add(-time.Minute))

		repo.EXPECT().GetMagicLink(gomock.Any(), "abc123").Return(link, nil)

		_, _, err := svc.VerifyLink(context.Background(), "abc123")
		assert.ErrorIs(t, err, auth.ErrLinkUsed)
	})

	t.Run("Expired", func(t *testing.T) {
		svc, repo, _ := newService(t)

		link := freshLink()
		link.ExpiresAt = time.Now().UTC().Add(-time.Minute)

		repo.EXPECT().GetMagicLink(gomock.Any(), "abc123").Return(link, nil)

		_, _, err := svc.VerifyLink(context.Background(), "abc123")
		assert.ErrorIs(t, err, auth.ErrLinkExpired)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().GetMagicLink(gomock.Any(), "missing").Return(nil, auth.ErrNotFound)

		_, _, err := svc.VerifyLink(context.Background(), "missing")
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})
}

func TestService_ParseSession(t *testing.T) {
	t.Run("Garbage", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.ParseSession("not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidSession)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		user := &auth.User{ID: uuid.New(), Email: "jo@example.com"}

		issuing, repo, _ := newService(t)
		repo.EXPECT().GetMagicLink(gomock.Any(), "abc123").Return(&auth.MagicLink{
			Token:     "abc123",
			UserID:    user.ID,
			Email:     user.Email,
			ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
		}, nil)
		repo.EXPECT().MarkMagicLinkUsed(gomock.Any(), "abc123", gomock.Any()).Return(nil)
		repo.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil)

		session, _, err := issuing.VerifyLink(context.Background(), "abc123")
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		other := auth.NewService(
			auth.NewMockRepository(ctrl),
			auth.NewMockLinkSender(ctrl),
			auth.Config{SessionSecret: "different-secret", SessionTTL: time.Hour},
		)

		_, err = other.ParseSession(session)
		assert.ErrorIs(t, err, auth.ErrInvalidSession)
	})
}
