package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/depositflow/depositflow/internal/application"
	"github.com/depositflow/depositflow/internal/auth"
)

func newService(t *testing.T) (*application.Service, *application.MockRepository, *application.MockNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := application.NewMockRepository(ctrl)
	notifier := application.NewMockNotifier(ctrl)

	return application.NewService(repo, notifier), repo, notifier
}

func TestService_Submit(t *testing.T) {
	user := auth.User{ID: uuid.New(), Email: "tenant@example.com"}

	t.Run("Success", func(t *testing.T) {
		svc, repo, notifier := newService(t)

		params := validParams(time.Now())
		params.CleaningNeeded = true
		params.PaintingNeeded = true

		repo.EXPECT().
			CreateApplication(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app *application.Application) error {
				app.Property.ID = uuid.New()
				app.Tenancy.ID = uuid.New()
				app.Offer.ID = uuid.New()
				return nil
			})
		repo.EXPECT().
			OwnerContact(gomock.Any(), user.ID).
			Return(&application.Contact{Email: user.Email, Name: "Jo Tenant"}, nil)
		notifier.EXPECT().
			OfferCreated(gomock.Any(), application.Contact{Email: user.Email, Name: "Jo Tenant"}, int64(970), gomock.Any()).
			Return(nil)

		app, err := svc.Submit(context.Background(), user, params)
		require.NoError(t, err)

		assert.Equal(t, user.ID, app.Tenancy.UserID)
		assert.Equal(t, application.TenancyOfferGenerated, app.Tenancy.Status)

		require.NotNil(t, app.Offer)
		assert.Equal(t, int64(350), app.Offer.EstimatedRepairCost)
		assert.Equal(t, int64(180), app.Offer.ServiceFee)
		assert.Equal(t, int64(970), app.Offer.AdvanceAmount)
		assert.Equal(t, application.OfferPending, app.Offer.Status)
		assert.WithinDuration(t, time.Now().Add(application.OfferTTL), app.Offer.ExpiresAt, time.Minute)
	})

	t.Run("PastEndDateCreatesNothing", func(t *testing.T) {
		svc, _, _ := newService(t)

		params := validParams(time.Now())
		params.TenancyEndDate = time.Now().AddDate(0, 0, -1)

		app, err := svc.Submit(context.Background(), user, params)
		assert.Nil(t, app)

		var vErr *application.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "tenancy_end_date")
	})

	t.Run("RepoError", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			CreateApplication(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		app, err := svc.Submit(context.Background(), user, validParams(time.Now()))
		assert.Error(t, err)
		assert.Nil(t, app)
	})

	t.Run("NotificationFailureIsSwallowed", func(t *testing.T) {
		svc, repo, notifier := newService(t)

		repo.EXPECT().
			CreateApplication(gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().
			OwnerContact(gomock.Any(), user.ID).
			Return(&application.Contact{Email: user.Email}, nil)
		notifier.EXPECT().
			OfferCreated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("resend is down"))

		app, err := svc.Submit(context.Background(), user, validParams(time.Now()))
		require.NoError(t, err)
		assert.NotNil(t, app)
	})
}

func pendingOffer(owner uuid.UUID) *application.Offer {
	return &application.Offer{
		ID:            uuid.New(),
		TenancyID:     uuid.New(),
		OwnerID:       owner,
		AdvanceAmount: 970,
		Status:        application.OfferPending,
		ExpiresAt:     time.Now().Add(time.Hour),
	}
}

func TestService_SignDeed(t *testing.T) {
	user := auth.User{ID: uuid.New(), Email: "tenant@example.com"}
	signature := []byte("png bytes")

	t.Run("Success", func(t *testing.T) {
		svc, repo, notifier := newService(t)

		offer := pendingOffer(user.ID)

		repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
		repo.EXPECT().
			AcceptOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params application.AcceptParams) (*application.Contract, error) {
				assert.Equal(t, offer.ID, params.OfferID)
				assert.Equal(t, signature, params.Signature)

				return &application.Contract{
					ID:        uuid.New(),
					OfferID:   params.OfferID,
					Signature: params.Signature,
					Status:    "signed",
					SignedAt:  params.SignedAt,
				}, nil
			})
		repo.EXPECT().
			OwnerContact(gomock.Any(), user.ID).
			Return(&application.Contact{Email: user.Email}, nil)
		notifier.EXPECT().
			DeedSigned(gomock.Any(), application.Contact{Email: user.Email}, int64(970)).
			Return(nil)

		contract, err := svc.SignDeed(context.Background(), user, offer.ID, signature)
		require.NoError(t, err)
		assert.Equal(t, offer.ID, contract.OfferID)
		assert.Equal(t, "signed", contract.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, repo, _ := newService(t)

		id := uuid.New()
		repo.EXPECT().GetOffer(gomock.Any(), id).Return(nil, application.ErrNotFound)

		_, err := svc.SignDeed(context.Background(), user, id, signature)
		assert.ErrorIs(t, err, application.ErrNotFound)
	})

	t.Run("NotOwnerFailsClosed", func(t *testing.T) {
		svc, repo, _ := newService(t)

		offer := pendingOffer(uuid.New())
		repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := svc.SignDeed(context.Background(), user, offer.ID, signature)
		assert.ErrorIs(t, err, application.ErrUnauthorized)
	})

	t.Run("NotPendingRejectedEvenForOwner", func(t *testing.T) {
		svc, repo, _ := newService(t)

		offer := pendingOffer(user.ID)
		offer.Status = application.OfferAccepted

		repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := svc.SignDeed(context.Background(), user, offer.ID, signature)
		assert.ErrorIs(t, err, application.ErrOfferNotPending)
	})

	t.Run("ExpiredIsRejectedAndMarked", func(t *testing.T) {
		svc, repo, _ := newService(t)

		offer := pendingOffer(user.ID)
		offer.ExpiresAt = time.Now().Add(-time.Minute)

		repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
		repo.EXPECT().ExpireOffer(gomock.Any(), offer.ID).Return(nil)

		_, err := svc.SignDeed(context.Background(), user, offer.ID, signature)
		assert.ErrorIs(t, err, application.ErrOfferExpired)
	})

	t.Run("EmptySignature", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.SignDeed(context.Background(), user, uuid.New(), nil)

		var vErr *application.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("LostRace", func(t *testing.T) {
		svc, repo, _ := newService(t)

		offer := pendingOffer(user.ID)

		repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
		repo.EXPECT().
			AcceptOffer(gomock.Any(), gomock.Any()).
			Return(nil, application.ErrOfferNotPending)

		_, err := svc.SignDeed(context.Background(), user, offer.ID, signature)
		assert.ErrorIs(t, err, application.ErrOfferNotPending)
	})

	t.Run("SecondSigningFails", func(t *testing.T) {
		svc, repo, notifier := newService(t)

		offer := pendingOffer(user.ID)

		first := repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)
		repo.EXPECT().
			AcceptOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params application.AcceptParams) (*application.Contract, error) {
				offer.Status = application.OfferAccepted

				return &application.Contract{ID: uuid.New(), OfferID: params.OfferID, Status: "signed"}, nil
			})
		repo.EXPECT().
			OwnerContact(gomock.Any(), user.ID).
			Return(&application.Contact{Email: user.Email}, nil)
		notifier.EXPECT().
			DeedSigned(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil).After(first)

		_, err := svc.SignDeed(context.Background(), user, offer.ID, signature)
		require.NoError(t, err)

		_, err = svc.SignDeed(context.Background(), user, offer.ID, signature)
		assert.ErrorIs(t, err, application.ErrOfferNotPending)
	})
}

func TestService_Offer(t *testing.T) {
	user := auth.User{ID: uuid.New(), Email: "tenant@example.com"}

	t.Run("Owner", func(t *testing.T) {
		svc, repo, _ := newService(t)

		offer := pendingOffer(user.ID)
		repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)

		got, err := svc.Offer(context.Background(), user, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, offer, got)
	})

	t.Run("NotOwner", func(t *testing.T) {
		svc, repo, _ := newService(t)

		offer := pendingOffer(uuid.New())
		repo.EXPECT().GetOffer(gomock.Any(), offer.ID).Return(offer, nil)

		_, err := svc.Offer(context.Background(), user, offer.ID)
		assert.ErrorIs(t, err, application.ErrUnauthorized)
	})
}

func TestService_CurrentOffer_NoOffer(t *testing.T) {
	user := auth.User{ID: uuid.New()}
	svc, repo, _ := newService(t)

	repo.EXPECT().
		LatestApplication(gomock.Any(), user.ID).
		Return(&application.Application{}, nil)

	_, err := svc.CurrentOffer(context.Background(), user)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestApplication_DisplayStatus(t *testing.T) {
	type testCase struct {
		name  string
		offer *application.Offer
		want  application.DisplayStatus
	}

	tests := []testCase{
		{name: "NoOffer", offer: nil, want: application.StatusProcessing},
		{name: "Pending", offer: &application.Offer{Status: application.OfferPending}, want: application.StatusOfferReady},
		{name: "Accepted", offer: &application.Offer{Status: application.OfferAccepted}, want: application.StatusCompleted},
		{name: "Expired", offer: &application.Offer{Status: application.OfferExpired}, want: application.StatusProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &application.Application{Offer: tt.offer}
			assert.Equal(t, tt.want, app.DisplayStatus())
		})
	}
}
