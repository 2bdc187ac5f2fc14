package mail_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depositflow/depositflow/internal/application"
	"github.com/depositflow/depositflow/internal/mail"
)

type sentEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func TestClient_OfferCreated(t *testing.T) {
	var got sentEmail
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := mail.NewClient("re_test_key", "DepositFlow <no-reply@depositflow.co.uk>", "https://depositflow.co.uk").
		WithBaseURL(server.URL)

	expiresAt := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)
	contact := application.Contact{Email: "jo@example.com", Name: "Jo"}

	require.NoError(t, client.OfferCreated(context.Background(), contact, 1500, expiresAt))

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "DepositFlow <no-reply@depositflow.co.uk>", got.From)
	assert.Equal(t, []string{"jo@example.com"}, got.To)
	assert.Equal(t, "Your DepositFlow offer: £1,500 is ready", got.Subject)
	assert.Contains(t, got.HTML, "Hi Jo,")
	assert.Contains(t, got.HTML, "Monday, 2 June 14:30")
	assert.Contains(t, got.HTML, "https://depositflow.co.uk/offer")
}

func TestClient_DeedSigned_NoName(t *testing.T) {
	var got sentEmail

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := mail.NewClient("re_test_key", "DepositFlow <no-reply@depositflow.co.uk>", "https://depositflow.co.uk").
		WithBaseURL(server.URL)

	contact := application.Contact{Email: "jo@example.com"}
	require.NoError(t, client.DeedSigned(context.Background(), contact, 970))

	assert.Equal(t, "Deed signed - your funds are on their way", got.Subject)
	assert.Contains(t, got.HTML, "Hi there,")
	assert.Contains(t, got.HTML, "£970")
}

func TestClient_MagicLink(t *testing.T) {
	var got sentEmail

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := mail.NewClient("re_test_key", "DepositFlow <no-reply@depositflow.co.uk>", "https://depositflow.co.uk").
		WithBaseURL(server.URL)

	url := "https://depositflow.co.uk/auth/verify?token=abc123"
	require.NoError(t, client.MagicLink(context.Background(), "jo@example.com", url))

	assert.Equal(t, "Sign in to DepositFlow", got.Subject)
	assert.Contains(t, got.HTML, url)
}

func TestClient_SendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	client := mail.NewClient("re_test_key", "bad-from", "https://depositflow.co.uk").
		WithBaseURL(server.URL)

	err := client.MagicLink(context.Background(), "jo@example.com", "https://depositflow.co.uk/auth/verify?token=abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}
