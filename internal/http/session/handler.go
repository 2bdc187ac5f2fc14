package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/auth"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/magic-link", h.requestLink)
	r.Get("/verify", h.verify)
}

type requestLinkRequest struct {
	Email string `json:"email"`
}

func (h *Handler) requestLink(w http.ResponseWriter, r *http.Request) {
	var req requestLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.RequestLink(r.Context(), req.Email); err != nil {
		slog.Error("failed to issue magic link", "error", err)
		http.Error(w, "could not send sign-in link", http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "sent"}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type verifyResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	session, user, err := h.svc.VerifyLink(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			http.Error(w, "sign-in link not found", http.StatusNotFound)
		case errors.Is(err, auth.ErrLinkUsed), errors.Is(err, auth.ErrLinkExpired):
			http.Error(w, "sign-in link is no longer valid", http.StatusGone)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := verifyResponse{
		Token: session,
		User:  userResponse{ID: user.ID, Email: user.Email},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
