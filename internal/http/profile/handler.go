package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/auth"
	"github.com/depositflow/depositflow/internal/profile"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.upsert)
}

type profileResponse struct {
	UserID            uuid.UUID  `json:"user_id"`
	Email             string     `json:"email"`
	FullName          string     `json:"full_name"`
	Phone             string     `json:"phone"`
	BankSortCode      string     `json:"bank_sort_code"`
	BankAccountNumber string     `json:"bank_account_number"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

func toResponse(p *profile.Profile, email string) profileResponse {
	return profileResponse{
		UserID:            p.UserID,
		Email:             email,
		FullName:          p.FullName,
		Phone:             p.Phone,
		BankSortCode:      p.BankSortCode,
		BankAccountNumber: p.BankAccountNumber,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	p, err := h.svc.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p, user.Email)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type upsertRequest struct {
	FullName          string `json:"full_name"`
	Phone             string `json:"phone"`
	BankSortCode      string `json:"bank_sort_code"`
	BankAccountNumber string `json:"bank_account_number"`
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Upsert(r.Context(), user.ID, profile.UpsertParams{
		FullName:          req.FullName,
		Phone:             req.Phone,
		BankSortCode:      req.BankSortCode,
		BankAccountNumber: req.BankAccountNumber,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p, user.Email)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
