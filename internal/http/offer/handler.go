package offer

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/application"
	"github.com/depositflow/depositflow/internal/auth"
	applicationV1 "github.com/depositflow/depositflow/internal/http/application"
)

type Handler struct {
	svc *application.Service
}

func NewHandler(svc *application.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/current", h.current)
	r.Get("/{id}", h.get)
	r.Post("/{id}/sign", h.sign)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	offer, err := h.svc.CurrentOffer(r.Context(), user)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			http.Error(w, "no offer found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeOffer(w, offer)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	offer, err := h.svc.Offer(r.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			http.Error(w, "offer not found", http.StatusNotFound)
		case errors.Is(err, application.ErrUnauthorized):
			http.Error(w, "you do not have access to this offer", http.StatusForbidden)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeOffer(w, offer)
}

type signRequest struct {
	// Signature is the freehand-drawn image, either raw base64 or a data URL.
	Signature string `json:"signature"`
}

type contractResponse struct {
	ID       uuid.UUID `json:"id"`
	OfferID  uuid.UUID `json:"offer_id"`
	Status   string    `json:"status"`
	SignedAt time.Time `json:"signed_at"`
}

func (h *Handler) sign(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	signature, err := decodeSignature(req.Signature)
	if err != nil {
		http.Error(w, "invalid signature payload", http.StatusBadRequest)
		return
	}

	contract, err := h.svc.SignDeed(r.Context(), user, id, signature)
	if err != nil {
		var vErr *application.ValidationError

		switch {
		case errors.Is(err, application.ErrNotFound):
			http.Error(w, "offer not found", http.StatusNotFound)
		case errors.Is(err, application.ErrUnauthorized):
			http.Error(w, "you do not have access to this offer", http.StatusForbidden)
		case errors.Is(err, application.ErrOfferNotPending):
			http.Error(w, "this offer is no longer pending", http.StatusConflict)
		case errors.Is(err, application.ErrOfferExpired):
			http.Error(w, "this offer has expired", http.StatusGone)
		case errors.As(err, &vErr):
			http.Error(w, vErr.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	resp := contractResponse{
		ID:       contract.ID,
		OfferID:  contract.OfferID,
		Status:   contract.Status,
		SignedAt: contract.SignedAt,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// decodeSignature accepts the canvas export either as a data URL
// ("data:image/png;base64,...") or as bare base64.
func decodeSignature(s string) ([]byte, error) {
	if _, rest, found := strings.Cut(s, ";base64,"); found {
		s = rest
	}

	return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
}

func writeOffer(w http.ResponseWriter, offer *application.Offer) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(applicationV1.ToOfferResponse(offer)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
