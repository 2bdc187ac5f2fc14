package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/application"
	"github.com/depositflow/depositflow/internal/auth"
)

// Handler serves the operator listing. Access is gated on a single
// configured operator e-mail compared against the session.
type Handler struct {
	svc        *application.Service
	adminEmail string
}

func NewHandler(svc *application.Service, adminEmail string) *Handler {
	return &Handler{svc: svc, adminEmail: adminEmail}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(h.requireAdmin)

	r.Get("/applications", h.list)
	r.Post("/tenancies/{id}/payout", h.markPaidOut)
	r.Post("/offers/{id}/expire", h.expireOffer)
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFrom(r.Context())
		if !ok || h.adminEmail == "" || user.Email != h.adminEmail {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type listItem struct {
	TenancyID     uuid.UUID `json:"tenancy_id"`
	OwnerEmail    string    `json:"owner_email"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	DepositAmount int64     `json:"deposit_amount"`
	TenancyStatus string    `json:"tenancy_status"`
	OfferID       *uuid.UUID `json:"offer_id,omitempty"`
	OfferStatus   string     `json:"offer_status,omitempty"`
	AdvanceAmount *int64     `json:"advance_amount,omitempty"`
	SubmittedAt   time.Time  `json:"submitted_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := application.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.TenancyStatus = new(application.TenancyStatus(s))
	}

	apps, err := h.svc.ListApplications(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	items := make([]listItem, len(apps))
	for i, app := range apps {
		item := listItem{
			TenancyID:     app.Tenancy.ID,
			OwnerEmail:    app.OwnerEmail,
			Address:       app.Property.AddressLine,
			City:          app.Property.City,
			DepositAmount: app.Tenancy.DepositAmount,
			TenancyStatus: string(app.Tenancy.Status),
			SubmittedAt:   app.Tenancy.CreatedAt,
		}

		if app.Offer != nil {
			item.OfferID = &app.Offer.ID
			item.OfferStatus = string(app.Offer.Status)
			item.AdvanceAmount = &app.Offer.AdvanceAmount
		}

		items[i] = item
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(items); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markPaidOut(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkPaidOut(r.Context(), id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			http.Error(w, "no signed tenancy to pay out", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) expireOffer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.ExpireOffer(r.Context(), id); err != nil {
		if errors.Is(err, application.ErrOfferNotPending) {
			http.Error(w, "offer is not pending", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
