package application

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/depositflow/depositflow/internal/application"
	"github.com/depositflow/depositflow/internal/auth"
)

type Handler struct {
	svc *application.Service
}

func NewHandler(svc *application.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Get("/current", h.current)
	r.Get("/summary", h.summary)
}

type submitRequest struct {
	AddressLine    string `json:"address_line"`
	City           string `json:"city"`
	Postcode       string `json:"postcode"`
	DepositAmount  int64  `json:"deposit_amount"`
	TdsScheme      string `json:"tds_scheme"`
	TdsReference   string `json:"tds_reference"`
	TenancyEndDate string `json:"tenancy_end_date"`

	CleaningNeeded bool `json:"cleaning_needed"`
	PaintingNeeded bool `json:"painting_needed"`
	HolesNeeded    bool `json:"holes_needed"`
	FlooringNeeded bool `json:"flooring_needed"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	endDate, err := time.Parse(time.DateOnly, req.TenancyEndDate)
	if err != nil {
		writeFieldErrors(w, map[string]string{"tenancy_end_date": "date must be in YYYY-MM-DD format"})
		return
	}

	app, err := h.svc.Submit(r.Context(), user, application.SubmitParams{
		AddressLine:    req.AddressLine,
		City:           req.City,
		Postcode:       req.Postcode,
		DepositAmount:  req.DepositAmount,
		TdsScheme:      application.TdsScheme(req.TdsScheme),
		TdsReference:   req.TdsReference,
		TenancyEndDate: endDate,
		CleaningNeeded: req.CleaningNeeded,
		PaintingNeeded: req.PaintingNeeded,
		HolesNeeded:    req.HolesNeeded,
		FlooringNeeded: req.FlooringNeeded,
	})
	if err != nil {
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			writeFieldErrors(w, vErr.Fields)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(app)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	app, err := h.svc.Status(r.Context(), user)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			http.Error(w, "no application found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(app)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	summary, err := h.svc.Summary(r.Context(), user)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummaryResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)

	if err := json.NewEncoder(w).Encode(map[string]any{"errors": fields}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
