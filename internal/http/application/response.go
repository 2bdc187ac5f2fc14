package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/depositflow/depositflow/internal/application"
)

type applicationResponse struct {
	Tenancy       tenancyResponse  `json:"tenancy"`
	Property      propertyResponse `json:"property"`
	Offer         *OfferResponse   `json:"offer,omitempty"`
	DisplayStatus string           `json:"display_status"`
}

type tenancyResponse struct {
	ID             uuid.UUID `json:"id"`
	DepositAmount  int64     `json:"deposit_amount"`
	TdsScheme      string    `json:"tds_scheme"`
	TdsReference   string    `json:"tds_reference"`
	TenancyEndDate string    `json:"tenancy_end_date"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type propertyResponse struct {
	ID          uuid.UUID `json:"id"`
	AddressLine string    `json:"address_line"`
	City        string    `json:"city"`
	Postcode    string    `json:"postcode"`
}

// OfferResponse is shared with the offer handlers.
type OfferResponse struct {
	ID                  uuid.UUID  `json:"id"`
	TenancyID           uuid.UUID  `json:"tenancy_id"`
	EstimatedRepairCost int64      `json:"estimated_repair_cost"`
	ServiceFee          int64      `json:"service_fee"`
	AdvanceAmount       int64      `json:"advance_amount"`
	Status              string     `json:"status"`
	ExpiresAt           time.Time  `json:"expires_at"`
	SignedAt            *time.Time `json:"signed_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toResponse(app *application.Application) applicationResponse {
	resp := applicationResponse{
		Tenancy: tenancyResponse{
			ID:             app.Tenancy.ID,
			DepositAmount:  app.Tenancy.DepositAmount,
			TdsScheme:      string(app.Tenancy.TdsScheme),
			TdsReference:   app.Tenancy.TdsReference,
			TenancyEndDate: app.Tenancy.TenancyEndDate.Format(time.DateOnly),
			Status:         string(app.Tenancy.Status),
			CreatedAt:      app.Tenancy.CreatedAt,
		},
		Property: propertyResponse{
			ID:          app.Property.ID,
			AddressLine: app.Property.AddressLine,
			City:        app.Property.City,
			Postcode:    app.Property.Postcode,
		},
		DisplayStatus: string(app.DisplayStatus()),
	}

	if app.Offer != nil {
		offer := ToOfferResponse(app.Offer)
		resp.Offer = &offer
	}

	return resp
}

// ToOfferResponse converts an offer for JSON output. The signature payload is
// never echoed back.
func ToOfferResponse(o *application.Offer) OfferResponse {
	return OfferResponse{
		ID:                  o.ID,
		TenancyID:           o.TenancyID,
		EstimatedRepairCost: o.EstimatedRepairCost,
		ServiceFee:          o.ServiceFee,
		AdvanceAmount:       o.AdvanceAmount,
		Status:              string(o.Status),
		ExpiresAt:           o.ExpiresAt,
		SignedAt:            o.SignedAt,
		CreatedAt:           o.CreatedAt,
	}
}

type summaryResponse struct {
	Applications int64 `json:"applications"`
	WithOffers   int64 `json:"with_offers"`
	TotalAdvance int64 `json:"total_advance"`
}

func toSummaryResponse(s *application.Summary) summaryResponse {
	return summaryResponse{
		Applications: s.Applications,
		WithOffers:   s.WithOffers,
		TotalAdvance: s.TotalAdvance,
	}
}
