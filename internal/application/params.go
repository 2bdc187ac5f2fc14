package application

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// SubmitParams is the tenant's application form.
type SubmitParams struct {
	AddressLine    string
	City           string
	Postcode       string
	DepositAmount  int64
	TdsScheme      TdsScheme
	TdsReference   string
	TenancyEndDate time.Time

	CleaningNeeded bool
	PaintingNeeded bool
	HolesNeeded    bool
	FlooringNeeded bool
}

// Conditions returns the flagged conditions as calculator input.
func (p SubmitParams) Conditions() []Condition {
	var cs []Condition
	if p.CleaningNeeded {
		cs = append(cs, ConditionCleaning)
	}

	if p.PaintingNeeded {
		cs = append(cs, ConditionPainting)
	}

	if p.HolesNeeded {
		cs = append(cs, ConditionHoles)
	}

	if p.FlooringNeeded {
		cs = append(cs, ConditionFlooring)
	}

	return cs
}

// ValidationError carries field-level messages back to the form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return fmt.Sprintf("invalid application: %s", strings.Join(keys, ", "))
}

// Validate checks the form against the submission rules. The returned error
// is a *ValidationError listing every failing field, or nil.
func (p SubmitParams) Validate(now time.Time) error {
	fields := map[string]string{}

	if len(strings.TrimSpace(p.AddressLine)) < 5 {
		fields["address_line"] = "address must be at least 5 characters"
	}

	if len(strings.TrimSpace(p.City)) < 2 {
		fields["city"] = "city must be at least 2 characters"
	}

	if len(strings.TrimSpace(p.Postcode)) < 5 {
		fields["postcode"] = "postcode must be at least 5 characters"
	}

	if p.DepositAmount < MinDepositAmount {
		fields["deposit_amount"] = fmt.Sprintf("deposit must be at least £%d", MinDepositAmount)
	}

	if !slices.Contains(Schemes, p.TdsScheme) {
		fields["tds_scheme"] = "scheme must be one of DPS, TDS or MyDeposits"
	}

	if len(strings.TrimSpace(p.TdsReference)) < 5 {
		fields["tds_reference"] = "TDS reference must be at least 5 characters"
	}

	if !p.TenancyEndDate.After(now) {
		fields["tenancy_end_date"] = "tenancy end date must be in the future"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}
