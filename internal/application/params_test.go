package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depositflow/depositflow/internal/application"
)

func validParams(now time.Time) application.SubmitParams {
	return application.SubmitParams{
		AddressLine:    "12 Baker Street",
		City:           "London",
		Postcode:       "NW1 6XE",
		DepositAmount:  1500,
		TdsScheme:      application.SchemeDPS,
		TdsReference:   "DPS-12345",
		TenancyEndDate: now.AddDate(0, 1, 0),
	}
}

func TestSubmitParams_Validate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		mutate    func(p *application.SubmitParams)
		wantField string
	}

	tests := []testCase{
		{
			name:      "ShortAddress",
			mutate:    func(p *application.SubmitParams) { p.AddressLine = "12" },
			wantField: "address_line",
		},
		{
			name:      "ShortCity",
			mutate:    func(p *application.SubmitParams) { p.City = "L" },
			wantField: "city",
		},
		{
			name:      "ShortPostcode",
			mutate:    func(p *application.SubmitParams) { p.Postcode = "NW1" },
			wantField: "postcode",
		},
		{
			name:      "DepositBelowMinimum",
			mutate:    func(p *application.SubmitParams) { p.DepositAmount = 99 },
			wantField: "deposit_amount",
		},
		{
			name:      "UnknownScheme",
			mutate:    func(p *application.SubmitParams) { p.TdsScheme = "SafeDeposit" },
			wantField: "tds_scheme",
		},
		{
			name:      "ShortReference",
			mutate:    func(p *application.SubmitParams) { p.TdsReference = "DPS" },
			wantField: "tds_reference",
		},
		{
			name:      "PastEndDate",
			mutate:    func(p *application.SubmitParams) { p.TenancyEndDate = now.AddDate(0, 0, -1) },
			wantField: "tenancy_end_date",
		},
		{
			name:      "EndDateExactlyNow",
			mutate:    func(p *application.SubmitParams) { p.TenancyEndDate = now },
			wantField: "tenancy_end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams(now)
			tt.mutate(&params)

			err := params.Validate(now)
			require.Error(t, err)

			var vErr *application.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.wantField)
		})
	}
}

func TestSubmitParams_Validate_Valid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, validParams(now).Validate(now))
}

func TestSubmitParams_Validate_CollectsAllFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	err := application.SubmitParams{}.Validate(now)
	require.Error(t, err)

	var vErr *application.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 7)
}

func TestSubmitParams_Conditions(t *testing.T) {
	params := application.SubmitParams{CleaningNeeded: true, FlooringNeeded: true}

	assert.Equal(t,
		[]application.Condition{application.ConditionCleaning, application.ConditionFlooring},
		params.Conditions(),
	)
}
