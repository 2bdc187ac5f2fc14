package application_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depositflow/depositflow/internal/application"
)

func TestCalculateOffer(t *testing.T) {
	type testCase struct {
		name       string
		deposit    int64
		conditions []application.Condition

		wantRepairs int64
		wantFee     int64
		wantAdvance int64
	}

	tests := []testCase{
		{
			name:        "NoConditions",
			deposit:     1000,
			conditions:  nil,
			wantRepairs: 0,
			wantFee:     120,
			wantAdvance: 880,
		},
		{
			name:        "CleaningAndPainting",
			deposit:     1500,
			conditions:  []application.Condition{application.ConditionCleaning, application.ConditionPainting},
			wantRepairs: 350,
			wantFee:     180,
			wantAdvance: 970,
		},
		{
			name:    "MinimumDepositAllConditions",
			deposit: 100,
			conditions: []application.Condition{
				application.ConditionCleaning, application.ConditionPainting,
				application.ConditionHoles, application.ConditionFlooring,
			},
			wantRepairs: 700,
			wantFee:     12,
			wantAdvance: 0,
		},
		{
			name:        "FeeRoundsToNearestPound",
			deposit:     1037,
			conditions:  nil,
			wantRepairs: 0,
			wantFee:     124, // 124.44 rounds down
			wantAdvance: 913,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := application.CalculateOffer(tt.deposit, tt.conditions)

			assert.Equal(t, tt.wantRepairs, quote.EstimatedRepairCost)
			assert.Equal(t, tt.wantFee, quote.ServiceFee)
			assert.Equal(t, tt.wantAdvance, quote.AdvanceAmount)
		})
	}
}

func TestCalculateOffer_AdvanceNeverNegative(t *testing.T) {
	subsets := [][]application.Condition{
		nil,
		{application.ConditionCleaning},
		{application.ConditionFlooring},
		{application.ConditionCleaning, application.ConditionPainting},
		{application.ConditionPainting, application.ConditionHoles, application.ConditionFlooring},
		{
			application.ConditionCleaning, application.ConditionPainting,
			application.ConditionHoles, application.ConditionFlooring,
		},
	}

	for deposit := application.MinDepositAmount; deposit <= 5000; deposit += 137 {
		for _, conditions := range subsets {
			quote := application.CalculateOffer(deposit, conditions)

			var repairs int64
			for _, c := range conditions {
				repairs += application.ConditionCosts[c]
			}

			fee := int64(math.Round(float64(deposit) * application.ServiceFeeRate))

			want := deposit - repairs - fee
			if want < 0 {
				want = 0
			}

			assert.Equal(t, repairs, quote.EstimatedRepairCost)
			assert.Equal(t, fee, quote.ServiceFee)
			assert.Equal(t, want, quote.AdvanceAmount)
			assert.GreaterOrEqual(t, quote.AdvanceAmount, int64(0))
		}
	}
}
