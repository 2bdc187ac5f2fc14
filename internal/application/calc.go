package application

import (
	"math"
	"time"
)

// Condition identifies a property condition the tenant flagged as needing
// work before checkout.
type Condition string

const (
	ConditionCleaning Condition = "cleaning"
	ConditionPainting Condition = "painting"
	ConditionHoles    Condition = "holes"
	ConditionFlooring Condition = "flooring"
)

// ConditionCosts is the fixed repair cost table, in whole pounds.
var ConditionCosts = map[Condition]int64{
	ConditionCleaning: 150,
	ConditionPainting: 200,
	ConditionHoles:    100,
	ConditionFlooring: 250,
}

const (
	// ServiceFeeRate is the flat fee taken from the deposit.
	ServiceFeeRate = 0.12

	// MinDepositAmount is the smallest deposit we advance against.
	MinDepositAmount int64 = 100

	// OfferTTL is how long an offer stays open for acceptance.
	OfferTTL = 48 * time.Hour
)

// Quote is the priced outcome of an application.
type Quote struct {
	EstimatedRepairCost int64
	ServiceFee          int64
	AdvanceAmount       int64
}

// CalculateOffer prices an advance from the deposit amount and the selected
// conditions. Pure and deterministic: the preview shown to the tenant and the
// persisted offer must agree to the pound.
func CalculateOffer(depositAmount int64, conditions []Condition) Quote {
	var repairs int64
	for _, c := range conditions {
		repairs += ConditionCosts[c]
	}

	fee := int64(math.Round(float64(depositAmount) * ServiceFeeRate))

	advance := depositAmount - repairs - fee
	if advance < 0 {
		advance = 0
	}

	return Quote{
		EstimatedRepairCost: repairs,
		ServiceFee:          fee,
		AdvanceAmount:       advance,
	}
}
