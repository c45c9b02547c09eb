package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentMilestone is one stage of a structured payment plan.
type PaymentMilestone struct {
	Stage   string          `json:"stage"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// PaymentPlan is the tagged form of the free-text payment_plan column:
// either a parseable ordered list of milestones or plain text. Resolved once
// here at the entity boundary, never re-sniffed at render time.
type PaymentPlan struct {
	Milestones []PaymentMilestone
	FreeText   string
}

// Structured reports whether the plan parsed as a milestone list.
func (p PaymentPlan) Structured() bool { return p.Milestones != nil }

// Empty reports whether there is no plan at all.
func (p PaymentPlan) Empty() bool { return p.Milestones == nil && p.FreeText == "" }

// ParsePaymentPlan resolves the stored text. A JSON array yields the
// structured form; anything else (including malformed JSON) falls back to
// free text rather than erroring.
func ParsePaymentPlan(raw string) PaymentPlan {
	if raw == "" {
		return PaymentPlan{}
	}
	var milestones []PaymentMilestone
	if err := json.Unmarshal([]byte(raw), &milestones); err == nil {
		return PaymentPlan{Milestones: milestones}
	}
	return PaymentPlan{FreeText: raw}
}
