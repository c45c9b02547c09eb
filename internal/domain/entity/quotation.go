package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation lifecycle states.
const (
	QuotationStatusDraft     = "draft"
	QuotationStatusConfirmed = "confirmed"
	QuotationStatusBilled    = "billed" // a bill exists for this quotation
)

// DiscountType distinguishes how DiscountValue is interpreted.
type DiscountType string

const (
	DiscountNone       DiscountType = ""
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// Quotation is a priced proposal for a client. Number is unique per company
// and immutable once assigned. The pricing basis is either the item lines
// (item-rate mode) or TotalSqft × RatePerSqft (area-rate mode); items win
// when both are present.
type Quotation struct {
	ID            int64
	CompanyID     int64
	ClientID      int64
	PackageID     *int64
	Number        string
	Date          time.Time
	TotalSqft     decimal.Decimal
	RatePerSqft   decimal.Decimal
	BedroomCount  int
	BedroomConfig string // free-form JSON kept opaque
	Subtotal      decimal.Decimal
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	DiscountAmt   decimal.Decimal
	TaxableAmount decimal.Decimal
	CGSTPercent   decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTPercent   decimal.Decimal
	SGSTAmount    decimal.Decimal
	TotalTax      decimal.Decimal
	GrandTotal    decimal.Decimal
	Terms         string
	PaymentPlan   string
	Notes         string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AreaRateBased reports whether the quotation is priced by area × rate
// rather than by item lines. Mirrors the layout decision in the PDF planner.
func (q *Quotation) AreaRateBased() bool {
	return q.RatePerSqft.IsPositive()
}
