package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill payment states, recomputed after every receipt mutation.
const (
	BillStatusPending = "pending"
	BillStatusPartial = "partial"
	BillStatusPaid    = "paid"
)

// Bill is a tax invoice derived from exactly one quotation. Subtotal through
// GrandTotal are a snapshot of the quotation's tax breakdown at creation;
// PaidAmount, BalanceAmount and Status are mutable reconciliation state.
type Bill struct {
	ID            int64
	CompanyID     int64
	QuotationID   int64
	Number        string
	Date          time.Time
	Subtotal      decimal.Decimal
	CGSTPercent   decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTPercent   decimal.Decimal
	SGSTAmount    decimal.Decimal
	TotalTax      decimal.Decimal
	GrandTotal    decimal.Decimal
	PaidAmount    decimal.Decimal
	BalanceAmount decimal.Decimal
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
