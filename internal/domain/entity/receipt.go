package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a payment record against a quotation. Many receipts may exist
// per quotation; every mutation triggers reconciliation of the quotation's
// bill, if one exists.
type Receipt struct {
	ID             int64
	CompanyID      int64
	QuotationID    int64
	Number         string
	Date           time.Time
	Amount         decimal.Decimal
	PaymentMode    string
	TransactionRef string
	Notes          string
	CreatedAt      time.Time
}
