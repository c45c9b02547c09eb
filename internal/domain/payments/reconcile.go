// Package payments reconciles a bill's payment state against the receipts
// recorded for its quotation.
package payments

import (
	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// Settlement is the recomputed payment state of a bill.
type Settlement struct {
	PaidAmount    decimal.Decimal
	BalanceAmount decimal.Decimal
	Status        string
}

// Reconcile derives paid amount, balance and status from the bill's grand
// total and the current sum of receipts. Pure and idempotent; it is invoked
// after every receipt mutation and once at bill creation (seeding paid from
// receipts that predate the bill). An overpaid bill reports status paid with
// a negative balance; that is observed behavior, kept as-is.
func Reconcile(billGrandTotal, receiptsSum decimal.Decimal) Settlement {
	balance := billGrandTotal.Sub(receiptsSum)

	status := entity.BillStatusPending
	switch {
	case balance.LessThanOrEqual(decimal.Zero):
		status = entity.BillStatusPaid
	case receiptsSum.IsPositive():
		status = entity.BillStatusPartial
	}

	return Settlement{
		PaidAmount:    receiptsSum,
		BalanceAmount: balance,
		Status:        status,
	}
}
