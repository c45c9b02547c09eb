package payments_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/payments"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name        string
		grandTotal  string
		receiptsSum string
		wantPaid    string
		wantBalance string
		wantStatus  string
	}{
		{"no receipts", "10000", "0", "0", "10000", entity.BillStatusPending},
		{"partial payment", "10000", "4000", "4000", "6000", entity.BillStatusPartial},
		{"exact payment", "10000", "10000", "10000", "0", entity.BillStatusPaid},
		{"overpayment keeps paid, negative balance", "10000", "12000", "12000", "-2000", entity.BillStatusPaid},
		{"zero bill with no receipts is paid", "0", "0", "0", "0", entity.BillStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := payments.Reconcile(
				decimal.RequireFromString(tt.grandTotal),
				decimal.RequireFromString(tt.receiptsSum),
			)
			assert.True(t, s.PaidAmount.Equal(decimal.RequireFromString(tt.wantPaid)), "paid = %s", s.PaidAmount)
			assert.True(t, s.BalanceAmount.Equal(decimal.RequireFromString(tt.wantBalance)), "balance = %s", s.BalanceAmount)
			assert.Equal(t, tt.wantStatus, s.Status)
		})
	}
}

// Reconciling twice with the same inputs yields the same result; there is no
// hidden accumulation.
func TestReconcile_Idempotent(t *testing.T) {
	a := payments.Reconcile(decimal.NewFromInt(50000), decimal.NewFromInt(20000))
	b := payments.Reconcile(decimal.NewFromInt(50000), decimal.NewFromInt(20000))
	assert.Equal(t, a, b)
}
