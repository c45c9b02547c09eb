package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CountTotal pairs a row count with a money sum, the shape of every
// aggregate the dashboard shows.
type CountTotal struct {
	Count int64
	Total decimal.Decimal
}

// DashboardStats is the landing-page summary for one company.
type DashboardStats struct {
	Quotations        CountTotal
	Bills             CountTotal
	Receipts          CountTotal
	PendingBalance    decimal.Decimal
	MonthlyQuotations CountTotal
	MonthlyReceipts   CountTotal
	Clients           int64
}

// SummaryReport aggregates quotations, billing and collections over an
// optional date range.
type SummaryReport struct {
	QuotationCount int64
	QuotationValue decimal.Decimal
	TotalDiscount  decimal.Decimal
	TotalTax       decimal.Decimal
	BillCount      int64
	TotalBilled    decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalPending   decimal.Decimal
	ReceiptCount   int64
	TotalReceived  decimal.Decimal
	CashReceived   decimal.Decimal
}

// ReportRepository runs the read-only aggregation queries behind the
// dashboard and the summary report.
type ReportRepository interface {
	DashboardStats(ctx context.Context, companyID int64, now time.Time) (*DashboardStats, error)
	Summary(ctx context.Context, companyID int64, from, to *time.Time) (*SummaryReport, error)
}
