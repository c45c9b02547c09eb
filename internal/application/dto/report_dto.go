package dto

import "github.com/shopspring/decimal"

// CountTotalDTO a row count with a money sum.
type CountTotalDTO struct {
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse landing-page summary for GET /api/reports/dashboard.
type DashboardResponse struct {
	Quotations        CountTotalDTO   `json:"quotations"`
	Bills             CountTotalDTO   `json:"bills"`
	Receipts          CountTotalDTO   `json:"receipts"`
	PendingBalance    decimal.Decimal `json:"pending_balance"`
	MonthlyQuotations CountTotalDTO   `json:"monthly_quotations"`
	MonthlyReceipts   CountTotalDTO   `json:"monthly_receipts"`
	Clients           int64           `json:"clients"`
}

// SummaryResponse aggregate report for GET /api/reports/summary.
type SummaryResponse struct {
	QuotationCount int64           `json:"quotation_count"`
	QuotationValue decimal.Decimal `json:"quotation_value"`
	TotalDiscount  decimal.Decimal `json:"total_discount"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	BillCount      int64           `json:"bill_count"`
	TotalBilled    decimal.Decimal `json:"total_billed"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalPending   decimal.Decimal `json:"total_pending"`
	ReceiptCount   int64           `json:"receipt_count"`
	TotalReceived  decimal.Decimal `json:"total_received"`
	CashReceived   decimal.Decimal `json:"cash_received"`
}
