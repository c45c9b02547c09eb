package dto

import "github.com/shopspring/decimal"

// CreateBillRequest body for POST /api/bills. The tax breakdown is
// snapshotted from the quotation, never sent by the caller.
type CreateBillRequest struct {
	QuotationID int64  `json:"quotation_id" validate:"required,gt=0"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD, today when empty
	Notes       string `json:"notes,omitempty"`
}

// UpdateBillRequest body for PUT /api/bills/:id. Only date and notes are
// mutable; totals stay the creation-time snapshot.
type UpdateBillRequest struct {
	Date  string `json:"date,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// BillResponse bill for GET /api/bills/:id.
type BillResponse struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"company_id"`
	QuotationID     int64           `json:"quotation_id"`
	QuotationNumber string          `json:"quotation_number,omitempty"`
	ClientName      string          `json:"client_name,omitempty"`
	Number          string          `json:"number"`
	Date            string          `json:"date"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	CGSTPercent     decimal.Decimal `json:"cgst_percent"`
	CGSTAmount      decimal.Decimal `json:"cgst_amount"`
	SGSTPercent     decimal.Decimal `json:"sgst_percent"`
	SGSTAmount      decimal.Decimal `json:"sgst_amount"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	BalanceAmount   decimal.Decimal `json:"balance_amount"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
}

// CreateReceiptRequest body for POST /api/receipts.
type CreateReceiptRequest struct {
	QuotationID    int64           `json:"quotation_id" validate:"required,gt=0"`
	Date           string          `json:"date,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMode    string          `json:"payment_mode,omitempty"`
	TransactionRef string          `json:"transaction_ref,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// UpdateReceiptRequest body for PUT /api/receipts/:id. The quotation link and
// number are immutable.
type UpdateReceiptRequest struct {
	Date           string          `json:"date,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMode    string          `json:"payment_mode,omitempty"`
	TransactionRef string          `json:"transaction_ref,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// ReceiptResponse receipt in responses.
type ReceiptResponse struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"company_id"`
	QuotationID     int64           `json:"quotation_id"`
	QuotationNumber string          `json:"quotation_number,omitempty"`
	ClientName      string          `json:"client_name,omitempty"`
	Number          string          `json:"number"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMode     string          `json:"payment_mode,omitempty"`
	TransactionRef  string          `json:"transaction_ref,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// ShareLinkResponse prebuilt WhatsApp share link for a document.
type ShareLinkResponse struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URL     string `json:"url"`
}
