package dto

import "github.com/shopspring/decimal"

// QuotationItemRequest one item line in a create/update request.
type QuotationItemRequest struct {
	RoomLabel   string          `json:"room_label,omitempty"`
	ItemName    string          `json:"item_name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Material    string          `json:"material,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Remarks     string          `json:"remarks,omitempty"`
}

// CreateQuotationRequest body for POST /api/quotations. The pricing basis is
// either the item lines or total_sqft × rate_per_sqft; items win when both
// are present. Tax percents left null default to 9; an explicit 0 is honored.
type CreateQuotationRequest struct {
	ClientID      int64                  `json:"client_id" validate:"required,gt=0"`
	PackageID     *int64                 `json:"package_id,omitempty"`
	Date          string                 `json:"date,omitempty"` // YYYY-MM-DD, today when empty
	TotalSqft     decimal.Decimal        `json:"total_sqft"`
	RatePerSqft   decimal.Decimal        `json:"rate_per_sqft"`
	BedroomCount  int                    `json:"bedroom_count,omitempty"`
	BedroomConfig string                 `json:"bedroom_config,omitempty"`
	Items         []QuotationItemRequest `json:"items" validate:"dive"`
	DiscountType  string                 `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage flat"`
	DiscountValue decimal.Decimal        `json:"discount_value"`
	CGSTPercent   *decimal.Decimal       `json:"cgst_percent,omitempty"`
	SGSTPercent   *decimal.Decimal       `json:"sgst_percent,omitempty"`
	Terms         string                 `json:"terms,omitempty"`
	PaymentPlan   string                 `json:"payment_plan,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	Status        string                 `json:"status,omitempty" validate:"omitempty,oneof=draft confirmed"`
}

// UpdateQuotationRequest body for PUT /api/quotations/:id. The number is
// immutable; items are replaced wholesale.
type UpdateQuotationRequest = CreateQuotationRequest

// CalculateRequest body for POST /api/quotations/calculate — a pure pricing
// preview, nothing persisted.
type CalculateRequest struct {
	TotalSqft     decimal.Decimal        `json:"total_sqft"`
	RatePerSqft   decimal.Decimal        `json:"rate_per_sqft"`
	Items         []QuotationItemRequest `json:"items" validate:"dive"`
	DiscountType  string                 `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage flat"`
	DiscountValue decimal.Decimal        `json:"discount_value"`
	CGSTPercent   *decimal.Decimal       `json:"cgst_percent,omitempty"`
	SGSTPercent   *decimal.Decimal       `json:"sgst_percent,omitempty"`
}

// SqftDefaultItem one prefilled template line for area-rate quotations.
type SqftDefaultItem struct {
	RoomLabel string          `json:"room_label" validate:"required"`
	ItemName  string          `json:"item_name" validate:"required"`
	Unit      string          `json:"unit,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// SqftDefaultsResponse body of GET /api/quotations/defaults/sqft.
type SqftDefaultsResponse struct {
	Items []SqftDefaultItem `json:"items"`
}

// SaveSqftDefaultsRequest body for PUT /api/quotations/defaults/sqft —
// replaces the company's whole template set.
type SaveSqftDefaultsRequest struct {
	Items []SqftDefaultItem `json:"items" validate:"dive"`
}

// PricingBreakdown the computed totals, shared by quotations and the
// calculate preview.
type PricingBreakdown struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountType  string          `json:"discount_type,omitempty"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	DiscountAmt   decimal.Decimal `json:"discount_amount"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGSTPercent   decimal.Decimal `json:"cgst_percent"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTPercent   decimal.Decimal `json:"sgst_percent"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// QuotationItemResponse item line in responses.
type QuotationItemResponse struct {
	ID          int64           `json:"id"`
	RoomLabel   string          `json:"room_label,omitempty"`
	ItemName    string          `json:"item_name"`
	Description string          `json:"description,omitempty"`
	Material    string          `json:"material,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Remarks     string          `json:"remarks,omitempty"`
	SortOrder   int             `json:"sort_order"`
}

// QuotationResponse full quotation for GET /api/quotations/:id.
type QuotationResponse struct {
	ID            int64                   `json:"id"`
	CompanyID     int64                   `json:"company_id"`
	ClientID      int64                   `json:"client_id"`
	PackageID     *int64                  `json:"package_id,omitempty"`
	Number        string                  `json:"number"`
	Date          string                  `json:"date"`
	TotalSqft     decimal.Decimal         `json:"total_sqft"`
	RatePerSqft   decimal.Decimal         `json:"rate_per_sqft"`
	BedroomCount  int                     `json:"bedroom_count,omitempty"`
	BedroomConfig string                  `json:"bedroom_config,omitempty"`
	Pricing       PricingBreakdown        `json:"pricing"`
	Terms         string                  `json:"terms,omitempty"`
	PaymentPlan   string                  `json:"payment_plan,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	Status        string                  `json:"status"`
	Items         []QuotationItemResponse `json:"items,omitempty"`
}

// QuotationListItem row for quotation listings.
type QuotationListItem struct {
	ID          int64           `json:"id"`
	Number      string          `json:"number"`
	Date        string          `json:"date"`
	ClientName  string          `json:"client_name"`
	ClientPhone string          `json:"client_phone,omitempty"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	Status      string          `json:"status"`
}
