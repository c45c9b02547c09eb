package entity

import "github.com/shopspring/decimal"

// QuotationItem is one priced line of a quotation, ordered by SortOrder and
// optionally tagged with a room label for grouping in the rendered document.
// Items are owned by their quotation and replaced wholesale on every update.
type QuotationItem struct {
	ID          int64
	QuotationID int64
	RoomLabel   string
	ItemName    string
	Description string
	Material    string
	Brand       string
	Unit        string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
	Remarks     string
	SortOrder   int
}
