package entity

import "github.com/shopspring/decimal"

// SqftDefault is one line of a company's item template for area-rate
// quotations: the section it belongs to and the prefilled name, unit and
// quantity. The full set is replaced wholesale on save.
type SqftDefault struct {
	ID        int64
	CompanyID int64
	RoomLabel string
	ItemName  string
	Unit      string
	Quantity  decimal.Decimal
	SortOrder int
}
