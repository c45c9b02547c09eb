package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package is a pre-priced interior package (tier × BHK type) that a quotation
// may reference for its rate-per-sqft basis.
type Package struct {
	ID           int64
	CompanyID    int64
	Name         string
	BHKType      string
	Tier         string
	BaseRateSqft decimal.Decimal
	Description  string
	IsActive     bool
	CreatedAt    time.Time
}
