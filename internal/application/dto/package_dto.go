package dto

import "github.com/shopspring/decimal"

// CreatePackageRequest body for POST /api/packages.
type CreatePackageRequest struct {
	Name         string          `json:"name" validate:"required"`
	BHKType      string          `json:"bhk_type,omitempty"`
	Tier         string          `json:"tier,omitempty"`
	BaseRateSqft decimal.Decimal `json:"base_rate_sqft"`
	Description  string          `json:"description,omitempty"`
	IsActive     *bool           `json:"is_active,omitempty"`
}

// UpdatePackageRequest body for PUT /api/packages/:id.
type UpdatePackageRequest = CreatePackageRequest

// PackageResponse package in responses.
type PackageResponse struct {
	ID           int64           `json:"id"`
	CompanyID    int64           `json:"company_id"`
	Name         string          `json:"name"`
	BHKType      string          `json:"bhk_type,omitempty"`
	Tier         string          `json:"tier,omitempty"`
	BaseRateSqft decimal.Decimal `json:"base_rate_sqft"`
	Description  string          `json:"description,omitempty"`
	IsActive     bool            `json:"is_active"`
}
