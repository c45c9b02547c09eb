package repository

import (
	"context"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// SqftDefaultRepository persists a company's item templates for area-rate
// quotations. The set is small and edited as a whole, so there is no
// per-row update.
type SqftDefaultRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]entity.SqftDefault, error)
	Replace(ctx context.Context, companyID int64, items []entity.SqftDefault) error
}
