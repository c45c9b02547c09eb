package repository

import (
	"context"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// PackageRepository persists a company's price packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	ListByCompany(ctx context.Context, companyID int64) ([]entity.Package, error)
	GetByID(ctx context.Context, companyID, id int64) (*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, companyID, id int64) error
}
