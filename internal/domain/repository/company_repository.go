package repository

import (
	"context"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// CompanyRepository persists tenants.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	List(ctx context.Context) ([]entity.Company, error)
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}
