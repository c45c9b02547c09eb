package repository

import (
	"context"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// ClientRepository persists a company's clients. Reads are company-scoped so
// one tenant can never address another tenant's rows.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	ListByCompany(ctx context.Context, companyID int64) ([]entity.Client, error)
	GetByID(ctx context.Context, companyID, id int64) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, companyID, id int64) error
}
