package repository

import (
	"context"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// QuotationListRow is a quotation joined with the client columns the list
// views display.
type QuotationListRow struct {
	entity.Quotation
	ClientName  string
	ClientPhone string
}

// QuotationRepository persists quotations and their item lines. Items are
// exclusively owned: ReplaceItems deletes and re-inserts the full set.
type QuotationRepository interface {
	Create(ctx context.Context, q *entity.Quotation) error
	ListByCompany(ctx context.Context, companyID int64) ([]QuotationListRow, error)
	ListRecent(ctx context.Context, companyID int64, limit int) ([]QuotationListRow, error)
	GetByID(ctx context.Context, companyID, id int64) (*entity.Quotation, error)
	Update(ctx context.Context, q *entity.Quotation) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, companyID, id int64) error

	ListItems(ctx context.Context, quotationID int64) ([]entity.QuotationItem, error)
	ReplaceItems(ctx context.Context, quotationID int64, items []entity.QuotationItem) error

	// LastNumberWithPrefix returns the most recently issued quotation number
	// starting with the scope prefix, or "" when the scope is empty.
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
