package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// ReceiptListRow is a receipt joined with its quotation number and client name.
type ReceiptListRow struct {
	entity.Receipt
	QuotationNumber string
	ClientName      string
}

// ReceiptRepository persists payment receipts.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	ListByCompany(ctx context.Context, companyID int64) ([]ReceiptListRow, error)
	ListRecent(ctx context.Context, companyID int64, limit int) ([]ReceiptListRow, error)
	ListByQuotation(ctx context.Context, companyID, quotationID int64) ([]entity.Receipt, error)
	GetByID(ctx context.Context, companyID, id int64) (*entity.Receipt, error)
	Update(ctx context.Context, receipt *entity.Receipt) error
	Delete(ctx context.Context, id int64) error

	// SumByQuotation totals the receipts recorded against a quotation,
	// zero when there are none.
	SumByQuotation(ctx context.Context, quotationID int64) (decimal.Decimal, error)
	CountByQuotation(ctx context.Context, quotationID int64) (int64, error)

	// LastNumberWithPrefix returns the most recently issued receipt number
	// starting with the scope prefix, or "" when the scope is empty.
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
