package repository

import (
	"context"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/payments"
)

// BillListRow is a bill joined with its quotation number and client name.
type BillListRow struct {
	entity.Bill
	QuotationNumber string
	ClientName      string
}

// BillRepository persists tax invoices. At most one bill exists per
// quotation; Create must fail with domain.ErrDuplicate when the quotation
// already has one.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	ListByCompany(ctx context.Context, companyID int64) ([]BillListRow, error)
	ListRecent(ctx context.Context, companyID int64, limit int) ([]BillListRow, error)
	GetByID(ctx context.Context, companyID, id int64) (*entity.Bill, error)
	GetByQuotation(ctx context.Context, quotationID int64) (*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	UpdatePaymentState(ctx context.Context, billID int64, s payments.Settlement) error
	Delete(ctx context.Context, id int64) error

	// LastNumberWithPrefix returns the most recently issued bill number
	// starting with the scope prefix, or "" when the scope is empty.
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
