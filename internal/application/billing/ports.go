package billing

import (
	"context"

	"github.com/vishvakarma/studiodesk-api/internal/application/render"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// TxRunner runs a function inside a transaction with the document
// repositories bound to it. Bill creation couples the number allocation, the
// insert and the quotation status flip; receipt mutations couple the write
// with the bill reconciliation.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		quotationRepo repository.QuotationRepository,
		billRepo repository.BillRepository,
		receiptRepo repository.ReceiptRepository,
	) error) error
}

// DocumentRenderer turns a finished layout plan into PDF bytes.
type DocumentRenderer interface {
	Render(ctx context.Context, plan *render.Plan) ([]byte, error)
}
