package quoting

import (
	"context"

	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// TxRunner runs a function inside a transaction with the document
// repositories bound to it. Number allocation and the delete-and-replace of
// item lines must commit or roll back as one unit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		quotationRepo repository.QuotationRepository,
		billRepo repository.BillRepository,
		receiptRepo repository.ReceiptRepository,
	) error) error
}
