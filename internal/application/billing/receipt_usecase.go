package billing

import (
	"context"
	"time"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/numbering"
	"github.com/vishvakarma/studiodesk-api/internal/domain/payments"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// ReceiptUseCase payment receipt lifecycle. Every mutation reconciles the
// bill on the same quotation, if one exists, inside the same transaction.
type ReceiptUseCase struct {
	tx            TxRunner
	receiptRepo   repository.ReceiptRepository
	quotationRepo repository.QuotationRepository
	alloc         *numbering.Allocator
}

// NewReceiptUseCase builds the use case.
func NewReceiptUseCase(
	tx TxRunner,
	receiptRepo repository.ReceiptRepository,
	quotationRepo repository.QuotationRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		tx:            tx,
		receiptRepo:   receiptRepo,
		quotationRepo: quotationRepo,
		alloc:         numbering.NewAllocator(),
	}
}

// Create records a payment against a quotation and reconciles its bill.
func (uc *ReceiptUseCase) Create(ctx context.Context, companyID int64, companyCode string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	q, err := uc.quotationRepo.GetByID(ctx, companyID, in.QuotationID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	receipt := &entity.Receipt{
		CompanyID:      companyID,
		QuotationID:    q.ID,
		Date:           date,
		Amount:         in.Amount,
		PaymentMode:    in.PaymentMode,
		TransactionRef: in.TransactionRef,
		Notes:          in.Notes,
		CreatedAt:      time.Now(),
	}

	prefix := numbering.ScopePrefix(numbering.DocReceipt, companyCode, time.Now())
	err = uc.alloc.Allocate(ctx, prefix, domain.ErrDuplicate, func(ctx context.Context) error {
		return uc.tx.Run(ctx, func(_ repository.QuotationRepository, br repository.BillRepository, rr repository.ReceiptRepository) error {
			last, err := rr.LastNumberWithPrefix(ctx, prefix)
			if err != nil {
				return err
			}
			receipt.Number = numbering.Next(numbering.DocReceipt, companyCode, last, time.Now())
			if err := rr.Create(ctx, receipt); err != nil {
				return err
			}
			return reconcileBill(ctx, br, rr, q.ID)
		})
	})
	if err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt, q.Number, ""), nil
}

// Update changes a receipt's mutable fields and re-reconciles the bill. The
// quotation link and number are immutable.
func (uc *ReceiptUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateReceiptRequest) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		receipt.Date = parsed
	}
	receipt.Amount = in.Amount
	receipt.PaymentMode = in.PaymentMode
	receipt.TransactionRef = in.TransactionRef
	receipt.Notes = in.Notes

	err = uc.tx.Run(ctx, func(_ repository.QuotationRepository, br repository.BillRepository, rr repository.ReceiptRepository) error {
		if err := rr.Update(ctx, receipt); err != nil {
			return err
		}
		return reconcileBill(ctx, br, rr, receipt.QuotationID)
	})
	if err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt, "", ""), nil
}

// Delete removes a receipt and re-reconciles the bill.
func (uc *ReceiptUseCase) Delete(ctx context.Context, companyID, id int64) error {
	receipt, err := uc.receiptRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(_ repository.QuotationRepository, br repository.BillRepository, rr repository.ReceiptRepository) error {
		if err := rr.Delete(ctx, receipt.ID); err != nil {
			return err
		}
		return reconcileBill(ctx, br, rr, receipt.QuotationID)
	})
}

// GetByID returns one receipt of the company.
func (uc *ReceiptUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	return toReceiptResponse(receipt, "", ""), nil
}

// List returns all receipts of the company with quotation and client columns.
func (uc *ReceiptUseCase) List(ctx context.Context, companyID int64) ([]*dto.ReceiptResponse, error) {
	rows, err := uc.receiptRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toReceiptList(rows), nil
}

// Recent returns the latest receipts for the dashboard.
func (uc *ReceiptUseCase) Recent(ctx context.Context, companyID int64, limit int) ([]*dto.ReceiptResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := uc.receiptRepo.ListRecent(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}
	return toReceiptList(rows), nil
}

// ListByQuotation returns the receipts recorded against one quotation.
func (uc *ReceiptUseCase) ListByQuotation(ctx context.Context, companyID, quotationID int64) ([]*dto.ReceiptResponse, error) {
	list, err := uc.receiptRepo.ListByQuotation(ctx, companyID, quotationID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReceiptResponse, 0, len(list))
	for i := range list {
		out = append(out, toReceiptResponse(&list[i], "", ""))
	}
	return out, nil
}

// reconcileBill recomputes the payment state of the quotation's bill from
// the receipts now on record. No bill, nothing to do.
func reconcileBill(ctx context.Context, br repository.BillRepository, rr repository.ReceiptRepository, quotationID int64) error {
	bill, err := br.GetByQuotation(ctx, quotationID)
	if err != nil {
		return err
	}
	if bill == nil {
		return nil
	}
	sum, err := rr.SumByQuotation(ctx, quotationID)
	if err != nil {
		return err
	}
	return br.UpdatePaymentState(ctx, bill.ID, payments.Reconcile(bill.GrandTotal, sum))
}

func toReceiptList(rows []repository.ReceiptListRow) []*dto.ReceiptResponse {
	out := make([]*dto.ReceiptResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toReceiptResponse(&rows[i].Receipt, rows[i].QuotationNumber, rows[i].ClientName))
	}
	return out
}

func toReceiptResponse(r *entity.Receipt, quotationNumber, clientName string) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:              r.ID,
		CompanyID:       r.CompanyID,
		QuotationID:     r.QuotationID,
		QuotationNumber: quotationNumber,
		ClientName:      clientName,
		Number:          r.Number,
		Date:            r.Date.Format(dateLayout),
		Amount:          r.Amount,
		PaymentMode:     r.PaymentMode,
		TransactionRef:  r.TransactionRef,
		Notes:           r.Notes,
	}
}
