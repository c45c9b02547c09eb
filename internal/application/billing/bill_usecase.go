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

const dateLayout = "2006-01-02"

// BillUseCase tax invoice lifecycle. A bill is a snapshot of exactly one
// quotation's tax breakdown; creating one flips the quotation to billed,
// deleting one reverts it to confirmed.
type BillUseCase struct {
	tx            TxRunner
	billRepo      repository.BillRepository
	quotationRepo repository.QuotationRepository
	receiptRepo   repository.ReceiptRepository
	alloc         *numbering.Allocator
}

// NewBillUseCase builds the use case.
func NewBillUseCase(
	tx TxRunner,
	billRepo repository.BillRepository,
	quotationRepo repository.QuotationRepository,
	receiptRepo repository.ReceiptRepository,
) *BillUseCase {
	return &BillUseCase{
		tx:            tx,
		billRepo:      billRepo,
		quotationRepo: quotationRepo,
		receiptRepo:   receiptRepo,
		alloc:         numbering.NewAllocator(),
	}
}

// Create issues a bill from a quotation. Totals are snapshotted, the paid
// state is seeded from receipts already recorded against the quotation, and
// the quotation flips to billed, all in one transaction.
func (uc *BillUseCase) Create(ctx context.Context, companyID int64, companyCode string, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	q, err := uc.quotationRepo.GetByID(ctx, companyID, in.QuotationID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.billRepo.GetByQuotation(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrQuotationHasBill
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	now := time.Now()
	bill := &entity.Bill{
		CompanyID:   companyID,
		QuotationID: q.ID,
		Date:        date,
		Subtotal:    q.TaxableAmount,
		CGSTPercent: q.CGSTPercent,
		CGSTAmount:  q.CGSTAmount,
		SGSTPercent: q.SGSTPercent,
		SGSTAmount:  q.SGSTAmount,
		TotalTax:    q.TotalTax,
		GrandTotal:  q.GrandTotal,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	prefix := numbering.ScopePrefix(numbering.DocBill, companyCode, time.Now())
	err = uc.alloc.Allocate(ctx, prefix, domain.ErrDuplicate, func(ctx context.Context) error {
		return uc.tx.Run(ctx, func(qr repository.QuotationRepository, br repository.BillRepository, rr repository.ReceiptRepository) error {
			paid, err := rr.SumByQuotation(ctx, q.ID)
			if err != nil {
				return err
			}
			s := payments.Reconcile(bill.GrandTotal, paid)
			bill.PaidAmount = s.PaidAmount
			bill.BalanceAmount = s.BalanceAmount
			bill.Status = s.Status

			last, err := br.LastNumberWithPrefix(ctx, prefix)
			if err != nil {
				return err
			}
			bill.Number = numbering.Next(numbering.DocBill, companyCode, last, time.Now())
			if err := br.Create(ctx, bill); err != nil {
				return err
			}
			return qr.UpdateStatus(ctx, q.ID, entity.QuotationStatusBilled)
		})
	})
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill, q.Number, ""), nil
}

// Update changes date and notes only; the totals stay the creation-time
// snapshot of the quotation.
func (uc *BillUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateBillRequest) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		bill.Date = parsed
	}
	bill.Notes = in.Notes
	bill.UpdatedAt = time.Now()
	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill, "", ""), nil
}

// Delete removes a bill and reverts its quotation to confirmed.
func (uc *BillUseCase) Delete(ctx context.Context, companyID, id int64) error {
	bill, err := uc.billRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(qr repository.QuotationRepository, br repository.BillRepository, _ repository.ReceiptRepository) error {
		if err := br.Delete(ctx, bill.ID); err != nil {
			return err
		}
		return qr.UpdateStatus(ctx, bill.QuotationID, entity.QuotationStatusConfirmed)
	})
}

// GetByID returns one bill of the company.
func (uc *BillUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return toBillResponse(bill, "", ""), nil
}

// List returns all bills of the company with quotation and client columns.
func (uc *BillUseCase) List(ctx context.Context, companyID int64) ([]*dto.BillResponse, error) {
	rows, err := uc.billRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toBillList(rows), nil
}

// Recent returns the latest bills for the dashboard.
func (uc *BillUseCase) Recent(ctx context.Context, companyID int64, limit int) ([]*dto.BillResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := uc.billRepo.ListRecent(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}
	return toBillList(rows), nil
}

func toBillList(rows []repository.BillListRow) []*dto.BillResponse {
	out := make([]*dto.BillResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toBillResponse(&rows[i].Bill, rows[i].QuotationNumber, rows[i].ClientName))
	}
	return out
}

func toBillResponse(b *entity.Bill, quotationNumber, clientName string) *dto.BillResponse {
	return &dto.BillResponse{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		QuotationID:     b.QuotationID,
		QuotationNumber: quotationNumber,
		ClientName:      clientName,
		Number:          b.Number,
		Date:            b.Date.Format(dateLayout),
		Subtotal:        b.Subtotal,
		CGSTPercent:     b.CGSTPercent,
		CGSTAmount:      b.CGSTAmount,
		SGSTPercent:     b.SGSTPercent,
		SGSTAmount:      b.SGSTAmount,
		TotalTax:        b.TotalTax,
		GrandTotal:      b.GrandTotal,
		PaidAmount:      b.PaidAmount,
		BalanceAmount:   b.BalanceAmount,
		Status:          b.Status,
		Notes:           b.Notes,
	}
}
