package quoting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/numbering"
	"github.com/vishvakarma/studiodesk-api/internal/domain/pricing"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// QuotingUseCase quotation lifecycle: create with number allocation, update
// with wholesale item replacement, guarded delete, and the pure pricing
// preview.
type QuotingUseCase struct {
	tx            TxRunner
	quotationRepo repository.QuotationRepository
	clientRepo    repository.ClientRepository
	packageRepo   repository.PackageRepository
	companyRepo   repository.CompanyRepository
	billRepo      repository.BillRepository
	receiptRepo   repository.ReceiptRepository
	defaultsRepo  repository.SqftDefaultRepository
	alloc         *numbering.Allocator
}

// NewQuotingUseCase builds the use case.
func NewQuotingUseCase(
	tx TxRunner,
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	packageRepo repository.PackageRepository,
	companyRepo repository.CompanyRepository,
	billRepo repository.BillRepository,
	receiptRepo repository.ReceiptRepository,
	defaultsRepo repository.SqftDefaultRepository,
) *QuotingUseCase {
	return &QuotingUseCase{
		tx:            tx,
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		packageRepo:   packageRepo,
		companyRepo:   companyRepo,
		billRepo:      billRepo,
		receiptRepo:   receiptRepo,
		defaultsRepo:  defaultsRepo,
		alloc:         numbering.NewAllocator(),
	}
}

// Create prices and persists a new quotation. The number is allocated and
// the rows inserted in one transaction; a unique-key race on the number
// retries inside the allocator.
func (uc *QuotingUseCase) Create(ctx context.Context, companyID int64, companyCode string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, companyID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.PackageID != nil {
		pkg, err := uc.packageRepo.GetByID(ctx, companyID, *in.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, domain.ErrNotFound
		}
	}

	q, items, err := uc.buildQuotation(ctx, companyID, in)
	if err != nil {
		return nil, err
	}

	prefix := numbering.ScopePrefix(numbering.DocQuotation, companyCode, time.Now())
	err = uc.alloc.Allocate(ctx, prefix, domain.ErrDuplicate, func(ctx context.Context) error {
		return uc.tx.Run(ctx, func(qr repository.QuotationRepository, _ repository.BillRepository, _ repository.ReceiptRepository) error {
			last, err := qr.LastNumberWithPrefix(ctx, prefix)
			if err != nil {
				return err
			}
			q.Number = numbering.Next(numbering.DocQuotation, companyCode, last, time.Now())
			if err := qr.Create(ctx, q); err != nil {
				return err
			}
			return qr.ReplaceItems(ctx, q.ID, items)
		})
	})
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q, items), nil
}

// Update re-prices and rewrites a quotation. The number and status are kept;
// item lines are replaced wholesale in the same transaction.
func (uc *QuotingUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.quotationRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	q, items, err := uc.buildQuotation(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	q.ID = existing.ID
	q.Number = existing.Number
	q.Status = existing.Status
	q.CreatedAt = existing.CreatedAt
	if in.Status != "" && existing.Status != entity.QuotationStatusBilled {
		q.Status = in.Status
	}

	err = uc.tx.Run(ctx, func(qr repository.QuotationRepository, _ repository.BillRepository, _ repository.ReceiptRepository) error {
		if err := qr.Update(ctx, q); err != nil {
			return err
		}
		return qr.ReplaceItems(ctx, q.ID, items)
	})
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q, items), nil
}

// Delete removes a quotation. Blocked while a bill or any receipt still
// references it.
func (uc *QuotingUseCase) Delete(ctx context.Context, companyID, id int64) error {
	q, err := uc.quotationRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	bill, err := uc.billRepo.GetByQuotation(ctx, id)
	if err != nil {
		return err
	}
	if bill != nil {
		return domain.ErrQuotationHasBill
	}
	n, err := uc.receiptRepo.CountByQuotation(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrQuotationInUse
	}
	return uc.quotationRepo.Delete(ctx, companyID, id)
}

// GetByID returns a quotation with its item lines.
func (uc *QuotingUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.quotationRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q, items), nil
}

// List returns all quotations of the company with client columns joined.
func (uc *QuotingUseCase) List(ctx context.Context, companyID int64) ([]dto.QuotationListItem, error) {
	rows, err := uc.quotationRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toQuotationList(rows), nil
}

// Recent returns the latest quotations for the dashboard.
func (uc *QuotingUseCase) Recent(ctx context.Context, companyID int64, limit int) ([]dto.QuotationListItem, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := uc.quotationRepo.ListRecent(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}
	return toQuotationList(rows), nil
}

// SqftDefaults returns the company's item templates for area-rate quotations.
func (uc *QuotingUseCase) SqftDefaults(ctx context.Context, companyID int64) (*dto.SqftDefaultsResponse, error) {
	defaults, err := uc.defaultsRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.SqftDefaultsResponse{Items: []dto.SqftDefaultItem{}}
	for _, d := range defaults {
		out.Items = append(out.Items, dto.SqftDefaultItem{
			RoomLabel: d.RoomLabel,
			ItemName:  d.ItemName,
			Unit:      d.Unit,
			Quantity:  d.Quantity,
		})
	}
	return out, nil
}

// SaveSqftDefaults replaces the company's template set with the request,
// keeping the request order. Blank units fall back to "-" and zero quantities
// to 1, matching what the templates prefill into a quotation form.
func (uc *QuotingUseCase) SaveSqftDefaults(ctx context.Context, companyID int64, in dto.SaveSqftDefaultsRequest) error {
	if err := dto.Validate(in); err != nil {
		return domain.ErrInvalidInput
	}
	items := make([]entity.SqftDefault, 0, len(in.Items))
	for _, line := range in.Items {
		unit := line.Unit
		if unit == "" {
			unit = "-"
		}
		qty := line.Quantity
		if qty.IsZero() {
			qty = decimal.NewFromInt(1)
		}
		items = append(items, entity.SqftDefault{
			RoomLabel: line.RoomLabel,
			ItemName:  line.ItemName,
			Unit:      unit,
			Quantity:  qty,
		})
	}
	return uc.defaultsRepo.Replace(ctx, companyID, items)
}

// Calculate runs the pricing pipeline without persisting anything.
func (uc *QuotingUseCase) Calculate(ctx context.Context, in dto.CalculateRequest) (*dto.PricingBreakdown, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	items := buildItems(in.Items)
	result, err := price(items, in.TotalSqft, in.RatePerSqft, in.DiscountType, in.DiscountValue, in.CGSTPercent, in.SGSTPercent)
	if err != nil {
		return nil, err
	}
	out := toBreakdown(result, entity.DiscountType(in.DiscountType), in.DiscountValue)
	return &out, nil
}

// buildQuotation prices the request and assembles the entity, applying the
// company's default terms and payment plan when the request leaves them empty.
func (uc *QuotingUseCase) buildQuotation(ctx context.Context, companyID int64, in dto.CreateQuotationRequest) (*entity.Quotation, []entity.QuotationItem, error) {
	items := buildItems(in.Items)
	result, err := price(items, in.TotalSqft, in.RatePerSqft, in.DiscountType, in.DiscountValue, in.CGSTPercent, in.SGSTPercent)
	if err != nil {
		return nil, nil, err
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	terms, plan := in.Terms, in.PaymentPlan
	if terms == "" || plan == "" {
		company, err := uc.companyRepo.GetByID(ctx, companyID)
		if err != nil {
			return nil, nil, err
		}
		if company != nil {
			if terms == "" {
				terms = company.DefaultTerms
			}
			if plan == "" {
				plan = company.DefaultPaymentPlan
			}
		}
	}

	status := in.Status
	if status == "" {
		status = entity.QuotationStatusDraft
	}

	now := time.Now()
	q := &entity.Quotation{
		CompanyID:     companyID,
		ClientID:      in.ClientID,
		PackageID:     in.PackageID,
		Date:          date,
		TotalSqft:     in.TotalSqft,
		RatePerSqft:   in.RatePerSqft,
		BedroomCount:  in.BedroomCount,
		BedroomConfig: in.BedroomConfig,
		Subtotal:      result.Subtotal,
		DiscountType:  entity.DiscountType(in.DiscountType),
		DiscountValue: in.DiscountValue,
		DiscountAmt:   result.DiscountAmount,
		TaxableAmount: result.TaxableAmount,
		CGSTPercent:   result.CGSTPercent,
		CGSTAmount:    result.CGSTAmount,
		SGSTPercent:   result.SGSTPercent,
		SGSTAmount:    result.SGSTAmount,
		TotalTax:      result.TotalTax,
		GrandTotal:    result.GrandTotal,
		Terms:         terms,
		PaymentPlan:   plan,
		Notes:         in.Notes,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return q, items, nil
}

// buildItems maps request lines to entities, computing each amount and the
// sort position from the request order.
func buildItems(in []dto.QuotationItemRequest) []entity.QuotationItem {
	items := make([]entity.QuotationItem, 0, len(in))
	for i, line := range in {
		items = append(items, entity.QuotationItem{
			RoomLabel:   line.RoomLabel,
			ItemName:    line.ItemName,
			Description: line.Description,
			Material:    line.Material,
			Brand:       line.Brand,
			Unit:        line.Unit,
			Quantity:    line.Quantity,
			Rate:        line.Rate,
			Amount:      line.Quantity.Mul(line.Rate),
			Remarks:     line.Remarks,
			SortOrder:   i,
		})
	}
	return items
}

// price resolves the basis (item lines win over area × rate) and the tax
// percents, then runs the pricing pipeline.
func price(items []entity.QuotationItem, totalSqft, ratePerSqft decimal.Decimal, discountType string, discountValue decimal.Decimal, cgst, sgst *decimal.Decimal) (pricing.Result, error) {
	lineTotal := decimal.Zero
	if len(items) > 0 {
		for _, item := range items {
			lineTotal = lineTotal.Add(item.Amount)
		}
	} else {
		lineTotal = totalSqft.Mul(ratePerSqft)
	}
	d := pricing.Discount{Type: entity.DiscountType(discountType), Value: discountValue}
	return pricing.Compute(lineTotal, d, pricing.ResolveTaxPercent(cgst), pricing.ResolveTaxPercent(sgst))
}

func toBreakdown(r pricing.Result, discountType entity.DiscountType, discountValue decimal.Decimal) dto.PricingBreakdown {
	return dto.PricingBreakdown{
		Subtotal:      r.Subtotal,
		DiscountType:  string(discountType),
		DiscountValue: discountValue,
		DiscountAmt:   r.DiscountAmount,
		TaxableAmount: r.TaxableAmount,
		CGSTPercent:   r.CGSTPercent,
		CGSTAmount:    r.CGSTAmount,
		SGSTPercent:   r.SGSTPercent,
		SGSTAmount:    r.SGSTAmount,
		TotalTax:      r.TotalTax,
		GrandTotal:    r.GrandTotal,
	}
}

func toQuotationResponse(q *entity.Quotation, items []entity.QuotationItem) *dto.QuotationResponse {
	out := &dto.QuotationResponse{
		ID:            q.ID,
		CompanyID:     q.CompanyID,
		ClientID:      q.ClientID,
		PackageID:     q.PackageID,
		Number:        q.Number,
		Date:          q.Date.Format(dateLayout),
		TotalSqft:     q.TotalSqft,
		RatePerSqft:   q.RatePerSqft,
		BedroomCount:  q.BedroomCount,
		BedroomConfig: q.BedroomConfig,
		Pricing: dto.PricingBreakdown{
			Subtotal:      q.Subtotal,
			DiscountType:  string(q.DiscountType),
			DiscountValue: q.DiscountValue,
			DiscountAmt:   q.DiscountAmt,
			TaxableAmount: q.TaxableAmount,
			CGSTPercent:   q.CGSTPercent,
			CGSTAmount:    q.CGSTAmount,
			SGSTPercent:   q.SGSTPercent,
			SGSTAmount:    q.SGSTAmount,
			TotalTax:      q.TotalTax,
			GrandTotal:    q.GrandTotal,
		},
		Terms:       q.Terms,
		PaymentPlan: q.PaymentPlan,
		Notes:       q.Notes,
		Status:      q.Status,
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.QuotationItemResponse{
			ID:          item.ID,
			RoomLabel:   item.RoomLabel,
			ItemName:    item.ItemName,
			Description: item.Description,
			Material:    item.Material,
			Brand:       item.Brand,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
			Remarks:     item.Remarks,
			SortOrder:   item.SortOrder,
		})
	}
	return out
}

func toQuotationList(rows []repository.QuotationListRow) []dto.QuotationListItem {
	out := make([]dto.QuotationListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.QuotationListItem{
			ID:          row.ID,
			Number:      row.Number,
			Date:        row.Date.Format(dateLayout),
			ClientName:  row.ClientName,
			ClientPhone: row.ClientPhone,
			GrandTotal:  row.GrandTotal,
			Status:      row.Status,
		})
	}
	return out
}
