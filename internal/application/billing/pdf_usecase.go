package billing

import (
	"context"
	"fmt"

	"github.com/vishvakarma/studiodesk-api/internal/application/render"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// PDFUseCase loads everything a document plan needs and renders it. The
// planner itself never fails; errors come from loading or the renderer.
type PDFUseCase struct {
	quotationRepo repository.QuotationRepository
	billRepo      repository.BillRepository
	receiptRepo   repository.ReceiptRepository
	companyRepo   repository.CompanyRepository
	clientRepo    repository.ClientRepository
	renderer      DocumentRenderer
}

// NewPDFUseCase builds the use case with all its dependencies.
func NewPDFUseCase(
	quotationRepo repository.QuotationRepository,
	billRepo repository.BillRepository,
	receiptRepo repository.ReceiptRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	renderer DocumentRenderer,
) *PDFUseCase {
	return &PDFUseCase{
		quotationRepo: quotationRepo,
		billRepo:      billRepo,
		receiptRepo:   receiptRepo,
		companyRepo:   companyRepo,
		clientRepo:    clientRepo,
		renderer:      renderer,
	}
}

// QuotationPDF renders a quotation document. Returns the bytes and the
// download filename.
func (uc *PDFUseCase) QuotationPDF(ctx context.Context, companyID, quotationID int64) ([]byte, string, error) {
	doc, err := uc.loadQuotationDocument(ctx, companyID, quotationID)
	if err != nil {
		return nil, "", err
	}
	return uc.renderPlan(ctx, render.BuildQuotationPlan(*doc))
}

// BillPDF renders a tax invoice.
func (uc *PDFUseCase) BillPDF(ctx context.Context, companyID, billID int64) ([]byte, string, error) {
	bill, err := uc.billRepo.GetByID(ctx, companyID, billID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load bill: %w", err)
	}
	if bill == nil {
		return nil, "", domain.ErrNotFound
	}
	base, err := uc.loadQuotationDocument(ctx, companyID, bill.QuotationID)
	if err != nil {
		return nil, "", err
	}
	return uc.renderPlan(ctx, render.BuildBillPlan(render.BillDocument{
		Bill:      *bill,
		Quotation: base.Quotation,
		Items:     base.Items,
		Company:   base.Company,
		Client:    base.Client,
	}))
}

// ReceiptPDF renders a payment receipt with the running total paid against
// the quotation.
func (uc *PDFUseCase) ReceiptPDF(ctx context.Context, companyID, receiptID int64) ([]byte, string, error) {
	receipt, err := uc.receiptRepo.GetByID(ctx, companyID, receiptID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load receipt: %w", err)
	}
	if receipt == nil {
		return nil, "", domain.ErrNotFound
	}
	base, err := uc.loadQuotationDocument(ctx, companyID, receipt.QuotationID)
	if err != nil {
		return nil, "", err
	}
	totalPaid, err := uc.receiptRepo.SumByQuotation(ctx, receipt.QuotationID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: sum receipts: %w", err)
	}
	return uc.renderPlan(ctx, render.BuildReceiptPlan(render.ReceiptDocument{
		Receipt:   *receipt,
		Quotation: base.Quotation,
		Company:   base.Company,
		Client:    base.Client,
		TotalPaid: totalPaid,
	}))
}

// loadQuotationDocument gathers the quotation, its items, the company and
// the client. Shared by all three document types.
func (uc *PDFUseCase) loadQuotationDocument(ctx context.Context, companyID, quotationID int64) (*render.QuotationDocument, error) {
	q, err := uc.quotationRepo.GetByID(ctx, companyID, quotationID)
	if err != nil {
		return nil, fmt.Errorf("pdf: load quotation: %w", err)
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.quotationRepo.ListItems(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("pdf: load items: %w", err)
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("pdf: load company: %w", err)
	}
	if company == nil {
		company = &entity.Company{}
	}
	client, err := uc.clientRepo.GetByID(ctx, companyID, q.ClientID)
	if err != nil {
		return nil, fmt.Errorf("pdf: load client: %w", err)
	}
	if client == nil {
		client = &entity.Client{}
	}
	return &render.QuotationDocument{
		Quotation: *q,
		Items:     items,
		Company:   *company,
		Client:    *client,
	}, nil
}

func (uc *PDFUseCase) renderPlan(ctx context.Context, plan *render.Plan) ([]byte, string, error) {
	pdfBytes, err := uc.renderer.Render(ctx, plan)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render failed: %w", err)
	}
	return pdfBytes, plan.FileName, nil
}
