package quoting_test

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/application/quoting"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/payments"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// In-memory repositories for use case tests. Only the paths the quoting use
// case touches are implemented with real behavior.

type fakeQuotationRepo struct {
	byID   map[int64]*entity.Quotation
	items  map[int64][]entity.QuotationItem
	nextID int64

	// failCreates makes the first N Create calls fail with ErrDuplicate, to
	// drive the allocator's retry path.
	failCreates int
	creates     int
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{
		byID:  make(map[int64]*entity.Quotation),
		items: make(map[int64][]entity.QuotationItem),
	}
}

func (f *fakeQuotationRepo) Create(_ context.Context, q *entity.Quotation) error {
	f.creates++
	if f.creates <= f.failCreates {
		return domain.ErrDuplicate
	}
	f.nextID++
	q.ID = f.nextID
	cp := *q
	f.byID[q.ID] = &cp
	return nil
}

func (f *fakeQuotationRepo) ListByCompany(_ context.Context, companyID int64) ([]repository.QuotationListRow, error) {
	var rows []repository.QuotationListRow
	for _, q := range f.byID {
		if q.CompanyID == companyID {
			rows = append(rows, repository.QuotationListRow{Quotation: *q})
		}
	}
	return rows, nil
}

func (f *fakeQuotationRepo) ListRecent(ctx context.Context, companyID int64, _ int) ([]repository.QuotationListRow, error) {
	return f.ListByCompany(ctx, companyID)
}

func (f *fakeQuotationRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Quotation, error) {
	q, ok := f.byID[id]
	if !ok || q.CompanyID != companyID {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuotationRepo) Update(_ context.Context, q *entity.Quotation) error {
	cp := *q
	f.byID[q.ID] = &cp
	return nil
}

func (f *fakeQuotationRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	if q, ok := f.byID[id]; ok {
		q.Status = status
	}
	return nil
}

func (f *fakeQuotationRepo) Delete(_ context.Context, _, id int64) error {
	delete(f.byID, id)
	delete(f.items, id)
	return nil
}

func (f *fakeQuotationRepo) ListItems(_ context.Context, quotationID int64) ([]entity.QuotationItem, error) {
	return f.items[quotationID], nil
}

func (f *fakeQuotationRepo) ReplaceItems(_ context.Context, quotationID int64, items []entity.QuotationItem) error {
	f.items[quotationID] = append([]entity.QuotationItem(nil), items...)
	return nil
}

func (f *fakeQuotationRepo) LastNumberWithPrefix(_ context.Context, prefix string) (string, error) {
	last := ""
	var lastID int64
	for _, q := range f.byID {
		if strings.HasPrefix(q.Number, prefix) && q.ID > lastID {
			last, lastID = q.Number, q.ID
		}
	}
	return last, nil
}

type fakeClientRepo struct {
	clients map[int64]*entity.Client
}

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error { return nil }
func (f *fakeClientRepo) ListByCompany(_ context.Context, _ int64) ([]entity.Client, error) {
	return nil, nil
}
func (f *fakeClientRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}
func (f *fakeClientRepo) Update(_ context.Context, _ *entity.Client) error { return nil }
func (f *fakeClientRepo) Delete(_ context.Context, _, _ int64) error       { return nil }

type fakePackageRepo struct {
	packages map[int64]*entity.Package
}

func (f *fakePackageRepo) Create(_ context.Context, _ *entity.Package) error { return nil }
func (f *fakePackageRepo) ListByCompany(_ context.Context, _ int64) ([]entity.Package, error) {
	return nil, nil
}
func (f *fakePackageRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Package, error) {
	p, ok := f.packages[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}
func (f *fakePackageRepo) Update(_ context.Context, _ *entity.Package) error { return nil }
func (f *fakePackageRepo) Delete(_ context.Context, _, _ int64) error        { return nil }

type fakeCompanyRepo struct {
	company *entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, _ *entity.Company) error { return nil }
func (f *fakeCompanyRepo) List(_ context.Context) ([]entity.Company, error)  { return nil, nil }
func (f *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}
func (f *fakeCompanyRepo) Update(_ context.Context, _ *entity.Company) error { return nil }

type fakeBillRepo struct {
	byQuotation map[int64]*entity.Bill
}

func (f *fakeBillRepo) Create(_ context.Context, _ *entity.Bill) error { return nil }
func (f *fakeBillRepo) ListByCompany(_ context.Context, _ int64) ([]repository.BillListRow, error) {
	return nil, nil
}
func (f *fakeBillRepo) ListRecent(_ context.Context, _ int64, _ int) ([]repository.BillListRow, error) {
	return nil, nil
}
func (f *fakeBillRepo) GetByID(_ context.Context, _, _ int64) (*entity.Bill, error) {
	return nil, nil
}
func (f *fakeBillRepo) GetByQuotation(_ context.Context, quotationID int64) (*entity.Bill, error) {
	return f.byQuotation[quotationID], nil
}
func (f *fakeBillRepo) Update(_ context.Context, _ *entity.Bill) error { return nil }
func (f *fakeBillRepo) UpdatePaymentState(_ context.Context, _ int64, _ payments.Settlement) error {
	return nil
}
func (f *fakeBillRepo) Delete(_ context.Context, _ int64) error { return nil }
func (f *fakeBillRepo) LastNumberWithPrefix(_ context.Context, _ string) (string, error) {
	return "", nil
}

type fakeReceiptRepo struct {
	countByQuotation map[int64]int64
}

func (f *fakeReceiptRepo) Create(_ context.Context, _ *entity.Receipt) error { return nil }
func (f *fakeReceiptRepo) ListByCompany(_ context.Context, _ int64) ([]repository.ReceiptListRow, error) {
	return nil, nil
}
func (f *fakeReceiptRepo) ListRecent(_ context.Context, _ int64, _ int) ([]repository.ReceiptListRow, error) {
	return nil, nil
}
func (f *fakeReceiptRepo) ListByQuotation(_ context.Context, _, _ int64) ([]entity.Receipt, error) {
	return nil, nil
}
func (f *fakeReceiptRepo) GetByID(_ context.Context, _, _ int64) (*entity.Receipt, error) {
	return nil, nil
}
func (f *fakeReceiptRepo) Update(_ context.Context, _ *entity.Receipt) error { return nil }
func (f *fakeReceiptRepo) Delete(_ context.Context, _ int64) error           { return nil }
func (f *fakeReceiptRepo) SumByQuotation(_ context.Context, _ int64) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeReceiptRepo) CountByQuotation(_ context.Context, quotationID int64) (int64, error) {
	return f.countByQuotation[quotationID], nil
}
func (f *fakeReceiptRepo) LastNumberWithPrefix(_ context.Context, _ string) (string, error) {
	return "", nil
}

type fakeSqftDefaultRepo struct {
	byCompany map[int64][]entity.SqftDefault
}

func (f *fakeSqftDefaultRepo) ListByCompany(_ context.Context, companyID int64) ([]entity.SqftDefault, error) {
	return f.byCompany[companyID], nil
}
func (f *fakeSqftDefaultRepo) Replace(_ context.Context, companyID int64, items []entity.SqftDefault) error {
	for i := range items {
		items[i].ID = int64(i + 1)
		items[i].CompanyID = companyID
		items[i].SortOrder = i
	}
	f.byCompany[companyID] = items
	return nil
}

// fakeTx passes the same repositories to the callback, no transactionality.
type fakeTx struct {
	quotationRepo repository.QuotationRepository
	billRepo      repository.BillRepository
	receiptRepo   repository.ReceiptRepository
}

var _ quoting.TxRunner = (*fakeTx)(nil)

func (f *fakeTx) Run(_ context.Context, fn func(repository.QuotationRepository, repository.BillRepository, repository.ReceiptRepository) error) error {
	return fn(f.quotationRepo, f.billRepo, f.receiptRepo)
}
