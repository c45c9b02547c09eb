package billing_test

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/payments"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// In-memory repositories covering the paths the billing use cases exercise.

type memQuotationRepo struct {
	byID map[int64]*entity.Quotation
}

func (m *memQuotationRepo) Create(_ context.Context, _ *entity.Quotation) error { return nil }
func (m *memQuotationRepo) ListByCompany(_ context.Context, _ int64) ([]repository.QuotationListRow, error) {
	return nil, nil
}
func (m *memQuotationRepo) ListRecent(_ context.Context, _ int64, _ int) ([]repository.QuotationListRow, error) {
	return nil, nil
}
func (m *memQuotationRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Quotation, error) {
	q, ok := m.byID[id]
	if !ok || q.CompanyID != companyID {
		return nil, nil
	}
	return q, nil
}
func (m *memQuotationRepo) Update(_ context.Context, _ *entity.Quotation) error { return nil }
func (m *memQuotationRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	if q, ok := m.byID[id]; ok {
		q.Status = status
	}
	return nil
}
func (m *memQuotationRepo) Delete(_ context.Context, _, _ int64) error { return nil }
func (m *memQuotationRepo) ListItems(_ context.Context, _ int64) ([]entity.QuotationItem, error) {
	return nil, nil
}
func (m *memQuotationRepo) ReplaceItems(_ context.Context, _ int64, _ []entity.QuotationItem) error {
	return nil
}
func (m *memQuotationRepo) LastNumberWithPrefix(_ context.Context, _ string) (string, error) {
	return "", nil
}

type memBillRepo struct {
	byID   map[int64]*entity.Bill
	nextID int64

	// conflictOnCreate simulates another process inserting a bill for the
	// same quotation between the existence check and the insert.
	conflictOnCreate bool
	creates          int
}

func newMemBillRepo() *memBillRepo {
	return &memBillRepo{byID: make(map[int64]*entity.Bill)}
}

func (m *memBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	m.creates++
	if m.conflictOnCreate {
		return domain.ErrQuotationHasBill
	}
	for _, b := range m.byID {
		if b.QuotationID == bill.QuotationID {
			return domain.ErrQuotationHasBill
		}
	}
	m.nextID++
	bill.ID = m.nextID
	cp := *bill
	m.byID[bill.ID] = &cp
	return nil
}
func (m *memBillRepo) ListByCompany(_ context.Context, _ int64) ([]repository.BillListRow, error) {
	return nil, nil
}
func (m *memBillRepo) ListRecent(_ context.Context, _ int64, _ int) ([]repository.BillListRow, error) {
	return nil, nil
}
func (m *memBillRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Bill, error) {
	b, ok := m.byID[id]
	if !ok || b.CompanyID != companyID {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (m *memBillRepo) GetByQuotation(_ context.Context, quotationID int64) (*entity.Bill, error) {
	for _, b := range m.byID {
		if b.QuotationID == quotationID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}
func (m *memBillRepo) Update(_ context.Context, bill *entity.Bill) error {
	cp := *bill
	m.byID[bill.ID] = &cp
	return nil
}
func (m *memBillRepo) UpdatePaymentState(_ context.Context, billID int64, s payments.Settlement) error {
	if b, ok := m.byID[billID]; ok {
		b.PaidAmount = s.PaidAmount
		b.BalanceAmount = s.BalanceAmount
		b.Status = s.Status
	}
	return nil
}
func (m *memBillRepo) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memBillRepo) LastNumberWithPrefix(_ context.Context, prefix string) (string, error) {
	last := ""
	var lastID int64
	for _, b := range m.byID {
		if strings.HasPrefix(b.Number, prefix) && b.ID > lastID {
			last, lastID = b.Number, b.ID
		}
	}
	return last, nil
}

type memReceiptRepo struct {
	byID   map[int64]*entity.Receipt
	nextID int64
}

func newMemReceiptRepo() *memReceiptRepo {
	return &memReceiptRepo{byID: make(map[int64]*entity.Receipt)}
}

func (m *memReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	m.nextID++
	receipt.ID = m.nextID
	cp := *receipt
	m.byID[receipt.ID] = &cp
	return nil
}
func (m *memReceiptRepo) ListByCompany(_ context.Context, _ int64) ([]repository.ReceiptListRow, error) {
	return nil, nil
}
func (m *memReceiptRepo) ListRecent(_ context.Context, _ int64, _ int) ([]repository.ReceiptListRow, error) {
	return nil, nil
}
func (m *memReceiptRepo) ListByQuotation(_ context.Context, companyID, quotationID int64) ([]entity.Receipt, error) {
	var list []entity.Receipt
	for _, r := range m.byID {
		if r.CompanyID == companyID && r.QuotationID == quotationID {
			list = append(list, *r)
		}
	}
	return list, nil
}
func (m *memReceiptRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Receipt, error) {
	r, ok := m.byID[id]
	if !ok || r.CompanyID != companyID {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}
func (m *memReceiptRepo) Update(_ context.Context, receipt *entity.Receipt) error {
	cp := *receipt
	m.byID[receipt.ID] = &cp
	return nil
}
func (m *memReceiptRepo) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memReceiptRepo) SumByQuotation(_ context.Context, quotationID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, r := range m.byID {
		if r.QuotationID == quotationID {
			sum = sum.Add(r.Amount)
		}
	}
	return sum, nil
}
func (m *memReceiptRepo) CountByQuotation(_ context.Context, quotationID int64) (int64, error) {
	var n int64
	for _, r := range m.byID {
		if r.QuotationID == quotationID {
			n++
		}
	}
	return n, nil
}
func (m *memReceiptRepo) LastNumberWithPrefix(_ context.Context, prefix string) (string, error) {
	last := ""
	var lastID int64
	for _, r := range m.byID {
		if strings.HasPrefix(r.Number, prefix) && r.ID > lastID {
			last, lastID = r.Number, r.ID
		}
	}
	return last, nil
}

type memClientRepo struct {
	byID map[int64]*entity.Client
}

func (m *memClientRepo) Create(_ context.Context, _ *entity.Client) error { return nil }
func (m *memClientRepo) ListByCompany(_ context.Context, _ int64) ([]entity.Client, error) {
	return nil, nil
}
func (m *memClientRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Client, error) {
	c, ok := m.byID[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}
func (m *memClientRepo) Update(_ context.Context, _ *entity.Client) error { return nil }
func (m *memClientRepo) Delete(_ context.Context, _, _ int64) error       { return nil }

type memCompanyRepo struct {
	company *entity.Company
}

func (m *memCompanyRepo) Create(_ context.Context, _ *entity.Company) error { return nil }
func (m *memCompanyRepo) List(_ context.Context) ([]entity.Company, error)  { return nil, nil }
func (m *memCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if m.company != nil && m.company.ID == id {
		return m.company, nil
	}
	return nil, nil
}
func (m *memCompanyRepo) Update(_ context.Context, _ *entity.Company) error { return nil }

type memTx struct {
	quotationRepo repository.QuotationRepository
	billRepo      repository.BillRepository
	receiptRepo   repository.ReceiptRepository
}

var _ billing.TxRunner = (*memTx)(nil)

func (m *memTx) Run(_ context.Context, fn func(repository.QuotationRepository, repository.BillRepository, repository.ReceiptRepository) error) error {
	return fn(m.quotationRepo, m.billRepo, m.receiptRepo)
}
