package billing_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/numbering"
)

const (
	tCompanyID   = int64(1)
	tCompanyCode = "AARTI"
	tQuotationID = int64(7)
	tClientID    = int64(3)
)

type billingFixture struct {
	billUC    *billing.BillUseCase
	receiptUC *billing.ReceiptUseCase
	bills     *memBillRepo
	receipts  *memReceiptRepo
	quotation *memQuotationRepo
}

// newBillingFixture seeds one confirmed quotation with a grand total of
// Rs. 1,00,000 (taxable 84746, tax 2×7627 rounded for test simplicity).
func newBillingFixture() *billingFixture {
	quotationRepo := &memQuotationRepo{byID: map[int64]*entity.Quotation{
		tQuotationID: {
			ID:            tQuotationID,
			CompanyID:     tCompanyID,
			ClientID:      tClientID,
			Number:        "AARTI/2508/0001",
			TaxableAmount: decimal.NewFromInt(84746),
			CGSTPercent:   decimal.NewFromInt(9),
			CGSTAmount:    decimal.NewFromInt(7627),
			SGSTPercent:   decimal.NewFromInt(9),
			SGSTAmount:    decimal.NewFromInt(7627),
			TotalTax:      decimal.NewFromInt(15254),
			GrandTotal:    decimal.NewFromInt(100000),
			Status:        entity.QuotationStatusConfirmed,
		},
	}}
	billRepo := newMemBillRepo()
	receiptRepo := newMemReceiptRepo()
	tx := &memTx{quotationRepo: quotationRepo, billRepo: billRepo, receiptRepo: receiptRepo}
	return &billingFixture{
		billUC:    billing.NewBillUseCase(tx, billRepo, quotationRepo, receiptRepo),
		receiptUC: billing.NewReceiptUseCase(tx, receiptRepo, quotationRepo),
		bills:     billRepo,
		receipts:  receiptRepo,
		quotation: quotationRepo,
	}
}

func TestBillCreateSnapshotsQuotation(t *testing.T) {
	f := newBillingFixture()

	out, err := f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	require.NoError(t, err)

	prefix := numbering.ScopePrefix(numbering.DocBill, tCompanyCode, time.Now())
	assert.Equal(t, prefix+"/0001", out.Number)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(84746)))
	assert.True(t, out.GrandTotal.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, entity.BillStatusPending, out.Status)
	assert.True(t, out.BalanceAmount.Equal(decimal.NewFromInt(100000)))

	// Issuing a bill flips the quotation to billed.
	assert.Equal(t, entity.QuotationStatusBilled, f.quotation.byID[tQuotationID].Status)
}

func TestBillCreateSeedsPaidFromExistingReceipts(t *testing.T) {
	f := newBillingFixture()
	_, err := f.receiptUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateReceiptRequest{QuotationID: tQuotationID, Amount: decimal.NewFromInt(25000)})
	require.NoError(t, err)

	out, err := f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	require.NoError(t, err)

	assert.Equal(t, entity.BillStatusPartial, out.Status)
	assert.True(t, out.PaidAmount.Equal(decimal.NewFromInt(25000)))
	assert.True(t, out.BalanceAmount.Equal(decimal.NewFromInt(75000)))
}

func TestBillCreateDuplicate(t *testing.T) {
	f := newBillingFixture()
	_, err := f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	require.NoError(t, err)

	_, err = f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	assert.ErrorIs(t, err, domain.ErrQuotationHasBill)
}

// A duplicate bill slipping past the existence check (another process
// inserting between check and insert) must not be mistaken for a number
// collision: no retries, and the error names the real conflict.
func TestBillCreateRaceIsNotRetriedAsNumberCollision(t *testing.T) {
	f := newBillingFixture()
	f.bills.conflictOnCreate = true

	_, err := f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	assert.ErrorIs(t, err, domain.ErrQuotationHasBill)
	assert.Equal(t, 1, f.bills.creates)
}

func TestBillDeleteRevertsQuotation(t *testing.T) {
	f := newBillingFixture()
	out, err := f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	require.NoError(t, err)

	require.NoError(t, f.billUC.Delete(context.Background(), tCompanyID, out.ID))
	assert.Equal(t, entity.QuotationStatusConfirmed, f.quotation.byID[tQuotationID].Status)
}

// Receipts drive the bill through pending → partial → paid, and removing one
// walks it back.
func TestReceiptsReconcileBill(t *testing.T) {
	f := newBillingFixture()
	bill, err := f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	require.NoError(t, err)

	first, err := f.receiptUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateReceiptRequest{QuotationID: tQuotationID, Amount: decimal.NewFromInt(40000), PaymentMode: "upi"})
	require.NoError(t, err)
	prefix := numbering.ScopePrefix(numbering.DocReceipt, tCompanyCode, time.Now())
	assert.Equal(t, prefix+"/0001", first.Number)

	got, err := f.billUC.GetByID(context.Background(), tCompanyID, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPartial, got.Status)
	assert.True(t, got.BalanceAmount.Equal(decimal.NewFromInt(60000)))

	second, err := f.receiptUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateReceiptRequest{QuotationID: tQuotationID, Amount: decimal.NewFromInt(60000)})
	require.NoError(t, err)
	assert.Equal(t, prefix+"/0002", second.Number)

	got, err = f.billUC.GetByID(context.Background(), tCompanyID, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPaid, got.Status)
	assert.True(t, got.BalanceAmount.IsZero())

	require.NoError(t, f.receiptUC.Delete(context.Background(), tCompanyID, second.ID))
	got, err = f.billUC.GetByID(context.Background(), tCompanyID, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPartial, got.Status)
	assert.True(t, got.BalanceAmount.Equal(decimal.NewFromInt(60000)))
}

// Overpayment stays paid and keeps the negative balance instead of clamping.
func TestOverpaymentKeepsNegativeBalance(t *testing.T) {
	f := newBillingFixture()
	bill, err := f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	require.NoError(t, err)

	_, err = f.receiptUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateReceiptRequest{QuotationID: tQuotationID, Amount: decimal.NewFromInt(110000)})
	require.NoError(t, err)

	got, err := f.billUC.GetByID(context.Background(), tCompanyID, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPaid, got.Status)
	assert.True(t, got.BalanceAmount.Equal(decimal.NewFromInt(-10000)))
}

func TestReceiptRejectsNonPositiveAmount(t *testing.T) {
	f := newBillingFixture()
	_, err := f.receiptUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateReceiptRequest{QuotationID: tQuotationID, Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceiptUpdateReReconciles(t *testing.T) {
	f := newBillingFixture()
	bill, err := f.billUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateBillRequest{QuotationID: tQuotationID})
	require.NoError(t, err)
	receipt, err := f.receiptUC.Create(context.Background(), tCompanyID, tCompanyCode,
		dto.CreateReceiptRequest{QuotationID: tQuotationID, Amount: decimal.NewFromInt(30000)})
	require.NoError(t, err)

	_, err = f.receiptUC.Update(context.Background(), tCompanyID, receipt.ID,
		dto.UpdateReceiptRequest{Amount: decimal.NewFromInt(100000)})
	require.NoError(t, err)

	got, err := f.billUC.GetByID(context.Background(), tCompanyID, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPaid, got.Status)
}

func TestShareLinkQuotation(t *testing.T) {
	f := newBillingFixture()
	clients := &memClientRepo{byID: map[int64]*entity.Client{
		tClientID: {ID: tClientID, CompanyID: tCompanyID, Name: "Asha Mehta", Phone: "98250 12345"},
	}}
	companies := &memCompanyRepo{company: &entity.Company{
		ID: tCompanyID, Name: "Vishvakarma Interiors", Code: tCompanyCode,
	}}
	shareUC := billing.NewShareUseCase(f.quotation, f.bills, f.receipts, clients, companies)

	out, err := shareUC.ShareLink(context.Background(), tCompanyID, billing.ShareQuotation, tQuotationID)
	require.NoError(t, err)

	assert.Equal(t, "919825012345", out.Phone)
	assert.Contains(t, out.Message, "Asha Mehta")
	assert.Contains(t, out.Message, "AARTI/2508/0001")
	assert.Contains(t, out.Message, "Vishvakarma Interiors")
	assert.True(t, strings.HasPrefix(out.URL, "https://wa.me/919825012345?text="), "url %s", out.URL)
	assert.NotContains(t, out.URL, " ")
}

func TestShareLinkUnknownType(t *testing.T) {
	f := newBillingFixture()
	shareUC := billing.NewShareUseCase(f.quotation, f.bills, f.receipts,
		&memClientRepo{byID: map[int64]*entity.Client{}}, &memCompanyRepo{})

	_, err := shareUC.ShareLink(context.Background(), tCompanyID, "order", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWhatsAppPhone(t *testing.T) {
	cases := map[string]string{
		"9825012345":      "919825012345",
		"98250 12345":     "919825012345",
		"+91 98250 12345": "919825012345",
		"+91-9825012345":  "919825012345",
		"02612345678":     "02612345678", // landline, left as-is
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, billing.WhatsAppPhone(in), "input %q", in)
	}
}
