package quoting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/application/quoting"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/numbering"
	"github.com/vishvakarma/studiodesk-api/internal/domain/pricing"
)

const (
	ucCompanyID   = int64(1)
	ucCompanyCode = "AARTI"
	ucClientID    = int64(10)
)

type quotingFixture struct {
	uc        *quoting.QuotingUseCase
	quotation *fakeQuotationRepo
	bills     *fakeBillRepo
	receipts  *fakeReceiptRepo
	defaults  *fakeSqftDefaultRepo
}

func newQuotingFixture() *quotingFixture {
	quotationRepo := newFakeQuotationRepo()
	billRepo := &fakeBillRepo{byQuotation: make(map[int64]*entity.Bill)}
	receiptRepo := &fakeReceiptRepo{countByQuotation: make(map[int64]int64)}
	defaultsRepo := &fakeSqftDefaultRepo{byCompany: make(map[int64][]entity.SqftDefault)}
	clientRepo := &fakeClientRepo{clients: map[int64]*entity.Client{
		ucClientID: {ID: ucClientID, CompanyID: ucCompanyID, Name: "Mehta Residence"},
	}}
	packageRepo := &fakePackageRepo{packages: map[int64]*entity.Package{
		20: {ID: 20, CompanyID: ucCompanyID, Name: "Premium 3BHK"},
	}}
	companyRepo := &fakeCompanyRepo{company: &entity.Company{
		ID:                 ucCompanyID,
		Code:               ucCompanyCode,
		DefaultTerms:       "50% advance.",
		DefaultPaymentPlan: "Milestone based.",
	}}
	tx := &fakeTx{quotationRepo: quotationRepo, billRepo: billRepo, receiptRepo: receiptRepo}
	return &quotingFixture{
		uc: quoting.NewQuotingUseCase(
			tx, quotationRepo, clientRepo, packageRepo, companyRepo, billRepo, receiptRepo, defaultsRepo,
		),
		quotation: quotationRepo,
		bills:     billRepo,
		receipts:  receiptRepo,
		defaults:  defaultsRepo,
	}
}

func itemLines() []dto.QuotationItemRequest {
	return []dto.QuotationItemRequest{
		{
			RoomLabel: "Master Bedroom",
			ItemName:  "Wardrobe",
			Unit:      "sqft",
			Quantity:  decimal.NewFromInt(80),
			Rate:      decimal.NewFromInt(1200),
		},
		{
			RoomLabel: "Kitchen",
			ItemName:  "Modular Kitchen",
			Unit:      "lot",
			Quantity:  decimal.NewFromInt(1),
			Rate:      decimal.NewFromInt(250000),
		},
	}
}

func TestCreateAllocatesSequentialNumbers(t *testing.T) {
	f := newQuotingFixture()
	in := dto.CreateQuotationRequest{ClientID: ucClientID, Items: itemLines()}

	first, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode, in)
	require.NoError(t, err)
	second, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode, in)
	require.NoError(t, err)

	prefix := numbering.ScopePrefix(numbering.DocQuotation, ucCompanyCode, time.Now())
	assert.Equal(t, prefix+"/0001", first.Number)
	assert.Equal(t, prefix+"/0002", second.Number)
	assert.Equal(t, entity.QuotationStatusDraft, first.Status)
}

func TestCreateComputesPricing(t *testing.T) {
	f := newQuotingFixture()
	in := dto.CreateQuotationRequest{
		ClientID:      ucClientID,
		Items:         itemLines(), // 80×1200 + 250000 = 346000
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(10),
	}

	out, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode, in)
	require.NoError(t, err)

	assert.True(t, out.Pricing.Subtotal.Equal(decimal.NewFromInt(346000)), "subtotal %s", out.Pricing.Subtotal)
	assert.True(t, out.Pricing.DiscountAmt.Equal(decimal.NewFromInt(34600)))
	assert.True(t, out.Pricing.TaxableAmount.Equal(decimal.NewFromInt(311400)))
	// 9% CGST + 9% SGST on 311400 = 28026 each.
	assert.True(t, out.Pricing.CGSTAmount.Equal(decimal.NewFromInt(28026)))
	assert.True(t, out.Pricing.GrandTotal.Equal(decimal.NewFromInt(367452)))
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Amount.Equal(decimal.NewFromInt(96000)))
}

func TestCreateFallsBackToCompanyDefaults(t *testing.T) {
	f := newQuotingFixture()
	in := dto.CreateQuotationRequest{ClientID: ucClientID, Items: itemLines()}

	out, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode, in)
	require.NoError(t, err)

	assert.Equal(t, "50% advance.", out.Terms)
	assert.Equal(t, "Milestone based.", out.PaymentPlan)
}

func TestCreateRejectsExcessiveDiscount(t *testing.T) {
	f := newQuotingFixture()
	in := dto.CreateQuotationRequest{
		ClientID:      ucClientID,
		Items:         itemLines(),
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(35),
	}

	_, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode, in)
	var discountErr *pricing.DiscountError
	require.ErrorAs(t, err, &discountErr)
	assert.True(t, discountErr.Percent.Equal(decimal.NewFromInt(35)))
}

func TestCreateUnknownClient(t *testing.T) {
	f := newQuotingFixture()
	in := dto.CreateQuotationRequest{ClientID: 999, Items: itemLines()}

	_, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// A unique-key race on the number must retry inside the allocator instead of
// surfacing to the caller.
func TestCreateRetriesOnNumberCollision(t *testing.T) {
	f := newQuotingFixture()
	f.quotation.failCreates = 2
	in := dto.CreateQuotationRequest{ClientID: ucClientID, Items: itemLines()}

	out, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode, in)
	require.NoError(t, err)
	assert.Equal(t, 3, f.quotation.creates)

	prefix := numbering.ScopePrefix(numbering.DocQuotation, ucCompanyCode, time.Now())
	assert.Equal(t, prefix+"/0001", out.Number)
}

func TestUpdateKeepsNumberAndRepricesItems(t *testing.T) {
	f := newQuotingFixture()
	created, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode,
		dto.CreateQuotationRequest{ClientID: ucClientID, Items: itemLines()})
	require.NoError(t, err)

	updated, err := f.uc.Update(context.Background(), ucCompanyID, created.ID, dto.UpdateQuotationRequest{
		ClientID: ucClientID,
		Items: []dto.QuotationItemRequest{{
			ItemName: "TV Unit",
			Quantity: decimal.NewFromInt(1),
			Rate:     decimal.NewFromInt(45000),
		}},
		Status: entity.QuotationStatusConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, created.Number, updated.Number)
	assert.Equal(t, entity.QuotationStatusConfirmed, updated.Status)
	assert.True(t, updated.Pricing.Subtotal.Equal(decimal.NewFromInt(45000)))
	require.Len(t, updated.Items, 1)
}

func TestUpdateCannotOverrideBilledStatus(t *testing.T) {
	f := newQuotingFixture()
	created, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode,
		dto.CreateQuotationRequest{ClientID: ucClientID, Items: itemLines()})
	require.NoError(t, err)
	require.NoError(t, f.quotation.UpdateStatus(context.Background(), created.ID, entity.QuotationStatusBilled))

	updated, err := f.uc.Update(context.Background(), ucCompanyID, created.ID, dto.UpdateQuotationRequest{
		ClientID: ucClientID,
		Items:    itemLines(),
		Status:   entity.QuotationStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusBilled, updated.Status)
}

func TestDeleteGuards(t *testing.T) {
	f := newQuotingFixture()
	created, err := f.uc.Create(context.Background(), ucCompanyID, ucCompanyCode,
		dto.CreateQuotationRequest{ClientID: ucClientID, Items: itemLines()})
	require.NoError(t, err)

	f.bills.byQuotation[created.ID] = &entity.Bill{ID: 1, QuotationID: created.ID}
	assert.ErrorIs(t, f.uc.Delete(context.Background(), ucCompanyID, created.ID), domain.ErrQuotationHasBill)

	delete(f.bills.byQuotation, created.ID)
	f.receipts.countByQuotation[created.ID] = 2
	assert.ErrorIs(t, f.uc.Delete(context.Background(), ucCompanyID, created.ID), domain.ErrQuotationInUse)

	f.receipts.countByQuotation[created.ID] = 0
	require.NoError(t, f.uc.Delete(context.Background(), ucCompanyID, created.ID))
	_, err = f.uc.GetByID(context.Background(), ucCompanyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculateAreaRateBasis(t *testing.T) {
	f := newQuotingFixture()
	zero := decimal.Zero
	out, err := f.uc.Calculate(context.Background(), dto.CalculateRequest{
		TotalSqft:   decimal.NewFromInt(1200),
		RatePerSqft: decimal.NewFromInt(1850),
		SGSTPercent: &zero, // explicit zero is honored, not defaulted
	})
	require.NoError(t, err)

	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(2220000)))
	assert.True(t, out.SGSTPercent.IsZero())
	assert.True(t, out.CGSTPercent.Equal(decimal.NewFromInt(9)))
}

func TestSqftDefaultsReplaceAndList(t *testing.T) {
	f := newQuotingFixture()

	err := f.uc.SaveSqftDefaults(context.Background(), ucCompanyID, dto.SaveSqftDefaultsRequest{
		Items: []dto.SqftDefaultItem{
			{RoomLabel: "Kitchen", ItemName: "Modular Kitchen", Unit: "lot", Quantity: decimal.NewFromInt(1)},
			{RoomLabel: "Master Bedroom", ItemName: "Wardrobe"}, // unit and quantity left blank
		},
	})
	require.NoError(t, err)

	out, err := f.uc.SqftDefaults(context.Background(), ucCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Modular Kitchen", out.Items[0].ItemName)
	assert.Equal(t, "-", out.Items[1].Unit)
	assert.True(t, out.Items[1].Quantity.Equal(decimal.NewFromInt(1)))

	// Saving again replaces the whole set, it does not append.
	err = f.uc.SaveSqftDefaults(context.Background(), ucCompanyID, dto.SaveSqftDefaultsRequest{
		Items: []dto.SqftDefaultItem{
			{RoomLabel: "Drawing Room", ItemName: "TV Unit", Unit: "sqft", Quantity: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)
	out, err = f.uc.SqftDefaults(context.Background(), ucCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "TV Unit", out.Items[0].ItemName)

	// A company with nothing saved gets an empty list, not null.
	other, err := f.uc.SqftDefaults(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, other.Items)
	assert.Empty(t, other.Items)
}
