package render

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

func testCompany() entity.Company {
	return entity.Company{
		ID:          1,
		Name:        "Aarti Interiors",
		Code:        "AARTI",
		Address:     "150 Ft Ring Road, Rajkot",
		Phone:       "9876543210",
		GSTNumber:   "24AAAAA0000A1Z5",
		BankDetails: "HDFC Bank, A/C 50200012345678, IFSC HDFC0000123",
	}
}

func testClient() entity.Client {
	return entity.Client{
		ID:              7,
		CompanyID:       1,
		Name:            "Meera Shah",
		Address:         "Kalawad Road, Rajkot",
		Phone:           "9123456780",
		ProjectLocation: "Sky Heights, Flat 702",
	}
}

func testQuotation() entity.Quotation {
	return entity.Quotation{
		ID:            3,
		CompanyID:     1,
		ClientID:      7,
		Number:        "AARTI/2501/0003",
		Date:          time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		Subtotal:      decimal.NewFromInt(100000),
		TaxableAmount: decimal.NewFromInt(100000),
		CGSTPercent:   decimal.NewFromInt(9),
		CGSTAmount:    decimal.NewFromInt(9000),
		SGSTPercent:   decimal.NewFromInt(9),
		SGSTAmount:    decimal.NewFromInt(9000),
		TotalTax:      decimal.NewFromInt(18000),
		GrandTotal:    decimal.NewFromInt(118000),
		Status:        entity.QuotationStatusDraft,
	}
}

// makeItems builds n short-named items in one room; each renders at the
// minimum row height.
func makeItems(n int, room string) []entity.QuotationItem {
	items := make([]entity.QuotationItem, n)
	for i := range items {
		items[i] = entity.QuotationItem{
			RoomLabel: room,
			ItemName:  "Item " + strconv.Itoa(i+1),
			Unit:      "sqft",
			Quantity:  decimal.NewFromInt(10),
			Rate:      decimal.NewFromInt(100),
			Amount:    decimal.NewFromInt(1000),
			SortOrder: i,
		}
	}
	return items
}

func TestGroupByRoomFirstOccurrenceOrder(t *testing.T) {
	items := []entity.QuotationItem{
		{RoomLabel: "Kitchen", ItemName: "a"},
		{RoomLabel: "", ItemName: "b"},
		{RoomLabel: "Bedroom", ItemName: "c"},
		{RoomLabel: "Kitchen", ItemName: "d"},
		{RoomLabel: "", ItemName: "e"},
	}

	groups := groupByRoom(items)

	require.Len(t, groups, 3)
	assert.Equal(t, "Kitchen", groups[0].Label)
	assert.Equal(t, "General", groups[1].Label)
	assert.Equal(t, "Bedroom", groups[2].Label)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "d", groups[0].Items[1].ItemName)
	assert.Len(t, groups[1].Items, 2)
}

func TestQuotationPlanStartsWithHeaderAndMarketingPages(t *testing.T) {
	doc := QuotationDocument{
		Quotation: testQuotation(),
		Items:     makeItems(3, "Kitchen"),
		Company:   testCompany(),
		Client:    testClient(),
	}

	plan := BuildQuotationPlan(doc)

	require.GreaterOrEqual(t, len(plan.Pages), 3)
	kinds := plan.BandKinds()
	assert.Equal(t, KindCompanyHeader, kinds[0][0])
	assert.Equal(t, KindTitleBadge, kinds[0][1])
	assert.Equal(t, KindMarketing, kinds[1][0])
	// items always start on the third page
	assert.Equal(t, KindRoomTitle, kinds[2][0])
	assert.Equal(t, "QUOTATION", plan.Title)
	assert.Equal(t, "Quotation-AARTI-2501-0003.pdf", plan.FileName)
}

func TestQuotationPlanGroupMovesToFreshPageWhole(t *testing.T) {
	q := testQuotation()
	q.RatePerSqft = decimal.NewFromInt(1800) // area mode, no subtotal bands
	items := append(makeItems(25, "Living Room"), makeItems(10, "Kitchen")...)
	doc := QuotationDocument{Quotation: q, Items: items, Company: testCompany(), Client: testClient()}

	plan := BuildQuotationPlan(doc)
	kinds := plan.BandKinds()

	// The first group fills the first item page; the second fits on a single
	// page so it must start fresh, not split.
	require.GreaterOrEqual(t, len(kinds), 4)
	assert.Equal(t, KindRoomTitle, kinds[3][0])
	titleCount := 0
	for _, k := range kinds[2] {
		if k == KindRoomTitle {
			titleCount++
		}
	}
	assert.Equal(t, 1, titleCount, "second group must not start on the filled page")
}

func TestQuotationPlanOversizedGroupBreaksWhenCursorLow(t *testing.T) {
	q := testQuotation()
	q.RatePerSqft = decimal.NewFromInt(1800)
	// first group leaves the cursor below the low-cursor cutoff; the second
	// is taller than any single page
	items := append(makeItems(25, "Living Room"), makeItems(35, "Wardrobes")...)
	doc := QuotationDocument{Quotation: q, Items: items, Company: testCompany(), Client: testClient()}

	plan := BuildQuotationPlan(doc)
	kinds := plan.BandKinds()

	require.GreaterOrEqual(t, len(kinds), 4)
	// the oversized group's title opens a fresh page instead of starting in
	// the sliver left by the first group
	assert.Equal(t, KindRoomTitle, kinds[3][0])
}

func TestQuotationPlanOversizedGroupSplitsWithoutRepeatingHeader(t *testing.T) {
	q := testQuotation()
	q.RatePerSqft = decimal.NewFromInt(1800)
	doc := QuotationDocument{
		Quotation: q,
		Items:     makeItems(40, "Full House"), // taller than one page
		Company:   testCompany(),
		Client:    testClient(),
	}

	plan := BuildQuotationPlan(doc)
	kinds := plan.BandKinds()

	require.GreaterOrEqual(t, len(kinds), 4)
	// continuation page starts directly with item rows, no repeated header
	assert.Equal(t, KindItemRow, kinds[3][0])
	for _, k := range kinds[3] {
		assert.NotEqual(t, KindTableHeader, k)
	}
}

func TestQuotationPlanSummaryMovesWhenCursorLow(t *testing.T) {
	q := testQuotation()
	q.RatePerSqft = decimal.NewFromInt(1800)
	doc := QuotationDocument{
		Quotation: q,
		Items:     makeItems(28, "Living Room"), // leaves the cursor past the summary cutoff
		Company:   testCompany(),
		Client:    testClient(),
	}

	plan := BuildQuotationPlan(doc)
	kinds := plan.BandKinds()

	require.GreaterOrEqual(t, len(kinds), 4)
	for _, k := range kinds[2] {
		assert.NotEqual(t, KindSummary, k)
	}
	assert.Contains(t, kinds[3], KindSummary)
}

func TestQuotationPlanColumnModes(t *testing.T) {
	t.Run("area mode", func(t *testing.T) {
		q := testQuotation()
		q.RatePerSqft = decimal.NewFromInt(1800)
		doc := QuotationDocument{Quotation: q, Items: makeItems(2, "Kitchen"), Company: testCompany(), Client: testClient()}

		plan := BuildQuotationPlan(doc)

		header := findBand(t, plan, KindTableHeader)
		require.Len(t, header.Cells, 4)
		assert.Equal(t, 8, header.Cells[1].Span)
		for _, pg := range plan.Pages {
			for _, b := range pg.Bands {
				assert.NotEqual(t, KindGroupSubtotal, b.Kind)
			}
		}
	})

	t.Run("item mode", func(t *testing.T) {
		doc := QuotationDocument{Quotation: testQuotation(), Items: makeItems(2, "Kitchen"), Company: testCompany(), Client: testClient()}

		plan := BuildQuotationPlan(doc)

		header := findBand(t, plan, KindTableHeader)
		require.Len(t, header.Cells, 6)
		assert.Equal(t, "MM", header.Cells[4].Text)
		subtotal := findBand(t, plan, KindGroupSubtotal)
		assert.Equal(t, "Rs. 2,000.00", subtotal.Cells[1].Text)
	})
}

func TestQuotationPlanPaymentPlanForms(t *testing.T) {
	base := func() QuotationDocument {
		return QuotationDocument{
			Quotation: testQuotation(),
			Items:     makeItems(2, "Kitchen"),
			Company:   testCompany(),
			Client:    testClient(),
		}
	}

	t.Run("structured plan renders milestone table", func(t *testing.T) {
		doc := base()
		doc.Quotation.PaymentPlan = `[{"stage":"Advance","percent":40,"amount":47200},{"stage":"On Completion","percent":60,"amount":70800}]`

		plan := BuildQuotationPlan(doc)

		assert.NotNil(t, findBandOrNil(plan, KindPlanHeader))
		rows := countBands(plan, KindPlanRow)
		assert.Equal(t, 2, rows)
	})

	t.Run("unparseable plan falls back to text", func(t *testing.T) {
		doc := base()
		doc.Quotation.PaymentPlan = "50% advance, 30% after carcass work, 20% on handover"

		plan := BuildQuotationPlan(doc)

		assert.Nil(t, findBandOrNil(plan, KindPlanHeader))
		block := findBand(t, plan, KindTextBlock)
		assert.Contains(t, block.Cells[0].Text, "50% advance")
	})

	t.Run("no plan emits no section", func(t *testing.T) {
		doc := base()

		plan := BuildQuotationPlan(doc)

		assert.Nil(t, findBandOrNil(plan, KindPlanHeader))
		for _, pg := range plan.Pages {
			for _, b := range pg.Bands {
				if b.Kind == KindSectionTitle {
					assert.NotContains(t, b.Cells[0].Text, "Payment Plan")
				}
			}
		}
	})
}

func TestQuotationPlanDeterministic(t *testing.T) {
	doc := QuotationDocument{
		Quotation: testQuotation(),
		Items:     makeItems(33, "Living Room"),
		Company:   testCompany(),
		Client:    testClient(),
	}
	doc.Quotation.PaymentPlan = `[{"stage":"Advance","percent":40,"amount":47200}]`
	doc.Quotation.Terms = "Validity 30 days."

	first := BuildQuotationPlan(doc)
	second := BuildQuotationPlan(doc)

	require.Equal(t, first, second)
}

func TestBillPlanLayout(t *testing.T) {
	bill := entity.Bill{
		Number:        "INV/AARTI/2501/0001",
		Date:          time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Subtotal:      decimal.NewFromInt(100000),
		CGSTPercent:   decimal.NewFromInt(9),
		CGSTAmount:    decimal.NewFromInt(9000),
		SGSTPercent:   decimal.NewFromInt(9),
		SGSTAmount:    decimal.NewFromInt(9000),
		GrandTotal:    decimal.NewFromInt(118000),
		PaidAmount:    decimal.NewFromInt(50000),
		BalanceAmount: decimal.NewFromInt(68000),
		Status:        entity.BillStatusPartial,
	}
	doc := BillDocument{
		Bill:      bill,
		Quotation: testQuotation(),
		Items:     makeItems(4, "Kitchen"),
		Company:   testCompany(),
		Client:    testClient(),
	}

	plan := BuildBillPlan(doc)

	require.Len(t, plan.Pages, 1)
	assert.Equal(t, "TAX INVOICE", plan.Title)
	assert.Equal(t, "Invoice-INV-AARTI-2501-0001.pdf", plan.FileName)
	badge := findBand(t, plan, KindStatusBadge)
	assert.Equal(t, "PARTIALLY PAID", badge.Cells[0].Text)
	summary := findBand(t, plan, KindSummary)
	assert.Contains(t, summary.Cells[2].Text, "Rs. 68,000.00")
}

func TestBillPlanRowOverflow(t *testing.T) {
	doc := BillDocument{
		Bill:      entity.Bill{Number: "INV/AARTI/2501/0002", Status: entity.BillStatusPending},
		Quotation: testQuotation(),
		Items:     makeItems(40, "Full House"),
		Company:   testCompany(),
		Client:    testClient(),
	}

	plan := BuildBillPlan(doc)

	require.Greater(t, len(plan.Pages), 1)
	kinds := plan.BandKinds()
	assert.Equal(t, KindItemRow, kinds[1][0])
	// summary and badge follow the last row, never orphaned before it
	last := kinds[len(kinds)-1]
	assert.Contains(t, last, KindSummary)
	assert.Contains(t, last, KindStatusBadge)
}

func TestReceiptPlanSinglePage(t *testing.T) {
	doc := ReceiptDocument{
		Receipt: entity.Receipt{
			Number:      "RCP/AARTI/2501/0005",
			Date:        time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(50000),
			PaymentMode: "UPI",
			Notes:       "Second instalment",
		},
		Quotation: testQuotation(),
		Company:   testCompany(),
		Client:    testClient(),
		TotalPaid: decimal.NewFromInt(80000),
	}

	plan := BuildReceiptPlan(doc)

	require.Len(t, plan.Pages, 1)
	assert.Equal(t, "Receipt-RCP-AARTI-2501-0005.pdf", plan.FileName)
	amount := findBand(t, plan, KindAmountBox)
	assert.Contains(t, amount.Cells[0].Text, "Rs. 50,000.00")
	summary := findBand(t, plan, KindSummary)
	assert.Contains(t, summary.Cells[2].Text, "Rs. 38,000.00") // 118000 - 80000
	assert.NotNil(t, findBandOrNil(plan, KindSignature))
}

func findBand(t *testing.T, p *Plan, kind Kind) Band {
	t.Helper()
	b := findBandOrNil(p, kind)
	require.NotNil(t, b, "band %s not found", kind)
	return *b
}

func findBandOrNil(p *Plan, kind Kind) *Band {
	for _, pg := range p.Pages {
		for i := range pg.Bands {
			if pg.Bands[i].Kind == kind {
				return &pg.Bands[i]
			}
		}
	}
	return nil
}

func countBands(p *Plan, kind Kind) int {
	n := 0
	for _, pg := range p.Pages {
		for _, b := range pg.Bands {
			if b.Kind == kind {
				n++
			}
		}
	}
	return n
}
