package render

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// Column layouts of the item table. Area-rate quotations use the simplified
// 4-column table; item-rate quotations add material and rate columns. The
// description measurement width matches the column the text wraps in.
var (
	areaModeHeaders = []Cell{
		{Span: 1, Text: "#"},
		{Span: 8, Text: "Description"},
		{Span: 2, Text: "Unit"},
		{Span: 1, Text: "Qty", Align: AlignRight},
	}
	itemModeHeaders = []Cell{
		{Span: 1, Text: "#"},
		{Span: 5, Text: "Description"},
		{Span: 1, Text: "Unit"},
		{Span: 1, Text: "Qty", Align: AlignRight},
		{Span: 2, Text: "MM", Align: AlignCenter},
		{Span: 2, Text: "Rate", Align: AlignRight},
	}
)

const (
	areaModeDescWidth = 370
	itemModeDescWidth = 260
	textBlockWidth    = 500
)

// BuildQuotationPlan lays out a quotation: branded first page, the fixed
// credentials page, the room-grouped item tables, summary, payment plan,
// terms and bank details. Missing fields render as empty text; the planner
// never fails.
func BuildQuotationPlan(doc QuotationDocument) *Plan {
	q := doc.Quotation
	c := newCursor()

	addQuotationFirstPage(c, doc)

	// Fixed marketing/credentials page sits between the client block and the
	// item tables.
	c.breakPage()
	addMarketingPage(c, doc)
	c.breakPage()

	areaMode := q.AreaRateBased()
	descWidth := float64(itemModeDescWidth)
	headers := itemModeHeaders
	if areaMode {
		descWidth = areaModeDescWidth
		headers = areaModeHeaders
	}

	for _, group := range groupByRoom(doc.Items) {
		addRoomGroup(c, group, areaMode, descWidth, headers)
	}

	addQuotationSummary(c, q)
	addPaymentPlan(c, entity.ParsePaymentPlan(q.PaymentPlan))

	if q.Terms != "" {
		c.add(Band{Kind: KindSectionTitle, Height: 15, Cells: []Cell{
			{Span: 12, Text: "Terms & Conditions Of Company", Bold: true},
		}})
		c.add(Band{Kind: KindTextBlock, Height: measureTextHeight(q.Terms, textBlockWidth), Cells: []Cell{
			{Span: 12, Text: q.Terms},
		}})
		c.space(30)
	}
	if doc.Company.BankDetails != "" {
		c.add(Band{Kind: KindSectionTitle, Height: 15, Cells: []Cell{
			{Span: 12, Text: "Bank Account Details Of Company", Bold: true},
		}})
		c.add(Band{Kind: KindTextBlock, Height: measureTextHeight(doc.Company.BankDetails, textBlockWidth), Cells: []Cell{
			{Span: 12, Text: doc.Company.BankDetails},
		}})
	}

	c.add(Band{Kind: KindFooterNote, Height: 10, Cells: []Cell{
		{Span: 12, Text: "This is a computer generated quotation.", Align: AlignCenter},
	}})

	return &Plan{
		Title:    "QUOTATION",
		FileName: documentFileName("Quotation", q.Number),
		Pages:    c.finish(),
	}
}

func addQuotationFirstPage(c *cursor, doc QuotationDocument) {
	q := doc.Quotation
	comp := doc.Company

	c.add(Band{Kind: KindCompanyHeader, Height: 65, Cells: []Cell{
		{Span: 12, Align: AlignCenter, Bold: true,
			Text: comp.Name + "\n" + comp.Address + "\nPhone: " + comp.Phone + " | GST: " + comp.GSTNumber},
	}})
	c.add(Band{Kind: KindTitleBadge, Height: 45, Cells: []Cell{
		{Span: 12, Text: "QUOTATION", Align: AlignCenter, Bold: true},
	}})
	c.add(Band{Kind: KindDocMeta, Height: 38, Cells: []Cell{
		{Span: 6, Text: "Quotation No:\n" + q.Number, Bold: true},
		{Span: 6, Text: "Date:\n" + formatDate(q.Date), Bold: true},
	}})

	area := "N/A"
	if q.TotalSqft.IsPositive() {
		area = q.TotalSqft.String() + " sqft"
	}
	c.add(Band{Kind: KindClientBox, Height: 85, Cells: []Cell{
		{Span: 6, Text: "BILL TO\n" + doc.Client.Name + "\n" + doc.Client.Address +
			"\nPhone: " + orNA(doc.Client.Phone)},
		{Span: 6, Text: "Project Location: " + orNA(doc.Client.ProjectLocation) +
			"\nArea: " + area +
			"\nRate: " + formatMoney(q.RatePerSqft) + "/sqft"},
	}})
}

// addMarketingPage emits the fixed credentials page every quotation carries.
func addMarketingPage(c *cursor, doc QuotationDocument) {
	companyName := doc.Company.Name
	if companyName == "" {
		companyName = "Vishvakarma Furniture Work"
	}

	c.add(Band{Kind: KindMarketing, Height: 50, Cells: []Cell{
		{Span: 12, Text: "Why Choose Us ?", Bold: true},
	}})
	c.add(Band{Kind: KindMarketing, Height: 210, Cells: []Cell{
		{Span: 12, Text: "You Need Professional help, & " + companyName + " can make your dream home a reality!\n\n" +
			"We are a renowned architectural and interior design firm with over five years of experience in Rajkot.\n\n" +
			"With our professional team of twenty-five architectural and design experts, " +
			"we are excellent at bringing your ideas of beautiful home to life.\n\n" +
			"We are versatile and up to date with the latest trends in interior design. " +
			"We usually plan the project according to the tastes and preferences of our clients and complement our expertise.\n\n" +
			"We have experience with Traditional, Modern, Contemporary, Indian and International forms of interior Design."},
	}})
	c.add(Band{Kind: KindMarketing, Height: 80, Cells: []Cell{
		{Span: 12, Text: "Our Vision\nTo be the first choice for anyone seeking an interior design firm in Rajkot " +
			"that can provide a complete package of high-design and construction services.", Bold: true},
	}})
	c.add(Band{Kind: KindMarketing, Height: 90, Cells: []Cell{
		{Span: 12, Text: "Our Mission\nOur mission is to create beautiful, sustainable and innovative spaces " +
			"that will exceed our client's expectations.", Bold: true},
	}})
	c.add(Band{Kind: KindMarketing, Height: 90, Cells: []Cell{
		{Span: 4, Text: "10\nYears in Industry", Align: AlignCenter, Bold: true},
		{Span: 4, Text: "150+\nSkilled Workers", Align: AlignCenter, Bold: true},
		{Span: 4, Text: "501+\nProjects Completed", Align: AlignCenter, Bold: true},
	}})
	c.add(Band{Kind: KindMarketing, Height: 70, Cells: []Cell{
		{Span: 6, Text: "Party Name: " + doc.Client.Name},
		{Span: 6, Text: "Quotation: " + doc.Quotation.Number + "\nDate: " + formatDate(doc.Quotation.Date)},
	}})
}

// addRoomGroup pre-computes the group's rendered height and decides where it
// starts: a group that fits on a single page is never split, and an oversized
// group does not start in the last sliver of a page.
func addRoomGroup(c *cursor, group roomGroup, areaMode bool, descWidth float64, headers []Cell) {
	sectionHeight := float64(groupOverheadH)
	for _, item := range group.Items {
		sectionHeight += itemRowHeight(item, descWidth)
	}

	fitsOnSinglePage := sectionHeight < groupSinglePageMax
	hasSpaceOnCurrent := c.y+sectionHeight < rowBreakLimit
	if (fitsOnSinglePage && !hasSpaceOnCurrent) || (!fitsOnSinglePage && c.y > lowCursorCutoff) {
		c.breakPage()
	}

	c.add(Band{Kind: KindRoomTitle, Height: roomTitleAdvance, Cells: []Cell{
		{Span: 12, Text: strings.ToUpper(group.Label), Bold: true},
	}})
	c.add(Band{Kind: KindTableHeader, Height: tableHeaderH, Cells: headers})

	groupTotal := decimal.Zero
	for i, item := range group.Items {
		rowHeight := itemRowHeight(item, descWidth)
		// The header is not repeated after an overflow break; the room
		// context stays implicit on continuation pages.
		if c.y+rowHeight > rowBreakLimit {
			c.breakPage()
		}
		c.add(itemRowBand(i+1, item, rowHeight, areaMode))
		groupTotal = groupTotal.Add(item.Amount)
	}

	if !areaMode {
		c.add(Band{Kind: KindGroupSubtotal, Height: 20, Cells: []Cell{
			{Span: 9, Text: "Component Total", Align: AlignRight, Bold: true},
			{Span: 3, Text: formatMoney(groupTotal), Align: AlignRight, Bold: true},
		}})
		c.space(10)
	} else {
		c.space(10)
	}
}

// itemRowHeight grows a row to fit its wrapped description, never below the
// minimum.
func itemRowHeight(item entity.QuotationItem, descWidth float64) float64 {
	h := measureTextHeight(item.ItemName, descWidth) + rowPadding
	if h < minRowHeight {
		return minRowHeight
	}
	return h
}

func itemRowBand(seq int, item entity.QuotationItem, height float64, areaMode bool) Band {
	cells := []Cell{
		{Span: 1, Text: strconv.Itoa(seq)},
		{Span: 8, Text: item.ItemName},
		{Span: 2, Text: item.Unit},
		{Span: 1, Text: item.Quantity.String(), Align: AlignRight},
	}
	if !areaMode {
		cells = []Cell{
			{Span: 1, Text: strconv.Itoa(seq)},
			{Span: 5, Text: item.ItemName},
			{Span: 1, Text: item.Unit},
			{Span: 1, Text: item.Quantity.String(), Align: AlignRight},
			{Span: 2, Text: item.Material, Align: AlignCenter},
			{Span: 2, Text: formatMoney(item.Rate), Align: AlignRight},
		}
	}
	return Band{Kind: KindItemRow, Height: height, Cells: cells}
}

// addQuotationSummary emits the totals card, moving it to a fresh page when
// the cursor is already too low.
func addQuotationSummary(c *cursor, q entity.Quotation) {
	if c.y > summaryBreakAt {
		c.breakPage()
	}
	c.space(15)

	labels := []string{"Subtotal:"}
	values := []string{formatMoney(q.Subtotal)}
	if q.DiscountAmt.IsPositive() {
		label := "Discount (Flat):"
		if q.DiscountType == entity.DiscountPercentage {
			label = "Discount (" + q.DiscountValue.String() + "%):"
		}
		labels = append(labels, label)
		values = append(values, "-"+formatMoney(q.DiscountAmt))
	}
	labels = append(labels,
		"Taxable Amount:",
		"CGST ("+q.CGSTPercent.String()+"%):",
		"SGST ("+q.SGSTPercent.String()+"%):",
		"Grand Total:")
	values = append(values,
		formatMoney(q.TaxableAmount),
		formatMoney(q.CGSTAmount),
		formatMoney(q.SGSTAmount),
		formatMoney(q.GrandTotal))

	c.add(Band{Kind: KindSummary, Height: summaryBoxH, Cells: []Cell{
		{Span: 6},
		{Span: 3, Text: strings.Join(labels, "\n"), Align: AlignRight, Bold: true},
		{Span: 3, Text: strings.Join(values, "\n"), Align: AlignRight},
	}})
	c.space(15)
}

// addPaymentPlan renders a structured plan as a bordered milestone table with
// the same per-row break rule as item rows, and an unstructured plan as one
// wrapped text block. No plan at all leaves the original gap.
func addPaymentPlan(c *cursor, plan entity.PaymentPlan) {
	if plan.Empty() {
		c.space(50)
		return
	}

	c.space(15)
	c.add(Band{Kind: KindSectionTitle, Height: tableHeaderH, Cells: []Cell{
		{Span: 12, Text: "Payment Plan & Milestones", Bold: true},
	}})

	if !plan.Structured() {
		c.add(Band{Kind: KindTextBlock, Height: measureTextHeight(plan.FreeText, textBlockWidth), Cells: []Cell{
			{Span: 12, Text: plan.FreeText},
		}})
		c.space(30)
		return
	}

	c.add(Band{Kind: KindPlanHeader, Height: planRowH, Cells: []Cell{
		{Span: 7, Text: "Milestone", Align: AlignCenter, Bold: true},
		{Span: 2, Text: "Percent", Align: AlignCenter, Bold: true},
		{Span: 3, Text: "Amount", Align: AlignCenter, Bold: true},
	}})
	for _, m := range plan.Milestones {
		if c.y > rowBreakLimit {
			c.breakPage()
		}
		c.add(Band{Kind: KindPlanRow, Height: planRowH, Cells: []Cell{
			{Span: 7, Text: m.Stage},
			{Span: 2, Text: m.Percent.String(), Align: AlignCenter},
			{Span: 3, Text: formatMoney(m.Amount), Align: AlignCenter},
		}})
	}
	c.space(20)
}

func documentFileName(docType, number string) string {
	return docType + "-" + strings.ReplaceAll(number, "/", "-") + ".pdf"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
