package render

import (
	"strconv"
	"strings"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

var billHeaders = []Cell{
	{Span: 1, Text: "#"},
	{Span: 4, Text: "Description"},
	{Span: 2, Text: "Room"},
	{Span: 1, Text: "Qty", Align: AlignRight},
	{Span: 2, Text: "Rate", Align: AlignRight},
	{Span: 2, Text: "Amount", Align: AlignRight},
}

// BuildBillPlan lays out a tax invoice: one flat item table carrying the room
// as a column instead of the quotation's per-room sections, then the totals
// card with the payment state and a status badge.
func BuildBillPlan(doc BillDocument) *Plan {
	b := doc.Bill
	c := newCursor()

	c.add(Band{Kind: KindCompanyHeader, Height: 70, Cells: []Cell{
		{Span: 12, Align: AlignCenter, Bold: true,
			Text: doc.Company.Name + "\n" + doc.Company.Address + "\nPhone: " + doc.Company.Phone + " | GST: " + doc.Company.GSTNumber},
	}})
	c.add(Band{Kind: KindTitleBadge, Height: 30, Cells: []Cell{
		{Span: 12, Text: "TAX INVOICE", Align: AlignCenter, Bold: true},
	}})
	c.add(Band{Kind: KindDocMeta, Height: 35, Cells: []Cell{
		{Span: 4, Text: "Invoice No:\n" + b.Number, Bold: true},
		{Span: 4, Text: "Date:\n" + formatDate(b.Date), Bold: true},
		{Span: 4, Text: "Quotation Ref:\n" + doc.Quotation.Number, Bold: true},
	}})
	c.add(Band{Kind: KindClientBox, Height: 70, Cells: []Cell{
		{Span: 6, Text: "BILL TO\n" + doc.Client.Name + "\n" + doc.Client.Address},
		{Span: 6, Text: "Phone: " + orNA(doc.Client.Phone) +
			"\nProject: " + orNA(doc.Client.ProjectLocation)},
	}})

	c.add(Band{Kind: KindTableHeader, Height: billHeaderH, Cells: billHeaders})
	for i, item := range doc.Items {
		if c.y > billRowBreakLimit {
			c.breakPage()
		}
		label := item.RoomLabel
		if label == "" {
			label = defaultRoomLabel
		}
		c.add(Band{Kind: KindItemRow, Height: billRowH, Cells: []Cell{
			{Span: 1, Text: strconv.Itoa(i + 1)},
			{Span: 4, Text: item.ItemName},
			{Span: 2, Text: label},
			{Span: 1, Text: item.Quantity.String(), Align: AlignRight},
			{Span: 2, Text: formatMoney(item.Rate), Align: AlignRight},
			{Span: 2, Text: formatMoney(item.Amount), Align: AlignRight},
		}})
	}
	c.space(10)

	labels := []string{
		"Subtotal:",
		"CGST (" + b.CGSTPercent.String() + "%):",
		"SGST (" + b.SGSTPercent.String() + "%):",
		"Grand Total:",
		"Amount Paid:",
		"Balance Due:",
	}
	values := []string{
		formatMoney(b.Subtotal),
		formatMoney(b.CGSTAmount),
		formatMoney(b.SGSTAmount),
		formatMoney(b.GrandTotal),
		formatMoney(b.PaidAmount),
		formatMoney(b.BalanceAmount),
	}
	c.add(Band{Kind: KindSummary, Height: billSummaryH, Cells: []Cell{
		{Span: 6},
		{Span: 3, Text: strings.Join(labels, "\n"), Align: AlignRight, Bold: true},
		{Span: 3, Text: strings.Join(values, "\n"), Align: AlignRight},
	}})

	c.add(Band{Kind: KindStatusBadge, Height: 25, Cells: []Cell{
		{Span: 12, Text: billStatusLabel(b.Status), Align: AlignCenter, Bold: true},
	}})

	c.add(Band{Kind: KindFooterNote, Height: 10, Cells: []Cell{
		{Span: 12, Text: "This is a computer generated invoice.", Align: AlignCenter},
	}})

	return &Plan{
		Title:    "TAX INVOICE",
		FileName: documentFileName("Invoice", b.Number),
		Pages:    c.finish(),
	}
}

func billStatusLabel(status string) string {
	switch status {
	case entity.BillStatusPaid:
		return "PAID"
	case entity.BillStatusPartial:
		return "PARTIALLY PAID"
	default:
		return "PAYMENT PENDING"
	}
}
