package render

import "strings"

// BuildReceiptPlan lays out a payment receipt. Receipts are always a single
// page: a details box, the amount-in-words box and a running settlement
// summary against the quotation.
func BuildReceiptPlan(doc ReceiptDocument) *Plan {
	r := doc.Receipt
	c := newCursor()

	c.add(Band{Kind: KindCompanyHeader, Height: 70, Cells: []Cell{
		{Span: 12, Align: AlignCenter, Bold: true,
			Text: doc.Company.Name + "\n" + doc.Company.Address + "\nPhone: " + doc.Company.Phone + " | GST: " + doc.Company.GSTNumber},
	}})
	c.add(Band{Kind: KindTitleBadge, Height: 30, Cells: []Cell{
		{Span: 12, Text: "PAYMENT RECEIPT", Align: AlignCenter, Bold: true},
	}})

	details := []string{
		"Receipt No: " + r.Number,
		"Date: " + formatDate(r.Date),
		"Received From: " + doc.Client.Name,
		"Address: " + orNA(doc.Client.Address),
		"Phone: " + orNA(doc.Client.Phone),
		"Against Quotation: " + doc.Quotation.Number,
		"Payment Mode: " + orNA(r.PaymentMode),
		"Transaction Ref: " + orNA(r.TransactionRef),
	}
	c.add(Band{Kind: KindClientBox, Height: 165, Cells: []Cell{
		{Span: 12, Text: strings.Join(details, "\n")},
	}})

	c.add(Band{Kind: KindAmountBox, Height: 80, Cells: []Cell{
		{Span: 12, Align: AlignCenter, Bold: true,
			Text: "Amount Received\n" + formatMoney(r.Amount)},
	}})

	labels := []string{"Quotation Total:", "Total Paid To Date:", "Balance Due:"}
	values := []string{
		formatMoney(doc.Quotation.GrandTotal),
		formatMoney(doc.TotalPaid),
		formatMoney(doc.Quotation.GrandTotal.Sub(doc.TotalPaid)),
	}
	c.add(Band{Kind: KindSummary, Height: 45, Cells: []Cell{
		{Span: 6},
		{Span: 3, Text: strings.Join(labels, "\n"), Align: AlignRight, Bold: true},
		{Span: 3, Text: strings.Join(values, "\n"), Align: AlignRight},
	}})

	if r.Notes != "" {
		c.space(10)
		c.add(Band{Kind: KindTextBlock, Height: measureTextHeight(r.Notes, textBlockWidth), Cells: []Cell{
			{Span: 12, Text: "Notes: " + r.Notes},
		}})
	}

	c.space(40)
	c.add(Band{Kind: KindSignature, Height: 40, Cells: []Cell{
		{Span: 6, Text: "Receiver's Signature"},
		{Span: 6, Text: "For " + doc.Company.Name + "\nAuthorised Signatory", Align: AlignRight},
	}})

	c.add(Band{Kind: KindFooterNote, Height: 10, Cells: []Cell{
		{Span: 12, Text: "This is a computer generated receipt.", Align: AlignCenter},
	}})

	return &Plan{
		Title:    "PAYMENT RECEIPT",
		FileName: documentFileName("Receipt", r.Number),
		Pages:    c.finish(),
	}
}
