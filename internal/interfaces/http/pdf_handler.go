package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vishvakarma/studiodesk-api/internal/application/billing"
)

// PDFHandler serves rendered documents and WhatsApp share links.
type PDFHandler struct {
	pdfUC   *billing.PDFUseCase
	shareUC *billing.ShareUseCase
}

// NewPDFHandler builds the handler.
func NewPDFHandler(pdfUC *billing.PDFUseCase, shareUC *billing.ShareUseCase) *PDFHandler {
	return &PDFHandler{pdfUC: pdfUC, shareUC: shareUC}
}

// Quotation renders a quotation PDF.
// GET /api/pdf/quotation/:id
func (h *PDFHandler) Quotation(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	data, fileName, err := h.pdfUC.QuotationPDF(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "quotation not found")
	}
	return sendPDF(c, data, fileName)
}

// Bill renders a tax invoice PDF.
// GET /api/pdf/bill/:id
func (h *PDFHandler) Bill(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	data, fileName, err := h.pdfUC.BillPDF(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "bill not found")
	}
	return sendPDF(c, data, fileName)
}

// Receipt renders a payment receipt PDF.
// GET /api/pdf/receipt/:id
func (h *PDFHandler) Receipt(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	data, fileName, err := h.pdfUC.ReceiptPDF(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err, "receipt not found")
	}
	return sendPDF(c, data, fileName)
}

// Share composes a WhatsApp share link for a document.
// GET /api/pdf/whatsapp/:type/:id
func (h *PDFHandler) Share(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.shareUC.ShareLink(c.Context(), GetCompanyID(c), c.Params("type"), id)
	if err != nil {
		return respondError(c, err, "document not found")
	}
	return c.JSON(out)
}

func sendPDF(c *fiber.Ctx, data []byte, fileName string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+fileName+`"`)
	return c.Send(data)
}
