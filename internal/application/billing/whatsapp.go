package billing

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// Document types accepted by the share endpoint.
const (
	ShareQuotation = "quotation"
	ShareBill      = "bill"
	ShareReceipt   = "receipt"
)

// ShareUseCase builds prebuilt WhatsApp share links for documents: a message
// mentioning the document number and amount, addressed to the client's phone.
type ShareUseCase struct {
	quotationRepo repository.QuotationRepository
	billRepo      repository.BillRepository
	receiptRepo   repository.ReceiptRepository
	clientRepo    repository.ClientRepository
	companyRepo   repository.CompanyRepository
}

// NewShareUseCase builds the use case.
func NewShareUseCase(
	quotationRepo repository.QuotationRepository,
	billRepo repository.BillRepository,
	receiptRepo repository.ReceiptRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
) *ShareUseCase {
	return &ShareUseCase{
		quotationRepo: quotationRepo,
		billRepo:      billRepo,
		receiptRepo:   receiptRepo,
		clientRepo:    clientRepo,
		companyRepo:   companyRepo,
	}
}

// ShareLink composes the message and wa.me URL for one document. Fails with
// domain.ErrInvalidInput on an unknown type and domain.ErrNotFound when the
// document or its client is missing.
func (uc *ShareUseCase) ShareLink(ctx context.Context, companyID int64, docType string, id int64) (*dto.ShareLinkResponse, error) {
	var (
		quotationID int64
		message     func(clientName, companyName string) string
	)

	switch docType {
	case ShareQuotation:
		q, err := uc.quotationRepo.GetByID(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		if q == nil {
			return nil, domain.ErrNotFound
		}
		quotationID = q.ID
		number, total := q.Number, q.GrandTotal
		message = func(clientName, companyName string) string {
			return fmt.Sprintf("Dear %s, greetings from %s! Please find your quotation %s for %s. We look forward to working with you.",
				clientName, companyName, number, money(total))
		}
	case ShareBill:
		bill, err := uc.billRepo.GetByID(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		if bill == nil {
			return nil, domain.ErrNotFound
		}
		quotationID = bill.QuotationID
		number, total, balance := bill.Number, bill.GrandTotal, bill.BalanceAmount
		message = func(clientName, companyName string) string {
			return fmt.Sprintf("Dear %s, your invoice %s from %s is ready. Invoice amount: %s, balance due: %s.",
				clientName, number, companyName, money(total), money(balance))
		}
	case ShareReceipt:
		receipt, err := uc.receiptRepo.GetByID(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		if receipt == nil {
			return nil, domain.ErrNotFound
		}
		quotationID = receipt.QuotationID
		number, amount := receipt.Number, receipt.Amount
		message = func(clientName, companyName string) string {
			return fmt.Sprintf("Dear %s, we have received your payment of %s. Receipt %s has been issued. Thank you! - %s",
				clientName, money(amount), number, companyName)
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	q, err := uc.quotationRepo.GetByID(ctx, companyID, quotationID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(ctx, companyID, q.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	companyName := ""
	if company, err := uc.companyRepo.GetByID(ctx, companyID); err == nil && company != nil {
		companyName = company.Name
	}

	phone := WhatsAppPhone(client.Phone)
	text := message(client.Name, companyName)
	return &dto.ShareLinkResponse{
		Phone:   phone,
		Message: text,
		URL:     "https://wa.me/" + phone + "?text=" + url.QueryEscape(text),
	}, nil
}

// WhatsAppPhone strips a phone number to digits and prefixes the Indian
// country code when it is a bare 10-digit number.
func WhatsAppPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 10 {
		return "91" + digits
	}
	return digits
}

func money(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}
