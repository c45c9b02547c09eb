package usecase

import (
	"context"
	"time"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase read-only aggregates: the dashboard and the summary report.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase builds the use case.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Dashboard returns the landing-page stats for the company.
func (uc *ReportUseCase) Dashboard(ctx context.Context, companyID int64) (*dto.DashboardResponse, error) {
	stats, err := uc.repo.DashboardStats(ctx, companyID, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Quotations:        dto.CountTotalDTO(stats.Quotations),
		Bills:             dto.CountTotalDTO(stats.Bills),
		Receipts:          dto.CountTotalDTO(stats.Receipts),
		PendingBalance:    stats.PendingBalance,
		MonthlyQuotations: dto.CountTotalDTO(stats.MonthlyQuotations),
		MonthlyReceipts:   dto.CountTotalDTO(stats.MonthlyReceipts),
		Clients:           stats.Clients,
	}, nil
}

// Summary aggregates quotations, billing and collections over an optional
// date range. Dates arrive as YYYY-MM-DD strings; either side may be empty.
func (uc *ReportUseCase) Summary(ctx context.Context, companyID int64, fromStr, toStr string) (*dto.SummaryResponse, error) {
	from, err := parseDatePtr(fromStr)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := parseDatePtr(toStr)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	report, err := uc.repo.Summary(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		QuotationCount: report.QuotationCount,
		QuotationValue: report.QuotationValue,
		TotalDiscount:  report.TotalDiscount,
		TotalTax:       report.TotalTax,
		BillCount:      report.BillCount,
		TotalBilled:    report.TotalBilled,
		TotalPaid:      report.TotalPaid,
		TotalPending:   report.TotalPending,
		ReceiptCount:   report.ReceiptCount,
		TotalReceived:  report.TotalReceived,
		CashReceived:   report.CashReceived,
	}, nil
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
