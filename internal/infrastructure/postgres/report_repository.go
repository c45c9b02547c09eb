package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"

	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo runs the read-only aggregation queries behind the dashboard
// and the summary report.
type ReportRepo struct {
	q Querier
}

// NewReportRepository builds the adapter. Pass a pool or tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// DashboardStats collects the landing-page aggregates. The queries are
// independent, so they run concurrently on the pool.
func (r *ReportRepo) DashboardStats(ctx context.Context, companyID int64, now time.Time) (*repository.DashboardStats, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var stats repository.DashboardStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.countTotal(ctx, &stats.Quotations,
			`SELECT COUNT(*), COALESCE(SUM(grand_total), 0) FROM quotations WHERE company_id = $1`,
			companyID)
	})
	g.Go(func() error {
		return r.countTotal(ctx, &stats.Bills,
			`SELECT COUNT(*), COALESCE(SUM(grand_total), 0) FROM bills WHERE company_id = $1`,
			companyID)
	})
	g.Go(func() error {
		return r.countTotal(ctx, &stats.Receipts,
			`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM receipts WHERE company_id = $1`,
			companyID)
	})
	g.Go(func() error {
		return r.q.QueryRow(ctx,
			`SELECT COALESCE(SUM(balance_amount), 0) FROM bills WHERE company_id = $1 AND status <> 'paid'`,
			companyID,
		).Scan(&stats.PendingBalance)
	})
	g.Go(func() error {
		return r.countTotal(ctx, &stats.MonthlyQuotations,
			`SELECT COUNT(*), COALESCE(SUM(grand_total), 0) FROM quotations WHERE company_id = $1 AND date >= $2`,
			companyID, monthStart)
	})
	g.Go(func() error {
		return r.countTotal(ctx, &stats.MonthlyReceipts,
			`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM receipts WHERE company_id = $1 AND date >= $2`,
			companyID, monthStart)
	})
	g.Go(func() error {
		return r.q.QueryRow(ctx,
			`SELECT COUNT(*) FROM clients WHERE company_id = $1`, companyID,
		).Scan(&stats.Clients)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}

func (r *ReportRepo) countTotal(ctx context.Context, dst *repository.CountTotal, query string, args ...any) error {
	return r.q.QueryRow(ctx, query, args...).Scan(&dst.Count, &dst.Total)
}

// Summary aggregates quotations, billing and collections, optionally
// restricted to a date range on the document date.
func (r *ReportRepo) Summary(ctx context.Context, companyID int64, from, to *time.Time) (*repository.SummaryReport, error) {
	var report repository.SummaryReport

	quotations := psql.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(grand_total), 0)",
			"COALESCE(SUM(discount_amount), 0)",
			"COALESCE(SUM(total_tax), 0)",
		).
		From("quotations").
		Where(sq.Eq{"company_id": companyID})
	bills := psql.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(grand_total), 0)",
			"COALESCE(SUM(paid_amount), 0)",
			"COALESCE(SUM(balance_amount), 0)",
		).
		From("bills").
		Where(sq.Eq{"company_id": companyID})
	receipts := psql.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(amount), 0)",
			"COALESCE(SUM(amount) FILTER (WHERE payment_mode = 'cash'), 0)",
		).
		From("receipts").
		Where(sq.Eq{"company_id": companyID})
	if from != nil {
		quotations = quotations.Where(sq.GtOrEq{"date": *from})
		bills = bills.Where(sq.GtOrEq{"date": *from})
		receipts = receipts.Where(sq.GtOrEq{"date": *from})
	}
	if to != nil {
		quotations = quotations.Where(sq.LtOrEq{"date": *to})
		bills = bills.Where(sq.LtOrEq{"date": *to})
		receipts = receipts.Where(sq.LtOrEq{"date": *to})
	}

	if err := r.scanBuilder(ctx, quotations,
		&report.QuotationCount, &report.QuotationValue, &report.TotalDiscount, &report.TotalTax,
	); err != nil {
		return nil, fmt.Errorf("summary quotations: %w", err)
	}
	if err := r.scanBuilder(ctx, bills,
		&report.BillCount, &report.TotalBilled, &report.TotalPaid, &report.TotalPending,
	); err != nil {
		return nil, fmt.Errorf("summary bills: %w", err)
	}
	if err := r.scanBuilder(ctx, receipts,
		&report.ReceiptCount, &report.TotalReceived, &report.CashReceived,
	); err != nil {
		return nil, fmt.Errorf("summary receipts: %w", err)
	}
	return &report, nil
}

func (r *ReportRepo) scanBuilder(ctx context.Context, builder sq.SelectBuilder, dest ...any) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	return r.q.QueryRow(ctx, query, args...).Scan(dest...)
}
