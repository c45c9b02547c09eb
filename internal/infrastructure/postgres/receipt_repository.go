package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo ReceiptRepository implementation (usable with pool or tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository builds the adapter. Pass a pool or tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

const receiptColumns = `id, company_id, quotation_id, number, date,
	amount, payment_mode, transaction_ref, notes, created_at`

// Create persists a receipt. The unique number surfaces as ErrDuplicate so
// the allocator can retry.
func (r *ReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (company_id, quotation_id, number, date,
			amount, payment_mode, transaction_ref, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		receipt.CompanyID, receipt.QuotationID, receipt.Number, receipt.Date,
		receipt.Amount, receipt.PaymentMode, receipt.TransactionRef, receipt.Notes, receipt.CreatedAt,
	).Scan(&receipt.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// ListByCompany lists the company's receipts newest first.
func (r *ReceiptRepo) ListByCompany(ctx context.Context, companyID int64) ([]repository.ReceiptListRow, error) {
	return r.list(ctx, companyID, 0)
}

// ListRecent returns the latest receipts for the dashboard.
func (r *ReceiptRepo) ListRecent(ctx context.Context, companyID int64, limit int) ([]repository.ReceiptListRow, error) {
	return r.list(ctx, companyID, limit)
}

func (r *ReceiptRepo) list(ctx context.Context, companyID int64, limit int) ([]repository.ReceiptListRow, error) {
	query := `
		SELECT ` + joinColumns("r", receiptColumns) + `, q.number, c.name
		FROM receipts r
		JOIN quotations q ON q.id = r.quotation_id
		JOIN clients c ON c.id = q.client_id
		WHERE r.company_id = $1
		ORDER BY r.id DESC`
	args := []any{companyID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []repository.ReceiptListRow
	for rows.Next() {
		var row repository.ReceiptListRow
		if err := scanReceipt(rows, &row.Receipt, &row.QuotationNumber, &row.ClientName); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListByQuotation returns the receipts recorded against one quotation,
// oldest first, the order they appear on statements.
func (r *ReceiptRepo) ListByQuotation(ctx context.Context, companyID, quotationID int64) ([]entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts
		WHERE company_id = $1 AND quotation_id = $2 ORDER BY id`
	rows, err := r.q.Query(ctx, query, companyID, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list receipts by quotation: %w", err)
	}
	defer rows.Close()
	var list []entity.Receipt
	for rows.Next() {
		var receipt entity.Receipt
		if err := scanReceipt(rows, &receipt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, receipt)
	}
	return list, rows.Err()
}

// GetByID fetches one receipt of the company. Not found returns (nil, nil).
func (r *ReceiptRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE company_id = $1 AND id = $2`
	var receipt entity.Receipt
	if err := scanReceipt(r.q.QueryRow(ctx, query, companyID, id), &receipt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &receipt, nil
}

// Update rewrites the mutable receipt fields. The number and quotation link
// never change after creation.
func (r *ReceiptRepo) Update(ctx context.Context, receipt *entity.Receipt) error {
	query := `
		UPDATE receipts SET date = $2, amount = $3, payment_mode = $4,
			transaction_ref = $5, notes = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		receipt.ID, receipt.Date, receipt.Amount, receipt.PaymentMode,
		receipt.TransactionRef, receipt.Notes,
	)
	if err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}
	return nil
}

// Delete removes a receipt.
func (r *ReceiptRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM receipts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

// SumByQuotation totals the receipts against a quotation, zero when none.
func (r *ReceiptRepo) SumByQuotation(ctx context.Context, quotationID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM receipts WHERE quotation_id = $1`,
		quotationID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum receipts: %w", err)
	}
	return sum, nil
}

// CountByQuotation counts the receipts recorded against a quotation.
func (r *ReceiptRepo) CountByQuotation(ctx context.Context, quotationID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM receipts WHERE quotation_id = $1`, quotationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count receipts: %w", err)
	}
	return count, nil
}

// LastNumberWithPrefix returns the most recently issued number under the
// scope prefix, "" for an empty scope.
func (r *ReceiptRepo) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	return lastNumber(ctx, r.q, "receipts", prefix)
}

// scanReceipt scans a receipt row; extra receives trailing join columns.
func scanReceipt(row pgx.Row, receipt *entity.Receipt, extra ...any) error {
	dest := []any{
		&receipt.ID, &receipt.CompanyID, &receipt.QuotationID, &receipt.Number, &receipt.Date,
		&receipt.Amount, &receipt.PaymentMode, &receipt.TransactionRef, &receipt.Notes, &receipt.CreatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}
