package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/payments"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo BillRepository implementation (usable with pool or tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository builds the adapter. Pass a pool or tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

const billColumns = `id, company_id, quotation_id, number, date,
	subtotal, cgst_percent, cgst_amount, sgst_percent, sgst_amount, total_tax, grand_total,
	paid_amount, balance_amount, status, notes, created_at, updated_at`

// Create persists a bill. Both the number and the quotation link are unique;
// the violated constraint decides the error. Only a number collision maps to
// ErrDuplicate — the create loop retries that with a fresh number, which
// would never resolve a second bill on the same quotation.
func (r *BillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	query := `
		INSERT INTO bills (company_id, quotation_id, number, date,
			subtotal, cgst_percent, cgst_amount, sgst_percent, sgst_amount, total_tax, grand_total,
			paid_amount, balance_amount, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		bill.CompanyID, bill.QuotationID, bill.Number, bill.Date,
		bill.Subtotal, bill.CGSTPercent, bill.CGSTAmount, bill.SGSTPercent, bill.SGSTAmount,
		bill.TotalTax, bill.GrandTotal,
		bill.PaidAmount, bill.BalanceAmount, bill.Status, bill.Notes, bill.CreatedAt, bill.UpdatedAt,
	).Scan(&bill.ID)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(uniqueConstraintName(err), "quotation") {
				return domain.ErrQuotationHasBill
			}
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// ListByCompany lists the company's bills newest first.
func (r *BillRepo) ListByCompany(ctx context.Context, companyID int64) ([]repository.BillListRow, error) {
	return r.list(ctx, companyID, 0)
}

// ListRecent returns the latest bills for the dashboard.
func (r *BillRepo) ListRecent(ctx context.Context, companyID int64, limit int) ([]repository.BillListRow, error) {
	return r.list(ctx, companyID, limit)
}

func (r *BillRepo) list(ctx context.Context, companyID int64, limit int) ([]repository.BillListRow, error) {
	query := `
		SELECT ` + joinColumns("b", billColumns) + `, q.number, c.name
		FROM bills b
		JOIN quotations q ON q.id = b.quotation_id
		JOIN clients c ON c.id = q.client_id
		WHERE b.company_id = $1
		ORDER BY b.id DESC`
	args := []any{companyID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []repository.BillListRow
	for rows.Next() {
		var row repository.BillListRow
		if err := scanBill(rows, &row.Bill, &row.QuotationNumber, &row.ClientName); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID fetches one bill of the company. Not found returns (nil, nil).
func (r *BillRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE company_id = $1 AND id = $2`
	var bill entity.Bill
	if err := scanBill(r.q.QueryRow(ctx, query, companyID, id), &bill); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return &bill, nil
}

// GetByQuotation fetches the bill derived from a quotation, (nil, nil) when
// the quotation has not been billed.
func (r *BillRepo) GetByQuotation(ctx context.Context, quotationID int64) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE quotation_id = $1`
	var bill entity.Bill
	if err := scanBill(r.q.QueryRow(ctx, query, quotationID), &bill); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill by quotation: %w", err)
	}
	return &bill, nil
}

// Update rewrites the mutable bill fields. The number, quotation link and
// tax snapshot never change after creation.
func (r *BillRepo) Update(ctx context.Context, bill *entity.Bill) error {
	query := `UPDATE bills SET date = $2, notes = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, bill.ID, bill.Date, bill.Notes, bill.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	return nil
}

// UpdatePaymentState writes the reconciliation result.
func (r *BillRepo) UpdatePaymentState(ctx context.Context, billID int64, s payments.Settlement) error {
	query := `
		UPDATE bills SET paid_amount = $2, balance_amount = $3, status = $4, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, billID, s.PaidAmount, s.BalanceAmount, s.Status)
	if err != nil {
		return fmt.Errorf("update bill payment state: %w", err)
	}
	return nil
}

// Delete removes a bill.
func (r *BillRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}

// LastNumberWithPrefix returns the most recently issued number under the
// scope prefix, "" for an empty scope.
func (r *BillRepo) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	return lastNumber(ctx, r.q, "bills", prefix)
}

// scanBill scans a bill row; extra receives trailing join columns, if any.
func scanBill(row pgx.Row, bill *entity.Bill, extra ...any) error {
	dest := []any{
		&bill.ID, &bill.CompanyID, &bill.QuotationID, &bill.Number, &bill.Date,
		&bill.Subtotal, &bill.CGSTPercent, &bill.CGSTAmount, &bill.SGSTPercent, &bill.SGSTAmount,
		&bill.TotalTax, &bill.GrandTotal,
		&bill.PaidAmount, &bill.BalanceAmount, &bill.Status, &bill.Notes, &bill.CreatedAt, &bill.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}
