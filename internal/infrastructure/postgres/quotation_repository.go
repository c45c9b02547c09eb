package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo QuotationRepository implementation (usable with pool or tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository builds the adapter. Pass a pool or tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `id, company_id, client_id, package_id, number, date,
	total_sqft, rate_per_sqft, bedroom_count, bedroom_config,
	subtotal, discount_type, discount_value, discount_amount, taxable_amount,
	cgst_percent, cgst_amount, sgst_percent, sgst_amount, total_tax, grand_total,
	terms, payment_plan, notes, status, created_at, updated_at`

// Create persists a quotation. The unique number surfaces as ErrDuplicate so
// the allocator can retry.
func (r *QuotationRepo) Create(ctx context.Context, q *entity.Quotation) error {
	query := `
		INSERT INTO quotations (company_id, client_id, package_id, number, date,
			total_sqft, rate_per_sqft, bedroom_count, bedroom_config,
			subtotal, discount_type, discount_value, discount_amount, taxable_amount,
			cgst_percent, cgst_amount, sgst_percent, sgst_amount, total_tax, grand_total,
			terms, payment_plan, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		q.CompanyID, q.ClientID, q.PackageID, q.Number, q.Date,
		q.TotalSqft, q.RatePerSqft, q.BedroomCount, q.BedroomConfig,
		q.Subtotal, string(q.DiscountType), q.DiscountValue, q.DiscountAmt, q.TaxableAmount,
		q.CGSTPercent, q.CGSTAmount, q.SGSTPercent, q.SGSTAmount, q.TotalTax, q.GrandTotal,
		q.Terms, q.PaymentPlan, q.Notes, q.Status, q.CreatedAt, q.UpdatedAt,
	).Scan(&q.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// ListByCompany lists the company's quotations newest first, with the client
// columns the list views display.
func (r *QuotationRepo) ListByCompany(ctx context.Context, companyID int64) ([]repository.QuotationListRow, error) {
	return r.list(ctx, companyID, 0)
}

// ListRecent returns the latest quotations for the dashboard.
func (r *QuotationRepo) ListRecent(ctx context.Context, companyID int64, limit int) ([]repository.QuotationListRow, error) {
	return r.list(ctx, companyID, limit)
}

func (r *QuotationRepo) list(ctx context.Context, companyID int64, limit int) ([]repository.QuotationListRow, error) {
	query := `
		SELECT ` + joinColumns("q", quotationColumns) + `, c.name, c.phone
		FROM quotations q
		JOIN clients c ON c.id = q.client_id
		WHERE q.company_id = $1
		ORDER BY q.id DESC`
	args := []any{companyID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []repository.QuotationListRow
	for rows.Next() {
		var row repository.QuotationListRow
		var discountType string
		if err := rows.Scan(
			&row.ID, &row.CompanyID, &row.ClientID, &row.PackageID, &row.Number, &row.Date,
			&row.TotalSqft, &row.RatePerSqft, &row.BedroomCount, &row.BedroomConfig,
			&row.Subtotal, &discountType, &row.DiscountValue, &row.DiscountAmt, &row.TaxableAmount,
			&row.CGSTPercent, &row.CGSTAmount, &row.SGSTPercent, &row.SGSTAmount, &row.TotalTax, &row.GrandTotal,
			&row.Terms, &row.PaymentPlan, &row.Notes, &row.Status, &row.CreatedAt, &row.UpdatedAt,
			&row.ClientName, &row.ClientPhone,
		); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		row.DiscountType = entity.DiscountType(discountType)
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID fetches one quotation of the company. Not found returns (nil, nil).
func (r *QuotationRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE company_id = $1 AND id = $2`
	var q entity.Quotation
	var discountType string
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&q.ID, &q.CompanyID, &q.ClientID, &q.PackageID, &q.Number, &q.Date,
		&q.TotalSqft, &q.RatePerSqft, &q.BedroomCount, &q.BedroomConfig,
		&q.Subtotal, &discountType, &q.DiscountValue, &q.DiscountAmt, &q.TaxableAmount,
		&q.CGSTPercent, &q.CGSTAmount, &q.SGSTPercent, &q.SGSTAmount, &q.TotalTax, &q.GrandTotal,
		&q.Terms, &q.PaymentPlan, &q.Notes, &q.Status, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	q.DiscountType = entity.DiscountType(discountType)
	return &q, nil
}

// Update rewrites a quotation. The number and company are never touched.
func (r *QuotationRepo) Update(ctx context.Context, q *entity.Quotation) error {
	query := `
		UPDATE quotations SET client_id = $2, package_id = $3, date = $4,
			total_sqft = $5, rate_per_sqft = $6, bedroom_count = $7, bedroom_config = $8,
			subtotal = $9, discount_type = $10, discount_value = $11, discount_amount = $12,
			taxable_amount = $13, cgst_percent = $14, cgst_amount = $15,
			sgst_percent = $16, sgst_amount = $17, total_tax = $18, grand_total = $19,
			terms = $20, payment_plan = $21, notes = $22, status = $23, updated_at = $24
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		q.ID, q.ClientID, q.PackageID, q.Date,
		q.TotalSqft, q.RatePerSqft, q.BedroomCount, q.BedroomConfig,
		q.Subtotal, string(q.DiscountType), q.DiscountValue, q.DiscountAmt,
		q.TaxableAmount, q.CGSTPercent, q.CGSTAmount,
		q.SGSTPercent, q.SGSTAmount, q.TotalTax, q.GrandTotal,
		q.Terms, q.PaymentPlan, q.Notes, q.Status, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	return nil
}

// UpdateStatus flips the lifecycle status.
func (r *QuotationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE quotations SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	return nil
}

// Delete removes a quotation and its item lines.
func (r *QuotationRepo) Delete(ctx context.Context, companyID, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1`, id); err != nil {
		return fmt.Errorf("delete quotation items: %w", err)
	}
	_, err := r.q.Exec(ctx, `DELETE FROM quotations WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	return nil
}

// ListItems returns the item lines ordered by sort position.
func (r *QuotationRepo) ListItems(ctx context.Context, quotationID int64) ([]entity.QuotationItem, error) {
	query := `
		SELECT id, quotation_id, room_label, item_name, description, material,
			brand, unit, quantity, rate, amount, remarks, sort_order
		FROM quotation_items WHERE quotation_id = $1 ORDER BY sort_order, id`
	rows, err := r.q.Query(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation items: %w", err)
	}
	defer rows.Close()
	var list []entity.QuotationItem
	for rows.Next() {
		var item entity.QuotationItem
		if err := rows.Scan(
			&item.ID, &item.QuotationID, &item.RoomLabel, &item.ItemName, &item.Description,
			&item.Material, &item.Brand, &item.Unit, &item.Quantity, &item.Rate,
			&item.Amount, &item.Remarks, &item.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// ReplaceItems deletes and re-inserts the full item set. Items are
// exclusively owned by their quotation.
func (r *QuotationRepo) ReplaceItems(ctx context.Context, quotationID int64, items []entity.QuotationItem) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1`, quotationID); err != nil {
		return fmt.Errorf("clear quotation items: %w", err)
	}
	query := `
		INSERT INTO quotation_items (quotation_id, room_label, item_name, description,
			material, brand, unit, quantity, rate, amount, remarks, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	for i := range items {
		items[i].QuotationID = quotationID
		err := r.q.QueryRow(ctx, query,
			quotationID, items[i].RoomLabel, items[i].ItemName, items[i].Description,
			items[i].Material, items[i].Brand, items[i].Unit, items[i].Quantity,
			items[i].Rate, items[i].Amount, items[i].Remarks, items[i].SortOrder,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("insert quotation item: %w", err)
		}
	}
	return nil
}

// LastNumberWithPrefix returns the most recently issued number under the
// scope prefix, "" for an empty scope.
func (r *QuotationRepo) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	return lastNumber(ctx, r.q, "quotations", prefix)
}
