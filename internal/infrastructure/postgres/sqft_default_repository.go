package postgres

import (
	"context"
	"fmt"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

var _ repository.SqftDefaultRepository = (*SqftDefaultRepo)(nil)

// SqftDefaultRepo SqftDefaultRepository implementation (usable with pool or tx).
type SqftDefaultRepo struct {
	q Querier
}

// NewSqftDefaultRepository builds the adapter. Pass a pool or tx (Querier).
func NewSqftDefaultRepository(q Querier) *SqftDefaultRepo {
	return &SqftDefaultRepo{q: q}
}

// ListByCompany lists the company's template lines grouped by section.
func (r *SqftDefaultRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.SqftDefault, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, room_label, item_name, unit, quantity, sort_order
		FROM sqft_defaults WHERE company_id = $1
		ORDER BY room_label, sort_order`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sqft defaults: %w", err)
	}
	defer rows.Close()
	var list []entity.SqftDefault
	for rows.Next() {
		var d entity.SqftDefault
		err := rows.Scan(&d.ID, &d.CompanyID, &d.RoomLabel, &d.ItemName, &d.Unit, &d.Quantity, &d.SortOrder)
		if err != nil {
			return nil, fmt.Errorf("scan sqft default: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Replace rewrites the company's whole template set in request order.
func (r *SqftDefaultRepo) Replace(ctx context.Context, companyID int64, items []entity.SqftDefault) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sqft_defaults WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("clear sqft defaults: %w", err)
	}
	for i := range items {
		items[i].CompanyID = companyID
		items[i].SortOrder = i
		err := r.q.QueryRow(ctx, `
			INSERT INTO sqft_defaults (company_id, room_label, item_name, unit, quantity, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			companyID, items[i].RoomLabel, items[i].ItemName, items[i].Unit,
			items[i].Quantity, items[i].SortOrder,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("insert sqft default: %w", err)
		}
	}
	return nil
}
