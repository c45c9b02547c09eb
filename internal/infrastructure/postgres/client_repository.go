package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo ClientRepository implementation (usable with pool or tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the adapter. Pass a pool or tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, company_id, name, address, phone, email,
	project_location, notes, created_at, updated_at`

// Create persists a client.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (company_id, name, address, phone, email,
			project_location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		client.CompanyID, client.Name, client.Address, client.Phone, client.Email,
		client.ProjectLocation, client.Notes, client.CreatedAt, client.UpdatedAt,
	).Scan(&client.ID)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// ListByCompany lists the company's clients ordered by name.
func (r *ClientRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.Client, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []entity.Client
	for rows.Next() {
		var c entity.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID fetches one client of the company. Not found returns (nil, nil).
func (r *ClientRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Client, error) {
	var c entity.Client
	err := scanClient(r.q.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE company_id = $1 AND id = $2`, companyID, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update rewrites a client's mutable fields.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, address = $3, phone = $4, email = $5,
			project_location = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Name, client.Address, client.Phone, client.Email,
		client.ProjectLocation, client.Notes, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete removes one client of the company.
func (r *ClientRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func scanClient(row pgx.Row, c *entity.Client) error {
	return row.Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Address, &c.Phone, &c.Email,
		&c.ProjectLocation, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
}
