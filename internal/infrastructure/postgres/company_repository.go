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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo CompanyRepository implementation (usable with pool or tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter. Pass a pool or tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, code, address, phone, email, gst_number,
	bank_details, default_terms, default_payment_plan, created_at`

// Create persists a tenant. The unique scope code surfaces as ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (name, code, address, phone, email, gst_number,
			bank_details, default_terms, default_payment_plan, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		company.Name, company.Code, company.Address, company.Phone, company.Email,
		company.GSTNumber, company.BankDetails, company.DefaultTerms,
		company.DefaultPaymentPlan, company.CreatedAt,
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// List returns all tenants ordered by name.
func (r *CompanyRepo) List(ctx context.Context) ([]entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []entity.Company
	for rows.Next() {
		var c entity.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID fetches a tenant by id. Not found returns (nil, nil).
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	var c entity.Company
	err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update rewrites a tenant's mutable fields. The code column stays.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, phone = $4, email = $5,
			gst_number = $6, bank_details = $7, default_terms = $8,
			default_payment_plan = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Address, company.Phone, company.Email,
		company.GSTNumber, company.BankDetails, company.DefaultTerms,
		company.DefaultPaymentPlan,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

func scanCompany(row pgx.Row, c *entity.Company) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Code, &c.Address, &c.Phone, &c.Email, &c.GSTNumber,
		&c.BankDetails, &c.DefaultTerms, &c.DefaultPaymentPlan, &c.CreatedAt,
	)
}
