package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo PackageRepository implementation (usable with pool or tx).
type PackageRepo struct {
	q Querier
}

// NewPackageRepository builds the adapter. Pass a pool or tx (Querier).
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

const packageColumns = `id, company_id, name, bhk_type, tier, base_rate_sqft,
	description, is_active, created_at`

// Create persists a package.
func (r *PackageRepo) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (company_id, name, bhk_type, tier, base_rate_sqft,
			description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		pkg.CompanyID, pkg.Name, pkg.BHKType, pkg.Tier, pkg.BaseRateSqft,
		pkg.Description, pkg.IsActive, pkg.CreatedAt,
	).Scan(&pkg.ID)
	if err != nil {
		return fmt.Errorf("insert package: %w", err)
	}
	return nil
}

// ListByCompany lists the company's packages ordered by name.
func (r *PackageRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.Package, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()
	var list []entity.Package
	for rows.Next() {
		var p entity.Package
		if err := scanPackage(rows, &p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID fetches one package of the company. Not found returns (nil, nil).
func (r *PackageRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Package, error) {
	var p entity.Package
	err := scanPackage(r.q.QueryRow(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE company_id = $1 AND id = $2`, companyID, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return &p, nil
}

// Update rewrites a package's mutable fields.
func (r *PackageRepo) Update(ctx context.Context, pkg *entity.Package) error {
	query := `
		UPDATE packages SET name = $2, bhk_type = $3, tier = $4,
			base_rate_sqft = $5, description = $6, is_active = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		pkg.ID, pkg.Name, pkg.BHKType, pkg.Tier, pkg.BaseRateSqft,
		pkg.Description, pkg.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update package: %w", err)
	}
	return nil
}

// Delete removes one package of the company.
func (r *PackageRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM packages WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}

func scanPackage(row pgx.Row, p *entity.Package) error {
	return row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.BHKType, &p.Tier, &p.BaseRateSqft,
		&p.Description, &p.IsActive, &p.CreatedAt,
	)
}
