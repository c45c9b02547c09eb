package usecase

import (
	"context"
	"time"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// PackageUseCase pre-priced interior package management.
type PackageUseCase struct {
	repo repository.PackageRepository
}

// NewPackageUseCase builds the use case.
func NewPackageUseCase(repo repository.PackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

// Create registers a package under the company. Active unless the request
// says otherwise.
func (uc *PackageUseCase) Create(ctx context.Context, companyID int64, in dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	pkg := &entity.Package{
		CompanyID:    companyID,
		Name:         in.Name,
		BHKType:      in.BHKType,
		Tier:         in.Tier,
		BaseRateSqft: in.BaseRateSqft,
		Description:  in.Description,
		IsActive:     active,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return toPackageResponse(pkg), nil
}

// List returns the company's packages.
func (uc *PackageUseCase) List(ctx context.Context, companyID int64) ([]*dto.PackageResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PackageResponse, 0, len(list))
	for i := range list {
		out = append(out, toPackageResponse(&list[i]))
	}
	return out, nil
}

// GetByID returns one package of the company.
func (uc *PackageUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.PackageResponse, error) {
	pkg, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	return toPackageResponse(pkg), nil
}

// Update changes package details.
func (uc *PackageUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	pkg, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	pkg.Name = in.Name
	pkg.BHKType = in.BHKType
	pkg.Tier = in.Tier
	pkg.BaseRateSqft = in.BaseRateSqft
	pkg.Description = in.Description
	if in.IsActive != nil {
		pkg.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return toPackageResponse(pkg), nil
}

// Delete removes a package of the company.
func (uc *PackageUseCase) Delete(ctx context.Context, companyID, id int64) error {
	pkg, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}

func toPackageResponse(p *entity.Package) *dto.PackageResponse {
	return &dto.PackageResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		Name:         p.Name,
		BHKType:      p.BHKType,
		Tier:         p.Tier,
		BaseRateSqft: p.BaseRateSqft,
		Description:  p.Description,
		IsActive:     p.IsActive,
	}
}
