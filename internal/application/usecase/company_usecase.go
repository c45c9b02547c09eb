package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// CompanyUseCase tenant management.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registers a tenant. The scope code is stored uppercased; the unique
// constraint on it surfaces as domain.ErrDuplicate.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{
		Name:               in.Name,
		Code:               strings.ToUpper(in.Code),
		Address:            in.Address,
		Phone:              in.Phone,
		Email:              in.Email,
		GSTNumber:          in.GSTNumber,
		BankDetails:        in.BankDetails,
		DefaultTerms:       in.DefaultTerms,
		DefaultPaymentPlan: in.DefaultPaymentPlan,
		CreatedAt:          time.Now(),
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// List returns all tenants.
func (uc *CompanyUseCase) List(ctx context.Context) ([]*dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for i := range list {
		out = append(out, ToCompanyResponse(&list[i]))
	}
	return out, nil
}

// GetByID returns one tenant.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return ToCompanyResponse(company), nil
}

// Update changes tenant details. The scope code is immutable once issued
// document numbers carry it.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Name = in.Name
	company.Address = in.Address
	company.Phone = in.Phone
	company.Email = in.Email
	company.GSTNumber = in.GSTNumber
	company.BankDetails = in.BankDetails
	company.DefaultTerms = in.DefaultTerms
	company.DefaultPaymentPlan = in.DefaultPaymentPlan
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// ToCompanyResponse maps the entity to its response DTO.
func ToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Code:               c.Code,
		Address:            c.Address,
		Phone:              c.Phone,
		Email:              c.Email,
		GSTNumber:          c.GSTNumber,
		BankDetails:        c.BankDetails,
		DefaultTerms:       c.DefaultTerms,
		DefaultPaymentPlan: c.DefaultPaymentPlan,
	}
}
