package usecase

import (
	"context"
	"time"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
)

// ClientUseCase client management, company-scoped throughout.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registers a client under the company.
func (uc *ClientUseCase) Create(ctx context.Context, companyID int64, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		CompanyID:       companyID,
		Name:            in.Name,
		Address:         in.Address,
		Phone:           in.Phone,
		Email:           in.Email,
		ProjectLocation: in.ProjectLocation,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List returns the company's clients.
func (uc *ClientUseCase) List(ctx context.Context, companyID int64) ([]*dto.ClientResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for i := range list {
		out = append(out, toClientResponse(&list[i]))
	}
	return out, nil
}

// GetByID returns one client of the company.
func (uc *ClientUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update changes client details.
func (uc *ClientUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Address = in.Address
	client.Phone = in.Phone
	client.Email = in.Email
	client.ProjectLocation = in.ProjectLocation
	client.Notes = in.Notes
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete removes a client of the company.
func (uc *ClientUseCase) Delete(ctx context.Context, companyID, id int64) error {
	client, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		Name:            c.Name,
		Address:         c.Address,
		Phone:           c.Phone,
		Email:           c.Email,
		ProjectLocation: c.ProjectLocation,
		Notes:           c.Notes,
	}
}
