package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/vishvakarma/studiodesk-api/internal/application/dto"
	"github.com/vishvakarma/studiodesk-api/internal/domain"
	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
	"github.com/vishvakarma/studiodesk-api/internal/domain/repository"
	"github.com/vishvakarma/studiodesk-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login, company selection and token introspection. Users are
// global; the active company is selected after login and the token is
// re-issued with the company claims.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// Login verifies username/password and issues a token without company claims.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, user.ID, 0, "")
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// SelectCompany re-issues the token with the chosen company's id and scope
// code embedded.
func (uc *AuthUseCase) SelectCompany(ctx context.Context, userID int64, in dto.SelectCompanyRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, user.ID, company.ID, company.Code)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Me returns the authenticated user and the active company, if one is
// selected in the token.
func (uc *AuthUseCase) Me(ctx context.Context, userID, companyID int64) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := &dto.MeResponse{User: *toUserResponse(user)}
	if companyID > 0 {
		company, err := uc.companyRepo.GetByID(ctx, companyID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if company != nil {
			out.Company = toCompanyResponse(company)
		}
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
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
