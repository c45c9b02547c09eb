package dto

import "time"

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SelectCompanyRequest body for POST /api/auth/select-company. The token is
// re-issued with the company claims.
type SelectCompanyRequest struct {
	CompanyID int64 `json:"company_id" validate:"required,gt=0"`
}

// UserResponse user in responses (never includes the password hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token plus user for POST /api/auth/login and select-company.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse current user and, when selected, the active company.
type MeResponse struct {
	User    UserResponse     `json:"user"`
	Company *CompanyResponse `json:"company,omitempty"`
}
