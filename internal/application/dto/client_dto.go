package dto

// CreateClientRequest body for POST /api/clients.
type CreateClientRequest struct {
	Name            string `json:"name" validate:"required"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	ProjectLocation string `json:"project_location,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// UpdateClientRequest body for PUT /api/clients/:id.
type UpdateClientRequest = CreateClientRequest

// ClientResponse client in responses.
type ClientResponse struct {
	ID              int64  `json:"id"`
	CompanyID       int64  `json:"company_id"`
	Name            string `json:"name"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	ProjectLocation string `json:"project_location,omitempty"`
	Notes           string `json:"notes,omitempty"`
}
