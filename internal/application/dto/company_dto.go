package dto

// CreateCompanyRequest body for POST /api/companies. Code is the scope code
// prefixed to every document number of the tenant.
type CreateCompanyRequest struct {
	Name               string `json:"name" validate:"required"`
	Code               string `json:"code" validate:"required,alphanum,uppercase,max=10"`
	Address            string `json:"address,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty" validate:"omitempty,email"`
	GSTNumber          string `json:"gst_number,omitempty"`
	BankDetails        string `json:"bank_details,omitempty"`
	DefaultTerms       string `json:"default_terms,omitempty"`
	DefaultPaymentPlan string `json:"default_payment_plan,omitempty"`
}

// UpdateCompanyRequest body for PUT /api/companies/:id. The code is immutable
// once issued numbers carry it.
type UpdateCompanyRequest struct {
	Name               string `json:"name" validate:"required"`
	Address            string `json:"address,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty" validate:"omitempty,email"`
	GSTNumber          string `json:"gst_number,omitempty"`
	BankDetails        string `json:"bank_details,omitempty"`
	DefaultTerms       string `json:"default_terms,omitempty"`
	DefaultPaymentPlan string `json:"default_payment_plan,omitempty"`
}

// CompanyResponse company in responses.
type CompanyResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Code               string `json:"code"`
	Address            string `json:"address,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty"`
	GSTNumber          string `json:"gst_number,omitempty"`
	BankDetails        string `json:"bank_details,omitempty"`
	DefaultTerms       string `json:"default_terms,omitempty"`
	DefaultPaymentPlan string `json:"default_payment_plan,omitempty"`
}
