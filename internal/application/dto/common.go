package dto

import "github.com/go-playground/validator/v10"

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = validator.New()

// Validate runs the struct tags of a request DTO.
func Validate(v any) error {
	return validate.Struct(v)
}
