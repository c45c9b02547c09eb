package entity

import "time"

// Client is a customer of a company.
type Client struct {
	ID              int64
	CompanyID       int64
	Name            string
	Address         string
	Phone           string
	Email           string
	ProjectLocation string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
