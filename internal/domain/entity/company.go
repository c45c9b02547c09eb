package entity

import "time"

// Company is a tenant of the system. Code is the short scope code used as the
// prefix of every document number issued under the company (e.g. "AARTI").
type Company struct {
	ID                 int64
	Name               string
	Code               string
	Address            string
	Phone              string
	Email              string
	GSTNumber          string
	BankDetails        string
	DefaultTerms       string
	DefaultPaymentPlan string
	CreatedAt          time.Time
}
