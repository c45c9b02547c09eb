// Package pricing computes the money fields of quotations and bills:
// subtotal → discount → taxable amount → CGST/SGST → grand total.
// All arithmetic runs on shopspring decimals so repeated edits of the same
// document never drift; equal inputs always produce equal results.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vishvakarma/studiodesk-api/internal/domain/entity"
)

// MaxDiscountPercent is the ceiling on the effective discount, whether it was
// entered as a percentage or as a flat amount.
var MaxDiscountPercent = decimal.NewFromInt(30)

// DefaultTaxPercent is applied for CGST and SGST when the caller leaves the
// percentage unspecified.
var DefaultTaxPercent = decimal.NewFromInt(9)

var hundred = decimal.NewFromInt(100)

// Discount is the tagged discount of a quotation.
type Discount struct {
	Type  entity.DiscountType
	Value decimal.Decimal
}

// Result carries every computed money field of a successful pricing run.
type Result struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	CGSTPercent    decimal.Decimal
	CGSTAmount     decimal.Decimal
	SGSTPercent    decimal.Decimal
	SGSTAmount     decimal.Decimal
	TotalTax       decimal.Decimal
	GrandTotal     decimal.Decimal
}

// DiscountError reports a discount whose effective percentage exceeds the
// ceiling. The whole create/update must be rejected; nothing is persisted.
type DiscountError struct {
	Percent decimal.Decimal
}

func (e *DiscountError) Error() string {
	return fmt.Sprintf("discount cannot exceed %s%%: current discount is %s%%",
		MaxDiscountPercent.String(), e.Percent.StringFixed(2))
}

// Compute prices a document. lineTotal is the sum of item amounts, or
// area × rate when the quotation has no items; the caller decides the basis.
// cgstPct/sgstPct are used as given (zero means zero tax); resolving
// "unspecified" to the default is the caller's job, see ResolveTaxPercent.
func Compute(lineTotal decimal.Decimal, d Discount, cgstPct, sgstPct decimal.Decimal) (Result, error) {
	discountAmount, err := validateDiscount(lineTotal, d)
	if err != nil {
		return Result{}, err
	}

	taxable := lineTotal.Sub(discountAmount)
	cgstAmount := taxable.Mul(cgstPct).Div(hundred)
	sgstAmount := taxable.Mul(sgstPct).Div(hundred)
	totalTax := cgstAmount.Add(sgstAmount)

	return Result{
		Subtotal:       lineTotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxable,
		CGSTPercent:    cgstPct,
		CGSTAmount:     cgstAmount,
		SGSTPercent:    sgstPct,
		SGSTAmount:     sgstAmount,
		TotalTax:       totalTax,
		GrandTotal:     taxable.Add(totalTax),
	}, nil
}

// validateDiscount returns the discount amount, enforcing the 30% ceiling on
// the effective percentage. No discount type or a non-positive value means a
// zero discount and always passes.
func validateDiscount(lineTotal decimal.Decimal, d Discount) (decimal.Decimal, error) {
	if d.Type == entity.DiscountNone || !d.Value.IsPositive() {
		return decimal.Zero, nil
	}

	var amount, percent decimal.Decimal
	switch d.Type {
	case entity.DiscountPercentage:
		percent = d.Value
		amount = lineTotal.Mul(d.Value).Div(hundred)
	default: // flat
		amount = d.Value
		if lineTotal.IsZero() {
			// A flat discount against nothing is an unbounded percentage.
			return decimal.Zero, &DiscountError{Percent: hundred}
		}
		percent = d.Value.Div(lineTotal).Mul(hundred)
	}

	if percent.GreaterThan(MaxDiscountPercent) {
		return decimal.Zero, &DiscountError{Percent: percent}
	}
	return amount, nil
}

// ResolveTaxPercent maps an optional request percentage to the value Compute
// should use: nil means the statutory default, an explicit value (including
// zero) is taken as-is.
func ResolveTaxPercent(pct *decimal.Decimal) decimal.Decimal {
	if pct == nil {
		return DefaultTaxPercent
	}
	return *pct
}
