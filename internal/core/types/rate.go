// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"

	"milldesk/internal/core/apperror"
)

// Rate represents a per-entry monetary rate with full precision.
// Uses decimal.Decimal to avoid floating-point errors at the validation boundary.
type Rate = decimal.Decimal

// ParseRate parses a decimal rate string.
// This is the preferred constructor for monetary values.
func ParseRate(s string) (Rate, error) {
	return decimal.NewFromString(s)
}

// MustRate parses a decimal rate string, panics on error.
// Use only for constants and tests.
func MustRate(s string) Rate {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NormalizeRate validates a rate string and returns its canonical form
// with two fractional digits. Rates must not be negative.
func NormalizeRate(field, s string) (string, error) {
	if s == "" {
		return "", apperror.NewValidation(field + " is required").
			WithDetail("field", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", apperror.NewValidation("invalid " + field).
			WithDetail("field", field).
			WithDetail("value", s)
	}
	if d.IsNegative() {
		return "", apperror.NewValidation(field + " must not be negative").
			WithDetail("field", field).
			WithDetail("value", s)
	}
	return d.StringFixed(2), nil
}

// NormalizeTaar validates a taar (thread count) string and returns its
// canonical form with three fractional digits. Taar is non-negative and
// optional: an empty string normalizes to "0.000".
func NormalizeTaar(s string) (string, error) {
	if s == "" {
		return "0.000", nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", apperror.NewValidation("invalid taar").
			WithDetail("field", "taar").
			WithDetail("value", s)
	}
	if d.IsNegative() {
		return "", apperror.NewValidation("taar must not be negative").
			WithDetail("field", "taar").
			WithDetail("value", s)
	}
	return d.StringFixed(3), nil
}
