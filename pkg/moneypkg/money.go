// Package moneypkg provides common money related functionality for apps.
package moneypkg

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits a monetary amount may carry.
const Scale = 2

var (
	// ErrFormat indicates that the amount is not a plain decimal with at most two fractional digits.
	ErrFormat = errors.New("amount can not be more than 2 decimals")
	// ErrNotPositive indicates that the amount is zero or negative.
	ErrNotPositive = errors.New("amount has to be greater than 0")
	// ErrNotDecimal indicates input that is not written as plain decimal digits.
	ErrNotDecimal = errors.New("not a decimal number")
)

var (
	amountPattern  = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	decimalPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// ParseDecimal parses digits with an optional leading minus and fraction.
// Exponent forms such as "1e2" are rejected.
func ParseDecimal(s string) (decimal.Decimal, error) {
	if !decimalPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrNotDecimal)
	}

	return decimal.NewFromString(s)
}

// half is used for half-up rounding at Scale digits.
var half = decimal.New(5, -1)

// ParseAmount parses a positive amount written as digits with an optional
// fraction of one or two digits, e.g. "100" or "25.5".
func ParseAmount(s string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrFormat)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, err)
	}

	if err := CheckAmount(d); err != nil {
		return decimal.Zero, err
	}

	return d, nil
}

// CheckAmount validates an already decoded amount.
func CheckAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return ErrNotPositive
	}

	if !d.Equal(d.Truncate(Scale)) {
		return ErrFormat
	}

	return nil
}

// ValidAmount reports whether s is acceptable to ParseAmount.
func ValidAmount(s string) bool {
	_, err := ParseAmount(s)
	return err == nil
}

// RoundHalfUp rounds d to Scale digits, ties going towards positive infinity.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Shift(Scale).Add(half).Floor().Shift(-Scale)
}

// Format renders d with exactly Scale fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
