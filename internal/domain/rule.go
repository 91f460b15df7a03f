package domain

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/pkg/datepkg"
)

var (
	// ErrInvalidRate indicates a rate outside of (0, 100].
	ErrInvalidRate = errors.New("interest rate should be greater than 0 and less than or equal to 100")
	// ErrInvalidRuleID indicates an empty rule id.
	ErrInvalidRuleID = errors.New("invalid rule id")
)

// InterestRule holds the annual rate in percent effective from Date onwards.
type InterestRule struct {
	Date   datepkg.Date    `json:"date"`
	RuleID string          `json:"rule_id"`
	Rate   decimal.Decimal `json:"rate"`
}
