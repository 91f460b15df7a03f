package domain

import (
	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/pkg/datepkg"
)

// StatementLine is a transaction with the account balance right after it.
type StatementLine struct {
	Transaction Transaction     `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

// Statement is the monthly account statement.
type Statement struct {
	AccountID string          `json:"account"`
	Month     datepkg.Month   `json:"month"`
	Interest  decimal.Decimal `json:"interest"`
	// Provisional is set for a month that has not ended yet. Its interest
	// line is an estimate from the current balance and is not in the ledger.
	Provisional bool            `json:"provisional"`
	Lines       []StatementLine `json:"lines"`
}
