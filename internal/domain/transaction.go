package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/pkg/datepkg"
)

var (
	// ErrInvalidAccountID indicates an empty or blank account ID.
	ErrInvalidAccountID = errors.New("invalid account id")
	// ErrInvalidAmount indicates a non-positive amount or one with more than two decimals.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidTransactionType indicates a type other than D or W.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	// ErrInsufficientFunds indicates that the withdrawal exceeds the balance as of its date.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrFutureDate indicates a date after today.
	ErrFutureDate = errors.New("date can not be in the future")
	// ErrSequenceExhausted indicates that the two digit daily sequence is used up.
	ErrSequenceExhausted = errors.New("no transaction id left for the date")
)

// TransactionType is the kind of a ledger transaction.
type TransactionType string

// Supported transaction types. Interest is posted by the statement run only.
const (
	Deposit    TransactionType = "D"
	Withdrawal TransactionType = "W"
	Interest   TransactionType = "I"
)

// ParseTransactionType accepts D or W in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Deposit, "d":
		return Deposit, nil
	case Withdrawal, "w":
		return Withdrawal, nil
	default:
		return "", ErrInvalidTransactionType
	}
}

// Sign returns +1 for types that increase the balance and -1 otherwise.
func (t TransactionType) Sign() int64 {
	if t == Withdrawal {
		return -1
	}

	return 1
}

// Transaction holds an immutable ledger record.
type Transaction struct {
	// ID is YYYYMMDD-NN, empty for posted interest.
	ID        string          `json:"id"`
	Date      datepkg.Date    `json:"date"`
	AccountID string          `json:"account"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"` // must be positive
}

// Signed returns the amount with the sign of its effect on the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type.Sign() < 0 {
		return t.Amount.Neg()
	}

	return t.Amount
}

// CreateTransactionParams is the input data to record a transaction.
type CreateTransactionParams struct {
	Date      datepkg.Date
	AccountID string
	Type      TransactionType
	Amount    decimal.Decimal
}

// MaxSequence is the highest daily sequence a transaction ID can carry.
const MaxSequence = 99

// NewTransactionID formats the ID of the seq-th transaction on date.
func NewTransactionID(date datepkg.Date, seq int) string {
	return fmt.Sprintf("%s-%02d", date, seq)
}

// ParseTransactionID splits an ID into its date and daily sequence.
func ParseTransactionID(id string) (datepkg.Date, int, error) {
	day, num, ok := strings.Cut(id, "-")
	if !ok || len(num) != 2 {
		return datepkg.Date{}, 0, fmt.Errorf("invalid transaction id %q", id)
	}

	date, err := datepkg.Parse(day)
	if err != nil {
		return datepkg.Date{}, 0, fmt.Errorf("invalid transaction id %q: %w", id, err)
	}

	seq, err := strconv.Atoi(num)
	if err != nil || seq < 1 {
		return datepkg.Date{}, 0, fmt.Errorf("invalid transaction id %q", id)
	}

	return date, seq, nil
}
