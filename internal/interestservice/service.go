// Package interestservice computes monthly interest accrued on ledger balances.
package interestservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
	"github.com/go-petr/gic-bank/pkg/moneypkg"
)

// DaysInYear is the day count basis, leap years included.
const DaysInYear = 365

// Ledger provides the read access to transactions needed for accrual.
type Ledger interface {
	AccountBalanceAsOf(ctx context.Context, accountID string, date datepkg.Date) decimal.Decimal
	AccountTransactionsInMonth(ctx context.Context, accountID string, month datepkg.Month) []domain.Transaction
}

// Rules provides the interest rule in force on a date.
type Rules interface {
	EffectiveOn(ctx context.Context, date datepkg.Date) (domain.InterestRule, bool)
}

// Service computes interest. It keeps no state of its own.
type Service struct {
	ledger Ledger
	rules  Rules
}

// New returns interest service reading from the given ledger and rules.
func New(l Ledger, r Rules) *Service {
	return &Service{
		ledger: l,
		rules:  r,
	}
}

// divisor turns a sum of balance*rate(%) day products into an amount.
var divisor = decimal.NewFromInt(100 * DaysInYear)

// Calculate returns the simple interest accrued on the account during month,
// rounded half-up to cents.
//
// Each day's transactions are applied before that day's interest, and a rule
// applies from its effective date inclusive.
func (s *Service) Calculate(ctx context.Context, accountID string, month datepkg.Month) decimal.Decimal {
	first := month.First()
	balance := s.ledger.AccountBalanceAsOf(ctx, accountID, first.Add(-1))

	byDay := make(map[int][]domain.Transaction)
	for _, tx := range s.ledger.AccountTransactionsInMonth(ctx, accountID, month) {
		byDay[tx.Date.Day()] = append(byDay[tx.Date.Day()], tx)
	}

	// sum of balance * annual rate in percent, one term per day
	weighted := decimal.Zero

	for day := 1; day <= month.Days(); day++ {
		for _, tx := range byDay[day] {
			balance = balance.Add(tx.Signed())
		}

		rule, ok := s.rules.EffectiveOn(ctx, first.Add(day-1))
		if !ok {
			continue
		}

		weighted = weighted.Add(balance.Mul(rule.Rate))
	}

	interest := moneypkg.RoundHalfUp(weighted.Div(divisor))

	zerolog.Ctx(ctx).Debug().
		Str("account", accountID).
		Stringer("month", month).
		Stringer("interest", interest).
		Msg("interest calculated")

	return interest
}
