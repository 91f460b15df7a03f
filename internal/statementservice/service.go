// Package statementservice builds monthly account statements.
package statementservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
)

// Ledger provides the transaction access needed by statements.
type Ledger interface {
	AccountBalanceAsOf(ctx context.Context, accountID string, date datepkg.Date) decimal.Decimal
	AccountTransactionsInMonth(ctx context.Context, accountID string, month datepkg.Month) []domain.Transaction
	PostInterestOnce(ctx context.Context, accountID string, month datepkg.Month,
		calc func(context.Context) decimal.Decimal) (domain.Transaction, bool, error)
}

// AccountService checks that the account exists.
type AccountService interface {
	Get(ctx context.Context, id string) (domain.Account, error)
}

// InterestService computes interest for an account month.
type InterestService interface {
	Calculate(ctx context.Context, accountID string, month datepkg.Month) decimal.Decimal
}

// Service facilitates statement logic.
type Service struct {
	ledger          Ledger
	accountService  AccountService
	interestService InterestService
	today           func() datepkg.Date
}

// New returns statement service.
func New(l Ledger, as AccountService, is InterestService) *Service {
	return &Service{
		ledger:          l,
		accountService:  as,
		interestService: is,
		today:           datepkg.Today,
	}
}

// Print returns the account statement for month. Interest for an ended month
// is posted on its last day the first time a statement is printed; later
// prints report the interest already posted. A month still running gets a
// provisional interest line that is not posted.
func (s *Service) Print(ctx context.Context, accountID string, month datepkg.Month) (domain.Statement, error) {
	l := zerolog.Ctx(ctx)

	if _, err := s.accountService.Get(ctx, accountID); err != nil {
		l.Info().Err(err).Str("account", accountID).Send()
		return domain.Statement{}, err
	}

	statement := domain.Statement{
		AccountID:   accountID,
		Month:       month,
		Interest:    decimal.Zero,
		Provisional: month.Last().After(s.today()),
		Lines:       []domain.StatementLine{},
	}

	calc := func(ctx context.Context) decimal.Decimal {
		return s.interestService.Calculate(ctx, accountID, month)
	}

	var estimate decimal.Decimal
	if statement.Provisional {
		estimate = calc(ctx)
	} else if _, _, err := s.ledger.PostInterestOnce(ctx, accountID, month, calc); err != nil {
		l.Error().Err(err).Str("account", accountID).Send()
		return domain.Statement{}, err
	}

	balance := s.ledger.AccountBalanceAsOf(ctx, accountID, month.First().Add(-1))

	for _, tx := range s.ledger.AccountTransactionsInMonth(ctx, accountID, month) {
		balance = balance.Add(tx.Signed())

		if tx.Type == domain.Interest {
			statement.Interest = statement.Interest.Add(tx.Amount)
		}

		statement.Lines = append(statement.Lines, domain.StatementLine{
			Transaction: tx,
			Balance:     balance,
		})
	}

	if estimate.IsPositive() {
		statement.Interest = estimate
		statement.Lines = append(statement.Lines, domain.StatementLine{
			Transaction: domain.Transaction{
				Date:      month.Last(),
				AccountID: accountID,
				Type:      domain.Interest,
				Amount:    estimate,
			},
			Balance: balance.Add(estimate),
		})
	}

	return statement, nil
}
