// Package transactionservice manages business logic layer of the transaction ledger.
package transactionservice

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
	"github.com/go-petr/gic-bank/pkg/moneypkg"
)

// Repo provides data access layer interface needed by transaction service layer.
type Repo interface {
	Append(ctx context.Context, tx domain.Transaction) domain.Transaction
	LastSequence(ctx context.Context, date datepkg.Date) int
	List(ctx context.Context) []domain.Transaction
	ListByAccount(ctx context.Context, accountID string) []domain.Transaction
	ListInMonth(ctx context.Context, accountID string, month datepkg.Month) []domain.Transaction
	ListAllInMonth(ctx context.Context, month datepkg.Month) []domain.Transaction
	Balance(ctx context.Context, accountID string, asOf datepkg.Date) decimal.Decimal
	LedgerBalance(ctx context.Context, asOf datepkg.Date) decimal.Decimal
	HasInterest(ctx context.Context, accountID string, month datepkg.Month) bool
}

// AccountService resolves the account a transaction is recorded against.
type AccountService interface {
	Ensure(ctx context.Context, id string) domain.Account
	Get(ctx context.Context, id string) (domain.Account, error)
}

// Service facilitates the ledger logic.
//
// Recording and interest posting are serialized: ID assignment, the funds
// check and the posted interest check all read the store before appending to it.
type Service struct {
	mu                sync.Mutex
	repo              Repo
	accountService    AccountService
	autoCreateAccount bool
}

// New returns the ledger service. With autoCreateAccount an account is opened
// by its first transaction, otherwise it must already exist.
func New(tr Repo, as AccountService, autoCreateAccount bool) *Service {
	return &Service{
		repo:              tr,
		accountService:    as,
		autoCreateAccount: autoCreateAccount,
	}
}

func (s *Service) validRequest(ctx context.Context, arg domain.CreateTransactionParams) error {
	l := zerolog.Ctx(ctx)

	if strings.TrimSpace(arg.AccountID) == "" {
		l.Info().Str("account", arg.AccountID).Msg("rejected account id")
		return domain.ErrInvalidAccountID
	}

	if err := moneypkg.CheckAmount(arg.Amount); err != nil {
		l.Info().Err(err).Str("amount", arg.Amount.String()).Send()
		return domain.ErrInvalidAmount
	}

	if arg.Type != domain.Deposit && arg.Type != domain.Withdrawal {
		l.Info().Str("type", string(arg.Type)).Msg("rejected transaction type")
		return domain.ErrInvalidTransactionType
	}

	if arg.Date.After(datepkg.Today()) {
		l.Info().Stringer("date", arg.Date).Msg("rejected future date")
		return domain.ErrFutureDate
	}

	return nil
}

func (s *Service) checkAccount(ctx context.Context, id string) error {
	if s.autoCreateAccount {
		return nil
	}

	if _, err := s.accountService.Get(ctx, id); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("account", id).Send()
		return err
	}

	return nil
}

// Record validates the request and appends a deposit or withdrawal to the ledger.
func (s *Service) Record(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	if err := s.validRequest(ctx, arg); err != nil {
		return domain.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAccount(ctx, arg.AccountID); err != nil {
		return domain.Transaction{}, err
	}

	if arg.Type == domain.Withdrawal {
		balance := s.repo.Balance(ctx, arg.AccountID, arg.Date)
		if balance.LessThan(arg.Amount) {
			zerolog.Ctx(ctx).Info().
				Str("account", arg.AccountID).
				Stringer("balance", balance).
				Stringer("amount", arg.Amount).
				Msg("withdrawal exceeds balance")

			return domain.Transaction{}, domain.ErrInsufficientFunds
		}
	}

	seq := s.repo.LastSequence(ctx, arg.Date) + 1
	if seq > domain.MaxSequence {
		return domain.Transaction{}, domain.ErrSequenceExhausted
	}

	// A rejected transaction never opens an account.
	if s.autoCreateAccount {
		s.accountService.Ensure(ctx, arg.AccountID)
	}

	tx := s.repo.Append(ctx, domain.Transaction{
		ID:        domain.NewTransactionID(arg.Date, seq),
		Date:      arg.Date,
		AccountID: arg.AccountID,
		Type:      arg.Type,
		Amount:    arg.Amount,
	})

	zerolog.Ctx(ctx).Debug().Str("id", tx.ID).Str("account", tx.AccountID).Msg("transaction recorded")

	return tx, nil
}

// PostInterestOnce posts the interest returned by calc on the last day of
// month, unless interest is already posted for the account and month. It
// reports whether a transaction was appended. Nothing is posted when calc
// returns zero.
//
// calc runs with the ledger locked against writers, so it must only read.
// Posted interest carries no ID and does not use up a daily sequence number.
func (s *Service) PostInterestOnce(ctx context.Context, accountID string, month datepkg.Month,
	calc func(context.Context) decimal.Decimal,
) (domain.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo.HasInterest(ctx, accountID, month) {
		return domain.Transaction{}, false, nil
	}

	amount := calc(ctx)
	if amount.IsZero() {
		return domain.Transaction{}, false, nil
	}

	if !amount.IsPositive() {
		zerolog.Ctx(ctx).Warn().Stringer("amount", amount).Str("account", accountID).Msg("negative interest")
		return domain.Transaction{}, false, domain.ErrInvalidAmount
	}

	tx := s.repo.Append(ctx, domain.Transaction{
		Date:      month.Last(),
		AccountID: accountID,
		Type:      domain.Interest,
		Amount:    amount,
	})

	zerolog.Ctx(ctx).Debug().Str("account", accountID).Stringer("month", month).Msg("interest posted")

	return tx, true, nil
}

// HasInterest reports whether interest was already posted for the account and month.
func (s *Service) HasInterest(ctx context.Context, accountID string, month datepkg.Month) bool {
	return s.repo.HasInterest(ctx, accountID, month)
}

// BalanceAsOf returns the balance of the whole ledger on date.
func (s *Service) BalanceAsOf(ctx context.Context, date datepkg.Date) decimal.Decimal {
	return s.repo.LedgerBalance(ctx, date)
}

// AccountBalanceAsOf returns the account balance on date.
func (s *Service) AccountBalanceAsOf(ctx context.Context, accountID string, date datepkg.Date) decimal.Decimal {
	return s.repo.Balance(ctx, accountID, date)
}

// TransactionsInMonth returns every transaction in month, interest last within a day.
func (s *Service) TransactionsInMonth(ctx context.Context, month datepkg.Month) []domain.Transaction {
	return s.repo.ListAllInMonth(ctx, month)
}

// AccountTransactionsInMonth is TransactionsInMonth restricted to one account.
func (s *Service) AccountTransactionsInMonth(ctx context.Context, accountID string, month datepkg.Month) []domain.Transaction {
	return s.repo.ListInMonth(ctx, accountID, month)
}

// ListAll returns the ledger in insertion order.
func (s *Service) ListAll(ctx context.Context) []domain.Transaction {
	return s.repo.List(ctx)
}

// ListByAccount returns the account's transactions in insertion order.
func (s *Service) ListByAccount(ctx context.Context, accountID string) []domain.Transaction {
	return s.repo.ListByAccount(ctx, accountID)
}
