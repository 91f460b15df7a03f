// Package transactionrepo manages repository layer of ledger transactions.
package transactionrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
)

// RepoMem is an append-only in-memory transaction store.
type RepoMem struct {
	mu    sync.RWMutex
	items []domain.Transaction
	// highest sequence stamped in an ID, per date
	seq map[datepkg.Date]int
}

// NewRepoMem returns an empty transaction RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		seq: make(map[datepkg.Date]int),
	}
}

// Append stores the transaction and returns it.
func (r *RepoMem) Append(ctx context.Context, tx domain.Transaction) domain.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tx.ID != "" {
		date, seq, err := domain.ParseTransactionID(tx.ID)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("transaction stored without sequence")
		} else if seq > r.seq[date] {
			r.seq[date] = seq
		}
	}

	r.items = append(r.items, tx)

	return tx
}

// LastSequence returns the highest sequence among IDs stamped with date, 0 if none.
func (r *RepoMem) LastSequence(ctx context.Context, date datepkg.Date) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.seq[date]
}

// List returns all transactions in insertion order.
func (r *RepoMem) List(ctx context.Context) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Transaction, len(r.items))
	copy(items, r.items)

	return items
}

// ListByAccount returns the account's transactions in insertion order.
func (r *RepoMem) ListByAccount(ctx context.Context, accountID string) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.Transaction{}

	for _, tx := range r.items {
		if tx.AccountID == accountID {
			items = append(items, tx)
		}
	}

	return items
}

// ListInMonth returns the account's transactions dated within month, ordered
// by date, interest after other types on the same date, insertion order otherwise.
func (r *RepoMem) ListInMonth(ctx context.Context, accountID string, month datepkg.Month) []domain.Transaction {
	return r.inMonth(month, byAccount(accountID))
}

// ListAllInMonth is ListInMonth over every account.
func (r *RepoMem) ListAllInMonth(ctx context.Context, month datepkg.Month) []domain.Transaction {
	return r.inMonth(month, anyAccount)
}

// Balance sums the account's transactions dated on or before asOf.
func (r *RepoMem) Balance(ctx context.Context, accountID string, asOf datepkg.Date) decimal.Decimal {
	return r.balance(asOf, byAccount(accountID))
}

// LedgerBalance sums the transactions of every account dated on or before asOf.
func (r *RepoMem) LedgerBalance(ctx context.Context, asOf datepkg.Date) decimal.Decimal {
	return r.balance(asOf, anyAccount)
}

func (r *RepoMem) inMonth(month datepkg.Month, match func(domain.Transaction) bool) []domain.Transaction {
	r.mu.RLock()
	items := []domain.Transaction{}

	for _, tx := range r.items {
		if match(tx) && month.Contains(tx.Date) {
			items = append(items, tx)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		if c := items[i].Date.Compare(items[j].Date); c != 0 {
			return c < 0
		}

		return items[i].Type != domain.Interest && items[j].Type == domain.Interest
	})

	return items
}

func (r *RepoMem) balance(asOf datepkg.Date, match func(domain.Transaction) bool) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	balance := decimal.Zero

	for _, tx := range r.items {
		if match(tx) && !tx.Date.After(asOf) {
			balance = balance.Add(tx.Signed())
		}
	}

	return balance
}

// HasInterest reports whether interest was already posted for the account and month.
func (r *RepoMem) HasInterest(ctx context.Context, accountID string, month datepkg.Month) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tx := range r.items {
		if tx.Type == domain.Interest && tx.AccountID == accountID && month.Contains(tx.Date) {
			return true
		}
	}

	return false
}

func byAccount(accountID string) func(domain.Transaction) bool {
	return func(tx domain.Transaction) bool { return tx.AccountID == accountID }
}

func anyAccount(domain.Transaction) bool { return true }
