// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/gic-bank/internal/domain"
)

// RepoMem keeps accounts in memory, keyed by account ID.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewRepoMem returns an empty account RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[string]domain.Account),
	}
}

// Ensure returns the account with the given id, creating it first if needed.
func (r *RepoMem) Ensure(ctx context.Context, id string) domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.accounts[id]; ok {
		return a
	}

	a := domain.Account{
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}
	r.accounts[id] = a

	zerolog.Ctx(ctx).Debug().Str("account", id).Msg("account opened")

	return a
}

// Get returns the account with the given id.
func (r *RepoMem) Get(ctx context.Context, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return a, domain.ErrAccountNotFound
	}

	return a, nil
}

// List returns all accounts ordered by id.
func (r *RepoMem) List(ctx context.Context) []domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		items = append(items, a)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items
}
