// Package rulerepo manages repository layer of interest rules.
package rulerepo

import (
	"context"
	"sort"
	"sync"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
)

// RepoMem keeps interest rules sorted by effective date, one per date.
type RepoMem struct {
	mu    sync.RWMutex
	rules []domain.InterestRule
}

// NewRepoMem returns an empty rule RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{}
}

// search returns the index of the first rule dated after date.
func (r *RepoMem) search(date datepkg.Date) int {
	return sort.Search(len(r.rules), func(i int) bool {
		return r.rules[i].Date.After(date)
	})
}

// Upsert stores the rule, replacing any rule with the same date. It reports
// whether a rule was replaced.
func (r *RepoMem) Upsert(ctx context.Context, rule domain.InterestRule) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.search(rule.Date)
	if i > 0 && r.rules[i-1].Date == rule.Date {
		r.rules[i-1] = rule
		return true
	}

	r.rules = append(r.rules, domain.InterestRule{})
	copy(r.rules[i+1:], r.rules[i:])
	r.rules[i] = rule

	return false
}

// List returns all rules in ascending date order.
func (r *RepoMem) List(ctx context.Context) []domain.InterestRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.InterestRule, len(r.rules))
	copy(items, r.rules)

	return items
}

// Floor returns the latest rule dated on or before date.
func (r *RepoMem) Floor(ctx context.Context, date datepkg.Date) (domain.InterestRule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.search(date)
	if i == 0 {
		return domain.InterestRule{}, false
	}

	return r.rules[i-1], true
}
