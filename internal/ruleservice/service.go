// Package ruleservice manages business logic layer of the interest rule timeline.
package ruleservice

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
)

// Repo provides data access layer interface needed by rule service layer.
type Repo interface {
	Upsert(ctx context.Context, rule domain.InterestRule) bool
	List(ctx context.Context) []domain.InterestRule
	Floor(ctx context.Context, date datepkg.Date) (domain.InterestRule, bool)
}

var maxRate = decimal.NewFromInt(100)

// Service facilitates interest rule logic.
type Service struct {
	mu   sync.Mutex
	repo Repo
}

// New returns rule service struct to manage the interest rule timeline.
func New(rr Repo) *Service {
	return &Service{repo: rr}
}

func validRequest(ctx context.Context, rule domain.InterestRule) error {
	l := zerolog.Ctx(ctx)

	if !rule.Rate.IsPositive() || rule.Rate.GreaterThan(maxRate) {
		l.Info().Stringer("rate", rule.Rate).Msg("rejected interest rate")
		return domain.ErrInvalidRate
	}

	if strings.TrimSpace(rule.RuleID) == "" {
		l.Info().Msg("rejected empty rule id")
		return domain.ErrInvalidRuleID
	}

	if rule.Date.After(datepkg.Today()) {
		l.Info().Stringer("date", rule.Date).Msg("rejected future date")
		return domain.ErrFutureDate
	}

	return nil
}

// Upsert validates and stores the rule. A rule already defined for the same
// date is replaced.
func (s *Service) Upsert(ctx context.Context, date datepkg.Date, ruleID string, rate decimal.Decimal) (domain.InterestRule, error) {
	rule := domain.InterestRule{
		Date:   date,
		RuleID: ruleID,
		Rate:   rate,
	}

	if err := validRequest(ctx, rule); err != nil {
		return domain.InterestRule{}, err
	}

	s.mu.Lock()
	replaced := s.repo.Upsert(ctx, rule)
	s.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Str("rule_id", ruleID).
		Stringer("date", date).
		Bool("replaced", replaced).
		Msg("interest rule stored")

	return rule, nil
}

// List returns the rules sorted by effective date.
func (s *Service) List(ctx context.Context) []domain.InterestRule {
	return s.repo.List(ctx)
}

// EffectiveOn returns the rule in force on date, if any.
func (s *Service) EffectiveOn(ctx context.Context, date datepkg.Date) (domain.InterestRule, bool) {
	return s.repo.Floor(ctx, date)
}
