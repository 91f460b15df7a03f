// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/go-petr/gic-bank/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	Ensure(ctx context.Context, id string) domain.Account
	Get(ctx context.Context, id string) (domain.Account, error)
	List(ctx context.Context) []domain.Account
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Ensure returns the account for the given id, opening it on first reference.
func (s *Service) Ensure(ctx context.Context, id string) domain.Account {
	return s.repo.Ensure(ctx, id)
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}

// List returns all opened accounts.
func (s *Service) List(ctx context.Context) []domain.Account {
	return s.repo.List(ctx)
}
