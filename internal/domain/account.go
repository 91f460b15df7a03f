// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

// ErrAccountNotFound indicates that the account was never opened.
var ErrAccountNotFound = errors.New("account not found")

// Account identifies a customer account. Its balance is derived from the ledger.
type Account struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
