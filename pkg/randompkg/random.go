// Package randompkg provides functionality for generating random application items in tests.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/pkg/datepkg"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max inclusive.
func IntBetween(min, max int) int {
	return min + int(Intn(max-min+1))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// AccountID generates a random account identifier such as AC042.
func AccountID() string {
	return fmt.Sprintf("AC%03d", IntBetween(1, 999))
}

// RuleID generates a random interest rule identifier such as RULE07.
func RuleID() string {
	return fmt.Sprintf("RULE%02d", IntBetween(1, 99))
}

// MoneyAmountBetween generates a random amount of money between min and max with two decimals.
func MoneyAmountBetween(min, max int64) decimal.Decimal {
	cents := min*100 + Intn(int((max-min)*100)+1)
	return decimal.New(cents, -2)
}

// Rate generates a random annual rate in percent within (0, 100] with two decimals.
func Rate() decimal.Decimal {
	return decimal.New(int64(IntBetween(1, 10_000)), -2)
}

// DateIn generates a random date within the given month.
func DateIn(m datepkg.Month) datepkg.Date {
	return m.First().Add(IntBetween(0, m.Days()-1))
}
