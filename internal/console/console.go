// Package console runs the interactive teller menu on a line oriented terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
	"github.com/go-petr/gic-bank/pkg/moneypkg"
)

// Ledger records transactions and lists them.
type Ledger interface {
	Record(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string) []domain.Transaction
}

// Rules defines and lists interest rules.
type Rules interface {
	Upsert(ctx context.Context, date datepkg.Date, ruleID string, rate decimal.Decimal) (domain.InterestRule, error)
	List(ctx context.Context) []domain.InterestRule
}

// Statements prints monthly statements.
type Statements interface {
	Print(ctx context.Context, accountID string, month datepkg.Month) (domain.Statement, error)
}

// Messages shown for rejected input.
const (
	MsgInsufficientDetails = "Insufficient details"
	MsgInvalidDate         = "Invalid date format. The date should be in YYYYMMdd format"
	MsgFutureDate          = "Invalid date. The date can not be in the future"
	MsgInvalidMonth        = "Invalid month format. The month should be in YYYYMM format"
	MsgInvalidAmount       = "The amount has to be greater than 0"
	MsgAmountFormat        = "Invalid format. The amount can not be more than 2 decimals"
	MsgNotANumber          = "Invalid format. The amount should be a number like 100 or 25.50"
	MsgInvalidType         = "Invalid transaction type. The type should be D or W"
	MsgInvalidRate         = "The interest rate should be greater than 0 and less than or equal to 100"
	MsgInsufficientFunds   = "Insufficient funds. The balance can not go below 0"
	MsgSequenceExhausted   = "No transaction id left for the date"
	MsgInvalidOption       = "Invalid Option, Please select a valid option"
	MsgError               = "Something went wrong, please try again"
	MsgProvisional         = "The month has not ended yet. Interest shown is an estimate and is not posted"
)

const anythingElse = "Is there anything else you'd like to do?"

// Console reads commands from in and writes prompts and tables to out.
type Console struct {
	in         *bufio.Scanner
	out        io.Writer
	ledger     Ledger
	rules      Rules
	statements Statements
}

// New returns console.
func New(in io.Reader, out io.Writer, l Ledger, r Rules, s Statements) *Console {
	return &Console{
		in:         bufio.NewScanner(in),
		out:        out,
		ledger:     l,
		rules:      r,
		statements: s,
	}
}

// Run shows the main menu until the user quits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	c.println("Welcome to AwesomeGIC Bank! What would you like to do?")

	for {
		c.menu()

		line, ok := c.read()
		if !ok {
			return c.in.Err()
		}

		var err error

		switch strings.ToUpper(line) {
		case "T":
			err = c.loop(ctx, c.transactionPrompt, c.inputTransaction)
		case "I":
			err = c.loop(ctx, c.rulePrompt, c.defineRule)
		case "P":
			err = c.loop(ctx, c.statementPrompt, c.printStatement)
		case "Q":
			c.println("Thank you for banking with AwesomeGIC Bank.")
			c.println("Have a nice day!")

			return nil
		default:
			c.println(MsgInvalidOption)
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (c *Console) menu() {
	c.println("[T] Input transactions")
	c.println("[I] Define interest rules")
	c.println("[P] Print statement")
	c.println("[Q] Quit")
}

func (c *Console) transactionPrompt() {
	c.println("Please enter transaction details in <Date> <Account> <Type> <Amount> format")
	c.println("(or enter blank to go back to main menu):")
}

func (c *Console) rulePrompt() {
	c.println("Please enter interest rules details in <Date> <RuleId> <Rate in %> format")
	c.println("(or enter blank to go back to main menu):")
}

func (c *Console) statementPrompt() {
	c.println("Please enter account and month to generate the statement <Account> <Year><Month>")
	c.println("(or enter blank to go back to main menu):")
}

// loop prompts until handle accepts a line or the user enters a blank line.
// Rejected input is reported and prompted for again.
func (c *Console) loop(ctx context.Context, prompt func(), handle func(context.Context, []string) error) error {
	for {
		prompt()

		line, ok := c.read()
		if !ok {
			if err := c.in.Err(); err != nil {
				return err
			}

			return io.EOF
		}

		if line == "" {
			return nil
		}

		err := handle(ctx, strings.Fields(line))
		if err == nil {
			c.println(anythingElse)
			return nil
		}

		zerolog.Ctx(ctx).Info().Err(err).Msg("console input rejected")
		c.println(message(err))
	}
}

func (c *Console) inputTransaction(ctx context.Context, fields []string) error {
	if len(fields) != 4 {
		return inputError(MsgInsufficientDetails)
	}

	date, err := parseDate(fields[0])
	if err != nil {
		return err
	}

	typ, err := domain.ParseTransactionType(fields[2])
	if err != nil {
		return inputError(MsgInvalidType)
	}

	amount, err := parseAmount(fields[3])
	if err != nil {
		return err
	}

	tx, err := c.ledger.Record(ctx, domain.CreateTransactionParams{
		Date:      date,
		AccountID: fields[1],
		Type:      typ,
		Amount:    amount,
	})
	if err != nil {
		return err
	}

	c.printTransactions(tx.AccountID, c.ledger.ListByAccount(ctx, tx.AccountID))

	return nil
}

func (c *Console) defineRule(ctx context.Context, fields []string) error {
	if len(fields) != 3 {
		return inputError(MsgInsufficientDetails)
	}

	date, err := parseDate(fields[0])
	if err != nil {
		return err
	}

	rate, err := moneypkg.ParseDecimal(fields[2])
	if err != nil {
		return inputError(MsgInvalidRate)
	}

	if _, err := c.rules.Upsert(ctx, date, fields[1], rate); err != nil {
		return err
	}

	c.printRules(c.rules.List(ctx))

	return nil
}

func (c *Console) printStatement(ctx context.Context, fields []string) error {
	if len(fields) != 2 {
		return inputError(MsgInsufficientDetails)
	}

	month, err := datepkg.ParseMonth(fields[1])
	if err != nil {
		return inputError(MsgInvalidMonth)
	}

	statement, err := c.statements.Print(ctx, fields[0], month)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return inputError(fmt.Sprintf("Account %s not found", fields[0]))
		}

		return err
	}

	c.printStatementLines(statement)

	return nil
}

func (c *Console) printTransactions(accountID string, txs []domain.Transaction) {
	c.printf("Account: %s\n", accountID)
	c.println("| Date     | Txn Id      | Type | Amount |")

	for _, tx := range txs {
		c.printf("| %s | %-11s | %-4s | %6s |\n", tx.Date, tx.ID, tx.Type, moneypkg.Format(tx.Amount))
	}

	c.println("")
}

func (c *Console) printRules(rules []domain.InterestRule) {
	c.println("Interest rules:")
	c.println("| Date     | RuleId | Rate (%) |")

	for _, r := range rules {
		c.printf("| %s | %-6s | %8s |\n", r.Date, r.RuleID, r.Rate.StringFixed(2))
	}

	c.println("")
}

func (c *Console) printStatementLines(s domain.Statement) {
	c.printf("Account: %s\n", s.AccountID)
	c.println("| Date     | Txn Id      | Type | Amount | Balance |")

	for _, l := range s.Lines {
		tx := l.Transaction
		c.printf("| %s | %-11s | %-4s | %6s | %7s |\n",
			tx.Date, tx.ID, tx.Type, moneypkg.Format(tx.Amount), moneypkg.Format(l.Balance))
	}

	if s.Provisional {
		c.println(MsgProvisional)
	}

	c.println("")
}

func (c *Console) read() (string, bool) {
	fmt.Fprint(c.out, "> ")

	if !c.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

type inputError string

func (e inputError) Error() string { return string(e) }

func parseDate(s string) (datepkg.Date, error) {
	date, err := datepkg.Parse(s)
	if err != nil {
		return datepkg.Date{}, inputError(MsgInvalidDate)
	}

	return date, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := moneypkg.ParseDecimal(s)
	if err != nil {
		return decimal.Decimal{}, inputError(MsgNotANumber)
	}

	if !d.IsPositive() {
		return decimal.Decimal{}, inputError(MsgInvalidAmount)
	}

	amount, err := moneypkg.ParseAmount(s)
	if err != nil {
		return decimal.Decimal{}, inputError(MsgAmountFormat)
	}

	return amount, nil
}

// message turns a rejection into the line shown to the user.
func message(err error) string {
	var ie inputError
	if errors.As(err, &ie) {
		return string(ie)
	}

	switch err {
	case domain.ErrInvalidAccountID:
		return MsgInsufficientDetails
	case domain.ErrInvalidAmount:
		return MsgInvalidAmount
	case domain.ErrInvalidTransactionType:
		return MsgInvalidType
	case domain.ErrInsufficientFunds:
		return MsgInsufficientFunds
	case domain.ErrFutureDate:
		return MsgFutureDate
	case domain.ErrSequenceExhausted:
		return MsgSequenceExhausted
	case domain.ErrInvalidRate:
		return MsgInvalidRate
	case domain.ErrInvalidRuleID:
		return MsgInsufficientDetails
	case domain.ErrAccountNotFound:
		return err.Error()
	}

	return MsgError
}
