package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/gic-bank/internal/accountrepo"
	"github.com/go-petr/gic-bank/internal/accountservice"
	"github.com/go-petr/gic-bank/internal/interestservice"
	"github.com/go-petr/gic-bank/internal/rulerepo"
	"github.com/go-petr/gic-bank/internal/ruleservice"
	"github.com/go-petr/gic-bank/internal/statementservice"
	"github.com/go-petr/gic-bank/internal/transactionrepo"
	"github.com/go-petr/gic-bank/internal/transactionservice"
)

func run(t *testing.T, lines ...string) string {
	t.Helper()

	accounts := accountservice.New(accountrepo.NewRepoMem())
	ledger := transactionservice.New(transactionrepo.NewRepoMem(), accounts, true)
	rules := ruleservice.New(rulerepo.NewRepoMem())
	statements := statementservice.New(ledger, accounts, interestservice.New(ledger, rules))

	var out bytes.Buffer

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := New(in, &out, ledger, rules, statements)

	require.NoError(t, c.Run(context.Background()))

	return out.String()
}

func TestTransactions(t *testing.T) {
	out := run(t,
		"t",
		"20230626 AC001 D 100.00",
		"T",
		"20230626 AC001 W 20",
		"Q",
	)

	require.Contains(t, out, "Welcome to AwesomeGIC Bank! What would you like to do?")
	require.Contains(t, out, "Account: AC001\n| Date     | Txn Id      | Type | Amount |\n")
	require.Contains(t, out, "| 20230626 | 20230626-01 | D    | 100.00 |\n| 20230626 | 20230626-02 | W    |  20.00 |\n")
	require.Equal(t, 2, strings.Count(out, anythingElse))
	require.True(t, strings.HasSuffix(out, "Have a nice day!\n"))
}

func TestRejectedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input []string
		want  string
	}{
		{
			name:  "MissingField",
			input: []string{"T", "20230626 AC001 D", "", "Q"},
			want:  MsgInsufficientDetails,
		},
		{
			name:  "BadDate",
			input: []string{"T", "20231326 AC001 D 10", "", "Q"},
			want:  MsgInvalidDate,
		},
		{
			name:  "FutureDate",
			input: []string{"T", "29991231 AC001 D 10", "", "Q"},
			want:  MsgFutureDate,
		},
		{
			name:  "BadType",
			input: []string{"T", "20230626 AC001 X 10", "", "Q"},
			want:  MsgInvalidType,
		},
		{
			name:  "ZeroAmount",
			input: []string{"T", "20230626 AC001 D 0", "", "Q"},
			want:  MsgInvalidAmount,
		},
		{
			name:  "TooManyDecimals",
			input: []string{"T", "20230626 AC001 D 1.234", "", "Q"},
			want:  MsgAmountFormat,
		},
		{
			name:  "NegativeAmount",
			input: []string{"T", "20230626 AC001 D -5", "", "Q"},
			want:  MsgInvalidAmount,
		},
		{
			name:  "ExponentAmount",
			input: []string{"T", "20230626 AC001 D 1e2", "", "Q"},
			want:  MsgNotANumber,
		},
		{
			name:  "FirstWithdrawal",
			input: []string{"T", "20230626 AC001 W 10", "", "Q"},
			want:  MsgInsufficientFunds,
		},
		{
			name:  "RateOutOfRange",
			input: []string{"I", "20230615 RULE03 100.5", "", "Q"},
			want:  MsgInvalidRate,
		},
		{
			name:  "MalformedRate",
			input: []string{"I", "20230615 RULE03 abc", "", "Q"},
			want:  MsgInvalidRate,
		},
		{
			name:  "ExponentRate",
			input: []string{"I", "20230615 RULE03 1e1", "", "Q"},
			want:  MsgInvalidRate,
		},
		{
			name:  "BadMonth",
			input: []string{"P", "AC001 2023-06", "", "Q"},
			want:  MsgInvalidMonth,
		},
		{
			name:  "UnknownAccount",
			input: []string{"P", "AC404 202306", "", "Q"},
			want:  "Account AC404 not found",
		},
		{
			name:  "UnknownOption",
			input: []string{"X", "Q"},
			want:  MsgInvalidOption,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			out := run(t, tc.input...)

			require.Contains(t, out, tc.want+"\n")
			require.NotContains(t, out, anythingElse)
		})
	}
}

func TestInterestRules(t *testing.T) {
	out := run(t,
		"I",
		"20230101 RULE01 1.95",
		"I",
		"20230520 RULE02 1.90",
		"I",
		"20230615 RULE03 2.00",
		"I",
		"20230615 RULE03 2.20",
		"Q",
	)

	want := "Interest rules:\n" +
		"| Date     | RuleId | Rate (%) |\n" +
		"| 20230101 | RULE01 |     1.95 |\n" +
		"| 20230520 | RULE02 |     1.90 |\n" +
		"| 20230615 | RULE03 |     2.20 |\n"

	require.Contains(t, out, want)
	require.Equal(t, 4, strings.Count(out, anythingElse))
}

func TestPrintStatement(t *testing.T) {
	out := run(t,
		"T", "20230505 AC001 D 100.00",
		"T", "20230601 AC001 D 150.00",
		"T", "20230626 AC001 W 20.00",
		"T", "20230626 AC001 W 100.00",
		"I", "20230101 RULE01 1.95",
		"I", "20230520 RULE02 1.90",
		"I", "20230615 RULE03 2.20",
		"P", "AC001 202306",
		"P", "AC001 202306",
		"Q",
	)

	want := "Account: AC001\n" +
		"| Date     | Txn Id      | Type | Amount | Balance |\n" +
		"| 20230601 | 20230601-01 | D    | 150.00 |  250.00 |\n" +
		"| 20230626 | 20230626-01 | W    |  20.00 |  230.00 |\n" +
		"| 20230626 | 20230626-02 | W    | 100.00 |  130.00 |\n" +
		"| 20230630 |             | I    |   0.39 |  130.39 |\n"

	require.Equal(t, 2, strings.Count(out, want))
}

func TestPrintRunningMonth(t *testing.T) {
	out := run(t,
		"T", "20230626 AC001 D 100.00",
		"I", "20230101 RULE01 1.95",
		"P", "AC001 299912",
		"Q",
	)

	// 100 * 1.95% * 31 / 365
	want := "Account: AC001\n" +
		"| Date     | Txn Id      | Type | Amount | Balance |\n" +
		"| 29991231 |             | I    |   0.02 |  100.02 |\n" +
		MsgProvisional + "\n"

	require.Contains(t, out, want)
}

func TestEndOfInput(t *testing.T) {
	out := run(t, "T", "20230626 AC001 D 100.00")

	require.Contains(t, out, "| 20230626 | 20230626-01 | D    | 100.00 |")
	require.NotContains(t, out, "Have a nice day!")
}
