package interestservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/gic-bank/internal/accountrepo"
	"github.com/go-petr/gic-bank/internal/accountservice"
	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/internal/rulerepo"
	"github.com/go-petr/gic-bank/internal/ruleservice"
	"github.com/go-petr/gic-bank/internal/transactionrepo"
	"github.com/go-petr/gic-bank/internal/transactionservice"
	"github.com/go-petr/gic-bank/pkg/datepkg"
)

type fixture struct {
	ledger *transactionservice.Service
	rules  *ruleservice.Service
	engine *Service
}

func newFixture() fixture {
	ledger := transactionservice.New(
		transactionrepo.NewRepoMem(),
		accountservice.New(accountrepo.NewRepoMem()),
		true,
	)
	rules := ruleservice.New(rulerepo.NewRepoMem())

	return fixture{
		ledger: ledger,
		rules:  rules,
		engine: New(ledger, rules),
	}
}

type txInput struct {
	date    string
	account string
	typ     domain.TransactionType
	amount  string
}

type ruleInput struct {
	date string
	id   string
	rate string
}

func (f fixture) load(t *testing.T, txs []txInput, rules []ruleInput) {
	t.Helper()

	ctx := context.Background()

	for _, in := range txs {
		_, err := f.ledger.Record(ctx, domain.CreateTransactionParams{
			Date:      datepkg.MustParse(in.date),
			AccountID: in.account,
			Type:      in.typ,
			Amount:    decimal.RequireFromString(in.amount),
		})
		require.NoError(t, err)
	}

	for _, in := range rules {
		_, err := f.rules.Upsert(ctx, datepkg.MustParse(in.date), in.id, decimal.RequireFromString(in.rate))
		require.NoError(t, err)
	}
}

func TestCalculate(t *testing.T) {
	june := datepkg.NewMonth(2023, 6)
	deposit := []txInput{{date: "20230501", account: "AC001", typ: domain.Deposit, amount: "100"}}

	testCases := []struct {
		name    string
		txs     []txInput
		rules   []ruleInput
		account string
		want    string
	}{
		{
			name:    "SingleRule",
			txs:     deposit,
			rules:   []ruleInput{{date: "20230101", id: "RULE01", rate: "1.2"}},
			account: "AC001",
			want:    "0.10",
		},
		{
			// days 1-14 at 1.2%, days 15-30 at 1.8%: (1680 + 2880) / 36500
			name: "RuleChangeMidMonth",
			txs:  deposit,
			rules: []ruleInput{
				{date: "20230101", id: "RULE01", rate: "1.2"},
				{date: "20230615", id: "RULE02", rate: "1.8"},
			},
			account: "AC001",
			want:    "0.12",
		},
		{
			name:    "NoRules",
			txs:     deposit,
			account: "AC001",
			want:    "0.00",
		},
		{
			name:    "OnlyLaterRule",
			txs:     deposit,
			rules:   []ruleInput{{date: "20230701", id: "RULE01", rate: "50"}},
			account: "AC001",
			want:    "0.00",
		},
		{
			// 100 * 36.5% for the last day only
			name:    "RuleOnLastDay",
			txs:     deposit,
			rules:   []ruleInput{{date: "20230630", id: "RULE01", rate: "36.5"}},
			account: "AC001",
			want:    "0.10",
		},
		{
			// the deposit counts on its own day: 3650 * 10% / 365
			name:    "SameDayDeposit",
			txs:     []txInput{{date: "20230630", account: "AC001", typ: domain.Deposit, amount: "3650"}},
			rules:   []ruleInput{{date: "20230101", id: "RULE01", rate: "10"}},
			account: "AC001",
			want:    "1.00",
		},
		{
			// (250*1.90*14 + 250*2.20*11 + 130*2.20*5) / 36500 = 0.387
			name: "StatementExample",
			txs: []txInput{
				{date: "20230505", account: "AC001", typ: domain.Deposit, amount: "100.00"},
				{date: "20230601", account: "AC001", typ: domain.Deposit, amount: "150.00"},
				{date: "20230626", account: "AC001", typ: domain.Withdrawal, amount: "20.00"},
				{date: "20230626", account: "AC001", typ: domain.Withdrawal, amount: "100.00"},
				{date: "20230601", account: "AC002", typ: domain.Deposit, amount: "99999.00"},
			},
			rules: []ruleInput{
				{date: "20230101", id: "RULE01", rate: "1.95"},
				{date: "20230520", id: "RULE02", rate: "1.90"},
				{date: "20230615", id: "RULE03", rate: "2.20"},
			},
			account: "AC001",
			want:    "0.39",
		},
		{
			name: "UnknownAccount",
			txs:  deposit,
			rules: []ruleInput{
				{date: "20230101", id: "RULE01", rate: "1.2"},
			},
			account: "AC404",
			want:    "0.00",
		},
		{
			name: "EmptyAccountAccruesNothing",
			txs: []txInput{
				{date: "20230501", account: "AC001", typ: domain.Deposit, amount: "100"},
				{date: "20230501", account: "AC002", typ: domain.Deposit, amount: "265"},
			},
			rules:   []ruleInput{{date: "20230101", id: "RULE01", rate: "1.2"}},
			account: "",
			want:    "0.00",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.load(t, tc.txs, tc.rules)

			got := f.engine.Calculate(context.Background(), tc.account, june)
			require.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestCalculateIncludesPostedInterest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.load(t,
		[]txInput{{date: "20230501", account: "AC001", typ: domain.Deposit, amount: "3600"}},
		[]ruleInput{{date: "20230101", id: "RULE01", rate: "10"}},
	)

	// 3650 * 10% * 30 / 365 once May interest of 50 is in the balance
	_, posted, err := f.ledger.PostInterestOnce(ctx, "AC001", datepkg.NewMonth(2023, 5),
		func(context.Context) decimal.Decimal { return decimal.NewFromInt(50) })
	require.NoError(t, err)
	require.True(t, posted)

	got := f.engine.Calculate(ctx, "AC001", datepkg.NewMonth(2023, 6))
	require.Equal(t, "30.00", got.StringFixed(2))
}

func TestCalculateIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	june := datepkg.NewMonth(2023, 6)

	f.load(t,
		[]txInput{
			{date: "20230501", account: "AC001", typ: domain.Deposit, amount: "1234.56"},
			{date: "20230610", account: "AC001", typ: domain.Withdrawal, amount: "34.56"},
		},
		[]ruleInput{
			{date: "20230101", id: "RULE01", rate: "3.3"},
			{date: "20230612", id: "RULE02", rate: "4.1"},
		},
	)

	first := f.engine.Calculate(ctx, "AC001", june)
	second := f.engine.Calculate(ctx, "AC001", june)
	require.True(t, first.Equal(second))
	require.True(t, first.IsPositive())
}
