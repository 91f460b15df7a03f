package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/gic-bank/internal/accountrepo"
	"github.com/go-petr/gic-bank/internal/accountservice"
	"github.com/go-petr/gic-bank/internal/console"
	"github.com/go-petr/gic-bank/internal/interestservice"
	"github.com/go-petr/gic-bank/internal/middleware"
	"github.com/go-petr/gic-bank/internal/rulerepo"
	"github.com/go-petr/gic-bank/internal/ruleservice"
	"github.com/go-petr/gic-bank/internal/statementservice"
	"github.com/go-petr/gic-bank/internal/transactionrepo"
	"github.com/go-petr/gic-bank/internal/transactionservice"
	"github.com/go-petr/gic-bank/pkg/configpkg"
)

type consoleCmd struct{}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "run the interactive teller menu" }
func (*consoleCmd) Usage() string {
	return `gicbank console

  Reads transactions, interest rules and statement requests from standard input.
`
}

func (*consoleCmd) SetFlags(*flag.FlagSet) {}

func (*consoleCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	config, err := configpkg.Load(*configPath)
	if err != nil {
		log.Error().Err(err).Msg("cannot load config")
		return subcommands.ExitFailure
	}

	// Standard output belongs to the menu.
	logger := middleware.CreateLogger(config).Output(os.Stderr).Level(zerolog.WarnLevel)
	ctx = logger.WithContext(ctx)

	accountService := accountservice.New(accountrepo.NewRepoMem())
	transactionService := transactionservice.New(transactionrepo.NewRepoMem(), accountService, config.AutoCreateAccount)
	ruleService := ruleservice.New(rulerepo.NewRepoMem())
	interestService := interestservice.New(transactionService, ruleService)
	statementService := statementservice.New(transactionService, accountService, interestService)

	c := console.New(os.Stdin, os.Stdout, transactionService, ruleService, statementService)

	if err := c.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("console stopped")
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
