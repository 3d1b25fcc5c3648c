package main

import (
	"context"
	"fmt"
	"io"

	"order_core/internal/adapter/persistence"
	"order_core/internal/infrastructure/config"
	"order_core/internal/infrastructure/logging"
	"order_core/internal/usecase"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

const (
	exitClean  = 0
	exitError  = 1
	exitIssues = 2
)

// errIssuesFound is returned by check when the data is not consistent.
var errIssuesFound = errors.New("consistency issues found")

// opener builds the consistency use case against the configured store.
type opener func(ctx context.Context) (usecase.IConsistencyUseCase, error)

func newRootCmd(open opener, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "consistency",
		Short:         "Scan committed order data for invariant violations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.AddCommand(newCheckCmd(open))
	return cmd
}

func execute(args []string, stdout, stderr io.Writer, open opener) int {
	root := newRootCmd(open, stdout)
	root.SetArgs(args)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return exitClean
	case errors.Is(err, errIssuesFound):
		return exitIssues
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
}

func openFromEnv(ctx context.Context) (usecase.IConsistencyUseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	stores, err := persistence.Open(ctx, cfg, logging.Component(logger, "store", "repository"))
	if err != nil {
		return nil, err
	}
	return usecase.NewConsistencyUseCase(stores.Reader, stores.Orders, stores.Products, logging.Component(logger, "consistency", "usecase")), nil
}
