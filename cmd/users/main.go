package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/useraccounts/internal/accounts"
	"github.com/dmitrijs2005/useraccounts/internal/cli"
	"github.com/dmitrijs2005/useraccounts/internal/config"
	"github.com/dmitrijs2005/useraccounts/internal/cryptox"
	"github.com/dmitrijs2005/useraccounts/internal/logging"
	"github.com/dmitrijs2005/useraccounts/internal/storage"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		return err
	}

	st, err := storage.Open(ctx, cfg.StorageOptions(), logger)
	if err != nil {
		logger.Error(ctx, "failed to open storage", "error", err)
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error(ctx, "failed to close storage", "error", err)
		}
	}()

	svc := accounts.NewService(st.Users(), cryptox.NewBcryptHasher())
	cli.NewApp(svc, logger, os.Stdin, os.Stdout).Run(ctx)
	return nil
}
