package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shopdesk/shopdesk/cmd/shopdesk/cli"
	"github.com/shopdesk/shopdesk/internal/api"
	"github.com/shopdesk/shopdesk/internal/app"
	"github.com/shopdesk/shopdesk/internal/shared"
)

func main() {
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	session := shared.NewSession()
	tokens := shared.NewTokenStore(cfg.TokenPath)
	if token, err := tokens.Load(); err != nil {
		logger.Warn("load stored token", slog.Any("error", err))
	} else if token != "" {
		session.Start(token)
	}

	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, session, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := &cli.App{
		Log:     logger,
		Config:  cfg,
		Client:  client,
		Session: session,
		Tokens:  tokens,
		Out:     os.Stdout,
	}
	if err := application.Run(ctx, os.Args[1:]); err != nil {
		if shared.IsValidation(err) {
			fmt.Fprintln(os.Stderr, "rejected:", err)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
