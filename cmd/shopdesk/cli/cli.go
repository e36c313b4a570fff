// Package cli implements the shopdesk subcommands, one per page of the
// shop administration client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopdesk/shopdesk/internal/api"
	"github.com/shopdesk/shopdesk/internal/app"
	"github.com/shopdesk/shopdesk/internal/shared"
)

// App carries the shared collaborators into every command.
type App struct {
	Log     *slog.Logger
	Config  *app.Config
	Client  *api.Client
	Session *shared.Session
	Tokens  *shared.TokenStore
	Out     io.Writer
}

// Run dispatches to the named command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("command required")
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "dashboard":
		return a.runDashboard(ctx)
	case "sales":
		return a.runSales(ctx, rest)
	case "debtors":
		return a.runDebtors(ctx, rest)
	case "products":
		return a.runProducts(ctx, rest)
	case "replenish":
		return a.runReplenish(ctx, rest)
	case "reports":
		return a.runReports(ctx, rest)
	case "login", "register", "forgot-password", "logout", "whoami":
		return a.runAuth(ctx, cmd, rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.Out, `shopdesk - shop administration client

Usage:
  shopdesk dashboard
  shopdesk sales {preview|record} -product ID -qty N [-customer ID -credit AMT]
  shopdesk debtors {list|pay|borrow|history|credit-sale} [flags]
  shopdesk products {list|add} [flags]
  shopdesk replenish {list|add} [flags]
  shopdesk reports {show|export} [flags]
  shopdesk login -email ADDR -password PW
  shopdesk register -name NAME -email ADDR -password PW
  shopdesk forgot-password -email ADDR
  shopdesk logout
  shopdesk whoami
`)
}
