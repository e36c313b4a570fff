package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/shopdesk/shopdesk/internal/auth"
)

func (a *App) runAuth(ctx context.Context, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctrl := auth.NewController(a.Log, auth.NewAPI(a.Client), a.Session, a.Tokens)

	switch cmd {
	case "login":
		if err := ctrl.Login(ctx, auth.LoginRequest{Email: *email, Password: *password}); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "logged in as %s\n", a.Session.DisplayName())
		return nil
	case "register":
		req := auth.RegisterRequest{Name: *name, Email: *email, Password: *password}
		if err := ctrl.Register(ctx, req); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "account created, logged in as %s\n", a.Session.DisplayName())
		return nil
	case "forgot-password":
		if err := ctrl.ForgotPassword(ctx, *email); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "password reset requested, check your email")
		return nil
	case "logout":
		if err := ctrl.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "logged out")
		return nil
	case "whoami":
		if !a.Session.Authenticated() {
			fmt.Fprintln(a.Out, "not logged in")
			return nil
		}
		fmt.Fprintln(a.Out, a.Session.DisplayName())
		return nil
	default:
		return fmt.Errorf("unknown auth command %q", cmd)
	}
}
