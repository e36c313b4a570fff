package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/debtors"
	"github.com/shopdesk/shopdesk/internal/sales"
)

func (a *App) runSales(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("sales: subcommand required (preview, record)")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("sales "+sub, flag.ContinueOnError)
	productID := fs.Int64("product", 0, "product id")
	quantity := fs.Int64("qty", 0, "quantity")
	customerID := fs.Int64("customer", 0, "customer id for a credit sale")
	credit := fs.String("credit", "", "credit amount deferred as debt")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	ctrl := sales.NewController(a.Log, sales.NewAPI(a.Client), catalog.NewAPI(a.Client), debtors.NewAPI(a.Client))
	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("load sales page: %w", err)
	}

	ctrl.Form.ProductID = *productID
	ctrl.Form.Quantity = *quantity
	if *customerID > 0 {
		ctrl.Form.CustomerID = customerID
	}
	if *credit != "" {
		amount, err := parseAmount(*credit)
		if err != nil {
			return err
		}
		ctrl.Form.CreditAmount = &amount
	}

	a.printSalePreview(ctrl)

	switch sub {
	case "preview":
		return nil
	case "record":
		if err := ctrl.Submit(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "sale recorded")
		return nil
	default:
		return fmt.Errorf("sales: unknown subcommand %q", sub)
	}
}

func (a *App) printSalePreview(ctrl *sales.Controller) {
	details, ok := ctrl.Preview()
	if !ok {
		return
	}
	fmt.Fprintf(a.Out, "Revenue: %s  Cost: %s  Profit: %s  Margin: %s%%\n",
		money(details.Revenue), money(details.Cost), money(details.Profit), details.Margin)
	if ctrl.Form.CustomerID != nil {
		fmt.Fprintf(a.Out, "Remaining debt after sale: %s\n", money(ctrl.RemainingDebtPreview()))
	}
}
