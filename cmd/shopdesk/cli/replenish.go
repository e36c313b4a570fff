package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/replenish"
)

func (a *App) runReplenish(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("replenish: subcommand required (list, add)")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("replenish "+sub, flag.ContinueOnError)
	productID := fs.Int64("product", 0, "product id")
	quantity := fs.Int64("qty", 0, "batch quantity")
	cost := fs.String("cost", "0", "batch cost price per unit")
	price := fs.String("price", "0", "batch selling price per unit")
	expiry := fs.String("expiry", "", "optional expiry date (2006-01-02)")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	ctrl := replenish.NewController(a.Log, replenish.NewAPI(a.Client), catalog.NewAPI(a.Client))
	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("load replenishment page: %w", err)
	}

	switch sub {
	case "list":
		return a.printBatches(ctrl)
	case "add":
		costPrice, err := parseAmount(*cost)
		if err != nil {
			return err
		}
		sellingPrice, err := parseAmount(*price)
		if err != nil {
			return err
		}
		ctrl.Form = replenish.BatchForm{
			ProductID:    *productID,
			Quantity:     *quantity,
			CostPrice:    costPrice,
			SellingPrice: sellingPrice,
		}
		if *expiry != "" {
			date, err := time.Parse("2006-01-02", *expiry)
			if err != nil {
				return fmt.Errorf("invalid expiry date %q", *expiry)
			}
			ctrl.Form.ExpiryDate = &date
		}
		if err := ctrl.SubmitCreate(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "batch created")
		return a.printBatches(ctrl)
	default:
		return fmt.Errorf("replenish: unknown subcommand %q", sub)
	}
}

func (a *App) printBatches(ctrl *replenish.Controller) error {
	table := newTable(a.Out)
	fmt.Fprintln(table, "ID\tPRODUCT\tREMAINING\tCOST\tPRICE\tMARGIN\tEXPIRY")
	for _, b := range ctrl.Batches() {
		margin := b.Margin
		if b.HasMargin {
			margin += "%"
		}
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Product, count(b.QuantityRemaining), money(b.CostPrice), money(b.SellingPrice), margin, b.Expiry.Label)
	}
	return table.Flush()
}
