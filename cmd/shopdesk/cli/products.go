package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/shopdesk/shopdesk/internal/catalog"
)

func (a *App) runProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("products: subcommand required (list, add)")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("products "+sub, flag.ContinueOnError)
	name := fs.String("name", "", "product name")
	quantity := fs.Int64("qty", 0, "opening quantity")
	cost := fs.String("cost", "0", "cost price per unit")
	price := fs.String("price", "0", "selling price per unit")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	ctrl := catalog.NewController(a.Log, catalog.NewAPI(a.Client))
	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("load products page: %w", err)
	}

	switch sub {
	case "list":
		return a.printProducts(ctrl)
	case "add":
		costPrice, err := parseAmount(*cost)
		if err != nil {
			return err
		}
		sellingPrice, err := parseAmount(*price)
		if err != nil {
			return err
		}
		ctrl.Form = catalog.ProductForm{
			Name:         *name,
			Quantity:     *quantity,
			CostPrice:    costPrice,
			SellingPrice: sellingPrice,
		}
		if err := ctrl.SubmitCreate(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "product created")
		return a.printProducts(ctrl)
	default:
		return fmt.Errorf("products: unknown subcommand %q", sub)
	}
}

func (a *App) printProducts(ctrl *catalog.Controller) error {
	table := newTable(a.Out)
	fmt.Fprintln(table, "ID\tNAME\tQTY\tCOST\tPRICE")
	for _, p := range ctrl.Products() {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, count(p.Quantity), money(p.CostPrice), money(p.SellingPrice))
	}
	return table.Flush()
}
