package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/debtors"
)

func (a *App) runDebtors(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("debtors: subcommand required (list, pay, borrow, history, credit-sale)")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("debtors "+sub, flag.ContinueOnError)
	customerID := fs.Int64("customer", 0, "customer id")
	amount := fs.String("amount", "", "payment amount")
	productID := fs.Int64("product", 0, "product id")
	quantity := fs.Int64("qty", 0, "quantity")
	name := fs.String("name", "", "new customer name")
	paid := fs.String("paid", "0", "amount paid up front")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	ctrl := debtors.NewController(a.Log, debtors.NewAPI(a.Client), catalog.NewAPI(a.Client))
	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("load debtors page: %w", err)
	}

	switch sub {
	case "list":
		return a.printDebtors(ctrl)
	case "pay":
		entered, err := parseAmount(*amount)
		if err != nil {
			return err
		}
		ctrl.SetPaymentAmount(*customerID, entered)
		if err := ctrl.SubmitPayment(ctx, *customerID); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "payment recorded")
		return a.printDebtors(ctrl)
	case "borrow":
		ctrl.Borrow.ProductID = *productID
		ctrl.Borrow.Quantity = *quantity
		if err := ctrl.SubmitBorrow(ctx, *customerID); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "borrow recorded")
		return a.printDebtors(ctrl)
	case "history":
		records, err := ctrl.History(ctx, *customerID)
		if err != nil {
			return err
		}
		table := newTable(a.Out)
		fmt.Fprintln(table, "DATE\tPRODUCT\tQTY")
		for _, rec := range records {
			fmt.Fprintf(table, "%s\t%s\t%s\n", rec.Date.Format("2006-01-02"), rec.ProductName, count(rec.Quantity))
		}
		return table.Flush()
	case "credit-sale":
		ctrl.CreditSale.Name = *name
		ctrl.CreditSale.ProductID = *productID
		ctrl.CreditSale.Quantity = *quantity
		amountPaid, err := parseAmount(*paid)
		if err != nil {
			return err
		}
		ctrl.CreditSale.AmountPaid = amountPaid
		fmt.Fprintf(a.Out, "Opening debt: %s\n", money(ctrl.NewDebtPreview()))
		if err := ctrl.SubmitCreditSale(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "credit sale recorded")
		return a.printDebtors(ctrl)
	default:
		return fmt.Errorf("debtors: unknown subcommand %q", sub)
	}
}

func (a *App) printDebtors(ctrl *debtors.Controller) error {
	table := newTable(a.Out)
	fmt.Fprintln(table, "ID\tNAME\tBALANCE")
	for _, d := range ctrl.Debtors() {
		fmt.Fprintf(table, "%d\t%s\t%s\n", d.ID, d.Name, money(d.Balance))
	}
	return table.Flush()
}
