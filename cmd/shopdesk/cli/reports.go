package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/shopdesk/shopdesk/internal/reports"
)

func (a *App) runReports(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("reports: subcommand required (show, export)")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("reports "+sub, flag.ContinueOnError)
	format := fs.String("format", "excel", "export format (excel, pdf)")
	out := fs.String("out", "", "output file path")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	ctrl := reports.NewController(a.Log, reports.NewAPI(a.Client))

	switch sub {
	case "show":
		if err := ctrl.Load(ctx); err != nil {
			return fmt.Errorf("load reports page: %w", err)
		}
		table := newTable(a.Out)
		fmt.Fprintln(table, "PRODUCT\tSOLD\tLEFT\tREVENUE\tCOST\tACTUAL\tEXPECTED\tPOTENTIAL")
		for _, line := range ctrl.Lines() {
			fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				line.Product, count(line.SoldQty), count(line.RemainingQty),
				money(line.Revenue), money(line.Cost), money(line.ActualProfit),
				money(line.ExpectedProfit), money(line.TotalPotentialProfit))
		}
		if err := table.Flush(); err != nil {
			return err
		}
		s := ctrl.Summary()
		fmt.Fprintf(a.Out, "\nTotals: revenue %s, cost %s, actual profit %s (margin %s%%)\n",
			money(s.TotalRevenue), money(s.TotalCost), money(s.TotalActualProfit), s.ProfitMarginPercent.StringFixed(1))
		return nil
	case "export":
		var exportFormat reports.ExportFormat
		ext := ""
		switch *format {
		case "excel":
			exportFormat, ext = reports.ExportExcel, ".xlsx"
		case "pdf":
			exportFormat, ext = reports.ExportPDF, ".pdf"
		default:
			return fmt.Errorf("reports: unknown format %q", *format)
		}
		path := *out
		if path == "" {
			path = filepath.Join(a.Config.ExportDir, "report"+ext)
		}
		if err := ctrl.SaveExport(ctx, exportFormat, path); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "report saved to %s\n", path)
		return nil
	default:
		return fmt.Errorf("reports: unknown subcommand %q", sub)
	}
}
