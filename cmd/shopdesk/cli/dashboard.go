package cli

import (
	"context"
	"fmt"

	"github.com/shopdesk/shopdesk/internal/dashboard"
)

func (a *App) runDashboard(ctx context.Context) error {
	ctrl := dashboard.NewController(a.Log, dashboard.NewAPI(a.Client))
	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	if s := ctrl.SummaryCard(); s != nil {
		fmt.Fprintf(a.Out, "Products: %s  Sales: %s  Revenue: %s  Profit: %s  Outstanding debt: %s  Low stock: %s\n\n",
			count(s.TotalProducts), count(s.TotalSales), money(s.TotalRevenue),
			money(s.TotalProfit), money(s.TotalDebt), count(s.LowStockCount))
	}

	fmt.Fprintln(a.Out, "Last 7 days:")
	table := newTable(a.Out)
	fmt.Fprintln(table, "DATE\tSALES\tREVENUE\tPROFIT")
	for _, day := range ctrl.Week() {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", day.Date, count(day.Sales), money(day.Revenue), money(day.Profit))
	}
	if err := table.Flush(); err != nil {
		return err
	}

	if slices := ctrl.Pie(); len(slices) > 0 {
		fmt.Fprintln(a.Out, "\nBy category:")
		for _, slice := range slices {
			fmt.Fprintf(a.Out, "  %s: %s\n", slice.Label, money(slice.Value))
		}
	}
	if top := ctrl.TopProducts(); len(top) > 0 {
		fmt.Fprintln(a.Out, "\nTop products:")
		for _, p := range top {
			fmt.Fprintf(a.Out, "  %s: %s sold for %s\n", p.Name, count(p.SoldQty), money(p.Revenue))
		}
	}
	return nil
}
