package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgetly/internal/services"
)

func (a *app) analyticsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Expenses by category and by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w)
			fmt.Fprintln(w, RenderTitle("SPENDING"))

			breakdown := a.core.Analytics.Breakdown()
			if len(breakdown) == 0 {
				fmt.Fprintln(w, labelStyle.Render("  No expenses recorded."))
				return nil
			}

			rows := make([][]string, 0, len(breakdown))
			for _, share := range breakdown {
				rows = append(rows, []string{share.Category, FormatMoney(share.Total), FormatPercent(share.Percent)})
			}
			fmt.Fprint(w, RenderTable(Table{
				Title:   "BY CATEGORY",
				Headers: []string{"Category", "Total", "Share"},
				Rows:    rows,
			}))

			series := a.core.Analytics.DailyTimeSeries()
			rows = make([][]string, 0, len(series))
			for _, day := range series {
				rows = append(rows, []string{day.Date, FormatMoney(day.Total)})
			}
			fmt.Fprint(w, RenderTable(Table{
				Title:   "BY DAY",
				Headers: []string{"Date", "Total"},
				Rows:    rows,
			}))
			return nil
		},
	}
}

func (a *app) alertsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show current budget and bill notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today, err := a.today()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			notifications := a.core.Alerts.Evaluate(today, services.AlertTrigger{})
			if len(notifications) == 0 {
				fmt.Fprintln(w, labelStyle.Render("  Nothing to report."))
				return nil
			}
			a.printNotifications(w, notifications)
			return nil
		},
	}
}
