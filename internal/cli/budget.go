package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"budgetly/internal/analytics"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

func (a *app) budgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Set, show and close the budget period",
	}

	var period, start, end string
	set := &cobra.Command{
		Use:   "set <amount>",
		Short: "Replace the budget period (spent and savings start from zero)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			startDate, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag("end", end)
			if err != nil {
				return err
			}
			bp, err := a.core.Ledger.SetPeriod(amount, models.PeriodType(period), startDate, endDate)
			if err != nil {
				return err
			}
			a.core.Activity.Log("SET_BUDGET", "budget", "", map[string]interface{}{"amount": bp.Amount.String()})
			printBudget(cmd.OutOrStdout(), *bp)
			return nil
		},
	}
	set.Flags().StringVar(&period, "period", string(models.PeriodMonthly), "Period type (weekly, monthly, yearly)")
	set.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD")
	set.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the budget period and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBudget(cmd.OutOrStdout(), a.core.Ledger.CurrentPeriod())
			return nil
		},
	}

	closeCmd := &cobra.Command{
		Use:   "close",
		Short: "Close the period if its end date has been reached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today, err := a.today()
			if err != nil {
				return err
			}
			outcome, err := a.core.Ledger.ClosePeriodIfElapsed(today)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if outcome == nil {
				fmt.Fprintln(w, labelStyle.Render("  Period is still open."))
			} else {
				a.core.Activity.Log("CLOSE_PERIOD", "budget", "", map[string]interface{}{"savings_delta": outcome.SavingsDelta.String()})
				fmt.Fprintln(w, successStyle.Render("  Period closed. Leftover: "+FormatMoney(outcome.SavingsDelta)))
			}
			a.notify(w, today, services.AlertTrigger{Closed: outcome})
			return nil
		},
	}

	donate := &cobra.Command{
		Use:   "donate <amount>",
		Short: "Give away part of the accumulated savings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			bp, err := a.core.Ledger.Donate(amount)
			if err != nil {
				return err
			}
			a.core.Activity.Log("DONATE_SAVINGS", "budget", "", map[string]interface{}{"amount": amount.String()})
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("  Donated "+FormatMoney(amount)+". Savings: "+FormatMoney(bp.Savings)))
			return nil
		},
	}

	cmd.AddCommand(set, show, closeCmd, donate)
	return cmd
}

func printBudget(w io.Writer, bp models.BudgetPeriod) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderTitle("BUDGET"))
	if !bp.IsSet() {
		fmt.Fprintln(w, labelStyle.Render("  No budget set. Try: budgetctl budget set 1000 --start 2024-01-01 --end 2024-01-31"))
		return
	}
	p := analytics.ProgressOf(bp)
	status := "open"
	if bp.Closed {
		status = "closed"
	}
	fmt.Fprint(w, RenderKeyValues([][2]string{
		{"Period", fmt.Sprintf("%s  %s → %s (%s)", bp.Period, bp.StartDate, bp.EndDate, status)},
		{"Budget", FormatMoney(bp.Amount)},
		{"Spent", FormatMoney(bp.Spent)},
		{"Remaining", FormatMoney(p.Remaining)},
		{"Savings", FormatMoney(bp.Savings)},
		{"Used", RenderProgressBar(p, 30)},
	}))
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("invalid amount %q", s))
	}
	return d, nil
}

func parseDateFlag(name, value string) (models.Date, error) {
	if value == "" {
		return models.Date{}, nil
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return models.Date{}, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("--%s must be YYYY-MM-DD", name))
	}
	return d, nil
}
