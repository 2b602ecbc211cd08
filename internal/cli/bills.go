package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"budgetly/internal/alerts"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

func (a *app) billsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Track and settle pending bills",
	}

	add := &cobra.Command{
		Use:   "add <name> <amount> <due-date>",
		Short: "Add a pending bill",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			due, err := models.ParseDate(args[2])
			if err != nil {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "due date must be YYYY-MM-DD")
			}
			bill, err := a.core.Bills.AddBill(args[0], amount, due)
			if err != nil {
				return err
			}
			a.core.Activity.Log("CREATE_BILL", "bill", bill.ID, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s %s due %s\n",
				successStyle.Render("Added bill"), bill.Name, FormatMoney(bill.Amount), bill.DueDate)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List pending bills with their positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			pending := a.core.Bills.ListPending()
			if len(pending) == 0 {
				fmt.Fprintln(w, labelStyle.Render("  No pending bills."))
				return nil
			}
			rows := make([][]string, 0, len(pending))
			for i, b := range pending {
				rows = append(rows, []string{strconv.Itoa(i), b.Name, b.DueDate.String(), FormatMoney(b.Amount)})
			}
			fmt.Fprint(w, RenderTable(Table{
				Title:   "PENDING BILLS",
				Headers: []string{"#", "Name", "Due", "Amount"},
				Rows:    rows,
			}))
			return nil
		},
	}

	pay := &cobra.Command{
		Use:   "pay <index>",
		Short: "Settle the bill at a position from 'bills list'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "index must be a number")
			}
			today, err := a.today()
			if err != nil {
				return err
			}
			outcome, err := a.core.Bills.Settle(index, today)
			if err != nil {
				return err
			}
			a.core.Activity.Log("SETTLE_BILL", "bill", outcome.Bill.ID, map[string]interface{}{"transaction_id": outcome.Transaction.ID})

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "  %s %s %s\n", successStyle.Render("Paid"), outcome.Bill.Name, FormatMoney(outcome.Bill.Amount))
			a.notify(w, today, services.AlertTrigger{Exceeded: outcome.Warning})
			return nil
		},
	}

	due := &cobra.Command{
		Use:   "due",
		Short: "Show days until each pending bill is due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today, err := a.today()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			dues := a.core.Bills.DueSoon(today)
			if len(dues) == 0 {
				fmt.Fprintln(w, labelStyle.Render("  No pending bills."))
				return nil
			}
			rows := make([][]string, 0, len(dues))
			var reminders []models.Notification
			for _, d := range dues {
				rows = append(rows, []string{strconv.Itoa(d.Index), d.Bill.Name, FormatDays(d.DaysUntilDue), FormatMoney(d.Bill.Amount)})
				if d.DueTomorrow() {
					reminders = append(reminders, alerts.BillDueTomorrow(d.Bill))
				}
			}
			fmt.Fprint(w, RenderTable(Table{
				Title:   "DUE SOON",
				Headers: []string{"#", "Name", "Due in", "Amount"},
				Rows:    rows,
			}))
			a.printNotifications(w, reminders)
			return nil
		},
	}

	cmd.AddCommand(add, list, pay, due)
	return cmd
}
