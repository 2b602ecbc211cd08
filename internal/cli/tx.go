package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

func (a *app) txCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Append to and list the transaction log",
	}

	var category, description, date string
	add := &cobra.Command{
		Use:   "add <income|expense> <amount>",
		Short: "Append a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			today, err := a.today()
			if err != nil {
				return err
			}
			timestamp := today
			if date != "" {
				d, err := parseDateFlag("date", date)
				if err != nil {
					return err
				}
				timestamp = d.Time
			}
			outcome, err := a.core.Transactions.Append(models.TransactionType(args[0]), amount, category, description, timestamp)
			if err != nil {
				return err
			}
			a.core.Activity.Log("CREATE_TRANSACTION", "transaction", outcome.Transaction.ID, nil)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "  %s %s %s (%s)\n",
				successStyle.Render("Added"), outcome.Transaction.Type,
				FormatMoney(outcome.Transaction.Amount), outcome.Transaction.Category)
			a.notify(w, today, services.AlertTrigger{Exceeded: outcome.Warning})
			return nil
		},
	}
	add.Flags().StringVarP(&category, "category", "c", "", "Category")
	add.Flags().StringVarP(&description, "description", "m", "", "Description (required)")
	add.Flags().StringVar(&date, "date", "", "Transaction date YYYY-MM-DD (default: --today)")

	var filter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions in append order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if filter != "" && !models.TransactionType(filter).IsValid() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "--type must be 'income' or 'expense'")
			}
			w := cmd.OutOrStdout()
			rows := make([][]string, 0)
			for _, t := range a.core.Transactions.ListAll() {
				if filter != "" && string(t.Type) != filter {
					continue
				}
				rows = append(rows, []string{
					t.Date.Format(time.DateOnly),
					string(t.Type),
					t.Category,
					t.Description,
					FormatMoney(t.Amount),
				})
			}
			if len(rows) == 0 {
				fmt.Fprintln(w, labelStyle.Render("  No transactions."))
				return nil
			}
			fmt.Fprint(w, RenderTable(Table{
				Title:   "TRANSACTIONS",
				Headers: []string{"Date", "Type", "Category", "Description", "Amount"},
				Rows:    rows,
			}))
			return nil
		},
	}
	list.Flags().StringVar(&filter, "type", "", "Filter by type (income, expense)")

	cmd.AddCommand(add, list)
	return cmd
}
