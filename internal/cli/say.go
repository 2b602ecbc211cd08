package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"budgetly/internal/command"
	"budgetly/internal/services"
)

func (a *app) sayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `say "<text>"`,
		Short: "Run a spoken command such as \"" + command.Example + "\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := a.today()
			if err != nil {
				return err
			}
			parsed, err := command.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			outcome, err := a.core.Transactions.Append(parsed.Type, parsed.Amount, parsed.Category, parsed.Description, today)
			if err != nil {
				return err
			}
			a.core.Activity.Log("VOICE_COMMAND", "transaction", outcome.Transaction.ID, nil)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "  %s %s %s for %s\n",
				successStyle.Render("Added"), parsed.Type, FormatMoney(parsed.Amount), parsed.Category)
			a.notify(w, today, services.AlertTrigger{Exceeded: outcome.Warning})
			return nil
		},
	}
}
