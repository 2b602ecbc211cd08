package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/i18n"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

// Opener builds the core over the configured gateway. The returned function
// releases the gateway.
type Opener func() (*services.Core, func(), error)

// app is the state shared by every subcommand of one invocation.
type app struct {
	open    Opener
	catalog *i18n.Catalog

	core    *services.Core
	release func()

	flagLang  string
	flagToday string
}

// NewRootCommand builds the budgetctl command tree. defaultLang is used when
// --lang is not given.
func NewRootCommand(open Opener, catalog *i18n.Catalog, defaultLang string) *cobra.Command {
	a := &app{open: open, catalog: catalog}

	root := &cobra.Command{
		Use:           "budgetctl",
		Short:         "Personal budget, transactions and bills from the terminal",
		Long:          "Track one budget period, an append-only transaction log and pending bills.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			core, release, err := a.open()
			if err != nil {
				return err
			}
			a.core, a.release = core, release
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.release != nil {
				a.release()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.flagLang, "lang", "l", defaultLang, "Notification language (en, hi, ta, ja)")
	root.PersistentFlags().StringVar(&a.flagToday, "today", "", "Evaluation date YYYY-MM-DD (default: now)")

	root.AddCommand(
		a.budgetCommand(),
		a.txCommand(),
		a.sayCommand(),
		a.billsCommand(),
		a.analyticsCommand(),
		a.alertsCommand(),
	)
	return root
}

// Execute runs root and prints any error to stderr. It returns the error so
// main can choose the exit code.
func Execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), RenderError(err))
	}
	return err
}

// today resolves --today, defaulting to the current time.
func (a *app) today() (time.Time, error) {
	if a.flagToday == "" {
		return time.Now().UTC(), nil
	}
	d, err := models.ParseDate(a.flagToday)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "--today must be YYYY-MM-DD")
	}
	return d.Time, nil
}

// notify evaluates the alerting policy and prints the localized result.
func (a *app) notify(w io.Writer, today time.Time, trigger services.AlertTrigger) {
	a.printNotifications(w, a.core.Alerts.Evaluate(today, trigger))
}

func (a *app) printNotifications(w io.Writer, notifications []models.Notification) {
	if len(notifications) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, RenderNotifications(a.catalog.Localize(a.flagLang, notifications)))
}
