package main

import (
	"fmt"
	"os"

	"budgetly/internal/backend"
	"budgetly/internal/cli"
	"budgetly/internal/config"
	"budgetly/internal/i18n"
	"budgetly/internal/logger"
	"budgetly/internal/services"
)

func main() {
	// Keep the terminal clean unless ENV asks for something else.
	env := os.Getenv("ENV")
	if env == "" {
		env = "test"
	}
	logger.Init(env)
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	catalog, err := i18n.Load(cfg.DefaultLanguage)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	open := func() (*services.Core, func(), error) {
		opened, err := backend.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		core, err := services.NewCore(opened.Gateway, opened.Notifier)
		if err != nil {
			opened.Close()
			return nil, nil, err
		}
		return core, opened.Close, nil
	}

	if err := cli.Execute(cli.NewRootCommand(open, catalog, cfg.DefaultLanguage)); err != nil {
		os.Exit(1)
	}
}
