package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/version"
)

// newRootCmd builds the command tree. Running folio without a subcommand
// serves the site.
func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:   "folio",
		Short: "Portfolio site with an inline content editor",
		Long: `folio serves a portfolio website (hero, work, about, contact) and a
password-gated editor that changes the same content in place.

Configuration is read from FOLIO_* environment variables.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newExportCmd())
	root.AddCommand(newResetCmd())
	return root
}

// setup loads the environment configuration and the logger every command needs.
func setup() (*config.Config, logger.Logger) {
	cfg := config.Load()
	return cfg, logger.New(cfg.LogLevel, cfg.PrettyLog)
}
