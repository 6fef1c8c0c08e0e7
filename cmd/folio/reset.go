package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/folio/internal/app"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/utils"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite stored content with the default (or seed) document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log := setup()
			defer func() { _ = log.Sync() }()

			c, err := app.OpenContent(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer utils.CloseLogged(c, "storage", log)

			if err := c.Store.Reset(cmd.Context(), c.Fallback); err != nil {
				return fmt.Errorf("failed to reset content: %w", err)
			}
			log.Info("content reset",
				logger.String("storage", cfg.Storage),
				logger.Int("projects", len(c.Fallback.Projects)))
			fmt.Fprintln(cmd.OutOrStdout(), "content reset")
			return nil
		},
	}
}
