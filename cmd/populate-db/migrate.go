package main

import (
	"github.com/Gunvolt24/distinsert/config"
	"github.com/Gunvolt24/distinsert/internal/app"
	"github.com/Gunvolt24/distinsert/pkg/logger"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations to every store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			return app.Migrate(cmd.Context(), &cfg.Store, logg)
		},
	}
}
