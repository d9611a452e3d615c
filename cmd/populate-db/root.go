package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/distinsert/config"
	"github.com/Gunvolt24/distinsert/internal/app"
	"github.com/spf13/cobra"
)

// newRootCmd — заполнение трёх хранилищ; без аргументов.
// Ненулевой код выхода только при ошибке запуска, отказы записей попадают в отчёт.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "populate-db",
		Short:         "Validate and insert the fixed seed into the users, products and orders stores",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := app.Bootstrap(ctx, &cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			a.Run(ctx)
			return nil
		},
	}
	cmd.AddCommand(newMigrateCmd(), newValidateCmd())
	return cmd
}
