package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"presidia-backend/infrastructure/persistence/seed"
)

func seedCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with the built-in demo dataset",
		Long: `Populate the configured database with the demo briefing dataset:
one briefing day with six meetings, each backed by a researched contact
(links, career history, news, life events, interaction timeline).

The target database should be empty. Schema is created first unless
--skip-migrate is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := openContainer()
			if err != nil {
				return err
			}
			defer container.Store.Close()

			ctx := cmd.Context()
			if !skipMigrate {
				if err := container.Store.Migrate(ctx); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			if err := seed.Run(ctx, container.Store, container.Logger); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Println("Demo dataset loaded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "assume the schema already exists")

	return cmd
}
