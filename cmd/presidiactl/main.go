// presidiactl is the operator CLI for the briefing backend: schema
// migration, demo-data seeding, and development token minting. The API
// server itself never writes; all data enters through this tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"presidia-backend/infrastructure/config"
	"presidia-backend/infrastructure/di"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "presidiactl",
		Short:   "Operator tooling for the Presidia briefing backend",
		Version: Version,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openContainer loads config and wires the container the same way the API
// server does, so the CLI always talks to the same database the server
// would.
func openContainer() (*di.Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	container, err := di.InitializeContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize container: %w", err)
	}
	return container, nil
}
