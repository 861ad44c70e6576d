package main

import (
	"os"

	"github.com/spf13/cobra"

	"netgrid/internal/interfaces/cli/admin"
	"netgrid/internal/interfaces/cli/migrate"
	"netgrid/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netgrid",
		Short: "netgrid - network resource reservation service",
		Long:  `netgrid manages network resource inventory, connection requests and their approval lifecycle.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
