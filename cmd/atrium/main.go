package main

import (
	"os"

	"github.com/spf13/cobra"

	"atrium/internal/interfaces/cli/migrate"
	"atrium/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atrium",
		Short: "Atrium - portfolio site backend",
		Long:  `Atrium serves the portfolio site API: OAuth sign-in, form intake, and the admin console endpoints.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
