package main

import (
	"os"

	"github.com/spf13/cobra"

	"phtrs/internal/interfaces/cli/migrate"
	"phtrs/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phtrs",
		Short: "PHTRS - Pothole tracking and repair system",
		Long:  `PHTRS tracks reported potholes, citizen damage claims, crew work orders and repair statistics.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
