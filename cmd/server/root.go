package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "notes-server",
	Short: "In-memory notes CRUD service",
	Long: `notes-server exposes list/create/update/delete operations on short text
notes over HTTP with JSON payloads. Notes live in memory for the lifetime
of the process.`,
	SilenceUsage: true,
}

// Execute runs the root command. Without a subcommand the server starts.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file merged into the environment")
}
