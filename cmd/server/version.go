package main

import (
	"fmt"

	"notes-service/internal/docs"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the API version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notes-server version %s\n", docs.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
