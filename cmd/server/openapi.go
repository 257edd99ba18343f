package main

import (
	"fmt"

	"notes-service/internal/docs"

	"github.com/spf13/cobra"
)

var openapiFormat string

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the OpenAPI document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		doc := docs.New(fmt.Sprintf("http://localhost:%s", cfg.Server.Port))

		var out []byte
		switch openapiFormat {
		case "yaml":
			out, err = doc.YAML()
		case "json":
			out, err = doc.JSON()
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", openapiFormat)
		}
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	openapiCmd.Flags().StringVar(&openapiFormat, "format", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(openapiCmd)
}
