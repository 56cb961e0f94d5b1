package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/conneroisu/expressor/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect expressor configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after flags, EXPRESSOR_* environment variables,
the config file and defaults have been merged.

Examples:
  expressor config show
  expressor config show --format json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "Output format (yaml, json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var out []byte
	switch configFormat {
	case "yaml":
		out, err = yaml.Marshal(cfg)
	case "json":
		out, err = json.MarshalIndent(cfg, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unsupported format: %s (supported: yaml, json)", configFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
