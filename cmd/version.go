package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/conneroisu/expressor/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionFormat string
	versionShort  bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for expressor.

Examples:
  expressor version                # Show version, Go version and platform
  expressor version --short        # Show version only
  expressor version --format json  # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	switch versionFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "text":
		if versionShort {
			_, err := fmt.Fprintln(out, info.Short())
			return err
		}
		_, err := fmt.Fprintln(out, info.String())
		return err
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}
}
