// Package cmd provides the command-line interface for expressor.
//
// Configuration System:
//
//	Values resolve with this precedence:
//	1. Command-line flags (--config, --root, --log-level, --non-interactive)
//	2. EXPRESSOR_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (EXPRESSOR_BOOTSTRAP_REPOSITORY, ...)
//	4. Configuration file (.expressor.yml) - lowest priority
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/logging"
	"github.com/conneroisu/expressor/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd prints the banner and the available commands.
var rootCmd = &cobra.Command{
	Use:   "expressor",
	Short: "Scaffold TypeScript Express applications",
	Long: `expressor creates TypeScript Express projects from a template repository
and generates controllers, repositories and validation schemas inside them.

Quick Start:
  expressor new blog                 Create a new project
  expressor make:controller user     Generate src/app/controllers/user.controller.ts`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printer := ui.NewPrinter(cmd.OutOrStdout())
		printer.Banner(ui.Banner)
		for _, u := range usage {
			printer.Log(fmt.Sprintf("%-34s %s", u[0], u[1]), "  ")
		}
	},
}

var usage = [][2]string{
	{"new [name]", "Create a new application"},
	{"make:controller [name]", "Create a new controller"},
	{"make:repository [name] [-m model]", "Create a new repository"},
	{"make:schema [name]", "Create a new validate schema"},
}

// Execute runs the command tree. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

// ExitCode reports err to the user and returns the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.ParseLevel(viper.GetString("log.level")),
		Format:    viper.GetString("log.format"),
		Output:    os.Stderr,
		Component: "cmd",
	})
	handler := errors.NewErrorHandler(logger, ui.NewPrinter(rootCmd.OutOrStdout()))

	return handler.Handle(context.Background(), err)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .expressor.yml, can also use EXPRESSOR_CONFIG_FILE env var)")
	flags.String("root", "", "project root (default is the current directory)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Bool("non-interactive", false, "never prompt; a missing name is an error")

	bindFlags(flags, map[string]string{
		"project.root":    "root",
		"log.level":       "log-level",
		"non_interactive": "non-interactive",
	})
}

// bindFlags maps config keys to flags so a set flag overrides every
// other configuration source.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// initConfig points viper at the config file and environment.
//
// Loading priority (highest to lowest):
//  1. --config flag
//  2. EXPRESSOR_CONFIG_FILE environment variable
//  3. .expressor.yml in the current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("EXPRESSOR_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".expressor")
	}

	viper.SetEnvPrefix("EXPRESSOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing file falls back to defaults.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
