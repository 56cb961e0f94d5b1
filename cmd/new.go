package cmd

import (
	"github.com/spf13/cobra"
)

var newName string

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new application",
	Long: `Create a new TypeScript Express application in <root>/<name>.

The template repository is cloned, its git metadata and lockfile removed,
.env.example renamed to .env and dependencies installed. On any failure
the directory is removed again.

Examples:
  expressor new blog
  expressor new --name blog
  expressor new                     # prompts for the name`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newName, "name", "n", "", "Application name")
}

func runNew(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	name := newName
	if len(args) > 0 {
		name = args[0]
	}

	_, err = env.bootstrapper().Create(cmd.Context(), name)
	return err
}
