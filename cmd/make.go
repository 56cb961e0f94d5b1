package cmd

import (
	"github.com/conneroisu/expressor/internal/artifact"
	"github.com/conneroisu/expressor/internal/generator"
	"github.com/spf13/cobra"
)

var repositoryModel string

var makeControllerCmd = newMakeCommand(artifact.Controller, "make:controller [name]",
	"Create a new controller",
	`Generate src/app/controllers/<name>.controller.ts.

Examples:
  expressor make:controller user`)

var makeRepositoryCmd = newMakeCommand(artifact.Repository, "make:repository [name]",
	"Create a new repository",
	`Generate src/app/repositories/<name>.repository.ts backed by a Prisma model.
The model defaults to the repository name.

Examples:
  expressor make:repository user
  expressor make:repository order --model product`)

var makeSchemaCmd = newMakeCommand(artifact.ValidationSchema, "make:schema [name]",
	"Create a new validate schema",
	`Generate src/app/validateSchema/<name>.schema.ts.

Examples:
  expressor make:schema user`)

func init() {
	makeRepositoryCmd.Flags().StringVarP(&repositoryModel, "model", "m", "", "Prisma model name (default is the repository name)")

	rootCmd.AddCommand(makeControllerCmd, makeRepositoryCmd, makeSchemaCmd)
}

func newMakeCommand(kind artifact.Kind, use, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(cmd, kind, args)
		},
	}
}

func runMake(cmd *cobra.Command, kind artifact.Kind, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	req := generator.Request{Kind: kind}
	if len(args) > 0 {
		req.RawName = args[0]
	}
	if kind == artifact.Repository {
		req.Options = map[string]string{generator.OptionModel: repositoryModel}
	}

	_, err = env.generator().Generate(cmd.Context(), req)
	return err
}
