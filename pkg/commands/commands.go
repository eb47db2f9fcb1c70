package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/glossary/pkg/config"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "glossary",
		Short: base.Wrap80("Browse a recipe catalog from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	config.AddFlags(cmd.PersistentFlags())

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addRecipes(topLevel)
	addRecipe(topLevel)
	addAuthor(topLevel)
	addTop(topLevel)
	addIngredients(topLevel)
	addCount(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
