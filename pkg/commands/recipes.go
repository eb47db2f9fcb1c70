package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/commands/options"
	"tableflip.dev/glossary/pkg/runner/lookup"
)

func addRecipes(topLevel *cobra.Command) {
	lo := &options.ListingOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "recipes",
		Aliases: []string{"list", "ls"},
		Short:   "list one page of recipes",
		Example: `
glossary recipes
glossary recipes --sort ingredients --desc
glossary recipes --search soup -i tomato -i basil --page 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			svc, err := catalogService(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			l := lookup.List{
				Service: svc,
				Options: lo.ListOptions(),
				Output:  lookup.Output{JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}
	options.AddListingArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("sort", sortCompletions)

	topLevel.AddCommand(cmd)
}
