package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/commands/options"
	"tableflip.dev/glossary/pkg/runner/lookup"
)

func addAuthor(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	page := 1

	cmd := &cobra.Command{
		Use:   "author <name>",
		Short: "list an author's recipes",
		Example: `
glossary author "Jane Doe"
glossary author Jane Doe --page 2
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			svc, err := catalogService(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			a := lookup.Author{
				Service: svc,
				Name:    strings.Join(args, " "),
				Page:    page,
				Output:  lookup.Output{JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}
	options.AddPageArg(cmd, &page)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
