package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/catalog"
)

// ListingOptions selects one page of the recipe listing.
type ListingOptions struct {
	Page        int
	Sort        string
	Descending  bool
	Search      string
	Ingredients []string
}

func AddListingArgs(cmd *cobra.Command, o *ListingOptions) {
	AddPageArg(cmd, &o.Page)
	cmd.Flags().StringVar(&o.Sort, "sort", "name",
		Wrap80("Sort by name, author, ingredients or skill."))
	cmd.Flags().BoolVar(&o.Descending, "desc", false,
		"Sort in descending order.")
	cmd.Flags().StringVar(&o.Search, "search", "",
		Wrap80("Only list recipes matching the search text."))
	cmd.Flags().StringSliceVarP(&o.Ingredients, "ingredient", "i", nil,
		Wrap80("Only list recipes containing the ingredient. Repeat or comma separate for more than one."))
}

// ListOptions converts the flags for the catalog service.
func (o *ListingOptions) ListOptions() catalog.ListOptions {
	return catalog.ListOptions{
		Page:        o.Page,
		Sort:        o.Sort,
		Descending:  o.Descending,
		Search:      o.Search,
		Ingredients: o.Ingredients,
	}
}

func AddPageArg(cmd *cobra.Command, page *int) {
	cmd.Flags().IntVarP(page, "page", "p", 1,
		"Page number, starting at 1.")
}
