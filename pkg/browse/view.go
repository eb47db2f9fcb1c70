package browse

import "tableflip.dev/glossary/pkg/recipe"

// View is everything the presentation layer renders. Each field is replaced
// wholesale when its fetch succeeds.
type View struct {
	// Count is the catalog size from GET /Recipes/count.
	Count int

	Recipes []recipe.Summary
	// TotalCount is the number of recipes matching the listed query. It is
	// only meaningful once Listed is true.
	TotalCount int
	Listed     bool
	// ListedQuery is the query the current Recipes answer.
	ListedQuery ListingQuery

	Detail recipe.Detail

	AuthorCount   int
	AuthorCountOf string
	AuthorRecipes []recipe.AuthorRef
	// AuthorQuery is the author query the current AuthorRecipes answer.
	AuthorQuery AuthorListingQuery

	TopIngredients []recipe.CommonIngredient
	TopAuthors     []recipe.ProlificAuthor
	TopComplex     []recipe.Summary
	Ingredients    []recipe.IngredientOption

	// Errors holds the last failure per field; a later success clears it.
	Errors map[Field]error
}

// Err returns the recorded failure for f, if any.
func (v View) Err(f Field) error {
	return v.Errors[f]
}

// Leaderboards groups the three top-5 lists.
func (v View) Leaderboards() recipe.Leaderboards {
	return recipe.Leaderboards{
		Ingredients: v.TopIngredients,
		Authors:     v.TopAuthors,
		Complex:     v.TopComplex,
	}
}
