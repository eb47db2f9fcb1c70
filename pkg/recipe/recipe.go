// Package recipe holds the value types served by the recipe catalog API.
package recipe

// Summary is one row of a recipe listing.
type Summary struct {
	ID              string `json:"recipeId"`
	Name            string `json:"recipeName"`
	AuthorName      string `json:"authorName"`
	IngredientCount int    `json:"ingredientCount"`
	SkillLevel      string `json:"skillLevel"`
}

// Similar is a recommendation attached to a Detail.
type Similar struct {
	ID              string  `json:"recipeId"`
	Name            string  `json:"recipeName"`
	SimilarityScore float64 `json:"similarityScore"`
}

// Detail is the full record of a single recipe. Times are in seconds.
type Detail struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	CookingTime     int       `json:"cookingTime"`
	PreparationTime int       `json:"preparationTime"`
	Ingredients     []string  `json:"ingredients"`
	Collections     []string  `json:"collections"`
	Keywords        []string  `json:"keywords"`
	DietTypes       []string  `json:"dietTypes"`
	SimilarRecipes  []Similar `json:"similarRecipes"`
}

// AuthorRef is the minimal recipe reference used by the author listing.
type AuthorRef struct {
	ID   string `json:"recipeId"`
	Name string `json:"recipeName"`
}

// IngredientOption is one selectable ingredient filter term.
type IngredientOption struct {
	Name string `json:"name"`
}

// CommonIngredient is a row of the most common ingredients leaderboard.
type CommonIngredient struct {
	Name        string `json:"name"`
	RecipeCount int    `json:"recipeCount"`
}

// ProlificAuthor is a row of the most prolific authors leaderboard.
type ProlificAuthor struct {
	AuthorName  string `json:"authorName"`
	RecipeCount int    `json:"recipeCount"`
}

// Page is a single page of the recipe listing along with the total number of
// recipes that match the query.
type Page struct {
	Recipes    []Summary `json:"recipes"`
	TotalCount int       `json:"totalCount"`
}

// Leaderboards groups the three top-5 lists shown on the landing view.
type Leaderboards struct {
	Ingredients []CommonIngredient `json:"mostCommonIngredients"`
	Authors     []ProlificAuthor   `json:"mostProlificAuthors"`
	Complex     []Summary          `json:"mostComplexRecipes"`
}
