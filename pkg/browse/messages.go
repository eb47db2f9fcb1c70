package browse

import (
	"fmt"

	"tableflip.dev/glossary/pkg/recipe"
)

// Field names one piece of view data. Each field is owned by exactly one
// fetch path.
type Field int

const (
	FieldCount Field = iota
	FieldRecipes
	FieldDetail
	FieldAuthorCount
	FieldAuthorRecipes
	FieldTopIngredients
	FieldTopAuthors
	FieldTopComplex
	FieldIngredients

	fieldCount
)

var fieldNames = [...]string{
	FieldCount:          "count",
	FieldRecipes:        "recipes",
	FieldDetail:         "detail",
	FieldAuthorCount:    "author count",
	FieldAuthorRecipes:  "author recipes",
	FieldTopIngredients: "top ingredients",
	FieldTopAuthors:     "top authors",
	FieldTopComplex:     "top complex",
	FieldIngredients:    "ingredients",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fetch identifies an issued request: the field it fills and its sequence
// number within that field.
type Fetch struct {
	Field Field
	Seq   uint64
}

func (f Fetch) fetch() Fetch { return f }

type result interface {
	fetch() Fetch
}

// CountLoadedMsg carries GET /Recipes/count.
type CountLoadedMsg struct {
	Fetch
	Count int
}

// RecipesLoadedMsg carries a listing page and the query it answers.
type RecipesLoadedMsg struct {
	Fetch
	Query ListingQuery
	Page  recipe.Page
}

// DetailLoadedMsg carries one recipe's details.
type DetailLoadedMsg struct {
	Fetch
	Detail recipe.Detail
}

// AuthorCountLoadedMsg carries an author's recipe count.
type AuthorCountLoadedMsg struct {
	Fetch
	Author string
	Count  int
}

// AuthorRecipesLoadedMsg carries one page of an author's recipes.
type AuthorRecipesLoadedMsg struct {
	Fetch
	Query   AuthorListingQuery
	Recipes []recipe.AuthorRef
}

// TopIngredientsLoadedMsg carries the most common ingredients.
type TopIngredientsLoadedMsg struct {
	Fetch
	Items []recipe.CommonIngredient
}

// TopAuthorsLoadedMsg carries the most prolific authors.
type TopAuthorsLoadedMsg struct {
	Fetch
	Items []recipe.ProlificAuthor
}

// TopComplexLoadedMsg carries the most complex recipes.
type TopComplexLoadedMsg struct {
	Fetch
	Items []recipe.Summary
}

// IngredientsLoadedMsg carries the filter vocabulary.
type IngredientsLoadedMsg struct {
	Fetch
	Items []recipe.IngredientOption
}

// FetchFailedMsg reports a failed fetch. The field's data is left as is.
type FetchFailedMsg struct {
	Fetch
	Err error
}
