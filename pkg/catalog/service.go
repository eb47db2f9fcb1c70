// Package catalog answers one-shot catalog questions for the CLI and the MCP
// server. It shares the listing query model with the interactive browser.
package catalog

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/glossary/pkg/browse"
	"tableflip.dev/glossary/pkg/recipe"
)

// ErrNoSource is returned when a Service has nothing to read from.
var ErrNoSource = errors.New("catalog source is not configured")

// Service wraps a browse.Source with page arithmetic.
type Service struct {
	Source         browse.Source
	PageSize       int
	AuthorPageSize int
}

// NewService returns a service with page sizes defaulted.
func NewService(src browse.Source, pageSize, authorPageSize int) *Service {
	if pageSize <= 0 {
		pageSize = browse.DefaultPageSize
	}
	if authorPageSize <= 0 {
		authorPageSize = pageSize
	}
	return &Service{Source: src, PageSize: pageSize, AuthorPageSize: authorPageSize}
}

// ListOptions selects a listing page. Zero values mean page 1 by name
// ascending.
type ListOptions struct {
	Page        int
	Sort        string
	Descending  bool
	Search      string
	Ingredients []string
}

// Query converts the options into a listing query.
func (o ListOptions) Query() (browse.ListingQuery, error) {
	q := browse.DefaultListingQuery()
	sort, err := browse.ParseSortField(o.Sort)
	if err != nil {
		return q, err
	}
	q.Sort = sort
	if o.Descending {
		q.Direction = browse.Descending
	}
	q.Page = browse.ClampPage(o.Page, 0)
	q.Search = strings.TrimSpace(o.Search)
	q.Filters = browse.NewFilterSet(o.Ingredients...)
	return q, nil
}

// RecipePage is one listing page plus the query that produced it.
type RecipePage struct {
	Page        int              `json:"page"`
	TotalPages  int              `json:"totalPages"`
	TotalCount  int              `json:"totalCount"`
	Sort        string           `json:"sortBy"`
	Order       string           `json:"sortOrder"`
	Search      string           `json:"searchQuery,omitempty"`
	Ingredients []string         `json:"ingredientFilters,omitempty"`
	Recipes     []recipe.Summary `json:"recipes"`
}

// AuthorPage is one page of an author's recipes.
type AuthorPage struct {
	Author     string             `json:"author"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
	Count      int                `json:"count"`
	Recipes    []recipe.AuthorRef `json:"recipes"`
}

// ListRecipes fetches one listing page.
func (s *Service) ListRecipes(ctx context.Context, opts ListOptions) (RecipePage, error) {
	if s.Source == nil {
		return RecipePage{}, ErrNoSource
	}
	q, err := opts.Query()
	if err != nil {
		return RecipePage{}, err
	}
	page, err := s.Source.Recipes(ctx, q.Params())
	if err != nil {
		return RecipePage{}, err
	}
	recipes := page.Recipes
	if recipes == nil {
		recipes = []recipe.Summary{}
	}
	return RecipePage{
		Page:        q.Page,
		TotalPages:  browse.PageCount(page.TotalCount, s.PageSize),
		TotalCount:  page.TotalCount,
		Sort:        string(q.Sort),
		Order:       string(q.Direction),
		Search:      q.Search,
		Ingredients: q.Filters.Values(),
		Recipes:     recipes,
	}, nil
}

// Recipe fetches one recipe's details.
func (s *Service) Recipe(ctx context.Context, id string) (recipe.Detail, error) {
	if s.Source == nil {
		return recipe.Detail{}, ErrNoSource
	}
	return s.Source.Recipe(ctx, strings.TrimSpace(id))
}

// AuthorRecipes fetches the author's count and one page of recipes
// concurrently.
func (s *Service) AuthorRecipes(ctx context.Context, author string, page int) (AuthorPage, error) {
	if s.Source == nil {
		return AuthorPage{}, ErrNoSource
	}
	author = strings.TrimSpace(author)
	out := AuthorPage{Author: author, Page: browse.ClampPage(page, 0)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.Source.AuthorCount(gctx, author)
		out.Count = n
		return err
	})
	g.Go(func() error {
		refs, err := s.Source.AuthorRecipes(gctx, author, out.Page)
		out.Recipes = refs
		return err
	})
	if err := g.Wait(); err != nil {
		return AuthorPage{}, err
	}
	if out.Recipes == nil {
		out.Recipes = []recipe.AuthorRef{}
	}
	out.TotalPages = browse.PageCount(out.Count, s.AuthorPageSize)
	return out, nil
}

// TopLists fetches the three leaderboards concurrently.
func (s *Service) TopLists(ctx context.Context) (recipe.Leaderboards, error) {
	if s.Source == nil {
		return recipe.Leaderboards{}, ErrNoSource
	}
	var l recipe.Leaderboards
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		l.Ingredients, err = s.Source.TopIngredients(gctx)
		return err
	})
	g.Go(func() (err error) {
		l.Authors, err = s.Source.TopAuthors(gctx)
		return err
	})
	g.Go(func() (err error) {
		l.Complex, err = s.Source.TopComplex(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return recipe.Leaderboards{}, err
	}
	return l, nil
}

// Ingredients fetches the filter vocabulary.
func (s *Service) Ingredients(ctx context.Context) ([]recipe.IngredientOption, error) {
	if s.Source == nil {
		return nil, ErrNoSource
	}
	return s.Source.Ingredients(ctx)
}

// Count fetches the catalog size.
func (s *Service) Count(ctx context.Context) (int, error) {
	if s.Source == nil {
		return 0, ErrNoSource
	}
	return s.Source.RecipeCount(ctx)
}
