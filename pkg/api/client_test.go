package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

type recorded struct {
	mu    sync.Mutex
	paths []string
	query []url.Values
}

func (r *recorded) add(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, req.URL.Path)
	r.query = append(r.query, req.URL.Query())
}

func newTestServer(t *testing.T, routes map[string]any) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if code, isCode := body.(int); isCode && code >= 400 {
			w.WriteHeader(code)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL + "/")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, rec
}

func TestRecipesSendsQueryAndDecodesPage(t *testing.T) {
	c, rec := newTestServer(t, map[string]any{
		"/Recipes": map[string]any{
			"recipes": []map[string]any{
				{"recipeId": "r1", "recipeName": "Soup", "authorName": "Jane Doe", "ingredientCount": 4, "skillLevel": "Easy"},
			},
			"totalCount": 45,
		},
	})

	params := url.Values{}
	params.Set("pageNumber", "2")
	params.Set("sortBy", "name")
	params.Set("sortOrder", "asc")
	params.Set("ingredientFilters", "salt,eggs")

	page, err := c.Recipes(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount != 45 || len(page.Recipes) != 1 {
		t.Fatalf("unexpected page %+v", page)
	}
	if got := page.Recipes[0]; got.ID != "r1" || got.AuthorName != "Jane Doe" || got.IngredientCount != 4 {
		t.Fatalf("unexpected summary %+v", got)
	}
	q := rec.query[0]
	if q.Get("pageNumber") != "2" || q.Get("ingredientFilters") != "salt,eggs" {
		t.Fatalf("unexpected query %v", q)
	}
}

func TestAuthorEndpointsEscapeNames(t *testing.T) {
	c, rec := newTestServer(t, map[string]any{
		"/Recipes/Jane Doe/3":                    []map[string]string{{"recipeId": "r9", "recipeName": "Pie"}},
		"/Recipes/count/Jane Doe":                12,
		"/Recipes/id/abc 123":                    map[string]any{"id": "abc 123", "name": "Pie", "cookingTime": 3600},
		"/Recipes/count":                         300,
		"/Ingredients":                           []map[string]string{{"name": "salt"}},
		"/Recipes/top-5-most-common-ingredients": []map[string]any{{"name": "salt", "recipeCount": 99}},
		"/Recipes/top-5-most-prolific-authors":   []map[string]any{{"authorName": "Jane Doe", "recipeCount": 12}},
		"/Recipes/top-5-most-complex-recipes":    []map[string]any{{"recipeId": "r2", "recipeName": "Cake", "ingredientCount": 30}},
	})
	ctx := context.Background()

	refs, err := c.AuthorRecipes(ctx, "Jane Doe", 3)
	if err != nil || len(refs) != 1 || refs[0].ID != "r9" {
		t.Fatalf("AuthorRecipes = %+v, %v", refs, err)
	}
	n, err := c.AuthorCount(ctx, "Jane Doe")
	if err != nil || n != 12 {
		t.Fatalf("AuthorCount = %d, %v", n, err)
	}
	d, err := c.Recipe(ctx, "abc 123")
	if err != nil || d.CookingTime != 3600 {
		t.Fatalf("Recipe = %+v, %v", d, err)
	}
	total, err := c.RecipeCount(ctx)
	if err != nil || total != 300 {
		t.Fatalf("RecipeCount = %d, %v", total, err)
	}
	ings, err := c.Ingredients(ctx)
	if err != nil || len(ings) != 1 || ings[0].Name != "salt" {
		t.Fatalf("Ingredients = %+v, %v", ings, err)
	}
	common, err := c.TopIngredients(ctx)
	if err != nil || common[0].RecipeCount != 99 {
		t.Fatalf("TopIngredients = %+v, %v", common, err)
	}
	authors, err := c.TopAuthors(ctx)
	if err != nil || authors[0].AuthorName != "Jane Doe" {
		t.Fatalf("TopAuthors = %+v, %v", authors, err)
	}
	complexRecipes, err := c.TopComplex(ctx)
	if err != nil || complexRecipes[0].IngredientCount != 30 {
		t.Fatalf("TopComplex = %+v, %v", complexRecipes, err)
	}

	if len(rec.paths) != 8 {
		t.Fatalf("expected 8 requests, got %d: %v", len(rec.paths), rec.paths)
	}
}

func TestStatusErrors(t *testing.T) {
	c, _ := newTestServer(t, map[string]any{
		"/Recipes/count": http.StatusInternalServerError,
	})
	ctx := context.Background()

	_, err := c.RecipeCount(ctx)
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Fatalf("expected StatusError 500, got %v", err)
	}
	if IsNotFound(err) {
		t.Fatalf("500 must not be reported as not found")
	}

	_, err = c.Recipe(ctx, "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestArgumentValidation(t *testing.T) {
	c, rec := newTestServer(t, nil)
	ctx := context.Background()

	if _, err := c.Recipe(ctx, "  "); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected ErrEmptyID, got %v", err)
	}
	if _, err := c.AuthorRecipes(ctx, "", 1); !errors.Is(err, ErrEmptyAuthor) {
		t.Fatalf("expected ErrEmptyAuthor, got %v", err)
	}
	if _, err := c.AuthorCount(ctx, ""); !errors.Is(err, ErrEmptyAuthor) {
		t.Fatalf("expected ErrEmptyAuthor, got %v", err)
	}
	if len(rec.paths) != 0 {
		t.Fatalf("invalid arguments must not reach the network, got %v", rec.paths)
	}
}

func TestDecodeErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithRateLimit(100, 1))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := c.RecipeCount(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	if _, err := New("localhost:5000"); err == nil {
		t.Fatalf("expected error for base url without scheme")
	}
	c, err := New("https://example.com/api/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BaseURL() != "https://example.com/api" {
		t.Fatalf("unexpected base %q", c.BaseURL())
	}
}

func TestCancelledContext(t *testing.T) {
	c, _ := newTestServer(t, map[string]any{"/Recipes/count": 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.RecipeCount(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
