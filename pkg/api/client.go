// Package api is a client for the recipe catalog REST service. Every call is
// a read; nothing is cached or retried.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tableflip.dev/glossary/pkg/logging"
	"tableflip.dev/glossary/pkg/recipe"
)

const (
	DefaultTimeout = 15 * time.Second
	UserAgent      = "glossary/dev"
)

// Client talks to one recipe service. It is safe for concurrent use.
type Client struct {
	base      string
	http      *http.Client
	limiter   *rate.Limiter
	log       *logging.Logger
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRateLimit caps outbound requests at rps with the given burst. A zero
// rps leaves requests unthrottled.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets where request lines are written.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New returns a client rooted at baseURL, e.g. "https://host" or
// "https://host/prefix".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("api: parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api: base url %q must be http or https", baseURL)
	}
	c := &Client{
		base:      strings.TrimRight(u.String(), "/"),
		http:      &http.Client{Timeout: DefaultTimeout},
		log:       logging.Discard(),
		userAgent: UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the service root without a trailing slash.
func (c *Client) BaseURL() string { return c.base }

// Recipes fetches one listing page. params carries pageNumber, sortBy,
// sortOrder and the optional searchQuery and ingredientFilters.
func (c *Client) Recipes(ctx context.Context, params url.Values) (recipe.Page, error) {
	var page recipe.Page
	err := c.get(ctx, "recipes.list", "/Recipes", params, &page)
	return page, err
}

// RecipeCount returns the total number of recipes in the catalog.
func (c *Client) RecipeCount(ctx context.Context) (int, error) {
	var n int
	err := c.get(ctx, "recipes.count", "/Recipes/count", nil, &n)
	return n, err
}

// Recipe fetches the details of one recipe.
func (c *Client) Recipe(ctx context.Context, id string) (recipe.Detail, error) {
	var d recipe.Detail
	id = strings.TrimSpace(id)
	if id == "" {
		return d, ErrEmptyID
	}
	err := c.get(ctx, "recipes.detail", "/Recipes/id/"+url.PathEscape(id), nil, &d)
	return d, err
}

// AuthorRecipes fetches one page of an author's recipes. Pages start at 1.
func (c *Client) AuthorRecipes(ctx context.Context, author string, page int) ([]recipe.AuthorRef, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, ErrEmptyAuthor
	}
	if page < 1 {
		page = 1
	}
	var refs []recipe.AuthorRef
	err := c.get(ctx, "recipes.author", "/Recipes/"+url.PathEscape(author)+"/"+strconv.Itoa(page), nil, &refs)
	return refs, err
}

// AuthorCount returns how many recipes an author has.
func (c *Client) AuthorCount(ctx context.Context, author string) (int, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return 0, ErrEmptyAuthor
	}
	var n int
	err := c.get(ctx, "recipes.author_count", "/Recipes/count/"+url.PathEscape(author), nil, &n)
	return n, err
}

// TopIngredients returns the five most common ingredients.
func (c *Client) TopIngredients(ctx context.Context) ([]recipe.CommonIngredient, error) {
	var out []recipe.CommonIngredient
	err := c.get(ctx, "recipes.top_ingredients", "/Recipes/top-5-most-common-ingredients", nil, &out)
	return out, err
}

// TopAuthors returns the five most prolific authors.
func (c *Client) TopAuthors(ctx context.Context) ([]recipe.ProlificAuthor, error) {
	var out []recipe.ProlificAuthor
	err := c.get(ctx, "recipes.top_authors", "/Recipes/top-5-most-prolific-authors", nil, &out)
	return out, err
}

// TopComplex returns the five most complex recipes.
func (c *Client) TopComplex(ctx context.Context) ([]recipe.Summary, error) {
	var out []recipe.Summary
	err := c.get(ctx, "recipes.top_complex", "/Recipes/top-5-most-complex-recipes", nil, &out)
	return out, err
}

// Ingredients returns the full ingredient filter vocabulary.
func (c *Client) Ingredients(ctx context.Context) ([]recipe.IngredientOption, error) {
	var out []recipe.IngredientOption
	err := c.get(ctx, "ingredients", "/Ingredients", nil, &out)
	return out, err
}

// get is the single gateway for every outbound call. label names the
// endpoint in logs and errors.
func (c *Client) get(ctx context.Context, label, path string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: rate limiter: %w", label, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugf("api %s status=0 duration=%s err=%v", label, time.Since(start), err)
		return fmt.Errorf("%s: %w", label, err)
	}
	defer resp.Body.Close()
	c.log.Debugf("api %s %s status=%d duration=%s", label, req.URL.RequestURI(), resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Label: label, Code: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", label, err)
	}
	return nil
}
