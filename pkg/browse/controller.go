// Package browse keeps the recipe listing, the author drill-down and the
// details view consistent with the query state that drives them.
//
// Operations mutate state synchronously and return a tea.Cmd that performs
// the fetch. The caller runs the command (the bubbletea runtime does this on
// its own goroutines) and hands the resulting message back to Apply, which
// is the only place view data changes.
package browse

import (
	"context"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/glossary/pkg/logging"
	"tableflip.dev/glossary/pkg/recipe"
)

// DefaultPageSize matches the service's listing page size.
const DefaultPageSize = 10

// Source is the read-only recipe service.
type Source interface {
	Recipes(ctx context.Context, params url.Values) (recipe.Page, error)
	RecipeCount(ctx context.Context) (int, error)
	Recipe(ctx context.Context, id string) (recipe.Detail, error)
	AuthorRecipes(ctx context.Context, author string, page int) ([]recipe.AuthorRef, error)
	AuthorCount(ctx context.Context, author string) (int, error)
	TopIngredients(ctx context.Context) ([]recipe.CommonIngredient, error)
	TopAuthors(ctx context.Context) ([]recipe.ProlificAuthor, error)
	TopComplex(ctx context.Context) ([]recipe.Summary, error)
	Ingredients(ctx context.Context) ([]recipe.IngredientOption, error)
}

// Policy decides what happens when responses for one field arrive out of
// order.
type Policy int

const (
	// LastArrived applies every successful response, so the last one to
	// arrive wins even if it answers an older request.
	LastArrived Policy = iota
	// LatestIssued drops responses older than the newest one already
	// applied for the same field.
	LatestIssued
)

// Modal is the overlay currently open. At most one is open at a time.
type Modal int

const (
	ModalNone Modal = iota
	ModalRecipe
	ModalAuthor
)

// Options tunes a Controller. Zero values pick defaults.
type Options struct {
	PageSize       int
	AuthorPageSize int
	Policy         Policy
	Logger         *logging.Logger
	// Context bounds every fetch; defaults to context.Background().
	Context context.Context
}

// Controller owns the listing and author queries and the view data they
// produce. It is not safe for concurrent use; drive it from one goroutine.
type Controller struct {
	src            Source
	ctx            context.Context
	log            *logging.Logger
	pageSize       int
	authorPageSize int
	policy         Policy

	query         ListingQuery
	pendingSearch string
	author        AuthorListingQuery
	modal         Modal
	detailID      string

	issued  [fieldCount]uint64
	applied [fieldCount]uint64

	view View
}

// New returns a controller with the default listing query.
func New(src Source, opts Options) *Controller {
	c := &Controller{
		src:            src,
		ctx:            opts.Context,
		log:            opts.Logger.Or(),
		pageSize:       opts.PageSize,
		authorPageSize: opts.AuthorPageSize,
		policy:         opts.Policy,
		query:          DefaultListingQuery(),
		author:         AuthorListingQuery{Page: 1},
		view:           View{Errors: map[Field]error{}},
	}
	if c.ctx == nil {
		c.ctx = context.Background()
	}
	if c.pageSize <= 0 {
		c.pageSize = DefaultPageSize
	}
	if c.authorPageSize <= 0 {
		c.authorPageSize = c.pageSize
	}
	return c
}

// Query returns a copy of the current listing query.
func (c *Controller) Query() ListingQuery { return c.query.Clone() }

// PendingSearch is the search text typed but not yet submitted.
func (c *Controller) PendingSearch() string { return c.pendingSearch }

// Author returns the current author query.
func (c *Controller) Author() AuthorListingQuery { return c.author }

// Modal returns the open overlay.
func (c *Controller) Modal() Modal { return c.modal }

// DetailID is the recipe most recently requested for the details view.
func (c *Controller) DetailID() string { return c.detailID }

// PageSize is the listing page size.
func (c *Controller) PageSize() int { return c.pageSize }

// AuthorPageSize is the author listing page size.
func (c *Controller) AuthorPageSize() int { return c.authorPageSize }

// View returns the current view data.
func (c *Controller) View() View {
	v := c.view
	v.Errors = make(map[Field]error, len(c.view.Errors))
	for f, err := range c.view.Errors {
		v.Errors[f] = err
	}
	return v
}

// TotalPages is derived from the listing's total count, falling back to the
// catalog count until the first listing has arrived.
func (c *Controller) TotalPages() int {
	total := c.view.Count
	if c.view.Listed {
		total = c.view.TotalCount
	}
	return PageCount(total, c.pageSize)
}

// AuthorPages is derived from the current author's recipe count.
func (c *Controller) AuthorPages() int {
	if c.view.AuthorCountOf != c.author.Author {
		return 0
	}
	return PageCount(c.view.AuthorCount, c.authorPageSize)
}

// Init issues the initial load. The fetches are independent and may land in
// any order.
func (c *Controller) Init() tea.Cmd {
	return tea.Batch(
		c.fetchCount(),
		c.fetchRecipes(),
		c.fetchTopIngredients(),
		c.fetchTopAuthors(),
		c.fetchTopComplex(),
		c.fetchIngredients(),
	)
}

// SetSort sorts by field. Choosing the current field flips the direction;
// a new field starts ascending. The page resets to 1.
func (c *Controller) SetSort(field SortField) tea.Cmd {
	if field == "" {
		field = SortName
	}
	if field == c.query.Sort {
		c.query.Direction = c.query.Direction.Flip()
	} else {
		c.query.Sort = field
		c.query.Direction = Ascending
	}
	c.query.Page = 1
	return c.fetchRecipes()
}

// SetSearchText records text as the pending search. Clearing the search
// takes effect at once; any other text waits for SubmitSearch.
func (c *Controller) SetSearchText(text string) tea.Cmd {
	c.pendingSearch = text
	if strings.TrimSpace(text) != "" {
		return nil
	}
	return c.commitSearch()
}

// CancelSearch drops the pending text, restoring the committed search.
func (c *Controller) CancelSearch() {
	c.pendingSearch = c.query.Search
}

// SubmitSearch commits the pending search and resets the page to 1.
func (c *Controller) SubmitSearch() tea.Cmd {
	return c.commitSearch()
}

func (c *Controller) commitSearch() tea.Cmd {
	c.query.Search = strings.TrimSpace(c.pendingSearch)
	c.query.Page = 1
	return c.fetchRecipes()
}

// ToggleIngredientFilter adds or removes an ingredient filter and resets
// the page to 1.
func (c *Controller) ToggleIngredientFilter(name string) tea.Cmd {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	c.query.Filters.Toggle(name)
	c.query.Page = 1
	return c.fetchRecipes()
}

// SetPage moves the listing to page n, clamped to [1, TotalPages()]. Before
// any total has arrived only the lower bound applies; a known total of zero
// pins the page to 1.
func (c *Controller) SetPage(n int) tea.Cmd {
	pages := c.TotalPages()
	if pages == 0 && (c.view.Listed || c.applied[FieldCount] > 0) {
		pages = 1
	}
	c.query.Page = ClampPage(n, pages)
	return c.fetchRecipes()
}

// OpenAuthor opens the author drill-down on its first page, closing the
// details view. The count and the first page are fetched concurrently.
func (c *Controller) OpenAuthor(name string) tea.Cmd {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	c.author = AuthorListingQuery{Author: name, Page: 1}
	c.modal = ModalAuthor
	return tea.Batch(c.fetchAuthorCount(), c.fetchAuthorRecipes())
}

// SetAuthorPage moves the author listing to page n, clamped to
// [1, AuthorPages()].
func (c *Controller) SetAuthorPage(n int) tea.Cmd {
	if c.author.Author == "" {
		return nil
	}
	pages := c.AuthorPages()
	if pages == 0 && c.view.AuthorCountOf == c.author.Author {
		pages = 1
	}
	c.author.Page = ClampPage(n, pages)
	return c.fetchAuthorRecipes()
}

// CloseAuthorModal closes the drill-down and resets it to page 1. The first
// page is fetched again right away so a reopen shows it; this duplicates the
// fetch OpenAuthor will make.
func (c *Controller) CloseAuthorModal() tea.Cmd {
	if c.modal == ModalAuthor {
		c.modal = ModalNone
	}
	c.author.Page = 1
	if c.author.Author == "" {
		return nil
	}
	c.log.Debugf("browse: refetching page 1 for %q after closing the author view", c.author.Author)
	return c.fetchAuthorRecipes()
}

// OpenRecipeDetail opens the details view for id, closing the author
// drill-down.
func (c *Controller) OpenRecipeDetail(id string) tea.Cmd {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	c.detailID = id
	c.modal = ModalRecipe
	return c.fetchDetail(id)
}

// CloseRecipeDetail closes the details view.
func (c *Controller) CloseRecipeDetail() {
	if c.modal == ModalRecipe {
		c.modal = ModalNone
	}
}

// Apply folds a fetch result into the view. It reports whether msg belonged
// to the controller.
func (c *Controller) Apply(msg tea.Msg) bool {
	r, ok := msg.(result)
	if !ok {
		return false
	}
	f := r.fetch()
	if f.Field < 0 || f.Field >= fieldCount {
		return false
	}
	if c.policy == LatestIssued && f.Seq < c.applied[f.Field] {
		c.log.Debugf("browse: dropping stale %s response #%d (have #%d)", f.Field, f.Seq, c.applied[f.Field])
		return true
	}

	if failed, ok := msg.(FetchFailedMsg); ok {
		c.log.Printf("browse: fetching %s failed: %v", f.Field, failed.Err)
		if f.Seq < c.applied[f.Field] {
			// Newer data is already shown.
			return true
		}
		c.view.Errors[f.Field] = failed.Err
		return true
	}
	if f.Seq > c.applied[f.Field] {
		c.applied[f.Field] = f.Seq
	}
	delete(c.view.Errors, f.Field)

	switch m := msg.(type) {
	case CountLoadedMsg:
		c.view.Count = m.Count
	case RecipesLoadedMsg:
		c.view.Recipes = m.Page.Recipes
		c.view.TotalCount = m.Page.TotalCount
		c.view.Listed = true
		c.view.ListedQuery = m.Query
	case DetailLoadedMsg:
		c.view.Detail = m.Detail
	case AuthorCountLoadedMsg:
		c.view.AuthorCount = m.Count
		c.view.AuthorCountOf = m.Author
	case AuthorRecipesLoadedMsg:
		c.view.AuthorRecipes = m.Recipes
		c.view.AuthorQuery = m.Query
	case TopIngredientsLoadedMsg:
		c.view.TopIngredients = m.Items
	case TopAuthorsLoadedMsg:
		c.view.TopAuthors = m.Items
	case TopComplexLoadedMsg:
		c.view.TopComplex = m.Items
	case IngredientsLoadedMsg:
		c.view.Ingredients = m.Items
	}
	return true
}

func (c *Controller) issue(f Field) Fetch {
	c.issued[f]++
	return Fetch{Field: f, Seq: c.issued[f]}
}

func (c *Controller) fetchCount() tea.Cmd {
	ref := c.issue(FieldCount)
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		n, err := src.RecipeCount(ctx)
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return CountLoadedMsg{Fetch: ref, Count: n}
	}
}

func (c *Controller) fetchRecipes() tea.Cmd {
	ref := c.issue(FieldRecipes)
	q := c.query.Clone()
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		page, err := src.Recipes(ctx, q.Params())
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return RecipesLoadedMsg{Fetch: ref, Query: q, Page: page}
	}
}

func (c *Controller) fetchDetail(id string) tea.Cmd {
	ref := c.issue(FieldDetail)
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		d, err := src.Recipe(ctx, id)
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return DetailLoadedMsg{Fetch: ref, Detail: d}
	}
}

func (c *Controller) fetchAuthorCount() tea.Cmd {
	ref := c.issue(FieldAuthorCount)
	author := c.author.Author
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		n, err := src.AuthorCount(ctx, author)
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return AuthorCountLoadedMsg{Fetch: ref, Author: author, Count: n}
	}
}

func (c *Controller) fetchAuthorRecipes() tea.Cmd {
	ref := c.issue(FieldAuthorRecipes)
	q := c.author
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		refs, err := src.AuthorRecipes(ctx, q.Author, q.Page)
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return AuthorRecipesLoadedMsg{Fetch: ref, Query: q, Recipes: refs}
	}
}

func (c *Controller) fetchTopIngredients() tea.Cmd {
	ref := c.issue(FieldTopIngredients)
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		items, err := src.TopIngredients(ctx)
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return TopIngredientsLoadedMsg{Fetch: ref, Items: items}
	}
}

func (c *Controller) fetchTopAuthors() tea.Cmd {
	ref := c.issue(FieldTopAuthors)
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		items, err := src.TopAuthors(ctx)
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return TopAuthorsLoadedMsg{Fetch: ref, Items: items}
	}
}

func (c *Controller) fetchTopComplex() tea.Cmd {
	ref := c.issue(FieldTopComplex)
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		items, err := src.TopComplex(ctx)
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return TopComplexLoadedMsg{Fetch: ref, Items: items}
	}
}

func (c *Controller) fetchIngredients() tea.Cmd {
	ref := c.issue(FieldIngredients)
	src, ctx := c.src, c.ctx
	return func() tea.Msg {
		items, err := src.Ingredients(ctx)
		if err != nil {
			return FetchFailedMsg{Fetch: ref, Err: err}
		}
		return IngredientsLoadedMsg{Fetch: ref, Items: items}
	}
}
