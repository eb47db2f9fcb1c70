package teaui

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/glossary/pkg/browse"
	"tableflip.dev/glossary/pkg/logging"
	"tableflip.dev/glossary/pkg/recipe"
)

type fakeSource struct {
	mu       sync.Mutex
	fail     map[string]error
	listings []url.Values
	authors  []string
}

func (f *fakeSource) err(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail[name]
}

func (f *fakeSource) Recipes(_ context.Context, params url.Values) (recipe.Page, error) {
	if err := f.err("recipes"); err != nil {
		return recipe.Page{}, err
	}
	f.mu.Lock()
	f.listings = append(f.listings, params)
	f.mu.Unlock()
	page := params.Get("pageNumber")
	return recipe.Page{
		Recipes: []recipe.Summary{
			{ID: "r1", Name: "Tomato soup p" + page, AuthorName: "Jane Doe", IngredientCount: 7, SkillLevel: "Easy"},
			{ID: "r2", Name: "Beef Wellington", AuthorName: "Sam Roe", IngredientCount: 14, SkillLevel: "A challenge"},
		},
		TotalCount: 25,
	}, nil
}

func (f *fakeSource) RecipeCount(context.Context) (int, error) { return 25, f.err("count") }

func (f *fakeSource) Recipe(_ context.Context, id string) (recipe.Detail, error) {
	if err := f.err("detail"); err != nil {
		return recipe.Detail{}, err
	}
	return recipe.Detail{
		ID:              id,
		Name:            "Detail " + id,
		Description:     "A warming bowl of soup.",
		PreparationTime: 600,
		CookingTime:     3660,
		Ingredients:     []string{"tomato", "salt"},
		Keywords:        []string{"winter"},
		SimilarRecipes:  []recipe.Similar{{ID: "r9", Name: "Gazpacho", SimilarityScore: 0.5}},
	}, nil
}

func (f *fakeSource) AuthorRecipes(_ context.Context, author string, page int) ([]recipe.AuthorRef, error) {
	f.mu.Lock()
	f.authors = append(f.authors, author)
	f.mu.Unlock()
	return []recipe.AuthorRef{{ID: "a1", Name: author + " special"}}, nil
}

func (f *fakeSource) AuthorCount(context.Context, string) (int, error) { return 3, nil }

func (f *fakeSource) TopIngredients(context.Context) ([]recipe.CommonIngredient, error) {
	return []recipe.CommonIngredient{{Name: "salt", RecipeCount: 20}}, f.err("topIngredients")
}

func (f *fakeSource) TopAuthors(context.Context) ([]recipe.ProlificAuthor, error) {
	return []recipe.ProlificAuthor{{AuthorName: "Jane Doe", RecipeCount: 9}}, nil
}

func (f *fakeSource) TopComplex(context.Context) ([]recipe.Summary, error) {
	return []recipe.Summary{{ID: "c1", Name: "Croquembouche", IngredientCount: 30}}, nil
}

func (f *fakeSource) Ingredients(context.Context) ([]recipe.IngredientOption, error) {
	return []recipe.IngredientOption{{Name: "salt"}, {Name: "sage"}, {Name: "egg"}}, nil
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// runCmd returns the command's message, or nil when it blocks (cursor blink
// ticks and the like).
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func drain(t *testing.T, m *Model, cmds ...tea.Cmd) *Model {
	t.Helper()
	queue := append([]tea.Cmd(nil), cmds...)
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch v := runCmd(cmd).(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, []tea.Cmd(v)...)
		default:
			next, nextCmd := m.Update(v)
			m = assertModel(t, next)
			if nextCmd != nil {
				queue = append(queue, nextCmd)
			}
		}
	}
	return m
}

func assertModel(t *testing.T, model tea.Model) *Model {
	t.Helper()
	m, ok := model.(*Model)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return m
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Text: s, Code: r}
}

func press(t *testing.T, m *Model, keys ...string) *Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(key(k))
		m = drain(t, assertModel(t, next), cmd)
	}
	return m
}

func newLoadedModel(t *testing.T, src *fakeSource) *Model {
	t.Helper()
	if src.fail == nil {
		src.fail = map[string]error{}
	}
	ctrl := browse.New(src, browse.Options{PageSize: 10, Logger: logging.Discard()})
	m := New(ctrl)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = assertModel(t, next)
	return drain(t, m, m.Init())
}

func TestViewRendersListingAndLeaderboards(t *testing.T) {
	m := newLoadedModel(t, &fakeSource{})
	view := stripANSI(m.View())

	for _, want := range []string{
		"Recipe Glossary", "25 recipes",
		"Most common ingredients", "1. Salt (20)",
		"Most prolific authors", "Jane Doe (9)",
		"Croquembouche (30)",
		"1 Name ▲", "Tomato soup p1", "Beef Wellington", "A challenge",
		"page 1/3",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSortAndPageKeys(t *testing.T) {
	src := &fakeSource{}
	m := newLoadedModel(t, src)

	m = press(t, m, "2")
	if q := m.ctrl.Query(); q.Sort != browse.SortAuthor || q.Direction != browse.Ascending {
		t.Fatalf("unexpected query after 2: %+v", q)
	}
	m = press(t, m, "2")
	if q := m.ctrl.Query(); q.Direction != browse.Descending {
		t.Fatalf("second press should flip, got %+v", q)
	}
	if !strings.Contains(stripANSI(m.View()), "Author ▼") {
		t.Fatalf("heading should show the descending arrow")
	}

	m = press(t, m, "n", "n", "n")
	if got := m.ctrl.Query().Page; got != 3 {
		t.Fatalf("page = %d, want 3 (clamped)", got)
	}
	m = press(t, m, "g")
	if got := m.ctrl.Query().Page; got != 1 {
		t.Fatalf("page = %d after g, want 1", got)
	}
	m = press(t, m, "G")
	if got := m.ctrl.Query().Page; got != 3 {
		t.Fatalf("page = %d after G, want 3", got)
	}
	if !strings.Contains(stripANSI(m.View()), "Tomato soup p3") {
		t.Fatalf("listing should show page 3")
	}
}

func TestDetailModalOpenAndClose(t *testing.T) {
	m := newLoadedModel(t, &fakeSource{})
	m = press(t, m, "enter")

	if m.ctrl.Modal() != browse.ModalRecipe {
		t.Fatalf("detail should be open")
	}
	view := stripANSI(m.View())
	for _, want := range []string{"Detail r1", "by Jane Doe", "10 minutes", "1 hour and 1 minute", "Skill:", "Easy", "A warming bowl", "• tomato", "Winter", "1. Gazpacho (0.50)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("detail view missing %q:\n%s", want, view)
		}
	}

	m = press(t, m, "1")
	if m.ctrl.DetailID() != "r9" {
		t.Fatalf("similar recipe should open, got %q", m.ctrl.DetailID())
	}
	m = press(t, m, "esc")
	if m.ctrl.Modal() != browse.ModalNone {
		t.Fatalf("esc should close the detail")
	}
}

func TestAuthorModalFromRow(t *testing.T) {
	src := &fakeSource{}
	m := newLoadedModel(t, src)
	m = press(t, m, "down", "a")

	if m.ctrl.Modal() != browse.ModalAuthor || m.ctrl.Author().Author != "Sam Roe" {
		t.Fatalf("author modal not open for Sam Roe: %v %+v", m.ctrl.Modal(), m.ctrl.Author())
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Sam Roe special") || !strings.Contains(view, "3 recipes") {
		t.Fatalf("author view:\n%s", view)
	}

	m = press(t, m, "enter")
	if m.ctrl.Modal() != browse.ModalRecipe || m.ctrl.DetailID() != "a1" {
		t.Fatalf("enter should open the recipe from the author list")
	}
	m = press(t, m, "a")
	if m.ctrl.Modal() != browse.ModalAuthor {
		t.Fatalf("a in the detail should reopen the author")
	}
	calls := len(src.authors)
	m = press(t, m, "esc")
	if m.ctrl.Modal() != browse.ModalNone {
		t.Fatalf("esc should close the author modal")
	}
	if len(src.authors) != calls+1 {
		t.Fatalf("closing should refetch the first author page")
	}
}

func TestSearchSubmitAndClear(t *testing.T) {
	src := &fakeSource{}
	m := newLoadedModel(t, src)

	m = press(t, m, "/", "s", "o", "u", "p")
	if m.ctrl.Query().Search != "" {
		t.Fatalf("search should wait for enter")
	}
	m = press(t, m, "enter")
	if got := m.ctrl.Query().Search; got != "soup" {
		t.Fatalf("search = %q, want soup", got)
	}
	if !strings.Contains(stripANSI(m.View()), `search: "soup"`) {
		t.Fatalf("footer should show the search")
	}

	m = press(t, m, "/")
	for i := 0; i < 4; i++ {
		next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
		m = drain(t, assertModel(t, next), cmd)
	}
	if got := m.ctrl.Query().Search; got != "" {
		t.Fatalf("clearing the box should commit at once, got %q", got)
	}
	m = press(t, m, "esc")
	if m.mode != modeBrowse {
		t.Fatalf("esc should leave search mode")
	}
}

func TestSearchEscDiscardsTypedText(t *testing.T) {
	src := &fakeSource{}
	m := newLoadedModel(t, src)

	m = press(t, m, "/", "s", "o", "u", "p", "enter")
	m = press(t, m, "/", "x", "esc")
	if m.mode != modeBrowse {
		t.Fatalf("esc should leave search mode")
	}
	if got := m.ctrl.PendingSearch(); got != "soup" {
		t.Fatalf("pending search = %q, want soup", got)
	}
	if got := m.search.Value(); got != "soup" {
		t.Fatalf("search box = %q, want soup", got)
	}
	if got := m.ctrl.Query().Search; got != "soup" {
		t.Fatalf("search = %q, want soup", got)
	}
}

func TestFilterPickerTogglesIngredient(t *testing.T) {
	src := &fakeSource{}
	m := newLoadedModel(t, src)

	m = press(t, m, "f", "s", "a")
	view := stripANSI(m.View())
	if !strings.Contains(view, "[ ] salt") || !strings.Contains(view, "[ ] sage") || strings.Contains(view, "egg") {
		t.Fatalf("picker should narrow to sa*:\n%s", view)
	}
	m = press(t, m, "down", "enter")
	if got := m.ctrl.Query().Filters.Values(); len(got) != 1 || got[0] != "sage" {
		t.Fatalf("filters = %v, want [sage]", got)
	}
	if !strings.Contains(stripANSI(m.View()), "[x] sage") {
		t.Fatalf("picker should mark sage")
	}
	m = press(t, m, "esc")
	if !strings.Contains(stripANSI(m.View()), "filters: sage") {
		t.Fatalf("footer should list the filter")
	}
}

func TestFailedRefreshShowsStatus(t *testing.T) {
	src := &fakeSource{}
	m := newLoadedModel(t, src)

	src.mu.Lock()
	src.fail["recipes"] = errors.New("service down")
	src.mu.Unlock()
	m = press(t, m, "n")

	view := stripANSI(m.View())
	if !strings.Contains(view, "failed to refresh recipes: service down") {
		t.Fatalf("missing failure status:\n%s", view)
	}
	if !strings.Contains(view, "Tomato soup p1") {
		t.Fatalf("previous rows should stay on screen")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newLoadedModel(t, &fakeSource{})
	m = press(t, m, "?")
	if m.mode != modeHelp {
		t.Fatalf("? should open help")
	}
	m = press(t, m, "?")
	if m.mode != modeBrowse {
		t.Fatalf("? should close help")
	}
}

func TestQuitKey(t *testing.T) {
	m := newLoadedModel(t, &fakeSource{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("q should return a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok && len(batch) == 1 {
		msg = batch[0]()
	}
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("q should quit, got %T", msg)
	}
}
