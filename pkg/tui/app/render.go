package teaui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/glossary/pkg/browse"
	"tableflip.dev/glossary/pkg/recipe"
	"tableflip.dev/glossary/pkg/timeutil"
)

const boardRows = 5

// View renders the header, the body for the current mode or modal and the
// footer.
func (m *Model) View() string {
	v := m.ctrl.View()
	sections := []string{m.renderHeader(v)}

	switch {
	case m.mode == modeHelp && m.help != nil:
		sections = append(sections, m.help.View())
	case m.mode == modeFilter:
		sections = append(sections, m.renderFilterPicker(v))
	case m.ctrl.Modal() == browse.ModalRecipe:
		sections = append(sections, m.renderDetail(v))
	case m.ctrl.Modal() == browse.ModalAuthor:
		sections = append(sections, m.renderAuthor(v))
	default:
		sections = append(sections, m.renderTable(v))
	}

	sections = append(sections, m.renderFooter(v))
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHeader(v browse.View) string {
	th := m.theme.Header
	title := th.Title.Render("Recipe Glossary")
	if v.Count > 0 {
		title += th.Count.Render(fmt.Sprintf("  %s recipes", humanize.Comma(int64(v.Count))))
	}

	colWidth := max((m.termWidth-4)/3, 16)

	ingredients := make([]string, 0, len(v.TopIngredients))
	for _, it := range v.TopIngredients {
		ingredients = append(ingredients, fmt.Sprintf("%s (%d)", recipe.CapitalizeFirst(it.Name), it.RecipeCount))
	}
	authors := make([]string, 0, len(v.TopAuthors))
	for _, a := range v.TopAuthors {
		authors = append(authors, fmt.Sprintf("%s (%d)", a.AuthorName, a.RecipeCount))
	}
	hardest := make([]string, 0, len(v.TopComplex))
	for _, r := range v.TopComplex {
		hardest = append(hardest, fmt.Sprintf("%s (%d)", r.Name, r.IngredientCount))
	}

	boards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderBoard("Most common ingredients", ingredients, v.Err(browse.FieldTopIngredients), colWidth),
		"  ",
		m.renderBoard("Most prolific authors", authors, v.Err(browse.FieldTopAuthors), colWidth),
		"  ",
		m.renderBoard("Most complex recipes", hardest, v.Err(browse.FieldTopComplex), colWidth),
	)
	return title + "\n\n" + boards
}

func (m *Model) renderBoard(title string, rows []string, err error, width int) string {
	th := m.theme.Header
	lines := []string{th.BoardTitle.Render(truncate.StringWithTail(title, uint(width), "…"))}
	if len(rows) == 0 {
		msg := "loading…"
		if err != nil {
			msg = "unavailable"
		}
		lines = append(lines, th.BoardMuted.Render(msg))
	}
	for i, row := range rows {
		if i == boardRows {
			break
		}
		line := fmt.Sprintf("%d. %s", i+1, row)
		lines = append(lines, th.BoardRow.Render(truncate.StringWithTail(line, uint(width), "…")))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

type column struct {
	field browse.SortField
	width int
}

func (m *Model) columns() []column {
	ingr, skill := 12, 13
	rest := max(m.termWidth-ingr-skill-6, 20)
	name := rest * 3 / 5
	return []column{
		{browse.SortName, name},
		{browse.SortAuthor, rest - name},
		{browse.SortIngredients, ingr},
		{browse.SortSkill, skill},
	}
}

func cell(s string, width int) string {
	return padding.String(truncate.StringWithTail(s, uint(width), "…"), uint(width))
}

func (m *Model) renderTable(v browse.View) string {
	th := m.theme.Table
	q := m.ctrl.Query()
	cols := m.columns()

	heads := make([]string, 0, len(cols))
	for i, c := range cols {
		label := fmt.Sprintf("%d %s", i+1, c.field.Label())
		style := th.Heading
		if c.field == q.Sort {
			label += " " + q.Direction.Arrow()
			style = th.HeadingActive
		}
		heads = append(heads, style.Render(cell(label, c.width)))
	}
	lines := []string{strings.Join(heads, "  ")}

	if len(v.Recipes) == 0 {
		msg := "no recipes match"
		if !v.Listed {
			msg = "loading recipes…"
		}
		lines = append(lines, th.Empty.Render(msg))
		return strings.Join(lines, "\n")
	}

	for i, r := range v.Recipes {
		row := strings.Join([]string{
			cell(r.Name, cols[0].width),
			cell(r.AuthorName, cols[1].width),
			cell(strconv.Itoa(r.IngredientCount), cols[2].width),
			m.theme.Skill.For(recipe.SkillClass(r.SkillLevel)).Render(cell(r.SkillLevel, cols[3].width)),
		}, "  ")
		if i == m.cursor {
			row = th.Selected.Render(row)
		} else {
			row = th.Row.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter(v browse.View) string {
	th := m.theme.Footer
	q := m.ctrl.Query()

	pages := m.ctrl.TotalPages()
	status := []string{fmt.Sprintf("page %d/%d", q.Page, max(pages, 1))}
	if v.Listed {
		status = append(status, fmt.Sprintf("%s matches", humanize.Comma(int64(v.TotalCount))))
	}
	status = append(status, fmt.Sprintf("sort: %s %s", q.Sort.Label(), q.Direction.Arrow()))
	if q.Search != "" {
		status = append(status, fmt.Sprintf("search: %q", q.Search))
	}
	lines := []string{th.Status.Render(strings.Join(status, " · "))}
	if q.Filters.Len() > 0 {
		lines = append(lines, th.Filter.Render("filters: "+strings.Join(q.Filters.Values(), ", ")))
	}
	if m.mode == modeSearch {
		lines = append(lines, m.search.View())
	}
	if errs := failures(v); errs != "" {
		lines = append(lines, th.Error.Render(errs))
	}
	lines = append(lines, th.Help.Render(m.hint()))
	return strings.Join(lines, "\n")
}

func failures(v browse.View) string {
	if len(v.Errors) == 0 {
		return ""
	}
	fields := make([]browse.Field, 0, len(v.Errors))
	for f := range v.Errors {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("failed to refresh %s: %v", f, v.Errors[f]))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) hint() string {
	switch {
	case m.mode == modeSearch:
		return "enter search · esc cancel"
	case m.mode == modeFilter:
		return "type to narrow · ↑/↓ move · enter toggle · esc close"
	case m.mode == modeHelp:
		return "esc close help"
	case m.ctrl.Modal() == browse.ModalRecipe:
		return "1-9 similar recipe · a author · esc close"
	case m.ctrl.Modal() == browse.ModalAuthor:
		return "j/k move · n/p page · enter open · esc close"
	}
	return "j/k move · enter open · a author · n/p page · 1-4 sort · / search · f filter · ? help · q quit"
}

func (m *Model) modalWidth() int {
	return max(m.termWidth-4, 30)
}

func (m *Model) renderDetail(v browse.View) string {
	th := m.theme.Modal
	width := m.modalWidth()
	inner := max(width-th.Frame.GetHorizontalFrameSize(), 20)

	if err := v.Err(browse.FieldDetail); err != nil && v.Detail.ID != m.ctrl.DetailID() {
		return th.Frame.Width(width).Render(m.theme.Footer.Error.Render("failed to load recipe: " + err.Error()))
	}
	if v.Detail.ID != m.ctrl.DetailID() {
		return th.Frame.Width(width).Render(th.Subtitle.Render("loading recipe…"))
	}
	d := v.Detail

	lines := []string{th.Title.Render(d.Name)}
	if m.detailAuthor != "" {
		lines = append(lines, th.Subtitle.Render("by "+m.detailAuthor))
	}
	lines = append(lines, "",
		th.Label.Render("Preparation: ")+timeutil.FormatSeconds(d.PreparationTime),
		th.Label.Render("Cooking:     ")+timeutil.FormatSeconds(d.CookingTime),
	)
	if skill := m.skillFor(v, d.ID); skill != "" {
		lines = append(lines, th.Label.Render("Skill:       ")+m.theme.Skill.For(recipe.SkillClass(skill)).Render(skill))
	}
	if d.Description != "" {
		lines = append(lines, "", wordwrap.String(d.Description, inner))
	}

	lines = append(lines, "", th.Label.Render(fmt.Sprintf("Ingredients (%d)", len(d.Ingredients))))
	for _, ing := range d.Ingredients {
		lines = append(lines, "  • "+ing)
	}
	for _, group := range []struct {
		label  string
		values []string
	}{
		{"Collections", d.Collections},
		{"Keywords", d.Keywords},
		{"Diet types", d.DietTypes},
	} {
		if tags := recipe.Tags(group.values); len(tags) > 0 {
			lines = append(lines, "", th.Label.Render(group.label), wordwrap.String(strings.Join(tags, ", "), inner))
		}
	}

	if len(d.SimilarRecipes) > 0 {
		lines = append(lines, "", th.Label.Render("Similar recipes"))
		for i, s := range d.SimilarRecipes {
			if i == 9 {
				break
			}
			lines = append(lines, fmt.Sprintf("  %d. %s (%.2f)", i+1, s.Name, s.SimilarityScore))
		}
	}
	return th.Frame.Width(width).Render(strings.Join(lines, "\n"))
}

// skillFor finds the skill level for id among the rows on screen; the
// details payload does not carry it.
func (m *Model) skillFor(v browse.View, id string) string {
	for _, r := range v.Recipes {
		if r.ID == id {
			return r.SkillLevel
		}
	}
	for _, r := range v.TopComplex {
		if r.ID == id {
			return r.SkillLevel
		}
	}
	return ""
}

func (m *Model) renderAuthor(v browse.View) string {
	th := m.theme.Modal
	width := m.modalWidth()
	author := m.ctrl.Author()

	title := th.Title.Render(author.Author)
	if v.AuthorCountOf == author.Author {
		title += th.Subtitle.Render(fmt.Sprintf("  %s recipes", humanize.Comma(int64(v.AuthorCount))))
	}
	lines := []string{title, ""}

	switch {
	case v.AuthorQuery != author:
		if err := v.Err(browse.FieldAuthorRecipes); err != nil {
			lines = append(lines, m.theme.Footer.Error.Render("failed to load recipes: "+err.Error()))
		} else {
			lines = append(lines, th.Subtitle.Render("loading recipes…"))
		}
	case len(v.AuthorRecipes) == 0:
		lines = append(lines, th.Subtitle.Render("no recipes"))
	default:
		for i, r := range v.AuthorRecipes {
			line := truncate.StringWithTail(r.Name, uint(max(width-8, 10)), "…")
			if i == m.authorCursor {
				line = th.Selected.Render(line)
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, "", th.Label.Render(fmt.Sprintf("page %d/%d", author.Page, max(m.ctrl.AuthorPages(), 1))))
	return th.Frame.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFilterPicker(v browse.View) string {
	th := m.theme.Modal
	q := m.ctrl.Query()
	opts := m.filterOptions()

	lines := []string{th.Title.Render("Filter by ingredient"), m.filter.View(), ""}
	if len(v.Ingredients) == 0 {
		msg := "loading ingredients…"
		if err := v.Err(browse.FieldIngredients); err != nil {
			msg = "ingredients unavailable: " + err.Error()
		}
		lines = append(lines, th.Subtitle.Render(msg))
	} else if len(opts) == 0 {
		lines = append(lines, th.Subtitle.Render("no ingredient matches"))
	}

	visible := max(m.termHeight-20, 5)
	start := 0
	if m.filterCursor >= visible {
		start = m.filterCursor - visible + 1
	}
	for i := start; i < len(opts) && i < start+visible; i++ {
		mark := "[ ]"
		if q.Filters.Has(opts[i]) {
			mark = "[x]"
		}
		line := mark + " " + opts[i]
		if i == m.filterCursor {
			line = th.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	return th.Frame.Width(m.modalWidth()).Render(strings.Join(lines, "\n"))
}
