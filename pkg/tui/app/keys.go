package teaui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/glossary/pkg/browse"
	"tableflip.dev/glossary/pkg/recipe"
	"tableflip.dev/glossary/pkg/tui/components/help"
)

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if msg.String() == "ctrl+c" {
		*cmds = append(*cmds, tea.Quit)
		return
	}
	switch m.mode {
	case modeSearch:
		m.handleSearchKey(msg, cmds)
		return
	case modeFilter:
		m.handleFilterKey(msg, cmds)
		return
	case modeHelp:
		m.handleHelpKey(msg, cmds)
		return
	}
	switch m.ctrl.Modal() {
	case browse.ModalRecipe:
		m.handleDetailKey(msg, cmds)
	case browse.ModalAuthor:
		m.handleAuthorKey(msg, cmds)
	default:
		m.handleBrowseKey(msg, cmds)
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	v := m.ctrl.View()
	q := m.ctrl.Query()

	switch key := msg.String(); key {
	case "q":
		*cmds = append(*cmds, tea.Quit)
	case "j", "down":
		m.cursor = clamp(m.cursor+1, len(v.Recipes))
	case "k", "up":
		m.cursor = clamp(m.cursor-1, len(v.Recipes))
	case "enter":
		if row, ok := m.selected(v); ok {
			m.detailAuthor = row.AuthorName
			*cmds = append(*cmds, m.ctrl.OpenRecipeDetail(row.ID))
		}
	case "a":
		if row, ok := m.selected(v); ok {
			m.authorCursor = 0
			*cmds = append(*cmds, m.ctrl.OpenAuthor(row.AuthorName))
		}
	case "n", "right":
		m.cursor = 0
		*cmds = append(*cmds, m.ctrl.SetPage(q.Page+1))
	case "p", "left":
		m.cursor = 0
		*cmds = append(*cmds, m.ctrl.SetPage(q.Page-1))
	case "g":
		m.cursor = 0
		*cmds = append(*cmds, m.ctrl.SetPage(1))
	case "G":
		m.cursor = 0
		*cmds = append(*cmds, m.ctrl.SetPage(m.ctrl.TotalPages()))
	case "1", "2", "3", "4":
		m.cursor = 0
		*cmds = append(*cmds, m.ctrl.SetSort(browse.SortFields[key[0]-'1']))
	case "/":
		m.mode = modeSearch
		m.search.SetValue(q.Search)
		m.search.CursorEnd()
		*cmds = append(*cmds, m.search.Focus())
	case "f":
		m.mode = modeFilter
		m.filter.Reset()
		m.filterCursor = 0
		*cmds = append(*cmds, m.filter.Focus())
	case "r":
		*cmds = append(*cmds, m.ctrl.Init())
	case "?":
		m.mode = modeHelp
		if m.help == nil {
			m.help = help.New(m.termWidth, m.termHeight-2)
		}
	}
}

func (m *Model) selected(v browse.View) (recipe.Summary, bool) {
	if m.cursor < 0 || m.cursor >= len(v.Recipes) {
		return recipe.Summary{}, false
	}
	return v.Recipes[m.cursor], true
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.exitSearch()
		m.cursor = 0
		if cmd := m.ctrl.SetSearchText(m.search.Value()); cmd != nil {
			*cmds = append(*cmds, cmd)
			return
		}
		*cmds = append(*cmds, m.ctrl.SubmitSearch())
	case "esc":
		m.exitSearch()
		m.ctrl.CancelSearch()
		m.search.SetValue(m.ctrl.Query().Search)
	default:
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		*cmds = append(*cmds, cmd)
		if after := m.search.Value(); after != before {
			if fetch := m.ctrl.SetSearchText(after); fetch != nil {
				m.cursor = 0
				*cmds = append(*cmds, fetch)
			}
		}
	}
}

func (m *Model) exitSearch() {
	m.mode = modeBrowse
	m.search.Blur()
}

// filterOptions is the vocabulary narrowed by the picker's input.
func (m *Model) filterOptions() []string {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	items := m.ctrl.View().Ingredients
	out := make([]string, 0, len(items))
	for _, it := range items {
		if needle == "" || strings.Contains(strings.ToLower(it.Name), needle) {
			out = append(out, it.Name)
		}
	}
	return out
}

func (m *Model) handleFilterKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	opts := m.filterOptions()
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.filter.Blur()
	case "down", "ctrl+n":
		m.filterCursor = clamp(m.filterCursor+1, len(opts))
	case "up", "ctrl+p":
		m.filterCursor = clamp(m.filterCursor-1, len(opts))
	case "enter":
		if m.filterCursor < len(opts) {
			m.cursor = 0
			*cmds = append(*cmds, m.ctrl.ToggleIngredientFilter(opts[m.filterCursor]))
		}
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		*cmds = append(*cmds, cmd)
		m.filterCursor = clamp(m.filterCursor, len(m.filterOptions()))
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		m.mode = modeBrowse
	default:
		if m.help != nil {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) handleDetailKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	v := m.ctrl.View()
	switch key := msg.String(); key {
	case "esc", "q":
		m.ctrl.CloseRecipeDetail()
	case "a":
		if m.detailAuthor != "" {
			m.authorCursor = 0
			*cmds = append(*cmds, m.ctrl.OpenAuthor(m.detailAuthor))
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if v.Detail.ID == m.ctrl.DetailID() && i < len(v.Detail.SimilarRecipes) {
			m.detailAuthor = ""
			*cmds = append(*cmds, m.ctrl.OpenRecipeDetail(v.Detail.SimilarRecipes[i].ID))
		}
	}
}

func (m *Model) handleAuthorKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	v := m.ctrl.View()
	author := m.ctrl.Author()
	switch msg.String() {
	case "esc", "q":
		m.authorCursor = 0
		*cmds = append(*cmds, m.ctrl.CloseAuthorModal())
	case "j", "down":
		m.authorCursor = clamp(m.authorCursor+1, len(v.AuthorRecipes))
	case "k", "up":
		m.authorCursor = clamp(m.authorCursor-1, len(v.AuthorRecipes))
	case "n", "right":
		m.authorCursor = 0
		*cmds = append(*cmds, m.ctrl.SetAuthorPage(author.Page+1))
	case "p", "left":
		m.authorCursor = 0
		*cmds = append(*cmds, m.ctrl.SetAuthorPage(author.Page-1))
	case "enter":
		if m.authorCursor < len(v.AuthorRecipes) {
			m.detailAuthor = author.Author
			*cmds = append(*cmds, m.ctrl.OpenRecipeDetail(v.AuthorRecipes[m.authorCursor].ID))
		}
	}
}
