// Package teaui hosts the Bubble Tea program for the recipe browser.
package teaui

import (
	"context"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/glossary/pkg/browse"
	"tableflip.dev/glossary/pkg/tui/components/help"
	"tableflip.dev/glossary/pkg/tui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeFilter
	modeHelp
)

// Model is the recipe browser. All catalog state lives in the controller;
// the model only tracks cursors, input widgets and layout.
type Model struct {
	ctrl *browse.Controller
	mode mode

	cursor       int
	authorCursor int
	filterCursor int

	search textinput.Model
	filter textinput.Model
	help   *help.Model

	// detailAuthor is the author of the recipe in the details view, when it
	// is known from the row it was opened from.
	detailAuthor string

	termWidth  int
	termHeight int

	theme theme.Theme
}

// New builds the browser around ctrl.
func New(ctrl *browse.Controller) *Model {
	si := textinput.New()
	si.Placeholder = "search recipes"
	si.CharLimit = 256
	si.Prompt = "/ "
	si.VirtualCursor = true
	si.Styles.Cursor.Color = lipgloss.Color("212")
	si.Styles.Cursor.Shape = tea.CursorBlock

	fi := textinput.New()
	fi.Placeholder = "narrow ingredients"
	fi.CharLimit = 128
	fi.Prompt = "ingredient: "
	fi.VirtualCursor = true

	return &Model{
		ctrl:       ctrl,
		mode:       modeBrowse,
		search:     si,
		filter:     fi,
		termWidth:  100,
		termHeight: 32,
		theme:      theme.Default(),
	}
}

// Init loads the landing data.
func (m *Model) Init() tea.Cmd {
	return m.ctrl.Init()
}

// Update routes fetch results to the controller and keys to the active mode.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ctrl.Apply(msg) {
		m.clampCursors()
		return m, nil
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.help != nil {
			m.help.SetSize(m.termWidth, m.termHeight-2)
		}
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	default:
		if m.mode == modeHelp && m.help != nil {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, ctrl *browse.Controller) error {
	p := tea.NewProgram(New(ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) clampCursors() {
	v := m.ctrl.View()
	m.cursor = clamp(m.cursor, len(v.Recipes))
	m.authorCursor = clamp(m.authorCursor, len(v.AuthorRecipes))
	m.filterCursor = clamp(m.filterCursor, len(m.filterOptions()))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
