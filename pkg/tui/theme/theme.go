package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Table  TableTheme
	Footer FooterTheme
	Modal  ModalTheme
	Skill  SkillTheme
}

// HeaderTheme styles the title bar and leaderboard columns.
type HeaderTheme struct {
	Title      lipgloss.Style
	Count      lipgloss.Style
	BoardTitle lipgloss.Style
	BoardRow   lipgloss.Style
	BoardMuted lipgloss.Style
}

// TableTheme styles the recipe listing.
type TableTheme struct {
	Heading       lipgloss.Style
	HeadingActive lipgloss.Style
	Row           lipgloss.Style
	Selected      lipgloss.Style
	Empty         lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Filter lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles the recipe and author overlays.
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
	Selected lipgloss.Style
}

// SkillTheme colors a skill level by its folded class name.
type SkillTheme struct {
	Easy       lipgloss.Style
	MoreEffort lipgloss.Style
	Challenge  lipgloss.Style
	Other      lipgloss.Style
}

// For picks the style for a class such as "Easy" or "Moreeffort".
func (s SkillTheme) For(class string) lipgloss.Style {
	switch strings.ToLower(class) {
	case "easy":
		return s.Easy
	case "moreeffort":
		return s.MoreEffort
	case "achallenge":
		return s.Challenge
	default:
		return s.Other
	}
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	heading := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Bold(true)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	return Theme{
		Header: HeaderTheme{
			Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Count:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			BoardTitle: lipgloss.NewStyle().Bold(true).Underline(true),
			BoardRow:   lipgloss.NewStyle(),
			BoardMuted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Table: TableTheme{
			Heading:       heading,
			HeadingActive: heading.Foreground(lipgloss.Color("212")),
			Row:           lipgloss.NewStyle(),
			Selected:      lipgloss.NewStyle().Reverse(true),
			Empty:         lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Modal: ModalTheme{
			Frame:    frame,
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Body:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Skill: SkillTheme{
			Easy:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			MoreEffort: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Challenge:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Other:      lipgloss.NewStyle(),
		},
	}
}
