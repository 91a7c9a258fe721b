package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tabdemo/internal/viewstate"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler already holds a partial sequence (e.g. "SPC t"), the
// next-level hints are shown instead.
func RenderKeybindHelp(keyHandler *KeyHandler, tab viewstate.Tab) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	km := NewKeyMap(keyHandler, tab)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	content := Styles.Hint.Render(leaderPrefix(keyHandler)) + " " + newHelpModel().ShortHelpView(bindings)
	return Styles.HelpBox.Render(content)
}

func leaderPrefix(h *KeyHandler) string {
	if len(h.Buffer) == 0 {
		return h.LeaderSeq
	}
	return strings.Join(h.Buffer, " ")
}

// footerBindings are the always-visible hints under the tab bar.
func footerBindings(mode AppMode) []key.Binding {
	switch mode {
	case ModeInsert:
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave field")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
			key.NewBinding(key.WithKeys("f1", "f2", "f3"), key.WithHelp("f1-f3", "tabs")),
		}
	case ModeAlert:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "close")),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "tabs")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
			key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		}
	}
}

// RenderFooter renders the one-line key hint bar for mode.
func RenderFooter(mode AppMode) string {
	return newHelpModel().ShortHelpView(footerBindings(mode))
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}
