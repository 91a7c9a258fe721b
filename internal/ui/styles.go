package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "39"  // Blue - active tab, primary buttons, counter
	ColorHighlight = "205" // Magenta - focused control, selected todo
	ColorDanger    = "196" // Red - delete hints
	ColorMuted     = "241" // Gray - hints, inactive tabs
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - secondary text
	ColorSecondary = "245" // Gray - secondary buttons
)

// Styles contains shared style definitions used across views and overlays.
var Styles = struct {
	Title     lipgloss.Style // Screen title ("Welcome Home!")
	CardTitle lipgloss.Style // Card heading
	Card      lipgloss.Style // Rounded card around a group of controls
	HelpBox   lipgloss.Style // Leader help bar

	Button          lipgloss.Style // Primary button
	ButtonSecondary lipgloss.Style // Secondary button (Clear)
	ButtonFocused   lipgloss.Style // Any button with focus

	Count   lipgloss.Style // Big counter number
	Time    lipgloss.Style // Clock text
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Hint    lipgloss.Style
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Danger  lipgloss.Style
	Profile lipgloss.Style // Profile name

	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Alert      lipgloss.Style
	AlertTitle lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		MarginBottom(1),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	ButtonSecondary: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorSecondary)).
		Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Count: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Time: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Profile: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	TabBar: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(ColorDim)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Alert: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	AlertTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		PaddingLeft(1)
	d.Styles.NormalTitle = Styles.Normal.PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle
	d.Styles.NormalDesc = d.Styles.NormalTitle
	return d
}

// renderButton draws a button label, highlighted when focused.
func renderButton(label string, focused, secondary bool) string {
	switch {
	case focused:
		return Styles.ButtonFocused.Render(label)
	case secondary:
		return Styles.ButtonSecondary.Render(label)
	default:
		return Styles.Button.Render(label)
	}
}

// renderCard draws a titled card of the given outer width.
func renderCard(title, body string, width int) string {
	style := Styles.Card
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}
	return style.Render(Styles.CardTitle.Render(title) + "\n" + body)
}
