package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AlertModal shows a one-off message, the terminal stand-in for a native alert().
// Enter or Esc dismisses it.
type AlertModal struct {
	Title string
	Body  string
}

// Ensure AlertModal implements View.
var _ View = (*AlertModal)(nil)

// NewAlertModal creates an alert with the given title and body.
func NewAlertModal(title, body string) *AlertModal {
	return &AlertModal{Title: title, Body: body}
}

// Init implements View.
func (m *AlertModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AlertModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", " ":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *AlertModal) View() string {
	content := Styles.AlertTitle.Render(m.Title) + "\n\n"
	content += Styles.Normal.Render(m.Body)
	content += "\n\n" + Styles.Hint.Render("Enter/Esc: OK")
	return Styles.Alert.Render(content)
}
