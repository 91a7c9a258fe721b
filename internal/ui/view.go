package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each tab and each overlay is a View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// FocusView is a View with focusable controls. InsertMode reports whether a
// text field currently owns the keyboard, in which case plain keys are typed
// rather than treated as shortcuts.
type FocusView interface {
	View
	InsertMode() bool
	Blur()
}
