package ui

import (
	"time"

	"tabdemo/internal/viewstate"
)

// SelectTabMsg makes Tab the active tab (1/2/3, F1-F3, SPC t h|p|s, tab bar click).
type SelectTabMsg struct {
	Tab viewstate.Tab
}

// CycleTabMsg moves to the next (Delta > 0) or previous tab, wrapping (left/right).
type CycleTabMsg struct {
	Delta int
}

// IncrementMsg adds one to the counter (Increment button, +, SPC c i).
type IncrementMsg struct{}

// ClearInputMsg empties the Home text field (Clear button).
type ClearInputMsg struct{}

// ShowCountMsg opens the "Current count" alert (View Count button).
type ShowCountMsg struct{}

// ShowInputMsg opens the "You typed" alert (Show Input button).
type ShowInputMsg struct{}

// ShowTimeMsg opens the "Current Time" alert (Show Time button).
type ShowTimeMsg struct{}

// AddTodoMsg submits the pending todo text (Enter in the todo field, Add button).
type AddTodoMsg struct{}

// RemoveTodoMsg deletes the todo at Index (d/x on a selected entry).
type RemoveTodoMsg struct {
	Index int
}

// ShowAlertMsg pushes an alert overlay.
type ShowAlertMsg struct {
	Title string
	Body  string
}

// DismissModalMsg closes the top overlay (Enter or Esc in an alert).
type DismissModalMsg struct{}

// ClockTickMsg carries one clock refresh from the ticker goroutine.
type ClockTickMsg struct {
	Time       time.Time
	Text       string
	Generation int
}
