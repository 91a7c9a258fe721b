// Package viewstate holds the in-memory state of the tabbed screen.
//
// A ViewState is created when the screen mounts and dropped when it unmounts.
// Every method runs to completion on the caller's goroutine; the UI event loop
// is the only caller, so there is no locking.
package viewstate

import (
	"fmt"
	"strings"
)

// ViewState is the state container for one mounted screen.
type ViewState struct {
	active      Tab
	counter     int
	input       string
	todos       []string
	pendingTodo string
	clock       string
}

// New returns a ViewState with Home active and everything else empty.
func New() *ViewState {
	return &ViewState{active: TabHome}
}

// ActiveTab returns the tab currently displayed.
func (s *ViewState) ActiveTab() Tab {
	return s.active
}

// SelectTab makes tab the active tab, even if it already is.
// The state of the other tabs is left untouched.
func (s *ViewState) SelectTab(tab Tab) {
	if !tab.Valid() {
		panic(fmt.Sprintf("viewstate: invalid tab %d", int(tab)))
	}
	s.active = tab
}

// Counter returns the number of increments since mount.
func (s *ViewState) Counter() int {
	return s.counter
}

// Increment adds one to the counter.
func (s *ViewState) Increment() {
	s.counter++
}

// Input returns the echoed input text.
func (s *ViewState) Input() string {
	return s.input
}

// SetText replaces the echoed input text.
func (s *ViewState) SetText(text string) {
	s.input = text
}

// Clear empties the echoed input text.
func (s *ViewState) Clear() {
	s.input = ""
}

// PendingTodo returns the not-yet-submitted todo text.
func (s *ViewState) PendingTodo() string {
	return s.pendingTodo
}

// SetPendingTodo replaces the not-yet-submitted todo text.
func (s *ViewState) SetPendingTodo(text string) {
	s.pendingTodo = text
}

// AddTodo submits the pending todo text. See Add.
func (s *ViewState) AddTodo() bool {
	return s.Add(s.pendingTodo)
}

// Add appends text to the todo list and clears the pending input.
// Blank text (after trimming) is ignored and false is returned.
// The stored entry keeps its original, untrimmed form.
func (s *ViewState) Add(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	s.todos = append(s.todos, text)
	s.pendingTodo = ""
	return true
}

// RemoveTodoAt deletes the entry at index, shifting later entries left.
// An index outside the list is a no-op and returns false.
func (s *ViewState) RemoveTodoAt(index int) bool {
	if index < 0 || index >= len(s.todos) {
		return false
	}
	s.todos = append(s.todos[:index], s.todos[index+1:]...)
	return true
}

// Todos returns a copy of the todo list in insertion order.
func (s *ViewState) Todos() []string {
	out := make([]string, len(s.todos))
	copy(out, s.todos)
	return out
}

// TodoCount returns the number of todo entries.
func (s *ViewState) TodoCount() int {
	return len(s.todos)
}

// Clock returns the most recently published clock text.
func (s *ViewState) Clock() string {
	return s.clock
}

// SetClock records a clock tick. Only the clock ticker's messages call this.
func (s *ViewState) SetClock(text string) {
	s.clock = text
}
