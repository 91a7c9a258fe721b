package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabdemo/internal/ui/textutil"
	"tabdemo/internal/viewstate"
)

// Settings tab controls, in focus order.
const (
	ctrlTodoInput Control = "todo-input"
	ctrlAddTodo   Control = "add-todo"
	ctrlTodoList  Control = "todo-list"
)

const maxVisibleTodos = 8

// todoItem implements list.DefaultItem for one todo entry.
type todoItem struct {
	text string
}

func (t todoItem) FilterValue() string { return t.text }
func (t todoItem) Title() string       { return "• " + textutil.SingleLine(t.text) }
func (t todoItem) Description() string { return "" }

// SettingsView is the Settings tab: the todo list editor and preferences.
type SettingsView struct {
	state *viewstate.ViewState
	input textinput.Model
	list  list.Model
	focus *FocusRing
	width int
}

// Ensure SettingsView implements FocusView.
var _ FocusView = (*SettingsView)(nil)

// NewSettingsView creates the Settings tab over state.
func NewSettingsView(state *viewstate.ViewState) *SettingsView {
	ti := textinput.New()
	ti.Placeholder = "Add new todo"
	ti.Prompt = "› "
	ti.Width = 40
	ti.SetValue(state.PendingTodo())

	l := list.New(nil, NewCompactListDelegate(), defaultWidth, 1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := &SettingsView{state: state, input: ti, list: l}
	s.focus = NewFocusRing(ctrlTodoInput, ctrlAddTodo, ctrlTodoList)
	s.focus.OnChange = func(from, to Control) {
		if to == ctrlTodoInput {
			s.input.Focus()
		} else if from == ctrlTodoInput {
			s.input.Blur()
		}
	}
	// Start on the Add button so number keys still switch tabs.
	s.focus.SetFocus(ctrlAddTodo)
	s.syncTodos(0)
	return s
}

// Focused returns the control that has focus.
func (s *SettingsView) Focused() Control {
	return s.focus.Current
}

// Selected returns the index of the highlighted todo, or -1 if the list is empty.
func (s *SettingsView) Selected() int {
	if len(s.list.Items()) == 0 {
		return -1
	}
	return s.list.Index()
}

// InsertMode implements FocusView.
func (s *SettingsView) InsertMode() bool {
	return s.focus.Is(ctrlTodoInput)
}

// Blur implements FocusView: leaves the todo field for the Add button.
func (s *SettingsView) Blur() {
	if s.InsertMode() {
		s.focus.SetFocus(ctrlAddTodo)
	}
}

// syncTodos rebuilds the list from state and highlights selected (clamped).
func (s *SettingsView) syncTodos(selected int) {
	todos := s.state.Todos()
	items := make([]list.Item, len(todos))
	for i, t := range todos {
		items[i] = todoItem{text: t}
	}
	s.list.SetItems(items)
	s.list.SetHeight(max(min(len(items), maxVisibleTodos), 1))
	if len(items) == 0 {
		return
	}
	s.list.Select(max(min(selected, len(items)-1), 0))
}

// syncPending copies the pending todo text from state into the field.
func (s *SettingsView) syncPending() {
	s.input.SetValue(s.state.PendingTodo())
}

// Init implements View.
func (s *SettingsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (s *SettingsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.input.Width = max(min(msg.Width-8, 60), 10)
		s.list.SetWidth(max(min(msg.Width, 64)-4, 10))
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.focus.Next()
			return s, s.blinkIfInsert()
		case "shift+tab":
			s.focus.Prev()
			return s, s.blinkIfInsert()
		}
		switch s.focus.Current {
		case ctrlTodoInput:
			return s, s.updateInput(msg)
		case ctrlAddTodo:
			switch msg.String() {
			case "enter":
				return s, func() tea.Msg { return AddTodoMsg{} }
			case "i", "/":
				s.focus.SetFocus(ctrlTodoInput)
				return s, textinput.Blink
			case "down":
				s.focus.SetFocus(ctrlTodoList)
			}
			return s, nil
		case ctrlTodoList:
			return s, s.updateList(msg)
		}
		return s, nil
	}
	if s.InsertMode() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsView) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.Blur()
		return nil
	case "enter":
		return func() tea.Msg { return AddTodoMsg{} }
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := s.input.Value(); v != s.state.PendingTodo() {
		s.state.SetPendingTodo(v)
	}
	return cmd
}

func (s *SettingsView) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "d", "x", "delete", "backspace":
		idx := s.Selected()
		if idx < 0 {
			return nil
		}
		return func() tea.Msg { return RemoveTodoMsg{Index: idx} }
	case "i", "/":
		s.focus.SetFocus(ctrlTodoInput)
		return textinput.Blink
	case "up", "k":
		if s.list.Index() == 0 {
			s.focus.SetFocus(ctrlAddTodo)
			return nil
		}
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

func (s *SettingsView) blinkIfInsert() tea.Cmd {
	if s.InsertMode() {
		return textinput.Blink
	}
	return nil
}

// View implements View.
func (s *SettingsView) View() string {
	width := s.width
	if width <= 0 {
		width = defaultWidth
	}
	cardWidth := min(width, 64)

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Settings") + "\n")

	var todo strings.Builder
	todo.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		s.input.View(), " ",
		renderButton("+", s.focus.Is(ctrlAddTodo), false)) + "\n")
	if len(s.list.Items()) == 0 {
		todo.WriteString(Styles.Empty.Render("No todos yet"))
	} else {
		todo.WriteString(s.list.View())
		if s.focus.Is(ctrlTodoList) {
			todo.WriteString("\n" + Styles.Danger.Render("d: delete"))
		}
	}
	b.WriteString(renderCard("Todo List", todo.String(), cardWidth) + "\n")

	prefs := preferenceRow("🔔", "Notification Settings", cardWidth) + "\n" +
		preferenceRow("🔒", "Privacy Settings", cardWidth)
	b.WriteString(renderCard("Preferences", prefs, cardWidth))
	return b.String()
}

// preferenceRow renders "icon  label  ›" stretched to the card's inner width.
func preferenceRow(icon, label string, cardWidth int) string {
	inner := cardWidth - Styles.Card.GetHorizontalFrameSize()
	left := icon + "  " + label
	return Styles.Normal.Render(textutil.PadRightVisual(left, max(inner-2, 0))) + Styles.Muted.Render(" ›")
}
