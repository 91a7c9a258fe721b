package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabdemo/internal/viewstate"
)

// Home tab controls, in focus order.
const (
	ctrlViewCount Control = "view-count"
	ctrlInput     Control = "input"
	ctrlShowInput Control = "show-input"
	ctrlClear     Control = "clear"
	ctrlIncrement Control = "increment"
	ctrlShowTime  Control = "show-time"
)

// HomeView is the Home tab: quick actions, the echo input, the counter and the clock.
type HomeView struct {
	state *viewstate.ViewState
	input textinput.Model
	focus *FocusRing
	width int
}

// Ensure HomeView implements FocusView.
var _ FocusView = (*HomeView)(nil)

// NewHomeView creates the Home tab over state.
func NewHomeView(state *viewstate.ViewState) *HomeView {
	ti := textinput.New()
	ti.Placeholder = "Type something..."
	ti.Prompt = "› "
	ti.Width = 40
	ti.SetValue(state.Input())

	h := &HomeView{state: state, input: ti}
	h.focus = NewFocusRing(ctrlViewCount, ctrlInput, ctrlShowInput, ctrlClear, ctrlIncrement, ctrlShowTime)
	h.focus.OnChange = func(from, to Control) {
		if to == ctrlInput {
			h.input.Focus()
		} else if from == ctrlInput {
			h.input.Blur()
		}
	}
	return h
}

// Focused returns the control that has focus.
func (h *HomeView) Focused() Control {
	return h.focus.Current
}

// InsertMode implements FocusView.
func (h *HomeView) InsertMode() bool {
	return h.focus.Is(ctrlInput)
}

// Blur implements FocusView: leaves the text field for the Show Input button.
func (h *HomeView) Blur() {
	if h.InsertMode() {
		h.focus.SetFocus(ctrlShowInput)
	}
}

// syncInput copies the echoed text from state into the field after an
// outside change (Clear).
func (h *HomeView) syncInput() {
	h.input.SetValue(h.state.Input())
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.input.Width = max(min(msg.Width-8, 60), 10)
		return h, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			h.focus.Next()
			return h, h.blinkIfInsert()
		case "shift+tab", "up":
			h.focus.Prev()
			return h, h.blinkIfInsert()
		}
		if h.InsertMode() {
			return h, h.updateInput(msg)
		}
		switch msg.String() {
		case "enter":
			return h, h.activate()
		case "i", "/":
			h.focus.SetFocus(ctrlInput)
			return h, textinput.Blink
		}
		return h, nil
	}
	if h.InsertMode() {
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeView) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.Blur()
		return nil
	case "enter":
		return func() tea.Msg { return ShowInputMsg{} }
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	if v := h.input.Value(); v != h.state.Input() {
		h.state.SetText(v)
	}
	return cmd
}

func (h *HomeView) blinkIfInsert() tea.Cmd {
	if h.InsertMode() {
		return textinput.Blink
	}
	return nil
}

// activate presses the focused button.
func (h *HomeView) activate() tea.Cmd {
	var msg tea.Msg
	switch h.focus.Current {
	case ctrlViewCount:
		msg = ShowCountMsg{}
	case ctrlShowInput:
		msg = ShowInputMsg{}
	case ctrlClear:
		msg = ClearInputMsg{}
	case ctrlIncrement:
		msg = IncrementMsg{}
	case ctrlShowTime:
		msg = ShowTimeMsg{}
	default:
		return nil
	}
	return func() tea.Msg { return msg }
}

// View implements View.
func (h *HomeView) View() string {
	width := h.width
	if width <= 0 {
		width = defaultWidth
	}
	cardWidth := min(width, 64)
	btn := func(c Control, label string, secondary bool) string {
		return renderButton(label, h.focus.Is(c), secondary)
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Welcome Home!") + "\n")

	b.WriteString(renderCard("Quick Actions", btn(ctrlViewCount, "🔔 View Count", false), cardWidth) + "\n")

	b.WriteString(h.input.View() + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		btn(ctrlShowInput, "Show Input", false), " ",
		btn(ctrlClear, "Clear", true)) + "\n")

	counter := Styles.Count.Render(strconv.Itoa(h.state.Counter())) + "\n" + btn(ctrlIncrement, "Increment", false)
	b.WriteString(renderCard("Counter", counter, cardWidth) + "\n")

	clockBody := Styles.Time.Render(h.state.Clock()) + "\n" + btn(ctrlShowTime, "Show Time", false)
	b.WriteString(renderCard("Current Time", clockBody, cardWidth))
	return b.String()
}
