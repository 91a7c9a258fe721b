package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"tabdemo/internal/clock"
	"tabdemo/internal/viewstate"
)

// msgCmd returns a command that emits msg.
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// selectTabCmd returns a command that emits SelectTabMsg for tab.
func selectTabCmd(tab viewstate.Tab) tea.Cmd {
	return msgCmd(SelectTabMsg{Tab: tab})
}

// clockPublisher adapts send into a clock.Publisher so ticks arrive on the
// program's event loop as ClockTickMsg stamped with the mount they belong to.
func clockPublisher(send func(tea.Msg), mount int) clock.Publisher {
	return func(t clock.Tick) {
		send(ClockTickMsg{Time: t.Time, Text: t.Text, Generation: mount})
	}
}

// alertFor builds the ShowAlertMsg command for one of the "show" buttons.
// The alert text is captured from state when the button is pressed.
func alertFor(msg tea.Msg, state *viewstate.ViewState) tea.Cmd {
	var alert ShowAlertMsg
	switch msg.(type) {
	case ShowCountMsg:
		alert = ShowAlertMsg{Title: "Count", Body: "Current count: " + strconv.Itoa(state.Counter())}
	case ShowInputMsg:
		alert = ShowAlertMsg{Title: "Input", Body: fmt.Sprintf("You typed: %s", state.Input())}
	case ShowTimeMsg:
		alert = ShowAlertMsg{Title: "Time", Body: "Current Time: " + state.Clock()}
	default:
		return nil
	}
	return msgCmd(alert)
}
