package ui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"tabdemo/internal/trace"
	"tabdemo/internal/viewstate"
)

// handleKey routes a key press: overlays first, then the keybind registry,
// then the active tab.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode(), a.State.ActiveTab()); consumed {
			if cmd != nil {
				a.Tracer.Event(context.Background(), "ui.keybind", trace.KeyKey.String(msg.String()))()
			}
			return cmd
		}
	}
	return a.updateActive(msg)
}

// handleMouse selects a tab when its label in the tab bar is clicked.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Overlays.Len() > 0 {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a.updateActive(msg)
	}
	p, ok := a.Layout.PanelAt(msg.X, msg.Y)
	if !ok || p.ID != PanelTabBar {
		return a.updateActive(msg)
	}
	w, _ := a.Layout.Size()
	if tab, ok := TabAt(msg.X, w); ok {
		return selectTabCmd(tab)
	}
	return nil
}

// handleResize records the terminal size and hands each tab the content area.
// Every tab is resized, not only the active one, so switching never shows a
// stale layout.
func (a *appModelAdapter) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	a.Layout.Width = msg.Width
	a.Layout.Height = msg.Height
	content := tea.WindowSizeMsg{Width: msg.Width, Height: a.Layout.ContentHeight()}
	var cmds []tea.Cmd
	for _, v := range []View{a.Home, a.Profile, a.Settings} {
		_, cmd := v.Update(content)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// handleSelectTab is the tab controller: the new tab becomes active
// unconditionally and every tab keeps its state.
func (a *appModelAdapter) handleSelectTab(tab viewstate.Tab) {
	defer a.Tracer.Event(context.Background(), "ui.select_tab",
		trace.KeyTab.String(tab.String()))()

	a.KeyHandler.Reset()
	if from := a.State.ActiveTab(); from != tab {
		log.Printf("tab: %s -> %s", from, tab)
	}
	a.State.SelectTab(tab)
}

func (a *appModelAdapter) handleCycleTab(delta int) {
	tab := a.State.ActiveTab()
	switch {
	case delta > 0:
		tab = tab.Next()
	case delta < 0:
		tab = tab.Prev()
	}
	a.handleSelectTab(tab)
}

func (a *appModelAdapter) handleIncrement() {
	a.State.Increment()
	a.Tracer.Event(context.Background(), "ui.increment",
		trace.KeyCounter.Int(a.State.Counter()))()
}

func (a *appModelAdapter) handleClearInput() {
	defer a.Tracer.Event(context.Background(), "ui.clear_input")()
	a.State.Clear()
	a.Home.syncInput()
}

func (a *appModelAdapter) handleAddTodo() {
	defer a.Tracer.Event(context.Background(), "ui.add_todo",
		trace.KeyTodoCount.Int(a.State.TodoCount()))()

	if !a.State.AddTodo() {
		return
	}
	a.Settings.syncPending()
	a.Settings.syncTodos(a.State.TodoCount() - 1)
	log.Printf("todo: added #%d", a.State.TodoCount())
}

func (a *appModelAdapter) handleRemoveTodo(index int) {
	defer a.Tracer.Event(context.Background(), "ui.remove_todo",
		trace.KeyTodoIndex.Int(index))()

	if !a.State.RemoveTodoAt(index) {
		return
	}
	a.Settings.syncTodos(index)
	if a.State.TodoCount() == 0 && a.Settings.Focused() == ctrlTodoList {
		a.Settings.focus.SetFocus(ctrlAddTodo)
	}
	log.Printf("todo: removed #%d", index+1)
}

// handleClockTick records a tick from the current mount. Ticks queued by an
// earlier mount, or arriving after Unmount, are dropped.
func (a *appModelAdapter) handleClockTick(msg ClockTickMsg) {
	if msg.Generation != a.mounts {
		return
	}
	if a.mounts > 0 && a.ticker == nil {
		return
	}
	a.State.SetClock(msg.Text)
}
