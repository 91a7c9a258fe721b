package ui

import (
	"context"
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabdemo/internal/clock"
	"tabdemo/internal/config"
	"tabdemo/internal/trace"
	"tabdemo/internal/viewstate"
)

// Options configure a new AppModel.
type Options struct {
	Profile       config.ProfileConfig
	ClockInterval time.Duration
	ClockLayout   string
	Tracer        *trace.Tracer // nil records nothing
}

// AppModel is the root model. It owns the screen's ViewState and one View per tab,
// and dispatches each message to exactly one handler.
type AppModel struct {
	State      *viewstate.ViewState
	Home       *HomeView
	Profile    *ProfileView
	Settings   *SettingsView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Layout     ScreenLayout
	Tracer     *trace.Tracer

	clockInterval time.Duration
	clockLayout   string
	ticker        *clock.Ticker
	mounts        int // ClockTickMsg.Generation of the current mount
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model with Home active and the clock showing
// the current time. The clock only advances once Mount is called.
func NewAppModel(opts Options) *AppModel {
	state := viewstate.New()
	fmtr := clock.NewTicker(opts.ClockInterval, opts.ClockLayout, nil) // resolves defaults; never started
	state.SetClock(fmtr.Format(time.Now()))

	return &AppModel{
		State:         state,
		Home:          NewHomeView(state),
		Profile:       NewProfileView(opts.Profile),
		Settings:      NewSettingsView(state),
		KeyHandler:    NewKeyHandler(DefaultKeybinds()),
		Tracer:        opts.Tracer,
		clockInterval: fmtr.Interval,
		clockLayout:   fmtr.Layout,
	}
}

// DefaultKeybinds returns the registry used by the app.
func DefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindGlobal("ctrl+c", tea.Quit, "Quit")
	reg.BindGlobal("f1", selectTabCmd(viewstate.TabHome), "Home")
	reg.BindGlobal("f2", selectTabCmd(viewstate.TabProfile), "Profile")
	reg.BindGlobal("f3", selectTabCmd(viewstate.TabSettings), "Settings")

	reg.BindWithDesc("1", selectTabCmd(viewstate.TabHome), "Home")
	reg.BindWithDesc("2", selectTabCmd(viewstate.TabProfile), "Profile")
	reg.BindWithDesc("3", selectTabCmd(viewstate.TabSettings), "Settings")
	reg.BindWithDesc("left", msgCmd(CycleTabMsg{Delta: -1}), "Previous tab")
	reg.BindWithDesc("right", msgCmd(CycleTabMsg{Delta: 1}), "Next tab")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDescForTab("+", msgCmd(IncrementMsg{}), "Increment", []viewstate.Tab{viewstate.TabHome})

	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC t h", selectTabCmd(viewstate.TabHome), "Home")
	reg.BindWithDesc("SPC t p", selectTabCmd(viewstate.TabProfile), "Profile")
	reg.BindWithDesc("SPC t s", selectTabCmd(viewstate.TabSettings), "Settings")
	reg.BindWithDescForTab("SPC c i", msgCmd(IncrementMsg{}), "Increment", []viewstate.Tab{viewstate.TabHome})
	reg.BindWithDescForTab("SPC c s", msgCmd(ShowCountMsg{}), "Show count", []viewstate.Tab{viewstate.TabHome})
	return reg
}

// Mount starts the clock ticker, publishing each tick into send (normally
// tea.Program.Send). Every Mount starts a fresh ticker; ticks from earlier
// mounts are dropped.
func (m *AppModel) Mount(ctx context.Context, send func(tea.Msg)) error {
	if send == nil {
		return errors.New("mount: send is nil")
	}
	m.Unmount()
	m.mounts++
	m.ticker = clock.NewTicker(m.clockInterval, m.clockLayout, clockPublisher(send, m.mounts))
	if err := m.ticker.Start(ctx); err != nil {
		m.ticker = nil
		return err
	}
	m.Tracer.Event(ctx, "clock.mount", trace.KeyGeneration.Int(m.mounts))()
	log.Printf("mount: clock running every %s", m.clockInterval)
	return nil
}

// Unmount stops the clock ticker. No ClockTickMsg is sent after it returns.
// Safe to call more than once.
func (m *AppModel) Unmount() {
	if m.ticker == nil {
		return
	}
	m.ticker.Stop()
	m.ticker = nil
	log.Printf("unmount: clock stopped")
}

// ClockState reports whether the clock ticker is running.
func (m *AppModel) ClockState() clock.State {
	if m.ticker == nil {
		return clock.StateStopped
	}
	return m.ticker.State()
}

// Mode returns how the next key press will be interpreted.
func (m *AppModel) Mode() AppMode {
	if m.Overlays.Len() > 0 {
		return ModeAlert
	}
	if m.activeView().InsertMode() {
		return ModeInsert
	}
	return ModeNavigate
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.activeView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.handleResize(msg)
	case ClockTickMsg:
		a.handleClockTick(msg)
		return a, nil
	case SelectTabMsg:
		a.handleSelectTab(msg.Tab)
		return a, nil
	case CycleTabMsg:
		a.handleCycleTab(msg.Delta)
		return a, nil
	case IncrementMsg:
		a.handleIncrement()
		return a, nil
	case ClearInputMsg:
		a.handleClearInput()
		return a, nil
	case AddTodoMsg:
		a.handleAddTodo()
		return a, nil
	case RemoveTodoMsg:
		a.handleRemoveTodo(msg.Index)
		return a, nil
	case ShowCountMsg, ShowInputMsg, ShowTimeMsg:
		return a, alertFor(msg, a.State)
	case ShowAlertMsg:
		a.Overlays.Push(Overlay{View: NewAlertModal(msg.Title, msg.Body)})
		a.KeyHandler.Reset()
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	// Anything else (cursor blink and the like) belongs to the active tab.
	return a, a.updateActive(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	w, _ := a.Layout.Size()
	contentHeight := a.Layout.ContentHeight()
	tab := a.State.ActiveTab()

	body := a.activeView().View()
	if help := RenderKeybindHelp(a.KeyHandler, tab); help != "" {
		helpHeight := lipgloss.Height(help)
		body = clip(body, w, max(contentHeight-helpHeight, 0))
		body = lipgloss.JoinVertical(lipgloss.Left, body, help)
	}
	body = a.Overlays.Render(body, w, contentHeight)
	body = clip(body, w, contentHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		RenderTabBar(tab, w),
		RenderFooter(a.Mode()),
	)
}

// clip pads or cuts s to exactly height rows no wider than width.
func clip(s string, width, height int) string {
	if height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		MaxWidth(width).
		Height(height).
		MaxHeight(height).
		Render(s)
}

// activeView is the single dispatch point from ActiveTab to a View.
func (m *AppModel) activeView() FocusView {
	switch m.State.ActiveTab() {
	case viewstate.TabProfile:
		return m.Profile
	case viewstate.TabSettings:
		return m.Settings
	default:
		return m.Home
	}
}

func (a *appModelAdapter) updateActive(msg tea.Msg) tea.Cmd {
	_, cmd := a.activeView().Update(msg)
	return cmd
}
