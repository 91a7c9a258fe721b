package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tabdemo/internal/viewstate"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_TabFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForTab("+", tea.Quit, "Increment", []viewstate.Tab{viewstate.TabHome})

	if reg.LookupForTab("+", viewstate.TabHome) == nil {
		t.Error("expected + on Home")
	}
	if reg.LookupForTab("+", viewstate.TabSettings) != nil {
		t.Error("expected + to be filtered out on Settings")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), ModeNavigate, viewstate.TabHome)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), ModeNavigate, viewstate.TabHome)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())

	h.Handle(keyMsg(" "), ModeNavigate, viewstate.TabHome)
	consumed, cmd := h.Handle(keyMsg("t"), ModeNavigate, viewstate.TabHome)
	if !consumed || cmd != nil {
		t.Fatalf("SPC t: consumed=%v cmd=%v, want prefix wait", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Fatal("expected leader still waiting after SPC t")
	}
	consumed, cmd = h.Handle(keyMsg("s"), ModeNavigate, viewstate.TabHome)
	if !consumed || cmd == nil {
		t.Fatalf("SPC t s: consumed=%v cmd=%v", consumed, cmd)
	}
	if got, ok := cmd().(SelectTabMsg); !ok || got.Tab != viewstate.TabSettings {
		t.Errorf("SPC t s produced %#v, want SelectTabMsg{Settings}", cmd())
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())
	h.Handle(keyMsg(" "), ModeNavigate, viewstate.TabHome)
	consumed, cmd := h.Handle(keyMsg("z"), ModeNavigate, viewstate.TabHome)
	if !consumed || cmd != nil {
		t.Errorf("SPC z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeNavigate, viewstate.TabHome)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), ModeNavigate, viewstate.TabHome)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	consumed, _ = h.Handle(keyMsg("esc"), ModeNavigate, viewstate.TabHome)
	if consumed {
		t.Error("esc outside leader mode should pass through to the view")
	}
}

func TestKeyHandler_InsertModeOnlyGlobal(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())

	for _, k := range []string{"1", "q", "+", " "} {
		consumed, _ := h.Handle(keyMsg(k), ModeInsert, viewstate.TabHome)
		if consumed {
			t.Errorf("%q should be typed, not consumed, in insert mode", k)
		}
	}
	if h.LeaderWaiting {
		t.Error("space in insert mode must not start a leader sequence")
	}

	consumed, cmd := h.Handle(keyMsg("f3"), ModeInsert, viewstate.TabHome)
	if !consumed || cmd == nil {
		t.Fatalf("f3 in insert mode: consumed=%v cmd=%v", consumed, cmd)
	}
	if got := cmd().(SelectTabMsg); got.Tab != viewstate.TabSettings {
		t.Errorf("f3 selected %v, want Settings", got.Tab)
	}
}

func TestKeyHandler_TabScopedBinding(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())

	consumed, cmd := h.Handle(keyMsg("+"), ModeNavigate, viewstate.TabHome)
	if !consumed || cmd == nil {
		t.Fatal("+ should increment on Home")
	}
	consumed, _ = h.Handle(keyMsg("+"), ModeNavigate, viewstate.TabProfile)
	if consumed {
		t.Error("+ should not be bound on Profile")
	}
}

func TestLeaderHints_FirstLevelAndSubmenu(t *testing.T) {
	reg := DefaultKeybinds()

	hints := reg.LeaderHints("", viewstate.TabHome)
	if hints["t"] != "Tab" {
		t.Errorf("hint t = %q, want Tab", hints["t"])
	}
	if hints["c"] != "Counter" {
		t.Errorf("hint c = %q, want Counter", hints["c"])
	}
	if hints["q"] != "Quit" {
		t.Errorf("hint q = %q, want Quit", hints["q"])
	}

	hints = reg.LeaderHints("", viewstate.TabSettings)
	if _, ok := hints["c"]; ok {
		t.Error("counter submenu should be hidden on Settings")
	}

	hints = reg.LeaderHints("SPC t", viewstate.TabProfile)
	want := map[string]string{"h": "Home", "p": "Profile", "s": "Settings"}
	for k, v := range want {
		if hints[k] != v {
			t.Errorf("SPC t %s = %q, want %q", k, hints[k], v)
		}
	}
}

func TestKeyMap_ShortHelpSortedWithEsc(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())
	h.Handle(keyMsg(" "), ModeNavigate, viewstate.TabHome)

	bindings := NewKeyMap(h, viewstate.TabHome).ShortHelp()
	if len(bindings) == 0 {
		t.Fatal("expected leader bindings")
	}
	last := bindings[len(bindings)-1]
	if last.Help().Key != "esc" {
		t.Errorf("last binding = %q, want esc", last.Help().Key)
	}
	for i := 1; i < len(bindings)-1; i++ {
		if bindings[i-1].Help().Key > bindings[i].Help().Key {
			t.Errorf("bindings not sorted: %q before %q", bindings[i-1].Help().Key, bindings[i].Help().Key)
		}
	}
}

func TestRenderKeybindHelp_OnlyInLeaderMode(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())
	if got := RenderKeybindHelp(h, viewstate.TabHome); got != "" {
		t.Errorf("expected no help outside leader mode, got %q", got)
	}
	h.Handle(keyMsg(" "), ModeNavigate, viewstate.TabHome)
	if got := RenderKeybindHelp(h, viewstate.TabHome); got == "" {
		t.Error("expected help in leader mode")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText sends one KeyMsg per rune of s.
func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
