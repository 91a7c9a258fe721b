package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tabdemo/internal/viewstate"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC t h" for SPC then t then h.
// Single keys: "1", "q", "f2", "ctrl+c", "left".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	tabFilter    map[string][]viewstate.Tab // nil/empty = applies on every tab
	global       map[string]bool            // also fires while a text field has focus
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		tabFilter:    make(map[string][]viewstate.Tab),
		global:       make(map[string]bool),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
// The binding applies on every tab.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForTab(seq, cmd, desc, nil)
}

// BindWithDescForTab registers a key sequence that only fires on the given tabs.
// If tabs is nil or empty, the binding applies on every tab.
func (r *KeybindRegistry) BindWithDescForTab(seq string, cmd tea.Cmd, desc string, tabs []viewstate.Tab) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(tabs) > 0 {
		r.tabFilter[n] = tabs
	} else {
		delete(r.tabFilter, n)
	}
}

// BindGlobal registers a single key that fires even while a text field has focus.
// Use for keys that can never be typed text (ctrl+c, function keys).
func (r *KeybindRegistry) BindGlobal(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDesc(seq, cmd, desc)
	r.global[normalizeSeq(seq)] = true
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupForTab returns the command for seq if it applies on tab.
func (r *KeybindRegistry) LookupForTab(seq string, tab viewstate.Tab) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToTab(n, tab) {
		return nil
	}
	return r.bindings[n]
}

// IsGlobal reports whether seq was registered with BindGlobal.
func (r *KeybindRegistry) IsGlobal(seq string) bool {
	return r.global[normalizeSeq(seq)]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// firstLevelSubmenuLabel maps first-level keys that have sub-bindings to a generic display label.
var firstLevelSubmenuLabel = map[string]string{
	"t": "Tab",
	"c": "Counter",
}

// LeaderHints returns hints for SPC-prefixed bindings, filtered by tab.
// When currentSeq is empty, returns first-level hints (e.g. "q", "t", "c").
// When currentSeq is e.g. "SPC t", returns next-level hints ("h", "p", "s").
func (r *KeybindRegistry) LeaderHints(currentSeq string, tab viewstate.Tab) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesToTab(seq, tab) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		parts := strings.Fields(rest)
		k := rest
		if len(parts) > 0 {
			k = parts[0]
		}
		if r.HasPrefix(strings.TrimSuffix(prefix, " ") + " " + k) {
			if label, ok := firstLevelSubmenuLabel[k]; ok {
				out[k] = label
			} else {
				out[k] = k + "…"
			}
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[k] = d
		} else {
			out[k] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesToTab(seq string, tab viewstate.Tab) bool {
	tabs, ok := r.tabFilter[seq]
	if !ok || len(tabs) == 0 {
		return true
	}
	for _, t := range tabs {
		if t == tab {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to views.
// In ModeInsert only global bindings fire; the leader key is typed as text.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode, tab viewstate.Tab) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if mode == ModeInsert {
		h.Reset()
		part := keyToSeqPart(s)
		if h.Registry.IsGlobal(part) {
			if c := h.Registry.LookupForTab(part, tab); c != nil {
				return true, c
			}
		}
		return false, nil
	}

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.Reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.LookupForTab(seq, tab); c != nil {
			h.Reset()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.Reset()
		return true, nil
	}

	if c := h.Registry.LookupForTab(keyToSeqPart(s), tab); c != nil {
		return true, c
	}
	return false, nil
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap for rendering leader hints with bubbles/help.Model.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	tab        viewstate.Tab
}

// NewKeyMap creates a KeyMap for the given handler and active tab.
func NewKeyMap(keyHandler *KeyHandler, tab viewstate.Tab) help.KeyMap {
	km := &KeyMap{keyHandler: keyHandler, tab: tab}
	if keyHandler != nil {
		km.registry = keyHandler.Registry
	}
	return km
}

// currentSeq is the leader sequence typed so far, or "" at the first level.
func (km *KeyMap) currentSeq() string {
	if km.keyHandler == nil || len(km.keyHandler.Buffer) <= 1 {
		return ""
	}
	return strings.Join(km.keyHandler.Buffer, " ")
}

// ShortHelp returns bindings for the short help view, sorted by key.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.LeaderHints(km.currentSeq(), km.tab)
	if len(hints) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
