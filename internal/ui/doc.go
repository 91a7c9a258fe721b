// Package ui renders the tabbed screen with Bubble Tea.
//
// Core abstractions:
//   - View: one tab's screen with its own Init/Update/View (Elm-style)
//   - AppModel: root model; owns the ViewState and dispatches events to the active tab
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed leader sequences
//   - FocusRing: rotates focus across the controls of one tab
//   - ScreenLayout: splits the terminal into the content panel and the tab bar
//   - OverlayStack: alert popups that take input before the tabs do
//
// All state changes happen inside AppModel's Update, one message at a time.
// The clock ticker only ever reaches the model as a ClockTickMsg.
package ui
