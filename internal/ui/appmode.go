package ui

// AppMode is how key presses are interpreted.
type AppMode int

const (
	// ModeNavigate: keys are shortcuts (tab switching, leader sequences).
	ModeNavigate AppMode = iota
	// ModeInsert: a text field has focus; only global bindings apply.
	ModeInsert
	// ModeAlert: an alert overlay is open and receives every key.
	ModeAlert
)

func (m AppMode) String() string {
	switch m {
	case ModeNavigate:
		return "Navigate"
	case ModeInsert:
		return "Insert"
	case ModeAlert:
		return "Alert"
	default:
		return "Unknown"
	}
}
