package viewstate

// Tab identifies which of the three screens is displayed.
type Tab int

const (
	TabHome Tab = iota
	TabProfile
	TabSettings
)

// Tabs lists every tab in tab-bar order.
var Tabs = []Tab{TabHome, TabProfile, TabSettings}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabProfile:
		return "Profile"
	case TabSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the closed set of tabs.
func (t Tab) Valid() bool {
	return t >= TabHome && t <= TabSettings
}

// Next returns the tab to the right, wrapping to Home.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev returns the tab to the left, wrapping to Settings.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(Tabs) - 1) % len(Tabs))
}
