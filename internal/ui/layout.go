package ui

// Layout arranges panels top to bottom.
type Layout interface {
	Panels() []Panel
}

const (
	defaultWidth  = 80
	defaultHeight = 24

	tabBarHeight = 2 // top border + labels
	footerHeight = 1
)

// ScreenLayout stacks the active tab's content above the tab bar and the key
// hint footer, like a phone screen with a bottom tab bar.
type ScreenLayout struct {
	Width  int
	Height int
}

// Ensure ScreenLayout implements Layout.
var _ Layout = ScreenLayout{}

// Size returns the terminal size, falling back to 80x24 before the first
// WindowSizeMsg (and in tests).
func (l ScreenLayout) Size() (int, int) {
	w, h := l.Width, l.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// ContentHeight is the number of rows available to the active tab.
func (l ScreenLayout) ContentHeight() int {
	_, h := l.Size()
	if c := h - tabBarHeight - footerHeight; c > 0 {
		return c
	}
	return 1
}

// Panels implements Layout.
func (l ScreenLayout) Panels() []Panel {
	return []Panel{
		{ID: PanelContent, Bounds: func(w, h int) (int, int, int, int) {
			return 0, 0, w, max(h-tabBarHeight-footerHeight, 1)
		}},
		{ID: PanelTabBar, Bounds: func(w, h int) (int, int, int, int) {
			return 0, max(h-tabBarHeight-footerHeight, 1), w, tabBarHeight
		}},
		{ID: PanelFooter, Bounds: func(w, h int) (int, int, int, int) {
			return 0, h - footerHeight, w, footerHeight
		}},
	}
}

// PanelAt returns the panel containing cell (x, y).
func (l ScreenLayout) PanelAt(x, y int) (Panel, bool) {
	w, h := l.Size()
	for _, p := range l.Panels() {
		if p.Contains(x, y, w, h) {
			return p, true
		}
	}
	return Panel{}, false
}
