package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// PanelID names a region of the screen.
type PanelID string

const (
	PanelContent PanelID = "content"
	PanelTabBar  PanelID = "tabbar"
	PanelFooter  PanelID = "footer"
)

// Panel is a bounded region within a layout.
type Panel struct {
	ID     PanelID
	Bounds BoundsFunc
}

// Contains reports whether the cell (x, y) falls inside the panel.
func (p Panel) Contains(x, y, width, height int) bool {
	px, py, pw, ph := p.Bounds(width, height)
	return x >= px && x < px+pw && y >= py && y < py+ph
}
