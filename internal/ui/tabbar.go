package ui

import (
	"strings"

	"tabdemo/internal/ui/textutil"
	"tabdemo/internal/viewstate"
)

var tabIcons = map[viewstate.Tab]string{
	viewstate.TabHome:     "⌂",
	viewstate.TabProfile:  "☺",
	viewstate.TabSettings: "⚙",
}

// tabLabel is the text shown for tab in the tab bar.
func tabLabel(tab viewstate.Tab) string {
	return tabIcons[tab] + " " + tab.String()
}

// RenderTabBar draws the bottom tab bar, one equal-width cell per tab with
// the active one highlighted.
func RenderTabBar(active viewstate.Tab, width int) string {
	cell := width / len(viewstate.Tabs)
	var b strings.Builder
	for i, tab := range viewstate.Tabs {
		w := cell
		if i == len(viewstate.Tabs)-1 {
			w = width - cell*(len(viewstate.Tabs)-1)
		}
		label := textutil.Center(tabLabel(tab), w)
		if tab == active {
			b.WriteString(Styles.TabActive.Render(label))
		} else {
			b.WriteString(Styles.TabInactive.Render(label))
		}
	}
	return Styles.TabBar.Width(width).Render(b.String())
}

// TabAt maps a column in the tab bar to the tab drawn there.
func TabAt(x, width int) (viewstate.Tab, bool) {
	if x < 0 || x >= width || width <= 0 {
		return viewstate.TabHome, false
	}
	cell := width / len(viewstate.Tabs)
	if cell == 0 {
		return viewstate.TabHome, false
	}
	idx := x / cell
	if idx >= len(viewstate.Tabs) {
		idx = len(viewstate.Tabs) - 1
	}
	return viewstate.Tabs[idx], true
}
