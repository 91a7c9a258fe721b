package ui

// Control identifies one focusable control within a tab.
type Control string

// FocusRing tracks and rotates focus across the controls of one tab.
type FocusRing struct {
	Current  Control   // currently focused control; "" before the first focus
	Order    []Control // tab order
	OnChange func(from, to Control)
}

// NewFocusRing creates a ring focused on the first control in order.
func NewFocusRing(order ...Control) *FocusRing {
	f := &FocusRing{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next control in order, wrapping at the end.
// Returns the new current control.
func (f *FocusRing) Next() Control {
	return f.step(1)
}

// Prev moves focus to the previous control, wrapping at the start.
func (f *FocusRing) Prev() Control {
	return f.step(-1)
}

func (f *FocusRing) step(delta int) Control {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 {
		// Unfocused: Next lands on the first control, Prev on the last.
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in the ring.
func (f *FocusRing) SetFocus(id Control) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusRing) Is(id Control) bool {
	return f.Current == id
}

func (f *FocusRing) index(id Control) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusRing) set(to Control) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
