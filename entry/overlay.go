package entry

// overlayItem is one entry in a scrolling-selection overlay menu.
type overlayItem struct {
	Label string
	// Insert is the glyph-store byte sequence inserted into the
	// expression when this item is confirmed (e.g. "sin(" for a Trig
	// overlay entry, a constant's symbol for Const).
	Insert []byte
}

// overlay is the single reusable scrolling-selection component backing
// every menu mode (Trig, Const, Func, Recall, GraphSelect, ClearVar,
// PeriodicTable), grounded on the teacher's FilterList/VirtualList
// windowed-viewport components (filterlist.go, virtuallist.go) —
// generalized here from a general-purpose filterable list to the fixed
// menu contents each calculator mode needs (§4.2.2).
type overlay struct {
	items         []overlayItem
	selectorIndex int
	scrollIndex   int
	visibleRows   int
}

// newOverlay builds an overlay over items, with the viewport showing
// visibleRows entries at a time.
func newOverlay(items []overlayItem, visibleRows int) *overlay {
	if visibleRows < 1 {
		visibleRows = 1
	}
	return &overlay{items: items, visibleRows: visibleRows}
}

// moveUp/moveDown adjust selectorIndex, scrolling the viewport
// (scrollIndex) to keep the selection visible.
func (o *overlay) moveUp() {
	if o.selectorIndex > 0 {
		o.selectorIndex--
	}
	if o.selectorIndex < o.scrollIndex {
		o.scrollIndex = o.selectorIndex
	}
}

func (o *overlay) moveDown() {
	if o.selectorIndex < len(o.items)-1 {
		o.selectorIndex++
	}
	if o.selectorIndex >= o.scrollIndex+o.visibleRows {
		o.scrollIndex = o.selectorIndex - o.visibleRows + 1
	}
}

// selected returns the currently highlighted item, ok false for an empty
// overlay.
func (o *overlay) selected() (overlayItem, bool) {
	if len(o.items) == 0 {
		return overlayItem{}, false
	}
	return o.items[o.selectorIndex], true
}

// visible returns the window of items currently scrolled into view.
func (o *overlay) visible() []overlayItem {
	lo := o.scrollIndex
	hi := lo + o.visibleRows
	if hi > len(o.items) {
		hi = len(o.items)
	}
	if lo > hi {
		lo = hi
	}
	return o.items[lo:hi]
}
