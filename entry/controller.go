package entry

import (
	"github.com/nspire-go/neda"
	"github.com/nspire-go/neda/eval"
	"github.com/nspire-go/neda/keycode"
)

// resultView picks which representation the result sub-mode currently
// renders (§4.2 "toggling between fractional, decimal, and mixed-number
// representations re-renders without re-evaluating").
type resultView int

const (
	viewNatural resultView = iota // whatever Render produces from Settings as-is
	viewDecimal
	viewMixed
)

// Controller is the expression-entry state machine (§4.2): it owns the
// live expression tree, a cursor into it, the current mode, any open
// overlay, the result-display sub-mode, and the result history ring.
type Controller struct {
	Tree   *neda.Tree
	Cursor neda.Cursor

	Mode     Mode
	prevMode Mode
	ov       *overlay

	// Matrix/Piecewise scratch state (§4.2.1 "per-mode scratch state").
	matrixRows, matrixCols int
	pieceCount             int

	Env      *eval.Environment
	Settings eval.Settings

	history historyRing

	// Result-display sub-mode.
	showingResult bool
	resultTree    *neda.Tree
	resultValue   eval.Value
	resultErr     error
	view          resultView

	handlers map[Mode]func(*Controller, keycode.Code)
}

// New returns a Controller over a fresh top-level expression tree.
func New(m neda.Metrics) *Controller {
	c := &Controller{
		Tree:     neda.NewTree(m),
		Env:      eval.NewEnvironment(),
		Settings: eval.DefaultSettings(),
	}
	c.Cursor = c.Tree.AtStart()
	c.handlers = map[Mode]func(*Controller, keycode.Code){
		Normal: (*Controller).handleNormal,
		Matrix: (*Controller).handleMatrixScratch,
		Piecewise: (*Controller).handlePiecewiseScratch,
	}
	return c
}

// HandleKey is the table-dispatch entry point (§4.2.1): overlay modes
// share one handler regardless of which specific overlay is open, Matrix
// and Piecewise consult their scratch-state handlers, everything else
// falls to Normal.
func (c *Controller) HandleKey(k keycode.Code) {
	if k == keycode.KeyShiftToggle || k == keycode.KeyCtrlToggle {
		return // modal LED-toggle codes have no terminal-mode effect
	}
	if isOverlay(c.Mode) {
		c.handleOverlay(k)
		return
	}
	if h, ok := c.handlers[c.Mode]; ok {
		h(c, k)
		return
	}
	c.handleNormal(k)
}

// enterOverlay pushes prevMode and opens ov (§4.2.2).
func (c *Controller) enterOverlay(m Mode, ov *overlay) {
	c.prevMode = c.Mode
	c.Mode = m
	c.ov = ov
}

// exitOverlay returns to prevMode, discarding the open overlay.
func (c *Controller) exitOverlay() {
	c.Mode = c.prevMode
	c.ov = nil
}

func (c *Controller) handleOverlay(k keycode.Code) {
	switch k {
	case keycode.KeyUp:
		c.ov.moveUp()
	case keycode.KeyDown:
		c.ov.moveDown()
	case keycode.KeyEsc:
		c.exitOverlay()
	case keycode.KeyEnter:
		item, ok := c.ov.selected()
		c.exitOverlay()
		if !ok {
			return
		}
		if c.Mode == ClearVar {
			delete(c.Env.Vars, item.Label)
			return
		}
		c.insertBytes(item.Insert)
	}
}

func (c *Controller) handleMatrixScratch(k keycode.Code) {
	switch {
	case k >= keycode.KeyDigit0 && k <= keycode.KeyDigit9:
		d := int(k - keycode.KeyDigit0)
		if c.matrixRows == 0 {
			c.matrixRows = d
		} else {
			c.matrixCols = d
		}
	case k == keycode.KeyEnter:
		rows, cols := c.matrixRows, c.matrixCols
		if rows < 1 {
			rows = 1
		}
		if cols < 1 {
			cols = 1
		}
		ref, ok := c.Tree.NewMatrix(rows, cols)
		c.matrixRows, c.matrixCols = 0, 0
		c.Mode = Normal
		if !ok {
			return
		}
		c.insertComposite(ref)
		c.Cursor = neda.Cursor{Container: c.Tree.Cell(ref, 0, 0), Index: 0}
	case k == keycode.KeyEsc:
		c.matrixRows, c.matrixCols = 0, 0
		c.Mode = Normal
	}
}

func (c *Controller) handlePiecewiseScratch(k keycode.Code) {
	switch {
	case k >= keycode.KeyDigit0 && k <= keycode.KeyDigit9:
		c.pieceCount = int(k - keycode.KeyDigit0)
	case k == keycode.KeyEnter:
		n := c.pieceCount
		if n < 1 {
			n = 2
		}
		ref, ok := c.Tree.NewPiecewise(n)
		c.pieceCount = 0
		c.Mode = Normal
		if !ok {
			return
		}
		c.insertComposite(ref)
		node := c.Tree.Node(ref)
		c.Cursor = neda.Cursor{Container: node.Values[0], Index: 0}
	case k == keycode.KeyEsc:
		c.pieceCount = 0
		c.Mode = Normal
	}
}

// insertComposite inserts a freshly-built composite node at the cursor
// and advances the cursor past it, the common tail of every structure-key
// handler.
func (c *Controller) insertComposite(ref neda.Ref) {
	c.Tree.Insert(c.Cursor.Container, c.Cursor.Index, ref)
	c.Cursor.Index++
}

// OverlayLabels returns the currently scrolled-into-view overlay labels and
// which of them is selected, for the display layer; ok is false when no
// overlay is open. The selected index is relative to the returned slice,
// matching overlay.visible()'s window.
func (c *Controller) OverlayLabels() (labels []string, selected int, ok bool) {
	if c.ov == nil {
		return nil, -1, false
	}
	vis := c.ov.visible()
	labels = make([]string, len(vis))
	for i, it := range vis {
		labels[i] = it.Label
	}
	return labels, c.ov.selectorIndex - c.ov.scrollIndex, true
}

// insertBytes inserts a sequence of glyph-store bytes at the cursor,
// advancing it past them — used for overlay confirmations and pasted
// history (e.g. "sin("). '(' and ')' become real bracket nodes rather
// than Char atoms, since the evaluator only recognizes a function call
// or a parenthesized group when it sees an actual KindLeftBracket.
func (c *Controller) insertBytes(bs []byte) {
	for _, b := range bs {
		var ref neda.Ref
		var ok bool
		switch b {
		case '(':
			ref, ok = c.Tree.NewBracket(true, '(')
		case ')':
			ref, ok = c.Tree.NewBracket(false, ')')
		default:
			ref, ok = c.Tree.NewChar(b)
		}
		if !ok {
			return
		}
		c.Tree.Insert(c.Cursor.Container, c.Cursor.Index, ref)
		c.Cursor.Index++
	}
}
