package entry

import (
	"github.com/nspire-go/neda"
	"github.com/nspire-go/neda/eval"
	"github.com/nspire-go/neda/glyph"
	"github.com/nspire-go/neda/keycode"
)

func (c *Controller) handleNormal(k keycode.Code) {
	// Any key that produces a character, while a result is being shown,
	// starts a fresh expression instead of editing the old one (§4.2):
	// "pressing any key that produces a character seeds Ans when the key
	// is a binary operator". Navigation/history-scroll keys don't count.
	if c.showingResult {
		switch k {
		case keycode.KeyUp:
			c.scrollHistoryOlder()
			return
		case keycode.KeyDown:
			c.scrollHistoryNewer()
			return
		case keycode.KeyEquals:
			c.cycleResultView()
			return
		}
		if isCharProducing(k) {
			c.startFreshExpression(k)
		}
	}

	switch {
	case k >= keycode.KeyDigit0 && k <= keycode.KeyDigit9:
		c.insertByte('0' + byte(k-keycode.KeyDigit0))
		return
	case k.IsLetter():
		c.insertByte(k.Letter())
		return
	}

	switch k {
	case keycode.KeyDot:
		c.insertByte('.')
	case keycode.KeyPlus:
		c.insertByte('+')
	case keycode.KeyMinus, keycode.KeyNegate:
		c.insertByte('-')
	case keycode.KeyMul:
		c.insertByte('*')
	case keycode.KeyDiv:
		c.insertByte('/')
	case keycode.KeyEquals:
		c.insertByte('=')
	case keycode.KeyComma:
		c.insertByte(',')
	case keycode.KeyLeftParen:
		c.insertBracket(true, '(')
	case keycode.KeyRightParen:
		c.insertBracket(false, ')')

	case keycode.KeyLeft:
		c.Cursor = c.Tree.Left(c.Cursor)
	case keycode.KeyRight:
		c.Cursor = c.Tree.Right(c.Cursor)
	case keycode.KeyUp:
		c.Cursor = c.Tree.Up(c.Cursor)
	case keycode.KeyDown:
		c.Cursor = c.Tree.Down(c.Cursor)

	case keycode.KeyFraction:
		c.insertFraction()
	case keycode.KeyRadical:
		c.insertRadical()
	case keycode.KeySigma:
		c.insertSigmaPi(neda.BigSigma)
	case keycode.KeyPi:
		c.insertSigmaPi(neda.BigPi)
	case keycode.KeyExponent:
		c.insertSuperscript()
	case keycode.KeyAbs:
		c.insertAbs()
	case keycode.KeyPiecewise:
		c.matrixRows, c.matrixCols = 0, 0
		c.Mode = Piecewise
	case keycode.KeyMatrix:
		c.pieceCount = 0
		c.Mode = Matrix

	case keycode.KeyDelete:
		c.delete()
	case keycode.KeyClear:
		c.clear()
	case keycode.KeyEnter:
		c.evaluate(false)
	case keycode.KeyApprox:
		c.evaluate(true)

	case keycode.KeyTrigMenu:
		c.enterOverlay(Trig, trigMenu())
	case keycode.KeyConstMenu:
		c.enterOverlay(Const, constMenu())
	case keycode.KeyFuncMenu:
		c.enterOverlay(Func, funcMenu())
	case keycode.KeyRecallMenu:
		c.enterOverlay(Recall, recallMenu(c.Env))
	case keycode.KeyClearVarMenu:
		c.enterOverlay(ClearVar, clearVarMenu(c.Env))
	case keycode.KeyPeriodicTableMenu:
		c.enterOverlay(PeriodicTable, periodicTableMenu())
	}
}

func isCharProducing(k keycode.Code) bool {
	if k.IsLetter() {
		return true
	}
	switch k {
	case keycode.KeyDigit0, keycode.KeyDigit1, keycode.KeyDigit2, keycode.KeyDigit3,
		keycode.KeyDigit4, keycode.KeyDigit5, keycode.KeyDigit6, keycode.KeyDigit7,
		keycode.KeyDigit8, keycode.KeyDigit9, keycode.KeyDot, keycode.KeyPlus,
		keycode.KeyMinus, keycode.KeyMul, keycode.KeyDiv, keycode.KeyLeftParen,
		keycode.KeyRightParen, keycode.KeyFraction, keycode.KeyRadical,
		keycode.KeySigma, keycode.KeyPi, keycode.KeyExponent, keycode.KeyAbs:
		return true
	}
	return false
}

func isBinaryOperatorKey(k keycode.Code) bool {
	switch k {
	case keycode.KeyPlus, keycode.KeyMinus, keycode.KeyMul, keycode.KeyDiv, keycode.KeyExponent:
		return true
	}
	return false
}

// startFreshExpression discards the old top-level tree, seeding it with
// Ans when k is a binary operator (§4.2), and returns to edit mode.
func (c *Controller) startFreshExpression(k keycode.Code) {
	c.discardResult()
	c.Tree.Clear()
	c.Cursor = c.Tree.AtStart()
	if isBinaryOperatorKey(k) {
		ansRef, ok := c.Tree.NewChar(glyph.GlyphAns)
		if ok {
			c.Tree.Append(c.Tree.Root(), ansRef)
			c.Cursor.Index = 1
		}
	}
}

func (c *Controller) insertByte(b byte) {
	ref, ok := c.Tree.NewChar(b)
	if !ok {
		return
	}
	c.Tree.Insert(c.Cursor.Container, c.Cursor.Index, ref)
	c.Cursor.Index++
}

func (c *Controller) insertBracket(left bool, symbol byte) {
	ref, ok := c.Tree.NewBracket(left, symbol)
	if !ok {
		return
	}
	c.Tree.Insert(c.Cursor.Container, c.Cursor.Index, ref)
	c.Cursor.Index++
}

// insertFraction implements the fraction key's special case (§4.2): if
// the token immediately left of the cursor is a name or number, lift it
// into the numerator instead of leaving the numerator empty.
func (c *Controller) insertFraction() {
	lo := c.liftableRunStart()
	ref, ok := c.Tree.NewFraction()
	if !ok {
		return
	}
	node := c.Tree.Node(ref)
	for i := lo; i < c.Cursor.Index; i++ {
		child := c.Tree.ChildAt(c.Cursor.Container, lo)
		c.Tree.RemoveAt(c.Cursor.Container, lo)
		c.Tree.Append(node.A, child)
	}
	c.Cursor.Index = lo
	c.Tree.Insert(c.Cursor.Container, c.Cursor.Index, ref)
	c.Cursor = neda.Cursor{Container: node.B, Index: 0}
}

// liftableRunStart scans left from the cursor over a contiguous run of
// name or digit characters, returning the index where that run starts (or
// c.Cursor.Index if there is none).
func (c *Controller) liftableRunStart() int {
	i := c.Cursor.Index
	for i > 0 {
		n := c.Tree.Node(c.Tree.ChildAt(c.Cursor.Container, i-1))
		if n.Kind != neda.KindChar || !isLiftable(n.Byte) {
			break
		}
		i--
	}
	return i
}

func isLiftable(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '.'
}

func (c *Controller) insertRadical() {
	ref, ok := c.Tree.NewRadical(false)
	if !ok {
		return
	}
	c.insertComposite(ref)
	c.Cursor = neda.Cursor{Container: c.Tree.Node(ref).A, Index: 0}
}

func (c *Controller) insertSigmaPi(op neda.BigOp) {
	ref, ok := c.Tree.NewSigmaPi(op)
	if !ok {
		return
	}
	c.insertComposite(ref)
	c.Cursor = neda.Cursor{Container: c.Tree.Node(ref).A, Index: 0}
}

func (c *Controller) insertSuperscript() {
	ref, ok := c.Tree.NewSuperscript()
	if !ok {
		return
	}
	c.insertComposite(ref)
	c.Cursor = neda.Cursor{Container: c.Tree.Node(ref).A, Index: 0}
}

// insertAbs implements the Abs key, which shares its glyph with the
// augment operator: with a value immediately to the cursor's left it
// inserts a raw '|' (augment), otherwise it opens a fresh sealed Abs
// region (spec.md's "disambiguates by context, requires left operand").
func (c *Controller) insertAbs() {
	if c.hasLeftOperand() {
		c.insertByte('|')
		return
	}
	ref, ok := c.Tree.NewAbs()
	if !ok {
		return
	}
	c.insertComposite(ref)
	c.Cursor = neda.Cursor{Container: c.Tree.Node(ref).A, Index: 0}
}

// hasLeftOperand reports whether the node immediately left of the cursor
// is something a binary operator could apply to: a number/name character,
// Ans, a closing bracket, or any value-producing composite.
func (c *Controller) hasLeftOperand() bool {
	if c.Cursor.Index == 0 {
		return false
	}
	n := c.Tree.Node(c.Tree.ChildAt(c.Cursor.Container, c.Cursor.Index-1))
	if n.Kind == neda.KindChar {
		b := n.Byte
		return isLiftable(b) || b == glyph.GlyphAns
	}
	switch n.Kind {
	case neda.KindRightBracket, neda.KindFraction, neda.KindRadical,
		neda.KindSuperscript, neda.KindSubscript, neda.KindSigmaPi,
		neda.KindMatrix, neda.KindPiecewise, neda.KindAbs:
		return true
	}
	return false
}

// delete implements the Delete key (§4.2): remove the node just left of
// the cursor, or exit into the parent composite if the cursor is at the
// start of a non-top-level container.
func (c *Controller) delete() {
	if c.showingResult {
		c.discardResult()
		return
	}
	if c.Cursor.Index > 0 {
		c.Tree.RemoveAt(c.Cursor.Container, c.Cursor.Index-1)
		c.Cursor.Index--
		return
	}
	owner := c.Tree.Node(c.Cursor.Container).Parent
	if owner == neda.RefNil {
		return // no-op at index 0 of the top-level container
	}
	ownerContainer := c.Tree.Node(owner).Parent
	idx := c.Tree.IndexOf(ownerContainer, owner)
	if idx < 0 {
		return
	}
	c.Tree.RemoveAt(ownerContainer, idx)
	c.Cursor = neda.Cursor{Container: ownerContainer, Index: idx}
}

// clear implements the Clear key: replace the top-level container with an
// empty one and drop any cached result (§4.2).
func (c *Controller) clear() {
	c.discardResult()
	c.Tree.Clear()
	c.Cursor = c.Tree.AtStart()
}

// evaluate runs Enter (approx=false) or Approx (approx=true): evaluate
// the top-level container, push the prior expression onto the history
// ring, and render the result for display (§4.2, §4.3).
func (c *Controller) evaluate(approx bool) {
	s := c.Settings
	if approx {
		s.AutoFractions = false
	}
	v, err := eval.Evaluate(c.Tree, c.Tree.Root(), c.Env, s)

	entry := HistoryEntry{Source: c.Tree, Result: v}
	c.history.push(entry)

	if err == nil && v != nil {
		c.Env.Vars["Ans"] = v
	}

	c.resultTree = neda.NewTree(c.Tree.Metrics())
	eval.Render(c.resultTree, c.resultTree.Root(), v, s, err)
	c.resultValue = v
	c.resultErr = err
	c.showingResult = true
	c.view = viewNatural
}

func (c *Controller) discardResult() {
	c.showingResult = false
	c.resultTree = nil
	c.resultValue = nil
	c.resultErr = nil
}

// cycleResultView toggles between natural, forced-decimal, and
// mixed-number renderings without re-evaluating (§4.2).
func (c *Controller) cycleResultView() {
	if !c.showingResult {
		return
	}
	c.view = (c.view + 1) % 3
	s := c.Settings
	switch c.view {
	case viewDecimal:
		s.AutoFractions = false
	case viewMixed:
		s.AsMixedNumber = true
	}
	c.resultTree = neda.NewTree(c.Tree.Metrics())
	eval.Render(c.resultTree, c.resultTree.Root(), c.resultValue, s, c.resultErr)
}

// ResultTree exposes the throwaway render tree for the display layer, nil
// when no result is currently shown.
func (c *Controller) ResultTree() *neda.Tree { return c.resultTree }

// ShowingResult reports whether a result is currently displayed.
func (c *Controller) ShowingResult() bool { return c.showingResult }

func (c *Controller) scrollHistoryOlder() {
	if e, ok := c.history.older(); ok {
		c.showHistoryEntry(e)
	}
}

func (c *Controller) scrollHistoryNewer() {
	if e, ok := c.history.newer(); ok {
		c.showHistoryEntry(e)
	}
}

func (c *Controller) showHistoryEntry(e HistoryEntry) {
	c.resultTree = neda.NewTree(c.Tree.Metrics())
	eval.Render(c.resultTree, c.resultTree.Root(), e.Result, c.Settings, nil)
	c.resultValue = e.Result
	c.resultErr = nil
}
