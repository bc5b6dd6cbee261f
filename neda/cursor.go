package neda

// Cursor is a (container, index) pair: it always lives inside a Container,
// never inside a Char's interior, and index 0..len(children) is "before all
// children" through "after all children" (§4.1). It is a plain value, not a
// pointer, so it can be copied, compared, and pushed onto the history ring
// without aliasing the tree.
type Cursor struct {
	Container Ref
	Index     int
}

// Clamp returns a Cursor with Index forced into [0, len(children)], for
// recovering from a container shrinking out from under a stale cursor.
func (t *Tree) Clamp(c Cursor) Cursor {
	n := t.ChildCount(c.Container)
	if c.Index < 0 {
		c.Index = 0
	}
	if c.Index > n {
		c.Index = n
	}
	return c
}

// AtStart is the cursor for "before everything" in the top-level container.
func (t *Tree) AtStart() Cursor { return Cursor{Container: t.root, Index: 0} }

// AtEnd is the cursor for "after everything" in the top-level container.
func (t *Tree) AtEnd() Cursor { return Cursor{Container: t.root, Index: t.ChildCount(t.root)} }

// slots returns a composite node's operand containers in left-to-right
// reading order, used to decide how Left/Right cross composite boundaries.
// A Matrix yields its cells in row-major order and a Piecewise its
// value/condition pairs piece by piece; Char, brackets and Container have
// no operand slots and yield nil.
func (t *Tree) slots(composite Ref) []Ref {
	n := t.node(composite)
	switch n.Kind {
	case KindFraction:
		return []Ref{n.A, n.B}
	case KindRadical:
		if n.B != RefNil {
			return []Ref{n.B, n.A}
		}
		return []Ref{n.A}
	case KindSuperscript, KindSubscript, KindAbs:
		return []Ref{n.A}
	case KindSigmaPi:
		return []Ref{n.A, n.B, n.C}
	case KindMatrix:
		return n.Cells
	case KindPiecewise:
		slots := make([]Ref, 0, 2*n.PieceCount)
		for i := 0; i < n.PieceCount; i++ {
			slots = append(slots, n.Values[i], n.Conditions[i])
		}
		return slots
	default:
		return nil
	}
}

func isComposite(k Kind) bool {
	switch k {
	case KindFraction, KindRadical, KindSuperscript, KindSubscript,
		KindSigmaPi, KindMatrix, KindPiecewise, KindAbs:
		return true
	default:
		return false
	}
}

// Left moves the cursor one step left, per §4.1: decrement within the
// current container when possible; otherwise ask the composite that owns
// this container for the end of the previous operand slot; otherwise
// propagate out to just before the owning composite in its own container.
// A cursor already at the very start of the top-level container is
// unchanged (the documented boundary no-op).
func (t *Tree) Left(c Cursor) Cursor {
	if c.Index > 0 {
		prev := t.ChildAt(c.Container, c.Index-1)
		if isComposite(t.node(prev).Kind) {
			s := t.slots(prev)
			last := s[len(s)-1]
			return Cursor{Container: last, Index: t.ChildCount(last)}
		}
		return Cursor{Container: c.Container, Index: c.Index - 1}
	}
	owner := t.node(c.Container).Parent
	if owner == RefNil {
		return c // top-level container, at index 0: no-op boundary
	}
	s := t.slots(owner)
	for i, slot := range s {
		if slot == c.Container {
			if i > 0 {
				prev := s[i-1]
				return Cursor{Container: prev, Index: t.ChildCount(prev)}
			}
			break
		}
	}
	// First slot of owner: exit the composite to just before it.
	ownerContainer := t.node(owner).Parent
	idx := t.IndexOf(ownerContainer, owner)
	return Cursor{Container: ownerContainer, Index: idx}
}

// Right is the mirror image of Left.
func (t *Tree) Right(c Cursor) Cursor {
	n := t.ChildCount(c.Container)
	if c.Index < n {
		next := t.ChildAt(c.Container, c.Index)
		if isComposite(t.node(next).Kind) {
			s := t.slots(next)
			first := s[0]
			return Cursor{Container: first, Index: 0}
		}
		return Cursor{Container: c.Container, Index: c.Index + 1}
	}
	owner := t.node(c.Container).Parent
	if owner == RefNil {
		return c // top-level container, at the end: no-op boundary
	}
	s := t.slots(owner)
	for i, slot := range s {
		if slot == c.Container {
			if i < len(s)-1 {
				return Cursor{Container: s[i+1], Index: 0}
			}
			break
		}
	}
	ownerContainer := t.node(owner).Parent
	idx := t.IndexOf(ownerContainer, owner)
	return Cursor{Container: ownerContainer, Index: idx + 1}
}

// Up moves the cursor according to the owning composite's up rule (§4.1):
// Fraction maps up to the numerator, Subscript up to the base (i.e. exits
// upward, same as Left/Right's "propagate upward" exit), SigmaPi cycles
// body -> finish -> start, Matrix/Piecewise move to the adjacent cell one
// row up. Returns c unchanged if there's nowhere to go.
func (t *Tree) Up(c Cursor) Cursor {
	owner := t.node(c.Container).Parent
	if owner == RefNil {
		return c
	}
	n := t.node(owner)
	switch n.Kind {
	case KindFraction:
		if c.Container == n.B { // in denominator, go to numerator
			return Cursor{Container: n.A, Index: t.ChildCount(n.A)}
		}
		return c
	case KindSubscript:
		return t.exitComposite(owner)
	case KindSigmaPi:
		switch c.Container {
		case n.C: // body -> finish
			return Cursor{Container: n.B, Index: t.ChildCount(n.B)}
		case n.B: // finish -> start
			return Cursor{Container: n.A, Index: t.ChildCount(n.A)}
		default: // start -> body (cycles)
			return Cursor{Container: n.C, Index: t.ChildCount(n.C)}
		}
	case KindMatrix:
		return t.matrixMove(n, c, -n.Cols)
	case KindPiecewise:
		return t.piecewiseMoveRow(n, c, -1)
	default:
		return c
	}
}

// Down is the mirror image of Up.
func (t *Tree) Down(c Cursor) Cursor {
	owner := t.node(c.Container).Parent
	if owner == RefNil {
		return c
	}
	n := t.node(owner)
	switch n.Kind {
	case KindFraction:
		if c.Container == n.A {
			return Cursor{Container: n.B, Index: 0}
		}
		return c
	case KindSuperscript:
		return t.exitComposite(owner)
	case KindSigmaPi:
		switch c.Container {
		case n.A: // start -> finish
			return Cursor{Container: n.B, Index: 0}
		case n.B: // finish -> body
			return Cursor{Container: n.C, Index: 0}
		default: // body -> start (cycles)
			return Cursor{Container: n.A, Index: 0}
		}
	case KindMatrix:
		return t.matrixMove(n, c, n.Cols)
	case KindPiecewise:
		return t.piecewiseMoveRow(n, c, 1)
	default:
		return c
	}
}

func (t *Tree) exitComposite(composite Ref) Cursor {
	ownerContainer := t.node(composite).Parent
	idx := t.IndexOf(ownerContainer, composite)
	return Cursor{Container: ownerContainer, Index: idx + 1}
}

func (t *Tree) matrixMove(n *Node, c Cursor, delta int) Cursor {
	for i, cell := range n.Cells {
		if cell == c.Container {
			j := i + delta
			if j < 0 || j >= len(n.Cells) {
				return c
			}
			return Cursor{Container: n.Cells[j], Index: t.ChildCount(n.Cells[j])}
		}
	}
	return c
}

func (t *Tree) piecewiseMoveRow(n *Node, c Cursor, delta int) Cursor {
	for i := 0; i < n.PieceCount; i++ {
		var col []Ref
		if c.Container == n.Values[i] {
			col = n.Values
		} else if c.Container == n.Conditions[i] {
			col = n.Conditions
		} else {
			continue
		}
		j := i + delta
		if j < 0 || j >= n.PieceCount {
			return c
		}
		return Cursor{Container: col[j], Index: t.ChildCount(col[j])}
	}
	return c
}

// VisualShape is the cursor's on-screen caret: a thin vertical bar the
// width of the editor's thinnest glyph stroke, at the given position, sized
// to the height of an empty container when nothing else anchors it — the
// tree never owns a blink timer (§4.1 closing paragraph); that's the entry
// controller's job, driven by a periodic external tick.
type VisualShape struct {
	X, Y, W, H int
}

// Shape computes the blink caret's screen position for c, using
// emptyContainerHeight as the height when the container has no height of
// its own (so the caret is visible even with nothing to anchor against).
func (t *Tree) Shape(c Cursor) VisualShape {
	const caretWidth = 2
	n := t.node(c.Container)
	x := n.X
	for i := 0; i < c.Index; i++ {
		w, _, _ := t.dims(n.Children[i])
		x += w + interChildSpacing
	}
	h := n.Height
	if h == 0 {
		h = emptyContainerHeight
	}
	return VisualShape{X: x, Y: n.Y, W: caretWidth, H: h}
}
