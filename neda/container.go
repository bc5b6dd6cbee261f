package neda

// Insert places child at index within container, shifting later children
// right. Returns false (edit aborted, tree unchanged) if growth fails,
// realizing the §7 out-of-memory rule. index must be in [0, len(children)].
func (t *Tree) Insert(container Ref, index int, child Ref) bool {
	c := t.node(container)
	if c.Kind != KindContainer {
		return false
	}
	if index < 0 || index > len(c.Children) {
		return false
	}
	if t.MaxNodes > 0 && t.liveCount() > t.MaxNodes {
		return false
	}
	c.Children = append(c.Children, RefNil)
	copy(c.Children[index+1:], c.Children[index:])
	c.Children[index] = child
	t.node(child).Parent = container
	t.recomputeUp(container)
	return true
}

// Append inserts child at the end of container.
func (t *Tree) Append(container Ref, child Ref) bool {
	return t.Insert(container, len(t.node(container).Children), child)
}

// RemoveAt deletes (and frees, subtree included) the child at index within
// container. No-op (and reports false) if index is out of range — this is
// how the Delete key's "no-op at index 0 of the top-level container"
// boundary case is realized by callers: they check the index before
// calling RemoveAt, but RemoveAt itself stays safe regardless.
func (t *Tree) RemoveAt(container Ref, index int) bool {
	c := t.node(container)
	if index < 0 || index >= len(c.Children) {
		return false
	}
	child := c.Children[index]
	copy(c.Children[index:], c.Children[index+1:])
	c.Children = c.Children[:len(c.Children)-1]
	t.freeNode(child)
	t.recomputeUp(container)
	return true
}

// Clear replaces the top-level container's children with an empty list,
// realizing the Clear key (§4.2): "replace the top-level Container with an
// empty one". We keep the same Ref rather than reallocating so any
// outstanding cursor referencing the root container stays valid and simply
// ends up pointing at index 0 of an empty container.
func (t *Tree) Clear() {
	root := t.node(t.root)
	for _, c := range root.Children {
		t.freeNode(c)
	}
	root.Children = root.Children[:0]
	t.recompute(t.root)
}

// ChildCount returns len(container.Children).
func (t *Tree) ChildCount(container Ref) int {
	return len(t.node(container).Children)
}

// ChildAt returns the child Ref at index, or RefNil if out of range.
func (t *Tree) ChildAt(container Ref, index int) Ref {
	c := t.node(container)
	if index < 0 || index >= len(c.Children) {
		return RefNil
	}
	return c.Children[index]
}

// IndexOf returns the index of child within its parent container, or -1.
func (t *Tree) IndexOf(container, child Ref) int {
	for i, c := range t.node(container).Children {
		if c == child {
			return i
		}
	}
	return -1
}

// --- Composite constructors ---
// Each allocates its operand container(s) up front and wires Parent links,
// satisfying invariant 2 of §3 ("parent is set iff it is inside a Container
// or operand slot").

// NewFraction allocates a Fraction with two empty operand containers.
func (t *Tree) NewFraction() (Ref, bool) {
	ref, ok := t.alloc(KindFraction)
	if !ok {
		return RefNil, false
	}
	num, ok1 := t.alloc(KindContainer)
	den, ok2 := t.alloc(KindContainer)
	if !ok1 || !ok2 {
		t.freeNode(ref)
		if ok1 {
			t.freeNode(num)
		}
		if ok2 {
			t.freeNode(den)
		}
		return RefNil, false
	}
	n := t.node(ref)
	n.A, n.B = num, den
	t.node(num).Parent = ref
	t.node(den).Parent = ref
	t.recompute(ref)
	return ref, true
}

// NewRadical allocates a Radical. withIndex controls whether an index
// container (the "n" in n-th root) is allocated; absent means square root.
func (t *Tree) NewRadical(withIndex bool) (Ref, bool) {
	ref, ok := t.alloc(KindRadical)
	if !ok {
		return RefNil, false
	}
	contents, ok1 := t.alloc(KindContainer)
	if !ok1 {
		t.freeNode(ref)
		return RefNil, false
	}
	n := t.node(ref)
	n.A = contents
	t.node(contents).Parent = ref
	if withIndex {
		idx, ok2 := t.alloc(KindContainer)
		if !ok2 {
			t.freeNode(ref)
			return RefNil, false
		}
		n.B = idx
		t.node(idx).Parent = ref
	}
	t.recompute(ref)
	return ref, true
}

// NewSuperscript allocates a Superscript with one empty contents container.
func (t *Tree) NewSuperscript() (Ref, bool) { return t.newUnarySlot(KindSuperscript) }

// NewSubscript allocates a Subscript with one empty contents container.
func (t *Tree) NewSubscript() (Ref, bool) { return t.newUnarySlot(KindSubscript) }

// NewAbs allocates an Abs with one empty contents container.
func (t *Tree) NewAbs() (Ref, bool) { return t.newUnarySlot(KindAbs) }

func (t *Tree) newUnarySlot(kind Kind) (Ref, bool) {
	ref, ok := t.alloc(kind)
	if !ok {
		return RefNil, false
	}
	contents, ok1 := t.alloc(KindContainer)
	if !ok1 {
		t.freeNode(ref)
		return RefNil, false
	}
	n := t.node(ref)
	n.A = contents
	t.node(contents).Parent = ref
	t.recompute(ref)
	return ref, true
}

// NewSigmaPi allocates a summation/product node with its three operand
// containers (start bound, finish bound, body).
func (t *Tree) NewSigmaPi(op BigOp) (Ref, bool) {
	ref, ok := t.alloc(KindSigmaPi)
	if !ok {
		return RefNil, false
	}
	start, ok1 := t.alloc(KindContainer)
	finish, ok2 := t.alloc(KindContainer)
	body, ok3 := t.alloc(KindContainer)
	if !ok1 || !ok2 || !ok3 {
		t.freeNode(ref)
		return RefNil, false
	}
	n := t.node(ref)
	n.A, n.B, n.C, n.Op = start, finish, body, op
	t.node(start).Parent = ref
	t.node(finish).Parent = ref
	t.node(body).Parent = ref
	t.recompute(ref)
	return ref, true
}

// NewMatrix allocates an m×n matrix of empty cell containers, row-major.
func (t *Tree) NewMatrix(rows, cols int) (Ref, bool) {
	ref, ok := t.alloc(KindMatrix)
	if !ok {
		return RefNil, false
	}
	n := t.node(ref)
	n.Rows, n.Cols = rows, cols
	n.Cells = make([]Ref, rows*cols)
	for i := range n.Cells {
		cell, ok := t.alloc(KindContainer)
		if !ok {
			t.freeNode(ref)
			return RefNil, false
		}
		n.Cells[i] = cell
		t.node(cell).Parent = ref
	}
	t.recompute(ref)
	return ref, true
}

// Cell returns the container for matrix cell (row, col).
func (t *Tree) Cell(matrix Ref, row, col int) Ref {
	n := t.node(matrix)
	return n.Cells[row*n.Cols+col]
}

// NewPiecewise allocates a k-piece piecewise expression with k value
// containers and k condition containers.
func (t *Tree) NewPiecewise(k int) (Ref, bool) {
	ref, ok := t.alloc(KindPiecewise)
	if !ok {
		return RefNil, false
	}
	n := t.node(ref)
	n.PieceCount = k
	n.Values = make([]Ref, k)
	n.Conditions = make([]Ref, k)
	for i := 0; i < k; i++ {
		v, ok1 := t.alloc(KindContainer)
		c, ok2 := t.alloc(KindContainer)
		if !ok1 || !ok2 {
			t.freeNode(ref)
			return RefNil, false
		}
		n.Values[i], n.Conditions[i] = v, c
		t.node(v).Parent = ref
		t.node(c).Parent = ref
	}
	t.recompute(ref)
	return ref, true
}

// NewBracket allocates an unmatched bracket leaf; glyph is e.g. '(' or ')'.
// Brackets are leaves like Char but get their own Kind so layout can
// auto-size them against their match (§4.1).
func (t *Tree) NewBracket(left bool, glyph byte) (Ref, bool) {
	kind := KindRightBracket
	if left {
		kind = KindLeftBracket
	}
	ref, ok := t.alloc(kind)
	if !ok {
		return RefNil, false
	}
	t.node(ref).Byte2 = glyph
	return ref, true
}
