package neda

import "testing"

// fixedMetrics gives every glyph the same fixed size, so layout tests can
// reason about exact numbers without depending on glyph/table.go's font.
type fixedMetrics struct{ w, h int }

func (m fixedMetrics) Width(byte) int  { return m.w }
func (m fixedMetrics) Height(byte) int { return m.h }

func newTestTree() *Tree { return NewTree(fixedMetrics{w: 4, h: 8}) }

func mustChar(t *Tree, c byte) Ref {
	ref, ok := t.NewChar(c)
	if !ok {
		panic("alloc failed")
	}
	return ref
}

func TestEmptyContainerHasFixedSize(t *testing.T) {
	tr := newTestTree()
	w, h, top := tr.Dims(tr.Root())
	if w != emptyContainerWidth || h != emptyContainerHeight || top != emptyContainerTop {
		t.Fatalf("empty container dims = (%d,%d,%d), want (%d,%d,%d)",
			w, h, top, emptyContainerWidth, emptyContainerHeight, emptyContainerTop)
	}
}

func TestContainerWidthSumsChildrenPlusSpacing(t *testing.T) {
	tr := newTestTree()
	a := mustChar(tr, 'a')
	b := mustChar(tr, 'b')
	tr.Append(tr.Root(), a)
	tr.Append(tr.Root(), b)
	w, _, _ := tr.Dims(tr.Root())
	if want := 4 + interChildSpacing + 4; w != want {
		t.Fatalf("width = %d, want %d", w, want)
	}
}

func TestCachedDimsMatchFreshRecompute(t *testing.T) {
	tr := newTestTree()
	frac, _ := tr.NewFraction()
	tr.Append(tr.Root(), frac)
	n := tr.Node(frac)
	tr.Append(n.A, mustChar(tr, '1'))
	tr.Append(n.B, mustChar(tr, '2'))

	wantW, wantH, wantTop := tr.Dims(frac)
	tr.RecomputeSubtree(tr.Root())
	gotW, gotH, gotTop := tr.Dims(frac)
	if gotW != wantW || gotH != wantH || gotTop != wantTop {
		t.Fatalf("recompute drift: (%d,%d,%d) != (%d,%d,%d)", gotW, gotH, gotTop, wantW, wantH, wantTop)
	}
}

func TestTopSpacingNeverExceedsHeight(t *testing.T) {
	tr := newTestTree()
	frac, _ := tr.NewFraction()
	tr.Append(tr.Root(), frac)
	n := tr.Node(frac)
	tr.Append(n.A, mustChar(tr, '1'))
	tr.Append(n.B, mustChar(tr, '2'))

	_, h, top := tr.Dims(tr.Root())
	if top > h {
		t.Fatalf("top_spacing %d exceeds height %d", top, h)
	}
}

func TestBracketPairAutoSizesToTallestEnclosed(t *testing.T) {
	tr := newTestTree()
	lb, _ := tr.NewBracket(true, '(')
	rb, _ := tr.NewBracket(false, ')')
	frac, _ := tr.NewFraction()
	fn := tr.Node(frac)
	tr.Append(fn.A, mustChar(tr, '1'))
	tr.Append(fn.B, mustChar(tr, '2'))

	tr.Append(tr.Root(), lb)
	tr.Append(tr.Root(), frac)
	tr.Append(tr.Root(), rb)

	_, fracH, _ := tr.Dims(frac)
	lbNode := tr.Node(lb)
	if lbNode.Height != fracH {
		t.Fatalf("left bracket height = %d, want %d", lbNode.Height, fracH)
	}
	if tr.Node(rb).Height != fracH {
		t.Fatalf("right bracket height = %d, want %d", tr.Node(rb).Height, fracH)
	}
	if lbNode.Match != rb {
		t.Fatalf("left bracket did not match right bracket")
	}
}

func TestRemoveAtFreesSubtreeAndRecomputes(t *testing.T) {
	tr := newTestTree()
	a := mustChar(tr, 'a')
	b := mustChar(tr, 'b')
	tr.Append(tr.Root(), a)
	tr.Append(tr.Root(), b)
	tr.RemoveAt(tr.Root(), 0)
	if tr.Live(a) {
		t.Fatalf("removed node still live")
	}
	w, _, _ := tr.Dims(tr.Root())
	if w != 4 {
		t.Fatalf("width after removal = %d, want 4", w)
	}
}

func TestSuperscriptSitsAboveSubscriptBelow(t *testing.T) {
	tr := newTestTree()
	base := mustChar(tr, 'x')
	tr.Append(tr.Root(), base)

	sup, _ := tr.NewSuperscript()
	tr.Append(tr.Node(sup).A, mustChar(tr, '2'))
	tr.Append(tr.Root(), sup)

	rootTop := tr.Node(tr.Root()).TopSpacing
	_, _, baseTop := tr.Dims(base)
	_, _, supTop := tr.Dims(sup)
	if supTop <= baseTop {
		t.Fatalf("superscript top_spacing %d should exceed a plain glyph's %d", supTop, baseTop)
	}
	baseY := rootTop - baseTop
	supY := rootTop - supTop
	if supY >= baseY {
		t.Fatalf("superscript y-offset %d should be smaller (higher) than base's %d", supY, baseY)
	}

	sub, _ := tr.NewSubscript()
	tr.Append(tr.Node(sub).A, mustChar(tr, '1'))
	tr.Append(tr.Root(), sub)
	_, _, subTop := tr.Dims(sub)
	if subTop != 0 {
		t.Fatalf("subscript top_spacing = %d, want 0", subTop)
	}
}

func TestMaxNodesAbortsEdit(t *testing.T) {
	tr := newTestTree()
	tr.MaxNodes = 2 // root + one char only
	a, ok := tr.NewChar('a')
	if !ok {
		t.Fatalf("first alloc should succeed")
	}
	if !tr.Append(tr.Root(), a) {
		t.Fatalf("first insert should succeed")
	}
	_, ok = tr.NewChar('b')
	if ok {
		t.Fatalf("alloc should fail once MaxNodes is reached")
	}
}
