package neda

// Layout constants taken verbatim from §4.1 of the specification.
const (
	emptyContainerWidth  = 5
	emptyContainerHeight = 9
	emptyContainerTop    = 4 // < height, satisfying invariant 3

	interChildSpacing = 3 // "3*(n-1) inter-child spacing"

	fractionBarGap  = 1 // gap above and below the bar
	fractionPadding = 2 // horizontal padding so the bar outruns narrow operands

	superscriptOverlap = 4 // "overlap constant = 4"

	radicalPad       = 8 // width padding when there is no index
	radicalHeightPad = 2
	radicalIndexWPad = 1 // "max(0, n_w - 1)"
	radicalIndexHPad = 7 // "max(0, n_h - 7)"

	sigmaPiGap = 2 // gaps around the big-operator symbol in the stacked bound block

	sigmaSymbolW, sigmaSymbolH = 5, 7 // normal-font glyph size for Σ/Π
)

// Metrics supplies glyph sizes to the layout engine. *glyph.Store satisfies
// this implicitly — neda never imports glyph to keep the dependency
// one-directional (glyph is the leaf package).
type Metrics interface {
	Width(c byte) int
	Height(c byte) int
}

// dims returns ref's current width/height/top-spacing, reading the glyph
// store fresh for Char nodes (§3: Char "does not carry its own layout
// cache") and the cache for everything else.
func (t *Tree) dims(ref Ref) (w, h, top int) {
	n := t.node(ref)
	if n.Kind == KindChar {
		w, h := t.metrics.Width(n.Byte), t.metrics.Height(n.Byte)
		return w, h, h / 2
	}
	return n.Width, n.Height, n.TopSpacing
}

// Dims exposes dims publicly for callers outside the package (drawing,
// cursor visual shape, the evaluator's rendered-result containers).
func (t *Tree) Dims(ref Ref) (w, h, top int) { return t.dims(ref) }

// recompute computes ref's own Width/Height/TopSpacing from its immediate
// children or operand slots, which must already hold correct cached values
// — this is the O(depth) incremental step that recomputeUp chains upward
// through the tree after an edit, per invariant 4 ("recompute geometry
// whenever they or their children change").
func (t *Tree) recompute(ref Ref) {
	n := t.node(ref)
	switch n.Kind {
	case KindChar:
		// Never cached: "does not carry its own layout cache" (§3).
		return
	case KindContainer:
		t.recomputeContainer(n)
	case KindFraction:
		t.recomputeFraction(n)
	case KindLeftBracket, KindRightBracket:
		t.recomputeBracket(n)
	case KindRadical:
		t.recomputeRadical(n)
	case KindSuperscript, KindSubscript:
		t.recomputeScript(n)
	case KindSigmaPi:
		t.recomputeSigmaPi(n)
	case KindMatrix:
		t.recomputeMatrix(n)
	case KindPiecewise:
		t.recomputePiecewise(n)
	case KindAbs:
		t.recomputeAbs(n)
	}
}

// recomputeUp recomputes ref and every ancestor up to the root, in a single
// upward pass. Called after any edit whose effects must propagate (§3
// invariant 4).
func (t *Tree) recomputeUp(ref Ref) {
	cur := ref
	for {
		t.recompute(cur)
		parent := t.node(cur).Parent
		if parent == RefNil {
			return
		}
		cur = parent
	}
}

// RecomputeSubtree recursively recomputes ref and its entire subtree,
// bottom-up. Used for verification (§8's "cached dims equal value computed
// fresh") and to establish geometry on trees built node-by-node outside the
// normal Insert/Append path.
func (t *Tree) RecomputeSubtree(ref Ref) {
	if !t.Live(ref) {
		return
	}
	n := t.node(ref)
	for _, c := range n.Children {
		t.RecomputeSubtree(c)
	}
	for _, c := range n.Cells {
		t.RecomputeSubtree(c)
	}
	for _, c := range n.Values {
		t.RecomputeSubtree(c)
	}
	for _, c := range n.Conditions {
		t.RecomputeSubtree(c)
	}
	for _, c := range []Ref{n.A, n.B, n.C} {
		if c != RefNil {
			t.RecomputeSubtree(c)
		}
	}
	t.recompute(ref)
}

func (t *Tree) recomputeContainer(n *Node) {
	if len(n.Children) == 0 {
		n.Width, n.Height, n.TopSpacing = emptyContainerWidth, emptyContainerHeight, emptyContainerTop
		return
	}
	t.resolveBrackets(n)
	var w, maxBelow, maxTop int
	for i, c := range n.Children {
		cw, ch, ctop := t.dims(c)
		if i > 0 {
			w += interChildSpacing
		}
		w += cw
		if below := ch - ctop; below > maxBelow {
			maxBelow = below
		}
		if ctop > maxTop {
			maxTop = ctop
		}
	}
	n.Width = w
	n.Height = maxBelow + maxTop
	n.TopSpacing = maxTop
}

func (t *Tree) recomputeFraction(n *Node) {
	numW, numH, _ := t.dims(n.A)
	denW, denH, _ := t.dims(n.B)
	width := numW
	if denW > width {
		width = denW
	}
	n.Width = width + fractionPadding
	n.Height = numH + fractionBarGap + fractionBarGap + denH
	n.TopSpacing = numH + 1
}

func (t *Tree) recomputeBracket(n *Node) {
	// Bracket auto-sizing against its match is done by ResolveBrackets,
	// which sets Height/TopSpacing directly once the matching partner and
	// the tallest enclosed expression are known. Absent a resolved match
	// (unmatched bracket), fall back to a single glyph cell.
	if n.Height == 0 {
		n.Width, n.Height, n.TopSpacing = 5, 7, 3
	}
}

func (t *Tree) recomputeRadical(n *Node) {
	contW, contH, contTop := t.dims(n.A)
	if n.B == RefNil {
		n.Width = contW + radicalPad
		n.Height = contH + radicalHeightPad
	} else {
		nW, nH, _ := t.dims(n.B)
		indexW := nW - radicalIndexWPad
		if indexW < 0 {
			indexW = 0
		}
		indexH := nH - radicalIndexHPad
		if indexH < 0 {
			indexH = 0
		}
		n.Width = indexW + contW + radicalPad
		n.Height = indexH + contH + radicalHeightPad
	}
	n.TopSpacing = contTop + 1
}

// recomputeScript sets TopSpacing so container alignment (which places a
// child at y+(containerTopSpacing-childTopSpacing)) sits a superscript high
// and a subscript low. A superscript's TopSpacing is its full height,
// clamped up to at least superscriptOverlap, so a sibling with TopSpacing s
// is pushed down by max(0, exp_h-s) while the exponent itself stays at the
// container's top edge. That equals the documented
// max(0, exp_h-superscriptOverlap) only when s is superscriptOverlap; an
// ordinary glyph's s is its height/2 (3 for a 7-row glyph), which pushes it
// one pixel further. A subscript's
// TopSpacing of 0 places it, symmetrically, entirely below that line.
func (t *Tree) recomputeScript(n *Node) {
	w, h, _ := t.dims(n.A)
	n.Width = w
	n.Height = h
	if n.Kind == KindSuperscript {
		n.TopSpacing = h
		if n.TopSpacing < superscriptOverlap {
			n.TopSpacing = superscriptOverlap
		}
	} else {
		n.TopSpacing = 0 // sits entirely below the shared baseline
	}
}

func (t *Tree) recomputeSigmaPi(n *Node) {
	startW, startH, _ := t.dims(n.A)
	finishW, finishH, _ := t.dims(n.B)
	bodyW, bodyH, bodyTop := t.dims(n.C)

	boundW := startW
	if finishW > boundW {
		boundW = finishW
	}
	if sigmaSymbolW > boundW {
		boundW = sigmaSymbolW
	}
	topBlockH := finishH + sigmaPiGap + sigmaSymbolH + sigmaPiGap + startH

	n.Width = boundW + interChildSpacing + bodyW
	n.Height = topBlockH
	if bodyH > n.Height {
		n.Height = bodyH
	}
	half := topBlockH / 2
	if bodyTop > half {
		n.TopSpacing = bodyTop
	} else {
		n.TopSpacing = half
	}
}

func (t *Tree) recomputeMatrix(n *Node) {
	if n.Rows == 0 || n.Cols == 0 {
		n.Width, n.Height, n.TopSpacing = emptyContainerWidth, emptyContainerHeight, emptyContainerTop
		return
	}
	colWidth := make([]int, n.Cols)
	rowTop := make([]int, n.Rows)
	rowBelow := make([]int, n.Rows)
	for r := 0; r < n.Rows; r++ {
		for c := 0; c < n.Cols; c++ {
			cw, ch, ctop := t.dims(n.Cells[r*n.Cols+c])
			if cw > colWidth[c] {
				colWidth[c] = cw
			}
			if ctop > rowTop[r] {
				rowTop[r] = ctop
			}
			if below := ch - ctop; below > rowBelow[r] {
				rowBelow[r] = below
			}
		}
	}
	w, h := 0, 0
	for c, cw := range colWidth {
		if c > 0 {
			w += interChildSpacing
		}
		w += cw
	}
	for r := 0; r < n.Rows; r++ {
		if r > 0 {
			h += interChildSpacing
		}
		h += rowTop[r] + rowBelow[r]
	}
	const bracketPad = 6 // room for the enclosing [ ] brackets
	n.Width = w + bracketPad
	n.Height = h
	n.TopSpacing = h / 2
}

func (t *Tree) recomputePiecewise(n *Node) {
	var valuesW, condW, h int
	for i := 0; i < n.PieceCount; i++ {
		vw, vh, _ := t.dims(n.Values[i])
		cw, ch, _ := t.dims(n.Conditions[i])
		if vw > valuesW {
			valuesW = vw
		}
		if cw > condW {
			condW = cw
		}
		rowH := vh
		if ch > rowH {
			rowH = ch
		}
		if i > 0 {
			h += interChildSpacing
		}
		h += rowH
	}
	const colGap = 6 // gap between the two aligned columns, plus brace
	n.Width = valuesW + colGap + condW
	n.Height = h
	n.TopSpacing = h / 2
}

func (t *Tree) recomputeAbs(n *Node) {
	w, h, top := t.dims(n.A)
	const barWidth = 2 * 2 // a bar glyph on each side
	n.Width = w + barWidth
	n.Height = h
	n.TopSpacing = top
}
