package neda

// Position assigns ref's on-screen (x, y) and recurses into its children,
// using the cached Width/Height/TopSpacing every node already carries.
// Mirrors the teacher's two-phase layout (measure bottom-up via recompute,
// position top-down via Position) generalized from box-stacking to the
// math layout rules of §4.1: containers align children along a shared
// baseline (topSpacing), composites place their operand boxes relative to
// that baseline and to each other.
func (t *Tree) Position(ref Ref, x, y int) {
	n := t.node(ref)
	n.X, n.Y = x, y
	switch n.Kind {
	case KindChar, KindLeftBracket, KindRightBracket:
		// Leaves: nothing further to position.
	case KindContainer:
		t.positionContainer(n, x, y)
	case KindFraction:
		t.positionFraction(n, x, y)
	case KindRadical:
		t.positionRadical(n, x, y)
	case KindSuperscript, KindSubscript:
		t.Position(n.A, x, y)
	case KindSigmaPi:
		t.positionSigmaPi(n, x, y)
	case KindMatrix:
		t.positionMatrix(n, x, y)
	case KindPiecewise:
		t.positionPiecewise(n, x, y)
	case KindAbs:
		const barWidth = 2
		t.Position(n.A, x+barWidth, y)
	}
}

func (t *Tree) positionContainer(n *Node, x, y int) {
	curX := x
	for _, c := range n.Children {
		_, _, ctop := t.dims(c)
		cw, _, _ := t.dims(c)
		t.Position(c, curX, y+(n.TopSpacing-ctop))
		curX += cw + interChildSpacing
	}
}

func (t *Tree) positionFraction(n *Node, x, y int) {
	numW, numH, _ := t.dims(n.A)
	denW, _, _ := t.dims(n.B)
	t.Position(n.A, x+(n.Width-numW)/2, y)
	denY := y + numH + 2*fractionBarGap
	t.Position(n.B, x+(n.Width-denW)/2, denY)
}

func (t *Tree) positionRadical(n *Node, x, y int) {
	const signWidth = 3
	if n.B == RefNil {
		t.Position(n.A, x+signWidth, y+radicalHeightPad/2)
		return
	}
	indexW, indexH, _ := t.dims(n.B)
	indexH -= radicalIndexHPad
	if indexH < 0 {
		indexH = 0
	}
	t.Position(n.B, x, y)
	t.Position(n.A, x+indexW+signWidth, y+indexH+radicalHeightPad/2)
}

func (t *Tree) positionSigmaPi(n *Node, x, y int) {
	startW, _, _ := t.dims(n.A)
	finishW, finishH, _ := t.dims(n.B)
	_, bodyH, _ := t.dims(n.C)

	boundW := startW
	if finishW > boundW {
		boundW = finishW
	}
	if sigmaSymbolW > boundW {
		boundW = sigmaSymbolW
	}

	t.Position(n.B, x+(boundW-finishW)/2, y)
	symbolY := y + finishH + sigmaPiGap
	startY := symbolY + sigmaSymbolH + sigmaPiGap
	t.Position(n.A, x+(boundW-startW)/2, startY)

	bodyX := x + boundW + interChildSpacing
	bodyY := y + (n.Height-bodyH)/2
	t.Position(n.C, bodyX, bodyY)
}

func (t *Tree) positionMatrix(n *Node, x, y int) {
	if n.Rows == 0 || n.Cols == 0 {
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
	const bracketPad = 3
	curY := y
	for r := 0; r < n.Rows; r++ {
		curX := x + bracketPad
		for c := 0; c < n.Cols; c++ {
			cell := n.Cells[r*n.Cols+c]
			_, _, ctop := t.dims(cell)
			t.Position(cell, curX, curY+(rowTop[r]-ctop))
			curX += colWidth[c] + interChildSpacing
		}
		curY += rowTop[r] + rowBelow[r] + interChildSpacing
	}
}

func (t *Tree) positionPiecewise(n *Node, x, y int) {
	var valuesW int
	for i := 0; i < n.PieceCount; i++ {
		vw, _, _ := t.dims(n.Values[i])
		if vw > valuesW {
			valuesW = vw
		}
	}
	const colGap = 6
	condX := x + valuesW + colGap
	curY := y
	for i := 0; i < n.PieceCount; i++ {
		vw, vh, _ := t.dims(n.Values[i])
		_, ch, _ := t.dims(n.Conditions[i])
		rowH := vh
		if ch > rowH {
			rowH = ch
		}
		t.Position(n.Values[i], x+(valuesW-vw), curY+(rowH-vh)/2)
		t.Position(n.Conditions[i], condX, curY+(rowH-ch)/2)
		curY += rowH + interChildSpacing
	}
}
