package neda

import "github.com/nspire-go/neda/glyph"

// Draw paints ref and its entire subtree onto p, using store for glyph
// bitmaps and line/bar strokes for the connective glyphs NEDA draws itself
// (fraction bars, radical signs, abs bars, bracket strokes, Σ/Π symbols) —
// the same split the teacher's Buffer.DrawBorder/WriteString pair makes
// between "ask the font for a glyph" and "draw a rule directly".
func (t *Tree) Draw(p glyph.Plotter, store *glyph.Store, ref Ref) {
	n := t.node(ref)
	switch n.Kind {
	case KindChar:
		glyph.DrawString(p, store, n.X, n.Y-store.Height(n.Byte)/2, []byte{n.Byte}, 0, glyph.AlignLeft, false)
	case KindLeftBracket, KindRightBracket:
		drawVerticalBar(p, n.X+1, n.Y, n.Height)
	case KindContainer:
		for _, c := range n.Children {
			t.Draw(p, store, c)
		}
	case KindFraction:
		numW, numH, _ := t.dims(n.A)
		denW, _, _ := t.dims(n.B)
		barW := numW
		if denW > barW {
			barW = denW
		}
		barY := n.Y + numH + fractionBarGap
		drawHorizontalBar(p, n.X, barY, n.Width)
		_ = barW
		t.Draw(p, store, n.A)
		t.Draw(p, store, n.B)
	case KindRadical:
		drawRadicalSign(p, n.X, n.Y, n.Width, n.Height)
		t.Draw(p, store, n.A)
		if n.B != RefNil {
			t.Draw(p, store, n.B)
		}
	case KindSuperscript, KindSubscript:
		t.Draw(p, store, n.A)
	case KindSigmaPi:
		sym := byte(glyph.GlyphSigma)
		if n.Op == BigPi {
			sym = glyph.GlyphPi
		}
		startW, _, _ := t.dims(n.A)
		finishW, finishH, _ := t.dims(n.B)
		boundW := startW
		if finishW > boundW {
			boundW = finishW
		}
		if sigmaSymbolW > boundW {
			boundW = sigmaSymbolW
		}
		symY := n.Y + finishH + sigmaPiGap
		glyph.DrawString(p, store, n.X+(boundW-sigmaSymbolW)/2, symY, []byte{sym}, 0, glyph.AlignLeft, false)
		t.Draw(p, store, n.A)
		t.Draw(p, store, n.B)
		t.Draw(p, store, n.C)
	case KindMatrix:
		drawVerticalBar(p, n.X, n.Y, n.Height)
		drawVerticalBar(p, n.X+n.Width-1, n.Y, n.Height)
		for _, c := range n.Cells {
			t.Draw(p, store, c)
		}
	case KindPiecewise:
		drawVerticalBar(p, n.X, n.Y, n.Height)
		for i := 0; i < n.PieceCount; i++ {
			t.Draw(p, store, n.Values[i])
			t.Draw(p, store, n.Conditions[i])
		}
	case KindAbs:
		drawVerticalBar(p, n.X, n.Y, n.Height)
		drawVerticalBar(p, n.X+n.Width-1, n.Y, n.Height)
		t.Draw(p, store, n.A)
	}
}

func drawHorizontalBar(p glyph.Plotter, x, y, w int) {
	for i := 0; i < w; i++ {
		p.SetPixel(x+i, y, true)
	}
}

func drawVerticalBar(p glyph.Plotter, x, y, h int) {
	for i := 0; i < h; i++ {
		p.SetPixel(x, y+i, true)
	}
}

// drawRadicalSign draws a minimal check-then-bar radical stroke spanning
// the full box: a vertical stroke down the whole height near the left
// edge, and a horizontal bar along the top covering the contents.
func drawRadicalSign(p glyph.Plotter, x, y, w, h int) {
	const signWidth = 3
	for i := 0; i < h; i++ {
		p.SetPixel(x+signWidth-1, y+i, true)
	}
	for i := signWidth; i < w; i++ {
		p.SetPixel(x+i, y, true)
	}
}
