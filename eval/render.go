package eval

import (
	"strconv"

	"github.com/nspire-go/neda"
	"github.com/nspire-go/neda/glyph"
)

// Render serializes v back into dst, an empty NEDA container, per §4.4. err
// (from Evaluate) takes priority: a non-nil err renders the syntax-error
// glyph regardless of v.
func Render(t *neda.Tree, dst neda.Ref, v Value, s Settings, err error) {
	if err != nil {
		appendByte(t, dst, glyph.GlyphSyntaxError)
		return
	}
	switch x := v.(type) {
	case Numerical:
		renderNumerical(t, dst, x, s)
	case *Matrix:
		renderMatrix(t, dst, x, s)
	default:
		appendByte(t, dst, glyph.GlyphSyntaxError)
	}
}

func renderNumerical(t *neda.Tree, dst neda.Ref, n Numerical, s Settings) {
	if n.IsNaN() {
		appendByte(t, dst, glyph.GlyphMathError)
		return
	}
	if n.IsInteger() {
		num, _, _ := n.Fraction()
		appendDigits(t, dst, strconv.FormatInt(num, 10))
		return
	}
	// With AutoFractions off (the Approx key, or the decimal result view)
	// an exact fraction is shown as a decimal instead of a Fraction node.
	if !n.IsFloat() && s.AutoFractions {
		num, den, _ := n.Fraction()
		renderFraction(t, dst, num, den, s)
		return
	}
	renderDecimal(t, dst, n.AsFloat(), s)
}

func renderFraction(t *neda.Tree, dst neda.Ref, num, den int64, s Settings) {
	if s.AsMixedNumber && abs64(num) > den {
		whole := num / den
		rem := num % den
		appendDigits(t, dst, strconv.FormatInt(whole, 10))
		appendFractionNode(t, dst, rem, den)
		return
	}
	appendFractionNode(t, dst, num, den)
}

func appendFractionNode(t *neda.Tree, dst neda.Ref, num, den int64) {
	neg := num < 0
	if neg {
		appendByte(t, dst, '-')
		num = -num
	}
	fr, ok := t.NewFraction()
	if !ok {
		return
	}
	n := t.Node(fr)
	appendDigits(t, n.A, strconv.FormatInt(num, 10))
	appendDigits(t, n.B, strconv.FormatInt(den, 10))
	t.Append(dst, fr)
}

func renderDecimal(t *neda.Tree, dst neda.Ref, f float64, s Settings) {
	digs := s.SignificantDigs
	if digs <= 0 {
		digs = 10
	}
	text := strconv.FormatFloat(f, 'g', digs, 64)
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b == 'e' {
			appendByte(t, dst, glyph.GlyphEllipsis)
			continue
		}
		appendByte(t, dst, b)
	}
}

func renderMatrix(t *neda.Tree, dst neda.Ref, m *Matrix, s Settings) {
	mr, ok := t.NewMatrix(m.Rows, m.Cols)
	if !ok {
		appendByte(t, dst, glyph.GlyphSyntaxError)
		return
	}
	n := t.Node(mr)
	for i, cell := range n.Cells {
		renderNumerical(t, cell, m.Entries[i], s)
	}
	t.Append(dst, mr)
}

func appendDigits(t *neda.Tree, dst neda.Ref, s string) {
	for i := 0; i < len(s); i++ {
		appendByte(t, dst, s[i])
	}
}

func appendByte(t *neda.Tree, dst neda.Ref, b byte) {
	c, ok := t.NewChar(b)
	if !ok {
		return
	}
	t.Append(dst, c)
}
