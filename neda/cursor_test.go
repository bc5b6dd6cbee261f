package neda

import "testing"

func TestLeftAtTopLevelStartIsNoOp(t *testing.T) {
	tr := newTestTree()
	c := tr.AtStart()
	got := tr.Left(c)
	if got != c {
		t.Fatalf("Left at start moved: %+v", got)
	}
}

func TestRightAtTopLevelEndIsNoOp(t *testing.T) {
	tr := newTestTree()
	tr.Append(tr.Root(), mustChar(tr, 'a'))
	c := tr.AtEnd()
	got := tr.Right(c)
	if got != c {
		t.Fatalf("Right at end moved: %+v", got)
	}
}

func TestLeftThenRightRoundTrips(t *testing.T) {
	tr := newTestTree()
	tr.Append(tr.Root(), mustChar(tr, 'a'))
	tr.Append(tr.Root(), mustChar(tr, 'b'))
	start := tr.AtEnd()
	left := tr.Left(start)
	back := tr.Right(left)
	if back != start {
		t.Fatalf("round trip mismatch: got %+v, want %+v", back, start)
	}
}

func TestRightEntersFractionAtNumeratorStart(t *testing.T) {
	tr := newTestTree()
	frac, _ := tr.NewFraction()
	tr.Append(tr.Root(), frac)
	n := tr.Node(frac)
	tr.Append(n.A, mustChar(tr, '1'))

	c := Cursor{Container: tr.Root(), Index: 0}
	got := tr.Right(c)
	if got.Container != n.A || got.Index != 0 {
		t.Fatalf("Right into fraction landed at %+v, want start of numerator", got)
	}
}

func TestLeftExitsFractionFromNumeratorStart(t *testing.T) {
	tr := newTestTree()
	frac, _ := tr.NewFraction()
	tr.Append(tr.Root(), frac)
	n := tr.Node(frac)

	c := Cursor{Container: n.A, Index: 0}
	got := tr.Left(c)
	if got.Container != tr.Root() || got.Index != 0 {
		t.Fatalf("Left out of fraction landed at %+v, want (root, 0)", got)
	}
}

func TestUpFromDenominatorGoesToNumerator(t *testing.T) {
	tr := newTestTree()
	frac, _ := tr.NewFraction()
	tr.Append(tr.Root(), frac)
	n := tr.Node(frac)
	tr.Append(n.B, mustChar(tr, '2'))

	c := Cursor{Container: n.B, Index: 1}
	got := tr.Up(c)
	if got.Container != n.A {
		t.Fatalf("Up from denominator landed in %+v, want numerator", got)
	}
}

func TestDownFromNumeratorGoesToDenominator(t *testing.T) {
	tr := newTestTree()
	frac, _ := tr.NewFraction()
	tr.Append(tr.Root(), frac)
	n := tr.Node(frac)

	c := Cursor{Container: n.A, Index: 0}
	got := tr.Down(c)
	if got.Container != n.B || got.Index != 0 {
		t.Fatalf("Down from numerator landed at %+v, want start of denominator", got)
	}
}

func TestMatrixUpDownMovesAlongColumn(t *testing.T) {
	tr := newTestTree()
	m, _ := tr.NewMatrix(2, 2)
	tr.Append(tr.Root(), m)
	n := tr.Node(m)

	c := Cursor{Container: tr.Cell(m, 1, 0), Index: 0}
	got := tr.Up(c)
	if got.Container != n.Cells[0] {
		t.Fatalf("Up in matrix landed in %+v, want cell (0,0)", got)
	}
}

func TestSigmaPiCyclesThroughBoundsAndBody(t *testing.T) {
	tr := newTestTree()
	s, _ := tr.NewSigmaPi(BigSigma)
	tr.Append(tr.Root(), s)
	n := tr.Node(s)

	start := Cursor{Container: n.A, Index: 0}
	toFinish := tr.Down(start)
	if toFinish.Container != n.B {
		t.Fatalf("Down from start landed in %+v, want finish", toFinish)
	}
}
