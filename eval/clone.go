package eval

import "github.com/nspire-go/neda"

// cloneRange copies children[lo:hi) of container into a fresh, standalone
// container, bracket-Match pointers included. A user function's stored body
// is a clone rather than the live child range itself, so clearing the
// input line afterward (§4.2's Enter-then-Clear flow) can't corrupt a
// function definition that shares node ownership with the line it came
// from.
func cloneRange(t *neda.Tree, container neda.Ref, lo, hi int) neda.Ref {
	dst, ok := t.NewContainer()
	if !ok {
		return neda.RefNil
	}
	var brackets []neda.Ref
	for i := lo; i < hi; i++ {
		child := cloneNode(t, t.ChildAt(container, i), &brackets)
		t.Append(dst, child)
	}
	return dst
}

// cloneNode deep-copies src into a new, unattached node, recursing into
// every operand slot. brackets tracks still-unmatched cloned LeftBrackets
// so a RightBracket clone can wire up Match both ways.
func cloneNode(t *neda.Tree, src neda.Ref, brackets *[]neda.Ref) neda.Ref {
	n := t.Node(src)
	switch n.Kind {
	case neda.KindChar:
		ref, _ := t.NewChar(n.Byte)
		return ref

	case neda.KindContainer:
		ref, _ := t.NewContainer()
		cloneChildrenInto(t, ref, n.Children, brackets)
		return ref

	case neda.KindLeftBracket:
		ref, _ := t.NewBracket(true, n.Byte2)
		*brackets = append(*brackets, ref)
		return ref

	case neda.KindRightBracket:
		ref, _ := t.NewBracket(false, n.Byte2)
		if len(*brackets) > 0 {
			left := (*brackets)[len(*brackets)-1]
			*brackets = (*brackets)[:len(*brackets)-1]
			t.Node(left).Match = ref
			t.Node(ref).Match = left
		}
		return ref

	case neda.KindFraction:
		ref, _ := t.NewFraction()
		dst := t.Node(ref)
		cloneChildrenInto(t, dst.A, t.Node(n.A).Children, brackets)
		cloneChildrenInto(t, dst.B, t.Node(n.B).Children, brackets)
		return ref

	case neda.KindRadical:
		ref, _ := t.NewRadical(n.B != neda.RefNil)
		dst := t.Node(ref)
		cloneChildrenInto(t, dst.A, t.Node(n.A).Children, brackets)
		if n.B != neda.RefNil {
			cloneChildrenInto(t, dst.B, t.Node(n.B).Children, brackets)
		}
		return ref

	case neda.KindSuperscript:
		ref, _ := t.NewSuperscript()
		cloneChildrenInto(t, t.Node(ref).A, t.Node(n.A).Children, brackets)
		return ref

	case neda.KindSubscript:
		ref, _ := t.NewSubscript()
		cloneChildrenInto(t, t.Node(ref).A, t.Node(n.A).Children, brackets)
		return ref

	case neda.KindAbs:
		ref, _ := t.NewAbs()
		cloneChildrenInto(t, t.Node(ref).A, t.Node(n.A).Children, brackets)
		return ref

	case neda.KindSigmaPi:
		ref, _ := t.NewSigmaPi(n.Op)
		dst := t.Node(ref)
		cloneChildrenInto(t, dst.A, t.Node(n.A).Children, brackets)
		cloneChildrenInto(t, dst.B, t.Node(n.B).Children, brackets)
		cloneChildrenInto(t, dst.C, t.Node(n.C).Children, brackets)
		return ref

	case neda.KindMatrix:
		ref, _ := t.NewMatrix(n.Rows, n.Cols)
		dst := t.Node(ref)
		for i, cell := range n.Cells {
			cloneChildrenInto(t, dst.Cells[i], t.Node(cell).Children, brackets)
		}
		return ref

	case neda.KindPiecewise:
		ref, _ := t.NewPiecewise(n.PieceCount)
		dst := t.Node(ref)
		for i := range n.Values {
			cloneChildrenInto(t, dst.Values[i], t.Node(n.Values[i]).Children, brackets)
			cloneChildrenInto(t, dst.Conditions[i], t.Node(n.Conditions[i]).Children, brackets)
		}
		return ref
	}
	ref, _ := t.NewContainer()
	return ref
}

func cloneChildrenInto(t *neda.Tree, dst neda.Ref, children []neda.Ref, brackets *[]neda.Ref) {
	for _, c := range children {
		t.Append(dst, cloneNode(t, c, brackets))
	}
}
