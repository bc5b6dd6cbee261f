package eval

import "github.com/nspire-go/neda"

// evalSigmaPi evaluates a summation/product node (§4.3): the start-bound
// container holds "var=expr", the finish-bound container holds a plain
// expr, and the counter is pushed onto the args stack for each iteration
// of the body.
func (l *linearizer) evalSigmaPi(node *neda.Node) Numerical {
	name, startToks, ok := splitAssignment(l, node.A)
	if !ok {
		l.fail(ErrSyntax)
		return NaN()
	}
	startV, err := l.evalTokens(startToks)
	if err != nil {
		l.fail(err)
		return NaN()
	}
	startN, ok := startV.(Numerical)
	if !ok {
		l.fail(ErrSyntax)
		return NaN()
	}
	finishV := l.evalContainerGuarded(node.B)
	finishN, ok := finishV.(Numerical)
	if !ok {
		l.fail(ErrSyntax)
		return NaN()
	}

	var acc Numerical
	if node.Op == neda.BigSigma {
		acc = Int(0)
	} else {
		acc = Int(1)
	}

	i := startN
	finish := finishN.AsFloat()
	for ; i.AsFloat() <= finish; i = i.Add(Int(1)) {
		l.env.PushArg(name, i)
		bodyV := l.evalContainerGuarded(node.C)
		l.env.PopArg()
		bodyN, ok := bodyV.(Numerical)
		if !ok {
			l.fail(ErrSyntax)
			return NaN()
		}
		if node.Op == neda.BigSigma {
			acc = acc.Add(bodyN)
		} else {
			acc = acc.Mul(bodyN)
		}
	}
	return acc
}

// splitAssignment finds "name=expr" inside container's top-level children,
// returning the name and the linearized token stream for expr.
func splitAssignment(l *linearizer, container neda.Ref) (string, []token, bool) {
	n := l.t.ChildCount(container)
	eq := -1
	for i := 0; i < n; i++ {
		node := l.t.Node(l.t.ChildAt(container, i))
		if node.Kind == neda.KindChar && node.Byte == '=' {
			eq = i
			break
		}
	}
	if eq <= 0 || eq >= n-1 {
		return "", nil, false
	}
	name, nameLen := readName(l.t, container, 0)
	if nameLen != eq {
		return "", nil, false
	}
	return name, sliceLinearize(l, container, eq+1, n), true
}

// evalMatrixLiteral evaluates a Matrix node's cells (§4.3): element-wise,
// unless every cell of a single-row literal is itself a column vector, in
// which case the result is assembled column-wise from those vectors.
func (l *linearizer) evalMatrixLiteral(node *neda.Node) Value {
	cellVals := make([]Value, len(node.Cells))
	for i, cell := range node.Cells {
		cellVals[i] = l.evalContainerGuarded(cell)
	}

	if node.Rows == 1 && node.Cols > 0 {
		allColumnVectors := true
		height := -1
		cols := make([]*Matrix, node.Cols)
		for c := 0; c < node.Cols; c++ {
			m, ok := cellVals[c].(*Matrix)
			if !ok || !m.IsColumnVector() {
				allColumnVectors = false
				break
			}
			if height == -1 {
				height = m.Rows
			} else if m.Rows != height {
				allColumnVectors = false
				break
			}
			cols[c] = m
		}
		if allColumnVectors && height > 1 {
			return AssembleColumns(cols)
		}
	}

	out := NewMatrix(node.Rows, node.Cols)
	for i, v := range cellVals {
		n, ok := v.(Numerical)
		if !ok {
			l.fail(ErrSyntax)
			return NaN()
		}
		out.Entries[i] = n
	}
	return out
}

// evalPiecewise evaluates conditions in order, returning the first truthy
// piece's value; "else" is a literal keyword meaning "always true" when it
// appears as the final condition (§4.3).
func (l *linearizer) evalPiecewise(node *neda.Node) Value {
	for i := 0; i < node.PieceCount; i++ {
		isLast := i == node.PieceCount-1
		truthy := false
		if isLast && isElseKeyword(l.t, node.Conditions[i]) {
			truthy = true
		} else {
			condV := l.evalContainerGuarded(node.Conditions[i])
			condN, ok := condV.(Numerical)
			if !ok {
				l.fail(ErrSyntax)
				return NaN()
			}
			truthy = !condN.IsZero()
		}
		if truthy {
			return l.evalContainerGuarded(node.Values[i])
		}
	}
	return NaN()
}

func isElseKeyword(t *neda.Tree, container neda.Ref) bool {
	const kw = "else"
	if t.ChildCount(container) != len(kw) {
		return false
	}
	for i := 0; i < len(kw); i++ {
		if t.Node(t.ChildAt(container, i)).Byte != kw[i] {
			return false
		}
	}
	return true
}
