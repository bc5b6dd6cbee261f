package eval

import "github.com/nspire-go/neda"

// specialFormFn parses and evaluates a special form's call: container holds
// the name's siblings, leftIdx is the index of the opening bracket. It
// returns the index just past the matching closing bracket and the result.
type specialFormFn func(l *linearizer, container neda.Ref, leftIdx int) (int, Value)

var specialForms = map[string]specialFormFn{
	"solve":  evalSolveForm,
	"linReg": evalLinRegForm,
}

// argSpan is one comma-separated argument's unevaluated child range.
type argSpan struct{ lo, hi int }

// rawArgSpans splits the comma-separated argument list starting just after
// leftIdx into child-index ranges without evaluating any of them, returning
// the index just past the matching closing bracket.
func rawArgSpans(l *linearizer, container neda.Ref, leftIdx int) ([]argSpan, int) {
	end := l.t.ChildCount(container)
	rightRef := l.t.Node(l.t.ChildAt(container, leftIdx)).Match
	rightIdx := end
	depth := 0
	for j := leftIdx + 1; j < end; j++ {
		nk := l.t.Node(l.t.ChildAt(container, j)).Kind
		if nk == neda.KindLeftBracket {
			depth++
		}
		if nk == neda.KindRightBracket {
			if l.t.ChildAt(container, j) == rightRef && depth == 0 {
				rightIdx = j
				break
			}
			depth--
		}
	}
	var spans []argSpan
	segStart := leftIdx + 1
	depth = 0
	for j := leftIdx + 1; j <= rightIdx; j++ {
		if j == rightIdx {
			spans = append(spans, argSpan{segStart, j})
			break
		}
		node := l.t.Node(l.t.ChildAt(container, j))
		if node.Kind == neda.KindLeftBracket {
			depth++
		}
		if node.Kind == neda.KindRightBracket {
			depth--
		}
		if node.Kind == neda.KindChar && node.Byte == ',' && depth == 0 {
			spans = append(spans, argSpan{segStart, j})
			segStart = j + 1
		}
	}
	return spans, rightIdx + 1
}

// evalSolveForm implements solve(expr, lo, hi, tol): expr is kept
// unevaluated so x can be bound to successive trial values; lo/hi/tol are
// plain numeric arguments. Uses bisection, which requires a sign change
// between lo and hi.
func evalSolveForm(l *linearizer, container neda.Ref, leftIdx int) (int, Value) {
	spans, end := rawArgSpans(l, container, leftIdx)
	if len(spans) != 4 {
		l.fail(ErrSyntax)
		return end, NaN()
	}
	loV, err := l.evalTokens(sliceLinearize(l, container, spans[1].lo, spans[1].hi))
	if err != nil {
		l.fail(err)
		return end, NaN()
	}
	hiV, err := l.evalTokens(sliceLinearize(l, container, spans[2].lo, spans[2].hi))
	if err != nil {
		l.fail(err)
		return end, NaN()
	}
	tolV, err := l.evalTokens(sliceLinearize(l, container, spans[3].lo, spans[3].hi))
	if err != nil {
		l.fail(err)
		return end, NaN()
	}
	lo, ok1 := loV.(Numerical)
	hi, ok2 := hiV.(Numerical)
	tol, ok3 := tolV.(Numerical)
	if !ok1 || !ok2 || !ok3 {
		l.fail(ErrSyntax)
		return end, NaN()
	}

	f := func(x float64) float64 {
		l.env.PushArg("x", Float(x))
		defer l.env.PopArg()
		v, err := l.evalTokens(sliceLinearize(l, container, spans[0].lo, spans[0].hi))
		if err != nil {
			return 0
		}
		n, ok := v.(Numerical)
		if !ok {
			return 0
		}
		return n.AsFloat()
	}

	a, b := lo.AsFloat(), hi.AsFloat()
	fa := f(a)
	const maxIterations = 200
	for i := 0; i < maxIterations && (b-a) > tol.AsFloat(); i++ {
		mid := (a + b) / 2
		fm := f(mid)
		if sameSign(fa, fm) {
			a, fa = mid, fm
		} else {
			b = mid
		}
	}
	return end, Float((a + b) / 2)
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}

// evalLinRegForm implements linReg(xs, ys): xs and ys are matrix literals
// (row or column vectors) of equal length; returns a 2x1 matrix [slope;
// intercept] fitted by least squares.
func evalLinRegForm(l *linearizer, container neda.Ref, leftIdx int) (int, Value) {
	spans, end := rawArgSpans(l, container, leftIdx)
	if len(spans) != 2 {
		l.fail(ErrSyntax)
		return end, NaN()
	}
	xv, err := l.evalTokens(sliceLinearize(l, container, spans[0].lo, spans[0].hi))
	if err != nil {
		l.fail(err)
		return end, NaN()
	}
	yv, err := l.evalTokens(sliceLinearize(l, container, spans[1].lo, spans[1].hi))
	if err != nil {
		l.fail(err)
		return end, NaN()
	}
	xm, ok1 := xv.(*Matrix)
	ym, ok2 := yv.(*Matrix)
	if !ok1 || !ok2 {
		l.fail(ErrSyntax)
		return end, NaN()
	}
	xs := flattenVector(xm)
	ys := flattenVector(ym)
	if len(xs) != len(ys) || len(xs) == 0 {
		l.fail(ErrSyntax)
		return end, NaN()
	}
	design := NewMatrix(len(xs), 2)
	target := NewMatrix(len(ys), 1)
	for i := range xs {
		design.Set(i, 0, xs[i])
		design.Set(i, 1, Int(1))
		target.Set(i, 0, ys[i])
	}
	return end, LeastSquares(design, target)
}

func flattenVector(m *Matrix) []Numerical {
	return m.Entries
}
