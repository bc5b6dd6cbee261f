package eval

import (
	"strconv"

	"github.com/nspire-go/neda"
	"github.com/nspire-go/neda/glyph"
)

// linearizer walks one NEDA container's children left-to-right, producing
// the flat token stream that shunt.go turns into a value. It carries the
// tree and environment along for recursive evaluation of self-contained
// composites (Fraction, Radical, Matrix, Piecewise, Abs, SigmaPi) and for
// name lookup.
type linearizer struct {
	t    *neda.Tree
	env  *Environment
	s    Settings
	err  error
	depth int
}

const maxRecursionDepth = 256 // stands in for the source's stack-pointer check (§4.3, §7)

func (l *linearizer) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

// Linearize flattens container's children into a token stream.
func (l *linearizer) Linearize(container neda.Ref) []token {
	var toks []token
	n := l.t.ChildCount(container)
	i := 0
	for i < n {
		node := l.t.Node(l.t.ChildAt(container, i))
		if node.Kind == neda.KindChar {
			consumed := l.linearizeChar(container, i, &toks)
			i += consumed
			continue
		}
		span := l.linearizeSpan(container, i)
		if l.err != nil {
			return nil
		}
		if len(span.toks) > 0 && (span.toks[0].kind == tokValue || span.toks[0].kind == tokLeftParen) {
			toks = appendImplicitMul(toks)
		}
		toks = append(toks, span.toks...)
		i += span.consumed
	}
	return toks
}

// linearizeChar handles one Char node (and any multi-char name it starts),
// returning how many container children it consumed.
func (l *linearizer) linearizeChar(container neda.Ref, i int, toks *[]token) int {
	b := l.t.Node(l.t.ChildAt(container, i)).Byte

	switch {
	case b >= '0' && b <= '9' || b == '.':
		lit, n := readNumberLiteral(l.t, container, i)
		if lit == "0" && i+n < l.t.ChildCount(container) && l.t.Node(l.t.ChildAt(container, i+n)).Kind == neda.KindSubscript {
			// 0_n is the n×n zero matrix, resolved alongside I_n.
			return l.linearizeName(container, i, lit, n, toks)
		}
		*toks = appendImplicitMul(*toks)
		*toks = append(*toks, valueTok(parseNumberLiteral(lit)))
		return n

	case isNameStart(b):
		name, n := readName(l.t, container, i)
		return l.linearizeName(container, i, name, n, toks)

	case b == glyph.GlyphAns:
		v, ok := l.env.Lookup("Ans")
		if !ok {
			v = Int(0)
		}
		*toks = appendImplicitMul(*toks)
		*toks = append(*toks, valueTok(v))
		return 1

	default:
		l.linearizeOperatorByte(b, toks)
		return 1
	}
}

func isNameStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func readNumberLiteral(t *neda.Tree, container neda.Ref, i int) (string, int) {
	n := t.ChildCount(container)
	start := i
	for i < n {
		b := t.Node(t.ChildAt(container, i)).Byte
		if b >= '0' && b <= '9' || b == '.' {
			i++
			continue
		}
		break
	}
	lit := make([]byte, 0, i-start)
	for j := start; j < i; j++ {
		lit = append(lit, t.Node(t.ChildAt(container, j)).Byte)
	}
	return string(lit), i - start
}

func parseNumberLiteral(lit string) Numerical {
	if iv, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Int(iv)
	}
	fv, _ := strconv.ParseFloat(lit, 64)
	return Float(fv)
}

func readName(t *neda.Tree, container neda.Ref, i int) (string, int) {
	n := t.ChildCount(container)
	start := i
	for i < n {
		b := t.Node(t.ChildAt(container, i)).Byte
		if isNameStart(b) || (b >= '0' && b <= '9') {
			i++
			continue
		}
		break
	}
	name := make([]byte, 0, i-start)
	for j := start; j < i; j++ {
		name = append(name, t.Node(t.ChildAt(container, j)).Byte)
	}
	return string(name), i - start
}

// linearizeName resolves a name token, in this priority order (§4.3):
// special forms, unit conversion (name→name(arg)), function application
// (log with a subscript base, cross, builtins, then user functions),
// identity/zero matrix via subscript, and finally plain variable or
// constant lookup.
func (l *linearizer) linearizeName(container neda.Ref, i int, name string, nameLen int, toks *[]token) int {
	n := l.t.ChildCount(container)
	next := i + nameLen

	// Special forms inspect their unevaluated argument NEDA (§9).
	if next < n && l.t.Node(l.t.ChildAt(container, next)).Kind == neda.KindLeftBracket {
		if sf, ok := specialForms[name]; ok {
			end, v := sf(l, container, next)
			*toks = appendImplicitMul(*toks)
			*toks = append(*toks, valueTok(v))
			return end - i
		}
	}

	// name→name(arg) unit conversion.
	if next < n {
		nn := l.t.Node(l.t.ChildAt(container, next))
		if nn.Kind == neda.KindChar && nn.Byte == glyph.GlyphArrow {
			toName, toLen := readName(l.t, container, next+1)
			argIdx := next + 1 + toLen
			if toLen > 0 && argIdx < n && l.t.Node(l.t.ChildAt(container, argIdx)).Kind == neda.KindLeftBracket {
				argEnd, argV := l.readParenArg(container, argIdx)
				arg, ok := argV.(Numerical)
				if !ok {
					l.fail(ErrSyntax)
					return n - i
				}
				result, ok := convertUnit(name, toName, arg)
				if !ok {
					l.fail(ErrSyntax)
					return n - i
				}
				*toks = appendImplicitMul(*toks)
				*toks = append(*toks, valueTok(result))
				return argEnd - i
			}
		}
	}

	// name(args...) function application, including log's optional
	// subscript base: name_base(arg).
	if next < n {
		nn := l.t.Node(l.t.ChildAt(container, next))
		if nn.Kind == neda.KindSubscript && name == "log" {
			baseV := l.evalContainerGuarded(nn.A)
			after := next + 1
			if after < n && l.t.Node(l.t.ChildAt(container, after)).Kind == neda.KindLeftBracket {
				argEnd, argV := l.readParenArg(container, after)
				base, _ := baseV.(Numerical)
				arg, _ := argV.(Numerical)
				result := log2(arg).Div(log2(base), l.s, false)
				*toks = appendImplicitMul(*toks)
				*toks = append(*toks, valueTok(result))
				return argEnd - i
			}
		}
		if nn.Kind == neda.KindLeftBracket && name == "cross" {
			// cross(a,b) is the 3-vector cross product's only production
			// site: it has no infix glyph of its own, unlike augment.
			args, argEnd := l.readCallArgs(container, next)
			if len(args) != 2 {
				l.fail(ErrSyntax)
				return n - i
			}
			result, err := applyBinary(newBinaryOp(OpCross), args[0], args[1], l.s)
			if err != nil {
				l.fail(err)
				return n - i
			}
			*toks = appendImplicitMul(*toks)
			*toks = append(*toks, valueTok(result))
			return argEnd - i
		}
		if nn.Kind == neda.KindLeftBracket {
			if fk, ok := builtinNames[name]; ok {
				argEnd, argV := l.readParenArg(container, next)
				an, ok := argV.(Numerical)
				if !ok {
					l.fail(ErrSyntax)
					return n - i
				}
				*toks = appendImplicitMul(*toks)
				*toks = append(*toks, valueTok(callBuiltin(fk, an, l.s)))
				return argEnd - i
			}
			if uf, ok := l.env.Funcs[name]; ok {
				args, argEnd := l.readCallArgs(container, next)
				v := l.callUserFunc(uf, args)
				*toks = appendImplicitMul(*toks)
				*toks = append(*toks, valueTok(v))
				return argEnd - i
			}
		}
		if nn.Kind == neda.KindSubscript && (name == "I" || name == "0") {
			idxV := l.evalContainerGuarded(nn.A)
			idxN, ok := idxV.(Numerical)
			if ok && idxN.IsInteger() && idxN.AsFloat() > 0 {
				size := int(idxN.AsFloat())
				var m *Matrix
				if name == "I" {
					m = Identity(size)
				} else {
					m = ZeroMatrix(size)
				}
				*toks = appendImplicitMul(*toks)
				*toks = append(*toks, valueTok(m))
				return nameLen + 1
			}
		}
	}
	// Plain variable / constant lookup.
	v, ok := l.env.Lookup(name)
	if !ok {
		if c, ok := constants[name]; ok {
			v = c
		} else {
			l.fail(ErrSyntax)
			return n - i
		}
	}
	*toks = appendImplicitMul(*toks)
	*toks = append(*toks, valueTok(v))
	return nameLen
}

var constants = map[string]Value{
	"pi": Float(3.14159265358979323846),
	"e":  Float(2.71828182845904523536),
}

// unitConversion is one entry of the lookup-factor-plus-offset table: to
// convert x from the unit keying this entry to its pair unit, compute
// x*Factor + Offset.
type unitConversion struct {
	Factor, Offset float64
}

// unitTable lists both directions of each supported conversion explicitly;
// convertUnit only looks a pair up and derives no reverse direction.
var unitTable = map[[2]string]unitConversion{
	{"m", "ft"}:   {Factor: 3.280839895, Offset: 0},
	{"ft", "m"}:   {Factor: 1 / 3.280839895, Offset: 0},
	{"km", "mi"}:  {Factor: 0.621371192, Offset: 0},
	{"mi", "km"}:  {Factor: 1 / 0.621371192, Offset: 0},
	{"kg", "lb"}:  {Factor: 2.20462262, Offset: 0},
	{"lb", "kg"}:  {Factor: 1 / 2.20462262, Offset: 0},
	{"C", "F"}:    {Factor: 9.0 / 5.0, Offset: 32},
	{"F", "C"}:    {Factor: 5.0 / 9.0, Offset: -32 * 5.0 / 9.0},
	{"gal", "L"}:  {Factor: 3.785411784, Offset: 0},
	{"L", "gal"}:  {Factor: 1 / 3.785411784, Offset: 0},
}

func convertUnit(from, to string, v Numerical) (Numerical, bool) {
	if from == to {
		return v, true
	}
	c, ok := unitTable[[2]string{from, to}]
	if !ok {
		return NaN(), false
	}
	return Float(v.AsFloat()*c.Factor + c.Offset), true
}

func log2(n Numerical) Numerical {
	return Float(log2f(n.AsFloat()))
}

func callBuiltin(k FuncKind, a Numerical, s Settings) Numerical {
	x := a.AsFloat()
	switch k {
	case FuncSin:
		return Float(sinf(angle(x, s)))
	case FuncCos:
		return Float(cosf(angle(x, s)))
	case FuncTan:
		return Float(tanf(angle(x, s)))
	case FuncAsin:
		return Float(unAngle(asinf(x), s))
	case FuncAcos:
		return Float(unAngle(acosf(x), s))
	case FuncAtan:
		return Float(unAngle(atanf(x), s))
	case FuncLn:
		return Float(lnf(x))
	case FuncLog10:
		return Float(log10f(x))
	case FuncLog2:
		return log2(a)
	case FuncAbs:
		return absNumerical(a)
	case FuncExp:
		return Float(expf(x))
	}
	return NaN()
}

// readParenArg reads a single parenthesized argument starting at the
// LeftBracket child index leftIdx, evaluates it, and returns the index
// just past the matching RightBracket.
func (l *linearizer) readParenArg(container neda.Ref, leftIdx int) (int, Value) {
	end := l.t.ChildCount(container)
	matchNode := l.t.Node(l.t.ChildAt(container, leftIdx))
	rightRef := matchNode.Match
	rightIdx := end
	for j := leftIdx + 1; j < end; j++ {
		if l.t.ChildAt(container, j) == rightRef {
			rightIdx = j
			break
		}
	}
	inner := sliceLinearize(l, container, leftIdx+1, rightIdx)
	v, err := l.evalTokens(inner)
	if err != nil {
		l.fail(err)
	}
	return rightIdx + 1, v
}

// readCallArgs reads comma-separated arguments between matched brackets.
func (l *linearizer) readCallArgs(container neda.Ref, leftIdx int) ([]Value, int) {
	end := l.t.ChildCount(container)
	matchNode := l.t.Node(l.t.ChildAt(container, leftIdx))
	rightRef := matchNode.Match
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
	var args []Value
	segStart := leftIdx + 1
	depth = 0
	for j := leftIdx + 1; j <= rightIdx; j++ {
		if j == rightIdx {
			toks := sliceLinearize(l, container, segStart, j)
			v, err := l.evalTokens(toks)
			if err != nil {
				l.fail(err)
			}
			args = append(args, v)
			break
		}
		nk := l.t.Node(l.t.ChildAt(container, j)).Kind
		if nk == neda.KindLeftBracket {
			depth++
		}
		if nk == neda.KindRightBracket {
			depth--
		}
		if nk == neda.KindChar && l.t.Node(l.t.ChildAt(container, j)).Byte == ',' && depth == 0 {
			toks := sliceLinearize(l, container, segStart, j)
			v, err := l.evalTokens(toks)
			if err != nil {
				l.fail(err)
			}
			args = append(args, v)
			segStart = j + 1
		}
	}
	return args, rightIdx + 1
}

// sliceLinearize linearizes just the children of container in [lo, hi).
func sliceLinearize(l *linearizer, container neda.Ref, lo, hi int) []token {
	sub := &linearizer{t: l.t, env: l.env, s: l.s, depth: l.depth}
	var toks []token
	for i := lo; i < hi; {
		if sub.t.Node(sub.t.ChildAt(container, i)).Kind == neda.KindChar {
			// As in Linearize, a Char sees the tokens so far, so a '-' after
			// an operand is binary and adjacent values multiply implicitly.
			i += sub.linearizeChar(container, i, &toks)
			continue
		}
		n := sub.linearizeSpan(container, i)
		if len(n.toks) > 0 && (n.toks[0].kind == tokValue || n.toks[0].kind == tokLeftParen) {
			toks = appendImplicitMul(toks)
		}
		toks = append(toks, n.toks...)
		i += n.consumed
		if n.consumed == 0 {
			i++
		}
	}
	if sub.err != nil {
		l.fail(sub.err)
	}
	return toks
}

type spanResult struct {
	toks     []token
	consumed int
}

// linearizeSpan linearizes exactly one child (of whatever kind) at index i
// within container, returning the tokens it produced and how many children
// it consumed (>1 for multi-char names/numbers).
func (l *linearizer) linearizeSpan(container neda.Ref, i int) spanResult {
	node := l.t.Node(l.t.ChildAt(container, i))
	var toks []token
	if node.Kind == neda.KindChar {
		consumed := l.linearizeChar(container, i, &toks)
		return spanResult{toks, consumed}
	}
	switch node.Kind {
	case neda.KindLeftBracket:
		toks = append(toks, token{kind: tokLeftParen})
	case neda.KindRightBracket:
		toks = append(toks, token{kind: tokRightParen})
	case neda.KindFraction:
		num := l.evalContainerGuarded(node.A)
		den := l.evalContainerGuarded(node.B)
		nn, _ := num.(Numerical)
		nd, _ := den.(Numerical)
		toks = append(toks, valueTok(nn.Div(nd, l.s, true)))
	case neda.KindRadical:
		v := l.evalContainerGuarded(node.A)
		cn, _ := v.(Numerical)
		toks = append(toks, valueTok(cn.Sqrt()))
	case neda.KindAbs:
		v := l.evalContainerGuarded(node.A)
		toks = append(toks, valueTok(absValue(v)))
	case neda.KindSuperscript:
		toks = append(toks, operatorTok(newBinaryOp(OpPow)))
		toks = append(toks, l.Linearize(node.A)...)
	case neda.KindSigmaPi:
		toks = append(toks, valueTok(l.evalSigmaPi(node)))
	case neda.KindMatrix:
		toks = append(toks, valueTok(l.evalMatrixLiteral(node)))
	case neda.KindPiecewise:
		toks = append(toks, valueTok(l.evalPiecewise(node)))
	}
	return spanResult{toks, 1}
}

func (l *linearizer) linearizeOperatorByte(b byte, toks *[]token) {
	switch b {
	case '+':
		*toks = append(*toks, operatorTok(newBinaryOp(OpAdd)))
	case '-':
		if prevIsOperand(*toks) {
			*toks = append(*toks, operatorTok(newBinaryOp(OpSub)))
		} else {
			*toks = append(*toks, operatorTok(newUnaryOp(OpNegate)))
		}
	case '*':
		*toks = append(*toks, operatorTok(newBinaryOp(OpMul)))
	case '/':
		*toks = append(*toks, operatorTok(newBinaryOp(OpDiv)))
	case '^':
		*toks = append(*toks, operatorTok(newBinaryOp(OpPow)))
	case '!':
		*toks = append(*toks, operatorTok(newPostfixOp(OpFactorial)))
	case '=':
		*toks = append(*toks, operatorTok(newBinaryOp(OpEq)))
	case '<':
		*toks = append(*toks, operatorTok(newBinaryOp(OpLt)))
	case '>':
		*toks = append(*toks, operatorTok(newBinaryOp(OpGt)))
	case '|':
		// The Abs key only ever emits a raw '|' byte when it already saw a
		// left operand at insert time (entry.Controller.insertAbs); a bare
		// abs region is a sealed KindAbs composite instead, so any '|' byte
		// reaching the linearizer is always augment.
		*toks = append(*toks, operatorTok(newBinaryOp(OpAugment)))
	case '\'':
		*toks = append(*toks, operatorTok(newPostfixOp(OpTranspose)))
	case glyph.GlyphMul:
		*toks = append(*toks, operatorTok(newBinaryOp(OpMul)))
	case glyph.GlyphDiv:
		*toks = append(*toks, operatorTok(newBinaryOp(OpDiv)))
	case glyph.GlyphNE:
		*toks = append(*toks, operatorTok(newBinaryOp(OpNeq)))
	case glyph.GlyphLE:
		*toks = append(*toks, operatorTok(newBinaryOp(OpLe)))
	case glyph.GlyphGE:
		*toks = append(*toks, operatorTok(newBinaryOp(OpGe)))
	case glyph.GlyphAnd:
		*toks = append(*toks, operatorTok(newBinaryOp(OpAnd)))
	case glyph.GlyphOr:
		*toks = append(*toks, operatorTok(newBinaryOp(OpOr)))
	case glyph.GlyphXor:
		*toks = append(*toks, operatorTok(newBinaryOp(OpXor)))
	case glyph.GlyphNot:
		*toks = append(*toks, operatorTok(newUnaryOp(OpNot)))
	}
}

func prevIsOperand(toks []token) bool {
	if len(toks) == 0 {
		return false
	}
	last := toks[len(toks)-1]
	return last.kind == tokValue || last.kind == tokRightParen
}

func appendImplicitMul(toks []token) []token {
	if prevIsOperand(toks) {
		toks = append(toks, operatorTok(newBinaryOp(OpImplicitMul)))
	}
	return toks
}

// evalContainerGuarded evaluates container fully (linearize + shunting
// yard), applying the recursion-depth guard.
func (l *linearizer) evalContainerGuarded(container neda.Ref) Value {
	l.depth++
	defer func() { l.depth-- }()
	if l.depth > maxRecursionDepth {
		l.fail(ErrStackExhausted)
		return nil
	}
	if container == neda.RefNil {
		return Int(0)
	}
	sub := &linearizer{t: l.t, env: l.env, s: l.s, depth: l.depth}
	toks := sub.Linearize(container)
	if sub.err != nil {
		l.fail(sub.err)
		return nil
	}
	v, err := sub.evalTokens(toks)
	if err != nil {
		l.fail(err)
		return nil
	}
	return v
}

func (l *linearizer) callUserFunc(uf *UserFunc, args []Value) Value {
	if len(args) != len(uf.Args) {
		l.fail(ErrSyntax)
		return nil
	}
	for i, name := range uf.Args {
		l.env.PushArg(name, args[i])
	}
	defer func() {
		for range uf.Args {
			l.env.PopArg()
		}
	}()
	sub := &linearizer{t: uf.Tree, env: l.env, s: l.s, depth: l.depth + 1}
	if sub.depth > maxRecursionDepth {
		l.fail(ErrStackExhausted)
		return nil
	}
	toks := sub.Linearize(uf.Body)
	if sub.err != nil {
		l.fail(sub.err)
		return nil
	}
	v, err := sub.evalTokens(toks)
	if err != nil {
		l.fail(err)
		return nil
	}
	return v
}

func absValue(v Value) Value {
	switch x := v.(type) {
	case Numerical:
		return absNumerical(x)
	case *Matrix:
		// Abs of a matrix is unusual; treat as determinant's absolute
		// value for a square matrix, NaN otherwise.
		if x.Rows == x.Cols {
			d := x.Determinant()
			return absNumerical(d)
		}
		return NaN()
	}
	return NaN()
}

func absNumerical(n Numerical) Numerical {
	if n.AsFloat() < 0 {
		return n.Neg()
	}
	return n
}
