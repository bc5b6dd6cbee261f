package eval

import (
	"math"
	"testing"

	"github.com/nspire-go/neda"
)

type fixedMetrics struct{}

func (fixedMetrics) Width(byte) int  { return 4 }
func (fixedMetrics) Height(byte) int { return 8 }

func newTestTree() *neda.Tree { return neda.NewTree(fixedMetrics{}) }

// typeChars appends bs as Char nodes to container, e.g. typeChars(t, c, "1+2*3").
func typeChars(t *neda.Tree, container neda.Ref, bs string) {
	for i := 0; i < len(bs); i++ {
		ref, ok := t.NewChar(bs[i])
		if !ok {
			panic("typeChars: NewChar failed")
		}
		t.Append(container, ref)
	}
}

func evalString(t *testing.T, bs string) (Value, error) {
	t.Helper()
	tr := newTestTree()
	typeChars(tr, tr.Root(), bs)
	env := NewEnvironment()
	return Evaluate(tr, tr.Root(), env, DefaultSettings())
}

func wantInt(t *testing.T, v Value, err error, want int64) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := v.(Numerical)
	if !ok {
		t.Fatalf("got %T, want Numerical", v)
	}
	num, den, ok := n.Fraction()
	if !ok || den != 1 || num != want {
		t.Fatalf("got %v, want exact %d", n, want)
	}
}

// Scenario 1: 1 + 2 * 3 -> 7.
func TestScenarioOperatorPrecedence(t *testing.T) {
	v, err := evalString(t, "1+2*3")
	wantInt(t, v, err, 7)
}

// Scenario 2: 1/2 + 1/3 -> 5/6, exact.
func TestScenarioFractionSum(t *testing.T) {
	tr := newTestTree()
	root := tr.Root()
	appendFracLiteral(tr, root, 1, 2)
	typeChars(tr, root, "+")
	appendFracLiteral(tr, root, 1, 3)

	env := NewEnvironment()
	v, err := Evaluate(tr, root, env, DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := v.(Numerical)
	if !ok {
		t.Fatalf("got %T, want Numerical", v)
	}
	num, den, ok := n.Fraction()
	if !ok || num != 5 || den != 6 {
		t.Fatalf("got %v, want exact 5/6", n)
	}
}

// Scenario 3: the same sum with auto_fractions off, as Approx evaluates it,
// has the value 0.8333... A Fraction node forces an exact fraction, so
// Evaluate still returns 5/6; Render shows it as a decimal under these
// Settings.
func TestScenarioApproxForcesFloat(t *testing.T) {
	tr := newTestTree()
	root := tr.Root()
	appendFracLiteral(tr, root, 1, 2)
	typeChars(tr, root, "+")
	appendFracLiteral(tr, root, 1, 3)

	env := NewEnvironment()
	s := DefaultSettings()
	s.AutoFractions = false
	v, err := Evaluate(tr, root, env, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := v.(Numerical)
	if math.Abs(n.AsFloat()-5.0/6.0) > 1e-9 {
		t.Fatalf("got %v, want ~0.8333", n.AsFloat())
	}
}

// Scenario 4: sqrt(2) -> float, integer sqrt fails and promotes.
func TestScenarioSqrtPromotesToFloat(t *testing.T) {
	tr := newTestTree()
	root := tr.Root()
	rad, ok := tr.NewRadical(false)
	if !ok {
		t.Fatal("NewRadical failed")
	}
	tr.Append(root, rad)
	n := tr.Node(rad)
	typeChars(tr, n.A, "2")

	env := NewEnvironment()
	v, err := Evaluate(tr, root, env, DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.(Numerical)
	if math.Abs(got.AsFloat()-math.Sqrt2) > 1e-8 {
		t.Fatalf("got %v, want sqrt(2)", got.AsFloat())
	}
}

// Scenario 5: f(x) = x^2, then f(3) -> 9.
func TestScenarioFunctionDefinitionAndCall(t *testing.T) {
	tr := newTestTree()
	env := NewEnvironment()

	def := tr.Root()
	typeChars(tr, def, "f")
	appendParens(tr, def, "x")
	typeChars(tr, def, "=x")
	sup, _ := tr.NewSuperscript()
	tr.Append(def, sup)
	typeChars(tr, tr.Node(sup).A, "2")

	_, err := Evaluate(tr, def, env, DefaultSettings())
	if err != nil {
		t.Fatalf("defining f: %v", err)
	}
	if _, ok := env.Funcs["f"]; !ok {
		t.Fatal("expected f to be registered")
	}

	tr2 := newTestTree()
	typeChars(tr2, tr2.Root(), "f")
	appendParens(tr2, tr2.Root(), "3")
	v, err := Evaluate(tr2, tr2.Root(), env, DefaultSettings())
	wantInt(t, v, err, 9)
}

// appendParens appends a matched ( inner ) bracket pair, with inner typed
// as plain characters, to container.
func appendParens(t *neda.Tree, container neda.Ref, inner string) {
	left, ok := t.NewBracket(true, '(')
	if !ok {
		panic("appendParens: NewBracket(left) failed")
	}
	t.Append(container, left)
	typeChars(t, container, inner)
	right, ok := t.NewBracket(false, ')')
	if !ok {
		panic("appendParens: NewBracket(right) failed")
	}
	t.Append(container, right)
}

// Scenario 6: [[1,2][3,4]]^(-1) -> exact-fraction inverse.
func TestScenarioMatrixInverse(t *testing.T) {
	tr := newTestTree()
	root := tr.Root()
	m, ok := tr.NewMatrix(2, 2)
	if !ok {
		t.Fatal("NewMatrix failed")
	}
	node := tr.Node(m)
	vals := []string{"1", "2", "3", "4"}
	for i, cell := range node.Cells {
		typeChars(tr, cell, vals[i])
	}
	tr.Append(root, m)

	sup, _ := tr.NewSuperscript()
	tr.Append(root, sup)
	typeChars(tr, tr.Node(sup).A, "-1")

	env := NewEnvironment()
	v, err := Evaluate(tr, root, env, DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mat, ok := v.(*Matrix)
	if !ok {
		t.Fatalf("got %T, want *Matrix", v)
	}
	want := []Numerical{Int(-2), Int(1), Frac(3, 2), Frac(-1, 2)}
	for i, w := range want {
		got := mat.Entries[i]
		if math.Abs(got.AsFloat()-w.AsFloat()) > 1e-9 {
			t.Fatalf("entry %d: got %v, want %v", i, got.AsFloat(), w.AsFloat())
		}
	}
}

// Scenario 7: Sigma k=1 to 5 of k -> 15.
func TestScenarioSummation(t *testing.T) {
	tr := newTestTree()
	root := tr.Root()
	sp, ok := tr.NewSigmaPi(neda.BigSigma)
	if !ok {
		t.Fatal("NewSigmaPi failed")
	}
	node := tr.Node(sp)
	typeChars(tr, node.A, "k=1")
	typeChars(tr, node.B, "5")
	typeChars(tr, node.C, "k")
	tr.Append(root, sp)

	env := NewEnvironment()
	v, err := Evaluate(tr, root, env, DefaultSettings())
	wantInt(t, v, err, 15)
}

// Scenario 8: solve(x^2-2, 0, 2, 0.0001) -> within 1e-4 of sqrt(2).
func TestScenarioSolve(t *testing.T) {
	tr := newTestTree()
	root := tr.Root()
	typeChars(tr, root, "solve")
	left, _ := tr.NewBracket(true, '(')
	tr.Append(root, left)
	typeChars(tr, root, "x")
	sup, _ := tr.NewSuperscript()
	tr.Append(root, sup)
	typeChars(tr, tr.Node(sup).A, "2")
	typeChars(tr, root, "-2,0,2,0.0001")
	right, _ := tr.NewBracket(false, ')')
	tr.Append(root, right)

	env := NewEnvironment()
	v, err := Evaluate(tr, root, env, DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.(Numerical)
	if math.Abs(got.AsFloat()-math.Sqrt2) > 1e-4 {
		t.Fatalf("got %v, want ~sqrt(2)", got.AsFloat())
	}
}

func appendFracLiteral(t *neda.Tree, container neda.Ref, num, den int64) {
	fr, ok := t.NewFraction()
	if !ok {
		panic("appendFracLiteral: NewFraction failed")
	}
	n := t.Node(fr)
	typeChars(t, n.A, itoa(num))
	typeChars(t, n.B, itoa(den))
	t.Append(container, fr)
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// TestClonedFunctionBodySurvivesInputClear guards against the aliasing bug
// clone.go exists to prevent: storing a function body must not leave the
// defining input line's own children referencing (and later double-freeing)
// the same nodes.
func TestClonedFunctionBodySurvivesInputClear(t *testing.T) {
	tr := newTestTree()
	env := NewEnvironment()
	root := tr.Root()
	typeChars(tr, root, "f")
	appendParens(tr, root, "x")
	typeChars(tr, root, "=x")
	sup, _ := tr.NewSuperscript()
	tr.Append(root, sup)
	typeChars(tr, tr.Node(sup).A, "2")

	if _, err := Evaluate(tr, root, env, DefaultSettings()); err != nil {
		t.Fatalf("defining f: %v", err)
	}
	tr.Clear()

	tr2 := newTestTree()
	typeChars(tr2, tr2.Root(), "f")
	appendParens(tr2, tr2.Root(), "4")
	v, err := Evaluate(tr2, tr2.Root(), env, DefaultSettings())
	wantInt(t, v, err, 16)
}
