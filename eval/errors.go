package eval

import "errors"

// The evaluator distinguishes exactly three error kinds (§7). Math errors
// surface as a NaN Numerical rather than one of these, since the shape of
// the result (a value) is itself the signal; these sentinels cover the
// cases where evaluation produces no value at all.
var (
	// ErrSyntax covers bracket mismatch, undefined names, wrong arity,
	// malformed assignment targets, and the "too many numbers left after
	// shunting-yard" case preserved from the source.
	ErrSyntax = errors.New("eval: syntax error")

	// ErrStackExhausted is returned in place of ErrSyntax's usual meaning
	// when the recursion-depth guard trips, kept distinct so callers that
	// care can tell runaway recursion apart from a malformed tree, even
	// though §7 surfaces both as the same syntax-error glyph.
	ErrStackExhausted = errors.New("eval: stack exhausted")

	// ErrMath is returned by operations that have no sensible NaN
	// representative at all (a matrix op on mismatched shapes reaching the
	// evaluator rather than a domain violation on a value already in hand).
	// Ordinary domain violations instead return a value: 0/0, a singular
	// inverse and a negative sqrt of a fraction give NaN per §7, and a
	// nonzero number divided by zero gives a signed-infinity float.
	ErrMath = errors.New("eval: math error")
)
