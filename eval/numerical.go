// Package eval implements the token algebra and the two-pass evaluator
// (linearize, then shunting-yard) described for the expression core: exact
// rational arithmetic that silently promotes to float64 wherever rationality
// can't be preserved, plus the matrix operations built on top of it.
package eval

import "math"

// Numerical is either an exact reduced fraction or a float64. The
// union-tag is an explicit bool field rather than the source's
// sign-bit-of-the-denominator trick (documented as a deliberate rewrite:
// a tagged union costs one bool, buys clarity and portability).
type Numerical struct {
	isFloat bool
	f       float64
	num     int64
	den     int64 // > 0, gcd(|num|, den) == 1, meaningless when isFloat
}

// Int returns an exact integer Numerical.
func Int(n int64) Numerical { return Numerical{num: n, den: 1} }

// Frac returns an exact reduced fraction num/den. Panics if den == 0.
func Frac(num, den int64) Numerical {
	if den == 0 {
		panic("eval: Frac with zero denominator")
	}
	return reduce(num, den)
}

// Float returns a float-tagged Numerical.
func Float(f float64) Numerical { return Numerical{isFloat: true, f: f} }

func reduce(num, den int64) Numerical {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Numerical{num: 0, den: 1}
	}
	g := gcd(abs64(num), den)
	return Numerical{num: num / g, den: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// IsFloat reports whether n carries a float64 rather than an exact fraction.
func (n Numerical) IsFloat() bool { return n.isFloat }

// AsFloat returns n's value as a float64 regardless of its representation.
func (n Numerical) AsFloat() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.num) / float64(n.den)
}

// Fraction returns n's exact numerator and denominator, and whether n was
// in fact exact (false when n is float-tagged).
func (n Numerical) Fraction() (num, den int64, ok bool) {
	if n.isFloat {
		return 0, 0, false
	}
	return n.num, n.den, true
}

// IsNaN reports whether n is the math-error sentinel.
func (n Numerical) IsNaN() bool { return n.isFloat && math.IsNaN(n.f) }

// NaN is the math-error sentinel Numerical (§7: "Surfaced as a
// Numerical(NaN)").
func NaN() Numerical { return Float(math.NaN()) }

// IsZero reports whether n is exactly zero.
func (n Numerical) IsZero() bool {
	if n.isFloat {
		return n.f == 0
	}
	return n.num == 0
}

// IsInteger reports whether n currently holds an exact integer.
func (n Numerical) IsInteger() bool { return !n.isFloat && n.den == 1 }

// Settings holds the global display/evaluation configuration that would
// otherwise be mutable globals (§9 "Global mutable state"): threaded
// explicitly through evaluate and the entry controller rather than kept as
// package-level state.
type Settings struct {
	UseRadians      bool
	AutoFractions   bool
	SignificantDigs int
	AsMixedNumber   bool
}

// DefaultSettings matches the calculator's factory defaults.
func DefaultSettings() Settings {
	return Settings{UseRadians: false, AutoFractions: true, SignificantDigs: 10, AsMixedNumber: false}
}

// Add implements a+b, staying exact when both operands are exact.
func (a Numerical) Add(b Numerical) Numerical {
	if a.isFloat || b.isFloat {
		return Float(a.AsFloat() + b.AsFloat())
	}
	return reduce(a.num*b.den+b.num*a.den, a.den*b.den)
}

// Sub implements a-b.
func (a Numerical) Sub(b Numerical) Numerical { return a.Add(b.Neg()) }

// Neg implements unary negation.
func (a Numerical) Neg() Numerical {
	if a.isFloat {
		return Float(-a.f)
	}
	return Numerical{num: -a.num, den: a.den}
}

// Mul implements a*b.
func (a Numerical) Mul(b Numerical) Numerical {
	if a.isFloat || b.isFloat {
		return Float(a.AsFloat() * b.AsFloat())
	}
	return reduce(a.num*b.num, a.den*b.den)
}

// Div implements a/b. forceFraction realizes the rule that a NEDA Fraction
// node always yields an exact fraction when both operands are exact,
// regardless of AutoFractions; absent that, division of two integers
// follows AutoFractions, and division by zero with a nonzero numerator
// yields a signed-infinity float (math error territory handled by the
// caller), while 0/0 yields NaN.
func (a Numerical) Div(b Numerical, s Settings, forceFraction bool) Numerical {
	if a.isFloat || b.isFloat {
		return Float(a.AsFloat() / b.AsFloat())
	}
	if b.num == 0 {
		if a.num == 0 {
			return NaN()
		}
		return Float(a.AsFloat() / b.AsFloat())
	}
	if s.AutoFractions || forceFraction {
		return reduce(a.num*b.den, a.den*b.num)
	}
	return Float(a.AsFloat() / b.AsFloat())
}

// Pow implements a^b. Integer bases to non-negative integer exponents stay
// exact; everything else promotes to float via math.Pow.
func (a Numerical) Pow(b Numerical) Numerical {
	if !a.isFloat && !b.isFloat && b.den == 1 && b.num >= 0 {
		result := Int(1)
		base := a
		e := b.num
		for e > 0 {
			if e&1 == 1 {
				result = result.Mul(base)
			}
			base = base.Mul(base)
			e >>= 1
		}
		return result
	}
	return Float(math.Pow(a.AsFloat(), b.AsFloat()))
}

// Sqrt implements sqrt(a): tries exact integer roots of numerator and
// denominator first, falling back to float on any failure (§4.3).
func (a Numerical) Sqrt() Numerical {
	if a.AsFloat() < 0 {
		return NaN()
	}
	if !a.isFloat {
		if rn, ok := isqrt(a.num); ok {
			if rd, ok := isqrt(a.den); ok {
				return reduce(rn, rd)
			}
		}
	}
	return Float(math.Sqrt(a.AsFloat()))
}

func isqrt(n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	r := int64(math.Sqrt(float64(n)))
	for _, cand := range []int64{r - 1, r, r + 1} {
		if cand >= 0 && cand*cand == n {
			return cand, true
		}
	}
	return 0, false
}

// Factorial implements n! for non-negative integer Numericals; anything
// else is a math error (NaN).
func (a Numerical) Factorial() Numerical {
	if a.isFloat || a.den != 1 || a.num < 0 {
		return NaN()
	}
	result := int64(1)
	for i := int64(2); i <= a.num; i++ {
		result *= i
	}
	return Int(result)
}

// relTolerance is the relative tolerance used by Equal, matching the
// testable property that reduced fractions compare exactly while floats
// compare within tolerance.
const relTolerance = 1e-9

// Equal implements `==` between Numericals: exact fractions compare
// exactly (so `f + (-f) == 0` holds precisely), anything involving a float
// uses relative-tolerance comparison.
func (a Numerical) Equal(b Numerical) bool {
	if !a.isFloat && !b.isFloat {
		return a.num == b.num && a.den == b.den
	}
	af, bf := a.AsFloat(), b.AsFloat()
	if af == bf {
		return true
	}
	scale := math.Max(math.Abs(af), math.Abs(bf))
	return math.Abs(af-bf) <= relTolerance*scale
}

// Less implements `<` using the double approximation of both sides.
func (a Numerical) Less(b Numerical) bool { return a.AsFloat() < b.AsFloat() }
