package eval

import "math"

// angle converts x from the calculator's current angle unit to radians for
// the stdlib trig call; unAngle converts a stdlib result back.
func angle(x float64, s Settings) float64 {
	if s.UseRadians {
		return x
	}
	return x * math.Pi / 180
}

func unAngle(x float64, s Settings) float64 {
	if s.UseRadians {
		return x
	}
	return x * 180 / math.Pi
}

func sinf(x float64) float64  { return math.Sin(x) }
func cosf(x float64) float64  { return math.Cos(x) }
func tanf(x float64) float64  { return math.Tan(x) }
func asinf(x float64) float64 { return math.Asin(x) }
func acosf(x float64) float64 { return math.Acos(x) }
func atanf(x float64) float64 { return math.Atan(x) }
func lnf(x float64) float64   { return math.Log(x) }
func log10f(x float64) float64 { return math.Log10(x) }
func log2f(x float64) float64  { return math.Log2(x) }
func expf(x float64) float64   { return math.Exp(x) }
