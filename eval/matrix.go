package eval

import "gonum.org/v1/gonum/mat"

// Matrix holds m*n Numericals, row-major; entries are always Numericals,
// never nested matrices (§3).
type Matrix struct {
	Rows, Cols int
	Entries    []Numerical
}

// NewMatrix allocates a rows*cols matrix of zero entries.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Entries: make([]Numerical, rows*cols)}
}

// At returns the entry at (r, c).
func (m *Matrix) At(r, c int) Numerical { return m.Entries[r*m.Cols+c] }

// Set stores v at (r, c).
func (m *Matrix) Set(r, c int, v Numerical) { m.Entries[r*m.Cols+c] = v }

// isExact reports whether every entry is an exact fraction, the condition
// under which matrix arithmetic stays on the custom Gaussian-elimination
// path instead of handing off to gonum's float64 implementation.
func (m *Matrix) isExact() bool {
	for _, e := range m.Entries {
		if e.IsFloat() {
			return false
		}
	}
	return true
}

func (m *Matrix) toDense() *mat.Dense {
	data := make([]float64, len(m.Entries))
	for i, e := range m.Entries {
		data[i] = e.AsFloat()
	}
	return mat.NewDense(m.Rows, m.Cols, data)
}

func fromDense(d *mat.Dense) *Matrix {
	r, c := d.Dims()
	out := NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, Float(d.At(i, j)))
		}
	}
	return out
}

// Add implements element-wise addition; dimension mismatch is a math error
// signalled by a nil result, which applyBinary turns into ErrMath.
func (a *Matrix) Add(b *Matrix) *Matrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil
	}
	out := NewMatrix(a.Rows, a.Cols)
	for i := range out.Entries {
		out.Entries[i] = a.Entries[i].Add(b.Entries[i])
	}
	return out
}

// Sub implements element-wise subtraction.
func (a *Matrix) Sub(b *Matrix) *Matrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil
	}
	out := NewMatrix(a.Rows, a.Cols)
	for i := range out.Entries {
		out.Entries[i] = a.Entries[i].Sub(b.Entries[i])
	}
	return out
}

// Scale multiplies every entry by k.
func (a *Matrix) Scale(k Numerical) *Matrix {
	out := NewMatrix(a.Rows, a.Cols)
	for i, e := range a.Entries {
		out.Entries[i] = e.Mul(k)
	}
	return out
}

// Mul implements matrix multiplication when shapes compose (a.Cols ==
// b.Rows); otherwise it falls back to a dot product when both operands
// are equal-length column vectors, realizing §4.3's documented fallback.
func (a *Matrix) Mul(b *Matrix) *Matrix {
	if a.Cols == b.Rows {
		if a.isExact() && b.isExact() {
			out := NewMatrix(a.Rows, b.Cols)
			for i := 0; i < a.Rows; i++ {
				for j := 0; j < b.Cols; j++ {
					sum := Int(0)
					for k := 0; k < a.Cols; k++ {
						sum = sum.Add(a.At(i, k).Mul(b.At(k, j)))
					}
					out.Set(i, j, sum)
				}
			}
			return out
		}
		var out mat.Dense
		out.Mul(a.toDense(), b.toDense())
		return fromDense(&out)
	}
	if a.Cols == 1 && b.Cols == 1 && a.Rows == b.Rows {
		sum := Int(0)
		for i := 0; i < a.Rows; i++ {
			sum = sum.Add(a.At(i, 0).Mul(b.At(i, 0)))
		}
		dot := NewMatrix(1, 1)
		dot.Set(0, 0, sum)
		return dot
	}
	return nil
}

// Cross implements the 3-vector cross product.
func (a *Matrix) Cross(b *Matrix) *Matrix {
	if a.Rows*a.Cols != 3 || b.Rows*b.Cols != 3 {
		return nil
	}
	ax, ay, az := a.Entries[0], a.Entries[1], a.Entries[2]
	bx, by, bz := b.Entries[0], b.Entries[1], b.Entries[2]
	out := NewMatrix(a.Rows, a.Cols)
	out.Entries[0] = ay.Mul(bz).Sub(az.Mul(by))
	out.Entries[1] = az.Mul(bx).Sub(ax.Mul(bz))
	out.Entries[2] = ax.Mul(by).Sub(ay.Mul(bx))
	return out
}

// Transpose returns aᵀ.
func (a *Matrix) Transpose() *Matrix {
	out := NewMatrix(a.Cols, a.Rows)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}
	return out
}

// Determinant computes det(a) via Gaussian elimination with partial
// pivoting, tracking a sign flip per row swap (§4.3). Exact matrices reduce
// over Numerical fraction arithmetic; anything with a float entry hands
// off to gonum's mat.Det, which is the precise reading of "exact-fraction
// matrices keep custom elimination, float matrices use gonum" since gonum
// has no exact rational type to ground the exact path on.
func (a *Matrix) Determinant() Numerical {
	if a.Rows != a.Cols {
		return NaN()
	}
	if !a.isExact() {
		return Float(mat.Det(a.toDense()))
	}
	n := a.Rows
	work := make([]Numerical, len(a.Entries))
	copy(work, a.Entries)
	at := func(r, c int) Numerical { return work[r*n+c] }
	set := func(r, c int, v Numerical) { work[r*n+c] = v }

	sign := Int(1)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col; r < n; r++ {
			if !at(r, col).IsZero() {
				pivot = r
				break
			}
		}
		if at(pivot, col).IsZero() {
			return Int(0)
		}
		if pivot != col {
			for c := 0; c < n; c++ {
				work[col*n+c], work[pivot*n+c] = work[pivot*n+c], work[col*n+c]
			}
			sign = sign.Neg()
		}
		for r := col + 1; r < n; r++ {
			if at(r, col).IsZero() {
				continue
			}
			factor := at(r, col).Div(at(col, col), DefaultSettings(), true)
			for c := col; c < n; c++ {
				set(r, c, at(r, c).Sub(factor.Mul(at(col, c))))
			}
		}
	}
	det := sign
	for i := 0; i < n; i++ {
		det = det.Mul(at(i, i))
	}
	return det
}

// Inverse computes a⁻¹ by augmenting with the identity and eliminating;
// a singular matrix yields NaN entries rather than an error value, per §4.3
// ("failure => NaN").
func (a *Matrix) Inverse() *Matrix {
	if a.Rows != a.Cols {
		return nil
	}
	if !a.isExact() {
		var inv mat.Dense
		if err := inv.Inverse(a.toDense()); err != nil {
			out := NewMatrix(a.Rows, a.Cols)
			for i := range out.Entries {
				out.Entries[i] = NaN()
			}
			return out
		}
		return fromDense(&inv)
	}
	n := a.Rows
	aug := make([]Numerical, n*2*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			aug[r*2*n+c] = a.At(r, c)
		}
		aug[r*2*n+n+r] = Int(1)
	}
	get := func(r, c int) Numerical { return aug[r*2*n+c] }
	set := func(r, c int, v Numerical) { aug[r*2*n+c] = v }

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !get(r, col).IsZero() {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			out := NewMatrix(n, n)
			for i := range out.Entries {
				out.Entries[i] = NaN()
			}
			return out
		}
		if pivot != col {
			for c := 0; c < 2*n; c++ {
				aug[col*2*n+c], aug[pivot*2*n+c] = aug[pivot*2*n+c], aug[col*2*n+c]
			}
		}
		pv := get(col, col)
		for c := 0; c < 2*n; c++ {
			set(col, c, get(col, c).Div(pv, DefaultSettings(), true))
		}
		for r := 0; r < n; r++ {
			if r == col || get(r, col).IsZero() {
				continue
			}
			factor := get(r, col)
			for c := 0; c < 2*n; c++ {
				set(r, c, get(r, c).Sub(factor.Mul(get(col, c))))
			}
		}
	}
	out := NewMatrix(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.Set(r, c, get(r, n+c))
		}
	}
	return out
}

// Row extracts row r as a 1×cols matrix.
func (a *Matrix) Row(r int) *Matrix {
	out := NewMatrix(1, a.Cols)
	copy(out.Entries, a.Entries[r*a.Cols:(r+1)*a.Cols])
	return out
}

// Column extracts column c as a rows×1 matrix.
func (a *Matrix) Column(c int) *Matrix {
	out := NewMatrix(a.Rows, 1)
	for r := 0; r < a.Rows; r++ {
		out.Set(r, 0, a.At(r, c))
	}
	return out
}

// Augment implements the `|` operator: horizontal concatenation of two
// matrices with equal row counts (the disambiguation from abs-bar context
// is the linearizer's job, not this function's — see linearize.go).
func (a *Matrix) Augment(b *Matrix) *Matrix {
	if a.Rows != b.Rows {
		return nil
	}
	out := NewMatrix(a.Rows, a.Cols+b.Cols)
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			out.Set(r, c, a.At(r, c))
		}
		for c := 0; c < b.Cols; c++ {
			out.Set(r, a.Cols+c, b.At(r, c))
		}
	}
	return out
}

// Equal implements structural, entry-wise float-equality matrix comparison
// (§4.3: "`==` between matrices is structural with entry-wise
// float-equality").
func (a *Matrix) Equal(b *Matrix) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.Entries {
		if !a.Entries[i].Equal(b.Entries[i]) {
			return false
		}
	}
	return true
}

// LeastSquares solves Aᵀ A x = Aᵀ b for x, always on the float64/gonum
// path — least-squares has no exact-rational analogue worth preserving.
func LeastSquares(a, b *Matrix) *Matrix {
	var x mat.Dense
	ad, bd := a.toDense(), b.toDense()
	var ata, atb mat.Dense
	ata.Mul(ad.T(), ad)
	atb.Mul(ad.T(), bd)
	if err := x.Solve(&ata, &atb); err != nil {
		rows, _ := atb.Dims()
		out := NewMatrix(rows, 1)
		for i := range out.Entries {
			out.Entries[i] = NaN()
		}
		return out
	}
	return fromDense(&x)
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	out := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		out.Set(i, i, Int(1))
	}
	return out
}

// ZeroMatrix returns the n×n zero matrix.
func ZeroMatrix(n int) *Matrix { return NewMatrix(n, n) }

// IsColumnVector reports whether m has exactly one column.
func (m *Matrix) IsColumnVector() bool { return m.Cols == 1 }

// AssembleColumns builds a matrix from column vectors of equal height,
// realizing the matrix-literal rule: "if all cells of the first row are
// column vectors of equal height, the matrix is assembled column-wise
// instead of element-wise."
func AssembleColumns(cols []*Matrix) *Matrix {
	h := cols[0].Rows
	out := NewMatrix(h, len(cols))
	for c, col := range cols {
		for r := 0; r < h; r++ {
			out.Set(r, c, col.At(r, 0))
		}
	}
	return out
}
