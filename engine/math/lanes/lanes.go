// Package lanes holds the componentwise kernels shared by the 3 and 4
// component vector types. Two interchangeable backends live here; the
// one used by the package-level functions is picked at compile time
// with the gamemath_unrolled build tag. Both are always compiled so
// they can be checked against each other.
package lanes

// Lanes is a fixed-size tuple of four float32 values. Three component
// vectors leave the last lane at zero.
type Lanes [4]float32

// Backend applies componentwise operations to a Lanes tuple.
type Backend interface {
	Name() string
	Add(a, b Lanes) Lanes
	Sub(a, b Lanes) Lanes
	Mul(a, b Lanes) Lanes
	Div(a, b Lanes) Lanes
	Scale(a Lanes, s float32) Lanes
	Min(a, b Lanes) Lanes
	Max(a, b Lanes) Lanes
	Dot(a, b Lanes) float32
	Lerp(a, b Lanes, t float32) Lanes
}

var (
	Loop     Backend = loopBackend{}
	Unrolled Backend = unrolledBackend{}
)

// Backends lists every compiled backend.
func Backends() []Backend {
	return []Backend{Loop, Unrolled}
}

// Active reports the backend selected for this build.
func Active() Backend {
	return active{}
}

func Add(a, b Lanes) Lanes             { return active{}.Add(a, b) }
func Sub(a, b Lanes) Lanes             { return active{}.Sub(a, b) }
func Mul(a, b Lanes) Lanes             { return active{}.Mul(a, b) }
func Div(a, b Lanes) Lanes             { return active{}.Div(a, b) }
func Scale(a Lanes, s float32) Lanes   { return active{}.Scale(a, s) }
func Min(a, b Lanes) Lanes             { return active{}.Min(a, b) }
func Max(a, b Lanes) Lanes             { return active{}.Max(a, b) }
func Dot(a, b Lanes) float32           { return active{}.Dot(a, b) }
func Lerp(a, b Lanes, t float32) Lanes { return active{}.Lerp(a, b, t) }

// min and max follow the ordered comparison a < b ? a : b, so a NaN in
// b is returned and a NaN in a is dropped. Vector clamping relies on it.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
