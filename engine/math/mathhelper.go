// Package math holds the float32 value types used for transforms, camera
// math and collision queries: vectors, matrices, quaternions, planes,
// rays, bounding volumes and packed colors.
//
// Every operation is a pure function of its inputs. Arithmetic follows
// IEEE-754: division by zero, normalizing a zero vector or inverting a
// singular matrix produce Inf or NaN components instead of errors.
// Errors are reserved for malformed arguments such as nil slices,
// overrunning array windows or negative radii.
//
// Matrices are row-major and use the row-vector convention (v * M),
// right-handed, with the translation stored in M41, M42 and M43.
package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

const (
	// E is the base of the natural logarithm.
	E float32 = 2.71828182845904523536
	// Log10E is the base 10 logarithm of E.
	Log10E float32 = 0.434294481903251827651
	// Log2E is the base 2 logarithm of E.
	Log2E float32 = 1.44269504088896340736
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi float32 = 3.14159265358979323846
	// TwoPi is Pi multiplied by 2.
	TwoPi float32 = 2.0 * Pi
	// PiOver2 is Pi divided by 2.
	PiOver2 float32 = 0.5 * Pi
	// PiOver4 is Pi divided by 4.
	PiOver4 float32 = 0.25 * Pi
	// Epsilon is the smallest positive number where 1.0 + Epsilon != 1.0.
	Epsilon float32 = 1.192092896e-07

	deg2RadMultiplier float32 = Pi / 180.0
	rad2DegMultiplier float32 = 180.0 / Pi
)

func Sqrt(x float32) float32         { return math32.Sqrt(x) }
func Abs(x float32) float32          { return math32.Abs(x) }
func Sin(x float32) float32          { return math32.Sin(x) }
func Cos(x float32) float32          { return math32.Cos(x) }
func Tan(x float32) float32          { return math32.Tan(x) }
func Acos(x float32) float32         { return math32.Acos(x) }
func Asin(x float32) float32         { return math32.Asin(x) }
func Atan2(y, x float32) float32     { return math32.Atan2(y, x) }
func IsNaN(x float32) bool           { return math32.IsNaN(x) }
func IsInf(x float32, sign int) bool { return math32.IsInf(x, sign) }
func Inf(sign int) float32           { return math32.Inf(sign) }
func NaN() float32                   { return math32.NaN() }

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Min returns the smaller of a and b. A NaN in b is returned as is.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b. A NaN in b is returned as is.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Distance returns the absolute difference between two values.
func Distance(a, b float32) float32 {
	return Abs(a - b)
}

// Lerp linearly interpolates between a and b. The amount is not
// clamped, values outside [0, 1] extrapolate.
func Lerp(a, b, amount float32) float32 {
	return a + (b-a)*amount
}

// SmoothStep interpolates between a and b using a cubic ease on the
// amount, which is clamped to [0, 1] first.
func SmoothStep(a, b, amount float32) float32 {
	t := Clamp(amount, 0, 1)
	t = t * t * (3 - 2*t)
	return Lerp(a, b, t)
}

// Hermite performs a cubic Hermite spline interpolation between the
// positions v1 and v2 with tangents t1 and t2.
func Hermite(v1, t1, v2, t2, amount float32) float32 {
	if amount == 0 {
		return v1
	}
	if amount == 1 {
		return v2
	}
	s := amount
	s2 := s * s
	s3 := s2 * s

	h1 := 2*s3 - 3*s2 + 1
	h2 := -2*s3 + 3*s2
	h3 := s3 - 2*s2 + s
	h4 := s3 - s2

	return v1*h1 + v2*h2 + t1*h3 + t2*h4
}

// CatmullRom interpolates between v2 and v3 using v1 and v4 as the
// outer control points of a uniform Catmull-Rom spline.
func CatmullRom(v1, v2, v3, v4, amount float32) float32 {
	t := amount
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*v2 +
		(v3-v1)*t +
		(2*v1-5*v2+4*v3-v4)*t2 +
		(3*v2-3*v3-v1+v4)*t3)
}

// Barycentric returns the coordinate of a point given by two normalized
// barycentric weights relative to the triangle v1, v2, v3 along one axis.
func Barycentric(v1, v2, v3, amount1, amount2 float32) float32 {
	return v1 + (v2-v1)*amount1 + (v3-v1)*amount2
}

// ToRadians converts provided degrees to radians.
func ToRadians(degrees float32) float32 {
	return degrees * deg2RadMultiplier
}

// ToDegrees converts provided radians to degrees.
func ToDegrees(radians float32) float32 {
	return radians * rad2DegMultiplier
}

// WrapAngle reduces an angle in radians to the range (-Pi, Pi].
func WrapAngle(angle float32) float32 {
	if angle > -Pi && angle <= Pi {
		return angle
	}
	angle = math32.Remainder(angle, TwoPi)
	if angle <= -Pi {
		angle += TwoPi
	} else if angle > Pi {
		angle -= TwoPi
	}
	return angle
}

// IsPowerOfTwo reports whether value is a positive power of two.
func IsPowerOfTwo(value int) bool {
	return value > 0 && value&(value-1) == 0
}

// float32 equality where NaN equals NaN and +0 equals -0.
func floatEquals(a, b float32) bool {
	return a == b || (IsNaN(a) && IsNaN(b))
}

// floatBits returns a bit pattern that is identical for values that
// floatEquals considers equal.
func floatBits(f float32) uint32 {
	if IsNaN(f) {
		return 0x7fc00000
	}
	if f == 0 {
		return 0
	}
	return math32.Float32bits(f)
}

const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

// hashFloats folds the canonical bit patterns of the values with FNV-1a
// so the position of each component matters.
func hashFloats(values ...float32) uint32 {
	h := fnvOffset
	for _, v := range values {
		h ^= floatBits(v)
		h *= fnvPrime
	}
	return h
}
