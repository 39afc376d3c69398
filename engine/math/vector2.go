package math

import "fmt"

// Vector2 represents a 2D vector
type Vector2 struct {
	X, Y float32
}

// NewVector2 creates and returns a new 2-element vector using the supplied values.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Splat returns a vector with both components set to value.
func Vector2Splat(value float32) Vector2 {
	return Vector2{value, value}
}

func Vector2Zero() Vector2  { return Vector2{} }
func Vector2One() Vector2   { return Vector2{1, 1} }
func Vector2UnitX() Vector2 { return Vector2{1, 0} }
func Vector2UnitY() Vector2 { return Vector2{0, 1} }

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies componentwise.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// Div divides componentwise. Zero components yield Inf or NaN.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vector2{v.X * scalar, v.Y * scalar}
}

func (v Vector2) DivScalar(divider float32) Vector2 {
	return Vector2{v.X / divider, v.Y / divider}
}

func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared length of the vector.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of the vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

func (v Vector2) DistanceSquared(other Vector2) float32 {
	return v.Sub(other).LengthSquared()
}

// Distance returns the distance between v and other.
func (v Vector2) Distance(other Vector2) float32 {
	return Sqrt(v.DistanceSquared(other))
}

// Normalize returns a unit length copy of v. A zero vector yields NaN
// components.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	return Vector2{v.X / length, v.Y / length}
}

func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// Clamp restricts every component to the matching [min, max] range.
// A NaN component stays NaN, as with the scalar Clamp.
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{
		Clamp(v.X, min.X, max.X),
		Clamp(v.Y, min.Y, max.Y),
	}
}

// Reflect returns v reflected off a surface with the given normal.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	d := 2 * v.Dot(normal)
	return Vector2{v.X - d*normal.X, v.Y - d*normal.Y}
}

// Transform treats v as a position and applies m including its translation.
func (v Vector2) Transform(m Matrix) Vector2 {
	return Vector2{
		v.X*m.M11 + v.Y*m.M21 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// TransformNormal treats v as a direction and ignores the translation of m.
func (v Vector2) TransformNormal(m Matrix) Vector2 {
	return Vector2{
		v.X*m.M11 + v.Y*m.M21,
		v.X*m.M12 + v.Y*m.M22,
	}
}

// TransformQuaternion rotates v by q.
func (v Vector2) TransformQuaternion(q Quaternion) Vector2 {
	r := Vector3{v.X, v.Y, 0}.TransformQuaternion(q)
	return Vector2{r.X, r.Y}
}

// Equals reports whether both vectors hold the same values. Unlike ==
// it treats NaN components as equal to each other.
func (v Vector2) Equals(other Vector2) bool {
	return floatEquals(v.X, other.X) && floatEquals(v.Y, other.Y)
}

// Hash returns a hash code consistent with Equals.
func (v Vector2) Hash() uint32 {
	return hashFloats(v.X, v.Y)
}

// ApproxEqual reports whether every component differs by at most tolerance.
func (v Vector2) ApproxEqual(other Vector2, tolerance float32) bool {
	return Abs(v.X-other.X) <= tolerance && Abs(v.Y-other.Y) <= tolerance
}

func (v Vector2) String() string {
	return fmt.Sprintf("{X:%v Y:%v}", v.X, v.Y)
}

func Vector2Lerp(a, b Vector2, amount float32) Vector2 {
	return Vector2{Lerp(a.X, b.X, amount), Lerp(a.Y, b.Y, amount)}
}

func Vector2SmoothStep(a, b Vector2, amount float32) Vector2 {
	return Vector2{SmoothStep(a.X, b.X, amount), SmoothStep(a.Y, b.Y, amount)}
}

func Vector2Hermite(v1, t1, v2, t2 Vector2, amount float32) Vector2 {
	return Vector2{
		Hermite(v1.X, t1.X, v2.X, t2.X, amount),
		Hermite(v1.Y, t1.Y, v2.Y, t2.Y, amount),
	}
}

func Vector2CatmullRom(v1, v2, v3, v4 Vector2, amount float32) Vector2 {
	return Vector2{
		CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
	}
}

func Vector2Barycentric(v1, v2, v3 Vector2, amount1, amount2 float32) Vector2 {
	return Vector2{
		Barycentric(v1.X, v2.X, v3.X, amount1, amount2),
		Barycentric(v1.Y, v2.Y, v3.Y, amount1, amount2),
	}
}

// TransformVector2s transforms every position in src into dst, which
// must be at least as long as src.
func TransformVector2s(src []Vector2, m Matrix, dst []Vector2) error {
	return transformAll(src, dst, func(v Vector2) Vector2 { return v.Transform(m) })
}

// TransformVector2Range transforms length positions of src starting at
// srcIndex into dst starting at dstIndex.
func TransformVector2Range(src []Vector2, srcIndex int, m Matrix, dst []Vector2, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector2) Vector2 { return v.Transform(m) })
}

func TransformNormalVector2s(src []Vector2, m Matrix, dst []Vector2) error {
	return transformAll(src, dst, func(v Vector2) Vector2 { return v.TransformNormal(m) })
}

func TransformNormalVector2Range(src []Vector2, srcIndex int, m Matrix, dst []Vector2, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector2) Vector2 { return v.TransformNormal(m) })
}

func TransformVector2sQuaternion(src []Vector2, q Quaternion, dst []Vector2) error {
	return transformAll(src, dst, func(v Vector2) Vector2 { return v.TransformQuaternion(q) })
}

func TransformVector2RangeQuaternion(src []Vector2, srcIndex int, q Quaternion, dst []Vector2, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector2) Vector2 { return v.TransformQuaternion(q) })
}
