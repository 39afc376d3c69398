package math

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/math/lanes"
)

// Vector4 represents a 4D vector
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 creates and returns a new 4-element vector using the supplied values.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// NewVector4FromVector2 extends v with the given z and w components.
func NewVector4FromVector2(v Vector2, z, w float32) Vector4 {
	return Vector4{v.X, v.Y, z, w}
}

// NewVector4FromVector3 extends v with the given w component.
func NewVector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

// Vector4Splat returns a vector with every component set to value.
func Vector4Splat(value float32) Vector4 {
	return Vector4{value, value, value, value}
}

func Vector4Zero() Vector4  { return Vector4{} }
func Vector4One() Vector4   { return Vector4{1, 1, 1, 1} }
func Vector4UnitX() Vector4 { return Vector4{1, 0, 0, 0} }
func Vector4UnitY() Vector4 { return Vector4{0, 1, 0, 0} }
func Vector4UnitZ() Vector4 { return Vector4{0, 0, 1, 0} }
func Vector4UnitW() Vector4 { return Vector4{0, 0, 0, 1} }

func (v Vector4) lanes() lanes.Lanes {
	return lanes.Lanes{v.X, v.Y, v.Z, v.W}
}

func vector4FromLanes(l lanes.Lanes) Vector4 {
	return Vector4{l[0], l[1], l[2], l[3]}
}

// ToVector3 drops the w component.
func (v Vector4) ToVector3() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

func (v Vector4) Add(other Vector4) Vector4 {
	return vector4FromLanes(lanes.Add(v.lanes(), other.lanes()))
}

func (v Vector4) Sub(other Vector4) Vector4 {
	return vector4FromLanes(lanes.Sub(v.lanes(), other.lanes()))
}

// Mul multiplies componentwise.
func (v Vector4) Mul(other Vector4) Vector4 {
	return vector4FromLanes(lanes.Mul(v.lanes(), other.lanes()))
}

// Div divides componentwise. Zero components yield Inf or NaN.
func (v Vector4) Div(other Vector4) Vector4 {
	return vector4FromLanes(lanes.Div(v.lanes(), other.lanes()))
}

func (v Vector4) MulScalar(scalar float32) Vector4 {
	return vector4FromLanes(lanes.Scale(v.lanes(), scalar))
}

func (v Vector4) DivScalar(divider float32) Vector4 {
	return Vector4{v.X / divider, v.Y / divider, v.Z / divider, v.W / divider}
}

func (v Vector4) Negate() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vector4) Dot(other Vector4) float32 {
	return lanes.Dot(v.lanes(), other.lanes())
}

func (v Vector4) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vector4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

func (v Vector4) DistanceSquared(other Vector4) float32 {
	return v.Sub(other).LengthSquared()
}

func (v Vector4) Distance(other Vector4) float32 {
	return Sqrt(v.DistanceSquared(other))
}

// Normalize returns a unit length copy of v. A zero vector yields NaN
// components.
func (v Vector4) Normalize() Vector4 {
	length := v.Length()
	return Vector4{v.X / length, v.Y / length, v.Z / length, v.W / length}
}

func (v Vector4) Min(other Vector4) Vector4 {
	return vector4FromLanes(lanes.Min(v.lanes(), other.lanes()))
}

func (v Vector4) Max(other Vector4) Vector4 {
	return vector4FromLanes(lanes.Max(v.lanes(), other.lanes()))
}

// Clamp restricts every component to the matching [min, max] range.
// A NaN component stays NaN, as with the scalar Clamp.
func (v Vector4) Clamp(min, max Vector4) Vector4 {
	return Vector4{
		Clamp(v.X, min.X, max.X),
		Clamp(v.Y, min.Y, max.Y),
		Clamp(v.Z, min.Z, max.Z),
		Clamp(v.W, min.W, max.W),
	}
}

// Transform applies m to the full homogeneous vector.
func (v Vector4) Transform(m Matrix) Vector4 {
	return Vector4{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// TransformQuaternion rotates the xyz part of v by q and keeps w.
func (v Vector4) TransformQuaternion(q Quaternion) Vector4 {
	r := Vector3{v.X, v.Y, v.Z}.TransformQuaternion(q)
	return Vector4{r.X, r.Y, r.Z, v.W}
}

// Vector4FromVector2Transform transforms the position (x, y, 0, 1) by m.
func Vector4FromVector2Transform(v Vector2, m Matrix) Vector4 {
	return Vector4{v.X, v.Y, 0, 1}.Transform(m)
}

// Vector4FromVector3Transform transforms the position (x, y, z, 1) by m.
func Vector4FromVector3Transform(v Vector3, m Matrix) Vector4 {
	return Vector4{v.X, v.Y, v.Z, 1}.Transform(m)
}

// PerspectiveDivide returns xyz divided by w.
func (v Vector4) PerspectiveDivide() Vector3 {
	return Vector3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// Equals reports whether both vectors hold the same values. Unlike ==
// it treats NaN components as equal to each other.
func (v Vector4) Equals(other Vector4) bool {
	return floatEquals(v.X, other.X) && floatEquals(v.Y, other.Y) &&
		floatEquals(v.Z, other.Z) && floatEquals(v.W, other.W)
}

// Hash returns a hash code consistent with Equals.
func (v Vector4) Hash() uint32 {
	return hashFloats(v.X, v.Y, v.Z, v.W)
}

// ApproxEqual reports whether every component differs by at most tolerance.
func (v Vector4) ApproxEqual(other Vector4, tolerance float32) bool {
	return Abs(v.X-other.X) <= tolerance && Abs(v.Y-other.Y) <= tolerance &&
		Abs(v.Z-other.Z) <= tolerance && Abs(v.W-other.W) <= tolerance
}

func (v Vector4) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v W:%v}", v.X, v.Y, v.Z, v.W)
}

func Vector4Lerp(a, b Vector4, amount float32) Vector4 {
	return vector4FromLanes(lanes.Lerp(a.lanes(), b.lanes(), amount))
}

func Vector4SmoothStep(a, b Vector4, amount float32) Vector4 {
	return Vector4{
		SmoothStep(a.X, b.X, amount),
		SmoothStep(a.Y, b.Y, amount),
		SmoothStep(a.Z, b.Z, amount),
		SmoothStep(a.W, b.W, amount),
	}
}

func Vector4Hermite(v1, t1, v2, t2 Vector4, amount float32) Vector4 {
	return Vector4{
		Hermite(v1.X, t1.X, v2.X, t2.X, amount),
		Hermite(v1.Y, t1.Y, v2.Y, t2.Y, amount),
		Hermite(v1.Z, t1.Z, v2.Z, t2.Z, amount),
		Hermite(v1.W, t1.W, v2.W, t2.W, amount),
	}
}

func Vector4CatmullRom(v1, v2, v3, v4 Vector4, amount float32) Vector4 {
	return Vector4{
		CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
		CatmullRom(v1.Z, v2.Z, v3.Z, v4.Z, amount),
		CatmullRom(v1.W, v2.W, v3.W, v4.W, amount),
	}
}

func Vector4Barycentric(v1, v2, v3 Vector4, amount1, amount2 float32) Vector4 {
	return Vector4{
		Barycentric(v1.X, v2.X, v3.X, amount1, amount2),
		Barycentric(v1.Y, v2.Y, v3.Y, amount1, amount2),
		Barycentric(v1.Z, v2.Z, v3.Z, amount1, amount2),
		Barycentric(v1.W, v2.W, v3.W, amount1, amount2),
	}
}

func TransformVector4s(src []Vector4, m Matrix, dst []Vector4) error {
	return transformAll(src, dst, func(v Vector4) Vector4 { return v.Transform(m) })
}

func TransformVector4Range(src []Vector4, srcIndex int, m Matrix, dst []Vector4, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector4) Vector4 { return v.Transform(m) })
}

func TransformVector4sQuaternion(src []Vector4, q Quaternion, dst []Vector4) error {
	return transformAll(src, dst, func(v Vector4) Vector4 { return v.TransformQuaternion(q) })
}

func TransformVector4RangeQuaternion(src []Vector4, srcIndex int, q Quaternion, dst []Vector4, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector4) Vector4 { return v.TransformQuaternion(q) })
}
