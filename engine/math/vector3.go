package math

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/math/lanes"
)

// Vector3 represents a 3D vector
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 creates and returns a new 3-element vector using the supplied values.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// NewVector3FromVector2 extends v with the given z component.
func NewVector3FromVector2(v Vector2, z float32) Vector3 {
	return Vector3{v.X, v.Y, z}
}

// Vector3Splat returns a vector with every component set to value.
func Vector3Splat(value float32) Vector3 {
	return Vector3{value, value, value}
}

func Vector3Zero() Vector3  { return Vector3{} }
func Vector3One() Vector3   { return Vector3{1, 1, 1} }
func Vector3UnitX() Vector3 { return Vector3{1, 0, 0} }
func Vector3UnitY() Vector3 { return Vector3{0, 1, 0} }
func Vector3UnitZ() Vector3 { return Vector3{0, 0, 1} }

// Vector3Up returns (0, 1, 0).
func Vector3Up() Vector3 { return Vector3{0, 1, 0} }

// Vector3Down returns (0, -1, 0).
func Vector3Down() Vector3 { return Vector3{0, -1, 0} }

// Vector3Right returns (1, 0, 0).
func Vector3Right() Vector3 { return Vector3{1, 0, 0} }

// Vector3Left returns (-1, 0, 0).
func Vector3Left() Vector3 { return Vector3{-1, 0, 0} }

// Vector3Forward returns (0, 0, -1).
func Vector3Forward() Vector3 { return Vector3{0, 0, -1} }

// Vector3Backward returns (0, 0, 1).
func Vector3Backward() Vector3 { return Vector3{0, 0, 1} }

func (v Vector3) lanes() lanes.Lanes {
	return lanes.Lanes{v.X, v.Y, v.Z, 0}
}

func vector3FromLanes(l lanes.Lanes) Vector3 {
	return Vector3{l[0], l[1], l[2]}
}

// ToVector4 returns a Vector4 using v for x, y and z and the given w.
func (v Vector3) ToVector4(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return vector3FromLanes(lanes.Add(v.lanes(), other.lanes()))
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return vector3FromLanes(lanes.Sub(v.lanes(), other.lanes()))
}

// Mul multiplies componentwise.
func (v Vector3) Mul(other Vector3) Vector3 {
	return vector3FromLanes(lanes.Mul(v.lanes(), other.lanes()))
}

// Div divides componentwise. Zero components yield Inf or NaN.
func (v Vector3) Div(other Vector3) Vector3 {
	return vector3FromLanes(lanes.Div(v.lanes(), other.lanes()))
}

func (v Vector3) MulScalar(scalar float32) Vector3 {
	return vector3FromLanes(lanes.Scale(v.lanes(), scalar))
}

func (v Vector3) DivScalar(divider float32) Vector3 {
	return Vector3{v.X / divider, v.Y / divider, v.Z / divider}
}

func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product between v and other.
func (v Vector3) Dot(other Vector3) float32 {
	return lanes.Dot(v.lanes(), other.lanes())
}

// Cross calculates and returns the right-handed cross product of v and other.
// The cross product is a new vector which is orthogonal to both provided vectors.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

// LengthSquared returns the squared length of the vector.
func (v Vector3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length of the vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

func (v Vector3) DistanceSquared(other Vector3) float32 {
	return v.Sub(other).LengthSquared()
}

// Distance returns the distance between v and other.
func (v Vector3) Distance(other Vector3) float32 {
	return Sqrt(v.DistanceSquared(other))
}

// Normalize returns a unit length copy of v. A zero vector yields NaN
// components.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

func (v Vector3) Min(other Vector3) Vector3 {
	return vector3FromLanes(lanes.Min(v.lanes(), other.lanes()))
}

func (v Vector3) Max(other Vector3) Vector3 {
	return vector3FromLanes(lanes.Max(v.lanes(), other.lanes()))
}

// Clamp restricts every component to the matching [min, max] range.
// A NaN component stays NaN, as with the scalar Clamp.
func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return Vector3{
		Clamp(v.X, min.X, max.X),
		Clamp(v.Y, min.Y, max.Y),
		Clamp(v.Z, min.Z, max.Z),
	}
}

// Reflect returns v reflected off a surface with the given normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Transform treats v as a position, as if a w component of 1 was
// present, and applies m including its translation.
func (v Vector3) Transform(m Matrix) Vector3 {
	return Vector3{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformNormal treats v as a direction and ignores the translation of m.
func (v Vector3) TransformNormal(m Matrix) Vector3 {
	return Vector3{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// TransformQuaternion rotates v by q. The result matches
// v.Transform(CreateFromQuaternion(q)).
func (v Vector3) TransformQuaternion(q Quaternion) Vector3 {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	wx := q.W * x2
	wy := q.W * y2
	wz := q.W * z2
	xx := q.X * x2
	xy := q.X * y2
	xz := q.X * z2
	yy := q.Y * y2
	yz := q.Y * z2
	zz := q.Z * z2

	return Vector3{
		v.X*(1-yy-zz) + v.Y*(xy-wz) + v.Z*(xz+wy),
		v.X*(xy+wz) + v.Y*(1-xx-zz) + v.Z*(yz-wx),
		v.X*(xz-wy) + v.Y*(yz+wx) + v.Z*(1-xx-yy),
	}
}

// Equals reports whether both vectors hold the same values. Unlike ==
// it treats NaN components as equal to each other.
func (v Vector3) Equals(other Vector3) bool {
	return floatEquals(v.X, other.X) && floatEquals(v.Y, other.Y) && floatEquals(v.Z, other.Z)
}

// Hash returns a hash code consistent with Equals.
func (v Vector3) Hash() uint32 {
	return hashFloats(v.X, v.Y, v.Z)
}

// ApproxEqual reports whether every component differs by at most tolerance.
func (v Vector3) ApproxEqual(other Vector3, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

func (v Vector3) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v}", v.X, v.Y, v.Z)
}

func Vector3Lerp(a, b Vector3, amount float32) Vector3 {
	return vector3FromLanes(lanes.Lerp(a.lanes(), b.lanes(), amount))
}

func Vector3SmoothStep(a, b Vector3, amount float32) Vector3 {
	return Vector3{
		SmoothStep(a.X, b.X, amount),
		SmoothStep(a.Y, b.Y, amount),
		SmoothStep(a.Z, b.Z, amount),
	}
}

func Vector3Hermite(v1, t1, v2, t2 Vector3, amount float32) Vector3 {
	return Vector3{
		Hermite(v1.X, t1.X, v2.X, t2.X, amount),
		Hermite(v1.Y, t1.Y, v2.Y, t2.Y, amount),
		Hermite(v1.Z, t1.Z, v2.Z, t2.Z, amount),
	}
}

func Vector3CatmullRom(v1, v2, v3, v4 Vector3, amount float32) Vector3 {
	return Vector3{
		CatmullRom(v1.X, v2.X, v3.X, v4.X, amount),
		CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, amount),
		CatmullRom(v1.Z, v2.Z, v3.Z, v4.Z, amount),
	}
}

func Vector3Barycentric(v1, v2, v3 Vector3, amount1, amount2 float32) Vector3 {
	return Vector3{
		Barycentric(v1.X, v2.X, v3.X, amount1, amount2),
		Barycentric(v1.Y, v2.Y, v3.Y, amount1, amount2),
		Barycentric(v1.Z, v2.Z, v3.Z, amount1, amount2),
	}
}

// TransformVector3s transforms every position in src into dst, which
// must be at least as long as src.
func TransformVector3s(src []Vector3, m Matrix, dst []Vector3) error {
	return transformAll(src, dst, func(v Vector3) Vector3 { return v.Transform(m) })
}

// TransformVector3Range transforms length positions of src starting at
// srcIndex into dst starting at dstIndex.
func TransformVector3Range(src []Vector3, srcIndex int, m Matrix, dst []Vector3, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector3) Vector3 { return v.Transform(m) })
}

func TransformNormalVector3s(src []Vector3, m Matrix, dst []Vector3) error {
	return transformAll(src, dst, func(v Vector3) Vector3 { return v.TransformNormal(m) })
}

func TransformNormalVector3Range(src []Vector3, srcIndex int, m Matrix, dst []Vector3, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector3) Vector3 { return v.TransformNormal(m) })
}

func TransformVector3sQuaternion(src []Vector3, q Quaternion, dst []Vector3) error {
	return transformAll(src, dst, func(v Vector3) Vector3 { return v.TransformQuaternion(q) })
}

func TransformVector3RangeQuaternion(src []Vector3, srcIndex int, q Quaternion, dst []Vector3, dstIndex, length int) error {
	return transformRange(src, srcIndex, dst, dstIndex, length, func(v Vector3) Vector3 { return v.TransformQuaternion(q) })
}
