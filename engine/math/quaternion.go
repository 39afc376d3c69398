package math

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/math/lanes"
)

// Quaternion represents a rotation. X, Y and Z are the vector part and W
// the scalar part. Only unit quaternions are pure rotations; nothing
// here normalizes implicitly.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion creates a quaternion from its four components.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionFromVector3 creates a quaternion from a vector part and a scalar part.
func NewQuaternionFromVector3(v Vector3, w float32) Quaternion {
	return Quaternion{v.X, v.Y, v.Z, w}
}

// QuaternionIdentity returns the quaternion that represents no rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

func (q Quaternion) lanes() lanes.Lanes {
	return lanes.Lanes{q.X, q.Y, q.Z, q.W}
}

func quaternionFromLanes(l lanes.Lanes) Quaternion {
	return Quaternion{l[0], l[1], l[2], l[3]}
}

// Add adds componentwise.
func (q Quaternion) Add(other Quaternion) Quaternion {
	return quaternionFromLanes(lanes.Add(q.lanes(), other.lanes()))
}

// Sub subtracts componentwise.
func (q Quaternion) Sub(other Quaternion) Quaternion {
	return quaternionFromLanes(lanes.Sub(q.lanes(), other.lanes()))
}

func (q Quaternion) MulScalar(scalar float32) Quaternion {
	return quaternionFromLanes(lanes.Scale(q.lanes(), scalar))
}

// Mul returns the Hamilton product q * other. The product is not
// commutative: rotating by other first and then by q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.X*other.W + other.X*q.W + (q.Y*other.Z - q.Z*other.Y),
		Y: q.Y*other.W + other.Y*q.W + (q.Z*other.X - q.X*other.Z),
		Z: q.Z*other.W + other.Z*q.W + (q.X*other.Y - q.Y*other.X),
		W: q.W*other.W - (q.X*other.X + q.Y*other.Y + q.Z*other.Z),
	}
}

// Div returns q multiplied by the inverse of other.
func (q Quaternion) Div(other Quaternion) Quaternion {
	return q.Mul(other.Inverse())
}

func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

// Conjugate negates the vector part and keeps w.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the conjugate divided by the squared length. For unit
// quaternions this equals the conjugate.
func (q Quaternion) Inverse() Quaternion {
	inv := 1 / q.LengthSquared()
	return Quaternion{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return lanes.Dot(q.lanes(), other.lanes())
}

func (q Quaternion) LengthSquared() float32 {
	return q.Dot(q)
}

func (q Quaternion) Length() float32 {
	return Sqrt(q.LengthSquared())
}

// Normalize returns a unit length copy of q.
func (q Quaternion) Normalize() Quaternion {
	length := q.Length()
	return Quaternion{q.X / length, q.Y / length, q.Z / length, q.W / length}
}

// Equals reports whether both quaternions hold the same values. Unlike ==
// it treats NaN components as equal to each other.
func (q Quaternion) Equals(other Quaternion) bool {
	return floatEquals(q.X, other.X) && floatEquals(q.Y, other.Y) &&
		floatEquals(q.Z, other.Z) && floatEquals(q.W, other.W)
}

// Hash returns a hash code consistent with Equals.
func (q Quaternion) Hash() uint32 {
	return hashFloats(q.X, q.Y, q.Z, q.W)
}

func (q Quaternion) ApproxEqual(other Quaternion, tolerance float32) bool {
	return Abs(q.X-other.X) <= tolerance && Abs(q.Y-other.Y) <= tolerance &&
		Abs(q.Z-other.Z) <= tolerance && Abs(q.W-other.W) <= tolerance
}

func (q Quaternion) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v W:%v}", q.X, q.Y, q.Z, q.W)
}

// QuaternionConcatenate returns the rotation of first followed by second.
func QuaternionConcatenate(first, second Quaternion) Quaternion {
	return second.Mul(first)
}

// QuaternionFromAxisAngle creates a rotation of angle radians around axis,
// which is expected to be unit length.
func QuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	half := angle * 0.5
	s := Sin(half)
	c := Cos(half)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuaternionFromYawPitchRoll creates a rotation from yaw around the y
// axis, pitch around the x axis and roll around the z axis, in radians.
func QuaternionFromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	sr, cr := Sin(roll*0.5), Cos(roll*0.5)
	sp, cp := Sin(pitch*0.5), Cos(pitch*0.5)
	sy, cy := Sin(yaw*0.5), Cos(yaw*0.5)

	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuaternionFromRotationMatrix extracts the rotation held by the upper
// 3x3 part of m, which must be orthonormal.
func QuaternionFromRotationMatrix(m Matrix) Quaternion {
	trace := m.M11 + m.M22 + m.M33

	if trace > 0 {
		s := Sqrt(trace + 1)
		w := s * 0.5
		s = 0.5 / s
		return Quaternion{(m.M23 - m.M32) * s, (m.M31 - m.M13) * s, (m.M12 - m.M21) * s, w}
	}
	if m.M11 >= m.M22 && m.M11 >= m.M33 {
		s := Sqrt(1 + m.M11 - m.M22 - m.M33)
		inv := 0.5 / s
		return Quaternion{0.5 * s, (m.M12 + m.M21) * inv, (m.M13 + m.M31) * inv, (m.M23 - m.M32) * inv}
	}
	if m.M22 > m.M33 {
		s := Sqrt(1 + m.M22 - m.M11 - m.M33)
		inv := 0.5 / s
		return Quaternion{(m.M21 + m.M12) * inv, 0.5 * s, (m.M32 + m.M23) * inv, (m.M31 - m.M13) * inv}
	}
	s := Sqrt(1 + m.M33 - m.M11 - m.M22)
	inv := 0.5 / s
	return Quaternion{(m.M31 + m.M13) * inv, (m.M32 + m.M23) * inv, 0.5 * s, (m.M12 - m.M21) * inv}
}

// slerpThreshold is the cosine above which Slerp falls back to a
// normalized linear interpolation.
const slerpThreshold float32 = 0.9995

// QuaternionSlerp interpolates along the shortest great-circle arc
// between a and b. Both are expected to be unit length.
func QuaternionSlerp(a, b Quaternion, amount float32) Quaternion {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	dot := a.Dot(b)

	// q and -q are the same rotation; flip b so the interpolation takes
	// the shorter path.
	if dot < 0 {
		b = b.Negate()
		dot = -dot
	}

	if dot > slerpThreshold {
		// Inputs too close for acos to be stable.
		return QuaternionLerp(a, b, amount)
	}

	theta0 := Acos(dot)
	theta := theta0 * amount
	sinTheta := Sin(theta)
	sinTheta0 := Sin(theta0)

	s0 := Cos(theta) - dot*sinTheta/sinTheta0 // == sin(theta_0 - theta) / sin(theta_0)
	s1 := sinTheta / sinTheta0

	return Quaternion{
		a.X*s0 + b.X*s1,
		a.Y*s0 + b.Y*s1,
		a.Z*s0 + b.Z*s1,
		a.W*s0 + b.W*s1,
	}
}

// QuaternionLerp interpolates linearly along the shorter path and
// normalizes the result.
func QuaternionLerp(a, b Quaternion, amount float32) Quaternion {
	if a.Dot(b) < 0 {
		b = b.Negate()
	}
	return quaternionFromLanes(lanes.Lerp(a.lanes(), b.lanes(), amount)).Normalize()
}
