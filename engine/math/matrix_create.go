package math

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/core"
)

// CreateTranslation creates a translation matrix from the given position.
func CreateTranslation(position Vector3) Matrix {
	m := MatrixIdentity()
	m.M41 = position.X
	m.M42 = position.Y
	m.M43 = position.Z
	return m
}

// CreateScale returns a scale matrix using the provided per-axis factors.
func CreateScale(x, y, z float32) Matrix {
	m := MatrixIdentity()
	m.M11 = x
	m.M22 = y
	m.M33 = z
	return m
}

// CreateScaleVector returns a scale matrix using the components of scale.
func CreateScaleVector(scale Vector3) Matrix {
	return CreateScale(scale.X, scale.Y, scale.Z)
}

// CreateScaleUniform returns a matrix scaling all three axes by scale.
func CreateScaleUniform(scale float32) Matrix {
	return CreateScale(scale, scale, scale)
}

// CreateRotationX creates a rotation of radians around the x axis.
func CreateRotationX(radians float32) Matrix {
	m := MatrixIdentity()
	c := Cos(radians)
	s := Sin(radians)

	m.M22 = c
	m.M23 = s
	m.M32 = -s
	m.M33 = c
	return m
}

// CreateRotationY creates a rotation of radians around the y axis.
func CreateRotationY(radians float32) Matrix {
	m := MatrixIdentity()
	c := Cos(radians)
	s := Sin(radians)

	m.M11 = c
	m.M13 = -s
	m.M31 = s
	m.M33 = c
	return m
}

// CreateRotationZ creates a rotation of radians around the z axis.
func CreateRotationZ(radians float32) Matrix {
	m := MatrixIdentity()
	c := Cos(radians)
	s := Sin(radians)

	m.M11 = c
	m.M12 = s
	m.M21 = -s
	m.M22 = c
	return m
}

// CreateFromAxisAngle creates a rotation of angle radians around a unit axis.
func CreateFromAxisAngle(axis Vector3, angle float32) Matrix {
	x, y, z := axis.X, axis.Y, axis.Z
	s := Sin(angle)
	c := Cos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	m := MatrixIdentity()
	m.M11 = xx + c*(1-xx)
	m.M12 = xy - c*xy + s*z
	m.M13 = xz - c*xz - s*y
	m.M21 = xy - c*xy - s*z
	m.M22 = yy + c*(1-yy)
	m.M23 = yz - c*yz + s*x
	m.M31 = xz - c*xz + s*y
	m.M32 = yz - c*yz - s*x
	m.M33 = zz + c*(1-zz)
	return m
}

// CreateFromQuaternion creates a rotation matrix from a unit quaternion.
func CreateFromQuaternion(q Quaternion) Matrix {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	zw := q.Z * q.W
	zx := q.Z * q.X
	yw := q.Y * q.W
	yz := q.Y * q.Z
	xw := q.X * q.W

	m := MatrixIdentity()
	m.M11 = 1 - 2*(yy+zz)
	m.M12 = 2 * (xy + zw)
	m.M13 = 2 * (zx - yw)
	m.M21 = 2 * (xy - zw)
	m.M22 = 1 - 2*(zz+xx)
	m.M23 = 2 * (yz + xw)
	m.M31 = 2 * (zx + yw)
	m.M32 = 2 * (yz - xw)
	m.M33 = 1 - 2*(yy+xx)
	return m
}

// CreateFromYawPitchRoll creates a rotation from yaw (y axis), pitch (x
// axis) and roll (z axis) angles in radians.
func CreateFromYawPitchRoll(yaw, pitch, roll float32) Matrix {
	return CreateFromQuaternion(QuaternionFromYawPitchRoll(yaw, pitch, roll))
}

// CreateLookAt creates a right-handed view matrix for a camera at
// position looking at target.
func CreateLookAt(position, target, up Vector3) Matrix {
	zAxis := position.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Matrix{
		M11: xAxis.X, M12: yAxis.X, M13: zAxis.X, M14: 0,
		M21: xAxis.Y, M22: yAxis.Y, M23: zAxis.Y, M24: 0,
		M31: xAxis.Z, M32: yAxis.Z, M33: zAxis.Z, M34: 0,
		M41: -xAxis.Dot(position), M42: -yAxis.Dot(position), M43: -zAxis.Dot(position), M44: 1,
	}
}

// CreateWorld creates a world matrix placing an object at position,
// facing forward with the given up direction.
func CreateWorld(position, forward, up Vector3) Matrix {
	z := forward.Normalize().Negate()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	m := MatrixIdentity()
	m.SetRight(x)
	m.SetUp(y)
	m.SetBackward(z)
	m.SetTranslation(position)
	return m
}

// CreateOrthographic creates an orthographic projection of a view volume
// of the given size centered on the view axis. Depth maps to [0, 1].
func CreateOrthographic(width, height, nearPlane, farPlane float32) Matrix {
	m := Matrix{}
	m.M11 = 2 / width
	m.M22 = 2 / height
	m.M33 = 1 / (nearPlane - farPlane)
	m.M43 = nearPlane / (nearPlane - farPlane)
	m.M44 = 1
	return m
}

// CreateOrthographicOffCenter creates an orthographic projection of an
// arbitrary view volume. Typically used to render flat or 2D scenes.
func CreateOrthographicOffCenter(left, right, bottom, top, nearPlane, farPlane float32) Matrix {
	m := Matrix{}
	m.M11 = 2 / (right - left)
	m.M22 = 2 / (top - bottom)
	m.M33 = 1 / (nearPlane - farPlane)
	m.M41 = (left + right) / (left - right)
	m.M42 = (top + bottom) / (bottom - top)
	m.M43 = nearPlane / (nearPlane - farPlane)
	m.M44 = 1
	return m
}

func validateClipPlanes(nearPlane, farPlane float32) error {
	if !(nearPlane > 0) {
		return fmt.Errorf("%w: near plane distance %v must be positive", core.ErrInvalidArgument, nearPlane)
	}
	if !(farPlane > 0) {
		return fmt.Errorf("%w: far plane distance %v must be positive", core.ErrInvalidArgument, farPlane)
	}
	if nearPlane >= farPlane {
		return fmt.Errorf("%w: near plane distance %v must be less than far plane distance %v", core.ErrInvalidArgument, nearPlane, farPlane)
	}
	return nil
}

// CreatePerspective creates a perspective projection whose near plane
// has the given width and height. Depth maps to [0, 1].
func CreatePerspective(width, height, nearPlane, farPlane float32) (Matrix, error) {
	if err := validateClipPlanes(nearPlane, farPlane); err != nil {
		return Matrix{}, err
	}
	m := Matrix{}
	m.M11 = 2 * nearPlane / width
	m.M22 = 2 * nearPlane / height
	m.M33 = farPlane / (nearPlane - farPlane)
	m.M34 = -1
	m.M43 = nearPlane * farPlane / (nearPlane - farPlane)
	return m, nil
}

// CreatePerspectiveOffCenter creates a perspective projection of an
// arbitrary view volume given at the near plane.
func CreatePerspectiveOffCenter(left, right, bottom, top, nearPlane, farPlane float32) (Matrix, error) {
	if err := validateClipPlanes(nearPlane, farPlane); err != nil {
		return Matrix{}, err
	}
	m := Matrix{}
	m.M11 = 2 * nearPlane / (right - left)
	m.M22 = 2 * nearPlane / (top - bottom)
	m.M31 = (left + right) / (right - left)
	m.M32 = (top + bottom) / (top - bottom)
	m.M33 = farPlane / (nearPlane - farPlane)
	m.M34 = -1
	m.M43 = nearPlane * farPlane / (nearPlane - farPlane)
	return m, nil
}

// CreatePerspectiveFieldOfView creates a perspective projection from a
// vertical field of view in radians. Typically used to render 3d scenes.
func CreatePerspectiveFieldOfView(fieldOfView, aspectRatio, nearPlane, farPlane float32) (Matrix, error) {
	if !(fieldOfView > 0 && fieldOfView < Pi) {
		return Matrix{}, fmt.Errorf("%w: field of view %v must be within (0, pi)", core.ErrInvalidArgument, fieldOfView)
	}
	if err := validateClipPlanes(nearPlane, farPlane); err != nil {
		return Matrix{}, err
	}
	yScale := 1 / Tan(fieldOfView*0.5)
	xScale := yScale / aspectRatio

	m := Matrix{}
	m.M11 = xScale
	m.M22 = yScale
	m.M33 = farPlane / (nearPlane - farPlane)
	m.M34 = -1
	m.M43 = nearPlane * farPlane / (nearPlane - farPlane)
	return m, nil
}

// billboardEpsilon is the squared distance under which the object is
// considered to sit on the camera.
const billboardEpsilon float32 = 0.0001

// cosOneDegree is cos(1°); axes closer than that are treated as parallel.
const cosOneDegree float32 = 0.9998477

// CreateBillboard creates a matrix that rotates an object at
// objectPosition to face the camera. cameraForward is optional and is
// used when the object and camera coincide.
func CreateBillboard(objectPosition, cameraPosition, cameraUp Vector3, cameraForward *Vector3) Matrix {
	dir := objectPosition.Sub(cameraPosition)
	lengthSq := dir.LengthSquared()
	if lengthSq < billboardEpsilon {
		if cameraForward != nil {
			dir = cameraForward.Negate()
		} else {
			dir = Vector3Forward()
		}
	} else {
		dir = dir.MulScalar(1 / Sqrt(lengthSq))
	}

	right := cameraUp.Cross(dir).Normalize()
	up := dir.Cross(right)

	m := MatrixIdentity()
	m.SetRight(right)
	m.SetUp(up)
	m.SetBackward(dir)
	m.SetTranslation(objectPosition)
	return m
}

// CreateConstrainedBillboard creates a matrix that rotates an object
// around rotateAxis so it faces the camera as closely as possible.
// cameraForward and objectForward are optional hints used when the
// facing direction is degenerate.
func CreateConstrainedBillboard(objectPosition, cameraPosition, rotateAxis Vector3, cameraForward, objectForward *Vector3) Matrix {
	dir := objectPosition.Sub(cameraPosition)
	lengthSq := dir.LengthSquared()
	if lengthSq < billboardEpsilon {
		if cameraForward != nil {
			dir = cameraForward.Negate()
		} else {
			dir = Vector3Forward()
		}
	} else {
		dir = dir.MulScalar(1 / Sqrt(lengthSq))
	}

	var right, backward Vector3
	if Abs(rotateAxis.Dot(dir)) > cosOneDegree {
		// The camera looks along the rotation axis, pick another direction.
		var hint Vector3
		if objectForward != nil {
			hint = *objectForward
			if Abs(rotateAxis.Dot(hint)) > cosOneDegree {
				hint = parallelFallback(rotateAxis)
			}
		} else {
			hint = parallelFallback(rotateAxis)
		}
		right = rotateAxis.Cross(hint).Normalize()
		backward = right.Cross(rotateAxis).Normalize()
	} else {
		right = rotateAxis.Cross(dir).Normalize()
		backward = right.Cross(rotateAxis).Normalize()
	}

	m := MatrixIdentity()
	m.SetRight(right)
	m.SetUp(rotateAxis)
	m.SetBackward(backward)
	m.SetTranslation(objectPosition)
	return m
}

func parallelFallback(axis Vector3) Vector3 {
	if Abs(axis.Dot(Vector3Forward())) > cosOneDegree {
		return Vector3Right()
	}
	return Vector3Forward()
}

// CreateShadow creates a matrix that flattens geometry onto plane as
// seen from a directional light shining along lightDirection. Results
// are homogeneous and need a divide by w.
func CreateShadow(lightDirection Vector3, plane Plane) Matrix {
	p := plane.Normalize()
	dot := p.Normal.Dot(lightDirection)
	x := -p.Normal.X
	y := -p.Normal.Y
	z := -p.Normal.Z
	d := -p.D

	return Matrix{
		M11: x*lightDirection.X + dot, M12: x * lightDirection.Y, M13: x * lightDirection.Z, M14: 0,
		M21: y * lightDirection.X, M22: y*lightDirection.Y + dot, M23: y * lightDirection.Z, M24: 0,
		M31: z * lightDirection.X, M32: z * lightDirection.Y, M33: z*lightDirection.Z + dot, M34: 0,
		M41: d * lightDirection.X, M42: d * lightDirection.Y, M43: d * lightDirection.Z, M44: dot,
	}
}

// CreateReflection creates a matrix that mirrors geometry across plane.
func CreateReflection(plane Plane) Matrix {
	p := plane.Normalize()
	x, y, z := p.Normal.X, p.Normal.Y, p.Normal.Z
	a := -2 * x
	b := -2 * y
	c := -2 * z

	return Matrix{
		M11: a*x + 1, M12: b * x, M13: c * x, M14: 0,
		M21: a * y, M22: b*y + 1, M23: c * y, M24: 0,
		M31: a * z, M32: b * z, M33: c*z + 1, M34: 0,
		M41: a * p.D, M42: b * p.D, M43: c * p.D, M44: 1,
	}
}
