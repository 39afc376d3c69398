package math

import "golang.org/x/image/math/f32"

// Conversions to and from the plain array types of golang.org/x/image/math/f32.
// Both use row-major storage so matrices map element for element.

func (v Vector2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }
func (v Vector3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }
func (v Vector4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

func Vector2FromF32(v f32.Vec2) Vector2 { return Vector2{v[0], v[1]} }
func Vector3FromF32(v f32.Vec3) Vector3 { return Vector3{v[0], v[1], v[2]} }
func Vector4FromF32(v f32.Vec4) Vector4 { return Vector4{v[0], v[1], v[2], v[3]} }

// F32 returns m as an f32.Mat4, where element 4*r+c is row r column c.
func (m Matrix) F32() f32.Mat4 {
	return f32.Mat4(m.ToArray())
}

func MatrixFromF32(m f32.Mat4) Matrix {
	return MatrixFromArray([16]float32(m))
}

// F32Mat3 returns the upper 3x3 rotation and scale block of m.
func (m Matrix) F32Mat3() f32.Mat3 {
	return f32.Mat3{
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33,
	}
}
