package math

import "fmt"

// Matrix is a row-major 4x4 matrix. Vectors are treated as rows and
// multiplied on the left (v * M), so the rows hold the basis vectors
// and M41, M42, M43 hold the translation.
type Matrix struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// NewMatrix creates a matrix from its sixteen entries in row order.
func NewMatrix(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32) Matrix {
	return Matrix{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// MatrixIdentity returns the multiplicative identity:
//
//	{1, 0, 0, 0}
//	{0, 1, 0, 0}
//	{0, 0, 1, 0}
//	{0, 0, 0, 1}
func MatrixIdentity() Matrix {
	return Matrix{M11: 1, M22: 1, M33: 1, M44: 1}
}

// MatrixFromArray builds a matrix from sixteen values in row order.
func MatrixFromArray(a [16]float32) Matrix {
	return Matrix{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
}

// ToArray returns the sixteen entries in row order.
func (m Matrix) ToArray() [16]float32 {
	return [16]float32{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// Right returns the first row.
func (m Matrix) Right() Vector3 { return Vector3{m.M11, m.M12, m.M13} }

// Left returns the negated first row.
func (m Matrix) Left() Vector3 { return Vector3{-m.M11, -m.M12, -m.M13} }

// Up returns the second row.
func (m Matrix) Up() Vector3 { return Vector3{m.M21, m.M22, m.M23} }

// Down returns the negated second row.
func (m Matrix) Down() Vector3 { return Vector3{-m.M21, -m.M22, -m.M23} }

// Backward returns the third row.
func (m Matrix) Backward() Vector3 { return Vector3{m.M31, m.M32, m.M33} }

// Forward returns the negated third row.
func (m Matrix) Forward() Vector3 { return Vector3{-m.M31, -m.M32, -m.M33} }

// Translation returns the fourth row.
func (m Matrix) Translation() Vector3 { return Vector3{m.M41, m.M42, m.M43} }

func (m *Matrix) SetRight(v Vector3)       { m.M11, m.M12, m.M13 = v.X, v.Y, v.Z }
func (m *Matrix) SetLeft(v Vector3)        { m.M11, m.M12, m.M13 = -v.X, -v.Y, -v.Z }
func (m *Matrix) SetUp(v Vector3)          { m.M21, m.M22, m.M23 = v.X, v.Y, v.Z }
func (m *Matrix) SetDown(v Vector3)        { m.M21, m.M22, m.M23 = -v.X, -v.Y, -v.Z }
func (m *Matrix) SetBackward(v Vector3)    { m.M31, m.M32, m.M33 = v.X, v.Y, v.Z }
func (m *Matrix) SetForward(v Vector3)     { m.M31, m.M32, m.M33 = -v.X, -v.Y, -v.Z }
func (m *Matrix) SetTranslation(v Vector3) { m.M41, m.M42, m.M43 = v.X, v.Y, v.Z }

// Add adds componentwise.
func (m Matrix) Add(other Matrix) Matrix {
	a, b := m.ToArray(), other.ToArray()
	for i := range a {
		a[i] += b[i]
	}
	return MatrixFromArray(a)
}

// Sub subtracts componentwise.
func (m Matrix) Sub(other Matrix) Matrix {
	a, b := m.ToArray(), other.ToArray()
	for i := range a {
		a[i] -= b[i]
	}
	return MatrixFromArray(a)
}

func (m Matrix) Negate() Matrix {
	a := m.ToArray()
	for i := range a {
		a[i] = -a[i]
	}
	return MatrixFromArray(a)
}

func (m Matrix) MulScalar(scalar float32) Matrix {
	a := m.ToArray()
	for i := range a {
		a[i] *= scalar
	}
	return MatrixFromArray(a)
}

// Div divides componentwise. It is not a multiplication by the inverse.
func (m Matrix) Div(other Matrix) Matrix {
	a, b := m.ToArray(), other.ToArray()
	for i := range a {
		a[i] /= b[i]
	}
	return MatrixFromArray(a)
}

// DivScalar divides every entry by divider.
func (m Matrix) DivScalar(divider float32) Matrix {
	a := m.ToArray()
	for i := range a {
		a[i] /= divider
	}
	return MatrixFromArray(a)
}

// Mul returns the matrix product m * other. Transforming a vector by the
// product equals transforming it by m and then by other.
func (m Matrix) Mul(other Matrix) Matrix {
	var out Matrix
	MultiplyInto(&m, &other, &out)
	return out
}

// MultiplyInto stores a * b in out. out may alias a or b.
func MultiplyInto(a, b, out *Matrix) {
	x := a.ToArray()
	y := b.ToArray()
	var r [16]float32

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += x[row*4+i] * y[i*4+col]
			}
			r[row*4+col] = sum
		}
	}
	*out = MatrixFromArray(r)
}

// TransformQuaternion applies the rotation q after m.
func (m Matrix) TransformQuaternion(q Quaternion) Matrix {
	return m.Mul(CreateFromQuaternion(q))
}

// Transpose returns a copy of m with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// TransposeInto stores the transpose of m in out. out may alias m.
func TransposeInto(m, out *Matrix) {
	*out = m.Transpose()
}

// Determinant returns the determinant by cofactor expansion along the first row.
func (m Matrix) Determinant() float32 {
	n18 := m.M33*m.M44 - m.M34*m.M43
	n17 := m.M32*m.M44 - m.M34*m.M42
	n16 := m.M32*m.M43 - m.M33*m.M42
	n15 := m.M31*m.M44 - m.M34*m.M41
	n14 := m.M31*m.M43 - m.M33*m.M41
	n13 := m.M31*m.M42 - m.M32*m.M41

	return m.M11*(m.M22*n18-m.M23*n17+m.M24*n16) -
		m.M12*(m.M21*n18-m.M23*n15+m.M24*n14) +
		m.M13*(m.M21*n17-m.M22*n15+m.M24*n13) -
		m.M14*(m.M21*n16-m.M22*n14+m.M23*n13)
}

// Invert returns the inverse of m via its adjugate. The flag is false when
// m is singular; the returned matrix then holds Inf or NaN entries.
func (m Matrix) Invert() (Matrix, bool) {
	var out Matrix
	ok := InvertInto(&m, &out)
	return out, ok
}

// InvertInto stores the inverse of src in out and reports whether src was
// invertible. out may alias src.
func InvertInto(src, out *Matrix) bool {
	m := src.ToArray()

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	var o [16]float32

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	det := m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3]
	d := 1 / det

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	*out = MatrixFromArray(o)
	return det != 0 && !IsNaN(d) && !IsInf(d, 0)
}

// Decompose splits m into scale, rotation and translation so that
// CreateScaleVector(scale) * CreateFromQuaternion(rotation) * CreateTranslation(translation)
// rebuilds m. The flag is false when a scale axis is zero, in which case
// the rotation is the identity.
func (m Matrix) Decompose() (scale Vector3, rotation Quaternion, translation Vector3, ok bool) {
	translation = m.Translation()

	right := m.Right()
	up := m.Up()
	backward := m.Backward()

	scale = Vector3{right.Length(), up.Length(), backward.Length()}
	if right.Dot(up.Cross(backward)) < 0 {
		scale.X = -scale.X
	}

	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return scale, QuaternionIdentity(), translation, false
	}

	rot := MatrixIdentity()
	rot.SetRight(right.DivScalar(scale.X))
	rot.SetUp(up.DivScalar(scale.Y))
	rot.SetBackward(backward.DivScalar(scale.Z))

	rotation = QuaternionFromRotationMatrix(rot).Normalize()
	return scale, rotation, translation, true
}

// MatrixLerp interpolates every entry linearly.
func MatrixLerp(a, b Matrix, amount float32) Matrix {
	x, y := a.ToArray(), b.ToArray()
	for i := range x {
		x[i] = Lerp(x[i], y[i], amount)
	}
	return MatrixFromArray(x)
}

// Equals reports whether both matrices hold the same values. Unlike ==
// it treats NaN entries as equal to each other.
func (m Matrix) Equals(other Matrix) bool {
	a, b := m.ToArray(), other.ToArray()
	for i := range a {
		if !floatEquals(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash code consistent with Equals.
func (m Matrix) Hash() uint32 {
	a := m.ToArray()
	return hashFloats(a[:]...)
}

// ApproxEqual reports whether every entry differs by at most tolerance.
func (m Matrix) ApproxEqual(other Matrix, tolerance float32) bool {
	a, b := m.ToArray(), other.ToArray()
	for i := range a {
		if Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("{ {M11:%v M12:%v M13:%v M14:%v} {M21:%v M22:%v M23:%v M24:%v} {M31:%v M32:%v M33:%v M34:%v} {M41:%v M42:%v M43:%v M44:%v} }",
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44)
}
