package math

import (
	"testing"

	"github.com/spaghettifunk/gamemath/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatrixNear(t *testing.T, expected, actual Matrix, tol float32) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual, tol), "expected %v\ngot %v", expected, actual)
}

func sampleMatrix() Matrix {
	return NewMatrix(
		2, 0.5, 0, 0,
		0.3, 1, 1, 0,
		0, 0.2, 3, 0,
		4, 5, 6, 1,
	)
}

func TestMatrixIdentityLaws(t *testing.T) {
	rnd := NewRandom(9)
	for i := 0; i < 20; i++ {
		m := MatrixFromArray([16]float32{
			rnd.Float(), rnd.Float(), rnd.Float(), rnd.Float(),
			rnd.Float(), rnd.Float(), rnd.Float(), rnd.Float(),
			rnd.Float(), rnd.Float(), rnd.Float(), rnd.Float(),
			rnd.Float(), rnd.Float(), rnd.Float(), rnd.Float(),
		})
		assert.Equal(t, m, MatrixIdentity().Mul(m))
		assert.Equal(t, m, m.Mul(MatrixIdentity()))
	}
}

func TestMatrixMulIsNotCommutative(t *testing.T) {
	a := CreateRotationX(0.5)
	b := CreateTranslation(NewVector3(1, 2, 3))
	assert.NotEqual(t, a.Mul(b), b.Mul(a))
}

func TestMatrixMulOrderAppliesLeftFirst(t *testing.T) {
	scale := CreateScaleUniform(2)
	move := CreateTranslation(NewVector3(1, 0, 0))
	v := NewVector3(1, 0, 0)

	assert.Equal(t, NewVector3(3, 0, 0), v.Transform(scale.Mul(move)))
	assert.Equal(t, NewVector3(4, 0, 0), v.Transform(move.Mul(scale)))
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := sampleMatrix()

	inv, ok := m.Invert()
	require.True(t, ok)
	assertMatrixNear(t, MatrixIdentity(), inv.Mul(m), 1e-5)
	assertMatrixNear(t, MatrixIdentity(), m.Mul(inv), 1e-5)

	back, ok := inv.Invert()
	require.True(t, ok)
	assertMatrixNear(t, m, back, 1e-4)

	rnd := NewRandom(10)
	for i := 0; i < 20; i++ {
		r := rnd.Matrix(50)
		ri, ok := r.Invert()
		require.True(t, ok)
		assertMatrixNear(t, MatrixIdentity(), r.Mul(ri), 1e-4)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := CreateScale(1, 0, 1)
	inv, ok := m.Invert()
	assert.False(t, ok)
	assert.True(t, IsNaN(inv.M11) || IsInf(inv.M11, 0))
	assert.Zero(t, m.Determinant())
}

func TestMatrixInvertIntoAliases(t *testing.T) {
	m := sampleMatrix()
	expected, _ := m.Invert()

	require.True(t, InvertInto(&m, &m))
	assert.Equal(t, expected, m)
}

func TestMatrixMultiplyIntoAliases(t *testing.T) {
	a := CreateRotationY(0.4)
	b := CreateTranslation(NewVector3(1, 2, 3))
	expected := a.Mul(b)

	MultiplyInto(&a, &b, &a)
	assert.Equal(t, expected, a)

	m := sampleMatrix()
	tr := m.Transpose()
	TransposeInto(&m, &m)
	assert.Equal(t, tr, m)
}

func TestMatrixDeterminant(t *testing.T) {
	assert.Equal(t, float32(1), MatrixIdentity().Determinant())
	assert.Equal(t, float32(24), CreateScale(2, 3, 4).Determinant())
	assert.InDelta(t, 5.15, sampleMatrix().Determinant(), 1e-5)
	assert.InDelta(t, 1, CreateFromAxisAngle(NewVector3(1, 2, 3).Normalize(), 1.2).Determinant(), 1e-5)
}

func TestMatrixComponentwiseOps(t *testing.T) {
	a := CreateScale(2, 4, 8)
	b := CreateScale(2, 2, 2)

	div := a.Div(b)
	assert.Equal(t, float32(1), div.M11)
	assert.Equal(t, float32(2), div.M22)
	assert.Equal(t, float32(4), div.M33)
	assert.True(t, IsNaN(div.M12))

	assert.Equal(t, a.Add(a), a.MulScalar(2))
	assert.Equal(t, Matrix{}, a.Sub(a))
	assert.Equal(t, a.MulScalar(-1), a.Negate())
	assert.Equal(t, CreateScale(1, 2, 4).M22, a.DivScalar(2).M22)

	assert.Equal(t, a, MatrixLerp(a, b, 0))
	assert.Equal(t, b, MatrixLerp(a, b, 1))
	assert.Equal(t, float32(3), MatrixLerp(a, b, 0.5).M22)
}

func TestMatrixTranspose(t *testing.T) {
	m := sampleMatrix()
	tr := m.Transpose()
	assert.Equal(t, m.M12, tr.M21)
	assert.Equal(t, m.M41, tr.M14)
	assert.Equal(t, m, tr.Transpose())
}

func TestMatrixBasisAccessors(t *testing.T) {
	m := sampleMatrix()
	assert.Equal(t, NewVector3(2, 0.5, 0), m.Right())
	assert.Equal(t, m.Right().Negate(), m.Left())
	assert.Equal(t, NewVector3(0.3, 1, 1), m.Up())
	assert.Equal(t, m.Up().Negate(), m.Down())
	assert.Equal(t, NewVector3(0, 0.2, 3), m.Backward())
	assert.Equal(t, m.Backward().Negate(), m.Forward())
	assert.Equal(t, NewVector3(4, 5, 6), m.Translation())

	m.SetForward(Vector3UnitZ())
	assert.Equal(t, NewVector3(0, 0, -1), m.Backward())
}

func TestMatrixDecompose(t *testing.T) {
	scale := NewVector3(2, 3, 0.5)
	rotation := QuaternionFromAxisAngle(NewVector3(1, 1, 0).Normalize(), 0.8)
	translation := NewVector3(-4, 7, 1)

	m := CreateScaleVector(scale).Mul(CreateFromQuaternion(rotation)).Mul(CreateTranslation(translation))

	s, r, tr, ok := m.Decompose()
	require.True(t, ok)
	assertVector3Near(t, scale, s)
	assert.Equal(t, translation, tr)
	if r.Dot(rotation) < 0 {
		r = r.Negate()
	}
	assertQuaternionNear(t, rotation, r, 1e-5)

	rebuilt := CreateScaleVector(s).Mul(CreateFromQuaternion(r)).Mul(CreateTranslation(tr))
	assertMatrixNear(t, m, rebuilt, 1e-4)

	// Mirrored matrices keep a proper rotation.
	mirrored := CreateScale(-1, 1, 1).Mul(CreateRotationZ(0.3))
	s, r, _, ok = mirrored.Decompose()
	require.True(t, ok)
	assertMatrixNear(t, mirrored, CreateScaleVector(s).Mul(CreateFromQuaternion(r)), 1e-5)

	_, r, _, ok = CreateScale(0, 1, 1).Decompose()
	assert.False(t, ok)
	assert.Equal(t, QuaternionIdentity(), r)
}

func TestMatrixRotations(t *testing.T) {
	assertVector3Near(t, Vector3UnitY(), Vector3UnitX().Transform(CreateRotationZ(PiOver2)))
	assertVector3Near(t, Vector3UnitZ(), Vector3UnitY().Transform(CreateRotationX(PiOver2)))
	assertVector3Near(t, Vector3UnitX(), Vector3UnitZ().Transform(CreateRotationY(PiOver2)))

	axis := NewVector3(1, 2, 3).Normalize()
	assertMatrixNear(t, CreateFromQuaternion(QuaternionFromAxisAngle(axis, 1.1)), CreateFromAxisAngle(axis, 1.1), 1e-5)
	assertMatrixNear(t, CreateRotationX(0.7), CreateFromAxisAngle(Vector3UnitX(), 0.7), 1e-6)
}

func TestMatrixTransformQuaternion(t *testing.T) {
	q := QuaternionFromAxisAngle(Vector3UnitY(), 0.5)
	m := CreateTranslation(NewVector3(1, 2, 3))
	assertMatrixNear(t, m.Mul(CreateRotationY(0.5)), m.TransformQuaternion(q), 1e-6)
}

func TestCreateLookAt(t *testing.T) {
	view := CreateLookAt(NewVector3(0, 0, 10), Vector3Zero(), Vector3Up())

	// The target ends up straight ahead, down the negative z axis.
	assertVector3Near(t, NewVector3(0, 0, -10), Vector3Zero().Transform(view))
	assertVector3Near(t, NewVector3(0, 1, -10), Vector3Up().Transform(view))

	view = CreateLookAt(NewVector3(5, 0, 0), Vector3Zero(), Vector3Up())
	assertVector3Near(t, NewVector3(0, 0, -5), Vector3Zero().Transform(view))
}

func TestCreateWorld(t *testing.T) {
	forward := NewVector3(1, 0, -1).Normalize()
	world := CreateWorld(NewVector3(1, 2, 3), forward, Vector3Up())

	assertVector3Near(t, forward, world.Forward())
	assertVector3Near(t, Vector3Up(), world.Up())
	assert.Equal(t, NewVector3(1, 2, 3), world.Translation())
	assert.InDelta(t, 1, world.Determinant(), 1e-5)
}

func TestCreateProjections(t *testing.T) {
	proj, err := CreatePerspectiveFieldOfView(PiOver4, 16.0/9.0, 1, 100)
	require.NoError(t, err)

	near := Vector4FromVector3Transform(NewVector3(0, 0, -1), proj).PerspectiveDivide()
	far := Vector4FromVector3Transform(NewVector3(0, 0, -100), proj).PerspectiveDivide()
	assert.InDelta(t, 0, near.Z, 1e-6)
	assert.InDelta(t, 1, far.Z, 1e-5)

	persp, err := CreatePerspective(2, 2, 1, 10)
	require.NoError(t, err)
	edge := Vector4FromVector3Transform(NewVector3(1, 1, -1), persp).PerspectiveDivide()
	assertVector3Near(t, NewVector3(1, 1, 0), edge)

	off, err := CreatePerspectiveOffCenter(-1, 1, -1, 1, 1, 10)
	require.NoError(t, err)
	assertMatrixNear(t, persp, off, 1e-6)

	ortho := CreateOrthographic(4, 2, 0, 10)
	assertVector3Near(t, NewVector3(1, 1, 0.5), NewVector3(2, 1, -5).Transform(ortho))
	assertMatrixNear(t, ortho, CreateOrthographicOffCenter(-2, 2, -1, 1, 0, 10), 1e-6)

	corner := NewVector3(800, 0, 0).Transform(CreateOrthographicOffCenter(0, 800, 600, 0, 0, 1))
	assertVector3Near(t, NewVector3(1, 1, 0), corner)
}

func TestCreateProjectionsRejectBadArguments(t *testing.T) {
	tests := []struct {
		name string
		call func() (Matrix, error)
	}{
		{"zero fov", func() (Matrix, error) { return CreatePerspectiveFieldOfView(0, 1, 1, 10) }},
		{"fov of pi", func() (Matrix, error) { return CreatePerspectiveFieldOfView(Pi, 1, 1, 10) }},
		{"zero near", func() (Matrix, error) { return CreatePerspectiveFieldOfView(1, 1, 0, 10) }},
		{"negative far", func() (Matrix, error) { return CreatePerspective(1, 1, 1, -10) }},
		{"near beyond far", func() (Matrix, error) { return CreatePerspectiveOffCenter(-1, 1, -1, 1, 10, 1) }},
		{"near equals far", func() (Matrix, error) { return CreatePerspective(1, 1, 5, 5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}
}

func TestCreateReflection(t *testing.T) {
	floor := NewPlane(Vector3Up(), 0)
	m := CreateReflection(floor)
	assertVector3Near(t, NewVector3(1, -2, 3), NewVector3(1, 2, 3).Transform(m))

	// Plane y = 1.
	raised := NewPlane(NewVector3(0, 2, 0), -2)
	m = CreateReflection(raised)
	assertVector3Near(t, NewVector3(0, -1, 0), NewVector3(0, 3, 0).Transform(m))
}

func TestCreateShadow(t *testing.T) {
	floor := NewPlane(Vector3Up(), 0)
	light := NewVector3(0, -1, 0)
	m := CreateShadow(light, floor)

	shadow := Vector4FromVector3Transform(NewVector3(2, 5, -1), m).PerspectiveDivide()
	assertVector3Near(t, NewVector3(2, 0, -1), shadow)

	slanted := NewVector3(1, -1, 0)
	m = CreateShadow(slanted, floor)
	shadow = Vector4FromVector3Transform(NewVector3(0, 2, 0), m).PerspectiveDivide()
	assertVector3Near(t, NewVector3(2, 0, 0), shadow)
}

func TestCreateBillboard(t *testing.T) {
	object := NewVector3(0, 0, -10)
	camera := Vector3Zero()
	m := CreateBillboard(object, camera, Vector3Up(), nil)

	// The billboard's backward axis points from the camera to the object.
	assertVector3Near(t, NewVector3(0, 0, -1), m.Backward())
	assertVector3Near(t, object, m.Translation())
	assertVector3Near(t, Vector3Up(), m.Up())

	forward := Vector3UnitX()
	m = CreateBillboard(camera, camera, Vector3Up(), &forward)
	assertVector3Near(t, forward.Negate(), m.Backward())

	c := CreateConstrainedBillboard(NewVector3(10, 5, 0), camera, Vector3Up(), nil, nil)
	assertVector3Near(t, Vector3Up(), c.Up())
	assertVector3Near(t, Vector3UnitX(), c.Backward())

	// Looking straight down the rotation axis falls back to a hint.
	c = CreateConstrainedBillboard(NewVector3(0, 10, 0), camera, Vector3Up(), nil, nil)
	assert.InDelta(t, 1, c.Backward().Length(), 1e-5)
	assert.InDelta(t, 0, c.Backward().Dot(Vector3Up()), 1e-5)
}

func TestMatrixEquality(t *testing.T) {
	m := MatrixIdentity()
	m.M23 = NaN()
	n := m
	assert.False(t, m == n)
	assert.True(t, m.Equals(n))
	assert.Equal(t, m.Hash(), n.Hash())
	assert.NotEqual(t, MatrixIdentity().Hash(), Matrix{}.Hash())
}

func TestMatrixF32RoundTrip(t *testing.T) {
	m := sampleMatrix()
	f := m.F32()
	assert.Equal(t, m.M12, f[1])
	assert.Equal(t, m.M41, f[12])
	assert.Equal(t, m, MatrixFromF32(f))
	assert.Equal(t, m.M32, m.F32Mat3()[7])
}
