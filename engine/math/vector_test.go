package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance float32 = 1e-5

func assertVector3Near(t *testing.T, expected, actual Vector3) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual, tolerance), "expected %v, got %v", expected, actual)
}

func TestVectorNaNEqualityDiverges(t *testing.T) {
	v := NewVector2(NaN(), NaN())
	w := v

	assert.False(t, v == w)
	assert.True(t, v != w)
	assert.True(t, v.Equals(w))

	v3 := Vector3Splat(NaN())
	assert.True(t, v3.Equals(v3))
	assert.Equal(t, v3.Hash(), Vector3{NaN(), NaN(), NaN()}.Hash())

	v4 := Vector4Splat(NaN())
	assert.True(t, v4.Equals(v4))
}

func TestVectorHash(t *testing.T) {
	assert.NotEqual(t, Vector2UnitX().Hash(), Vector2UnitY().Hash())
	assert.NotEqual(t, Vector3UnitX().Hash(), Vector3UnitY().Hash())
	assert.NotEqual(t, Vector3UnitY().Hash(), Vector3UnitZ().Hash())
	assert.NotEqual(t, Vector4UnitZ().Hash(), Vector4UnitW().Hash())

	// +0 and -0 compare equal, so they must hash alike.
	zero := float32(0)
	negZero := Vector3{X: -zero}
	assert.True(t, Vector3Zero().Equals(negZero))
	assert.Equal(t, Vector3Zero().Hash(), negZero.Hash())

	a := NewVector3(1.5, -2, 3)
	b := NewVector3(1.5, -2, 3)
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestVectorAddCommutes(t *testing.T) {
	rnd := NewRandom(7)
	for i := 0; i < 100; i++ {
		a, b := rnd.Vector3(-100, 100), rnd.Vector3(-100, 100)
		assert.Equal(t, a.Add(b), b.Add(a))

		c, d := rnd.Vector4(-100, 100), rnd.Vector4(-100, 100)
		assert.Equal(t, c.Add(d), d.Add(c))

		e, f := rnd.Vector2(-100, 100), rnd.Vector2(-100, 100)
		assert.Equal(t, e.Add(f), f.Add(e))
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	assert.Equal(t, NewVector3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVector3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVector3(4, 10, 18), a.Mul(b))
	assert.Equal(t, NewVector3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, NewVector3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, NewVector3(-1, -2, -3), a.Negate())
	assert.Equal(t, float32(32), a.Dot(b))

	v2 := NewVector2(6, 8)
	assert.Equal(t, NewVector2(3, 2), v2.Div(NewVector2(2, 4)))
	assert.Equal(t, float32(10), v2.Length())
	assert.Equal(t, float32(100), v2.LengthSquared())
}

func TestVectorDivideByZeroPropagates(t *testing.T) {
	v := NewVector3(1, -1, 0).Div(Vector3Zero())
	assert.True(t, IsInf(v.X, 1))
	assert.True(t, IsInf(v.Y, -1))
	assert.True(t, IsNaN(v.Z))

	n := Vector3Zero().Normalize()
	assert.True(t, IsNaN(n.X))
}

func TestVectorNormalize(t *testing.T) {
	rnd := NewRandom(11)
	for i := 0; i < 100; i++ {
		v := rnd.Vector3(-50, 50)
		n := v.Normalize()
		assert.InDelta(t, 1, n.Length(), 1e-5)
		assertVector3Near(t, n, n.Normalize())

		v4 := rnd.Vector4(-50, 50).Normalize()
		assert.True(t, v4.ApproxEqual(v4.Normalize(), tolerance))

		v2 := rnd.Vector2(-50, 50).Normalize()
		assert.InDelta(t, 1, v2.Length(), 1e-5)
	}
}

func TestVectorLerpBounds(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -5, 6.5)

	assert.Equal(t, a, Vector3Lerp(a, b, 0))
	assert.Equal(t, b, Vector3Lerp(a, b, 1))
	assert.Equal(t, NewVector3(2.5, -1.5, 4.75), Vector3Lerp(a, b, 0.5))
	// Unclamped.
	assert.Equal(t, NewVector3(7, -12, 10), Vector3Lerp(a, b, 2))

	a2, b2 := NewVector2(0, 4), NewVector2(8, 0)
	assert.Equal(t, a2, Vector2Lerp(a2, b2, 0))
	assert.Equal(t, b2, Vector2Lerp(a2, b2, 1))

	a4, b4 := NewVector4(0, 1, 2, 3), NewVector4(4, 3, 2, 1)
	assert.Equal(t, a4, Vector4Lerp(a4, b4, 0))
	assert.Equal(t, b4, Vector4Lerp(a4, b4, 1))
}

func TestVectorSplines(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(10, 20, 30)

	assert.Equal(t, a, Vector3SmoothStep(a, b, -1))
	assert.Equal(t, b, Vector3SmoothStep(a, b, 2))
	assert.Equal(t, NewVector3(5, 10, 15), Vector3SmoothStep(a, b, 0.5))

	t1, t2 := NewVector3(1, 0, 0), NewVector3(0, 1, 0)
	assert.Equal(t, a, Vector3Hermite(a, t1, b, t2, 0))
	assert.Equal(t, b, Vector3Hermite(a, t1, b, t2, 1))

	p1, p2, p3, p4 := NewVector2(0, 0), NewVector2(1, 1), NewVector2(2, 4), NewVector2(3, 9)
	assert.Equal(t, p2, Vector2CatmullRom(p1, p2, p3, p4, 0))
	assert.Equal(t, p3, Vector2CatmullRom(p1, p2, p3, p4, 1))
}

func TestVectorBarycentricUsesEveryAxis(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(4, 0)
	v3 := NewVector2(0, 8)

	assert.Equal(t, NewVector2(1, 4), Vector2Barycentric(v1, v2, v3, 0.25, 0.5))
	assert.Equal(t, NewVector3(1, 4, 0), Vector3Barycentric(
		NewVector3FromVector2(v1, 0), NewVector3FromVector2(v2, 0), NewVector3FromVector2(v3, 0), 0.25, 0.5))
}

func TestVectorClamp(t *testing.T) {
	min := NewVector3(-1, -1, -1)
	max := NewVector3(1, 1, 1)

	assert.Equal(t, NewVector3(1, -1, 0.5), NewVector3(5, -5, 0.5).Clamp(min, max))
	assert.Equal(t, NewVector2(0, 1), NewVector2(-3, 3).Clamp(Vector2Zero(), Vector2One()))
	assert.Equal(t, NewVector4(0, 1, 0.5, 1), NewVector4(-3, 3, 0.5, 2).Clamp(Vector4Zero(), Vector4One()))

	// NaN passes through like the scalar Clamp.
	nan := NaN()
	assert.True(t, IsNaN(Clamp(nan, -1, 1)))
	clamped := NewVector3(nan, 5, -5).Clamp(min, max)
	assert.True(t, IsNaN(clamped.X))
	assert.Equal(t, float32(1), clamped.Y)
	assert.Equal(t, float32(-1), clamped.Z)
	assert.True(t, IsNaN(NewVector2(nan, 0).Clamp(Vector2Zero(), Vector2One()).X))
	assert.True(t, IsNaN(NewVector4(0, 0, 0, nan).Clamp(Vector4Zero(), Vector4One()).W))
}

func TestVectorCrossIsOrthogonal(t *testing.T) {
	rnd := NewRandom(3)
	for i := 0; i < 100; i++ {
		a := rnd.Vector3(-10, 10)
		b := rnd.Vector3(-10, 10)
		c := a.Cross(b)
		scale := a.Length() * b.Length() * c.Length()
		assert.InDelta(t, 0, c.Dot(a)/scale, 1e-5)
		assert.InDelta(t, 0, c.Dot(b)/scale, 1e-5)
	}
	assert.Equal(t, Vector3UnitZ(), Vector3UnitX().Cross(Vector3UnitY()))
}

func TestVectorReflect(t *testing.T) {
	assert.Equal(t, NewVector3(1, 1, 0), NewVector3(1, -1, 0).Reflect(Vector3Up()))
	assert.Equal(t, NewVector2(-2, 3), NewVector2(2, 3).Reflect(Vector2UnitX()))
}

func TestVectorTransformPositionVersusNormal(t *testing.T) {
	m := CreateTranslation(NewVector3(10, 20, 30))
	v := NewVector3(1, 2, 3)

	assert.Equal(t, NewVector3(11, 22, 33), v.Transform(m))
	assert.Equal(t, v, v.TransformNormal(m))

	v2 := NewVector2(1, 2)
	assert.Equal(t, NewVector2(11, 22), v2.Transform(m))
	assert.Equal(t, v2, v2.TransformNormal(m))

	assert.Equal(t, NewVector4(11, 22, 33, 1), Vector4FromVector3Transform(v, m))
	assert.Equal(t, NewVector4(1, 2, 3, 0), NewVector4(1, 2, 3, 0).Transform(m))
}

func TestVectorTransformQuaternionMatchesMatrix(t *testing.T) {
	rnd := NewRandom(5)
	for i := 0; i < 50; i++ {
		q := rnd.Quaternion()
		v := rnd.Vector3(-10, 10)
		m := CreateFromQuaternion(q)

		assert.True(t, v.Transform(m).ApproxEqual(v.TransformQuaternion(q), 1e-4))

		v2 := rnd.Vector2(-10, 10)
		assert.True(t, v2.Transform(m).ApproxEqual(v2.TransformQuaternion(q), 1e-4))

		v4 := NewVector4FromVector3(v, 2)
		got := v4.TransformQuaternion(q)
		assert.Equal(t, float32(2), got.W)
	}

	q := QuaternionFromAxisAngle(Vector3UnitZ(), PiOver2)
	assertVector3Near(t, Vector3UnitY(), Vector3UnitX().TransformQuaternion(q))
}

func TestVectorConversions(t *testing.T) {
	v := NewVector3(1, 2, 3)
	assert.Equal(t, NewVector4(1, 2, 3, 4), v.ToVector4(4))
	assert.Equal(t, v, NewVector4(1, 2, 3, 4).ToVector3())
	assert.Equal(t, NewVector3(0.5, 1, 1.5), NewVector4(1, 2, 3, 2).PerspectiveDivide())
	assert.Equal(t, v, Vector3FromF32(v.F32()))
	assert.Equal(t, "{X:1 Y:2 Z:3}", v.String())
}
