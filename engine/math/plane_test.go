package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaneFromPoints(t *testing.T) {
	p := NewPlaneFromPoints(NewVector3(0, 1, 0), NewVector3(1, 1, 0), NewVector3(0, 1, -1))
	assertVector3Near(t, Vector3Up(), p.Normal)
	assert.InDelta(t, -1, p.D, 1e-6)

	assert.InDelta(t, 2, p.DotCoordinate(NewVector3(5, 3, 5)), 1e-6)
	assert.InDelta(t, 3, p.DotNormal(NewVector3(5, 3, 5)), 1e-6)
	assert.InDelta(t, 3, p.Dot(NewVector4(5, 3, 5, 0)), 1e-6)
	assert.InDelta(t, 2, p.Dot(NewVector4(5, 3, 5, 1)), 1e-6)
}

func TestPlaneNormalize(t *testing.T) {
	p := NewPlaneFromComponents(0, 3, 4, 10).Normalize()
	assertVector3Near(t, NewVector3(0, 0.6, 0.8), p.Normal)
	assert.InDelta(t, 2, p.D, 1e-6)
	assert.Equal(t, p, PlaneFromVector4(p.ToVector4()))
}

func TestPlaneTransformKeepsPointsOnPlane(t *testing.T) {
	plane := NewPlaneFromPoints(NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1))
	m := CreateScale(2, 0.5, 3).Mul(CreateRotationY(0.4)).Mul(CreateTranslation(NewVector3(1, -2, 3)))

	moved := plane.Transform(m)
	for _, p := range []Vector3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.5, 0.25, 0.25}} {
		assert.InDelta(t, 0, moved.DotCoordinate(p.Transform(m)), 1e-5, "point %v", p)
	}

	// A point in front stays in front.
	assert.Greater(t, moved.DotCoordinate(NewVector3(1, 1, 1).Transform(m)), float32(0))
}

func TestPlaneTransformQuaternion(t *testing.T) {
	q := QuaternionFromAxisAngle(Vector3UnitZ(), -PiOver2)
	p := NewPlane(Vector3Up(), -2).TransformQuaternion(q)
	assertVector3Near(t, Vector3UnitX(), p.Normal)
	assert.Equal(t, float32(-2), p.D)

	viaMatrix := NewPlane(Vector3Up(), -2).Transform(CreateFromQuaternion(q))
	assert.True(t, p.ApproxEqual(viaMatrix, 1e-5), "%v vs %v", p, viaMatrix)
}

func TestPlaneIntersections(t *testing.T) {
	floor := NewPlane(Vector3Up(), 0)

	tests := []struct {
		name     string
		box      BoundingBox
		expected PlaneIntersectionType
	}{
		{"above", BoundingBox{NewVector3(0, 1, 0), NewVector3(1, 2, 1)}, Front},
		{"below", BoundingBox{NewVector3(0, -2, 0), NewVector3(1, -1, 1)}, Back},
		{"straddling", BoundingBox{NewVector3(0, -1, 0), NewVector3(1, 1, 1)}, Intersecting},
		{"touching", BoundingBox{NewVector3(0, 0, 0), NewVector3(1, 1, 1)}, Intersecting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, floor.IntersectsBox(tt.box))
			assert.Equal(t, tt.expected, tt.box.IntersectsPlane(floor))
		})
	}

	assert.Equal(t, Front, floor.IntersectsSphere(BoundingSphere{NewVector3(0, 3, 0), 1}))
	assert.Equal(t, Back, floor.IntersectsSphere(BoundingSphere{NewVector3(0, -3, 0), 1}))
	assert.Equal(t, Intersecting, floor.IntersectsSphere(BoundingSphere{NewVector3(0, 0.5, 0), 1}))

	assert.Equal(t, Front, floor.IntersectsPoint(Vector3Up()))
	assert.Equal(t, Back, floor.IntersectsPoint(Vector3Down()))
	assert.Equal(t, Intersecting, floor.IntersectsPoint(Vector3Zero()))

	assert.Equal(t, "Intersecting", Intersecting.String())
	assert.Equal(t, "Contains", Contains.String())
}
