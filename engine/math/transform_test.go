package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformLocal(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, MatrixIdentity(), tr.Local())

	tr.SetPosition(NewVector3(1, 2, 3))
	tr.SetScale(Vector3Splat(2))
	tr.SetRotation(QuaternionFromAxisAngle(Vector3UnitZ(), PiOver2))

	// Scaled first, then rotated, then moved.
	assertVector3Near(t, NewVector3(1, 4, 3), Vector3UnitX().Transform(tr.Local()))

	tr.Translate(NewVector3(1, 0, 0))
	assertVector3Near(t, NewVector3(2, 4, 3), Vector3UnitX().Transform(tr.Local()))
}

func TestTransformRotateComposes(t *testing.T) {
	tr := NewTransformFromRotation(QuaternionFromAxisAngle(Vector3UnitZ(), PiOver2))
	tr.Rotate(QuaternionFromAxisAngle(Vector3UnitX(), PiOver2))

	// X goes to Y around Z, then Y goes to Z around X.
	assertVector3Near(t, Vector3UnitZ(), Vector3UnitX().Transform(tr.Local()))
}

func TestTransformWorld(t *testing.T) {
	parent := NewTransformFromPosition(NewVector3(10, 0, 0))
	parent.ScaleBy(Vector3Splat(2))
	child := NewTransformFromPositionRotation(NewVector3(1, 0, 0), QuaternionIdentity())
	child.Parent = parent

	assertVector3Near(t, NewVector3(12, 0, 0), Vector3Zero().Transform(child.World()))

	var none *Transform
	assert.Equal(t, MatrixIdentity(), none.World())
	assert.Equal(t, MatrixIdentity(), none.Local())
}
