package testbed

import (
	"errors"

	"github.com/spaghettifunk/gamemath/engine"
	"github.com/spaghettifunk/gamemath/engine/math"
)

const batchSize = 1024

// Package level sinks keep results alive so the timed calls are not
// optimized away.
var (
	sinkFloat     float32
	sinkBool      bool
	sinkInt       int
	sinkVector3   math.Vector3
	sinkVector4   math.Vector4
	sinkMatrix    math.Matrix
	sinkQuat      math.Quaternion
	sinkPlane     math.Plane
	sinkColor     math.Color
	sinkContained math.ContainmentType
)

// NewSuite builds the standard suite. Every case draws its inputs from
// its own Random seeded with seed, so runs are reproducible.
func NewSuite(seed uint64) (*engine.Suite, error) {
	suite := engine.NewSuite("gamemath")
	var errs []error
	register := func(name string, setup engine.Setup) {
		errs = append(errs, suite.Register(name, setup))
	}

	register("Vector3Add", func() engine.Op {
		rnd := math.NewRandom(seed)
		a, b := rnd.Vector3(-10, 10), rnd.Vector3(-10, 10)
		return func() { sinkVector3 = a.Add(b) }
	})
	register("Vector3Dot", func() engine.Op {
		rnd := math.NewRandom(seed)
		a, b := rnd.Vector3(-10, 10), rnd.Vector3(-10, 10)
		return func() { sinkFloat = a.Dot(b) }
	})
	register("Vector3Cross", func() engine.Op {
		rnd := math.NewRandom(seed)
		a, b := rnd.Vector3(-10, 10), rnd.Vector3(-10, 10)
		return func() { sinkVector3 = a.Cross(b) }
	})
	register("Vector3Normalize", func() engine.Op {
		v := math.NewRandom(seed).Vector3(-10, 10)
		return func() { sinkVector3 = v.Normalize() }
	})
	register("Vector3Transform", func() engine.Op {
		rnd := math.NewRandom(seed)
		v, m := rnd.Vector3(-10, 10), rnd.Matrix(10)
		return func() { sinkVector3 = v.Transform(m) }
	})
	register("Vector3CatmullRom", func() engine.Op {
		rnd := math.NewRandom(seed)
		p0, p1, p2, p3 := rnd.Vector3(-1, 1), rnd.Vector3(-1, 1), rnd.Vector3(-1, 1), rnd.Vector3(-1, 1)
		return func() { sinkVector3 = math.Vector3CatmullRom(p0, p1, p2, p3, 0.3) }
	})
	register("Vector4Transform", func() engine.Op {
		rnd := math.NewRandom(seed)
		v, m := rnd.Vector4(-10, 10), rnd.Matrix(10)
		return func() { sinkVector4 = v.Transform(m) }
	})
	register("TransformVector3s", func() engine.Op {
		rnd := math.NewRandom(seed)
		m := rnd.Matrix(10)
		src := make([]math.Vector3, batchSize)
		for i := range src {
			src[i] = rnd.Vector3(-1, 1)
		}
		dst := make([]math.Vector3, batchSize)
		return func() {
			if err := math.TransformVector3s(src, m, dst); err != nil {
				panic(err)
			}
		}
	})
	register("MatrixMultiply", func() engine.Op {
		rnd := math.NewRandom(seed)
		a, b := rnd.Matrix(10), rnd.Matrix(10)
		return func() { math.MultiplyInto(&a, &b, &sinkMatrix) }
	})
	register("MatrixInvert", func() engine.Op {
		m := math.NewRandom(seed).Matrix(10)
		return func() { sinkBool = math.InvertInto(&m, &sinkMatrix) }
	})
	register("MatrixDecompose", func() engine.Op {
		m := math.NewRandom(seed).Matrix(10)
		return func() {
			var scale math.Vector3
			scale, sinkQuat, sinkVector3, sinkBool = m.Decompose()
			sinkFloat = scale.X
		}
	})
	register("MatrixCreateLookAt", func() engine.Op {
		rnd := math.NewRandom(seed)
		eye, target := rnd.Vector3(-10, 10), rnd.Vector3(-10, 10)
		return func() { sinkMatrix = math.CreateLookAt(eye, target, math.Vector3Up()) }
	})
	register("MatrixCreatePerspectiveFieldOfView", func() engine.Op {
		return func() {
			sinkMatrix, _ = math.CreatePerspectiveFieldOfView(math.PiOver4, 16.0/9.0, 0.1, 1000)
		}
	})
	register("QuaternionMultiply", func() engine.Op {
		rnd := math.NewRandom(seed)
		a, b := rnd.Quaternion(), rnd.Quaternion()
		return func() { sinkQuat = a.Mul(b) }
	})
	register("QuaternionSlerp", func() engine.Op {
		rnd := math.NewRandom(seed)
		a, b := rnd.Quaternion(), rnd.Quaternion()
		return func() { sinkQuat = math.QuaternionSlerp(a, b, 0.3) }
	})
	register("PlaneTransform", func() engine.Op {
		rnd := math.NewRandom(seed)
		p := math.NewPlane(rnd.UnitVector3(), rnd.FloatInRange(-5, 5))
		m := rnd.Matrix(10)
		return func() { sinkPlane = p.Transform(m) }
	})
	register("RayIntersectsBox", func() engine.Op {
		rnd := math.NewRandom(seed)
		box := math.BoundingBox{Min: math.Vector3Splat(-1), Max: math.Vector3One()}
		ray := math.NewRay(rnd.Vector3(-10, 10), rnd.UnitVector3())
		return func() { sinkFloat, sinkBool = ray.IntersectsBox(box) }
	})
	register("RayIntersectsSphere", func() engine.Op {
		rnd := math.NewRandom(seed)
		sphere := math.BoundingSphere{Radius: 1}
		ray := math.NewRay(rnd.Vector3(-10, 10), rnd.UnitVector3())
		return func() { sinkFloat, sinkBool = ray.IntersectsSphere(sphere) }
	})
	register("BoundingSphereFromPoints", func() engine.Op {
		rnd := math.NewRandom(seed)
		points := make([]math.Vector3, batchSize)
		for i := range points {
			points[i] = rnd.Vector3(-10, 10)
		}
		return func() {
			s, err := math.BoundingSphereFromPoints(points)
			if err != nil {
				panic(err)
			}
			sinkFloat = s.Radius
		}
	})
	register("BoundingFrustumContainsBox", func() engine.Op {
		view := math.CreateLookAt(math.NewVector3(0, 0, 10), math.Vector3Zero(), math.Vector3Up())
		projection, _ := math.CreatePerspectiveFieldOfView(math.PiOver4, 1, 1, 100)
		frustum := math.NewBoundingFrustum(view.Mul(projection))
		box := math.BoundingBox{Min: math.NewVector3(-1, -1, -1), Max: math.NewVector3(1, 1, 1)}
		return func() { sinkContained = frustum.ContainsBox(box) }
	})
	register("ColorFromVector4", func() engine.Op {
		v := math.NewRandom(seed).Vector4(-0.5, 1.5)
		return func() { sinkColor = math.ColorFromVector4(v) }
	})
	register("FrustumCulling", func() engine.Op {
		scene, err := NewCullingScene(math.NewRandom(seed), batchSize, 100)
		if err != nil {
			panic(err)
		}
		return func() {
			scene.Camera.Yaw(0.01)
			scene.Refresh()
			sinkInt = scene.Visible()
		}
	})

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return suite, nil
}
