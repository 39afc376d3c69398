package math

import "fmt"

// rayParallelEpsilon is the cosine, relative to the length of the
// direction, below which a ray counts as parallel to a plane or slab.
const rayParallelEpsilon float32 = 1e-5

// Ray is a half line starting at Position and extending along Direction.
// Intersection distances are expressed in multiples of Direction.
type Ray struct {
	Position  Vector3
	Direction Vector3
}

func NewRay(position, direction Vector3) Ray {
	return Ray{Position: position, Direction: direction}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) Vector3 {
	return r.Position.Add(r.Direction.MulScalar(t))
}

// IntersectsBox returns the distance to the first point of box hit by
// the ray. A ray starting inside the box reports 0.
func (r Ray) IntersectsBox(box BoundingBox) (float32, bool) {
	tMin := float32(0)
	tMax := Inf(1)

	origin := [3]float32{r.Position.X, r.Position.Y, r.Position.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}
	parallel := rayParallelEpsilon * r.Direction.Length()

	for axis := 0; axis < 3; axis++ {
		if Abs(dir[axis]) <= parallel {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = Max(tMin, t1)
		tMax = Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// IntersectsSphere returns the distance to the first point of sphere
// hit by the ray. A ray starting inside the sphere reports 0.
func (r Ray) IntersectsSphere(sphere BoundingSphere) (float32, bool) {
	diff := sphere.Center.Sub(r.Position)
	diffLengthSq := diff.LengthSquared()
	radiusSq := sphere.Radius * sphere.Radius
	if diffLengthSq <= radiusSq {
		return 0, true
	}

	along := r.Direction.Dot(diff)
	if along < 0 {
		return 0, false
	}

	a := r.Direction.LengthSquared()
	discriminant := along*along - a*(diffLengthSq-radiusSq)
	if discriminant < 0 {
		return 0, false
	}
	return (along - Sqrt(discriminant)) / a, true
}

// IntersectsPlane returns the distance at which the ray crosses plane.
// Rays parallel to the plane never hit it.
func (r Ray) IntersectsPlane(plane Plane) (float32, bool) {
	den := r.Direction.Dot(plane.Normal)
	if Abs(den) <= rayParallelEpsilon*r.Direction.Length()*plane.Normal.Length() {
		return 0, false
	}

	t := (-plane.D - plane.Normal.Dot(r.Position)) / den
	if t < 0 {
		// Origins within epsilon of the plane count as on it.
		if t*Abs(den) < -rayParallelEpsilon*plane.Normal.Length() {
			return 0, false
		}
		t = 0
	}
	return t, true
}

// IntersectsFrustum clips the ray against the six half spaces of
// frustum and returns the entry distance.
func (r Ray) IntersectsFrustum(frustum *BoundingFrustum) (float32, bool) {
	tNear := float32(0)
	tFar := Inf(1)
	// Frustum planes are normalized.
	parallel := rayParallelEpsilon * r.Direction.Length()

	for _, plane := range frustum.planes {
		den := plane.Normal.Dot(r.Direction)
		dist := plane.DotCoordinate(r.Position)
		if Abs(den) <= parallel {
			if dist > 0 {
				return 0, false
			}
			continue
		}
		t := -dist / den
		if den < 0 {
			tNear = Max(tNear, t)
		} else {
			tFar = Min(tFar, t)
		}
		if tNear > tFar {
			return 0, false
		}
	}
	return tNear, true
}

func (r Ray) Equals(other Ray) bool {
	return r.Position.Equals(other.Position) && r.Direction.Equals(other.Direction)
}

func (r Ray) Hash() uint32 {
	return hashFloats(r.Position.X, r.Position.Y, r.Position.Z, r.Direction.X, r.Direction.Y, r.Direction.Z)
}

func (r Ray) String() string {
	return fmt.Sprintf("{Position:%v Direction:%v}", r.Position, r.Direction)
}
