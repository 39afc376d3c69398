package math

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/core"
)

// BoundingSphere is the set of points within Radius of Center.
type BoundingSphere struct {
	Center Vector3
	Radius float32
}

// NewBoundingSphere fails with core.ErrNegativeRadius for a negative or
// NaN radius.
func NewBoundingSphere(center Vector3, radius float32) (BoundingSphere, error) {
	if !(radius >= 0) {
		return BoundingSphere{}, fmt.Errorf("%w: got %v", core.ErrNegativeRadius, radius)
	}
	return BoundingSphere{Center: center, Radius: radius}, nil
}

// BoundingSphereFromPoints returns a sphere holding every point using
// Ritter's algorithm. The result encloses all points but is not
// guaranteed to be minimal.
func BoundingSphereFromPoints(points []Vector3) (BoundingSphere, error) {
	if len(points) == 0 {
		return BoundingSphere{}, fmt.Errorf("%w: bounding sphere needs at least one point", core.ErrEmptySequence)
	}

	// Find the point furthest from an arbitrary one, then the point
	// furthest from that. The pair seeds the initial sphere.
	a := furthestFrom(points, points[0])
	b := furthestFrom(points, a)

	center := a.Add(b).MulScalar(0.5)
	radius := a.Distance(b) * 0.5

	for _, p := range points {
		d := p.Distance(center)
		if d <= radius {
			continue
		}
		// Grow just enough to reach p, keeping the far side fixed.
		grown := (radius + d) * 0.5
		center = center.Add(p.Sub(center).MulScalar((grown - radius) / d))
		radius = grown
	}
	return BoundingSphere{Center: center, Radius: radius}, nil
}

func furthestFrom(points []Vector3, origin Vector3) Vector3 {
	best := points[0]
	bestDist := best.DistanceSquared(origin)
	for _, p := range points[1:] {
		if d := p.DistanceSquared(origin); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// BoundingSphereFromBox returns the sphere passing through the corners of box.
func BoundingSphereFromBox(box BoundingBox) BoundingSphere {
	center := box.Center()
	return BoundingSphere{Center: center, Radius: center.Distance(box.Max)}
}

func BoundingSphereFromFrustum(frustum *BoundingFrustum) BoundingSphere {
	corners := frustum.Corners()
	// Eight corners are never empty.
	sphere, _ := BoundingSphereFromPoints(corners[:])
	return sphere
}

// BoundingSphereMerged returns a sphere enclosing both a and b.
func BoundingSphereMerged(a, b BoundingSphere) BoundingSphere {
	offset := b.Center.Sub(a.Center)
	distance := offset.Length()

	if distance+b.Radius <= a.Radius {
		return a
	}
	if distance+a.Radius <= b.Radius {
		return b
	}

	radius := (distance + a.Radius + b.Radius) * 0.5
	center := a.Center.Add(offset.MulScalar((radius - a.Radius) / distance))
	return BoundingSphere{Center: center, Radius: radius}
}

func (s BoundingSphere) ContainsPoint(point Vector3) ContainmentType {
	if point.DistanceSquared(s.Center) > s.Radius*s.Radius {
		return Disjoint
	}
	return Contains
}

func (s BoundingSphere) ContainsBox(box BoundingBox) ContainmentType {
	if !box.IntersectsSphere(s) {
		return Disjoint
	}
	for _, corner := range box.Corners() {
		if s.ContainsPoint(corner) == Disjoint {
			return Intersects
		}
	}
	return Contains
}

func (s BoundingSphere) ContainsSphere(other BoundingSphere) ContainmentType {
	distance := s.Center.Distance(other.Center)
	if distance > s.Radius+other.Radius {
		return Disjoint
	}
	if distance+other.Radius <= s.Radius {
		return Contains
	}
	return Intersects
}

func (s BoundingSphere) ContainsFrustum(frustum *BoundingFrustum) ContainmentType {
	inside := 0
	for _, corner := range frustum.corners {
		if s.ContainsPoint(corner) == Contains {
			inside++
		}
	}
	switch {
	case inside == CornerCount:
		return Contains
	case inside > 0:
		return Intersects
	case frustum.ContainsSphere(s) != Disjoint:
		return Intersects
	default:
		return Disjoint
	}
}

func (s BoundingSphere) IntersectsBox(box BoundingBox) bool {
	return box.IntersectsSphere(s)
}

func (s BoundingSphere) IntersectsSphere(other BoundingSphere) bool {
	r := s.Radius + other.Radius
	return s.Center.DistanceSquared(other.Center) <= r*r
}

func (s BoundingSphere) IntersectsFrustum(frustum *BoundingFrustum) bool {
	return frustum.ContainsSphere(s) != Disjoint
}

func (s BoundingSphere) IntersectsPlane(plane Plane) PlaneIntersectionType {
	return plane.IntersectsSphere(s)
}

func (s BoundingSphere) IntersectsRay(ray Ray) (float32, bool) {
	return ray.IntersectsSphere(s)
}

// Transform moves the center by m and scales the radius by the largest
// axis scale of m.
func (s BoundingSphere) Transform(m Matrix) BoundingSphere {
	scaleSq := Max(m.Right().LengthSquared(), Max(m.Up().LengthSquared(), m.Backward().LengthSquared()))
	return BoundingSphere{
		Center: s.Center.Transform(m),
		Radius: s.Radius * Sqrt(scaleSq),
	}
}

func (s BoundingSphere) Equals(other BoundingSphere) bool {
	return s.Center.Equals(other.Center) && floatEquals(s.Radius, other.Radius)
}

func (s BoundingSphere) Hash() uint32 {
	return hashFloats(s.Center.X, s.Center.Y, s.Center.Z, s.Radius)
}

func (s BoundingSphere) String() string {
	return fmt.Sprintf("{Center:%v Radius:%v}", s.Center, s.Radius)
}
