package math

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/core"
)

// CornerCount is the number of corners of a box or frustum.
const CornerCount = 8

// BoundingBox is an axis aligned box spanning Min to Max.
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates a box and fails with core.ErrInvalidBounds when
// min exceeds max on any axis.
func NewBoundingBox(min, max Vector3) (BoundingBox, error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return BoundingBox{}, fmt.Errorf("%w: min %v, max %v", core.ErrInvalidBounds, min, max)
	}
	return BoundingBox{Min: min, Max: max}, nil
}

// BoundingBoxFromPoints returns the smallest box holding every point.
func BoundingBoxFromPoints(points []Vector3) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, fmt.Errorf("%w: bounding box needs at least one point", core.ErrEmptySequence)
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return BoundingBox{Min: min, Max: max}, nil
}

// BoundingBoxFromSphere returns the box that tightly holds sphere.
func BoundingBoxFromSphere(sphere BoundingSphere) BoundingBox {
	extent := Vector3Splat(sphere.Radius)
	return BoundingBox{Min: sphere.Center.Sub(extent), Max: sphere.Center.Add(extent)}
}

// BoundingBoxMerged returns the smallest box holding both a and b.
func BoundingBoxMerged(a, b BoundingBox) BoundingBox {
	return BoundingBox{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Extents returns the half size of the box on each axis.
func (b BoundingBox) Extents() Vector3 {
	return b.Max.Sub(b.Min).MulScalar(0.5)
}

// Corners lists the near face (max z) clockwise from top left, then the
// far face (min z) in the same order.
func (b BoundingBox) Corners() [CornerCount]Vector3 {
	return [CornerCount]Vector3{
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Min.Z},
	}
}

// ContainsPoint reports Contains for points inside or on the box.
func (b BoundingBox) ContainsPoint(point Vector3) ContainmentType {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return Disjoint
	}
	return Contains
}

func (b BoundingBox) ContainsBox(other BoundingBox) ContainmentType {
	if !b.IntersectsBox(other) {
		return Disjoint
	}
	if other.Min.X >= b.Min.X && other.Max.X <= b.Max.X &&
		other.Min.Y >= b.Min.Y && other.Max.Y <= b.Max.Y &&
		other.Min.Z >= b.Min.Z && other.Max.Z <= b.Max.Z {
		return Contains
	}
	return Intersects
}

func (b BoundingBox) ContainsSphere(sphere BoundingSphere) ContainmentType {
	c, r := sphere.Center, sphere.Radius
	if c.X-b.Min.X >= r && c.Y-b.Min.Y >= r && c.Z-b.Min.Z >= r &&
		b.Max.X-c.X >= r && b.Max.Y-c.Y >= r && b.Max.Z-c.Z >= r {
		return Contains
	}
	if b.distanceSquared(c) <= r*r {
		return Intersects
	}
	return Disjoint
}

func (b BoundingBox) ContainsFrustum(frustum *BoundingFrustum) ContainmentType {
	inside := 0
	for _, corner := range frustum.corners {
		if b.ContainsPoint(corner) == Contains {
			inside++
		}
	}
	switch {
	case inside == CornerCount:
		return Contains
	case inside > 0:
		return Intersects
	case frustum.ContainsBox(b) != Disjoint:
		return Intersects
	default:
		return Disjoint
	}
}

func (b BoundingBox) IntersectsBox(other BoundingBox) bool {
	return b.Max.X >= other.Min.X && b.Min.X <= other.Max.X &&
		b.Max.Y >= other.Min.Y && b.Min.Y <= other.Max.Y &&
		b.Max.Z >= other.Min.Z && b.Min.Z <= other.Max.Z
}

func (b BoundingBox) IntersectsSphere(sphere BoundingSphere) bool {
	return b.distanceSquared(sphere.Center) <= sphere.Radius*sphere.Radius
}

func (b BoundingBox) IntersectsFrustum(frustum *BoundingFrustum) bool {
	return frustum.ContainsBox(b) != Disjoint
}

func (b BoundingBox) IntersectsPlane(plane Plane) PlaneIntersectionType {
	return plane.IntersectsBox(b)
}

func (b BoundingBox) IntersectsRay(ray Ray) (float32, bool) {
	return ray.IntersectsBox(b)
}

// distanceSquared returns the squared distance from point to the
// closest point of the box, 0 when point is inside.
func (b BoundingBox) distanceSquared(point Vector3) float32 {
	closest := point.Clamp(b.Min, b.Max)
	return closest.DistanceSquared(point)
}

func (b BoundingBox) Equals(other BoundingBox) bool {
	return b.Min.Equals(other.Min) && b.Max.Equals(other.Max)
}

func (b BoundingBox) Hash() uint32 {
	return hashFloats(b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("{Min:%v Max:%v}", b.Min, b.Max)
}
