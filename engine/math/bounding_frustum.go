package math

import "fmt"

const (
	planeNear = iota
	planeFar
	planeLeft
	planeRight
	planeTop
	planeBottom
	planeCount
)

// BoundingFrustum is the convex volume seen through a view-projection
// matrix. Its planes face outward, so a point is inside when it lies on
// the back side of all six. Planes and corners are recomputed whenever
// the matrix is assigned through SetMatrix.
type BoundingFrustum struct {
	matrix  Matrix
	planes  [planeCount]Plane
	corners [CornerCount]Vector3
}

// NewBoundingFrustum builds the frustum of a view × projection matrix
// using the [0, 1] clip depth range.
func NewBoundingFrustum(viewProjection Matrix) *BoundingFrustum {
	f := &BoundingFrustum{}
	f.SetMatrix(viewProjection)
	return f
}

func (f *BoundingFrustum) Matrix() Matrix { return f.matrix }

// SetMatrix replaces the matrix and refreshes the planes and corners.
func (f *BoundingFrustum) SetMatrix(m Matrix) {
	f.matrix = m
	f.createPlanes()
	f.createCorners()
}

func (f *BoundingFrustum) createPlanes() {
	m := f.matrix
	f.planes[planeNear] = NewPlaneFromComponents(-m.M13, -m.M23, -m.M33, -m.M43)
	f.planes[planeFar] = NewPlaneFromComponents(m.M13-m.M14, m.M23-m.M24, m.M33-m.M34, m.M43-m.M44)
	f.planes[planeLeft] = NewPlaneFromComponents(-m.M14-m.M11, -m.M24-m.M21, -m.M34-m.M31, -m.M44-m.M41)
	f.planes[planeRight] = NewPlaneFromComponents(m.M11-m.M14, m.M21-m.M24, m.M31-m.M34, m.M41-m.M44)
	f.planes[planeTop] = NewPlaneFromComponents(m.M12-m.M14, m.M22-m.M24, m.M32-m.M34, m.M42-m.M44)
	f.planes[planeBottom] = NewPlaneFromComponents(-m.M14-m.M12, -m.M24-m.M22, -m.M34-m.M32, -m.M44-m.M42)

	for i := range f.planes {
		f.planes[i] = f.planes[i].Normalize()
	}
}

func (f *BoundingFrustum) createCorners() {
	p := &f.planes
	f.corners[0] = intersectionPoint(p[planeNear], p[planeLeft], p[planeTop])
	f.corners[1] = intersectionPoint(p[planeNear], p[planeRight], p[planeTop])
	f.corners[2] = intersectionPoint(p[planeNear], p[planeRight], p[planeBottom])
	f.corners[3] = intersectionPoint(p[planeNear], p[planeLeft], p[planeBottom])
	f.corners[4] = intersectionPoint(p[planeFar], p[planeLeft], p[planeTop])
	f.corners[5] = intersectionPoint(p[planeFar], p[planeRight], p[planeTop])
	f.corners[6] = intersectionPoint(p[planeFar], p[planeRight], p[planeBottom])
	f.corners[7] = intersectionPoint(p[planeFar], p[planeLeft], p[planeBottom])
}

func (f *BoundingFrustum) Near() Plane   { return f.planes[planeNear] }
func (f *BoundingFrustum) Far() Plane    { return f.planes[planeFar] }
func (f *BoundingFrustum) Left() Plane   { return f.planes[planeLeft] }
func (f *BoundingFrustum) Right() Plane  { return f.planes[planeRight] }
func (f *BoundingFrustum) Top() Plane    { return f.planes[planeTop] }
func (f *BoundingFrustum) Bottom() Plane { return f.planes[planeBottom] }

// Planes returns near, far, left, right, top and bottom in that order.
func (f *BoundingFrustum) Planes() [planeCount]Plane { return f.planes }

// Corners returns the four near corners (top left, top right, bottom
// right, bottom left) followed by the four far corners in the same order.
func (f *BoundingFrustum) Corners() [CornerCount]Vector3 { return f.corners }

func (f *BoundingFrustum) ContainsPoint(point Vector3) ContainmentType {
	for _, plane := range f.planes {
		if plane.DotCoordinate(point) > 0 {
			return Disjoint
		}
	}
	return Contains
}

// ContainsBox rejects the box as soon as it is in front of one plane.
// Boxes straddling a plane report Intersects.
func (f *BoundingFrustum) ContainsBox(box BoundingBox) ContainmentType {
	result := Contains
	for _, plane := range f.planes {
		switch plane.IntersectsBox(box) {
		case Front:
			return Disjoint
		case Intersecting:
			result = Intersects
		}
	}
	return result
}

func (f *BoundingFrustum) ContainsSphere(sphere BoundingSphere) ContainmentType {
	result := Contains
	for _, plane := range f.planes {
		switch plane.IntersectsSphere(sphere) {
		case Front:
			return Disjoint
		case Intersecting:
			result = Intersects
		}
	}
	return result
}

func (f *BoundingFrustum) ContainsFrustum(other *BoundingFrustum) ContainmentType {
	if f.matrix.Equals(other.matrix) {
		return Contains
	}

	inside := 0
	for _, corner := range other.corners {
		if f.ContainsPoint(corner) == Contains {
			inside++
		}
	}
	if inside == CornerCount {
		return Contains
	}
	if inside > 0 {
		return Intersects
	}
	for _, corner := range f.corners {
		if other.ContainsPoint(corner) == Contains {
			return Intersects
		}
	}
	// No corner inside either volume: they are apart when one plane of
	// either frustum has the whole other frustum in front of it.
	if f.separates(other) || other.separates(f) {
		return Disjoint
	}
	return Intersects
}

func (f *BoundingFrustum) separates(other *BoundingFrustum) bool {
	for _, plane := range f.planes {
		if other.IntersectsPlane(plane) == Front {
			return true
		}
	}
	return false
}

func (f *BoundingFrustum) IntersectsBox(box BoundingBox) bool {
	return f.ContainsBox(box) != Disjoint
}

func (f *BoundingFrustum) IntersectsSphere(sphere BoundingSphere) bool {
	return f.ContainsSphere(sphere) != Disjoint
}

func (f *BoundingFrustum) IntersectsFrustum(other *BoundingFrustum) bool {
	return f.ContainsFrustum(other) != Disjoint
}

// IntersectsPlane classifies the corners of the frustum against plane.
func (f *BoundingFrustum) IntersectsPlane(plane Plane) PlaneIntersectionType {
	result := plane.IntersectsPoint(f.corners[0])
	for _, corner := range f.corners[1:] {
		if plane.IntersectsPoint(corner) != result {
			return Intersecting
		}
	}
	return result
}

func (f *BoundingFrustum) IntersectsRay(ray Ray) (float32, bool) {
	return ray.IntersectsFrustum(f)
}

func (f *BoundingFrustum) String() string {
	return fmt.Sprintf("{Near:%v Far:%v Left:%v Right:%v Top:%v Bottom:%v}",
		f.planes[planeNear], f.planes[planeFar], f.planes[planeLeft],
		f.planes[planeRight], f.planes[planeTop], f.planes[planeBottom])
}
