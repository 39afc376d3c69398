package math

import "fmt"

// Plane is the set of points P satisfying Normal·P + D = 0.
type Plane struct {
	Normal Vector3
	D      float32
}

func NewPlane(normal Vector3, d float32) Plane {
	return Plane{Normal: normal, D: d}
}

// NewPlaneFromComponents builds the plane a*x + b*y + c*z + d = 0.
func NewPlaneFromComponents(a, b, c, d float32) Plane {
	return Plane{Normal: Vector3{a, b, c}, D: d}
}

// PlaneFromVector4 uses xyz as the normal and w as D.
func PlaneFromVector4(v Vector4) Plane {
	return Plane{Normal: Vector3{v.X, v.Y, v.Z}, D: v.W}
}

// NewPlaneFromPoints creates the plane through a, b and c. The normal
// follows the counter-clockwise winding a, b, c and is unit length.
func NewPlaneFromPoints(a, b, c Vector3) Plane {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: normal, D: -normal.Dot(a)}
}

func (p Plane) ToVector4() Vector4 {
	return Vector4{p.Normal.X, p.Normal.Y, p.Normal.Z, p.D}
}

// Dot returns the four dimensional dot product of the plane and v.
func (p Plane) Dot(v Vector4) float32 {
	return p.Normal.X*v.X + p.Normal.Y*v.Y + p.Normal.Z*v.Z + p.D*v.W
}

// DotCoordinate returns the signed distance of point to the plane,
// scaled by the normal's length.
func (p Plane) DotCoordinate(point Vector3) float32 {
	return p.Normal.Dot(point) + p.D
}

// DotNormal returns the dot product of the normal and direction.
func (p Plane) DotNormal(direction Vector3) float32 {
	return p.Normal.Dot(direction)
}

// Normalize scales the plane so its normal is unit length.
func (p Plane) Normalize() Plane {
	length := p.Normal.Length()
	return Plane{Normal: p.Normal.DivScalar(length), D: p.D / length}
}

// Transform applies m to the plane. The plane is multiplied by the
// inverse transpose of m so non-uniform scale keeps it consistent with
// transformed points. A singular m yields NaN components.
func (p Plane) Transform(m Matrix) Plane {
	inv, _ := m.Invert()
	return PlaneFromVector4(p.ToVector4().Transform(inv.Transpose()))
}

// TransformQuaternion rotates the plane normal by q.
func (p Plane) TransformQuaternion(q Quaternion) Plane {
	return Plane{Normal: p.Normal.TransformQuaternion(q), D: p.D}
}

func (p Plane) IntersectsPoint(point Vector3) PlaneIntersectionType {
	d := p.DotCoordinate(point)
	switch {
	case d > 0:
		return Front
	case d < 0:
		return Back
	default:
		return Intersecting
	}
}

func (p Plane) IntersectsBox(box BoundingBox) PlaneIntersectionType {
	// Corners furthest along and against the normal.
	var positive, negative Vector3
	if p.Normal.X >= 0 {
		positive.X, negative.X = box.Max.X, box.Min.X
	} else {
		positive.X, negative.X = box.Min.X, box.Max.X
	}
	if p.Normal.Y >= 0 {
		positive.Y, negative.Y = box.Max.Y, box.Min.Y
	} else {
		positive.Y, negative.Y = box.Min.Y, box.Max.Y
	}
	if p.Normal.Z >= 0 {
		positive.Z, negative.Z = box.Max.Z, box.Min.Z
	} else {
		positive.Z, negative.Z = box.Min.Z, box.Max.Z
	}

	if p.DotCoordinate(negative) > 0 {
		return Front
	}
	if p.DotCoordinate(positive) < 0 {
		return Back
	}
	return Intersecting
}

// IntersectsSphere expects a normalized plane.
func (p Plane) IntersectsSphere(sphere BoundingSphere) PlaneIntersectionType {
	d := p.DotCoordinate(sphere.Center)
	if d > sphere.Radius {
		return Front
	}
	if d < -sphere.Radius {
		return Back
	}
	return Intersecting
}

func (p Plane) IntersectsFrustum(frustum *BoundingFrustum) PlaneIntersectionType {
	return frustum.IntersectsPlane(p)
}

func (p Plane) Equals(other Plane) bool {
	return p.Normal.Equals(other.Normal) && floatEquals(p.D, other.D)
}

func (p Plane) Hash() uint32 {
	return hashFloats(p.Normal.X, p.Normal.Y, p.Normal.Z, p.D)
}

func (p Plane) ApproxEqual(other Plane, tolerance float32) bool {
	return p.Normal.ApproxEqual(other.Normal, tolerance) && Abs(p.D-other.D) <= tolerance
}

func (p Plane) String() string {
	return fmt.Sprintf("{Normal:%v D:%v}", p.Normal, p.D)
}

// intersectionPoint returns the point shared by three planes.
func intersectionPoint(a, b, c Plane) Vector3 {
	bc := b.Normal.Cross(c.Normal)
	ca := c.Normal.Cross(a.Normal)
	ab := a.Normal.Cross(b.Normal)
	denom := a.Normal.Dot(bc)

	v := bc.MulScalar(-a.D).Add(ca.MulScalar(-b.D)).Add(ab.MulScalar(-c.D))
	return v.DivScalar(denom)
}
