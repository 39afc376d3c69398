package math

// ContainmentType classifies how one bounding volume holds another.
type ContainmentType int

const (
	// Disjoint means the volumes share no point.
	Disjoint ContainmentType = iota
	// Contains means the second volume lies entirely inside the first.
	Contains
	// Intersects means the volumes overlap partially.
	Intersects
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Contains:
		return "Contains"
	case Intersects:
		return "Intersects"
	default:
		return "Unknown"
	}
}

// PlaneIntersectionType classifies a volume against a plane.
type PlaneIntersectionType int

const (
	// Front is the side the plane normal points to.
	Front PlaneIntersectionType = iota
	Back
	Intersecting
)

func (p PlaneIntersectionType) String() string {
	switch p {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Intersecting:
		return "Intersecting"
	default:
		return "Unknown"
	}
}
