package model

// Point is an (x, y) coordinate.
type Point struct {
	X, Y float64
}

// Rect is a position plus extent. A Rect with zero width and height is
// equivalent to "no geometry" (I4).
type Rect struct {
	X, Y, W, H float64
}

// IsEmpty reports whether r has zero width and height.
func (r Rect) IsEmpty() bool {
	return r.W == 0 && r.H == 0
}

// Center returns the midpoint of r, used when a point-kind node (legacy
// yEd dialect) is given rect geometry and must be collapsed to a point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Polyline is an ordered sequence of points describing an edge's route.
type Polyline []Point

// CoordFormat describes the origin and parent-relativity of stored
// coordinates.
type CoordFormat int

const (
	CoordAbsolute CoordFormat = iota
	CoordLeftTopLocal
	CoordCenterLocal
)

func (f CoordFormat) String() string {
	switch f {
	case CoordAbsolute:
		return "absolute"
	case CoordLeftTopLocal:
		return "left-top-local"
	case CoordCenterLocal:
		return "center-local"
	default:
		return "unknown"
	}
}

// EndpointPlacement is where an edge's endpoint geometry anchors on its
// node: the node's center, or its border.
type EndpointPlacement int

const (
	EndpointCenter EndpointPlacement = iota
	EndpointBorder
)
