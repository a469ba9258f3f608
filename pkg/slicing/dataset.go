package slicing

import (
	"gonum.org/v1/gonum/spatial/r3"

	"volslice/pkg/geometry"
)

// Dataset is the sliceable input: an opaque mesh or grid that knows its
// bounding box and can intersect itself with a plane. Cut is expected to be
// pure; given identical planes it must return identical pieces.
type Dataset interface {
	// Bounds returns the axis-aligned bounding box of the dataset.
	Bounds() geometry.Bounds
	// Center returns the center point of the dataset.
	Center() r3.Vec
	// Cut intersects the dataset with the plane and returns the resulting
	// polygonal piece. An empty piece (no vertices) is a valid result for a
	// plane that misses the dataset.
	Cut(p geometry.Plane) (*SlicePiece, error)
}

// SlicePiece is the polygonal mesh produced by one plane cut. Each polygon is
// a loop of indices into Vertices. A piece is owned exclusively by the
// collection slot it is written to.
type SlicePiece struct {
	Vertices []r3.Vec
	Polygons [][]int
}
