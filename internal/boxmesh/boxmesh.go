// Package boxmesh provides a minimal sliceable dataset: an axis-aligned box
// with an exact plane-cut. It stands in for the external computational
// geometry collaborator in the command-line tool and in tests.
package boxmesh

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"volslice/pkg/geometry"
	"volslice/pkg/slicing"
)

// Box is an axis-aligned box dataset.
type Box struct {
	bounds geometry.Bounds
}

// New returns a box dataset with the given bounds.
func New(b geometry.Bounds) *Box {
	return &Box{bounds: b}
}

// Bounds returns the box extents.
func (b *Box) Bounds() geometry.Bounds { return b.bounds }

// Center returns the box center.
func (b *Box) Center() r3.Vec { return b.bounds.Center() }

// Cut intersects the box with the plane and returns the convex intersection
// polygon, ordered counterclockwise around the plane normal. A plane that
// misses the box, or a degenerate zero-normal plane, yields an empty piece.
func (b *Box) Cut(p geometry.Plane) (*slicing.SlicePiece, error) {
	if r3.Norm(p.Normal) == 0 {
		return &slicing.SlicePiece{}, nil
	}

	corners := b.corners()
	dist := make([]float64, len(corners))
	for i, c := range corners {
		dist[i] = r3.Dot(p.Normal, r3.Sub(c, p.Origin))
	}

	var pts []r3.Vec
	for _, e := range boxEdges {
		a, bd := dist[e[0]], dist[e[1]]
		switch {
		case a == 0:
			pts = appendUnique(pts, corners[e[0]])
		case bd == 0:
			pts = appendUnique(pts, corners[e[1]])
		case (a < 0) != (bd < 0):
			t := a / (a - bd)
			va, vb := corners[e[0]], corners[e[1]]
			pts = appendUnique(pts, r3.Add(va, r3.Scale(t, r3.Sub(vb, va))))
		}
	}
	if len(pts) < 3 {
		return &slicing.SlicePiece{}, nil
	}

	orderAroundCentroid(pts, p.Normal)
	loop := make([]int, len(pts))
	for i := range loop {
		loop[i] = i
	}
	return &slicing.SlicePiece{Vertices: pts, Polygons: [][]int{loop}}, nil
}

// corners enumerates the 8 box corners; bit i of the corner index selects
// min/max on axis i.
func (b *Box) corners() []r3.Vec {
	x := [2]float64{b.bounds.XMin, b.bounds.XMax}
	y := [2]float64{b.bounds.YMin, b.bounds.YMax}
	z := [2]float64{b.bounds.ZMin, b.bounds.ZMax}
	out := make([]r3.Vec, 8)
	for i := 0; i < 8; i++ {
		out[i] = r3.Vec{X: x[i&1], Y: y[i>>1&1], Z: z[i>>2&1]}
	}
	return out
}

// boxEdges lists the 12 corner pairs forming the box edges.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along x
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along z
}

const eps = 1e-12

func appendUnique(pts []r3.Vec, v r3.Vec) []r3.Vec {
	for _, p := range pts {
		d := r3.Sub(p, v)
		if r3.Dot(d, d) < eps {
			return pts
		}
	}
	return append(pts, v)
}

// orderAroundCentroid sorts the coplanar points by angle about their centroid
// in a basis perpendicular to the normal.
func orderAroundCentroid(pts []r3.Vec, normal r3.Vec) {
	n := r3.Unit(normal)
	u := r3.Unit(perpendicular(n))
	v := r3.Cross(n, u)

	var centroid r3.Vec
	for _, p := range pts {
		centroid = r3.Add(centroid, p)
	}
	centroid = r3.Scale(1/float64(len(pts)), centroid)

	sort.Slice(pts, func(i, j int) bool {
		return angleIn(pts[i], centroid, u, v) < angleIn(pts[j], centroid, u, v)
	})
}

func angleIn(p, centroid, u, v r3.Vec) float64 {
	d := r3.Sub(p, centroid)
	return math.Atan2(r3.Dot(d, v), r3.Dot(d, u))
}

// perpendicular returns some vector perpendicular to n, chosen against the
// smallest component of n for stability.
func perpendicular(n r3.Vec) r3.Vec {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	var axis r3.Vec
	switch {
	case ax <= ay && ax <= az:
		axis = r3.Vec{X: 1}
	case ay <= az:
		axis = r3.Vec{Y: 1}
	default:
		axis = r3.Vec{Z: 1}
	}
	return r3.Cross(n, axis)
}
