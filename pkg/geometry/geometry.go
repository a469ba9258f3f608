// Package geometry provides the plane and bounding-box value types shared by
// the slicing operators. Points and vectors are gonum r3 vectors.
package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is a cutting plane defined by a point on the plane and a normal
// vector. The normal is stored as given and is not normalized; a zero-length
// normal yields a degenerate plane whose cut result is up to the cutter.
// Planes are immutable value objects.
type Plane struct {
	Origin r3.Vec
	Normal r3.Vec
}

// NewPlane constructs a plane from an origin point and a normal vector.
// Construction never fails; any finite vector is accepted.
func NewPlane(origin, normal r3.Vec) Plane {
	return Plane{Origin: origin, Normal: normal}
}

// Bounds is an axis-aligned bounding box in the usual
// (xmin, xmax, ymin, ymax, zmin, zmax) layout.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// Along returns the (lo, hi) extent of the box on the given axis.
// The axis must be 0, 1 or 2.
func (b Bounds) Along(axis int) (lo, hi float64) {
	switch axis {
	case 0:
		return b.XMin, b.XMax
	case 1:
		return b.YMin, b.YMax
	case 2:
		return b.ZMin, b.ZMax
	}
	panic(fmt.Sprintf("geometry: axis %d out of range", axis))
}

// Center returns the center point of the box.
func (b Bounds) Center() r3.Vec {
	return r3.Vec{
		X: (b.XMin + b.XMax) / 2,
		Y: (b.YMin + b.YMax) / 2,
		Z: (b.ZMin + b.ZMax) / 2,
	}
}

// AxisNormal returns the unit vector along the given axis index,
// e.g. axis 0 maps to (1, 0, 0). The axis must be 0, 1 or 2.
func AxisNormal(axis int) r3.Vec {
	switch axis {
	case 0:
		return r3.Vec{X: 1}
	case 1:
		return r3.Vec{Y: 1}
	case 2:
		return r3.Vec{Z: 1}
	}
	panic(fmt.Sprintf("geometry: axis %d out of range", axis))
}

// WithAxis returns v with its coordinate on the given axis replaced by value.
func WithAxis(v r3.Vec, axis int, value float64) r3.Vec {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("geometry: axis %d out of range", axis))
	}
	return v
}
