package slicing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"volslice/pkg/geometry"
)

// AxisPlanes generates a uniformly spaced sequence of cutting planes normal
// to one spatial axis of a dataset's bounding box. The axial positions are a
// derived value cached against the exact inputs they were computed from
// (bounds, axis, slice count, padding); any change recomputes them before
// use, so a stale range is never observable.
type AxisPlanes struct {
	axis       int
	sliceCount int
	pad        float64

	rng     []float64
	derived axisInputs
	valid   bool
}

// axisInputs is the fingerprint of everything the axial range depends on.
type axisInputs struct {
	bounds geometry.Bounds
	axis   int
	count  int
	pad    float64
}

// NewAxisPlanes returns a generator slicing along the given axis with
// sliceCount positions and the given padding fraction of the axis extent
// excluded from both ends. The axis must be 0, 1 or 2.
func NewAxisPlanes(axis, sliceCount int, pad float64) (*AxisPlanes, error) {
	if err := checkAxis(axis); err != nil {
		return nil, err
	}
	return &AxisPlanes{axis: axis, sliceCount: sliceCount, pad: pad}, nil
}

// Axis returns the slicing axis index.
func (g *AxisPlanes) Axis() int { return g.axis }

// SetAxis sets the slicing axis, rejecting values outside {0, 1, 2} with
// ErrInvalidAxis. Setting the current value is a no-op.
func (g *AxisPlanes) SetAxis(axis int) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	if g.axis != axis {
		g.axis = axis
	}
	return nil
}

// SliceCount returns the number of axial positions.
func (g *AxisPlanes) SliceCount() int { return g.sliceCount }

// SetSliceCount sets the number of axial positions.
func (g *AxisPlanes) SetSliceCount(n int) {
	if g.sliceCount != n {
		g.sliceCount = n
	}
}

// Padding returns the padding fraction.
func (g *AxisPlanes) Padding() float64 { return g.pad }

// SetPadding sets the padding fraction of the axis extent excluded from both
// ends of the range.
func (g *AxisPlanes) SetPadding(pad float64) {
	if g.pad != pad {
		g.pad = pad
	}
}

// Positions returns the axial slice positions for the given bounds:
// sliceCount values linearly spaced, both ends inclusive, over
// [lo+padding, hi-padding] where padding is the padded fraction of the
// extent. A single-position range holds just lo+padding. The returned slice
// is the cache; callers must not mutate it.
func (g *AxisPlanes) Positions(b geometry.Bounds) []float64 {
	in := axisInputs{bounds: b, axis: g.axis, count: g.sliceCount, pad: g.pad}
	if g.valid && in == g.derived {
		return g.rng
	}

	lo, hi := b.Along(g.axis)
	padding := (hi - lo) * g.pad

	count := g.sliceCount
	if count < 0 {
		count = 0
	}
	rng := make([]float64, count)
	switch count {
	case 0:
	case 1:
		rng[0] = lo + padding
	default:
		floats.Span(rng, lo+padding, hi-padding)
	}

	g.rng = rng
	g.derived = in
	g.valid = true
	return rng
}

// Planes returns one plane per axial position, in ascending position order.
// Each plane's origin is the bounds center with its axis coordinate replaced
// by the position; the normal is the unit vector along the axis.
func (g *AxisPlanes) Planes(b geometry.Bounds) []geometry.Plane {
	positions := g.Positions(b)
	normal := geometry.AxisNormal(g.axis)
	center := b.Center()

	planes := make([]geometry.Plane, len(positions))
	for i, pos := range positions {
		planes[i] = geometry.NewPlane(geometry.WithAxis(center, g.axis, pos), normal)
	}
	return planes
}

// Apply slices ds at every axial position and commits the named pieces to
// out. The output is only written after every cut has succeeded.
func (g *AxisPlanes) Apply(ds Dataset, out *SliceCollection) error {
	return SliceMany(ds, g.Planes(ds.Bounds()), out)
}

func checkAxis(axis int) error {
	if axis < 0 || axis > 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidAxis, axis)
	}
	return nil
}
