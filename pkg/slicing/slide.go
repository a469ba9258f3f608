package slicing

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"volslice/pkg/geometry"
	"volslice/pkg/spatial"
)

// SlideSlice extracts a single slice at an interactive percentage location
// along a point path. The path's plane sequence is computed lazily and cached
// against the identity of the input point set; a new point set rebuilds the
// sequence with one plane candidate per point before the location selects
// a plane from it.
type SlideSlice struct {
	gen *PathPlanes
	loc int

	planes  []geometry.Plane
	derived pathInputs
	valid   bool
}

// pathInputs identifies the point set a cached plane sequence was derived
// from: its length and the address of its first element.
type pathInputs struct {
	n    int
	head *r3.Vec
}

func fingerprint(points []r3.Vec) pathInputs {
	in := pathInputs{n: len(points)}
	if len(points) > 0 {
		in.head = &points[0]
	}
	return in
}

// NewSlideSlice returns a selector positioned halfway along the path.
func NewSlideSlice(nearestNeighbor bool) *SlideSlice {
	return &SlideSlice{gen: NewPathPlanes(0, nearestNeighbor), loc: 50}
}

// Location returns the current location percent.
func (s *SlideSlice) Location() int { return s.loc }

// SetLocation sets the slice location as a percentage along the path,
// rejecting values outside [0, 99] with ErrInvalidParameter. Setting the
// current value is a no-op.
func (s *SlideSlice) SetLocation(loc int) error {
	if loc < 0 || loc > 99 {
		return fmt.Errorf("%w: location must be a percentage in [0, 99], got %d", ErrInvalidParameter, loc)
	}
	if s.loc != loc {
		s.loc = loc
	}
	return nil
}

// SetUseNearestNeighbor toggles nearest-neighbor path reconstruction for the
// cached plane sequence. Changing it invalidates the cache.
func (s *SlideSlice) SetUseNearestNeighbor(flag bool) {
	s.gen.SetUseNearestNeighbor(flag)
	s.valid = false
}

// SetBackend selects the spatial-index backend used for path
// reconstruction. Changing it invalidates the cache.
func (s *SlideSlice) SetBackend(b spatial.Backend) {
	s.gen.SetBackend(b)
	s.valid = false
}

// Slice selects the plane at floor(len(planes) * loc / 100) from the cached
// sequence for points and cuts ds with it, returning the single piece.
func (s *SlideSlice) Slice(points []r3.Vec, ds Dataset) (*SlicePiece, error) {
	if err := s.refresh(points); err != nil {
		return nil, err
	}
	if len(s.planes) == 0 {
		return nil, fmt.Errorf("%w: point set of %d points yields no planes", ErrUnsupportedShape, len(points))
	}
	idx := len(s.planes) * s.loc / 100
	return cutOne(ds, s.planes[idx:idx+1])
}

func (s *SlideSlice) refresh(points []r3.Vec) error {
	in := fingerprint(points)
	if s.valid && in == s.derived {
		return nil
	}
	// One plane candidate per point, subject to the generator's stride rule.
	s.gen.SetSliceCount(len(points))
	planes, err := s.gen.Planes(points)
	if err != nil {
		return err
	}
	s.planes = planes
	s.derived = in
	s.valid = true
	return nil
}
