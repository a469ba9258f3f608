package slicing

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"volslice/pkg/geometry"
	"volslice/pkg/spatial"
)

// PathPlanes generates an ordered sequence of cutting planes tracing tangent
// directions along a path through a point set. The point order may be raw
// scan order; with nearest-neighbor reordering enabled the traversal order is
// reconstructed from a spatial index before planes are generated.
type PathPlanes struct {
	sliceCount int
	nearest    bool
	backend    spatial.Backend
}

// NewPathPlanes returns a generator producing at most sliceCount planes.
func NewPathPlanes(sliceCount int, nearestNeighbor bool) *PathPlanes {
	return &PathPlanes{sliceCount: sliceCount, nearest: nearestNeighbor}
}

// SliceCount returns the configured plane budget.
func (g *PathPlanes) SliceCount() int { return g.sliceCount }

// SetSliceCount sets the number of planes to generate. Setting the current
// value is a no-op.
func (g *PathPlanes) SetSliceCount(n int) {
	if g.sliceCount != n {
		g.sliceCount = n
	}
}

// SetUseNearestNeighbor toggles nearest-neighbor path reconstruction.
func (g *PathPlanes) SetUseNearestNeighbor(flag bool) {
	if g.nearest != flag {
		g.nearest = flag
	}
}

// SetBackend selects the spatial-index backend used for reordering. The zero
// value lets the spatial package pick its preferred backend.
func (g *PathPlanes) SetBackend(b spatial.Backend) {
	if g.backend != b {
		g.backend = b
	}
}

// Planes generates the plane sequence for points.
//
// When reordering is enabled the permutation is the full ordered-by-distance
// neighbor list of points[0], obtained from a single k=N query. This orders
// points by ascending distance from the start rather than solving a true
// shortest-path traversal; the approximation is intentional and kept for
// output stability.
//
// The permutation is walked with a stride of floor(N/sliceCount), never using
// the final point as a segment start. Each visited pair (P1, P2) yields a
// plane with origin P1 and the raw difference P2-P1 as its normal. When the
// stride does not evenly divide N-1 fewer than sliceCount planes result.
// A slice count of zero produces an empty sequence without error.
func (g *PathPlanes) Planes(points []r3.Vec) ([]geometry.Plane, error) {
	if g.sliceCount <= 0 || len(points) < 2 {
		return nil, nil
	}

	perm, err := g.permutation(points)
	if err != nil {
		return nil, err
	}

	stride := len(points) / g.sliceCount
	if stride < 1 {
		stride = 1
	}

	var planes []geometry.Plane
	for i := 0; i < len(points)-1; i += stride {
		p1 := points[perm[i]]
		p2 := points[perm[i+1]]
		planes = append(planes, geometry.NewPlane(p1, r3.Sub(p2, p1)))
	}
	return planes, nil
}

func (g *PathPlanes) permutation(points []r3.Vec) ([]int, error) {
	if !g.nearest {
		perm := make([]int, len(points))
		for i := range perm {
			perm[i] = i
		}
		return perm, nil
	}
	index, err := spatial.Build(points, g.backend)
	if err != nil {
		return nil, err
	}
	perm := index.Query(points[0], len(points))
	if len(perm) != len(points) {
		return nil, fmt.Errorf("slicing: neighbor query returned %d of %d points", len(perm), len(points))
	}
	return perm, nil
}
