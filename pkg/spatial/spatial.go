// Package spatial provides nearest-neighbor lookup over a fixed point set
// behind a small capability interface. Two interchangeable backends are
// compiled in: a kd-tree (the fast default) and an R-tree. Callers pick a
// backend by name or let Auto choose the preferred one that is registered.
package spatial

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNoBackend indicates that no nearest-neighbor backend is available for
// the requested selection.
var ErrNoBackend = errors.New("spatial: no nearest-neighbor backend available")

// Index answers k-nearest-neighbor queries over the point set it was built
// from. Implementations are immutable after Build.
type Index interface {
	// Query returns the indices of the k stored points nearest to q, ordered
	// by ascending distance. Ties are broken by ascending point index so that
	// results are reproducible. Fewer than k indices are returned when the
	// index holds fewer than k points.
	Query(q r3.Vec, k int) []int
}

// Backend names a nearest-neighbor implementation.
type Backend string

const (
	// Auto selects the preferred registered backend: the kd-tree when
	// present, otherwise the R-tree.
	Auto Backend = ""
	// KDTree is the gonum kd-tree backend.
	KDTree Backend = "kdtree"
	// RTree is the rtreego R-tree backend.
	RTree Backend = "rtree"
)

type builderFunc func(points []r3.Vec) Index

var backends = make(map[Backend]builderFunc)

// preference is the Auto selection order.
var preference = []Backend{KDTree, RTree}

func register(name Backend, build builderFunc) {
	backends[name] = build
}

// Build constructs an index over points using the named backend. With Auto it
// walks the preference order and uses the first registered backend. Build
// returns ErrNoBackend when the selection matches nothing. The points slice
// is copied; later mutation of the caller's slice does not affect the index.
func Build(points []r3.Vec, backend Backend) (Index, error) {
	if backend != Auto {
		build, ok := backends[backend]
		if !ok {
			return nil, fmt.Errorf("%w: unknown backend %q", ErrNoBackend, backend)
		}
		return build(clonePoints(points)), nil
	}
	for _, name := range preference {
		if build, ok := backends[name]; ok {
			return build(clonePoints(points)), nil
		}
	}
	return nil, ErrNoBackend
}

func clonePoints(points []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(points))
	copy(out, points)
	return out
}

// neighbor pairs a point index with its squared distance to the query point.
type neighbor struct {
	idx  int
	dist float64
}

// orderNeighbors sorts in place by ascending distance, then index.
func orderNeighbors(ns []neighbor) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].dist != ns[j].dist {
			return ns[i].dist < ns[j].dist
		}
		return ns[i].idx < ns[j].idx
	})
}

// resolveTies finalizes a k-nearest candidate set. A tree traversal keeping
// only k candidates picks an arbitrary member of a distance tie that
// straddles the k boundary, so the set is completed with every stored point
// at the cut-off distance before the ordered truncation; that way the kept
// tie members are always the lowest-index ones and results are reproducible
// across backends.
func resolveTies(points []r3.Vec, q r3.Vec, k int, ns []neighbor) []int {
	orderNeighbors(ns)
	if k > 0 && len(ns) >= k {
		cut := ns[k-1].dist
		have := make(map[int]bool, len(ns))
		for _, n := range ns {
			have[n.idx] = true
		}
		for i := range points {
			if have[i] {
				continue
			}
			if d := sqDist(q, points[i]); d == cut {
				ns = append(ns, neighbor{idx: i, dist: d})
			}
		}
		orderNeighbors(ns)
		ns = ns[:k]
	}
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.idx
	}
	return out
}

func sqDist(a, b r3.Vec) float64 {
	d := r3.Sub(a, b)
	return r3.Dot(d, d)
}
