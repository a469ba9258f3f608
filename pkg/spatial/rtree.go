package spatial

import (
	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r3"
)

func init() {
	register(RTree, newRTreeIndex)
}

// rtEntry is the leaf payload: a point bounding box plus the source index.
type rtEntry struct {
	rect rtreego.Rect
	idx  int
}

func (e *rtEntry) Bounds() rtreego.Rect { return e.rect }

// pointTol is the edge length of the degenerate rectangle that stands in for
// a point; rtreego requires strictly positive extents.
const pointTol = 1e-9

type rtIndex struct {
	tree   *rtreego.Rtree
	points []r3.Vec
}

func newRTreeIndex(points []r3.Vec) Index {
	tree := rtreego.NewTree(3, 25, 50)
	for i, v := range points {
		p := rtreego.Point{v.X, v.Y, v.Z}
		tree.Insert(&rtEntry{rect: p.ToRect(pointTol), idx: i})
	}
	return &rtIndex{tree: tree, points: points}
}

func (ix *rtIndex) Query(q r3.Vec, k int) []int {
	if k <= 0 || len(ix.points) == 0 {
		return nil
	}
	if k > len(ix.points) {
		k = len(ix.points)
	}
	found := ix.tree.NearestNeighbors(k, rtreego.Point{q.X, q.Y, q.Z})

	// Re-rank by exact point distance: the tree ranks by distance to the
	// inflated rectangles, which can reorder near-ties.
	ns := make([]neighbor, 0, len(found))
	for _, sp := range found {
		if sp == nil {
			continue
		}
		e := sp.(*rtEntry)
		ns = append(ns, neighbor{idx: e.idx, dist: sqDist(q, ix.points[e.idx])})
	}
	return resolveTies(ix.points, q, k, ns)
}
