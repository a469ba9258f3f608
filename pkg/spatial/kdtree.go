package spatial

import (
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

func init() {
	register(KDTree, newKDIndex)
}

// kdPoint carries the original point index through the tree so queries can
// report positions in the source slice rather than coordinates.
type kdPoint struct {
	vec r3.Vec
	idx int
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	switch d {
	case 0:
		return p.vec.X - q.vec.X
	case 1:
		return p.vec.Y - q.vec.Y
	case 2:
		return p.vec.Z - q.vec.Z
	}
	panic("spatial: illegal dimension")
}

func (p kdPoint) Dims() int { return 3 }

func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	return sqDist(p.vec, c.(kdPoint).vec)
}

type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p kdPoints) Len() int                      { return len(p) }
func (p kdPoints) Pivot(d kdtree.Dim) int {
	return kdPlane{Dim: d, kdPoints: p}.Pivot()
}
func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// kdPlane sorts kdPoints along a single dimension for tree construction.
type kdPlane struct {
	kdtree.Dim
	kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.kdPoints[i].vec.X < p.kdPoints[j].vec.X
	case 1:
		return p.kdPoints[i].vec.Y < p.kdPoints[j].vec.Y
	case 2:
		return p.kdPoints[i].vec.Z < p.kdPoints[j].vec.Z
	}
	panic("spatial: illegal dimension")
}

func (p kdPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdPoints = p.kdPoints[start:end]
	return p
}

func (p kdPlane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}

type kdIndex struct {
	tree   *kdtree.Tree
	points []r3.Vec
}

func newKDIndex(points []r3.Vec) Index {
	data := make(kdPoints, len(points))
	for i, v := range points {
		data[i] = kdPoint{vec: v, idx: i}
	}
	return &kdIndex{tree: kdtree.New(data, false), points: points}
}

func (ix *kdIndex) Query(q r3.Vec, k int) []int {
	if k <= 0 || len(ix.points) == 0 {
		return nil
	}
	if k > len(ix.points) {
		k = len(ix.points)
	}
	keep := kdtree.NewNKeeper(k)
	ix.tree.NearestSet(keep, kdPoint{vec: q, idx: -1})

	ns := make([]neighbor, 0, k)
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			// NKeeper seeds its heap with an infinite-distance sentinel that
			// survives when fewer than k points were found.
			continue
		}
		p := cd.Comparable.(kdPoint)
		ns = append(ns, neighbor{idx: p.idx, dist: sqDist(q, p.vec)})
	}
	return resolveTies(ix.points, q, k, ns)
}
