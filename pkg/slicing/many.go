package slicing

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"volslice/pkg/geometry"
)

// SliceMany cuts ds with every plane in order and commits the results to
// out. The collection is sized to exactly len(planes); slot i holds the
// piece from plane i under the name "Slice%02d". Slot order is plane order.
//
// The pieces are staged in a fresh collection and swapped into out only
// after every cut has succeeded, so a failed cut leaves out untouched.
func SliceMany(ds Dataset, planes []geometry.Plane, out *SliceCollection) error {
	staged := NewSliceCollection(len(planes))
	for i, plane := range planes {
		piece, err := ds.Cut(plane)
		if err != nil {
			return fmt.Errorf("slicing: cut %d of %d failed: %w", i, len(planes), err)
		}
		staged.setBlock(i, piece)
	}
	*out = *staged
	return nil
}

// Apply generates the path planes for points and slices ds with all of them,
// committing the named pieces to out.
func (g *PathPlanes) Apply(points []r3.Vec, ds Dataset, out *SliceCollection) error {
	planes, err := g.Planes(points)
	if err != nil {
		return err
	}
	return SliceMany(ds, planes, out)
}

// cutOne applies single-plane slicing logic: the sequence must hold exactly
// one plane, anything else is a shape confusion on the caller's side.
func cutOne(ds Dataset, planes []geometry.Plane) (*SlicePiece, error) {
	if len(planes) != 1 {
		return nil, fmt.Errorf("%w: got %d planes", ErrUnsupportedShape, len(planes))
	}
	return ds.Cut(planes[0])
}
