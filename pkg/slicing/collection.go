package slicing

import "fmt"

// SliceCollection is an ordered, named sequence of slice pieces. The slot
// count is fixed at creation and slots are populated in ascending order;
// slot i carries the generated name "Slice%02d".
type SliceCollection struct {
	names  []string
	pieces []*SlicePiece
}

// NewSliceCollection returns a collection with n empty slots.
func NewSliceCollection(n int) *SliceCollection {
	return &SliceCollection{
		names:  make([]string, n),
		pieces: make([]*SlicePiece, n),
	}
}

// Len returns the number of slots.
func (c *SliceCollection) Len() int { return len(c.pieces) }

// Name returns the generated name of slot i.
func (c *SliceCollection) Name(i int) string { return c.names[i] }

// Piece returns the piece stored in slot i, nil when unpopulated.
func (c *SliceCollection) Piece(i int) *SlicePiece { return c.pieces[i] }

func (c *SliceCollection) setBlock(i int, p *SlicePiece) {
	c.pieces[i] = p
	c.names[i] = blockName(i)
}

func blockName(i int) string { return fmt.Sprintf("Slice%02d", i) }
