package boxmesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"volslice/internal/boxmesh"
	"volslice/pkg/geometry"
)

func unitBox() *boxmesh.Box {
	return boxmesh.New(geometry.Bounds{XMax: 1, YMax: 1, ZMax: 1})
}

func TestCutAxisPlane(t *testing.T) {
	piece, err := unitBox().Cut(geometry.NewPlane(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, r3.Vec{X: 1}))
	require.NoError(t, err)

	require.Len(t, piece.Vertices, 4)
	require.Len(t, piece.Polygons, 1)
	require.Len(t, piece.Polygons[0], 4)

	want := map[r3.Vec]bool{
		{X: 0.5, Y: 0, Z: 0}: true,
		{X: 0.5, Y: 1, Z: 0}: true,
		{X: 0.5, Y: 0, Z: 1}: true,
		{X: 0.5, Y: 1, Z: 1}: true,
	}
	for _, v := range piece.Vertices {
		require.True(t, want[v], "unexpected vertex %+v", v)
	}
}

func TestCutDiagonalPlane(t *testing.T) {
	center := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	piece, err := unitBox().Cut(geometry.NewPlane(center, r3.Vec{X: 1, Y: 1, Z: 1}))
	require.NoError(t, err)

	// The (1,1,1) mid-plane of a cube is a regular hexagon.
	require.Len(t, piece.Vertices, 6)

	normal := r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1})
	for _, v := range piece.Vertices {
		require.InDelta(t, 0, r3.Dot(normal, r3.Sub(v, center)), 1e-12, "vertex must lie on the plane")
	}
}

func TestCutPolygonIsConvexLoop(t *testing.T) {
	center := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	normal := r3.Vec{X: 1, Y: 2, Z: 3}
	piece, err := unitBox().Cut(geometry.NewPlane(center, normal))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(piece.Vertices), 3)

	// Walking the loop, every turn must wind the same way around the normal.
	n := len(piece.Vertices)
	un := r3.Unit(normal)
	for i := 0; i < n; i++ {
		a := piece.Vertices[i]
		b := piece.Vertices[(i+1)%n]
		c := piece.Vertices[(i+2)%n]
		cross := r3.Cross(r3.Sub(b, a), r3.Sub(c, b))
		require.Greater(t, r3.Dot(cross, un), 0.0, "turn %d", i)
	}
}

func TestCutMissesBox(t *testing.T) {
	piece, err := unitBox().Cut(geometry.NewPlane(r3.Vec{X: 2}, r3.Vec{X: 1}))
	require.NoError(t, err)
	require.Empty(t, piece.Vertices)
	require.Empty(t, piece.Polygons)
}

func TestCutDegenerateNormal(t *testing.T) {
	piece, err := unitBox().Cut(geometry.NewPlane(r3.Vec{X: 0.5}, r3.Vec{}))
	require.NoError(t, err)
	require.Empty(t, piece.Vertices)
}

func TestCutTouchingFace(t *testing.T) {
	// Plane through a box face: the face itself is the intersection.
	piece, err := unitBox().Cut(geometry.NewPlane(r3.Vec{}, r3.Vec{X: 1}))
	require.NoError(t, err)
	require.Len(t, piece.Vertices, 4)
	for _, v := range piece.Vertices {
		require.Equal(t, 0.0, v.X)
	}
}

func TestBoundsAndCenter(t *testing.T) {
	b := geometry.Bounds{XMin: -1, XMax: 3, YMin: 0, YMax: 2, ZMin: 1, ZMax: 5}
	box := boxmesh.New(b)
	require.Equal(t, b, box.Bounds())
	require.Equal(t, r3.Vec{X: 1, Y: 1, Z: 3}, box.Center())
}

func TestCutHexagonEdgeLengths(t *testing.T) {
	// Regular hexagon: all edges equal within tolerance.
	piece, err := unitBox().Cut(geometry.NewPlane(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, r3.Vec{X: 1, Y: 1, Z: 1}))
	require.NoError(t, err)
	require.Len(t, piece.Vertices, 6)

	n := len(piece.Vertices)
	first := math.NaN()
	for i := 0; i < n; i++ {
		edge := r3.Norm(r3.Sub(piece.Vertices[(i+1)%n], piece.Vertices[i]))
		if math.IsNaN(first) {
			first = edge
			continue
		}
		require.InDelta(t, first, edge, 1e-12, "edge %d", i)
	}
}
