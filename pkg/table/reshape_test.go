package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"volslice/pkg/table"
)

func TestReshapeExample(t *testing.T) {
	// 2 columns x 3 rows reshaped to 3 rows x 2 cols keeps the element
	// stream: each output column takes the next contiguous chunk.
	in := table.New()
	require.NoError(t, in.AddColumn("a", []float64{1, 2, 3}))
	require.NoError(t, in.AddColumn("b", []float64{4, 5, 6}))

	out, err := table.Reshape(in, 3, 2)
	require.NoError(t, err)

	require.Equal(t, 2, out.NumCols())
	require.Equal(t, 3, out.NumRows())
	require.Equal(t, "Field0", out.Name(0))
	require.Equal(t, "Field1", out.Name(1))
	require.Equal(t, []float64{1, 2, 3}, out.Column(0))
	require.Equal(t, []float64{4, 5, 6}, out.Column(1))
}

func TestReshapeRedistributes(t *testing.T) {
	in := table.New()
	require.NoError(t, in.AddColumn("a", []float64{1, 2, 3}))
	require.NoError(t, in.AddColumn("b", []float64{4, 5, 6}))

	out, err := table.Reshape(in, 2, 3)
	require.NoError(t, err)

	require.Equal(t, 3, out.NumCols())
	require.Equal(t, 2, out.NumRows())
	require.Equal(t, []float64{1, 2}, out.Column(0))
	require.Equal(t, []float64{3, 4}, out.Column(1))
	require.Equal(t, []float64{5, 6}, out.Column(2))
}

func TestReshapeRoundTrip(t *testing.T) {
	in := table.New()
	require.NoError(t, in.AddColumn("a", []float64{1, 2, 3, 4}))
	require.NoError(t, in.AddColumn("b", []float64{5, 6, 7, 8}))
	require.NoError(t, in.AddColumn("c", []float64{9, 10, 11, 12}))

	shapes := [][2]int{{2, 6}, {6, 2}, {12, 1}, {1, 12}, {3, 4}}
	for _, shape := range shapes {
		mid, err := table.Reshape(in, shape[0], shape[1])
		require.NoError(t, err, "shape %v", shape)

		back, err := table.Reshape(mid, 4, 3)
		require.NoError(t, err, "shape %v", shape)

		for i := 0; i < in.NumCols(); i++ {
			require.Equal(t, in.Column(i), back.Column(i), "shape %v column %d", shape, i)
		}
	}
}

func TestReshapeDimensionMismatch(t *testing.T) {
	in := table.New()
	require.NoError(t, in.AddColumn("a", []float64{1, 2, 3}))
	require.NoError(t, in.AddColumn("b", []float64{4, 5, 6}))

	for _, shape := range [][2]int{{4, 2}, {0, 0}, {6, 2}, {-3, -2}} {
		out, err := table.Reshape(in, shape[0], shape[1])
		require.ErrorIs(t, err, table.ErrDimensionMismatch, "shape %v", shape)
		require.Nil(t, out, "no partial output for shape %v", shape)
	}

	_, err := table.Reshape(in, 4, 2)
	require.Contains(t, err.Error(), "6 elements")
	require.Contains(t, err.Error(), "wants 8")
}

func TestReshapeOutputOwnsStorage(t *testing.T) {
	in := table.New()
	require.NoError(t, in.AddColumn("a", []float64{1, 2, 3}))

	out, err := table.Reshape(in, 3, 1)
	require.NoError(t, err)

	out.Column(0)[0] = 99
	require.Equal(t, []float64{1, 2, 3}, in.Column(0), "input must not alias output")
}

func TestReshapeEmptyTable(t *testing.T) {
	out, err := table.Reshape(table.New(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, out.NumElements())
}

func TestAddColumnRagged(t *testing.T) {
	in := table.New()
	require.NoError(t, in.AddColumn("a", []float64{1, 2, 3}))
	err := in.AddColumn("b", []float64{1, 2})
	require.ErrorIs(t, err, table.ErrRaggedColumn)
	require.Equal(t, 1, in.NumCols(), "failed add must not modify the table")
}

func TestAddColumnCopiesValues(t *testing.T) {
	values := []float64{1, 2, 3}
	in := table.New()
	require.NoError(t, in.AddColumn("a", values))

	values[0] = 99
	require.Equal(t, []float64{1, 2, 3}, in.Column(0))
}
