package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reshape reinterprets the elements of in as a table of rows x cols and
// returns the result as a fresh table with generated column names
// (Field0..FieldN-1). The element stream is the column-major read of the
// input (column 0 fully, then column 1, and so on) and each output column
// takes the next contiguous run of rows elements, so reshaping back to the
// original dimensions recovers the original element order exactly.
//
// Reshape fails with ErrDimensionMismatch when rows*cols differs from the
// input element count. The input is never modified and the output shares no
// storage with it.
func Reshape(in *Table, rows, cols int) (*Table, error) {
	total := in.NumElements()
	if rows < 0 || cols < 0 || rows*cols != total {
		return nil, fmt.Errorf("%w: source holds %d elements (%d rows x %d cols), target wants %d (%d rows x %d cols)",
			ErrDimensionMismatch, total, in.NumRows(), in.NumCols(), rows*cols, rows, cols)
	}

	out := New()
	if total == 0 {
		for j := 0; j < cols; j++ {
			if err := out.AddColumn(fieldName(j), nil); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	flat := make([]float64, 0, total)
	for i := 0; i < in.NumCols(); i++ {
		flat = append(flat, in.Column(i)...)
	}

	// Stage the flat stream as a cols x rows matrix so that each matrix row
	// is one output column.
	storage := mat.NewDense(cols, rows, flat)
	for j := 0; j < cols; j++ {
		if err := out.AddColumn(fieldName(j), storage.RawRowView(j)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func fieldName(i int) string { return fmt.Sprintf("Field%d", i) }
