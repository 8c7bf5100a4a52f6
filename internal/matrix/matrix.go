// Package matrix implements FeatureMatrix, a fixed-row-width, variable-
// row-count container of float32 feature vectors. It is the common
// currency every IV1 pipeline stage passes between them: block pixel
// data, per-block means, residuals, and VQ codebooks are all matrices,
// differing only in row width.
//
// Go has no value generics, so the row width is a runtime field checked
// by debugAssert rather than a compile-time parameter; the two widths
// that matter in practice, 3 (palette codewords) and 48 (4x4 detail
// blocks), are ordinary int values like any other.
package matrix

import "fmt"

const debugAssertions = false

func debugAssert(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Matrix is a FeatureMatrix<D>: an ordered sequence of rows, each a
// fixed-length vector of D float32 values, stored as one flat backing
// array for locality.
type Matrix struct {
	width int
	data  []float32
}

// New allocates a Matrix with the given row width and row count, with
// every element zero-initialized.
func New(width, rows int) *Matrix {
	if width <= 0 {
		panic("matrix: width must be positive")
	}
	if rows < 0 {
		panic("matrix: rows must be non-negative")
	}
	return &Matrix{width: width, data: make([]float32, width*rows)}
}

// Width returns the fixed row width D.
func (m *Matrix) Width() int { return m.width }

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	if m.width == 0 {
		return 0
	}
	return len(m.data) / m.width
}

// Row returns a mutable view of row i. Writes through the returned
// slice are writes to the matrix.
func (m *Matrix) Row(i int) []float32 {
	debugAssert(i >= 0 && i < m.Rows(), "matrix: row %d out of range (%d rows)", i, m.Rows())
	off := i * m.width
	return m.data[off : off+m.width : off+m.width]
}

// SetRow copies row into row i. len(row) must equal Width().
func (m *Matrix) SetRow(i int, row []float32) {
	debugAssert(len(row) == m.width, "matrix: row width mismatch: got %d, want %d", len(row), m.width)
	copy(m.Row(i), row)
}

// AppendRow grows the matrix by one row, copying the given values in,
// and returns the new row count.
func (m *Matrix) AppendRow(row []float32) int {
	debugAssert(len(row) == m.width, "matrix: row width mismatch: got %d, want %d", len(row), m.width)
	m.data = append(m.data, row...)
	return m.Rows()
}
