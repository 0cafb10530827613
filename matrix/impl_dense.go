// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own the grid exclusively: constructors and getters copy, never alias.
//   - Validate every in-place mutation BEFORE writing (no partial updates).
//
// Complexity quicksheet:
//   - NewDense/NewDenseFrom: O(r*c); At/Set: O(1); SetRow: O(c); SetColumn: O(r);
//     SetData: O(r*c); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // method tag for Dense.Row
	ctxColumn    = "Column"    // method tag for Dense.Column
	ctxSetRow    = "SetRow"    // method tag for Dense.SetRow
	ctxSetColumn = "SetColumn" // method tag for Dense.SetColumn
	ctxSetData   = "SetData"   // method tag for Dense.SetData
	ctxNewFrom   = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtCell     = " %8.4f" // 8-wide field, 4 decimals, one space separator
	_fmtRowClose = " ]\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation; matches ErrInvalidArgument).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds a Dense from a rectangular grid (grid[i] is row i).
// The grid is copied; later mutation of grid is not observed by the result.
//
// Implementation:
//   - Stage 1: validateGrid (non-empty, first row non-empty, all rows equal length).
//   - Stage 2: allocate r*c buffer and copy rows in order.
//
// Errors:
//   - ErrDimensionMismatch for an empty grid, an empty first row, or a ragged row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(grid [][]float64) (*Dense, error) {
	rows, cols, err := validateGrid(grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, err)
	}

	return &Dense{r: rows, c: cols, data: flattenGrid(grid, rows, cols)}, nil
}

// flattenGrid copies a validated rows×cols grid into a fresh row-major slice.
func flattenGrid(grid [][]float64, rows, cols int) []float64 {
	buf := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		copy(buf[i*cols:(i+1)*cols], grid[i])
	}

	return buf
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; an invalid index is an accepted failure
//     mode reported to the caller, not silently ignored.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrInvalidArgument when i is outside [0, Rows()).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrInvalidArgument)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j.
//
// Errors:
//   - ErrInvalidArgument when j is outside [0, Cols()).
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxColumn, j, ErrInvalidArgument)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RawGrid returns the contents as an independent [][]float64 (row i = out[i]).
// Complexity: O(r*c).
func (m *Dense) RawGrid() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// SetRow overwrites row i with a copy of row.
//
// Implementation:
//   - Stage 1: validate index (ErrInvalidArgument), then length (ErrDimensionMismatch).
//   - Stage 2: copy into the row's contiguous slot.
//
// Behavior highlights:
//   - On error nothing is written; all other rows are untouched on success.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SetRow(i int, row []float64) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetRow, i, ErrInvalidArgument)
	}
	if len(row) != m.c {
		return fmt.Errorf("Dense.%s(%d): len %d != cols %d: %w", ctxSetRow, i, len(row), m.c, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], row)

	return nil
}

// SetColumn overwrites column j with a copy of col (symmetric to SetRow).
//
// Errors:
//   - ErrInvalidArgument when j is outside [0, Cols()).
//   - ErrDimensionMismatch when len(col) != Rows().
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) SetColumn(j int, col []float64) error {
	if j < 0 || j >= m.c {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetColumn, j, ErrInvalidArgument)
	}
	if len(col) != m.r {
		return fmt.Errorf("Dense.%s(%d): len %d != rows %d: %w", ctxSetColumn, j, len(col), m.r, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = col[i]
	}

	return nil
}

// SetData replaces the whole grid and re-derives Rows/Cols from it.
// The replacement passes the same validation as NewDenseFrom; on failure the
// receiver is left exactly as it was.
//
// Errors:
//   - ErrDimensionMismatch for an empty or ragged grid.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) SetData(grid [][]float64) error {
	rows, cols, err := validateGrid(grid)
	if err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetData, err)
	}
	m.r, m.c, m.data = rows, cols, flattenGrid(grid, rows, cols)

	return nil
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is the concrete-typed variant used internally.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one line per row: "[" then each element as " %8.4f", then " ]".
//
//	[   1.0000   2.0000 ]
//	[   3.0000   4.0000 ]
//
// Negative zero prints as zero.
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	var v float64
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if v = m.data[base+j]; v == 0 {
				v = 0
			}
			fmt.Fprintf(&b, _fmtCell, v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// toDense returns m as *Dense: the same pointer when it already is one,
// otherwise a materialized copy read through At.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
