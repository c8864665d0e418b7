// SPDX-License-Identifier: MIT

// Package matrix - SquareMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major integer buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Normalize flat and nested integer input into an n×n shape from a single place.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set: O(1); Clone: O(n²); FromFlat/FromRows: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromFlat = "FromFlat" // ctor tag
	ctxFromRows = "FromRows" // ctor tag
)

// MaxExtension bounds the side length accepted by every constructor.
// MaxExtension² elements fit in memory and never overflow int.
const MaxExtension = 4096

// ---------- Formatting literals ----------
const (
	_fmtWide   = " "  // prefix for negative or multi-digit elements
	_fmtNarrow = "  " // prefix for single-digit non-negative elements
	_fmtRowEnd = "\n"
)

// squareErrorf wraps an error with a uniform SquareMatrix context and callsite indices.
// Keeps the sentinel reachable via %w.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SquareMatrix.%s(%d,%d): %w", method, row, col, err)
}

// SquareMatrix is a concrete row-major n×n integer matrix.
//   - n is the extension (side length).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type SquareMatrix struct {
	n    int   // extension, always >= 1 for matrices built by constructors
	data []int // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*SquareMatrix)(nil)

// New creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate 0 < n <= MaxExtension; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int) (*SquareMatrix, error) {
	// Validate shape.
	if err := validExtension(n); err != nil {
		return nil, err
	}

	// make() zero-fills deterministically.
	return &SquareMatrix{n: n, data: make([]int, n*n)}, nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
func Identity(n int) (*SquareMatrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// validExtension reports ErrInvalidDimensions for n outside [1, MaxExtension].
func validExtension(n int) error {
	if n <= 0 || n > MaxExtension {
		return ErrInvalidDimensions
	}

	return nil
}

// extensionOf returns ⌊√count⌋, the side length implied by count elements.
// The float estimate is corrected in integers so that large counts never
// round the wrong way.
func extensionOf(count int) int {
	n := int(math.Sqrt(float64(count)))
	for n*n > count {
		n--
	}
	for (n+1)*(n+1) <= count {
		n++
	}

	return n
}

// FromFlat builds a matrix from row-major elements.
// MAIN DESCRIPTION:
//   - Normalize a flat list of integers into the largest square it can fill.
//
// Implementation:
//   - Stage 1: extension = ⌊√len(elems)⌋; zero or above MaxExtension → ErrInvalidDimensions.
//   - Stage 2: copy the first extension² elements row by row.
//
// Behavior highlights:
//   - Trailing elements that do not complete a square are dropped.
//   - The input slice is copied; later writes to it do not leak into the matrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromFlat(elems ...int) (*SquareMatrix, error) {
	n := extensionOf(len(elems))
	if err := validExtension(n); err != nil {
		return nil, matrixErrorf(ctxFromFlat, err)
	}

	m := &SquareMatrix{n: n, data: make([]int, n*n)}
	copy(m.data, elems[:n*n])

	return m, nil
}

// FromRows builds a matrix from nested rows.
// The number of rows defines the extension and every row must hold exactly
// that many entries.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or longer than MaxExtension.
//   - ErrNonSquare when a row length differs from len(rows).
func FromRows(rows [][]int) (*SquareMatrix, error) {
	n := len(rows)
	if err := validExtension(n); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	m := &SquareMatrix{n: n, data: make([]int, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare))
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// MustFromFlat is FromFlat that panics on error.
// Intended for literals in tests and examples.
func MustFromFlat(elems ...int) *SquareMatrix {
	m, err := FromFlat(elems...)
	if err != nil {
		panic(err)
	}

	return m
}

// Extension returns the side length n.
// Complexity: O(1).
func (m *SquareMatrix) Extension() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *SquareMatrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, squareErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *SquareMatrix) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *SquareMatrix) Set(row, col, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory for copy.
func (m *SquareMatrix) Clone() *SquareMatrix {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &SquareMatrix{n: m.n, data: cp}
}

// Elements returns a flat row-major copy of the matrix contents.
func (m *SquareMatrix) Elements() []int {
	out := make([]int, len(m.data))
	copy(out, m.data)

	return out
}

// Rows returns the matrix as freshly allocated nested rows.
func (m *SquareMatrix) Rows() [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]int, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// SumOfElements returns Σ m[i,j].
// Ordering and equality between matrices are defined on this value.
func (m *SquareMatrix) SumOfElements() int {
	sum := 0
	for _, v := range m.data {
		sum += v
	}

	return sum
}

// IsTrue reports whether the matrix is "true" (its elements sum to 1).
func (m *SquareMatrix) IsTrue() bool { return m.SumOfElements() == 1 }

// IsFalse reports whether the matrix is "false" (its elements sum to 0).
// A matrix can be neither true nor false.
func (m *SquareMatrix) IsFalse() bool { return m.SumOfElements() == 0 }

// Apply runs a single-operand delegate on m and returns its result.
func (m *SquareMatrix) Apply(op UnaryOp) (*SquareMatrix, error) {
	if op == nil {
		return nil, ErrUnknownOperation
	}

	return op(m)
}

// String renders one row per line. Every element is preceded by a single
// space when it is negative or above 9 and by two spaces otherwise, which
// keeps single-digit columns aligned.
// Complexity: O(n²) for string construction.
func (m *SquareMatrix) String() string {
	var sb strings.Builder
	var i, j, v int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			v = m.data[i*m.n+j]
			if v < 0 || v > 9 {
				sb.WriteString(_fmtWide)
			} else {
				sb.WriteString(_fmtNarrow)
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}
