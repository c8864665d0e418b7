// SPDX-License-Identifier: MIT
// Package matrix provides the operations of the SquareMatrix value type:
// element-wise addition and subtraction, matrix multiplication, transpose,
// trace, diagonalization and the cofactor-expansion determinant.
// All functions perform strict fail-fast validation and return clear errors
// on size mismatches.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates exactly one result.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opTrace       = "Trace"
	opDiagonalize = "Diagonalize"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
)

// matrixErrorf wraps err with an operation tag, preserving the wrapped error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateBinary(a, b).
//   - Stage 2: single flat loop 0..n²-1 over both backing slices.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the new result.
func addSub(a, b *SquareMatrix, sign int, opTag string) (*SquareMatrix, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &SquareMatrix{n: a.n, data: make([]int, len(a.data))}
	for idx := range res.data { // deterministic 0..n²-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDifferentSizes (extension mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add(a, b *SquareMatrix) (*SquareMatrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDifferentSizes (extension mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Sub(a, b *SquareMatrix) (*SquareMatrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateBinary(a, b); both operands must share one extension.
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loop; one allocation for C.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDifferentSizes (extension mismatch).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *SquareMatrix) (*SquareMatrix, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.n
	res := &SquareMatrix{n: n, data: make([]int, n*n)}
	var i, j, k, av, rowA, rowB int
	for i = 0; i < n; i++ {
		rowA = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // nothing to accumulate
			}
			rowB = k * n
			for j = 0; j < n; j++ {
				res.data[rowA+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(n²).
func Transpose(m *SquareMatrix) (*SquareMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	n := m.n
	res := &SquareMatrix{n: n, data: make([]int, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[j*n+i] = m.data[i*n+j]
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i].
// Complexity: O(n).
func Trace(m *SquareMatrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	trace := 0
	for i := 0; i < m.n; i++ {
		trace += m.data[i*m.n+i]
	}

	return trace, nil
}

// Diagonalize returns a copy of m with every off-diagonal element zeroed.
// This is not an eigen-decomposition: the diagonal is kept as is.
// Complexity: O(n²).
func Diagonalize(m *SquareMatrix) (*SquareMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagonalize, err)
	}

	n := m.n
	res := &SquareMatrix{n: n, data: make([]int, n*n)}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = m.data[i*n+i]
	}

	return res, nil
}

// Minor returns the (n-1)×(n-1) submatrix of m without row excludedRow and
// column excludedCol.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad index),
//     ErrInvalidDimensions (a 1×1 matrix has no minor).
//
// Complexity:
//   - Time O(n²), Space O((n-1)²).
func Minor(m *SquareMatrix, excludedRow, excludedCol int) (*SquareMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, excludedRow); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, excludedCol); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.n == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	return minorOf(m, excludedRow, excludedCol), nil
}

// minorOf is the unchecked kernel behind Minor; indices must be valid and n > 1.
func minorOf(m *SquareMatrix, excludedRow, excludedCol int) *SquareMatrix {
	n := m.n
	res := &SquareMatrix{n: n - 1, data: make([]int, 0, (n-1)*(n-1))}
	var i, j int
	for i = 0; i < n; i++ {
		if i == excludedRow {
			continue
		}
		for j = 0; j < n; j++ {
			if j == excludedCol {
				continue
			}
			res.data = append(res.data, m.data[i*n+j])
		}
	}

	return res
}

// Determinant computes det(m) by recursive cofactor expansion along row 0:
//
//	det(m) = Σ_j (-1)^j · m[0,j] · det(Minor(m, 0, j)),  det([x]) = x.
//
// Exact in integers (overflow wraps like any int arithmetic).
// Complexity: O(n!), intended for the small matrices typed at the prompt.
func Determinant(m *SquareMatrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(m), nil
}

func determinant(m *SquareMatrix) int {
	if m.n == 1 {
		return m.data[0]
	}

	det := 0
	for j := 0; j < m.n; j++ {
		if m.data[j] == 0 {
			continue // zero cofactor weight
		}
		term := m.data[j] * determinant(minorOf(m, 0, j))
		if j%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}

	return det
}
