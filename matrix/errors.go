// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with the operation
// tag via matrixErrorf; callers still match them with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> size mismatch.

var (
	// ErrInvalidDimensions indicates that the requested extension is outside
	// [1, MaxExtension] or that the input data holds no element at all.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrNonSquare signals nested input whose rows do not form a square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Minor) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDifferentSizes is returned by binary operations on matrices of
	// different extensions.
	ErrDifferentSizes = errors.New("matrix: matrices have different sizes")

	// ErrNilMatrix indicates that a nil *SquareMatrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownOperation is returned by the delegate lookups for a token
	// that names no operation.
	ErrUnknownOperation = errors.New("matrix: unknown operation")
)
