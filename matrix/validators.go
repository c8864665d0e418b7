// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Size).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *SquareMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameExtension ensures a and b have equal extensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameExtension(a, b *SquareMatrix) error {
	if a.n != b.n {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameExtension(%d,%d)", a.n, b.n),
			ErrDifferentSizes,
		)
	}

	return nil
}

// ValidateBinary is the composite guard for two-operand kernels:
// NotNil(a) → NotNil(b) → SameExtension(a, b).
func ValidateBinary(a, b *SquareMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameExtension(a, b)
}

// ValidateIndex checks 0 ≤ i < n for a row or column index.
func ValidateIndex(m *SquareMatrix, i int) error {
	if i < 0 || i >= m.n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}
