// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero n×n matrix. Thin alias of New.
func NewZeros(n int) (*SquareMatrix, error) { return New(n) }

// ZerosLike returns a new zero matrix with the extension of m.
func ZerosLike(m *SquareMatrix) (*SquareMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New(m.n)
}

// IdentityLike returns I with the extension of m.
func IdentityLike(m *SquareMatrix) (*SquareMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.n)
}

// ---------- Operator aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: a + b.
func Sum(a, b *SquareMatrix) (*SquareMatrix, error) { return Add(a, b) }

// Diff is an alias for Sub: a − b.
func Diff(a, b *SquareMatrix) (*SquareMatrix, error) { return Sub(a, b) }

// Product is an alias for Mul: a × b.
func Product(a, b *SquareMatrix) (*SquareMatrix, error) { return Mul(a, b) }

// T is an alias for Transpose: mᵀ.
func T(m *SquareMatrix) (*SquareMatrix, error) { return Transpose(m) }

// Det is an alias for Determinant.
func Det(m *SquareMatrix) (int, error) { return Determinant(m) }

// ---------- Convenience facades (compositions only) ----------

// Symmetrize returns m + mᵀ. Composition: Transpose → Add.
// Stays in integers, so unlike the textbook (m + mᵀ)/2 it is not halved.
func Symmetrize(m *SquareMatrix) (*SquareMatrix, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return sum, nil
}

// Power returns m^k for k >= 0 by repeated squaring; m^0 is the identity.
// A negative k yields ErrInvalidDimensions.
func Power(m *SquareMatrix, k int) (*SquareMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Power", err)
	}
	if k < 0 {
		return nil, matrixErrorf("Power", ErrInvalidDimensions)
	}

	res, err := Identity(m.n)
	if err != nil {
		return nil, matrixErrorf("Power", err)
	}
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if res, err = Mul(res, base); err != nil {
				return nil, matrixErrorf("Power", err)
			}
		}
		if k >>= 1; k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf("Power", err)
			}
		}
	}

	return res, nil
}
