// SPDX-License-Identifier: MIT

package matrix

// Ordering and equality of square matrices are defined on the sum of
// elements, not element by element:
//   - Compare orders matrices of one extension by their sums;
//     matrices of different extensions (or a nil operand) always compare as -1,
//     so both a < b and b < a hold for them.
//   - Equal compares sums only and ignores the extension.

// Compare returns -1, 0 or +1 as the sum of a is below, equal to or above the
// sum of b. It returns -1 when the extensions differ.
func Compare(a, b *SquareMatrix) int {
	if a == nil || b == nil || a.n != b.n {
		return -1
	}

	sa, sb := a.SumOfElements(), b.SumOfElements()
	switch {
	case sa > sb:
		return 1
	case sa == sb:
		return 0
	default:
		return -1
	}
}

// Less reports a < b.
func Less(a, b *SquareMatrix) bool { return Compare(a, b) < 0 }

// LessOrEqual reports a <= b.
func LessOrEqual(a, b *SquareMatrix) bool { return Compare(a, b) <= 0 }

// Greater reports a > b.
func Greater(a, b *SquareMatrix) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports a >= b.
func GreaterOrEqual(a, b *SquareMatrix) bool { return Compare(a, b) >= 0 }

// Equal reports whether a and b have the same sum of elements.
// Two nil matrices are equal; a nil and a non-nil one are not.
func Equal(a, b *SquareMatrix) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.SumOfElements() == b.SumOfElements()
}

// NotEqual is the negation of Equal.
func NotEqual(a, b *SquareMatrix) bool { return !Equal(a, b) }

// Equal is the method form of the package-level Equal.
func (m *SquareMatrix) Equal(other *SquareMatrix) bool { return Equal(m, other) }

// CompareTo is the method form of Compare.
func (m *SquareMatrix) CompareTo(other *SquareMatrix) int { return Compare(m, other) }
