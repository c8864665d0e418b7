// Package matrix_test contains unit tests for SquareMatrix operations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/squarematrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Add / Sub / Mul ----------

func TestAdd_Succeeds(t *testing.T) {
	a := MustFlat(t, 1, 2, 3, 4)
	b := MustFlat(t, 4, 3, 2, 1)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{5, 5}, {5, 5}}, sum)

	// operands are untouched
	CompareExact(t, [][]int{{1, 2}, {3, 4}}, a)
	CompareExact(t, [][]int{{4, 3}, {2, 1}}, b)
}

func TestSub_Succeeds(t *testing.T) {
	a := MustRows(t, [][]int{{5, 4, 3}, {3, 2, 1}, {1, 0, -1}})
	b := MustRows(t, [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{4, 3, 2}, {2, 1, 0}, {0, -1, -2}}, diff)
}

func TestMul_Succeeds(t *testing.T) {
	a := MustFlat(t, 1, 2, 3, 4)
	b := MustFlat(t, 5, 6, 7, 8)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{19, 22}, {43, 50}}, p)

	// not commutative
	q, err := matrix.Mul(b, a)
	require.NoError(t, err)
	CompareExact(t, [][]int{{23, 34}, {31, 46}}, q)
}

func TestMul_ByIdentity(t *testing.T) {
	a := MustFlat(t, 6, 1, 1, 4, -2, 5, 2, 8, 7)
	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)

	p, err := matrix.Mul(a, id)
	require.NoError(t, err)
	CompareExact(t, a.Rows(), p)
}

func TestBinary_DifferentSizes(t *testing.T) {
	a := MustFlat(t, 1, 2, 3, 4)
	b := MustFlat(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	for name, op := range map[string]matrix.BinaryOp{
		"Add": matrix.Add,
		"Sub": matrix.Sub,
		"Mul": matrix.Mul,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := op(a, b)
			require.ErrorIs(t, err, matrix.ErrDifferentSizes)
			assert.Contains(t, err.Error(), name+":")
		})
	}
}

func TestBinary_NilOperand(t *testing.T) {
	a := MustFlat(t, 1)
	_, err := matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Transpose / Trace / Diagonalize ----------

func TestTranspose(t *testing.T) {
	m := MustFlat(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, tr)

	// involution
	back, err := matrix.T(tr)
	require.NoError(t, err)
	CompareExact(t, m.Rows(), back)
}

func TestTrace(t *testing.T) {
	m := MustFlat(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 15, tr)

	_, err = matrix.Trace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDiagonalize(t *testing.T) {
	m := MustFlat(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	d, err := matrix.Diagonalize(m)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 0, 0}, {0, 5, 0}, {0, 0, 9}}, d)
	// source untouched
	require.Equal(t, 2, MustAt(t, m, 0, 1))

	// delegate form
	d2, err := m.Apply(matrix.Diagonalize)
	require.NoError(t, err)
	CompareExact(t, d.Rows(), d2)
}

// ---------- Minor / Determinant ----------

func TestMinor(t *testing.T) {
	m := MustFlat(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	mn, err := matrix.Minor(m, 1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 3}, {7, 9}}, mn)

	mn, err = matrix.Minor(m, 0, 2)
	require.NoError(t, err)
	CompareExact(t, [][]int{{4, 5}, {7, 8}}, mn)
}

func TestMinor_Errors(t *testing.T) {
	m := MustFlat(t, 1, 2, 3, 4)
	_, err := matrix.Minor(m, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(m, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Minor(MustFlat(t, 7), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDeterminant(t *testing.T) {
	for _, tc := range []struct {
		name  string
		elems []int
		want  int
	}{
		{"1x1", []int{-7}, -7},
		{"2x2", []int{1, 2, 3, 4}, -2},
		{"3x3", []int{6, 1, 1, 4, -2, 5, 2, 8, 7}, -306},
		{"3x3 singular", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 0},
		{"4x4 triangular", []int{2, 1, 3, 4, 0, 3, 1, 2, 0, 0, 4, 5, 0, 0, 0, 5}, 120},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(MustFlat(t, tc.elems...))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDeterminant_Identity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("I%d", n), func(t *testing.T) {
			id, err := matrix.Identity(n)
			require.NoError(t, err)
			d, err := matrix.Det(id)
			require.NoError(t, err)
			require.Equal(t, 1, d)
		})
	}
}

// det(A·B) = det(A)·det(B) and det(Aᵀ) = det(A).
func TestDeterminant_Properties(t *testing.T) {
	a, err := matrix.Random(4, matrix.WithSeed(7), matrix.WithRange(-5, 5))
	require.NoError(t, err)
	b, err := matrix.Random(4, matrix.WithSeed(11), matrix.WithRange(-5, 5))
	require.NoError(t, err)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	da, _ := matrix.Determinant(a)
	db, _ := matrix.Determinant(b)
	dp, _ := matrix.Determinant(p)
	require.Equal(t, da*db, dp)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	dat, _ := matrix.Determinant(at)
	require.Equal(t, da, dat)
}

// ---------- Facades ----------

func TestSymmetrize(t *testing.T) {
	s, err := matrix.Symmetrize(MustFlat(t, 1, 2, 3, 4))
	require.NoError(t, err)
	CompareExact(t, [][]int{{2, 5}, {5, 8}}, s)
}

func TestPower(t *testing.T) {
	fib := MustFlat(t, 1, 1, 1, 0)

	p, err := matrix.Power(fib, 10)
	require.NoError(t, err)
	CompareExact(t, [][]int{{89, 55}, {55, 34}}, p)

	p, err = matrix.Power(fib, 0)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 0}, {0, 1}}, p)

	_, err = matrix.Power(fib, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
