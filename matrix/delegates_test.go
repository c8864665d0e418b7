package matrix_test

import (
	"testing"

	"github.com/katalvlaran/squarematrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_CoversAllTokens(t *testing.T) {
	for _, tok := range matrix.Tokens {
		assert.NotEqual(t, matrix.KindUnknown, matrix.KindOf(tok), tok)
	}
	assert.Equal(t, matrix.KindUnknown, matrix.KindOf("inverse"))
	assert.Equal(t, "unknown", matrix.KindOf("").String())
	assert.Equal(t, "binary", matrix.KindOf("*").String())
}

func TestLookups_MatchKind(t *testing.T) {
	for _, tok := range matrix.Tokens {
		t.Run(tok, func(t *testing.T) {
			var err error
			switch matrix.KindOf(tok) {
			case matrix.KindBinary:
				_, err = matrix.BinaryOpFor(tok)
			case matrix.KindComparison:
				_, err = matrix.ComparisonFor(tok)
			case matrix.KindUnary:
				_, err = matrix.UnaryOpFor(tok)
			case matrix.KindScalar:
				_, err = matrix.ScalarOpFor(tok)
			}
			require.NoError(t, err)
		})
	}
}

func TestLookups_Unknown(t *testing.T) {
	_, err := matrix.BinaryOpFor("<")
	require.ErrorIs(t, err, matrix.ErrUnknownOperation)
	_, err = matrix.ComparisonFor("+")
	require.ErrorIs(t, err, matrix.ErrUnknownOperation)
	_, err = matrix.UnaryOpFor("trace")
	require.ErrorIs(t, err, matrix.ErrUnknownOperation)
	_, err = matrix.ScalarOpFor("transpose")
	require.ErrorIs(t, err, matrix.ErrUnknownOperation)
}

func TestDelegates_Behave(t *testing.T) {
	a := MustFlat(t, 1, 2, 3, 4)
	b := MustFlat(t, 5, 6, 7, 8)

	mul, err := matrix.BinaryOpFor(matrix.TokenMul)
	require.NoError(t, err)
	p, err := mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{19, 22}, {43, 50}}, p)

	lt, err := matrix.ComparisonFor(matrix.TokenLess)
	require.NoError(t, err)
	require.True(t, lt(a, b))

	det, err := matrix.ScalarOpFor(matrix.TokenDeterminant)
	require.NoError(t, err)
	d, err := det(a)
	require.NoError(t, err)
	require.Equal(t, -2, d)

	tr, err := matrix.UnaryOpFor(matrix.TokenTranspose)
	require.NoError(t, err)
	at, err := a.Apply(tr)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 3}, {2, 4}}, at)
}
