package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/squarematrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestRandom_DefaultRange(t *testing.T) {
	m, err := matrix.Random(5, matrix.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 5, m.Extension())
	for _, v := range m.Elements() {
		require.GreaterOrEqual(t, v, matrix.DefaultMinElement)
		require.Less(t, v, matrix.DefaultMaxElement)
	}
}

func TestRandom_CustomRange(t *testing.T) {
	m, err := matrix.Random(4, matrix.WithRange(3, 5), matrix.WithSeed(2))
	require.NoError(t, err)
	for _, v := range m.Elements() {
		require.Contains(t, []int{3, 4}, v)
	}
}

func TestRandom_SeedIsReproducible(t *testing.T) {
	a, err := matrix.Random(3, matrix.WithSeed(42))
	require.NoError(t, err)
	b, err := matrix.Random(3, matrix.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	CompareExact(t, a.Rows(), b)
}

func TestRandom_InvalidDimensions(t *testing.T) {
	for _, n := range []int{0, matrix.MaxExtension + 1, 3037000500} {
		_, err := matrix.Random(n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "n=%d", n)
	}

	m := MustFlat(t, 1, 2, 3, 4)
	require.ErrorIs(t, m.AutoFill(3037000500), matrix.ErrInvalidDimensions)
	require.Equal(t, 2, m.Extension())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithRange(5, 5) })
	require.Panics(t, func() { matrix.WithRange(6, 5) })
	require.Panics(t, func() { matrix.WithRand(nil) })
}

func TestAutoFill(t *testing.T) {
	m := MustFlat(t, 1)
	require.NoError(t, m.AutoFill(3, matrix.WithRange(0, 1)))
	require.Equal(t, 3, m.Extension())
	require.True(t, m.IsFalse())

	require.ErrorIs(t, m.AutoFill(0), matrix.ErrInvalidDimensions)
	require.Equal(t, 3, m.Extension())

	var nilM *matrix.SquareMatrix
	require.ErrorIs(t, nilM.AutoFill(2), matrix.ErrNilMatrix)
}
