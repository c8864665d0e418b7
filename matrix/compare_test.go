package matrix_test

import (
	"testing"

	"github.com/katalvlaran/squarematrix/matrix"
	"github.com/stretchr/testify/assert"
)

func TestCompare_SameExtension(t *testing.T) {
	small := MustFlat(t, 1, 2, 3, 4) // sum 10
	big := MustFlat(t, 5, 6, 7, 8)   // sum 26
	alsoTen := MustFlat(t, 10, 0, 0, 0)

	assert.Equal(t, -1, matrix.Compare(small, big))
	assert.Equal(t, 1, matrix.Compare(big, small))
	assert.Equal(t, 0, matrix.Compare(small, alsoTen))
	assert.Equal(t, 0, small.CompareTo(alsoTen))

	assert.True(t, matrix.Less(small, big))
	assert.True(t, matrix.LessOrEqual(small, big))
	assert.False(t, matrix.Greater(small, big))
	assert.False(t, matrix.GreaterOrEqual(small, big))

	assert.True(t, matrix.LessOrEqual(small, alsoTen))
	assert.True(t, matrix.GreaterOrEqual(small, alsoTen))
	assert.False(t, matrix.Less(small, alsoTen))

	assert.True(t, matrix.Equal(small, alsoTen))
	assert.True(t, small.Equal(alsoTen))
	assert.False(t, matrix.NotEqual(small, alsoTen))
	assert.True(t, matrix.NotEqual(small, big))
}

// Different extensions always compare as "less", in both directions.
func TestCompare_DifferentExtension(t *testing.T) {
	a := MustFlat(t, 100)
	b := MustFlat(t, 1, 1, 1, 1)

	assert.Equal(t, -1, matrix.Compare(a, b))
	assert.Equal(t, -1, matrix.Compare(b, a))
	assert.True(t, matrix.Less(a, b))
	assert.True(t, matrix.Less(b, a))
	assert.False(t, matrix.GreaterOrEqual(a, b))
}

// Equality ignores the extension.
func TestEqual_IgnoresExtension(t *testing.T) {
	assert.True(t, matrix.Equal(MustFlat(t, 4), MustFlat(t, 1, 1, 1, 1)))
}

func TestEqual_Nil(t *testing.T) {
	assert.True(t, matrix.Equal(nil, nil))
	assert.False(t, matrix.Equal(MustFlat(t, 0), nil))
	assert.Equal(t, -1, matrix.Compare(nil, MustFlat(t, 0)))
}
