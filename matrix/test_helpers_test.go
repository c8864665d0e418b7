// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/squarematrix/matrix"
	"github.com/stretchr/testify/require"
)

// MustFlat builds a matrix from row-major elements or fails the test.
func MustFlat(t *testing.T, elems ...int) *matrix.SquareMatrix {
	t.Helper()
	m, err := matrix.FromFlat(elems...)
	require.NoError(t, err)

	return m
}

// MustRows builds a matrix from nested rows or fails the test.
func MustRows(t *testing.T, rows [][]int) *matrix.SquareMatrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.SquareMatrix, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact fails the test with a row-level diff when m differs from want.
func CompareExact(t *testing.T, want [][]int, m *matrix.SquareMatrix) {
	t.Helper()
	if diff := cmp.Diff(want, m.Rows()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}
