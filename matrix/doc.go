// Package matrix implements SquareMatrix, an n×n integer matrix value type.
//
// The package provides:
//
//   - Constructors that normalize flat (FromFlat) or nested (FromRows) data
//     into a square shape, plus New, Identity and Random.
//   - Operators as functions: Add, Sub, Mul, and the sum-based ordering
//     Compare / Less / LessOrEqual / Greater / GreaterOrEqual / Equal / NotEqual.
//   - Determinant by recursive cofactor expansion (Minor), Transpose, Trace and
//     Diagonalize (off-diagonal elements zeroed; no eigenvalues involved).
//   - Function-valued operations (UnaryOp, ScalarOp, BinaryOp, Comparison)
//     looked up by operator token for command dispatchers.
//
// All arithmetic is exact integer arithmetic; there is no floating point,
// pivoting or numerical-stability policy. Errors are package sentinels
// (see errors.go) matched with errors.Is.
package matrix
