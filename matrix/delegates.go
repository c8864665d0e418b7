// SPDX-License-Identifier: MIT

// Package matrix: function-valued operations ("delegates").
//
// Purpose:
//   - Expose every operation of the package as a first-class function value so
//     dispatchers can select behavior by operator token.
//   - Keep the token → function mapping in one switch per operation kind.

package matrix

import "fmt"

// UnaryOp maps one matrix to another (transpose, diagonalize).
type UnaryOp func(m *SquareMatrix) (*SquareMatrix, error)

// ScalarOp reduces one matrix to an integer (determinant, trace).
type ScalarOp func(m *SquareMatrix) (int, error)

// BinaryOp combines two matrices of one extension (+, -, *).
type BinaryOp func(a, b *SquareMatrix) (*SquareMatrix, error)

// Comparison relates two matrices by their sums (<, <=, >, >=, ==, !=).
type Comparison func(a, b *SquareMatrix) bool

// Operator tokens understood by the lookups below.
const (
	TokenAdd            = "+"
	TokenSub            = "-"
	TokenMul            = "*"
	TokenLess           = "<"
	TokenLessOrEqual    = "<="
	TokenGreater        = ">"
	TokenGreaterOrEqual = ">="
	TokenEqual          = "=="
	TokenNotEqual       = "!="
	TokenTranspose      = "transpose"
	TokenDeterminant    = "determinant"
	TokenTrace          = "trace"
	TokenDiagonalize    = "diagonalize"
)

// Tokens lists every operator token in canonical dispatch order.
var Tokens = []string{
	TokenAdd, TokenSub, TokenMul,
	TokenLess, TokenLessOrEqual, TokenGreater, TokenGreaterOrEqual,
	TokenEqual, TokenNotEqual,
	TokenTranspose, TokenDeterminant, TokenTrace, TokenDiagonalize,
}

// Kind classifies a token by the delegate type that serves it.
type Kind int

const (
	KindUnknown Kind = iota
	KindBinary
	KindComparison
	KindUnary
	KindScalar
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindComparison:
		return "comparison"
	case KindUnary:
		return "unary"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// KindOf classifies token.
func KindOf(token string) Kind {
	switch token {
	case TokenAdd, TokenSub, TokenMul:
		return KindBinary
	case TokenLess, TokenLessOrEqual, TokenGreater, TokenGreaterOrEqual, TokenEqual, TokenNotEqual:
		return KindComparison
	case TokenTranspose, TokenDiagonalize:
		return KindUnary
	case TokenDeterminant, TokenTrace:
		return KindScalar
	default:
		return KindUnknown
	}
}

func unknownOp(token string) error {
	return fmt.Errorf("%q: %w", token, ErrUnknownOperation)
}

// BinaryOpFor returns the arithmetic delegate for token.
func BinaryOpFor(token string) (BinaryOp, error) {
	switch token {
	case TokenAdd:
		return Add, nil
	case TokenSub:
		return Sub, nil
	case TokenMul:
		return Mul, nil
	default:
		return nil, unknownOp(token)
	}
}

// ComparisonFor returns the comparison delegate for token.
func ComparisonFor(token string) (Comparison, error) {
	switch token {
	case TokenLess:
		return Less, nil
	case TokenLessOrEqual:
		return LessOrEqual, nil
	case TokenGreater:
		return Greater, nil
	case TokenGreaterOrEqual:
		return GreaterOrEqual, nil
	case TokenEqual:
		return Equal, nil
	case TokenNotEqual:
		return NotEqual, nil
	default:
		return nil, unknownOp(token)
	}
}

// UnaryOpFor returns the matrix-to-matrix delegate for token.
func UnaryOpFor(token string) (UnaryOp, error) {
	switch token {
	case TokenTranspose:
		return Transpose, nil
	case TokenDiagonalize:
		return Diagonalize, nil
	default:
		return nil, unknownOp(token)
	}
}

// ScalarOpFor returns the matrix-to-integer delegate for token.
func ScalarOpFor(token string) (ScalarOp, error) {
	switch token {
	case TokenDeterminant:
		return Determinant, nil
	case TokenTrace:
		return Trace, nil
	default:
		return nil, unknownOp(token)
	}
}
