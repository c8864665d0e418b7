// SPDX-License-Identifier: MIT

package menu

import (
	"fmt"
	"io"

	"github.com/katalvlaran/squarematrix/matrix"
)

// Result titles per operator token. Both dispatchers print through these
// tables so the chain and the switch produce identical output.
var (
	binaryTitles = map[string]string{
		matrix.TokenAdd: "Result of addition:",
		matrix.TokenSub: "Result of subtraction:",
		matrix.TokenMul: "Result of multiplication:",
	}
	unaryTitles = map[string]string{
		matrix.TokenTranspose:   "Transposed matrix %d:",
		matrix.TokenDiagonalize: "Matrix %d in diagonal form:",
	}
	scalarLabels = map[string]string{
		matrix.TokenDeterminant: "Determinant of matrix %d: ",
		matrix.TokenTrace:       "Trace of matrix %d: ",
	}
)

// Printer writes dispatch results to an io.Writer. The first write error is
// kept and every later write becomes a no-op (see Err).
type Printer struct {
	w     io.Writer
	style Styler
	err   error
}

// NewPrinter returns a Printer on w. A nil style renders plain text.
func NewPrinter(w io.Writer, style Styler) *Printer {
	if style == nil {
		style = PlainStyler{}
	}

	return &Printer{w: w, style: style}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

// Printf formats to the underlying writer.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Header prints s on its own line through the header style.
func (p *Printer) Header(s string) {
	p.Printf("%s\n", p.style.Header(s))
}

// Matrix prints m followed by a blank line.
func (p *Printer) Matrix(m *matrix.SquareMatrix) {
	p.Printf("%s\n", m)
}

// Failure prints an operation error followed by a blank line.
func (p *Printer) Failure(err error) {
	p.Printf("%s\n\n", p.style.Error("Error: "+err.Error()))
}

// binary runs an arithmetic delegate and prints its result or its error.
func (p *Printer) binary(token string, op matrix.BinaryOp, a, b *matrix.SquareMatrix) error {
	p.Header(binaryTitles[token])
	res, err := op(a, b)
	if err != nil {
		p.Failure(err)
		return err
	}
	p.Matrix(res)

	return nil
}

// comparison prints "Matrix 1 <tok> Matrix 2: <bool>".
func (p *Printer) comparison(token string, cmp matrix.Comparison, a, b *matrix.SquareMatrix) {
	p.Printf("Matrix 1 %s Matrix 2: %t\n\n", token, cmp(a, b))
}

// unary applies op to both matrices in turn.
func (p *Printer) unary(token string, op matrix.UnaryOp, a, b *matrix.SquareMatrix) error {
	var firstErr error
	for i, m := range []*matrix.SquareMatrix{a, b} {
		p.Header(fmt.Sprintf(unaryTitles[token], i+1))
		res, err := m.Apply(op)
		if err != nil {
			p.Failure(err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		p.Matrix(res)
	}

	return firstErr
}

// scalar prints one line per matrix, then a blank line.
func (p *Printer) scalar(token string, op matrix.ScalarOp, a, b *matrix.SquareMatrix) error {
	var firstErr error
	for i, m := range []*matrix.SquareMatrix{a, b} {
		v, err := op(m)
		if err != nil {
			p.Printf(scalarLabels[token], i+1)
			p.Printf("%s\n", p.style.Error(err.Error()))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		p.Printf(scalarLabels[token]+"%d\n", i+1, v)
	}
	p.Printf("\n")

	return firstErr
}
