// SPDX-License-Identifier: MIT

// Package menu - chain of responsibility.
//
// Purpose:
//   - One handler per matrix operation, linked in a fixed order.
//   - A handler fires when its token occurs anywhere in the user input
//     (substring match, so "<=" also fires "<" and ">=" also fires ">"),
//     prints its result and ALWAYS forwards the request to the next handler.
//
// Notes:
//   - Operation failures (e.g. different sizes) are printed and logged; they do
//     not stop the chain. Only write errors and context cancellation do.

package menu

import (
	"context"
	"strings"

	"github.com/katalvlaran/squarematrix/matrix"
	"go.uber.org/zap"
)

// Handler is one link of the chain.
type Handler interface {
	// SetNext links next after the receiver and returns next, so links can be
	// chained fluently: a.SetNext(b).SetNext(c).
	SetNext(next Handler) Handler

	// Handle processes req and forwards it down the chain.
	Handle(ctx context.Context, req *Request) error
}

// link carries the shared state of every handler.
type link struct {
	next  Handler
	token string
	log   *zap.Logger
}

func newLink(token string, log *zap.Logger) link {
	if log == nil {
		log = zap.NewNop()
	}

	return link{token: token, log: log}
}

// SetNext implements Handler.
func (l *link) SetNext(next Handler) Handler {
	l.next = next
	return next
}

func (l *link) matches(input string) bool {
	return strings.Contains(input, l.token)
}

// forward passes req to the next handler once the current one is done.
func (l *link) forward(ctx context.Context, req *Request) error {
	if err := req.Out.Err(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.next == nil {
		return nil
	}

	return l.next.Handle(ctx, req)
}

func (l *link) fired(err error) {
	if err != nil {
		l.log.Warn("operation failed", zap.String("token", l.token), zap.Error(err))
		return
	}
	l.log.Debug("operation done", zap.String("token", l.token))
}

// ---------- Handlers ----------

// BinaryHandler prints the result of an arithmetic operator.
type BinaryHandler struct {
	link
	op matrix.BinaryOp
}

// Handle implements Handler.
func (h *BinaryHandler) Handle(ctx context.Context, req *Request) error {
	if h.matches(req.Input) {
		h.fired(req.Out.binary(h.token, h.op, req.First, req.Second))
	}

	return h.forward(ctx, req)
}

// ComparisonHandler prints the outcome of a sum-based comparison.
type ComparisonHandler struct {
	link
	cmp matrix.Comparison
}

// Handle implements Handler.
func (h *ComparisonHandler) Handle(ctx context.Context, req *Request) error {
	if h.matches(req.Input) {
		req.Out.comparison(h.token, h.cmp, req.First, req.Second)
		h.fired(nil)
	}

	return h.forward(ctx, req)
}

// UnaryHandler prints a derived matrix for each operand.
type UnaryHandler struct {
	link
	op matrix.UnaryOp
}

// Handle implements Handler.
func (h *UnaryHandler) Handle(ctx context.Context, req *Request) error {
	if h.matches(req.Input) {
		h.fired(req.Out.unary(h.token, h.op, req.First, req.Second))
	}

	return h.forward(ctx, req)
}

// ScalarHandler prints an integer characteristic for each operand.
type ScalarHandler struct {
	link
	op matrix.ScalarOp
}

// Handle implements Handler.
func (h *ScalarHandler) Handle(ctx context.Context, req *Request) error {
	if h.matches(req.Input) {
		h.fired(req.Out.scalar(h.token, h.op, req.First, req.Second))
	}

	return h.forward(ctx, req)
}

// ---------- Constructors ----------

// NewAdditionHandler fires on "+" and prints a + b.
func NewAdditionHandler(log *zap.Logger) Handler {
	return &BinaryHandler{link: newLink(matrix.TokenAdd, log), op: matrix.Add}
}

// NewSubtractionHandler fires on "-" and prints a - b.
func NewSubtractionHandler(log *zap.Logger) Handler {
	return &BinaryHandler{link: newLink(matrix.TokenSub, log), op: matrix.Sub}
}

// NewMultiplicationHandler fires on "*" and prints a × b.
func NewMultiplicationHandler(log *zap.Logger) Handler {
	return &BinaryHandler{link: newLink(matrix.TokenMul, log), op: matrix.Mul}
}

// NewLessThanHandler fires on "<" and prints whether sum(a) < sum(b).
func NewLessThanHandler(log *zap.Logger) Handler {
	return &ComparisonHandler{link: newLink(matrix.TokenLess, log), cmp: matrix.Less}
}

// NewLessThanOrEqualHandler fires on "<=" and prints whether sum(a) <= sum(b).
func NewLessThanOrEqualHandler(log *zap.Logger) Handler {
	return &ComparisonHandler{link: newLink(matrix.TokenLessOrEqual, log), cmp: matrix.LessOrEqual}
}

// NewGreaterThanHandler fires on ">" and prints whether sum(a) > sum(b).
func NewGreaterThanHandler(log *zap.Logger) Handler {
	return &ComparisonHandler{link: newLink(matrix.TokenGreater, log), cmp: matrix.Greater}
}

// NewGreaterThanOrEqualHandler fires on ">=" and prints whether sum(a) >= sum(b).
func NewGreaterThanOrEqualHandler(log *zap.Logger) Handler {
	return &ComparisonHandler{link: newLink(matrix.TokenGreaterOrEqual, log), cmp: matrix.GreaterOrEqual}
}

// NewEqualityHandler fires on "==" and prints whether the sums are equal.
func NewEqualityHandler(log *zap.Logger) Handler {
	return &ComparisonHandler{link: newLink(matrix.TokenEqual, log), cmp: matrix.Equal}
}

// NewInequalityHandler fires on "!=" and prints whether the sums differ.
func NewInequalityHandler(log *zap.Logger) Handler {
	return &ComparisonHandler{link: newLink(matrix.TokenNotEqual, log), cmp: matrix.NotEqual}
}

// NewTransposeHandler fires on "transpose" and prints both transposes.
func NewTransposeHandler(log *zap.Logger) Handler {
	return &UnaryHandler{link: newLink(matrix.TokenTranspose, log), op: matrix.Transpose}
}

// NewDeterminantHandler fires on "determinant" and prints both determinants.
func NewDeterminantHandler(log *zap.Logger) Handler {
	return &ScalarHandler{link: newLink(matrix.TokenDeterminant, log), op: matrix.Determinant}
}

// NewTraceHandler fires on "trace" and prints both traces.
func NewTraceHandler(log *zap.Logger) Handler {
	return &ScalarHandler{link: newLink(matrix.TokenTrace, log), op: matrix.Trace}
}

// NewDiagonalizeHandler fires on "diagonalize" and prints both diagonal forms.
func NewDiagonalizeHandler(log *zap.Logger) Handler {
	return &UnaryHandler{link: newLink(matrix.TokenDiagonalize, log), op: matrix.Diagonalize}
}

// Chain is a Dispatcher walking linked handlers from head to tail.
type Chain struct {
	head Handler
}

// NewChain links every operation handler in canonical order:
// + - * < <= > >= == != transpose determinant trace diagonalize.
func NewChain(log *zap.Logger) *Chain {
	head := NewAdditionHandler(log)
	head.
		SetNext(NewSubtractionHandler(log)).
		SetNext(NewMultiplicationHandler(log)).
		SetNext(NewLessThanHandler(log)).
		SetNext(NewLessThanOrEqualHandler(log)).
		SetNext(NewGreaterThanHandler(log)).
		SetNext(NewGreaterThanOrEqualHandler(log)).
		SetNext(NewEqualityHandler(log)).
		SetNext(NewInequalityHandler(log)).
		SetNext(NewTransposeHandler(log)).
		SetNext(NewDeterminantHandler(log)).
		SetNext(NewTraceHandler(log)).
		SetNext(NewDiagonalizeHandler(log))

	return &Chain{head: head}
}

// ChainFrom wraps an already linked chain starting at head.
func ChainFrom(head Handler) *Chain {
	return &Chain{head: head}
}

// Dispatch implements Dispatcher.
func (c *Chain) Dispatch(ctx context.Context, req *Request) error {
	if err := req.validate(); err != nil {
		return err
	}
	if c.head == nil {
		return nil
	}

	return c.head.Handle(ctx, req)
}
