// SPDX-License-Identifier: MIT

package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/squarematrix/matrix"
	"go.uber.org/zap"
)

// Switchboard dispatches whitespace-separated tokens one by one. Unlike the
// chain it matches whole tokens only, in the order typed, and a repeated
// token runs again.
type Switchboard struct {
	log *zap.Logger
}

// NewSwitchboard returns a Switchboard logging to log (nil = no logging).
func NewSwitchboard(log *zap.Logger) *Switchboard {
	if log == nil {
		log = zap.NewNop()
	}

	return &Switchboard{log: log}
}

// Dispatch implements Dispatcher.
func (s *Switchboard) Dispatch(ctx context.Context, req *Request) error {
	if err := req.validate(); err != nil {
		return err
	}

	for _, tok := range strings.Fields(req.Input) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.dispatchToken(tok, req)
		if err := req.Out.Err(); err != nil {
			return err
		}
	}

	return nil
}

// dispatchToken routes raw, as typed, by its lowercased form.
func (s *Switchboard) dispatchToken(raw string, req *Request) {
	var err error
	tok := strings.ToLower(raw)
	a, b, out := req.First, req.Second, req.Out

	switch matrix.KindOf(tok) {
	case matrix.KindBinary:
		var op matrix.BinaryOp
		if op, err = matrix.BinaryOpFor(tok); err == nil {
			err = out.binary(tok, op, a, b)
		}
	case matrix.KindComparison:
		var cmp matrix.Comparison
		if cmp, err = matrix.ComparisonFor(tok); err == nil {
			out.comparison(tok, cmp, a, b)
		}
	case matrix.KindUnary:
		var op matrix.UnaryOp
		if op, err = matrix.UnaryOpFor(tok); err == nil {
			err = out.unary(tok, op, a, b)
		}
	case matrix.KindScalar:
		var op matrix.ScalarOp
		if op, err = matrix.ScalarOpFor(tok); err == nil {
			err = out.scalar(tok, op, a, b)
		}
	default:
		out.Printf("%s\n\n", out.style.Error(fmt.Sprintf("unknown operation %q", raw)))
		s.log.Info("unknown operation", zap.String("token", raw))
		return
	}

	if err != nil {
		s.log.Warn("operation failed", zap.String("token", tok), zap.Error(err))
		return
	}
	s.log.Debug("operation done", zap.String("token", tok))
}
