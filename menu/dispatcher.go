// SPDX-License-Identifier: MIT

// Package menu routes operator tokens typed at the console to SquareMatrix
// operations and runs the interactive prompt loop.
//
// Two interchangeable dispatchers are provided:
//
//	chain:  handlers linked in sequence; each fires on a substring match.
//	switch: the input is split into tokens; each token is routed by a
//	        switch over its kind to a function-valued matrix operation.
package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/squarematrix/config"
	"github.com/katalvlaran/squarematrix/matrix"
	"go.uber.org/zap"
)

var (
	// ErrUnknownMode is returned by NewDispatcher for an unsupported mode.
	ErrUnknownMode = errors.New("menu: unknown dispatch mode")

	// ErrBadRequest is returned for a request without operands or output.
	ErrBadRequest = errors.New("menu: incomplete request")
)

// Request is one line of operations applied to a pair of matrices.
type Request struct {
	Input  string
	First  *matrix.SquareMatrix
	Second *matrix.SquareMatrix
	Out    *Printer
}

func (r *Request) validate() error {
	if r == nil || r.First == nil || r.Second == nil || r.Out == nil {
		return ErrBadRequest
	}

	return nil
}

// Dispatcher executes the operations named in a request.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *Request) error
}

// Compile-time assertions.
var (
	_ Dispatcher = (*Chain)(nil)
	_ Dispatcher = (*Switchboard)(nil)
)

// NewDispatcher returns the dispatcher for mode (config.DispatchChain or
// config.DispatchSwitch).
func NewDispatcher(mode string, log *zap.Logger) (Dispatcher, error) {
	switch mode {
	case config.DispatchChain:
		return NewChain(log), nil
	case config.DispatchSwitch:
		return NewSwitchboard(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
