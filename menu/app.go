// SPDX-License-Identifier: MIT

package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/squarematrix/matrix"
	"go.uber.org/zap"
)

// Prompts and messages of the interactive loop.
const (
	promptFirstExtension  = "Enter the extension of matrix 1 (one number, the matrix is square): "
	promptSecondExtension = "Enter the extension of matrix 2 (the same as matrix 1 to combine them): "
	promptElement         = "Enter element %d of the matrix: "
	promptOperations      = "Available operations: %s\nEnter operations separated by spaces: "
	promptContinue        = "Continue? "
	msgCreated            = "Matrix %d created:"
	msgNotInteger         = "%q is not an integer, try again.\n"
	msgExtensionRange     = "The extension must be between 1 and %d, try again.\n"
	msgFinished           = "Program finished.\n"
)

// stopAnswers end the loop at the continue prompt (case-insensitive).
var stopAnswers = map[string]bool{"no": true, "n": true, "нет": true, "quit": true, "exit": true}

// AppOption configures an App.
type AppOption func(*App)

// WithLogger sets the structured logger (default: no-op).
func WithLogger(log *zap.Logger) AppOption {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithStyler sets the console styler (default: plain text).
func WithStyler(s Styler) AppOption {
	return func(a *App) {
		if s != nil {
			a.style = s
		}
	}
}

// WithAutoFill generates matrix elements from [min, max) instead of reading
// them. seed 0 selects a time-based seed. Panics when min >= max.
func WithAutoFill(min, max int, seed int64) AppOption {
	rangeOpt := matrix.WithRange(min, max)
	return func(a *App) {
		s := seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		a.fill = []matrix.Option{rangeOpt, matrix.WithRand(rand.New(rand.NewSource(s)))}
	}
}

// inputLine is one line read from the input, or the error that ended it.
type inputLine struct {
	text string
	err  error
}

// App is the interactive console loop: read two matrices, read a line of
// operations, dispatch it, ask whether to continue.
//
// Run must not be called concurrently on the same App.
type App struct {
	in         *bufio.Scanner
	lines      <-chan inputLine
	out        *Printer
	dispatcher Dispatcher
	log        *zap.Logger
	style      Styler
	fill       []matrix.Option // non-nil ⇒ auto-fill
}

// NewApp returns an App reading from in and writing to out.
func NewApp(in io.Reader, out io.Writer, d Dispatcher, opts ...AppOption) *App {
	a := &App{
		in:         bufio.NewScanner(in),
		dispatcher: d,
		log:        zap.NewNop(),
		style:      PlainStyler{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.out = NewPrinter(out, a.style)

	return a
}

// Run executes iterations until the user declines to continue, the input is
// exhausted or ctx is cancelled. End of input is a normal exit unless ctx was
// cancelled first. Cancellation interrupts a pending read.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	a.lines = a.scan(done)

	err := a.loop(ctx)
	if errors.Is(err, io.EOF) {
		err = ctx.Err()
	}
	if err == nil {
		a.out.Printf(msgFinished)
		err = a.out.Err()
	}

	return err
}

func (a *App) loop(ctx context.Context) error {
	for iteration := 1; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.log.Debug("iteration started", zap.Int("iteration", iteration))

		first, err := a.readMatrix(ctx, 1, promptFirstExtension)
		if err != nil {
			return err
		}
		second, err := a.readMatrix(ctx, 2, promptSecondExtension)
		if err != nil {
			return err
		}

		a.out.Printf(promptOperations, strings.Join(matrix.Tokens, ", "))
		line, err := a.readLine(ctx)
		if err != nil {
			return err
		}

		req := &Request{Input: line, First: first, Second: second, Out: a.out}
		if err := a.dispatcher.Dispatch(ctx, req); err != nil {
			return err
		}

		a.out.Printf(promptContinue)
		answer, err := a.readLine(ctx)
		if err != nil {
			return err
		}
		a.log.Debug("iteration finished", zap.Int("iteration", iteration))
		if stopAnswers[strings.ToLower(strings.TrimSpace(answer))] {
			return nil
		}
	}
}

// readMatrix prompts for an extension and the elements of matrix idx.
// Extensions outside [1, matrix.MaxExtension] are asked again.
func (a *App) readMatrix(ctx context.Context, idx int, prompt string) (*matrix.SquareMatrix, error) {
	var m *matrix.SquareMatrix
	for {
		n, err := a.readInt(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if a.fill != nil {
			m, err = matrix.Random(n, a.fill...)
		} else {
			m, err = matrix.New(n)
		}
		if err == nil {
			break
		}
		if !errors.Is(err, matrix.ErrInvalidDimensions) {
			return nil, err
		}
		a.out.Printf(msgExtensionRange, matrix.MaxExtension)
	}
	if a.fill == nil {
		if err := a.readElements(ctx, m); err != nil {
			return nil, err
		}
	}
	a.out.Header(fmt.Sprintf(msgCreated, idx))
	a.out.Printf("%s", m)
	a.log.Debug("matrix created", zap.Int("matrix", idx), zap.Int("extension", m.Extension()))

	return m, a.out.Err()
}

// readElements fills m row by row from the input.
func (a *App) readElements(ctx context.Context, m *matrix.SquareMatrix) error {
	n := m.Extension()
	for k := 0; k < n*n; k++ {
		v, err := a.readInt(ctx, fmt.Sprintf(promptElement, k+1))
		if err != nil {
			return err
		}
		if err := m.Set(k/n, k%n, v); err != nil {
			return err
		}
	}

	return nil
}

// readInt prompts until the user types an integer.
func (a *App) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		a.out.Printf("%s", prompt)
		line, err := a.readLine(ctx)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}
		a.out.Printf(msgNotInteger, strings.TrimSpace(line))
	}
}

// readLine returns the next input line; io.EOF when input is exhausted and
// ctx.Err() as soon as ctx is cancelled, even while the read is pending.
func (a *App) readLine(ctx context.Context) (string, error) {
	if err := a.out.Err(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-a.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// scan reads lines on its own goroutine so that a blocked read never holds
// up cancellation. The goroutine stops once done is closed and its pending
// read returns, or when the input ends.
func (a *App) scan(done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		for a.in.Scan() {
			select {
			case lines <- inputLine{text: a.in.Text()}:
			case <-done:
				return
			}
		}
		end := inputLine{err: io.EOF}
		if err := a.in.Err(); err != nil {
			end.err = fmt.Errorf("read input: %w", err)
		}
		select {
		case lines <- end:
		case <-done:
		}
	}()

	return lines
}
