// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random matrix generation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic when seeded: WithSeed or WithRand fixes the sequence.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"math/rand"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinElement is the inclusive lower bound of generated elements.
	DefaultMinElement = -10

	// DefaultMaxElement is the exclusive upper bound of generated elements.
	DefaultMaxElement = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRangeInvalid = "matrix: WithRange: min must be < max"
	panicRandNil      = "matrix: WithRand: source must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	min, max int        // element range [min, max)
	rng      *rand.Rand // nil ⇒ time-seeded source
}

// WithRange sets the half-open element range [min, max).
// Panics when min >= max.
func WithRange(min, max int) Option {
	if min >= max {
		panic(panicRangeInvalid)
	}

	return func(o *Options) {
		o.min, o.max = min, max
	}
}

// WithSeed makes generation reproducible by seeding a private source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. r is not safe for concurrent use;
// callers sharing it across goroutines must synchronize.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) {
		o.rng = r
	}
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{min: DefaultMinElement, max: DefaultMaxElement}
}

// gatherOptions applies user options over the defaults and fills the
// random source when none was provided.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}

// Random returns an n×n matrix with elements drawn uniformly from [min, max).
// Defaults: [DefaultMinElement, DefaultMaxElement), time-seeded source.
func Random(n int, opts ...Option) (*SquareMatrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	span := o.max - o.min
	for i := range m.data {
		m.data[i] = o.min + o.rng.Intn(span)
	}

	return m, nil
}

// AutoFill replaces the contents of m with a random n×n matrix.
// On error m is left untouched.
func (m *SquareMatrix) AutoFill(n int, opts ...Option) error {
	if m == nil {
		return ErrNilMatrix
	}
	r, err := Random(n, opts...)
	if err != nil {
		return err
	}
	m.n, m.data = r.n, r.data

	return nil
}
