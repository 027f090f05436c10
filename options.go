// SPDX-License-Identifier: MIT

// Package codatools: functional configuration shared by all operations.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - Resolve, which applies setters over defaults and validates the result.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Invalid values are caller errors and surface as ErrInvalidParameter from
//     Resolve, never as panics.
//   - Display is opt-in: nothing is logged unless WithVerbose is passed.
package codatools

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultP is the Lp exponent; p = 2 reduces LpCoDa to the Aitchison norm.
	DefaultP = 2.0

	// DefaultMaxIter bounds the scalar minimizer used by LpCoDa.
	DefaultMaxIter = 500

	// DefaultXTol is the absolute term of the scalar minimizer's λ
	// tolerance √ε·|λ| + xtol/3.
	DefaultXTol = 1e-10

	// DefaultWorkers keeps every per-row loop single-threaded.
	DefaultWorkers = 1
)

// Per-operation tolerance defaults, used when WithTolerance is not given.
const (
	DefaultOrthonormalTol = 1e-10 // olr basis check
	DefaultSBPTol         = 1e-10 // SBP orthogonality check
	DefaultClosureTol     = 1e-6  // is_closed row-sum agreement
	DefaultCLRTol         = 1e-9  // is_clr zero-sum check
	DefaultRecoveryTol    = 1e-9  // pairwise reconstruction error
)

// Option mutates Options. Setters are applied in order (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	tol       float64 // NaN ⇒ per-operation default
	p         float64
	maxIter   int
	xtol      float64
	parts     int // 0 ⇒ infer
	partNames []string
	workers   int
	verbose   bool
	logger    *slog.Logger
}

// WithTolerance overrides the operation's structural tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithP sets the Lp exponent (p ≥ 1; +Inf allowed).
func WithP(p float64) Option {
	return func(o *Options) { o.p = p }
}

// WithMaxIter sets the iteration budget of the bounded scalar minimizer.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.maxIter = n }
}

// WithXTol sets the absolute term of the bounded scalar minimizer's
// stopping tolerance. The search stops once λ is bracketed within
// 2·(√ε·|λ| + xtol/3), so for large |λ| the relative term dominates.
func WithXTol(x float64) Option {
	return func(o *Options) { o.xtol = x }
}

// WithParts fixes the number of parts D instead of inferring it.
func WithParts(d int) Option {
	return func(o *Options) { o.parts = d }
}

// WithPartNames sets the part labels used to build coordinate names.
// Labels never affect numeric results.
func WithPartNames(names []string) Option {
	return func(o *Options) {
		o.partNames = append([]string(nil), names...)
	}
}

// WithWorkers splits per-row loops over n goroutines. Results are identical
// to the sequential path.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithVerbose enables diagnostic logging.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithLogger sets the logger used when verbose output is enabled.
// It implies WithVerbose.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = l
		o.verbose = l != nil
	}
}

// ---------- Resolution ----------

// discard is the logger handed out when verbose output is off.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Resolve applies opts over the documented defaults and validates them.
//
// Errors:
//   - ErrInvalidParameter for a negative/NaN tolerance or xtol, p < 1 or NaN,
//     maxIter < 1, negative parts or workers.
func Resolve(opts ...Option) (Options, error) {
	o := Options{
		tol:     math.NaN(),
		p:       DefaultP,
		maxIter: DefaultMaxIter,
		xtol:    DefaultXTol,
		workers: DefaultWorkers,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	switch {
	case !math.IsNaN(o.tol) && (o.tol < 0 || math.IsInf(o.tol, 0)):
		return o, fmt.Errorf("tolerance %g must be finite and non-negative: %w", o.tol, ErrInvalidParameter)
	case math.IsNaN(o.p) || o.p < 1:
		return o, fmt.Errorf("p=%g must be >= 1: %w", o.p, ErrInvalidParameter)
	case o.maxIter < 1:
		return o, fmt.Errorf("maxIter=%d must be >= 1: %w", o.maxIter, ErrInvalidParameter)
	case math.IsNaN(o.xtol) || o.xtol <= 0:
		return o, fmt.Errorf("xtol=%g must be > 0: %w", o.xtol, ErrInvalidParameter)
	case o.parts < 0:
		return o, fmt.Errorf("parts=%d must be >= 0: %w", o.parts, ErrInvalidParameter)
	case o.workers < 0:
		return o, fmt.Errorf("workers=%d must be >= 0: %w", o.workers, ErrInvalidParameter)
	}
	if o.workers == 0 {
		o.workers = DefaultWorkers
	}
	if o.verbose && o.logger == nil {
		o.logger = slog.Default()
	}

	return o, nil
}

// Tolerance returns the configured tolerance, or def when none was set.
func (o Options) Tolerance(def float64) float64 {
	if math.IsNaN(o.tol) {
		return def
	}
	return o.tol
}

// P returns the Lp exponent.
func (o Options) P() float64 { return o.p }

// MaxIter returns the minimizer iteration budget.
func (o Options) MaxIter() int { return o.maxIter }

// XTol returns the minimizer λ tolerance.
func (o Options) XTol() float64 { return o.xtol }

// Parts returns the requested D, or 0 when it should be inferred.
func (o Options) Parts() int { return o.parts }

// Workers returns the number of goroutines for per-row loops (≥ 1).
func (o Options) Workers() int { return o.workers }

// Verbose reports whether diagnostic logging is enabled.
func (o Options) Verbose() bool { return o.verbose }

// Logger returns a logger tagged with component, or a discarding logger when
// verbose output is off.
func (o Options) Logger(component string) *slog.Logger {
	if !o.verbose {
		return discard
	}
	return o.logger.With(slog.String("component", component))
}

// PartNames returns d part labels: the configured ones when they match d,
// otherwise the defaults x1..xd.
func (o Options) PartNames(d int) []string {
	if len(o.partNames) == d {
		return append([]string(nil), o.partNames...)
	}
	names := make([]string, d)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}
	return names
}
