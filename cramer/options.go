// SPDX-License-Identifier: MIT

// Package cramer: functional configuration shared by both solver variants.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Each option only affects the variant that reads it: WithMaxDenominator is
// exact-only, WithTolerance and WithDecimals are numeric-only, WithLanguage
// and WithCatalog affect both.
package cramer

import (
	"math"

	"github.com/katalvlaran/cramer/i18n"
	"github.com/katalvlaran/cramer/rational"
	"golang.org/x/text/language"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDenominator bounds the denominators of converted inputs and of
	// the returned exact solution values.
	DefaultMaxDenominator = rational.DefaultMaxDenominator

	// DefaultTolerance is the absolute tolerance under which a float
	// determinant counts as zero.
	DefaultTolerance = 1e-8

	// DefaultDecimals is the number of decimal digits numeric solutions are rounded to.
	DefaultDecimals = 6

	// maxDecimals keeps 10^decimals exactly representable in float64.
	maxDecimals = 15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxDenominatorInvalid = "cramer: WithMaxDenominator: bound must be >= 1"
	panicToleranceInvalid      = "cramer: WithTolerance: tol must be finite, non-negative"
	panicDecimalsInvalid       = "cramer: WithDecimals: digits must be in [0, 15]"
	panicCatalogNil            = "cramer: WithCatalog: catalog must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	maxDen   int64         // DefaultMaxDenominator
	tol      float64       // DefaultTolerance
	decimals int           // DefaultDecimals
	lang     language.Tag  // i18n.BaseLocale
	catalog  *i18n.Catalog // i18n.Default()
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		maxDen:   DefaultMaxDenominator,
		tol:      DefaultTolerance,
		decimals: DefaultDecimals,
		lang:     i18n.BaseLocale,
		catalog:  i18n.Default(),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithMaxDenominator sets the denominator bound of the exact path.
// Panics when maxDen < 1.
func WithMaxDenominator(maxDen int64) Option {
	if maxDen < 1 {
		panic(panicMaxDenominatorInvalid)
	}

	return func(o *Options) { o.maxDen = maxDen }
}

// WithTolerance sets the absolute zero tolerance of the numeric path.
// Panics when tol is NaN, ±Inf or negative.
//
// Notes:
//   - The determinant scales with the n-th power of the entries; very large or
//     very small coefficients may need a tolerance scaled accordingly.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithDecimals sets how many decimal digits numeric solutions keep.
// Panics when digits is outside [0, 15].
func WithDecimals(digits int) Option {
	if digits < 0 || digits > maxDecimals {
		panic(panicDecimalsInvalid)
	}

	return func(o *Options) { o.decimals = digits }
}

// WithLanguage selects the diagnostic language; unsupported tags fall back
// to the closest supported locale (ultimately en-US).
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) { o.lang = tag }
}

// WithCatalog replaces the message catalog used for diagnostics.
// Panics when c is nil.
func WithCatalog(c *i18n.Catalog) Option {
	if c == nil {
		panic(panicCatalogNil)
	}

	return func(o *Options) { o.catalog = c }
}

// diagnostic formats a catalog message in the configured language.
func (o Options) diagnostic(key string, args ...any) string {
	return o.catalog.Sprintf(o.lang, key, args...)
}
