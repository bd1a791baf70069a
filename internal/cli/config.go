// Package cli parses cramer command configuration and runs a single solve.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/cramer/cramer"
	"golang.org/x/text/language"
)

// Solver modes accepted by -mode and CRAMER_MODE.
const (
	ModeExact   = "exact"
	ModeNumeric = "numeric"
)

// ErrConfig reports an invalid configuration value.
var ErrConfig = errors.New("cli: invalid configuration")

// Config holds cramer command configuration.
type Config struct {
	Mode           string  `env:"CRAMER_MODE" envDefault:"exact"`
	MaxDenominator int64   `env:"CRAMER_MAX_DENOMINATOR" envDefault:"1000000"`
	Tolerance      float64 `env:"CRAMER_TOLERANCE" envDefault:"1e-8"`
	Decimals       int     `env:"CRAMER_DECIMALS" envDefault:"6"`
	Lang           string  `env:"CRAMER_LANG" envDefault:"en-US"`
	LaTeX          bool    `env:"CRAMER_LATEX"`
	OTelEndpoint   string  `env:"CRAMER_OTEL_ENDPOINT"`

	// Coefficients and Constants come from flags only.
	Coefficients string
	Constants    string
}

// ParseConfig parses environment and flags into Config. Flags win over env.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "Solver variant: exact or numeric")
	fs.StringVar(&cfg.Coefficients, "a", "", `Coefficient matrix, rows separated by ";" and cells by "," (e.g. "2,1;1,3")`)
	fs.StringVar(&cfg.Constants, "b", "", `Constant vector, cells separated by "," (e.g. "3,5")`)
	fs.Int64Var(&cfg.MaxDenominator, "max-denominator", cfg.MaxDenominator, "Largest denominator of exact values")
	fs.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "Numeric determinant zero tolerance")
	fs.IntVar(&cfg.Decimals, "decimals", cfg.Decimals, "Decimal digits of numeric solutions")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Diagnostic language (BCP 47)")
	fs.BoolVar(&cfg.LaTeX, "latex", cfg.LaTeX, "Render the system and solution as LaTeX")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP trace endpoint; empty disables tracing")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// options validates cfg and turns it into solver options. Values the option
// constructors would panic on are reported as ErrConfig instead.
func (cfg Config) options() ([]cramer.Option, error) {
	switch cfg.Mode {
	case ModeExact, ModeNumeric:
	default:
		return nil, fmt.Errorf("%w: mode %q (want %q or %q)", ErrConfig, cfg.Mode, ModeExact, ModeNumeric)
	}
	if cfg.MaxDenominator < 1 {
		return nil, fmt.Errorf("%w: max denominator %d < 1", ErrConfig, cfg.MaxDenominator)
	}
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) {
		return nil, fmt.Errorf("%w: tolerance %v", ErrConfig, cfg.Tolerance)
	}
	if cfg.Decimals < 0 || cfg.Decimals > 15 {
		return nil, fmt.Errorf("%w: decimals %d outside [0, 15]", ErrConfig, cfg.Decimals)
	}
	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		return nil, fmt.Errorf("%w: lang %q: %w", ErrConfig, cfg.Lang, err)
	}

	return []cramer.Option{
		cramer.WithMaxDenominator(cfg.MaxDenominator),
		cramer.WithTolerance(cfg.Tolerance),
		cramer.WithDecimals(cfg.Decimals),
		cramer.WithLanguage(tag),
	}, nil
}
