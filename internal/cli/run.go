package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/cramer/cramer"
	"github.com/katalvlaran/cramer/format"
	"github.com/katalvlaran/cramer/internal/telemetry"
	"github.com/katalvlaran/cramer/rational"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnsolved is returned when the solver produced a diagnostic. It wraps the
// solver's own sentinel (cramer.ErrShape, cramer.ErrSingular, cramer.ErrConversion).
var ErrUnsolved = errors.New("cli: system not solved")

// Span name and attribute keys recorded for each solve.
const (
	spanSolve  = "cramer.solve"
	attrMode   = attribute.Key("cramer.mode")
	attrSize   = attribute.Key("cramer.size")
	attrSolved = attribute.Key("cramer.solved")
)

// Run solves the configured system, writing solution lines to stdout and
// diagnostics to stderr, with tracing enabled when cfg.OTelEndpoint is set.
func Run(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	return telemetry.RunWithTelemetry(ctx, cfg.OTelEndpoint, func(ctx context.Context) error {
		return solve(ctx, cfg, stdout, stderr)
	})
}

func solve(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	coeff, err := ParseGrid(cfg.Coefficients)
	if err != nil {
		return fmt.Errorf("-a: %w", err)
	}
	consts, err := ParseVector(cfg.Constants)
	if err != nil {
		return fmt.Errorf("-b: %w", err)
	}
	if err = checkSize(coeff, consts); err != nil {
		return err
	}
	labels, err := format.Labels(len(coeff))
	if err != nil {
		return err
	}

	_, span := telemetry.Tracer().Start(ctx, spanSolve, trace.WithAttributes(
		attrMode.String(cfg.Mode),
		attrSize.Int(len(coeff)),
	))
	defer span.End()

	if cfg.LaTeX {
		if _, err = fmt.Fprintln(stdout, format.SystemLaTeX(coeff, consts, labels)); err != nil {
			return err
		}
	}

	if cfg.Mode == ModeNumeric {
		render := format.Plain[float64]
		if cfg.LaTeX {
			render = format.Float
		}

		return report(span, cramer.NewNumeric(opts...).Solve(coeff, consts), labels, render, stdout, stderr)
	}

	render := format.Plain[rational.Rational]
	if cfg.LaTeX {
		render = format.Rational
	}

	return report(span, cramer.NewExact(opts...).Solve(coeff, consts), labels, render, stdout, stderr)
}

// report records the outcome on span and writes it out.
func report[T format.Number](span trace.Span, res cramer.Result[T], labels []string, render func(T) string, stdout, stderr io.Writer) error {
	span.SetAttributes(attrSolved.Bool(res.Solved()))
	if !res.Solved() {
		span.SetStatus(codes.Error, res.Diagnostic)
		if _, err := fmt.Fprintln(stderr, res.Diagnostic); err != nil {
			return err
		}

		return fmt.Errorf("%w: %w", ErrUnsolved, res.Err)
	}

	lines, err := format.Assignments(labels, res.Solution, render)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err = fmt.Fprintln(stdout, l); err != nil {
			return err
		}
	}

	return nil
}
