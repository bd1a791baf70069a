package format_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cramer/format"
	"github.com/katalvlaran/cramer/rational"
	"github.com/stretchr/testify/require"
)

// TestRational covers integers, fractions and signs.
func TestRational(t *testing.T) {
	t.Parallel()

	require.Equal(t, "4", format.Rational(rational.FromInt(4)))
	require.Equal(t, `\frac{1}{3}`, format.Rational(rational.MustNew(1, 3)))
	require.Equal(t, `\frac{-7}{5}`, format.Rational(rational.MustNew(7, -5)))
	require.Equal(t, "0", format.Rational(rational.Zero))
	require.Equal(t, "-12", format.Rational(rational.FromInt(-12)))
}

// TestFloat covers whole numbers, two-decimal rendering and negative zero.
func TestFloat(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		2.0:                  "2",
		2.5:                  "2.50",
		-3:                   "-3",
		0.333333:             "0.33",
		1.005:                "1.00", // binary value sits just below 1.005
		math.Copysign(0, -1): "0",
		123456789:            "123456789",
	}
	for in, want := range tests {
		require.Equalf(t, want, format.Float(in), "Float(%v)", in)
	}
}

// TestValueDispatch ensures the generic entry points route by type.
func TestValueDispatch(t *testing.T) {
	t.Parallel()

	require.Equal(t, `\frac{4}{5}`, format.Value(rational.MustNew(4, 5)))
	require.Equal(t, "0.80", format.Value(0.8))
	require.Equal(t, "4/5", format.Plain(rational.MustNew(4, 5)))
	require.Equal(t, "7", format.Plain(7.0))
	require.Equal(t, "1.4", format.Plain(1.4))
	require.Equal(t, "0", format.Plain(math.Copysign(0, -1)))
}

// TestLabels covers the fixed label set bounds.
func TestLabels(t *testing.T) {
	t.Parallel()

	got, err := format.Labels(3)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "z"}, got)

	got, err = format.Labels(10)
	require.NoError(t, err)
	require.Equal(t, "s", got[9])

	_, err = format.Labels(11)
	require.ErrorIs(t, err, format.ErrLabelRange)
	_, err = format.Labels(0)
	require.ErrorIs(t, err, format.ErrLabelRange)
}

// TestAssignments renders one line per unknown.
func TestAssignments(t *testing.T) {
	t.Parallel()

	lines, err := format.Assignments([]string{"x", "y"},
		[]rational.Rational{rational.MustNew(4, 5), rational.MustNew(7, 5)}, format.Rational)
	require.NoError(t, err)
	require.Equal(t, []string{`x = \frac{4}{5}`, `y = \frac{7}{5}`}, lines)

	lines, err = format.Assignments([]string{"x"}, []float64{5}, format.Plain[float64])
	require.NoError(t, err)
	require.Equal(t, []string{"x = 5"}, lines)

	_, err = format.Assignments([]string{"x"}, []float64{1, 2}, format.Float)
	require.ErrorIs(t, err, format.ErrLengthMismatch)
}

// TestSystemLaTeX checks the full A·X = B rendering.
func TestSystemLaTeX(t *testing.T) {
	t.Parallel()

	got := format.SystemLaTeX([][]float64{{2, 1}, {1, 3.5}}, []float64{3, 5}, []string{"x", "y"})
	require.Equal(t,
		`\begin{bmatrix}2 & 1 \\ 1 & 3.50\end{bmatrix} \cdot \begin{bmatrix}x \\ y\end{bmatrix} = \begin{bmatrix}3 \\ 5\end{bmatrix}`,
		got)
}
