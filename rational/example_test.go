package rational_test

import (
	"fmt"

	"github.com/katalvlaran/cramer/rational"
)

// ExampleApproximate shows how float inputs snap to small fractions.
func ExampleApproximate() {
	for _, f := range []float64{0.1, 1.0 / 3, 0.75} {
		r, _ := rational.Approximate(f, rational.DefaultMaxDenominator)
		fmt.Println(r)
	}
	// Output:
	// 1/10
	// 1/3
	// 3/4
}
