package bracket_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/bracket"
)

// ExampleBisect locates the zero of cos on [1, 2] down to the last
// representable bit.
func ExampleBisect() {
	x, err := bracket.Bisect(math.Cos, 1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root = %.15f\n", x)
	// Output: root = 1.570796326794897
}

// ExampleBrent accelerates the same solve with the zeroin scheme.
func ExampleBrent() {
	f := func(x float64) float64 { return x*x*x - 2*x - 5 }

	x, err := bracket.Brent(f, 2, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root = %.12f\n", x)
	// Output: root = 2.094551481542
}
