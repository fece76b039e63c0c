package rootfind_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind"
	"github.com/katalvlaran/rootfind/poly"
)

// The classic bracketed solve: exp(x) − x⁴ changes sign on [8, 9].
func ExampleFindRootBracketed() {
	f := func(x float64) float64 { return math.Exp(x) - x*x*x*x }

	res, err := rootfind.FindRootBracketed(f, 8, 9)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.12f\n", res.Root)
	// Output: 8.613169456441
}

// No bracket in sight: start from a guess and let the hybrid iterate.
func ExampleFindRootFree() {
	f := func(x float64) float64 { return math.Exp(x) - x*x*x*x }

	res, err := rootfind.FindRootFree(f, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.10f\n", res.Root)
	// Output: 1.4296118247
}

// Multiplicities of (x−1)²(x−3).
func ExampleFindRootsWithMultiplicity() {
	p := poly.New(-3, 7, -5, 1)

	roots, err := rootfind.FindRootsWithMultiplicity(p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range roots {
		fmt.Printf("%.4f ×%d\n", r.Value, r.Multiplicity)
	}
	// Output:
	// 1.0000 ×2
	// 3.0000 ×1
}
