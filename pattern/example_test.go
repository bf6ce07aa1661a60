package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/strand/pattern"
)

// ExampleParse parses a mixed-case pattern and reports its bit cost.
func ExampleParse() {
	p, err := pattern.Parse("dLd")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p, p.TotalBits())
	// Output:
	// DLD 13
}

// ExampleAlternating builds the implicit digit/letter form.
func ExampleAlternating() {
	p, _ := pattern.Alternating(4)
	fmt.Println(p)

	_, err := pattern.Alternating(5)
	fmt.Println(err)
	// Output:
	// DLDL
	// Alternating: length=5 is odd, want even: pattern: invalid pattern
}
