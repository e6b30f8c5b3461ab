package isochron_test

import (
	"fmt"

	"github.com/katalvlaran/ararpy/isochron"
)

// ExampleCalculate dates a five-step mixing line.
func ExampleCalculate() {
	res, err := isochron.Calculate(mixingLine())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("F = %.3f, trapped 40/36 = %.1f, age = %.2f Ma\n",
		res.F.Nominal(), res.Trapped4036.Nominal(), res.Age.Nominal())
	// Output:
	// F = 10.000, trapped 40/36 = 295.5, age = 171.95 Ma
}
