package bank_test

import (
	"fmt"

	"github.com/cwbudde/algo-vocoder/dsp/filter/bank"
)

func ExampleShannon() {
	plan, err := bank.Shannon(4, 100, 1600)
	if err != nil {
		panic(err)
	}

	for _, b := range plan {
		fmt.Printf("%.0f-%.0f Hz\n", b.Low, b.High)
	}
	// Output:
	// 100-200 Hz
	// 200-400 Hz
	// 400-800 Hz
	// 800-1600 Hz
}
