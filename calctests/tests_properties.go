package calctests

import (
	"math"

	"github.com/0100loop/4800project/calculator"
	"github.com/0100loop/4800project/framework"

	"github.com/stretchr/testify/assert"
)

var sampleOperands = []int32{
	math.MinInt32, math.MinInt32 + 1,
	-1000000, -10, -5, -1, 0, 1, 5, 10, 1000000,
	math.MaxInt32 - 1, math.MaxInt32,
}

func DoPropertyTests(t *framework.Context) {
	calculatorCase(t, "difference", func(t *framework.Context, calc *calculator.Calculator) {
		forEachPair(func(a, b int32) {
			assert.Equal(t, referenceDifference(a, b), calc.Subtract(a, b), "Subtract(%d, %d)", a, b)
		})
	})

	calculatorCase(t, "antisymmetry", func(t *framework.Context, calc *calculator.Calculator) {
		// With wraparound this holds even when the difference is MinInt32, whose negation is
		// itself.
		forEachPair(func(a, b int32) {
			assert.Equal(t, -calc.Subtract(b, a), calc.Subtract(a, b), "Subtract(%d, %d) vs Subtract(%d, %d)", a, b, b, a)
		})
	})

	calculatorCase(t, "subtracting zero", func(t *framework.Context, calc *calculator.Calculator) {
		for _, a := range sampleOperands {
			assert.Equal(t, a, calc.Subtract(a, 0), "Subtract(%d, 0)", a)
		}
	})

	calculatorCase(t, "subtracting from zero", func(t *framework.Context, calc *calculator.Calculator) {
		for _, a := range sampleOperands {
			assert.Equal(t, -a, calc.Subtract(0, a), "Subtract(0, %d)", a)
		}
		assert.Equal(t, int32(math.MinInt32), calc.Subtract(0, math.MinInt32), "negating MinInt32 wraps")
	})
}

func forEachPair(action func(a, b int32)) {
	for _, a := range sampleOperands {
		for _, b := range sampleOperands {
			action(a, b)
		}
	}
}
