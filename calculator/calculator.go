// Package calculator contains the arithmetic operations exercised by the contract suite.
//
// Operands and results are 32-bit signed integers. Subtraction uses two's-complement
// wraparound, so it never fails: Subtract(math.MinInt32, 1) is math.MaxInt32, and
// Subtract(math.MaxInt32, -1) is math.MinInt32.
package calculator

// Calculator is stateless; a fresh one is created for every test case.
type Calculator struct{}

// New returns a new Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Subtract returns a - b, wrapping on overflow.
func (c *Calculator) Subtract(a, b int32) int32 {
	return a - b
}
