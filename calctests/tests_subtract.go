package calctests

import (
	"math"

	"github.com/0100loop/4800project/calculator"
	"github.com/0100loop/4800project/framework"

	"github.com/stretchr/testify/assert"
)

// BuiltInScenarios are the fixed subtraction cases that every run includes.
var BuiltInScenarios = []Scenario{
	NewScenario("10 - 5", 10, 5, 5),
	NewScenario("10 - -5", 10, -5, 15),
	NewScenario("-10 - -5", -10, -5, -5),
	NewScenario("0 - 0", 0, 0, 0),
	// wraps around to the largest int32
	NewScenario("MinInt32 - 1", math.MinInt32, 1, math.MaxInt32),
	NewScenario("MaxInt32 - -1", math.MaxInt32, -1, math.MinInt32),
}

func DoSubtractTests(t *framework.Context) {
	DoScenarioTests(t, BuiltInScenarios)
}

func DoScenarioTests(t *framework.Context, scenarios []Scenario) {
	for _, s := range scenarios {
		s := s
		calculatorCase(t, s.String(), func(t *framework.Context, calc *calculator.Calculator) {
			assert.Equal(t, s.ExpectedValue(), calc.Subtract(s.A, s.B), "Subtract(%d, %d)", s.A, s.B)
		})
	}
}
