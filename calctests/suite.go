package calctests

import (
	"github.com/0100loop/4800project/framework"
)

func RunTestSuite(
	filter framework.Filter,
	testLogger framework.TestLogger,
	extraScenarios []Scenario,
) framework.Results {
	return framework.Run(filter, testLogger, func(t *framework.Context) {
		t.Run("subtract", DoSubtractTests)
		t.Run("properties", DoPropertyTests)
		if len(extraScenarios) > 0 {
			t.Run("scenarios", func(t *framework.Context) {
				DoScenarioTests(t, extraScenarios)
			})
		}
	})
}
