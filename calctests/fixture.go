package calctests

import (
	"github.com/0100loop/4800project/calculator"
	"github.com/0100loop/4800project/framework"
)

// calculatorCase runs body as a test case with a freshly created Calculator. Setup and
// teardown are traced to the case's debug output; the teardown trace notes a failed case.
func calculatorCase(t *framework.Context, name string, body func(*framework.Context, *calculator.Calculator)) {
	var calc *calculator.Calculator
	t.RunCase(name, framework.Hooks{
		BeforeEach: func(t *framework.Context) {
			t.Debug("Setup")
			calc = calculator.New()
		},
		AfterEach: func(t *framework.Context) {
			if t.Failed() {
				t.Debug("Cleanup (case failed)")
			} else {
				t.Debug("Cleanup")
			}
			calc = nil
		},
	}, func(t *framework.Context) {
		body(t, calc)
	})
}

// referenceDifference computes a - b without relying on 32-bit arithmetic, then wraps the
// result to 32 bits the same way two's-complement subtraction does.
func referenceDifference(a, b int32) int32 {
	return int32(int64(a) - int64(b))
}
