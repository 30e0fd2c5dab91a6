package framework

import (
	"fmt"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of tests that ran and passed, failed, or were skipped. Groups
// created with Context.Run count as tests too, the same as they do in "go test".
func (r Results) Counts() (passed, failed, skipped int) {
	failed = len(r.Failures)
	for _, t := range r.Tests {
		if t.Skipped {
			skipped++
		}
	}
	passed = len(r.Tests) - failed - skipped
	return
}

type TestID struct {
	Path []string
}

// Child returns the ID of a subtest of this test.
func (t TestID) Child(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	return TestID{Path: append(append(path, t.Path...), name)}
}

// IsRoot is true for the ID of the suite as a whole, which has no path.
func (t TestID) IsRoot() bool {
	return len(t.Path) == 0
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of the test run to standard output.
func PrintResults(results Results) {
	passed, failed, skipped := results.Counts()
	if results.OK() {
		fmt.Printf("All tests passed (%d passed, %d skipped)\n", passed, skipped)
		return
	}
	fmt.Printf("FAILED TESTS (%d failed, %d passed, %d skipped):\n", failed, passed, skipped)
	for _, f := range results.Failures {
		if f.TestID.IsRoot() {
			fmt.Println("  * (test suite)")
		} else {
			fmt.Printf("  * %s\n", f.TestID)
		}
		for _, err := range f.Errors {
			for _, line := range strings.Split(reformatError(err).Error(), "\n") {
				fmt.Printf("      %s\n", line)
			}
		}
	}
}
