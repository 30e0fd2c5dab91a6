package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is used similarly to *testing.T. It implements require.TestingT so we can use
// standard assertions from assert/require, has a Run method for subtests, and a RunCase
// method for tests that need per-case setup and teardown.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Hooks are the lifecycle actions wrapped around a single case by RunCase. Either may be nil.
type Hooks struct {
	BeforeEach func(*Context)
	AfterEach  func(*Context)
}

func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer c.recordResult()
	c.protect(action)
}

// protect runs the action, converting a panic into a failure of this context. FailNow and
// Skip panic with the Context itself, which is expected and only stops the action.
func (c *Context) protect(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()
	action(c)
}

func (c *Context) recordResult() {
	if c.id.IsRoot() && !c.failed {
		return // the root context is only reported if the suite itself failed
	}
	result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped}
	c.env.results.Tests = append(c.env.results.Tests, result)
	if c.failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Failed reports whether this context has recorded a failure so far.
func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Run(name string, action func(*Context)) {
	c.RunCase(name, Hooks{}, action)
}

// RunCase runs body as a named test, calling hooks.BeforeEach first and hooks.AfterEach
// afterward. AfterEach is called whatever the outcome of BeforeEach and body, including
// failures and panics; body is not called if BeforeEach failed or skipped the test.
// Failures are recorded against this test only, so sibling tests still run.
func (c *Context) RunCase(name string, hooks Hooks, body func(*Context)) {
	id := c.id.Child(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true})
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(func(c1 *Context) {
		if hooks.BeforeEach != nil {
			c1.protect(hooks.BeforeEach)
		}
		if !c1.failed && !c1.skipped {
			c1.protect(body)
		}
		if hooks.AfterEach != nil {
			c1.protect(hooks.AfterEach)
		}
	})
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// testify's assertion messages start with a newline and pad each line with tabs; that
// layout is meant for "go test" output, so we trim it for our own console output.
func reformatError(err error) error {
	lines := strings.Split(strings.TrimLeft(err.Error(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(strings.TrimLeft(line, "\t "), "\t", " ")
	}
	return errors.New(strings.Join(lines, "\n"))
}
