// Package framework contains the low-level implementation of test harness infrastructure
// that does not know anything about the calculator being tested.
//
// There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Tests are registered explicitly by calling Context.Run or
// Context.RunCase; nothing is discovered by reflection. RunCase wraps a test body in a
// pair of BeforeEach/AfterEach hooks, and AfterEach runs whether or not the body passed.
//
// The domain-specific code that knows what is being tested is responsible for providing
// the fixtures and the test cases on top of the test context.
package framework
