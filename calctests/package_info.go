// Package calctests contains the calculator contract tests and their supporting fixture.
//
// Every case gets its own Calculator, created by the BeforeEach hook that calculatorCase
// registers; nothing is shared between cases, so they can run in any order. Test harness
// infrastructure that is not specific to the calculator is in the lower-level framework
// package.
package calctests
