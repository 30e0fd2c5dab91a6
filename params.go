package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/0100loop/4800project/framework"

	"github.com/alessio/shellescape"
)

const debugEnvVar = "CALCSUITE_DEBUG"

type commandParams struct {
	filters       framework.RegexFilters
	scenariosFile string
	debug         bool
	debugAll      bool
	errOut        io.Writer
}

func (c *commandParams) Read(args []string) bool {
	if c.errOut == nil {
		c.errOut = os.Stderr
	}
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.scenariosFile, "scenarios", "", "JSON file of additional subtraction scenarios")
	fs.BoolVar(&c.debug, "debug", envFlag(debugEnvVar), "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false // the FlagSet has already printed the error and usage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(c.errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

func envFlag(name string) bool {
	value, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && value
}

// rerunCommand builds a command line that runs only the given tests again, with the same
// scenarios file and with debug output turned on. If the suite itself failed, every test
// is run again.
func rerunCommand(program string, params commandParams, failures []framework.TestResult) string {
	var cmd commandBuilder
	cmd.add(program)
	if !anyRootFailure(failures) {
		for _, f := range failures {
			cmd.add("-run", exactPathPattern(f.TestID))
		}
	}
	if params.scenariosFile != "" {
		cmd.add("-scenarios", params.scenariosFile)
	}
	cmd.add("-debug")
	return cmd.String()
}

func anyRootFailure(failures []framework.TestResult) bool {
	for _, f := range failures {
		if f.TestID.IsRoot() {
			return true
		}
	}
	return false
}

// exactPathPattern matches exactly one test path. A "/" inside a test name is written as
// \x2f so that it is not taken as a path separator.
func exactPathPattern(id framework.TestID) string {
	parts := make([]string, 0, len(id.Path))
	for _, name := range id.Path {
		quoted := strings.ReplaceAll(regexp.QuoteMeta(name), "/", `\x2f`)
		parts = append(parts, "^"+quoted+"$")
	}
	return strings.Join(parts, "/")
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
