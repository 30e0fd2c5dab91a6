package main

import (
	"fmt"
	"log"
	"os"

	"github.com/0100loop/4800project/calctests"
	"github.com/0100loop/4800project/framework"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // a missing .env file is fine

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	var scenarios []calctests.Scenario
	if params.scenariosFile != "" {
		s, err := calctests.LoadScenarios(params.scenariosFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Scenarios error: %s\n", err)
			os.Exit(1)
		}
		mainDebugLogger.Printf("Loaded %d scenarios from %s", len(s), params.scenariosFile)
		scenarios = s
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := calctests.RunTestSuite(params.filters.AsFilter, testLogger, scenarios)

	fmt.Println()
	framework.PrintResults(results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To run only the failed tests again:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], params, results.Failures))
		os.Exit(1)
	}
}
