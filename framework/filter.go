package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter selects a test if every MustMatch pattern element matches the corresponding
// element of the test path (see RegexList.AnyMatchPath), and no MustNotMatch pattern matches
// anywhere in its full name.
func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatchPath(id)) &&
		!r.MustNotMatch.AnyMatch(id.String())
}

// RegexList is a set of regular expressions that can be specified on the command line.
// Each pattern is also kept split on "/" so that it can be matched one path element at a
// time, the way "go test -run" does.
type RegexList struct {
	patterns []*regexp.Regexp
	elements [][]*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	var elements []*regexp.Regexp
	for _, part := range strings.Split(value, "/") {
		ex, err := regexp.Compile(part)
		if err != nil {
			return fmt.Errorf("invalid regex element %q: %w", part, err)
		}
		elements = append(elements, ex)
	}
	r.patterns = append(r.patterns, rx)
	r.elements = append(r.elements, elements)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// AnyMatchPath is true if any pattern matches the test path element by element. A path that
// is shorter than the pattern matches if all of its elements do, so that the enclosing
// groups of a selected test are run too.
func (r RegexList) AnyMatchPath(id TestID) bool {
	for _, elements := range r.elements {
		if matchPath(elements, id.Path) {
			return true
		}
	}
	return false
}

func matchPath(elements []*regexp.Regexp, path []string) bool {
	for i, name := range path {
		if i >= len(elements) {
			return true
		}
		if !elements[i].MatchString(name) {
			return false
		}
	}
	return true
}

func PrintFilterDescription(filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Println("Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Printf("  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Printf("  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Println()
	}
}
