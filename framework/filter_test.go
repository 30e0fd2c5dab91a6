package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeID(path ...string) TestID {
	return TestID{Path: path}
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("("))
	assert.False(t, r.IsDefined())
}

func TestEmptyFiltersSelectEverything(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter(makeID("subtract", "10 - 5")))
}

func TestMustMatchIsAppliedPerPathElement(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^subtract$/^10 - 5$"))

	assert.True(t, f.AsFilter(makeID("subtract")))
	assert.True(t, f.AsFilter(makeID("subtract", "10 - 5")))
	assert.False(t, f.AsFilter(makeID("subtract", "10 - -5")))
	assert.False(t, f.AsFilter(makeID("properties")))
}

func TestMustMatchSelectsWholeSubtree(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("properties"))

	assert.True(t, f.AsFilter(makeID("properties", "antisymmetry", "1 - 2")))
	assert.False(t, f.AsFilter(makeID("subtract", "0 - 0")))
}

func TestMustNotMatchUsesFullName(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("subtract/.*-5"))

	assert.True(t, f.AsFilter(makeID("subtract")))
	assert.True(t, f.AsFilter(makeID("subtract", "10 - 5")))
	assert.False(t, f.AsFilter(makeID("subtract", "10 - -5")))
}

func TestRegexListString(t *testing.T) {
	var r RegexList
	require.NoError(t, r.Set("a"))
	require.NoError(t, r.Set("b/c"))
	assert.Equal(t, `"a" or "b/c"`, r.String())
}
