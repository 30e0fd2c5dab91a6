package calculator

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixture struct {
	c *Calculator
}

func newFixture(t *testing.T) *fixture {
	t.Log("Setup")
	t.Cleanup(func() { t.Log("Cleanup") })
	return &fixture{c: New()}
}

func TestSubtract(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, int32(5), f.c.Subtract(10, 5))
}

func TestSubtractNegativeOperand(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, int32(15), f.c.Subtract(10, -5))
}

func TestSubtractBothNegative(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, int32(-5), f.c.Subtract(-10, -5))
}

func TestSubtractZeros(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, int32(0), f.c.Subtract(0, 0))
}

func TestSubtractWrapsAtBoundaries(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, int32(math.MaxInt32), f.c.Subtract(math.MinInt32, 1))
	assert.Equal(t, int32(math.MinInt32), f.c.Subtract(math.MaxInt32, -1))
	assert.Equal(t, int32(-1), f.c.Subtract(math.MaxInt32, math.MinInt32))
}

func TestSubtractProperties(t *testing.T) {
	samples := []int32{math.MinInt32, math.MinInt32 + 1, -1000, -1, 0, 1, 7, 1000, math.MaxInt32 - 1, math.MaxInt32}
	for _, a := range samples {
		for _, b := range samples {
			a, b := a, b
			t.Run(fmt.Sprintf("%d - %d", a, b), func(t *testing.T) {
				f := newFixture(t)
				assert.Equal(t, int32(int64(a)-int64(b)), f.c.Subtract(a, b))
				// holds for every pair, since negating MinInt32 wraps the same way the difference does
				assert.Equal(t, -f.c.Subtract(b, a), f.c.Subtract(a, b), "antisymmetry")
			})
		}
		a := a
		t.Run(fmt.Sprintf("identities for %d", a), func(t *testing.T) {
			f := newFixture(t)
			assert.Equal(t, a, f.c.Subtract(a, 0))
			assert.Equal(t, -a, f.c.Subtract(0, a))
		})
	}
}

func TestFixtureCleanupRunsAfterEachCase(t *testing.T) {
	var trace []string
	for _, name := range []string{"a", "b"} {
		t.Run(name, func(t *testing.T) {
			newFixture(t)
			t.Cleanup(func() { trace = append(trace, "cleanup "+name) })
			trace = append(trace, "body "+name)
		})
	}
	assert.Equal(t, []string{"body a", "cleanup a", "body b", "cleanup b"}, trace)
}
