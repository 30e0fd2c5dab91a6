package calctests

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Scenario is a single subtraction case: Subtract(A, B) should return Expected.
//
// In a scenarios file, "name" and "expected" may be omitted; "expected" may also be null,
// but otherwise must be a 32-bit integer. Without a name, the case is
// named "<a> - <b>". Without an expected value, the result is checked against an
// independently computed 32-bit difference.
type Scenario struct {
	Name     string        `json:"name,omitempty"`
	A        int32         `json:"a"`
	B        int32         `json:"b"`
	Expected ldvalue.Value `json:"expected,omitempty"`
}

// NewScenario returns a Scenario with an explicit expected value.
func NewScenario(name string, a, b, expected int32) Scenario {
	return Scenario{Name: name, A: a, B: b, Expected: ldvalue.Int(int(expected))}
}

func (s Scenario) String() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("%d - %d", s.A, s.B)
}

// ExpectedValue returns the value that Subtract(A, B) must produce.
func (s Scenario) ExpectedValue() int32 {
	if !s.Expected.IsNull() {
		return int32(s.Expected.IntValue())
	}
	return referenceDifference(s.A, s.B)
}

// LoadScenarios reads a JSON array of scenarios from a file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scenarios file: %w", err)
	}
	var scenarios []Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("malformed scenarios file %s: %w", path, err)
	}
	for i, s := range scenarios {
		if s.Expected.IsNull() {
			continue
		}
		if !s.Expected.IsInt() {
			return nil, fmt.Errorf("scenario %d (%s): expected value %s is not an integer", i, s, s.Expected)
		}
		if n := s.Expected.Float64Value(); n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("scenario %d (%s): expected value %s is not a 32-bit integer", i, s, s.Expected)
		}
	}
	return scenarios, nil
}
