package rules

import (
	"fmt"
	"math"
)

// #region validate-entry

// weightSumTolerance bounds the allowed drift of per-index mapping weights
// from 1.0. The engine renormalizes over contributing mappings at runtime, but
// a catalog whose nominal weights do not sum to 1.0 is a configuration bug.
const weightSumTolerance = 0.01

// ValidateEntry checks a catalog entry's structural invariants at load time.
func ValidateEntry(e Entry) error {
	if e.Lift == "" {
		return fmt.Errorf("missing lift identifier")
	}
	if e.Version == "" {
		return fmt.Errorf("missing version")
	}

	for i, r := range e.PhaseRules {
		if err := validateCondition(r.Condition); err != nil {
			return fmt.Errorf("phase rule %d: %w", i, err)
		}
		if r.Phase == "" {
			return fmt.Errorf("phase rule %d: missing phase", i)
		}
		if r.Points <= 0 {
			return fmt.Errorf("phase rule %d: points must be positive", i)
		}
	}

	for i, r := range e.HypothesisRules {
		if err := validateCondition(r.Condition); err != nil {
			return fmt.Errorf("hypothesis rule %d: %w", i, err)
		}
		if r.Key == "" {
			return fmt.Errorf("hypothesis rule %d: missing key", i)
		}
		if r.Points <= 0 {
			return fmt.Errorf("hypothesis rule %d: points must be positive", i)
		}
	}

	weightSums := make(map[string]float64)
	for i, m := range e.IndexMappings {
		if m.Index == "" || m.Proxy == "" {
			return fmt.Errorf("index mapping %d: missing index or proxy", i)
		}
		if m.RatioLow <= 0 || m.RatioHigh < m.RatioLow {
			return fmt.Errorf("index mapping %d: bad ratio bounds [%.2f, %.2f]", i, m.RatioLow, m.RatioHigh)
		}
		if m.Weight <= 0 {
			return fmt.Errorf("index mapping %d: weight must be positive", i)
		}
		weightSums[m.Index] += m.Weight
	}
	for index, sum := range weightSums {
		if math.Abs(sum-1.0) > weightSumTolerance {
			return fmt.Errorf("index %q: mapping weights sum to %.3f, want 1.0", index, sum)
		}
	}

	for i, t := range e.ValidationTests {
		if err := validateTest(t); err != nil {
			return fmt.Errorf("validation test %d: %w", i, err)
		}
	}

	return nil
}

// #endregion

// #region condition-check

func validateCondition(c Condition) error {
	switch c.Type {
	case CondFlag:
		if c.Flag == "" {
			return fmt.Errorf("flag condition: missing flag name")
		}
	case CondRatioBelow, CondRatioAbove:
		if c.Numerator == "" || c.Denominator == "" {
			return fmt.Errorf("%s condition: missing numerator or denominator", c.Type)
		}
		if c.Threshold <= 0 {
			return fmt.Errorf("%s condition: threshold must be positive", c.Type)
		}
	case CondIndexBelow, CondE1RMGap:
		// Reserved shapes: accepted, always inert at evaluation time.
	default:
		return fmt.Errorf("unknown condition type %q", c.Type)
	}
	return nil
}

// #endregion

// #region test-check

func validateTest(t ValidationTest) error {
	if t.Name == "" {
		return fmt.Errorf("missing name")
	}
	if t.Phase == "" {
		return fmt.Errorf("%s: missing phase", t.Name)
	}
	if t.MinExperience.Rank() < 0 {
		return fmt.Errorf("%s: unknown experience level %q", t.Name, t.MinExperience)
	}
	if t.Fallback != nil {
		if t.Fallback.Name == "" {
			return fmt.Errorf("%s: fallback missing name", t.Name)
		}
		if t.Fallback.MinExperience.Rank() < 0 {
			return fmt.Errorf("%s: fallback has unknown experience level %q", t.Name, t.Fallback.MinExperience)
		}
	}
	return nil
}

// #endregion
