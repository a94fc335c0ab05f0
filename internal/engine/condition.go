package engine

// #region imports
import (
	"math"

	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region result

// conditionResult carries the fired/not-fired verdict plus the numeric
// evidence needed to render human-readable explanations.
type conditionResult struct {
	fired       bool
	key         string  // flag name or "numerator_to_denominator"
	actualPct   float64 // rounded percentage, ratios only
	expectedPct float64 // rounded percentage, ratios only
	numeric     bool
}

// #endregion

// #region evaluate

// evalCondition evaluates one rule condition against the estimate table and
// flag set. Missing estimates and zero denominators never fire; the two
// reserved shapes are inert by contract.
func evalCondition(c rules.Condition, estimates map[string]estimate.Estimate, flags map[string]bool) conditionResult {
	switch c.Type {
	case rules.CondFlag:
		return conditionResult{
			fired: flags[c.Flag], // absent = false
			key:   c.Flag,
		}

	case rules.CondRatioBelow, rules.CondRatioAbove:
		num, okNum := estimates[c.Numerator]
		den, okDen := estimates[c.Denominator]
		if !okNum || !okDen || den.Value == 0 {
			return conditionResult{}
		}
		ratio := num.Value / den.Value
		fired := ratio < c.Threshold
		if c.Type == rules.CondRatioAbove {
			fired = ratio > c.Threshold
		}
		return conditionResult{
			fired:       fired,
			key:         c.Numerator + "_to_" + c.Denominator,
			actualPct:   math.Round(ratio * 100),
			expectedPct: math.Round(c.Threshold * 100),
			numeric:     true,
		}

	case rules.CondIndexBelow, rules.CondE1RMGap:
		// Reserved in the catalog schema; no current rule set uses them.
		return conditionResult{}
	}

	return conditionResult{}
}

// #endregion
