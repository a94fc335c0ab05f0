package engine

// #region imports
import (
	"fmt"
	"math"
)

// #endregion

// #region bounds

const (
	efficiencyFloor   = 40.0
	efficiencyCeiling = 95.0
)

// #endregion

// #region deduction-flags

// deductionFlags are the self-reported flags that each cost 10 points when set.
// Applied independently, so all three together cost 30.
var deductionFlags = []struct {
	flag   string
	reason string
}{
	{"grip_limiting", "grip gives out before the prime movers"},
	{"mobility_restriction", "mobility restriction compromises positions"},
	{"shoulder_discomfort", "shoulder discomfort under load"},
}

// #endregion

// #region score

// scoreEfficiency converts the assembled signals into one bounded balance
// score. Deductions are evaluated independently, in a fixed order, and each
// applied one is itemized.
func scoreEfficiency(phase PhaseResult, arch Archetype, indices map[string]IndexScore, flags map[string]bool, gaps []DataGap) EfficiencyScore {
	score := 100.0
	var deductions []Deduction

	apply := func(key string, points float64, reason string) {
		score -= points
		deductions = append(deductions, Deduction{Key: key, Points: points, Reason: reason})
	}

	switch {
	case phase.Confidence > 0.6:
		apply("clear_bottleneck", 15, fmt.Sprintf("one phase clearly limits the lift (%s)", phase.Primary))
	case phase.Confidence > 0.3:
		apply("moderate_bottleneck", 8, fmt.Sprintf("a moderate bottleneck shows in the %s phase", phase.Primary))
	}

	if math.Abs(arch.Delta) >= 20 && arch.Confidence >= 0.5 {
		apply("strong_imbalance", 10, fmt.Sprintf("a %+.0f point split between %s", arch.Delta, arch.DeltaKey))
	}

	if bt, ok := indices["back_tension_index"]; ok && bt.Value < 70 {
		apply("low_back_tension", 10, fmt.Sprintf("back-tension index at %.0f, under the 70 floor", bt.Value))
	}

	for _, d := range deductionFlags {
		if flags[d.flag] {
			apply(d.flag, 10, d.reason)
		}
	}

	for _, g := range gaps {
		if g.Severity == GapHigh {
			apply("missing_core_data", 5, "high-severity data gaps reduce signal quality")
			break // flat deduction regardless of count
		}
	}

	result := EfficiencyScore{
		Score:      clampRange(score, efficiencyFloor, efficiencyCeiling),
		Deductions: deductions,
	}
	if len(deductions) == 0 {
		result.Note = "no efficiency deductions; the reported data shows a well-balanced lift"
	}
	return result
}

// #endregion

// #region helpers

// clampRange restricts v to [lo, hi].
func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion
