package engine

import (
	"testing"

	"github.com/barbelllab/liftsignal/internal/rules"
)

func gapTestEntry() rules.Entry {
	return rules.Entry{
		Lift: "squat",
		PhaseRules: []rules.PhaseRule{
			{Condition: rules.Condition{Type: rules.CondRatioBelow, Numerator: "pause_squat", Denominator: "squat", Threshold: 0.85}, Phase: "bottom", Points: 2},
		},
		HypothesisRules: []rules.HypothesisRule{
			{Condition: rules.Condition{Type: rules.CondRatioBelow, Numerator: "front_squat", Denominator: "squat", Threshold: 0.80}, Key: "quad_strength", Points: 30},
		},
		IndexMappings: []rules.IndexMapping{
			{Index: "quad_index", Proxy: "front_squat", RatioLow: 0.70, RatioHigh: 0.80, Weight: 1.0},
			{Index: "posterior_index", Proxy: "romanian_deadlift", RatioLow: 0.80, RatioHigh: 1.00, Weight: 1.0},
		},
	}
}

func TestDetectGapsSeverities(t *testing.T) {
	entry := gapTestEntry()
	estimates := estTable(map[string]float64{"squat": 200})

	gaps := detectGaps(entry, estimates, nil)

	bySeverity := make(map[string]GapSeverity)
	for _, g := range gaps {
		bySeverity[g.Key] = g.Severity
	}
	if bySeverity["quad_index"] != GapHigh {
		t.Fatalf("quad_index gap must be high, got %s", bySeverity["quad_index"])
	}
	if bySeverity["posterior_index"] != GapHigh {
		t.Fatalf("posterior_index gap must be high, got %s", bySeverity["posterior_index"])
	}
	if bySeverity["pause_squat"] != GapLow {
		t.Fatalf("exercise gap must be low, got %s", bySeverity["pause_squat"])
	}
}

func TestDetectGapsIndexGapsFirst(t *testing.T) {
	gaps := detectGaps(gapTestEntry(), estTable(map[string]float64{"squat": 200}), nil)

	seenExercise := false
	for _, g := range gaps {
		if g.Kind == "exercise" {
			seenExercise = true
		}
		if g.Kind == "index" && seenExercise {
			t.Fatal("index gaps must precede exercise gaps")
		}
	}
}

func TestDetectGapsDeduplicatesProxies(t *testing.T) {
	// front_squat is both a quad_index proxy and a hypothesis-rule numerator;
	// once named in the index gap it must not repeat as an exercise gap.
	gaps := detectGaps(gapTestEntry(), estTable(map[string]float64{"squat": 200}), nil)

	for _, g := range gaps {
		if g.Kind == "exercise" && g.Key == "front_squat" {
			t.Fatal("front_squat already reported via quad_index missing list")
		}
	}
}

func TestDetectGapsComposedIndexNotReported(t *testing.T) {
	entry := gapTestEntry()
	estimates := estTable(map[string]float64{"squat": 200, "front_squat": 150, "pause_squat": 170, "romanian_deadlift": 180})
	indices := composeIndexes(entry, estimates, "squat")

	gaps := detectGaps(entry, estimates, indices)
	if len(gaps) != 0 {
		t.Fatalf("complete data should produce no gaps, got %+v", gaps)
	}
}
