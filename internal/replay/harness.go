package replay

// #region imports
import (
	"fmt"
	"math"

	"github.com/barbelllab/liftsignal/internal/engine"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region result

// Result is the outcome of replaying one fixture case.
type Result struct {
	CaseID         string
	PrimaryPhase   string
	TopHypothesis  string
	ArchetypeLabel string
	ValidationTest string
	Efficiency     float64
	Mismatches     []string // empty means the case matched
}

// Match reports whether every checked expectation held.
func (r Result) Match() bool {
	return len(r.Mismatches) == 0
}

// #endregion result

// #region replay

// Replay runs every fixture case through the engine and compares the produced
// signals against the case's expectations. A catalog miss aborts the run.
func Replay(catalog rules.Catalog, fixture *Fixture) ([]Result, error) {
	results := make([]Result, 0, len(fixture.Cases))
	for i := range fixture.Cases {
		c := &fixture.Cases[i]
		bundle, err := engine.Diagnose(catalog, c.ToInput())
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.CaseID, err)
		}
		results = append(results, compare(c, bundle))
	}
	return results, nil
}

// #endregion replay

// #region compare

func compare(c *FixtureCase, bundle engine.Bundle) Result {
	topHypothesis := ""
	if len(bundle.Hypotheses) > 0 {
		topHypothesis = bundle.Hypotheses[0].Key
	}

	r := Result{
		CaseID:         c.CaseID,
		PrimaryPhase:   bundle.Phase.Primary,
		TopHypothesis:  topHypothesis,
		ArchetypeLabel: bundle.Archetype.Label,
		ValidationTest: bundle.Validation.Test.Name,
		Efficiency:     bundle.Efficiency.Score,
	}

	exp := c.Expected
	check := func(field, want, got string) {
		if want != "" && want != got {
			r.Mismatches = append(r.Mismatches, fmt.Sprintf("%s: want %q, got %q", field, want, got))
		}
	}
	check("primary_phase", exp.PrimaryPhase, r.PrimaryPhase)
	check("top_hypothesis", exp.TopHypothesis, r.TopHypothesis)
	check("archetype_label", exp.ArchetypeLabel, r.ArchetypeLabel)
	check("validation_test", exp.ValidationTest, r.ValidationTest)
	if exp.EfficiencyScore != nil && math.Abs(*exp.EfficiencyScore-r.Efficiency) > 0.001 {
		r.Mismatches = append(r.Mismatches,
			fmt.Sprintf("efficiency_score: want %.1f, got %.1f", *exp.EfficiencyScore, r.Efficiency))
	}

	return r
}

// #endregion compare
