package engine

// #region imports
import (
	"fmt"

	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region default-test

// defaultValidationTest is the final fallback when no catalog entry matches
// the phase at all.
var defaultValidationTest = rules.ValidationTest{
	Name:          "top_set_observation",
	Description:   "Work to a confident top single and film it from the side",
	Instructions:  "Watch where bar speed drops most; report that range in your next check-in.",
	MinExperience: rules.Beginner,
	Equipment:     rules.EquipHome,
}

// #endregion

// #region select

// selectValidation picks the recommended self-test for the top hypothesis and
// current phase. Matching narrows from (phase, hypothesis) to phase-only to a
// generic default; within matches, the experience gate can redirect to a
// candidate's nested fallback, and non-commercial equipment access prefers the
// fallback even when the primary would otherwise qualify.
func selectValidation(entry rules.Entry, phase, topHypothesis string, exp rules.Experience, equip rules.Equipment) ValidationSelection {
	var candidates []rules.ValidationTest
	for _, t := range entry.ValidationTests {
		if t.Phase == phase && t.Hypothesis == topHypothesis {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		for _, t := range entry.ValidationTests {
			if t.Phase == phase {
				candidates = append(candidates, t)
			}
		}
	}

	for _, t := range candidates {
		if exp.Rank() < t.MinExperience.Rank() {
			if t.Fallback != nil && exp.Rank() >= t.Fallback.MinExperience.Rank() {
				return ValidationSelection{
					Test:         *t.Fallback,
					FallbackUsed: true,
					FallbackReason: fmt.Sprintf("%s requires %s experience; fallback fits %s",
						t.Name, t.MinExperience, exp),
				}
			}
			continue
		}
		// Equipment takes precedence over experience once the gate is passed.
		if equip != rules.EquipCommercial && t.Fallback != nil {
			return ValidationSelection{
				Test:         *t.Fallback,
				FallbackUsed: true,
				FallbackReason: fmt.Sprintf("%s assumes commercial-gym access; fallback fits %s access",
					t.Name, equip),
			}
		}
		return ValidationSelection{Test: t}
	}

	return ValidationSelection{
		Test:           defaultValidationTest,
		FallbackUsed:   true,
		FallbackReason: fmt.Sprintf("no catalog test matches phase %q; using the generic observation test", phase),
	}
}

// #endregion
