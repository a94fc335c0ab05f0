package engine

// #region imports
import (
	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region detect

// detectGaps reports which expected proxy data is missing: first indices the
// catalog expects to be computable but which ended up absent, then individual
// rule-referenced exercises with no estimate. Both lists follow catalog
// iteration order.
func detectGaps(entry rules.Entry, estimates map[string]estimate.Estimate, indices map[string]IndexScore) []DataGap {
	var gaps []DataGap
	mentioned := make(map[string]bool)

	// Index gaps: expected index names come from the mapping list itself.
	var indexOrder []string
	proxiesByIndex := make(map[string][]string)
	for _, m := range entry.IndexMappings {
		if _, seen := proxiesByIndex[m.Index]; !seen {
			indexOrder = append(indexOrder, m.Index)
		}
		proxiesByIndex[m.Index] = append(proxiesByIndex[m.Index], m.Proxy)
	}

	for _, name := range indexOrder {
		if _, composed := indices[name]; composed {
			continue
		}
		var missing []string
		for _, proxy := range proxiesByIndex[name] {
			if _, ok := estimates[proxy]; !ok {
				missing = append(missing, proxy)
				mentioned[proxy] = true
			}
		}
		severity := GapMedium
		if name == "quad_index" || name == "posterior_index" {
			severity = GapHigh
		}
		gaps = append(gaps, DataGap{
			Kind:     "index",
			Key:      name,
			Missing:  missing,
			Severity: severity,
		})
		mentioned[name] = true
	}

	// Exercise gaps: every estimate referenced by a ratio condition anywhere
	// in the phase or hypothesis rules, unless an earlier gap already names it.
	for _, exercise := range referencedExercises(entry) {
		if _, ok := estimates[exercise]; ok {
			continue
		}
		if mentioned[exercise] {
			continue
		}
		mentioned[exercise] = true
		gaps = append(gaps, DataGap{
			Kind:     "exercise",
			Key:      exercise,
			Missing:  []string{exercise},
			Severity: GapLow,
		})
	}

	return gaps
}

// #endregion

// #region referenced-exercises

// referencedExercises lists every numerator and denominator in the entry's
// phase and hypothesis rules, deduplicated, in catalog order.
func referencedExercises(entry rules.Entry) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(c rules.Condition) {
		for _, id := range []string{c.Numerator, c.Denominator} {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, r := range entry.PhaseRules {
		add(r.Condition)
	}
	for _, r := range entry.HypothesisRules {
		add(r.Condition)
	}
	return out
}

// #endregion
