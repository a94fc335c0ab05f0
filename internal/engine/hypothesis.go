package engine

// #region imports
import (
	"fmt"
	"sort"
	"strings"

	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region selection-constants

const (
	// hypothesisScoreCap bounds any single hypothesis regardless of how many
	// rules contributed.
	hypothesisScoreCap = 100
	// hypothesisFloor is the score a hypothesis needs to qualify outright.
	hypothesisFloor = 25
	// hypothesisMaxReturned caps the list when enough qualify.
	hypothesisMaxReturned = 5
	// hypothesisMinReturned is the target list size when at least that many
	// hypotheses fired at all. Never padded with unfired placeholders.
	hypothesisMinReturned = 3
)

// #endregion

// #region score-hypotheses

// scoreHypotheses accumulates weighted evidence per limiter hypothesis and
// returns the ranked, size-bounded candidate list.
func scoreHypotheses(entry rules.Entry, estimates map[string]estimate.Estimate, flags map[string]bool) []Hypothesis {
	byKey := make(map[string]*Hypothesis)
	var order []string // first-fire order for deterministic ranking ties

	for _, r := range entry.HypothesisRules {
		res := evalCondition(r.Condition, estimates, flags)
		if !res.fired {
			continue
		}

		h, seen := byKey[r.Key]
		if !seen {
			h = &Hypothesis{Key: r.Key, Label: r.Label, Category: r.Category}
			byKey[r.Key] = h
			order = append(order, r.Key)
		}

		h.Score += r.Points
		h.Evidence = append(h.Evidence, renderEvidence(r.Evidence, res))
		fact := EvidenceFact{Key: res.key, Value: 1}
		if res.numeric {
			fact.Value = res.actualPct
			fact.Threshold = res.expectedPct
			fact.Numeric = true
		}
		h.Facts = append(h.Facts, fact)
	}

	all := make([]Hypothesis, 0, len(order))
	for _, key := range order {
		h := *byKey[key]
		if h.Score > hypothesisScoreCap {
			h.Score = hypothesisScoreCap
		}
		all = append(all, h)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	return selectHypotheses(all)
}

// #endregion

// #region selection

// selectHypotheses applies the asymmetric size rule: when 3+ hypotheses clear
// the floor, return the top 5 of those; otherwise top up from the remainder to
// max(3, qualified), never beyond what actually fired. Fewer than 3 fired
// hypotheses yield fewer than 3 results rather than invented padding.
func selectHypotheses(sorted []Hypothesis) []Hypothesis {
	above := 0
	for _, h := range sorted {
		if h.Score >= hypothesisFloor {
			above++
		}
	}

	if above >= hypothesisMinReturned {
		limit := above
		if limit > hypothesisMaxReturned {
			limit = hypothesisMaxReturned
		}
		return sorted[:limit]
	}

	limit := hypothesisMinReturned
	if above > limit {
		limit = above
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// #endregion

// #region evidence

// renderEvidence substitutes {value} and {expected} with the condition's
// actual and threshold percentages. Flag conditions have no placeholders.
func renderEvidence(template string, res conditionResult) string {
	if !res.numeric {
		return template
	}
	out := strings.ReplaceAll(template, "{value}", fmt.Sprintf("%.0f%%", res.actualPct))
	return strings.ReplaceAll(out, "{expected}", fmt.Sprintf("%.0f%%", res.expectedPct))
}

// #endregion
