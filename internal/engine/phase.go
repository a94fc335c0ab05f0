package engine

// #region imports
import (
	"sort"

	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region score-phases

// scorePhases accumulates weighted evidence per phase and classifies the
// primary failure phase. Rules only ever add points.
func scorePhases(entry rules.Entry, estimates map[string]estimate.Estimate, flags map[string]bool) PhaseResult {
	totals := make(map[string]float64)
	var order []string // first-accrual order for deterministic ties

	for _, r := range entry.PhaseRules {
		res := evalCondition(r.Condition, estimates, flags)
		if !res.fired {
			continue
		}
		if _, seen := totals[r.Phase]; !seen {
			order = append(order, r.Phase)
		}
		totals[r.Phase] += r.Points
	}

	scores := make([]PhaseScore, 0, len(order))
	for _, phase := range order {
		scores = append(scores, PhaseScore{Phase: phase, Points: totals[phase]})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Points > scores[j].Points
	})

	if len(scores) == 0 {
		return PhaseResult{Primary: UnknownPhase}
	}

	top := scores[0]
	var runnerUp float64
	if len(scores) > 1 {
		runnerUp = scores[1].Points
	}

	// Equal top totals mean the evidence cannot separate the phases.
	if len(scores) > 1 && runnerUp == top.Points {
		return PhaseResult{
			Scores:  scores,
			Primary: top.Phase,
			Tie:     true,
		}
	}

	confidence := clamp01(1 - runnerUp/top.Points)

	result := PhaseResult{
		Scores:     scores,
		Primary:    top.Phase,
		Confidence: confidence,
	}
	if len(scores) > 1 {
		result.Secondary = scores[1].Phase
	}
	return result
}

// #endregion

// #region helpers

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion
