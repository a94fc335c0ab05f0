package engine

// #region imports
import (
	"fmt"
	"math"
	"strings"
)

// #endregion

// #region pairing

// pairing names the two indices compared for a lift family, plus the
// lift-specific wording for each dominance outcome.
type pairing struct {
	primaryIndex   string
	secondaryIndex string
	deltaKey       string
	primaryLabel   string
	secondaryLabel string
	balancedLabel  string
}

// familyPairing resolves a lift identifier to its index pairing. Lifts outside
// the squat/deadlift/bench families have no pairing.
func familyPairing(lift string) (pairing, bool) {
	switch {
	case strings.Contains(lift, "bench"):
		return pairing{
			primaryIndex:   "back_tension_index",
			secondaryIndex: "triceps_index",
			deltaKey:       "back_tension_vs_triceps",
			primaryLabel:   "back-tension dominant presser",
			secondaryLabel: "triceps dominant presser",
			balancedLabel:  "balanced pressing profile",
		}, true
	case strings.Contains(lift, "squat"), strings.Contains(lift, "deadlift"):
		return pairing{
			primaryIndex:   "posterior_index",
			secondaryIndex: "quad_index",
			deltaKey:       "posterior_vs_quad",
			primaryLabel:   "posterior-chain dominant",
			secondaryLabel: "quad dominant",
			balancedLabel:  "balanced lower-body profile",
		}, true
	}
	return pairing{}, false
}

// #endregion

// #region thresholds

const (
	// archetypeDeltaBand is the index-point spread beyond which one quality
	// counts as dominant.
	archetypeDeltaBand = 15
	// archetypeMinConfidence is the floor below which a present index is too
	// uncertain to classify against.
	archetypeMinConfidence = 0.3
	// neutralBaseline substitutes for a missing side when the other side is
	// usable on its own.
	neutralBaseline = 50.0
)

// #endregion

// #region classify

// classifyArchetype compares the lift family's two composed indices and
// produces a qualitative dominance label with rationale.
func classifyArchetype(lift string, indices map[string]IndexScore, phase PhaseResult) Archetype {
	pair, ok := familyPairing(lift)
	if !ok {
		return insufficientArchetype("no index pairing defined for this lift")
	}

	primary, hasPrimary := indices[pair.primaryIndex]
	secondary, hasSecondary := indices[pair.secondaryIndex]

	if !hasPrimary && !hasSecondary {
		a := insufficientArchetype("neither compared index could be computed")
		a.DeltaKey = pair.deltaKey
		return a
	}
	if hasPrimary && primary.Confidence < archetypeMinConfidence {
		a := insufficientArchetype(fmt.Sprintf("%s confidence too low", pair.primaryIndex))
		a.DeltaKey = pair.deltaKey
		return a
	}
	if hasSecondary && secondary.Confidence < archetypeMinConfidence {
		a := insufficientArchetype(fmt.Sprintf("%s confidence too low", pair.secondaryIndex))
		a.DeltaKey = pair.deltaKey
		return a
	}

	primaryVal, secondaryVal := primary.Value, secondary.Value
	confidence := 0.0
	substituted := ""
	switch {
	case hasPrimary && hasSecondary:
		confidence = math.Min(primary.Confidence, secondary.Confidence)
	case hasPrimary:
		secondaryVal = neutralBaseline
		confidence = archetypeMinConfidence
		substituted = pair.secondaryIndex
	default:
		primaryVal = neutralBaseline
		confidence = archetypeMinConfidence
		substituted = pair.primaryIndex
	}

	delta := primaryVal - secondaryVal

	label := pair.balancedLabel
	switch {
	case delta >= archetypeDeltaBand:
		label = pair.primaryLabel
	case delta <= -archetypeDeltaBand:
		label = pair.secondaryLabel
	}

	rationale := fmt.Sprintf("%s %.0f vs %s %.0f (delta %+.0f)",
		pair.primaryIndex, primaryVal, pair.secondaryIndex, secondaryVal, delta)
	if substituted != "" {
		rationale += fmt.Sprintf("; %s missing, neutral baseline %.0f substituted", substituted, neutralBaseline)
	}
	if phase.Primary != UnknownPhase && label != pair.balancedLabel {
		rationale += fmt.Sprintf("; failures cluster in the %s phase", phase.Primary)
	}

	return Archetype{
		Label:      label,
		Rationale:  rationale,
		Delta:      delta,
		DeltaKey:   pair.deltaKey,
		Confidence: confidence,
	}
}

func insufficientArchetype(reason string) Archetype {
	return Archetype{
		Label:     InsufficientDataLabel,
		Rationale: reason,
	}
}

// #endregion
