package estimate

import "math"

// #region constants

// maxFormulaReps caps the rep count fed into the Epley formula. Sets longer
// than this carry little 1RM information, so the estimate is tagged low.
const maxFormulaReps = 10

// #endregion

// #region from-set

// FromSet converts a (weight, reps) observation into an estimated one-rep max.
// Epley: value = weight * (1 + reps/30), reps capped at maxFormulaReps.
// Malformed input (weight <= 0, reps < 1) is the caller's responsibility.
func FromSet(exercise string, weight float64, reps int) Estimate {
	clamped := reps > maxFormulaReps
	effective := reps
	if clamped {
		effective = maxFormulaReps
	}

	value := math.Round(weight * (1 + float64(effective)/30.0))

	conf := ConfidenceMedium
	switch {
	case clamped:
		conf = ConfidenceLow
	case reps <= 4:
		conf = ConfidenceHigh
	}

	return Estimate{
		Exercise:    exercise,
		Value:       value,
		RepsUsed:    effective,
		RepsClamped: clamped,
		Confidence:  conf,
	}
}

// #endregion

// #region build-table

// BuildTable derives one estimate per distinct exercise from raw observations.
// When an exercise appears more than once, the larger estimate wins; ties keep
// the first seen.
func BuildTable(observations []Observation) map[string]Estimate {
	table := make(map[string]Estimate, len(observations))
	for _, obs := range observations {
		est := FromSet(obs.Exercise, obs.Weight, obs.Reps)
		if prev, ok := table[obs.Exercise]; ok && prev.Value >= est.Value {
			continue
		}
		table[obs.Exercise] = est
	}
	return table
}

// #endregion
