package estimate

// #region confidence

// Confidence tags how reliable an estimated one-rep max is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// #endregion

// #region observation

// Observation is one reported working set. Supplied fresh per invocation,
// never mutated.
type Observation struct {
	Exercise string
	Weight   float64
	Reps     int
	Sets     int
	RPE      float64 // 0 = not reported
}

// #endregion

// #region estimate

// Estimate is a derived one-rep max for a single exercise.
type Estimate struct {
	Exercise    string
	Value       float64
	RepsUsed    int
	RepsClamped bool
	Confidence  Confidence
}

// #endregion
