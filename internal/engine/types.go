package engine

// #region imports
import (
	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region schema-version

// SchemaVersion identifies the Bundle shape. Bumped whenever a field changes
// meaning, so downstream consumers can invalidate cached bundles.
const SchemaVersion = "signal_bundle_v2"

// UnknownPhase is the sentinel primary phase when no phase rule fired.
const UnknownPhase = "unknown"

// #endregion

// #region input

// Input is one full diagnostic request. BodyWeight is carried for callers
// outside the engine; no core computation reads it.
type Input struct {
	Lift            string
	PrimaryExercise string
	Observations    []estimate.Observation
	Flags           map[string]bool
	BodyWeight      float64
	Experience      rules.Experience
	Equipment       rules.Equipment
}

// #endregion

// #region phase

// PhaseScore is one phase's accumulated points.
type PhaseScore struct {
	Phase  string
	Points float64
}

// PhaseResult is the classified failure phase for the lift.
type PhaseResult struct {
	Scores     []PhaseScore // descending by points
	Primary    string
	Secondary  string // empty on tie or when no runner-up exists
	Confidence float64
	Tie        bool
}

// #endregion

// #region hypothesis

// EvidenceFact is the structured form of one fired condition, kept alongside
// the rendered evidence string for downstream formatting.
type EvidenceFact struct {
	Key       string  // flag name, or "numerator_to_denominator" for ratios
	Value     float64 // actual percentage for ratios, 1 for flags
	Threshold float64 // expected percentage, 0 for flags
	Numeric   bool
}

// Hypothesis is one ranked limiter candidate.
type Hypothesis struct {
	Key      string
	Label    string
	Category string
	Score    float64 // 0-100
	Evidence []string
	Facts    []EvidenceFact
}

// #endregion

// #region index

// IndexScore is one composed 0-100 strength index.
type IndexScore struct {
	Value      float64
	Confidence float64
	Sources    int
	Proxies    []string // contributing proxy exercises, catalog order
}

// #endregion

// #region archetype

// Archetype is the qualitative dominance classification for the lift family.
type Archetype struct {
	Label      string
	Rationale  string
	Delta      float64
	DeltaKey   string
	Confidence float64
}

// InsufficientDataLabel is the fixed archetype label when no pairing is
// defined or index confidence is too low.
const InsufficientDataLabel = "insufficient data"

// #endregion

// #region efficiency

// Deduction is one itemized efficiency penalty.
type Deduction struct {
	Key    string
	Points float64
	Reason string
}

// EfficiencyScore is the bounded balance score with its itemized deductions.
type EfficiencyScore struct {
	Score      float64 // clamped to [40, 95]
	Deductions []Deduction
	Note       string // set only when no deduction applied
}

// #endregion

// #region gaps

// GapSeverity grades how much a missing datum degrades the diagnosis.
type GapSeverity string

const (
	GapHigh   GapSeverity = "high"
	GapMedium GapSeverity = "medium"
	GapLow    GapSeverity = "low"
)

// DataGap names one piece of expected proxy data that was not supplied.
type DataGap struct {
	Kind     string // "index" or "exercise"
	Key      string // index name or exercise identifier
	Missing  []string
	Severity GapSeverity
}

// #endregion

// #region validation

// ValidationSelection is the recommended self-test plus fallback provenance.
type ValidationSelection struct {
	Test           rules.ValidationTest
	FallbackUsed   bool
	FallbackReason string
}

// #endregion

// #region bundle

// Bundle is the full signal set for one invocation. Immutable and fully
// determined by the input and the catalog entry.
type Bundle struct {
	SchemaVersion  string
	CatalogVersion string
	RulesVersion   string
	Lift           string
	Estimates      map[string]estimate.Estimate
	Indices        map[string]IndexScore
	Phase          PhaseResult
	Hypotheses     []Hypothesis
	Archetype      Archetype
	Efficiency     EfficiencyScore
	Validation     ValidationSelection
	Gaps           []DataGap
}

// #endregion
