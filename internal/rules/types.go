package rules

// #region condition-type

// ConditionType discriminates the closed set of condition shapes a rule may use.
// IndexBelow and E1RMGap are reserved by the catalog schema; they parse and
// carry data but always evaluate to not-fired in the current rule set.
type ConditionType string

const (
	CondFlag       ConditionType = "flag"
	CondRatioBelow ConditionType = "ratio_below"
	CondRatioAbove ConditionType = "ratio_above"
	CondIndexBelow ConditionType = "index_below"
	CondE1RMGap    ConditionType = "e1rm_gap"
)

// #endregion

// #region condition

// Condition is one evaluable predicate over the estimate table and flag set.
// Flag conditions use Flag; ratio conditions use Numerator/Denominator/Threshold.
type Condition struct {
	Type        ConditionType `yaml:"type"`
	Flag        string        `yaml:"flag,omitempty"`
	Numerator   string        `yaml:"numerator,omitempty"`
	Denominator string        `yaml:"denominator,omitempty"`
	Threshold   float64       `yaml:"threshold,omitempty"`
}

// #endregion

// #region phase-rule

// PhaseRule adds Points to Phase when its condition fires.
type PhaseRule struct {
	Condition Condition `yaml:"condition"`
	Phase     string    `yaml:"phase"`
	Points    float64   `yaml:"points"`
}

// #endregion

// #region hypothesis-rule

// HypothesisRule adds Points to the limiter hypothesis Key when its condition
// fires. Evidence is a template; {value} and {expected} are substituted with
// the condition's actual and threshold percentages.
type HypothesisRule struct {
	Condition Condition `yaml:"condition"`
	Key       string    `yaml:"key"`
	Label     string    `yaml:"label"`
	Category  string    `yaml:"category"`
	Points    float64   `yaml:"points"`
	Evidence  string    `yaml:"evidence"`
}

// #endregion

// #region index-mapping

// IndexMapping contributes one proxy-exercise ratio to a composite index.
// Weights for all mappings targeting the same index are expected to sum to 1.0;
// ValidateEntry enforces this at load time.
type IndexMapping struct {
	Index     string  `yaml:"index"`
	Proxy     string  `yaml:"proxy"`
	RatioLow  float64 `yaml:"ratio_low"`
	RatioHigh float64 `yaml:"ratio_high"`
	Weight    float64 `yaml:"weight"`
}

// #endregion

// #region experience

// Experience is the ordered training-experience enum.
type Experience string

const (
	Beginner     Experience = "beginner"
	Intermediate Experience = "intermediate"
	Advanced     Experience = "advanced"
)

var experienceRank = map[Experience]int{
	Beginner:     0,
	Intermediate: 1,
	Advanced:     2,
}

// Rank returns the ordinal for an experience level, -1 when unknown.
func (e Experience) Rank() int {
	if r, ok := experienceRank[e]; ok {
		return r
	}
	return -1
}

// #endregion

// #region equipment

// Equipment is the caller's equipment-access level.
type Equipment string

const (
	EquipCommercial Equipment = "commercial"
	EquipLimited    Equipment = "limited"
	EquipHome       Equipment = "home"
)

// #endregion

// #region validation-test

// ValidationTest is one recommended self-test, keyed by (phase, hypothesis).
// Fallback, when present, is the substitute used when the caller fails the
// experience gate or lacks full equipment access.
type ValidationTest struct {
	Phase         string          `yaml:"phase"`
	Hypothesis    string          `yaml:"hypothesis"`
	Name          string          `yaml:"name"`
	Description   string          `yaml:"description"`
	Instructions  string          `yaml:"instructions"`
	MinExperience Experience      `yaml:"min_experience"`
	Equipment     Equipment       `yaml:"equipment"`
	Fallback      *ValidationTest `yaml:"fallback,omitempty"`
}

// #endregion

// #region entry

// Entry is one lift's versioned, immutable rule configuration.
type Entry struct {
	Lift            string           `yaml:"lift"`
	Version         string           `yaml:"version"`
	Phases          []string         `yaml:"phases"`
	PhaseRules      []PhaseRule      `yaml:"phase_rules"`
	HypothesisRules []HypothesisRule `yaml:"hypothesis_rules"`
	IndexMappings   []IndexMapping   `yaml:"index_mappings"`
	ValidationTests []ValidationTest `yaml:"validation_tests"`
}

// #endregion
