package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/barbelllab/liftsignal/internal/engine"
	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Cases       []FixtureCase `json:"cases"`
}

// FixtureObservation mirrors estimate.Observation with JSON tags.
type FixtureObservation struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Sets     int     `json:"sets"`
	RPE      float64 `json:"rpe,omitempty"`
}

// FixtureCase is one recorded engine input plus its expected signals.
type FixtureCase struct {
	CaseID          string               `json:"case_id"`
	Lift            string               `json:"lift"`
	PrimaryExercise string               `json:"primary_exercise,omitempty"`
	Observations    []FixtureObservation `json:"observations"`
	Flags           map[string]bool      `json:"flags,omitempty"`
	BodyWeight      float64              `json:"body_weight,omitempty"`
	Experience      string               `json:"experience"`
	Equipment       string               `json:"equipment"`
	Expected        FixtureExpected      `json:"expected"`
}

// FixtureExpected captures the signals a replay must reproduce. Empty fields
// are not checked.
type FixtureExpected struct {
	PrimaryPhase    string   `json:"primary_phase,omitempty"`
	TopHypothesis   string   `json:"top_hypothesis,omitempty"`
	ArchetypeLabel  string   `json:"archetype_label,omitempty"`
	ValidationTest  string   `json:"validation_test,omitempty"`
	EfficiencyScore *float64 `json:"efficiency_score,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToInput converts a fixture case to a domain engine input.
func (c *FixtureCase) ToInput() engine.Input {
	primary := c.PrimaryExercise
	if primary == "" {
		primary = c.Lift
	}
	observations := make([]estimate.Observation, len(c.Observations))
	for i, o := range c.Observations {
		observations[i] = estimate.Observation{
			Exercise: o.Exercise,
			Weight:   o.Weight,
			Reps:     o.Reps,
			Sets:     o.Sets,
			RPE:      o.RPE,
		}
	}
	return engine.Input{
		Lift:            c.Lift,
		PrimaryExercise: primary,
		Observations:    observations,
		Flags:           c.Flags,
		BodyWeight:      c.BodyWeight,
		Experience:      rules.Experience(c.Experience),
		Equipment:       rules.Equipment(c.Equipment),
	}
}

// #endregion fixture-loader
