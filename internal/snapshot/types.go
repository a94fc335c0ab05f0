package snapshot

// #region imports
import (
	"time"

	"github.com/barbelllab/liftsignal/internal/engine"
	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region snapshot

// Snapshot is one recorded set of lifter-reported data for a lift. Snapshots
// are inputs only; diagnostic output is recomputed from them on demand and
// never stored.
type Snapshot struct {
	ID              string
	Lift            string
	PrimaryExercise string
	Observations    []estimate.Observation
	Flags           map[string]bool
	BodyWeight      float64
	Experience      rules.Experience
	Equipment       rules.Equipment
	CreatedAt       time.Time
}

// #endregion

// #region to-input

// Input converts a snapshot into an engine invocation input.
func (s Snapshot) Input() engine.Input {
	primary := s.PrimaryExercise
	if primary == "" {
		primary = s.Lift
	}
	return engine.Input{
		Lift:            s.Lift,
		PrimaryExercise: primary,
		Observations:    s.Observations,
		Flags:           s.Flags,
		BodyWeight:      s.BodyWeight,
		Experience:      s.Experience,
		Equipment:       s.Equipment,
	}
}

// #endregion
