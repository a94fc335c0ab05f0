package engine

// #region imports
import (
	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region diagnose

// Diagnose resolves the lift's catalog entry and runs the engine. A catalog
// miss is the only error; it propagates unchanged.
func Diagnose(catalog rules.Catalog, in Input) (Bundle, error) {
	entry, err := catalog.Lookup(in.Lift)
	if err != nil {
		return Bundle{}, err
	}
	bundle := Run(in, entry)
	bundle.CatalogVersion = catalog.Version()
	return bundle, nil
}

// #endregion

// #region run

// Run sequences the full diagnostic computation for one input against one
// catalog entry. Pure: no I/O, no clock, no randomness. Identical inputs
// always produce an identical Bundle.
func Run(in Input, entry rules.Entry) Bundle {
	estimates := estimate.BuildTable(in.Observations)

	phase := scorePhases(entry, estimates, in.Flags)
	hypotheses := scoreHypotheses(entry, estimates, in.Flags)
	indices := composeIndexes(entry, estimates, in.PrimaryExercise)

	archetype := classifyArchetype(in.Lift, indices, phase)
	gaps := detectGaps(entry, estimates, indices)
	efficiency := scoreEfficiency(phase, archetype, indices, in.Flags, gaps)

	topHypothesis := ""
	if len(hypotheses) > 0 {
		topHypothesis = hypotheses[0].Key
	}
	validation := selectValidation(entry, phase.Primary, topHypothesis, in.Experience, in.Equipment)

	return Bundle{
		SchemaVersion: SchemaVersion,
		RulesVersion:  entry.Version,
		Lift:          in.Lift,
		Estimates:     estimates,
		Indices:       indices,
		Phase:         phase,
		Hypotheses:    hypotheses,
		Archetype:     archetype,
		Efficiency:    efficiency,
		Validation:    validation,
		Gaps:          gaps,
	}
}

// #endregion
