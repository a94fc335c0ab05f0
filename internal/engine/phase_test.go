package engine

import (
	"testing"

	"github.com/barbelllab/liftsignal/internal/rules"
)

func flagRule(flag, phase string, points float64) rules.PhaseRule {
	return rules.PhaseRule{
		Condition: rules.Condition{Type: rules.CondFlag, Flag: flag},
		Phase:     phase,
		Points:    points,
	}
}

func TestScorePhasesAccumulates(t *testing.T) {
	entry := rules.Entry{PhaseRules: []rules.PhaseRule{
		flagRule("a", "bottom", 3),
		flagRule("b", "bottom", 2),
		flagRule("c", "lockout", 2),
	}}
	res := scorePhases(entry, nil, map[string]bool{"a": true, "b": true, "c": true})

	if res.Primary != "bottom" {
		t.Fatalf("expected primary bottom, got %s", res.Primary)
	}
	if res.Secondary != "lockout" {
		t.Fatalf("expected secondary lockout, got %s", res.Secondary)
	}
	if res.Tie {
		t.Fatal("5 vs 2 is not a tie")
	}
	// 1 - 2/5 = 0.6
	if res.Confidence != 0.6 {
		t.Fatalf("expected confidence 0.6, got %.2f", res.Confidence)
	}
}

func TestScorePhasesTie(t *testing.T) {
	entry := rules.Entry{PhaseRules: []rules.PhaseRule{
		flagRule("a", "bottom", 3),
		flagRule("b", "lockout", 3),
	}}
	res := scorePhases(entry, nil, map[string]bool{"a": true, "b": true})

	if !res.Tie {
		t.Fatal("equal totals must report a tie")
	}
	if res.Confidence != 0 {
		t.Fatalf("tie confidence must be 0, got %.2f", res.Confidence)
	}
	if res.Secondary != "" {
		t.Fatalf("tie must not name a secondary phase, got %s", res.Secondary)
	}
	// First phase to accrue points wins the tiebreak.
	if res.Primary != "bottom" {
		t.Fatalf("expected first-accrual phase bottom, got %s", res.Primary)
	}
}

func TestScorePhasesSinglePhase(t *testing.T) {
	entry := rules.Entry{PhaseRules: []rules.PhaseRule{
		flagRule("a", "midrange", 2),
	}}
	res := scorePhases(entry, nil, map[string]bool{"a": true})

	if res.Primary != "midrange" {
		t.Fatalf("expected midrange, got %s", res.Primary)
	}
	if res.Confidence != 1 {
		t.Fatalf("sole phase should score confidence 1, got %.2f", res.Confidence)
	}
	if res.Secondary != "" {
		t.Fatal("no runner-up should be named")
	}
}

func TestScorePhasesNoEvidence(t *testing.T) {
	entry := rules.Entry{PhaseRules: []rules.PhaseRule{
		flagRule("a", "bottom", 3),
	}}
	res := scorePhases(entry, nil, nil)

	if res.Primary != UnknownPhase {
		t.Fatalf("expected %s, got %s", UnknownPhase, res.Primary)
	}
	if res.Confidence != 0 {
		t.Fatalf("unknown phase carries zero confidence, got %.2f", res.Confidence)
	}
	if len(res.Scores) != 0 {
		t.Fatalf("expected no scores, got %d", len(res.Scores))
	}
}
