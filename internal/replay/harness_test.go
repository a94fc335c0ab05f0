package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/barbelllab/liftsignal/internal/rules"
)

func squatCase(id string) FixtureCase {
	return FixtureCase{
		CaseID: id,
		Lift:   "squat",
		Observations: []FixtureObservation{
			{Exercise: "squat", Weight: 200, Reps: 3},
			{Exercise: "front_squat", Weight: 140, Reps: 3},
		},
		Flags:      map[string]bool{"hips_shoot_up": true},
		Experience: "intermediate",
		Equipment:  "commercial",
	}
}

func TestReplayMatchingCase(t *testing.T) {
	catalog, err := rules.Builtin()
	if err != nil {
		t.Fatal(err)
	}

	c := squatCase("case-001")
	c.Expected = FixtureExpected{
		PrimaryPhase:  "bottom",
		TopHypothesis: "quad_strength",
	}
	fixture := &Fixture{Cases: []FixtureCase{c}}

	results, err := Replay(catalog, fixture)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !results[0].Match() {
		t.Fatalf("expected a match, mismatches: %v", results[0].Mismatches)
	}
}

func TestReplayDivergingCase(t *testing.T) {
	catalog, err := rules.Builtin()
	if err != nil {
		t.Fatal(err)
	}

	c := squatCase("case-002")
	c.Expected = FixtureExpected{PrimaryPhase: "lockout"}
	fixture := &Fixture{Cases: []FixtureCase{c}}

	results, err := Replay(catalog, fixture)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Match() {
		t.Fatal("expected a primary_phase mismatch")
	}
	if len(results[0].Mismatches) != 1 {
		t.Fatalf("only the stated expectation should be checked, got %v", results[0].Mismatches)
	}
}

func TestReplayEmptyExpectationsAlwaysMatch(t *testing.T) {
	catalog, err := rules.Builtin()
	if err != nil {
		t.Fatal(err)
	}

	fixture := &Fixture{Cases: []FixtureCase{squatCase("case-003")}}
	results, err := Replay(catalog, fixture)
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Match() {
		t.Fatalf("no expectations means no mismatches, got %v", results[0].Mismatches)
	}
}

func TestReplayUnknownLiftAborts(t *testing.T) {
	catalog, err := rules.Builtin()
	if err != nil {
		t.Fatal(err)
	}

	c := squatCase("case-004")
	c.Lift = "overhead_press"
	_, err = Replay(catalog, &Fixture{Cases: []FixtureCase{c}})
	if err == nil {
		t.Fatal("a catalog miss must abort the replay")
	}
}

func TestLoadFixtureRoundTrip(t *testing.T) {
	c := squatCase("case-005")
	score := 92.0
	c.Expected = FixtureExpected{
		PrimaryPhase:    "bottom",
		EfficiencyScore: &score,
	}
	fixture := Fixture{Description: "squat regression set", Cases: []FixtureCase{c}}

	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if loaded.Description != "squat regression set" {
		t.Fatalf("unexpected description %q", loaded.Description)
	}
	if len(loaded.Cases) != 1 || loaded.Cases[0].CaseID != "case-005" {
		t.Fatalf("unexpected cases: %+v", loaded.Cases)
	}
	if loaded.Cases[0].Expected.EfficiencyScore == nil || *loaded.Cases[0].Expected.EfficiencyScore != 92 {
		t.Fatal("efficiency expectation did not survive the round trip")
	}
}

func TestToInputDefaultsPrimaryExercise(t *testing.T) {
	c := squatCase("case-006")
	in := c.ToInput()
	if in.PrimaryExercise != "squat" {
		t.Fatalf("primary exercise should default to the lift, got %s", in.PrimaryExercise)
	}
	if in.Experience != rules.Intermediate || in.Equipment != rules.EquipCommercial {
		t.Fatalf("experience/equipment conversion failed: %s/%s", in.Experience, in.Equipment)
	}
}
