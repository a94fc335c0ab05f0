package rules

import (
	"errors"
	"testing"
)

func TestBuiltinCatalogValidates(t *testing.T) {
	catalog, err := Builtin()
	if err != nil {
		t.Fatalf("builtin catalog failed validation: %v", err)
	}
	lifts := catalog.Lifts()
	if len(lifts) != 3 {
		t.Fatalf("expected 3 lifts, got %d: %v", len(lifts), lifts)
	}
	for _, lift := range []string{"squat", "bench_press", "deadlift"} {
		if _, err := catalog.Lookup(lift); err != nil {
			t.Fatalf("lookup %s: %v", lift, err)
		}
	}
}

func TestLookupUnknownLift(t *testing.T) {
	catalog, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	_, err = catalog.Lookup("overhead_press")
	if err == nil {
		t.Fatal("expected error for unknown lift")
	}
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestValidateRejectsBadWeightSum(t *testing.T) {
	entry := Entry{
		Lift:    "squat",
		Version: "v1",
		IndexMappings: []IndexMapping{
			{Index: "quad_index", Proxy: "front_squat", RatioLow: 0.7, RatioHigh: 0.85, Weight: 0.6},
			{Index: "quad_index", Proxy: "leg_press", RatioLow: 1.5, RatioHigh: 2.0, Weight: 0.6},
		},
	}
	if err := ValidateEntry(entry); err == nil {
		t.Fatal("expected weight-sum validation failure")
	}
}

func TestValidateRejectsUnknownConditionType(t *testing.T) {
	entry := Entry{
		Lift:    "squat",
		Version: "v1",
		PhaseRules: []PhaseRule{
			{Condition: Condition{Type: "regex_match", Flag: "x"}, Phase: "bottom", Points: 2},
		},
	}
	if err := ValidateEntry(entry); err == nil {
		t.Fatal("expected condition validation failure")
	}
}

func TestValidateAcceptsReservedConditionTypes(t *testing.T) {
	entry := Entry{
		Lift:    "squat",
		Version: "v1",
		PhaseRules: []PhaseRule{
			{Condition: Condition{Type: CondIndexBelow}, Phase: "bottom", Points: 2},
			{Condition: Condition{Type: CondE1RMGap}, Phase: "bottom", Points: 2},
		},
	}
	if err := ValidateEntry(entry); err != nil {
		t.Fatalf("reserved condition types should validate: %v", err)
	}
}

func TestNewMemoryCatalogRejectsDuplicateLift(t *testing.T) {
	entry := Entry{Lift: "squat", Version: "v1"}
	_, err := NewMemoryCatalog("test", []Entry{entry, entry})
	if err == nil {
		t.Fatal("expected duplicate-lift error")
	}
}

func TestExperienceRanks(t *testing.T) {
	if Beginner.Rank() >= Intermediate.Rank() || Intermediate.Rank() >= Advanced.Rank() {
		t.Fatal("experience ranks out of order")
	}
	if Experience("elite").Rank() != -1 {
		t.Fatal("unknown experience should rank -1")
	}
}

func TestParseYAMLCatalog(t *testing.T) {
	data := []byte(`
version: test-v1
entries:
  - lift: squat
    version: squat-v1
    phases: [bottom, lockout]
    phase_rules:
      - condition: {type: flag, flag: hips_shoot_up}
        phase: bottom
        points: 3
    hypothesis_rules:
      - condition: {type: ratio_below, numerator: front_squat, denominator: squat, threshold: 0.8}
        key: quad_strength
        label: Quad strength
        category: muscle
        points: 30
        evidence: "Front squat at {value}, expected {expected}"
    index_mappings:
      - {index: quad_index, proxy: front_squat, ratio_low: 0.7, ratio_high: 0.85, weight: 1.0}
    validation_tests:
      - phase: bottom
        hypothesis: quad_strength
        name: pause_squat_top_set
        description: Heavy pause triple
        instructions: Compare against your squat.
        min_experience: intermediate
        equipment: commercial
        fallback:
          phase: bottom
          hypothesis: quad_strength
          name: goblet_pause_squat
          description: Goblet pause squat
          instructions: Max reps.
          min_experience: beginner
          equipment: home
`)
	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if catalog.Version() != "test-v1" {
		t.Fatalf("expected version test-v1, got %s", catalog.Version())
	}
	entry, err := catalog.Lookup("squat")
	if err != nil {
		t.Fatal(err)
	}
	if entry.ValidationTests[0].Fallback == nil {
		t.Fatal("expected nested fallback to parse")
	}
	if entry.ValidationTests[0].Fallback.Name != "goblet_pause_squat" {
		t.Fatalf("unexpected fallback name %s", entry.ValidationTests[0].Fallback.Name)
	}
}

func TestParseRejectsMissingVersion(t *testing.T) {
	if _, err := Parse([]byte("entries: []")); err == nil {
		t.Fatal("expected error for missing version")
	}
}
