package engine

import (
	"testing"

	"github.com/barbelllab/liftsignal/internal/rules"
)

func validationEntry() rules.Entry {
	return rules.Entry{
		Lift: "squat",
		ValidationTests: []rules.ValidationTest{
			{
				Phase:         "bottom",
				Hypothesis:    "quad_strength",
				Name:          "pause_squat_top_set",
				MinExperience: rules.Intermediate,
				Equipment:     rules.EquipCommercial,
				Fallback: &rules.ValidationTest{
					Phase:         "bottom",
					Hypothesis:    "quad_strength",
					Name:          "goblet_pause_squat",
					MinExperience: rules.Beginner,
					Equipment:     rules.EquipHome,
				},
			},
			{
				Phase:         "bottom",
				Hypothesis:    "bracing",
				Name:          "tempo_squat",
				MinExperience: rules.Beginner,
				Equipment:     rules.EquipCommercial,
			},
		},
	}
}

func TestSelectValidationExactMatch(t *testing.T) {
	sel := selectValidation(validationEntry(), "bottom", "quad_strength", rules.Advanced, rules.EquipCommercial)

	if sel.Test.Name != "pause_squat_top_set" {
		t.Fatalf("expected pause_squat_top_set, got %s", sel.Test.Name)
	}
	if sel.FallbackUsed {
		t.Fatal("qualified lifter with commercial access should get the primary test")
	}
}

func TestSelectValidationPhaseOnlyMatch(t *testing.T) {
	// No test pairs bottom with posterior_chain; phase-only matching takes over
	// and the first bottom test wins.
	sel := selectValidation(validationEntry(), "bottom", "posterior_chain", rules.Advanced, rules.EquipCommercial)

	if sel.Test.Name != "pause_squat_top_set" {
		t.Fatalf("expected phase-level match pause_squat_top_set, got %s", sel.Test.Name)
	}
}

func TestSelectValidationExperienceGate(t *testing.T) {
	sel := selectValidation(validationEntry(), "bottom", "quad_strength", rules.Beginner, rules.EquipCommercial)

	if sel.Test.Name != "goblet_pause_squat" {
		t.Fatalf("beginner should be redirected to the fallback, got %s", sel.Test.Name)
	}
	if !sel.FallbackUsed {
		t.Fatal("fallback use must be flagged")
	}
	if sel.FallbackReason == "" {
		t.Fatal("fallback reason must explain the redirect")
	}
}

func TestSelectValidationEquipmentPrecedence(t *testing.T) {
	// Experience qualifies for the primary test, but home-gym access still
	// prefers the fallback.
	sel := selectValidation(validationEntry(), "bottom", "quad_strength", rules.Advanced, rules.EquipHome)

	if sel.Test.Name != "goblet_pause_squat" {
		t.Fatalf("home access should select the fallback, got %s", sel.Test.Name)
	}
	if !sel.FallbackUsed {
		t.Fatal("fallback use must be flagged")
	}
}

func TestSelectValidationSkipsUnreachableCandidate(t *testing.T) {
	entry := rules.Entry{
		Lift: "squat",
		ValidationTests: []rules.ValidationTest{
			{
				Phase:         "bottom",
				Hypothesis:    "quad_strength",
				Name:          "heavy_walkout",
				MinExperience: rules.Advanced,
			},
			{
				Phase:         "bottom",
				Hypothesis:    "quad_strength",
				Name:          "tempo_squat",
				MinExperience: rules.Beginner,
			},
		},
	}
	sel := selectValidation(entry, "bottom", "quad_strength", rules.Intermediate, rules.EquipCommercial)

	if sel.Test.Name != "tempo_squat" {
		t.Fatalf("gated candidate without a usable fallback should be skipped, got %s", sel.Test.Name)
	}
}

func TestSelectValidationDefault(t *testing.T) {
	sel := selectValidation(validationEntry(), "lockout", "quad_strength", rules.Advanced, rules.EquipCommercial)

	if sel.Test.Name != "top_set_observation" {
		t.Fatalf("expected generic default, got %s", sel.Test.Name)
	}
	if !sel.FallbackUsed {
		t.Fatal("the generic default counts as a fallback")
	}
}
