package engine

import (
	"strings"
	"testing"
)

func TestArchetypeUnknownFamily(t *testing.T) {
	a := classifyArchetype("overhead_press", nil, PhaseResult{Primary: UnknownPhase})
	if a.Label != InsufficientDataLabel {
		t.Fatalf("expected %q, got %q", InsufficientDataLabel, a.Label)
	}
	if a.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %.2f", a.Confidence)
	}
}

func TestArchetypePosteriorDominant(t *testing.T) {
	indices := map[string]IndexScore{
		"posterior_index": {Value: 82, Confidence: 0.65, Sources: 2},
		"quad_index":      {Value: 60, Confidence: 0.90, Sources: 3},
	}
	a := classifyArchetype("squat", indices, PhaseResult{Primary: "bottom", Confidence: 0.7})

	if a.Label != "posterior-chain dominant" {
		t.Fatalf("expected posterior-chain dominant, got %q", a.Label)
	}
	if a.Delta != 22 {
		t.Fatalf("expected delta 22, got %.0f", a.Delta)
	}
	if a.Confidence != 0.65 {
		t.Fatalf("confidence should take the weaker side, got %.2f", a.Confidence)
	}
	if !strings.Contains(a.Rationale, "bottom phase") {
		t.Fatalf("rationale should name the failing phase: %q", a.Rationale)
	}
}

func TestArchetypeQuadDominant(t *testing.T) {
	indices := map[string]IndexScore{
		"posterior_index": {Value: 55, Confidence: 0.65, Sources: 2},
		"quad_index":      {Value: 80, Confidence: 0.65, Sources: 2},
	}
	a := classifyArchetype("deadlift", indices, PhaseResult{Primary: UnknownPhase})

	if a.Label != "quad dominant" {
		t.Fatalf("expected quad dominant, got %q", a.Label)
	}
	if a.Delta != -25 {
		t.Fatalf("expected delta -25, got %.0f", a.Delta)
	}
}

func TestArchetypeBalancedWithinBand(t *testing.T) {
	indices := map[string]IndexScore{
		"posterior_index": {Value: 70, Confidence: 0.65, Sources: 2},
		"quad_index":      {Value: 62, Confidence: 0.65, Sources: 2},
	}
	a := classifyArchetype("squat", indices, PhaseResult{Primary: "bottom", Confidence: 0.7})

	if a.Label != "balanced lower-body profile" {
		t.Fatalf("delta 8 sits inside the band, expected balanced, got %q", a.Label)
	}
	if strings.Contains(a.Rationale, "phase") {
		t.Fatalf("balanced profiles should not reference the failing phase: %q", a.Rationale)
	}
}

func TestArchetypeNeutralBaselineSubstitution(t *testing.T) {
	indices := map[string]IndexScore{
		"posterior_index": {Value: 72, Confidence: 0.65, Sources: 2},
	}
	a := classifyArchetype("squat", indices, PhaseResult{Primary: UnknownPhase})

	// 72 vs baseline 50 -> delta 22, posterior dominant at reduced confidence.
	if a.Label != "posterior-chain dominant" {
		t.Fatalf("expected posterior-chain dominant, got %q", a.Label)
	}
	if a.Confidence != 0.3 {
		t.Fatalf("substituted comparisons cap at 0.3 confidence, got %.2f", a.Confidence)
	}
	if !strings.Contains(a.Rationale, "neutral baseline 50 substituted") {
		t.Fatalf("rationale should disclose the substitution: %q", a.Rationale)
	}
}

func TestArchetypeLowConfidenceIndex(t *testing.T) {
	indices := map[string]IndexScore{
		"posterior_index": {Value: 90, Confidence: 0.2, Sources: 1},
		"quad_index":      {Value: 60, Confidence: 0.65, Sources: 2},
	}
	a := classifyArchetype("squat", indices, PhaseResult{Primary: "bottom"})

	if a.Label != InsufficientDataLabel {
		t.Fatalf("under-confident index must not classify, got %q", a.Label)
	}
	if a.DeltaKey != "posterior_vs_quad" {
		t.Fatalf("delta key should still identify the pairing, got %q", a.DeltaKey)
	}
}

func TestArchetypeBenchFamily(t *testing.T) {
	indices := map[string]IndexScore{
		"back_tension_index": {Value: 60, Confidence: 0.65, Sources: 2},
		"triceps_index":      {Value: 85, Confidence: 0.65, Sources: 2},
	}
	a := classifyArchetype("bench_press", indices, PhaseResult{Primary: "lockout", Confidence: 0.8})

	if a.Label != "triceps dominant presser" {
		t.Fatalf("expected triceps dominant presser, got %q", a.Label)
	}
	if a.DeltaKey != "back_tension_vs_triceps" {
		t.Fatalf("unexpected delta key %q", a.DeltaKey)
	}
}
