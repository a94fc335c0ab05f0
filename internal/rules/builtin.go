package rules

// #region catalog-version

// BuiltinCatalogVersion identifies the shipped rule tables. Downstream
// consumers cache against this plus the per-entry version.
const BuiltinCatalogVersion = "builtin-2025.2"

// #endregion

// #region builtin

// Builtin returns the shipped catalog covering the three competition lifts.
func Builtin() (*MemoryCatalog, error) {
	return NewMemoryCatalog(BuiltinCatalogVersion, []Entry{
		squatEntry(),
		benchEntry(),
		deadliftEntry(),
	})
}

// #endregion

// #region squat

func squatEntry() Entry {
	return Entry{
		Lift:    "squat",
		Version: "squat-v3",
		Phases:  []string{"bottom", "midrange", "lockout"},
		PhaseRules: []PhaseRule{
			{Condition: Condition{Type: CondFlag, Flag: "fails_in_hole"}, Phase: "bottom", Points: 4},
			{Condition: Condition{Type: CondFlag, Flag: "hips_shoot_up"}, Phase: "bottom", Points: 3},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "front_squat", Denominator: "squat", Threshold: 0.80}, Phase: "bottom", Points: 2},
			{Condition: Condition{Type: CondFlag, Flag: "forward_lean_midrange"}, Phase: "midrange", Points: 3},
			{Condition: Condition{Type: CondFlag, Flag: "knees_cave"}, Phase: "midrange", Points: 2},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "romanian_deadlift", Denominator: "squat", Threshold: 0.85}, Phase: "midrange", Points: 2},
			{Condition: Condition{Type: CondFlag, Flag: "slow_grind_lockout"}, Phase: "lockout", Points: 3},
		},
		HypothesisRules: []HypothesisRule{
			{Condition: Condition{Type: CondRatioBelow, Numerator: "front_squat", Denominator: "squat", Threshold: 0.80},
				Key: "quad_strength", Label: "Quad strength", Category: "muscle", Points: 30,
				Evidence: "Front squat sits at {value} of the back squat, expected at least {expected}"},
			{Condition: Condition{Type: CondFlag, Flag: "hips_shoot_up"},
				Key: "quad_strength", Label: "Quad strength", Category: "muscle", Points: 25,
				Evidence: "Hips rise faster than the bar out of the hole, shifting load off the quads"},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "romanian_deadlift", Denominator: "squat", Threshold: 0.85},
				Key: "posterior_chain", Label: "Posterior chain strength", Category: "muscle", Points: 30,
				Evidence: "Romanian deadlift sits at {value} of the squat, expected at least {expected}"},
			{Condition: Condition{Type: CondFlag, Flag: "knees_cave"},
				Key: "glute_strength", Label: "Glute and abductor strength", Category: "muscle", Points: 25,
				Evidence: "Knees cave inward under load, a classic abductor shortfall"},
			{Condition: Condition{Type: CondFlag, Flag: "forward_lean_midrange"},
				Key: "bracing", Label: "Trunk bracing", Category: "stability", Points: 25,
				Evidence: "Torso folds forward through the midrange"},
			{Condition: Condition{Type: CondFlag, Flag: "upper_back_rounds"},
				Key: "bracing", Label: "Trunk bracing", Category: "stability", Points: 20,
				Evidence: "Upper back rounds under heavy loads"},
			{Condition: Condition{Type: CondFlag, Flag: "mobility_restriction"},
				Key: "ankle_hip_mobility", Label: "Ankle and hip mobility", Category: "mobility", Points: 35,
				Evidence: "Reported mobility restriction limits squat depth and positioning"},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "pause_squat", Denominator: "squat", Threshold: 0.85},
				Key: "bottom_control", Label: "Bottom-position control", Category: "technique", Points: 20,
				Evidence: "Pause squat sits at {value} of the squat, expected at least {expected}"},
		},
		IndexMappings: []IndexMapping{
			{Index: "quad_index", Proxy: "front_squat", RatioLow: 0.70, RatioHigh: 0.85, Weight: 0.6},
			{Index: "quad_index", Proxy: "bulgarian_split_squat", RatioLow: 0.35, RatioHigh: 0.50, Weight: 0.4},
			{Index: "posterior_index", Proxy: "romanian_deadlift", RatioLow: 0.75, RatioHigh: 0.95, Weight: 0.5},
			{Index: "posterior_index", Proxy: "good_morning", RatioLow: 0.45, RatioHigh: 0.60, Weight: 0.3},
			{Index: "posterior_index", Proxy: "hip_thrust", RatioLow: 0.90, RatioHigh: 1.20, Weight: 0.2},
		},
		ValidationTests: []ValidationTest{
			{Phase: "bottom", Hypothesis: "quad_strength", Name: "pause_squat_top_set",
				Description:  "Work to a heavy triple on a 2-second pause squat",
				Instructions: "If the pause triple falls under 82% of your squat, the hole is the quad-limited range.",
				MinExperience: Intermediate, Equipment: EquipCommercial,
				Fallback: &ValidationTest{Phase: "bottom", Hypothesis: "quad_strength", Name: "goblet_pause_squat",
					Description:   "Max-rep goblet squat with a 3-second pause at depth",
					Instructions:  "Under 10 clean reps with a third of your squat suggests the same quad limit.",
					MinExperience: Beginner, Equipment: EquipHome},
			},
			{Phase: "midrange", Hypothesis: "bracing", Name: "beltless_triple",
				Description:  "Beltless triple at 80% of your current squat",
				Instructions: "Compare bar speed against your belted triple; a large gap points at trunk bracing.",
				MinExperience: Intermediate, Equipment: EquipLimited,
				Fallback: &ValidationTest{Phase: "midrange", Hypothesis: "bracing", Name: "front_rack_hold",
					Description:   "30-second front-rack hold at 90% of front squat",
					Instructions:  "Losing the rack position early confirms the bracing shortfall.",
					MinExperience: Beginner, Equipment: EquipHome},
			},
			{Phase: "midrange", Hypothesis: "posterior_chain", Name: "tempo_rdl_set",
				Description:  "5-rep Romanian deadlift with a 3-second eccentric",
				Instructions: "Grind or position loss below 80% of squat weight confirms the posterior gap.",
				MinExperience: Beginner, Equipment: EquipLimited},
			{Phase: "bottom", Hypothesis: "", Name: "depth_check_video",
				Description:  "Film a top set from the side at parallel depth",
				Instructions: "Watch where bar speed dies: at depth, just above it, or higher.",
				MinExperience: Beginner, Equipment: EquipHome},
			{Phase: "midrange", Hypothesis: "", Name: "pin_squat_midrange",
				Description:  "Pin squat from just below your sticking height",
				Instructions: "A pin single well under 90% of your squat localizes the midrange weakness.",
				MinExperience: Intermediate, Equipment: EquipCommercial,
				Fallback: &ValidationTest{Phase: "midrange", Hypothesis: "", Name: "tempo_squat_midrange",
					Description:   "Squat triple with a 5-second ascent through the sticking point",
					Instructions:  "Note where the tempo breaks down; that is the weak range.",
					MinExperience: Beginner, Equipment: EquipHome},
			},
			{Phase: "lockout", Hypothesis: "glute_strength", Name: "hip_thrust_amrap",
				Description:  "Max-rep hip thrust at bodyweight on the bar",
				Instructions: "Under 12 reps supports a glute-limited lockout.",
				MinExperience: Beginner, Equipment: EquipLimited},
		},
	}
}

// #endregion

// #region bench

func benchEntry() Entry {
	return Entry{
		Lift:    "bench_press",
		Version: "bench-v3",
		Phases:  []string{"off_chest", "midrange", "lockout"},
		PhaseRules: []PhaseRule{
			{Condition: Condition{Type: CondFlag, Flag: "fails_at_chest"}, Phase: "off_chest", Points: 4},
			{Condition: Condition{Type: CondFlag, Flag: "slow_off_chest"}, Phase: "off_chest", Points: 3},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "barbell_row", Denominator: "bench_press", Threshold: 0.90}, Phase: "off_chest", Points: 2},
			{Condition: Condition{Type: CondFlag, Flag: "sticking_point_midrange"}, Phase: "midrange", Points: 4},
			{Condition: Condition{Type: CondFlag, Flag: "elbows_flare_early"}, Phase: "midrange", Points: 2},
			{Condition: Condition{Type: CondFlag, Flag: "fails_at_lockout"}, Phase: "lockout", Points: 4},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "close_grip_bench", Denominator: "bench_press", Threshold: 0.85}, Phase: "lockout", Points: 3},
		},
		HypothesisRules: []HypothesisRule{
			{Condition: Condition{Type: CondRatioBelow, Numerator: "close_grip_bench", Denominator: "bench_press", Threshold: 0.85},
				Key: "triceps_strength", Label: "Triceps strength", Category: "muscle", Points: 35,
				Evidence: "Close-grip bench sits at {value} of the bench, expected at least {expected}"},
			{Condition: Condition{Type: CondFlag, Flag: "fails_at_lockout"},
				Key: "triceps_strength", Label: "Triceps strength", Category: "muscle", Points: 25,
				Evidence: "Misses happen in the final third of the press"},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "barbell_row", Denominator: "bench_press", Threshold: 0.90},
				Key: "back_tension", Label: "Upper-back tension", Category: "stability", Points: 30,
				Evidence: "Barbell row sits at {value} of the bench, expected at least {expected}"},
			{Condition: Condition{Type: CondFlag, Flag: "slow_off_chest"},
				Key: "back_tension", Label: "Upper-back tension", Category: "stability", Points: 20,
				Evidence: "A soft launch off the chest usually means the upper back is not set"},
			{Condition: Condition{Type: CondRatioAbove, Numerator: "close_grip_bench", Denominator: "bench_press", Threshold: 0.95},
				Key: "chest_strength", Label: "Pec strength", Category: "muscle", Points: 25,
				Evidence: "Close-grip at {value} of the bench (above {expected}) says the pecs lag the triceps"},
			{Condition: Condition{Type: CondFlag, Flag: "fails_at_chest"},
				Key: "chest_strength", Label: "Pec strength", Category: "muscle", Points: 25,
				Evidence: "Misses die on or just above the chest"},
			{Condition: Condition{Type: CondFlag, Flag: "shoulder_discomfort"},
				Key: "shoulder_stability", Label: "Shoulder stability", Category: "stability", Points: 25,
				Evidence: "Reported shoulder discomfort during pressing"},
			{Condition: Condition{Type: CondFlag, Flag: "elbows_flare_early"},
				Key: "pressing_technique", Label: "Bar path and elbow control", Category: "technique", Points: 20,
				Evidence: "Elbows flare before the midpoint, pushing the bar over the face"},
		},
		IndexMappings: []IndexMapping{
			{Index: "triceps_index", Proxy: "close_grip_bench", RatioLow: 0.85, RatioHigh: 0.95, Weight: 0.7},
			{Index: "triceps_index", Proxy: "board_press", RatioLow: 1.00, RatioHigh: 1.10, Weight: 0.3},
			{Index: "back_tension_index", Proxy: "barbell_row", RatioLow: 0.85, RatioHigh: 1.00, Weight: 0.6},
			{Index: "back_tension_index", Proxy: "chest_supported_row", RatioLow: 0.70, RatioHigh: 0.85, Weight: 0.4},
		},
		ValidationTests: []ValidationTest{
			{Phase: "lockout", Hypothesis: "triceps_strength", Name: "close_grip_top_set",
				Description:  "Work to a heavy close-grip triple",
				Instructions: "Under 85% of your bench triple confirms the triceps limit.",
				MinExperience: Intermediate, Equipment: EquipCommercial,
				Fallback: &ValidationTest{Phase: "lockout", Hypothesis: "triceps_strength", Name: "floor_press_triple",
					Description:   "Heavy floor-press triple",
					Instructions:  "The floor kills leg drive and isolates the lockout range.",
					MinExperience: Beginner, Equipment: EquipHome},
			},
			{Phase: "off_chest", Hypothesis: "back_tension", Name: "long_pause_bench",
				Description:  "Triple with a 3-second chest pause",
				Instructions: "A large drop versus touch-and-go points at lost upper-back tension.",
				MinExperience: Beginner, Equipment: EquipLimited},
			{Phase: "off_chest", Hypothesis: "chest_strength", Name: "wide_grip_volume_set",
				Description:  "8-rep set at 70% with a wider grip",
				Instructions: "If the wide grip collapses early, the pecs are the limiter off the chest.",
				MinExperience: Intermediate, Equipment: EquipLimited,
				Fallback: &ValidationTest{Phase: "off_chest", Hypothesis: "chest_strength", Name: "deficit_pushup_amrap",
					Description:   "Max-rep deficit push-ups",
					Instructions:  "Under 15 strict reps supports a pec limit.",
					MinExperience: Beginner, Equipment: EquipHome},
			},
			{Phase: "midrange", Hypothesis: "", Name: "pin_press_midrange",
				Description:  "Pin press from your sticking height",
				Instructions: "A pin single well under 90% of the bench localizes the midrange leak.",
				MinExperience: Intermediate, Equipment: EquipCommercial,
				Fallback: &ValidationTest{Phase: "midrange", Hypothesis: "", Name: "tempo_bench_midrange",
					Description:   "Bench triple with a 5-second press",
					Instructions:  "Note where the tempo stalls.",
					MinExperience: Beginner, Equipment: EquipHome},
			},
			{Phase: "lockout", Hypothesis: "", Name: "board_press_single",
				Description:  "Heavy single from a 2-board height",
				Instructions: "A board single under your full bench means the top range itself is weak.",
				MinExperience: Advanced, Equipment: EquipCommercial,
				Fallback: &ValidationTest{Phase: "lockout", Hypothesis: "", Name: "band_pushdown_test",
					Description:   "50-rep band pushdown challenge",
					Instructions:  "Burnout before 50 clean reps supports a triceps endurance gap.",
					MinExperience: Beginner, Equipment: EquipHome},
			},
		},
	}
}

// #endregion

// #region deadlift

func deadliftEntry() Entry {
	return Entry{
		Lift:    "deadlift",
		Version: "deadlift-v3",
		Phases:  []string{"off_the_floor", "knee_passage", "lockout"},
		PhaseRules: []PhaseRule{
			{Condition: Condition{Type: CondFlag, Flag: "stalls_off_floor"}, Phase: "off_the_floor", Points: 4},
			{Condition: Condition{Type: CondFlag, Flag: "hips_shoot_up"}, Phase: "off_the_floor", Points: 3},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "deficit_deadlift", Denominator: "deadlift", Threshold: 0.85}, Phase: "off_the_floor", Points: 3},
			{Condition: Condition{Type: CondFlag, Flag: "stalls_below_knee"}, Phase: "knee_passage", Points: 4},
			{Condition: Condition{Type: CondFlag, Flag: "upper_back_rounds"}, Phase: "knee_passage", Points: 2},
			{Condition: Condition{Type: CondFlag, Flag: "stalls_at_lockout"}, Phase: "lockout", Points: 4},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "rack_pull", Denominator: "deadlift", Threshold: 1.05}, Phase: "lockout", Points: 3},
			{Condition: Condition{Type: CondFlag, Flag: "grip_limiting"}, Phase: "lockout", Points: 2},
		},
		HypothesisRules: []HypothesisRule{
			{Condition: Condition{Type: CondRatioBelow, Numerator: "deficit_deadlift", Denominator: "deadlift", Threshold: 0.85},
				Key: "quad_strength", Label: "Leg drive off the floor", Category: "muscle", Points: 30,
				Evidence: "Deficit pull sits at {value} of the deadlift, expected at least {expected}"},
			{Condition: Condition{Type: CondFlag, Flag: "hips_shoot_up"},
				Key: "quad_strength", Label: "Leg drive off the floor", Category: "muscle", Points: 25,
				Evidence: "Hips rise first and turn the pull into a stiff-leg from the floor"},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "rack_pull", Denominator: "deadlift", Threshold: 1.05},
				Key: "posterior_chain", Label: "Hip extension strength", Category: "muscle", Points: 30,
				Evidence: "Rack pull sits at {value} of the deadlift, expected at least {expected}"},
			{Condition: Condition{Type: CondFlag, Flag: "stalls_at_lockout"},
				Key: "posterior_chain", Label: "Hip extension strength", Category: "muscle", Points: 25,
				Evidence: "The bar dies at the hips with the knees already straight"},
			{Condition: Condition{Type: CondFlag, Flag: "upper_back_rounds"},
				Key: "bracing", Label: "Back position under load", Category: "stability", Points: 25,
				Evidence: "Upper back rounds through the pull"},
			{Condition: Condition{Type: CondFlag, Flag: "grip_limiting"},
				Key: "grip_strength", Label: "Grip strength", Category: "muscle", Points: 35,
				Evidence: "Grip gives out before the legs and hips do"},
			{Condition: Condition{Type: CondRatioBelow, Numerator: "romanian_deadlift", Denominator: "deadlift", Threshold: 0.70},
				Key: "posterior_chain", Label: "Hip extension strength", Category: "muscle", Points: 20,
				Evidence: "Romanian deadlift sits at {value} of the pull, expected at least {expected}"},
			{Condition: Condition{Type: CondFlag, Flag: "mobility_restriction"},
				Key: "hip_mobility", Label: "Starting-position mobility", Category: "mobility", Points: 30,
				Evidence: "Reported mobility restriction compromises the start position"},
		},
		IndexMappings: []IndexMapping{
			{Index: "posterior_index", Proxy: "romanian_deadlift", RatioLow: 0.70, RatioHigh: 0.85, Weight: 0.5},
			{Index: "posterior_index", Proxy: "good_morning", RatioLow: 0.40, RatioHigh: 0.55, Weight: 0.3},
			{Index: "posterior_index", Proxy: "hip_thrust", RatioLow: 0.80, RatioHigh: 1.05, Weight: 0.2},
			{Index: "quad_index", Proxy: "front_squat", RatioLow: 0.55, RatioHigh: 0.70, Weight: 0.6},
			{Index: "quad_index", Proxy: "deficit_deadlift", RatioLow: 0.85, RatioHigh: 0.95, Weight: 0.4},
		},
		ValidationTests: []ValidationTest{
			{Phase: "off_the_floor", Hypothesis: "quad_strength", Name: "deficit_pull_top_set",
				Description:  "Heavy triple from a 2-inch deficit",
				Instructions: "Under 85% of your deadlift triple confirms the floor is leg-drive limited.",
				MinExperience: Intermediate, Equipment: EquipCommercial,
				Fallback: &ValidationTest{Phase: "off_the_floor", Hypothesis: "quad_strength", Name: "paused_pull_at_shin",
					Description:   "Triple with a 2-second pause an inch off the floor",
					Instructions:  "Position loss during the pause shows where the leak starts.",
					MinExperience: Beginner, Equipment: EquipLimited},
			},
			{Phase: "lockout", Hypothesis: "posterior_chain", Name: "rack_pull_above_knee",
				Description:  "Heavy single from just above the knee",
				Instructions: "A rack single that fails to beat your deadlift confirms the hip-extension gap.",
				MinExperience: Intermediate, Equipment: EquipCommercial,
				Fallback: &ValidationTest{Phase: "lockout", Hypothesis: "posterior_chain", Name: "heavy_rdl_set",
					Description:   "5-rep Romanian deadlift at 75% of your pull",
					Instructions:  "Grinding reps at that load supports the same conclusion.",
					MinExperience: Beginner, Equipment: EquipHome},
			},
			{Phase: "lockout", Hypothesis: "grip_strength", Name: "double_overhand_hold",
				Description:  "Timed double-overhand hold at 70% of your pull",
				Instructions: "Under 20 seconds confirms grip as the limiter.",
				MinExperience: Beginner, Equipment: EquipHome},
			{Phase: "knee_passage", Hypothesis: "", Name: "block_pull_below_knee",
				Description:  "Heavy single from blocks set just below the knee",
				Instructions: "Compare against your floor pull to size the knee-passage deficit.",
				MinExperience: Intermediate, Equipment: EquipCommercial,
				Fallback: &ValidationTest{Phase: "knee_passage", Hypothesis: "", Name: "tempo_pull_below_knee",
					Description:   "Triple with a 5-second pull to the knee",
					Instructions:  "Note where the bar path drifts during the slow pull.",
					MinExperience: Beginner, Equipment: EquipLimited},
			},
			{Phase: "off_the_floor", Hypothesis: "", Name: "dead_stop_speed_check",
				Description:  "Film three dead-stop singles at 80%",
				Instructions: "Bar speed off the floor versus at the knee tells you which range lags.",
				MinExperience: Beginner, Equipment: EquipHome},
		},
	}
}

// #endregion
