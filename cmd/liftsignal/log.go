package main

// #region imports
import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
	"github.com/barbelllab/liftsignal/internal/snapshot"
)

// #endregion

// #region flags

var (
	logLift       string
	logDBPath     string
	logSets       []string
	logFlags      []string
	logBodyWeight float64
	logExperience string
	logEquipment  string
)

// #endregion

// #region command

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a lifter snapshot into the snapshot database",
	Long: `Record reported working sets and technique flags for a lift.

Sets use exercise:weight:reps[:sets] notation. Flags are bare names.

Examples:
  liftsignal log --lift squat --set squat:140:5 --set front_squat:100:5 --flag hips_shoot_up
  liftsignal log --lift bench_press --set bench_press:100:3:2 --experience intermediate`,
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVar(&logLift, "lift", "", "Lift identifier (required)")
	logCmd.Flags().StringVar(&logDBPath, "db", envOr("LIFTSIGNAL_DB", "liftsignal.db"), "Snapshot database path")
	logCmd.Flags().StringArrayVar(&logSets, "set", nil, "Reported set as exercise:weight:reps[:sets] (repeatable)")
	logCmd.Flags().StringArrayVar(&logFlags, "flag", nil, "Self-reported technique flag (repeatable)")
	logCmd.Flags().Float64Var(&logBodyWeight, "bodyweight", 0, "Body weight")
	logCmd.Flags().StringVar(&logExperience, "experience", string(rules.Intermediate), "Training experience")
	logCmd.Flags().StringVar(&logEquipment, "equipment", string(rules.EquipCommercial), "Equipment access")
	_ = logCmd.MarkFlagRequired("lift")
}

// #endregion

// #region run

func runLog(cmd *cobra.Command, args []string) error {
	if len(logSets) == 0 {
		return fmt.Errorf("at least one --set is required")
	}

	observations := make([]estimate.Observation, 0, len(logSets))
	for _, raw := range logSets {
		obs, err := parseSet(raw)
		if err != nil {
			return err
		}
		observations = append(observations, obs)
	}

	flags := make(map[string]bool, len(logFlags))
	for _, f := range logFlags {
		flags[f] = true
	}

	store, err := snapshot.NewStore(logDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := store.Save(snapshot.Snapshot{
		Lift:         logLift,
		Observations: observations,
		Flags:        flags,
		BodyWeight:   logBodyWeight,
		Experience:   rules.Experience(logExperience),
		Equipment:    rules.Equipment(logEquipment),
	})
	if err != nil {
		return err
	}

	log.Printf("[STORE] saved snapshot %s for %s (%d sets, %d flags)",
		snap.ID, snap.Lift, len(observations), len(flags))
	return nil
}

// #endregion

// #region parse-set

// parseSet parses exercise:weight:reps[:sets] notation.
func parseSet(raw string) (estimate.Observation, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return estimate.Observation{}, fmt.Errorf("bad --set %q: want exercise:weight:reps[:sets]", raw)
	}

	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || weight <= 0 {
		return estimate.Observation{}, fmt.Errorf("bad --set %q: weight must be a positive number", raw)
	}
	reps, err := strconv.Atoi(parts[2])
	if err != nil || reps < 1 {
		return estimate.Observation{}, fmt.Errorf("bad --set %q: reps must be a positive integer", raw)
	}

	sets := 1
	if len(parts) == 4 {
		sets, err = strconv.Atoi(parts[3])
		if err != nil || sets < 1 {
			return estimate.Observation{}, fmt.Errorf("bad --set %q: sets must be a positive integer", raw)
		}
	}

	return estimate.Observation{
		Exercise: parts[0],
		Weight:   weight,
		Reps:     reps,
		Sets:     sets,
	}, nil
}

// #endregion
