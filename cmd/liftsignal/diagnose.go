package main

// #region imports
import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/barbelllab/liftsignal/internal/engine"
	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
	"github.com/barbelllab/liftsignal/internal/snapshot"
)

// #endregion

// #region flags

var (
	diagnoseLift       string
	diagnoseInputPath  string
	diagnoseDBPath     string
	diagnoseFromStore  bool
	diagnoseExperience string
	diagnoseEquipment  string
)

// #endregion

// #region command

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run the diagnostic engine and print the signal bundle",
	Long: `Run one full diagnostic computation.

Input comes from either a JSON input file (--input) or the most recent
stored snapshot for the lift (--from-store). The resulting signal bundle
is printed as JSON.

Examples:
  liftsignal diagnose --lift squat --input session.json
  liftsignal diagnose --lift deadlift --from-store --db lifter.db`,
	RunE: runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
	diagnoseCmd.Flags().StringVar(&diagnoseLift, "lift", "", "Lift identifier (required)")
	diagnoseCmd.Flags().StringVar(&diagnoseInputPath, "input", "", "Path to a JSON input file")
	diagnoseCmd.Flags().BoolVar(&diagnoseFromStore, "from-store", false, "Use the latest stored snapshot for the lift")
	diagnoseCmd.Flags().StringVar(&diagnoseDBPath, "db", envOr("LIFTSIGNAL_DB", "liftsignal.db"), "Snapshot database path")
	diagnoseCmd.Flags().StringVar(&diagnoseExperience, "experience", "", "Override training experience (beginner/intermediate/advanced)")
	diagnoseCmd.Flags().StringVar(&diagnoseEquipment, "equipment", "", "Override equipment access (commercial/limited/home)")
	_ = diagnoseCmd.MarkFlagRequired("lift")
}

// #endregion

// #region input-file

// inputFile is the JSON shape accepted by --input.
type inputFile struct {
	PrimaryExercise string          `json:"primary_exercise,omitempty"`
	Observations    []inputSet      `json:"observations"`
	Flags           map[string]bool `json:"flags,omitempty"`
	BodyWeight      float64         `json:"body_weight,omitempty"`
	Experience      string          `json:"experience"`
	Equipment       string          `json:"equipment"`
}

type inputSet struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Sets     int     `json:"sets"`
	RPE      float64 `json:"rpe,omitempty"`
}

func (f *inputFile) toInput(lift string) engine.Input {
	primary := f.PrimaryExercise
	if primary == "" {
		primary = lift
	}
	observations := make([]estimate.Observation, len(f.Observations))
	for i, o := range f.Observations {
		observations[i] = estimate.Observation{
			Exercise: o.Exercise,
			Weight:   o.Weight,
			Reps:     o.Reps,
			Sets:     o.Sets,
			RPE:      o.RPE,
		}
	}
	return engine.Input{
		Lift:            lift,
		PrimaryExercise: primary,
		Observations:    observations,
		Flags:           f.Flags,
		BodyWeight:      f.BodyWeight,
		Experience:      rules.Experience(f.Experience),
		Equipment:       rules.Equipment(f.Equipment),
	}
}

// #endregion

// #region run

func runDiagnose(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	var input engine.Input
	switch {
	case diagnoseInputPath != "":
		data, err := os.ReadFile(diagnoseInputPath)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		var f inputFile
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
		input = f.toInput(diagnoseLift)

	case diagnoseFromStore:
		store, err := snapshot.NewStore(diagnoseDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		snap, err := store.Latest(diagnoseLift)
		if err != nil {
			return err
		}
		log.Printf("[DIAG] using snapshot %s from %s", snap.ID, snap.CreatedAt.Format("2006-01-02"))
		input = snap.Input()

	default:
		return fmt.Errorf("one of --input or --from-store is required")
	}

	if diagnoseExperience != "" {
		input.Experience = rules.Experience(diagnoseExperience)
	}
	if diagnoseEquipment != "" {
		input.Equipment = rules.Equipment(diagnoseEquipment)
	}

	bundle, err := engine.Diagnose(catalog, input)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// #endregion
