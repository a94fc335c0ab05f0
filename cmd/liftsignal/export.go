package main

// #region imports
import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/barbelllab/liftsignal/internal/engine"
	"github.com/barbelllab/liftsignal/internal/replay"
	"github.com/barbelllab/liftsignal/internal/snapshot"
)

// #endregion

// #region flags

var (
	exportLift   string
	exportDBPath string
	exportLimit  int
	exportOut    string
)

// #endregion

// #region command

var exportFixtureCmd = &cobra.Command{
	Use:   "export-fixture",
	Short: "Build a replay fixture from stored snapshots",
	Long: `Export stored snapshots as a replay fixture. Expected signals are
filled from the current engine output, freezing today's behavior as the
regression baseline for future catalog changes.`,
	RunE: runExportFixture,
}

func init() {
	rootCmd.AddCommand(exportFixtureCmd)
	exportFixtureCmd.Flags().StringVar(&exportLift, "lift", "", "Filter by lift (default: all)")
	exportFixtureCmd.Flags().StringVar(&exportDBPath, "db", envOr("LIFTSIGNAL_DB", "liftsignal.db"), "Snapshot database path")
	exportFixtureCmd.Flags().IntVar(&exportLimit, "limit", 50, "Maximum snapshots to export")
	exportFixtureCmd.Flags().StringVar(&exportOut, "out", "", "Output path (default: stdout)")
}

// #endregion

// #region run

func runExportFixture(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	store, err := snapshot.NewStore(exportDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.List(exportLift, exportLimit)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return fmt.Errorf("no snapshots to export")
	}

	fixture := replay.Fixture{
		Description: fmt.Sprintf("exported from %s (catalog %s)", exportDBPath, catalog.Version()),
	}

	for _, snap := range snaps {
		bundle, err := engine.Diagnose(catalog, snap.Input())
		if err != nil {
			// Snapshots for lifts dropped from the catalog are skipped, not fatal.
			log.Printf("[EXPORT] skipping snapshot %s: %v", snap.ID, err)
			continue
		}

		c := replay.FixtureCase{
			CaseID:          snap.ID,
			Lift:            snap.Lift,
			PrimaryExercise: snap.PrimaryExercise,
			Flags:           snap.Flags,
			BodyWeight:      snap.BodyWeight,
			Experience:      string(snap.Experience),
			Equipment:       string(snap.Equipment),
		}
		for _, o := range snap.Observations {
			c.Observations = append(c.Observations, replay.FixtureObservation{
				Exercise: o.Exercise,
				Weight:   o.Weight,
				Reps:     o.Reps,
				Sets:     o.Sets,
				RPE:      o.RPE,
			})
		}

		score := bundle.Efficiency.Score
		c.Expected = replay.FixtureExpected{
			PrimaryPhase:    bundle.Phase.Primary,
			ArchetypeLabel:  bundle.Archetype.Label,
			ValidationTest:  bundle.Validation.Test.Name,
			EfficiencyScore: &score,
		}
		if len(bundle.Hypotheses) > 0 {
			c.Expected.TopHypothesis = bundle.Hypotheses[0].Key
		}

		fixture.Cases = append(fixture.Cases, c)
	}

	out, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}

	if exportOut == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(exportOut, out, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	log.Printf("[EXPORT] wrote %d cases to %s", len(fixture.Cases), exportOut)
	return nil
}

// #endregion
