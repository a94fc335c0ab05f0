package main

// #region imports
import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barbelllab/liftsignal/internal/replay"
)

// #endregion

// #region command

var replayFixturePath string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a recorded fixture through the engine",
	Long: `Replay every case in a JSON fixture and compare the produced signals
against the fixture's expectations. Exits non-zero on any divergence,
so fixtures double as regression gates for catalog changes.`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayFixturePath, "fixture", "", "Path to fixture JSON (required)")
	_ = replayCmd.MarkFlagRequired("fixture")
}

// #endregion

// #region run

func runReplay(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	fixture, err := replay.LoadFixture(replayFixturePath)
	if err != nil {
		return err
	}

	results, err := replay.Replay(catalog, fixture)
	if err != nil {
		return err
	}

	fmt.Printf("%-20s| %-14s| %-20s| %s\n", "Case", "Phase", "Top hypothesis", "Match")
	fmt.Printf("%s+%s+%s+%s\n",
		strings.Repeat("-", 20), strings.Repeat("-", 15), strings.Repeat("-", 21), strings.Repeat("-", 6))

	matches := 0
	for _, r := range results {
		status := "DIFF"
		if r.Match() {
			status = "OK"
			matches++
		}
		fmt.Printf("%-20s| %-14s| %-20s| %s\n", r.CaseID, r.PrimaryPhase, r.TopHypothesis, status)
		for _, m := range r.Mismatches {
			fmt.Printf("    %s\n", m)
		}
	}

	diverge := len(results) - matches
	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n", len(results), matches, diverge)
	if diverge > 0 {
		os.Exit(1)
	}
	return nil
}

// #endregion
