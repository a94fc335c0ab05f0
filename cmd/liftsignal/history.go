package main

// #region imports
import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barbelllab/liftsignal/internal/snapshot"
)

// #endregion

// #region flags

var (
	historyLift   string
	historyDBPath string
	historyLimit  int
)

// #endregion

// #region command

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored lifter snapshots",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyLift, "lift", "", "Filter by lift (default: all)")
	historyCmd.Flags().StringVar(&historyDBPath, "db", envOr("LIFTSIGNAL_DB", "liftsignal.db"), "Snapshot database path")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum snapshots to show")
}

// #endregion

// #region run

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := snapshot.NewStore(historyDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.List(historyLift, historyLimit)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("no snapshots recorded")
		return nil
	}

	fmt.Printf("%-36s| %-12s| %-19s| %-5s| %s\n", "ID", "Lift", "Recorded", "Sets", "Flags")
	for _, s := range snaps {
		flagged := 0
		for _, v := range s.Flags {
			if v {
				flagged++
			}
		}
		fmt.Printf("%-36s| %-12s| %-19s| %-5d| %d\n",
			s.ID, s.Lift, s.CreatedAt.Format("2006-01-02 15:04:05"), len(s.Observations), flagged)
	}
	return nil
}

// #endregion
