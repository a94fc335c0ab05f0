package main

// #region imports
import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// #endregion

// #region command

var catalogShowLift string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the active rule catalog",
	Long: `List the lifts the active catalog covers, or dump one lift's full
rule configuration as YAML. With --catalog, loading the file also
validates it (index weights, condition shapes, test tables).`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogShowLift, "lift", "", "Dump one lift's entry as YAML")
}

// #endregion

// #region run

func runCatalog(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	if catalogShowLift != "" {
		entry, err := catalog.Lookup(catalogShowLift)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encode entry: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	fmt.Printf("catalog %s\n", catalog.Version())
	for _, lift := range catalog.Lifts() {
		entry, err := catalog.Lookup(lift)
		if err != nil {
			return err
		}
		fmt.Printf("  %-14s %-14s %d phase rules, %d hypothesis rules, %d index mappings, %d tests\n",
			lift, entry.Version, len(entry.PhaseRules), len(entry.HypothesisRules),
			len(entry.IndexMappings), len(entry.ValidationTests))
	}
	return nil
}

// #endregion
