package main

// #region imports
import (
	"os"

	"github.com/spf13/cobra"

	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region root

var catalogPath string

var rootCmd = &cobra.Command{
	Use:   "liftsignal",
	Short: "Deterministic strength-training diagnostics",
	Long: `liftsignal turns reported working weights and technique flags into a
structured diagnosis: estimated maxes, the limiting phase of the lift,
ranked limiter hypotheses, strength indices, and a recommended self-test.

The engine is pure and deterministic; the same input always produces the
same signal bundle.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"Path to a YAML rule catalog (default: built-in catalog)")
}

// #endregion

// #region catalog

// loadCatalog resolves the active rule catalog: an explicit YAML override or
// the built-in tables.
func loadCatalog() (rules.Catalog, error) {
	if catalogPath != "" {
		return rules.LoadFile(catalogPath)
	}
	return rules.Builtin()
}

// #endregion

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion
