package engine

// #region imports
import (
	"math"

	"github.com/barbelllab/liftsignal/internal/estimate"
	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region source-confidence

// indexConfidence is a step function of how many distinct proxy sources
// contributed to a composed index.
func indexConfidence(sources int) float64 {
	switch {
	case sources >= 3:
		return 0.90
	case sources == 2:
		return 0.65
	case sources == 1:
		return 0.35
	}
	return 0
}

// #endregion

// #region compose

// composeIndexes aggregates proxy-exercise ratios into 0-100 strength indices.
// Weights are renormalized over the mappings that actually have data; an index
// with zero contributing sources is omitted entirely.
func composeIndexes(entry rules.Entry, estimates map[string]estimate.Estimate, primaryExercise string) map[string]IndexScore {
	primary, ok := estimates[primaryExercise]
	indices := make(map[string]IndexScore)
	if !ok || primary.Value == 0 {
		return indices
	}

	type accum struct {
		weightedSum float64
		weightSum   float64
		proxies     []string
	}
	byIndex := make(map[string]*accum)

	for _, m := range entry.IndexMappings {
		proxy, ok := estimates[m.Proxy]
		if !ok {
			continue
		}

		ratio := proxy.Value / primary.Value
		midpoint := (m.RatioLow + m.RatioHigh) / 2
		sub := clampScore(math.Round(ratio / midpoint * 100))

		a := byIndex[m.Index]
		if a == nil {
			a = &accum{}
			byIndex[m.Index] = a
		}
		a.weightedSum += sub * m.Weight
		a.weightSum += m.Weight
		a.proxies = append(a.proxies, m.Proxy)
	}

	for name, a := range byIndex {
		if a.weightSum == 0 {
			continue
		}
		indices[name] = IndexScore{
			Value:      math.Round(a.weightedSum / a.weightSum),
			Confidence: indexConfidence(len(a.proxies)),
			Sources:    len(a.proxies),
			Proxies:    a.proxies,
		}
	}
	return indices
}

// #endregion

// #region helpers

// clampScore restricts v to [0, 100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// #endregion
