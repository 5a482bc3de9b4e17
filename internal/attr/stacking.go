package attr

import (
	"math"
	"sort"
)

// stackingDenominator shapes the Gaussian penalty curve: rank i keeps
// exp(-(i/stackingDenominator)^2) of its raw effect.
const stackingDenominator = 2.22292081

// StackingFactor returns the share of effect kept by the entry at zero-based rank.
func StackingFactor(rank int) float64 {
	r := float64(rank) / stackingDenominator
	return math.Exp(-(r * r))
}

// stackGroup folds one stacking group into a single factor.
//
// Values are ordered descending: bonuses (>= 1) largest first, penalties (< 1)
// closest to 1 first, every bonus ahead of every penalty.
func stackGroup(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	result := 1.0
	for i, v := range sorted {
		result *= 1 + (v-1)*StackingFactor(i)
	}
	return result
}
