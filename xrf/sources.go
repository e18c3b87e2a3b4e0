package xrf

import (
	"fmt"
	"sort"
)

// NewSources pairs energies with weights and sorts the pairs by ascending
// energy. A nil or empty weights slice gives every source weight 1.
func NewSources(energies, weights []float64) ([]Source, error) {
	if len(energies) == 0 {
		return nil, fmt.Errorf("%w: at least one excitation energy is required", ErrInvalidConfig)
	}
	if len(weights) != 0 && len(weights) != len(energies) {
		return nil, fmt.Errorf("%w: %d weights for %d energies", ErrInvalidConfig, len(weights), len(energies))
	}

	out := make([]Source, len(energies))
	for i, e := range energies {
		w := 1.0
		if len(weights) != 0 {
			w = weights[i]
		}
		out[i] = Source{EnergyKeV: e, Weight: w}
		if err := validateSource(i, out[i]); err != nil {
			return nil, err
		}
	}

	sortSources(out)
	return out, nil
}

// Single returns a one-element source list with unit weight.
func Single(energyKeV float64) []Source {
	return []Source{{EnergyKeV: energyKeV, Weight: 1}}
}

// MaxEnergy returns the highest source energy, clamped at 0.
func MaxEnergy(sources []Source) float64 {
	hi := 0.0
	for _, s := range sources {
		hi = max(hi, s.EnergyKeV)
	}
	return hi
}

func sortSources(s []Source) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].EnergyKeV < s[j].EnergyKeV })
}

func prepareSources(sources []Source) ([]Source, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: at least one excitation source is required", ErrInvalidConfig)
	}
	out := make([]Source, len(sources))
	copy(out, sources)
	for i, s := range out {
		if err := validateSource(i, s); err != nil {
			return nil, err
		}
	}
	sortSources(out)
	return out, nil
}
