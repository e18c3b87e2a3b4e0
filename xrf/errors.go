package xrf

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig reports an unusable source list or synthesis setting.
var ErrInvalidConfig = errors.New("xrf: invalid configuration")

func validateSource(i int, s Source) error {
	if math.IsNaN(s.EnergyKeV) || math.IsInf(s.EnergyKeV, 0) {
		return fmt.Errorf("%w: source %d energy must be finite: %v", ErrInvalidConfig, i, s.EnergyKeV)
	}
	if math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
		return fmt.Errorf("%w: source %d weight must be finite: %v", ErrInvalidConfig, i, s.Weight)
	}
	if s.Weight < 0 {
		return fmt.Errorf("%w: source %d weight must be >= 0: %v", ErrInvalidConfig, i, s.Weight)
	}
	return nil
}
