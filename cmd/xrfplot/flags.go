package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/internal/config"
)

// addSynthFlags registers the tube and synthesis flags. Unset flags keep the
// config values.
func addSynthFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Slice("tube", nil, "X-ray tube energies in keV")
	cmd.Flags().Float64Slice("weights", nil, "Relative weight per tube energy (default equal)")
	cmd.Flags().Int("samples", 0, "Number of energy axis samples")
	cmd.Flags().Float64("width", 0, "Gaussian peak width parameter in keV^2")
	cmd.Flags().Float64("prominence", 0, "Minimum peak prominence")
	cmd.Flags().String("method", "", "Line evaluation: direct or convolution")
	cmd.Flags().String("attribution", "", "Peak attribution table: union or last-source")
}

func applySynthFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("tube") {
		cfg.Tube.Energies, _ = flags.GetFloat64Slice("tube")
		cfg.Tube.Weights = nil
	}
	if flags.Changed("weights") {
		cfg.Tube.Weights, _ = flags.GetFloat64Slice("weights")
	}
	if flags.Changed("samples") {
		cfg.Synthesis.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("width") {
		cfg.Synthesis.Width, _ = flags.GetFloat64("width")
	}
	if flags.Changed("prominence") {
		cfg.Synthesis.MinProminence, _ = flags.GetFloat64("prominence")
	}
	if flags.Changed("method") {
		cfg.Synthesis.Method, _ = flags.GetString("method")
	}
	if flags.Changed("attribution") {
		cfg.Synthesis.Attribution, _ = flags.GetString("attribution")
	}
}

func applyOutputFlag(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("output") {
		cfg.Plot.Output, _ = cmd.Flags().GetString("output")
	}
}

func applyLabelsFlag(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("labels") {
		cfg.Plot.Labels, _ = cmd.Flags().GetString("labels")
	}
}
