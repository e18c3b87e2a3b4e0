package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-xrf/render"
	"github.com/cwbudde/algo-xrf/xrf"
)

func newMoseleyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moseley [symbols...]",
		Short: "Plot the spectra of Si to Pb stacked by atomic number",
		Example: `  xrfplot moseley --tube 40
  xrfplot moseley Fe Ca --tube 20,40 -o moseley.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			cfg := e.cfg
			applySynthFlags(cmd, cfg)
			applyOutputFlag(cmd, cfg)
			if cmd.Flags().Changed("hide-law") {
				cfg.Plot.HideLaw, _ = cmd.Flags().GetBool("hide-law")
			}
			if cmd.Flags().Changed("workers") {
				cfg.Synthesis.Workers, _ = cmd.Flags().GetInt("workers")
			}
			if len(args) > 0 {
				cfg.Plot.Elements = args
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			sources, err := cfg.Sources()
			if err != nil {
				return err
			}
			synth, err := synthOptions(e)
			if err != nil {
				return err
			}

			start := time.Now()
			c, err := render.MoseleyChart(cmd.Context(), e.backend, sources, render.MoseleyOptions{
				Selected: cfg.Plot.Elements,
				HideLaw:  cfg.Plot.HideLaw,
				Synth:    synth,
				Workers:  cfg.Synthesis.Workers,
			})
			if err != nil {
				return err
			}
			e.log.Debug("moseley spectra synthesised",
				zap.Float64("tube_kev", xrf.MaxEnergy(sources)),
				zap.Duration("elapsed", time.Since(start)))

			out := cfg.Plot.Output
			if out == "" {
				out = "moseley.png"
			}
			if err := render.SaveChart(c, out); err != nil {
				return err
			}

			if e.json {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"path":     out,
					"selected": cfg.Plot.Elements,
					"tube_kev": cfg.Tube.Energies,
				})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved Moseley plot to %s\n", out)
			return err
		},
	}

	addSynthFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Output figure (.png or .svg)")
	cmd.Flags().Bool("hide-law", false, "Do not draw the Moseley's law curve")
	cmd.Flags().Int("workers", 0, "Concurrent syntheses (default GOMAXPROCS)")
	return cmd
}
