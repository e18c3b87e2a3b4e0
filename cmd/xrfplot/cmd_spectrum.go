package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-xrf/export"
	"github.com/cwbudde/algo-xrf/render"
	"github.com/cwbudde/algo-xrf/xrf"
)

func newSpectrumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum <symbol>",
		Short: "Simulate and plot the fluorescence spectrum of one element",
		Example: `  xrfplot spectrum Fe
  xrfplot spectrum Pb --tube 20,40 --weights 1,0.5 --labels simple -o pb.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			cfg := e.cfg
			applySynthFlags(cmd, cfg)
			applyLabelsFlag(cmd, cfg)
			applyOutputFlag(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := synthesize(e, args[0])
			if err != nil {
				return err
			}

			out := cfg.Plot.Output
			if out == "" {
				out = args[0] + ".png"
			}
			labels, _ := cfg.LabelMode()
			opts := render.DefaultSpectrumOptions()
			opts.Labels = labels
			c := render.SpectrumChart(res, opts)
			if err := render.SaveChart(c, out); err != nil {
				return err
			}
			e.log.Debug("spectrum saved", zap.String("path", out), zap.Int("peaks", len(res.Peaks)))

			if e.json {
				return export.Write(cmd.OutOrStdout(), res, export.FormatJSON)
			}
			if err := printPeaks(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved spectrum to %s\n", out)
			return err
		},
	}

	addSynthFlags(cmd)
	cmd.Flags().String("labels", "", "Peak labels: none, simple or full")
	cmd.Flags().StringP("output", "o", "", "Output figure (.png or .svg)")
	return cmd
}

// synthesize runs the configured synthesis for one element.
func synthesize(e *env, symbol string) (*xrf.Result, error) {
	sources, err := e.cfg.Sources()
	if err != nil {
		return nil, err
	}
	opts, err := synthOptions(e)
	if err != nil {
		return nil, err
	}
	return xrf.NewSynthesizer(e.backend, opts...).Synthesize(symbol, sources)
}

func synthOptions(e *env) ([]xrf.Option, error) {
	opts, err := e.cfg.SynthOptions()
	if err != nil {
		return nil, err
	}
	return append(opts, xrf.WithLogger(e.log)), nil
}

func printPeaks(w io.Writer, res *xrf.Result) error {
	if res.Spectrum.Empty {
		_, err := fmt.Fprintf(w, "%s: no fluorescence below %g keV\n", res.Element, xrf.MaxEnergy(res.Sources))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ENERGY\tINTENSITY\tPROMINENCE\tLINE\tLINE KEV\n")
	for _, p := range res.Peaks {
		line, lineKeV := "-", "-"
		if p.Attributed {
			line = p.Line.Label
			lineKeV = fmt.Sprintf("%.4f", p.Line.EnergyKeV)
		}
		fmt.Fprintf(tw, "%.3f\t%.4f\t%.4f\t%s\t%s\n", p.EnergyKeV, p.Intensity, p.Prominence, line, lineKeV)
	}
	return tw.Flush()
}
