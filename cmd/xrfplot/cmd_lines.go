package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/atomdata"
	"github.com/cwbudde/algo-xrf/export"
)

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines <symbol> <keV>",
		Short: "List the emission lines excited at one energy",
		Example: `  xrfplot lines Cu 20
  xrfplot lines Pb 40 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			symbol := args[0]
			energy, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid energy %q: %w", args[1], err)
			}

			lines, err := e.backend.ExcitationLines(symbol, energy)
			if err != nil {
				return err
			}
			edges, err := e.backend.Edges(symbol)
			if err != nil && !errors.Is(err, atomdata.ErrNoData) {
				return err
			}

			if e.json {
				records := make([]export.Line, len(lines))
				for i, l := range lines {
					records[i] = export.Line{Label: l.Label, EnergyKeV: l.EnergyKeV, Rate: l.Rate}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"element":    symbol,
					"energy_kev": energy,
					"edges_kev":  map[string]float64{"k": edges.K, "l2": edges.L2, "l3": edges.L3},
					"lines":      records,
				})
			}

			out := cmd.OutOrStdout()
			if edges.K > 0 {
				fmt.Fprintf(out, "%s edges: K %.4f keV, L2 %.4f keV, L3 %.4f keV\n", symbol, edges.K, edges.L2, edges.L3)
			}
			if len(lines) == 0 {
				_, err := fmt.Fprintf(out, "%s: no lines excited at %g keV\n", symbol, energy)
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "LINE\tENERGY\tRATE\n")
			for _, l := range lines {
				fmt.Fprintf(tw, "%s\t%.4f\t%.4g\n", l.Label, l.EnergyKeV, l.Rate)
			}
			return tw.Flush()
		},
	}
}
