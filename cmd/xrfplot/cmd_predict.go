package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/ptable"
	"github.com/cwbudde/algo-xrf/xrf"
)

type prediction struct {
	EnergyKeV    float64 `json:"energy_kev"`
	AtomicNumber float64 `json:"atomic_number"`
	Symbol       string  `json:"symbol,omitempty"`
	Name         string  `json:"name,omitempty"`
}

func newPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <keV...>",
		Short: "Predict atomic numbers from Kα energies with Moseley's law",
		Example: `  xrfplot predict 6.40
  xrfplot predict 3.69 6.40 8.05 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			table, err := ptable.Load()
			if err != nil {
				return err
			}

			preds := make([]prediction, len(args))
			for i, arg := range args {
				e, err := strconv.ParseFloat(arg, 64)
				if err != nil || !(e >= 0) || math.IsInf(e, 0) {
					return fmt.Errorf("invalid energy %q", arg)
				}
				preds[i] = predict(table, e)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(preds)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ENERGY\tZ\tELEMENT\n")
			for _, p := range preds {
				elem := "-"
				if p.Symbol != "" {
					elem = fmt.Sprintf("%s (%s)", p.Symbol, p.Name)
				}
				fmt.Fprintf(tw, "%.3f\t%.2f\t%s\n", p.EnergyKeV, p.AtomicNumber, elem)
			}
			return tw.Flush()
		},
	}
}

// predict applies Moseley's law and names the element at the rounded atomic
// number, if there is one.
func predict(table *ptable.Table, energyKeV float64) prediction {
	p := prediction{EnergyKeV: energyKeV, AtomicNumber: xrf.Moseley(energyKeV)}
	if el, err := table.ByNumber(int(math.Round(p.AtomicNumber))); err == nil {
		p.Symbol = el.Symbol
		p.Name = el.Name
	}
	return p
}
