package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-xrf/export"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <symbol>",
		Short: "Write a simulated spectrum and its peaks as JSON or MessagePack",
		Example: `  xrfplot export Fe > fe.json
  xrfplot export Cu --tube 20,40 -o cu.msgpack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			cfg := e.cfg
			applySynthFlags(cmd, cfg)
			applyOutputFlag(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			format, err := exportFormat(cmd, cfg.Plot.Output)
			if err != nil {
				return err
			}

			res, err := synthesize(e, args[0])
			if err != nil {
				return err
			}

			if cfg.Plot.Output == "" {
				return export.Write(cmd.OutOrStdout(), res, format)
			}
			if err := writeExport(cfg.Plot.Output, func(w *bufio.Writer) error {
				return export.Write(w, res, format)
			}); err != nil {
				return err
			}
			e.log.Debug("spectrum exported", zap.String("path", cfg.Plot.Output), zap.String("format", string(format)))
			return nil
		},
	}

	addSynthFlags(cmd)
	cmd.Flags().String("format", "", "Encoding: json or msgpack (default from extension, else json)")
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	return cmd
}

// exportFormat prefers --format, then the output extension, then JSON.
func exportFormat(cmd *cobra.Command, path string) (export.Format, error) {
	if name, _ := cmd.Flags().GetString("format"); name != "" {
		return export.ParseFormat(name)
	}
	if path != "" {
		return export.FormatFromPath(path)
	}
	return export.FormatJSON, nil
}

func writeExport(path string, write func(*bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}
