// Command xrfplot draws periodic tables, simulated X-ray fluorescence
// spectra and Moseley plots.
//
// Usage:
//
//	xrfplot table Fe Cu -o ptable.png
//	xrfplot spectrum Fe --tube 20,40 -o fe.svg
//	xrfplot moseley Fe Ca --tube 40 -o moseley.png
//	xrfplot predict 6.40 8.05
//	xrfplot lines Cu 20
//	xrfplot export Fe --format msgpack -o fe.msgpack
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-xrf/atomdata"
	"github.com/cwbudde/algo-xrf/internal/config"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xrfplot",
		Short: "X-ray fluorescence spectra and periodic-table plots",
		Long: `xrfplot simulates the X-ray fluorescence spectrum of chemical elements
excited by an X-ray tube, labels the emission peaks and draws periodic-table
and Moseley plots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTableCmd(),
		newSpectrumCmd(),
		newMoseleyCmd(),
		newPredictCmd(),
		newLinesCmd(),
		newExportCmd(),
	)
	return rootCmd
}

// env is the state shared by all subcommands.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	backend *atomdata.Backend
	json    bool
}

// setup loads the config, applies the persistent flags and opens the atomic
// database. Subcommand flags are applied by the caller before validate.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	jsonOut, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Logging.Level = "debug"
	}

	logger, err := newLogger(cfg.Debug())
	if err != nil {
		return nil, fmt.Errorf("could not create logger: %w", err)
	}

	backend, err := atomdata.Open(atomdata.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to load atomic data: %w", err)
	}

	return &env{cfg: cfg, log: logger, backend: backend, json: jsonOut}, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// close flushes the logger.
func (e *env) close() {
	_ = e.log.Sync()
}
