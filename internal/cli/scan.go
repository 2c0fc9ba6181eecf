package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/goldbach/internal/goldbach"
	"github.com/roach88/goldbach/internal/scan"
)

// DefaultTwinPrime is the Hardy-Littlewood twin prime constant C2.
const DefaultTwinPrime = 0.6601618158468

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Start     int64
	Width     int64
	TwinPrime float64
	Every     int64 // table row stride after the first 20 samples
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan even targets against the Hardy-Littlewood prediction",
		Long: `Scan a range of even targets 2N, counting ordered Goldbach
representations exactly and comparing each count against the
Hardy-Littlewood prediction 2*C2*S(N)*2N/(ln 2N)^2.

The text report prints the first 20 samples, then every --every-th
sample, followed by statistics grouped by orbit class. JSON output
carries every sample.

Examples:
  goldbach scan
  goldbach scan --start 1000000 --width 5000
  goldbach scan --start 100 --width 40 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Start, "start", 10000000, "first even target 2N")
	cmd.Flags().Int64Var(&opts.Width, "width", 2000, "width of the scanned interval")
	cmd.Flags().Float64Var(&opts.TwinPrime, "c2", DefaultTwinPrime, "twin prime constant C2")
	cmd.Flags().Int64Var(&opts.Every, "every", 200, "row stride after the first 20 samples")

	return cmd
}

func runScan(opts *ScanOptions, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	cfg := scan.Config{
		Start:     opts.Start,
		Width:     opts.Width,
		TwinPrime: opts.TwinPrime,
	}
	if opts.Every < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--every must be >= 1, got %d", opts.Every))
	}

	slog.Info("scanning", "start", cfg.Start, "width", cfg.Width, "c2", cfg.TwinPrime)
	res, err := scan.Run(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "scan failed", err)
	}
	slog.Info("scan complete", "samples", len(res.Samples), "mean_ratio", res.MeanRatio)

	if opts.Format == "json" {
		out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
		return out.Success(res)
	}
	writeScanText(cmd.OutOrStdout(), res, opts.Every)
	return nil
}

// writeScanText renders the tabular report: a header, selected sample
// rows, and per-orbit statistics.
func writeScanText(w io.Writer, res *scan.Result, every int64) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Scanned 2N from %d to %d (%d primes sieved)\n",
		res.Config.Start, res.Config.Start+res.Config.Width, res.PrimeCount)
	fmt.Fprintf(w, "%-12s | %-10s | %-12s | %-8s | %-8s | %s\n",
		"2N", "G(2N)", "HL pred", "ratio", "series", "orbit")
	for i, s := range res.Samples {
		if int64(i) >= 20 && int64(i)%every != 0 {
			continue
		}
		fmt.Fprintf(w, "%-12d | %-10d | %-12.1f | %-8.4f | %-8.4f | %s\n",
			s.TwoN, s.Count, s.Predicted, s.Ratio, s.Series, s.Orbit)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Statistics by orbit:")
	for _, orbit := range []goldbach.Orbit{goldbach.OrbitDivBy6, goldbach.OrbitDivBy3Not6, goldbach.OrbitOther} {
		stats, ok := res.ByOrbit[orbit]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-16s samples=%-6d mean_ratio=%.6f mean_series=%.4f\n",
			orbit, stats.Samples, stats.MeanRatio, stats.MeanSeries)
	}
	fmt.Fprintf(w, "Overall mean ratio: %.6f\n", res.MeanRatio)
}
