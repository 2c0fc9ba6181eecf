package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/goldbach/internal/verify"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify [suite.yaml]",
		Short: "Run the discriminant theorem suite",
		Long: `Verify the discriminant closed form, the valuation identity and
conduit uniformity over a suite of test vectors.

Without an argument the built-in curated suite runs. A YAML suite file
may be supplied to check additional vectors.

A mismatched identity is reported in the output but does not change
the exit code; only command errors (unreadable or malformed suite
files) exit non-zero.

Examples:
  goldbach verify
  goldbach verify vectors.yaml
  goldbach verify --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args, cmd)
		},
	}

	return cmd
}

func runVerify(opts *VerifyOptions, args []string, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	suite := verify.DefaultSuite()
	if len(args) == 1 {
		s, err := verify.LoadSuite(args[0])
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load suite", err)
		}
		suite = s
	}
	slog.Info("running suite", "name", suite.Name,
		"discriminant", len(suite.Discriminant),
		"valuation", len(suite.Valuation),
		"uniformity", len(suite.Uniformity))

	res := verify.RunSuite(suite)
	slog.Info("suite complete", "pass", res.Pass,
		"passed", res.Passed, "failed", res.Failed, "skipped", res.Skipped)

	if opts.Format == "json" {
		out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
		return out.Success(res)
	}
	verify.WriteReport(cmd.OutOrStdout(), res)
	return nil
}
