// Package cli implements the bloch command line tool. Each subcommand builds
// a qubit state from one representation and reports every other one.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theapemachine/bloch"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	legacyAzimuth bool
	degrees       bool
	output        string
}

func (o *options) config() *bloch.Config {
	config := bloch.NewConfig()
	if o.legacyAzimuth {
		config.AzimuthMode = bloch.AzimuthLegacyAtan
	}
	return config
}

// NewRootCommand builds the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bloch",
		Short: "Convert a qubit state between angles, vectors and amplitudes",
		Long: `bloch places a single qubit on the Bloch sphere and prints its
spherical angles, its Y-up unit vector, both probability amplitudes and the
measurement probabilities.

Examples:
  bloch angles 1.5708 0
  bloch vector 0 0 -1
  bloch amplitudes 0.7071 0 0 0.7071 --output json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.legacyAzimuth, "legacy-azimuth", false,
		"Recover the azimuth with the single-argument arctangent")
	rootCmd.PersistentFlags().BoolVar(&opts.degrees, "degrees", false,
		"Read and print angles in degrees")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "yaml",
		"Output format: yaml or json")

	rootCmd.AddCommand(newAnglesCommand(opts))
	rootCmd.AddCommand(newVectorCommand(opts))
	rootCmd.AddCommand(newAmplitudesCommand(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func emit(w io.Writer, opts *options, qs *bloch.QubitState) error {
	return writeReport(w, opts.output, newReport(qs, opts.config().AzimuthMode, opts.degrees))
}
