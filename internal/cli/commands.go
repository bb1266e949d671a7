package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theapemachine/bloch"
)

func newAnglesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "angles <inclination> <azimuth>",
		Short: "Set the state from spherical angles (radians unless --degrees)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			theta, phi := values[0], values[1]
			if opts.degrees {
				theta, phi = toRadians(theta), toRadians(phi)
			}

			qs := bloch.NewQubitState(theta, phi, opts.config())
			return emit(cmd.OutOrStdout(), opts, qs)
		},
	}
}

func newVectorCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vector <x> <y> <z>",
		Short: "Set the state from a point on the unit sphere (Y up)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			qs := bloch.NewQubitState(0, 0, opts.config())
			qs.SetFromVector(values[0], values[1], values[2])
			return emit(cmd.OutOrStdout(), opts, qs)
		},
	}
}

func newAmplitudesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "amplitudes <re0> <im0> <re1> <im1>",
		Short: "Set the state from the |0> and |1> amplitudes",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			qs := bloch.NewQubitState(0, 0, opts.config())
			if err := qs.SetFromAmplitudes(
				complex(values[0], values[1]),
				complex(values[2], values[3]),
			); err != nil {
				return fmt.Errorf("amplitudes: %w", err)
			}
			return emit(cmd.OutOrStdout(), opts, qs)
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", i+1, arg, err)
		}
		values[i] = v
	}
	return values, nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
