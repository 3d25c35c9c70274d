package cli

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dylanjustice/extensions/enumerable"
)

// PickOptions holds flags for the pick command.
type PickOptions struct {
	Count int
	Seed  int64
}

// NewPickCommand creates the pick command.
func NewPickCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PickOptions{}

	cmd := &cobra.Command{
		Use:   "pick [file]",
		Short: "Print randomly chosen lines",
		Long: `Print one randomly chosen input line.

Without --count the input must not be empty; picking from empty input fails
with error E010. With --count, up to that many distinct lines are printed and
empty input simply prints nothing.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(rootOpts, opts, cmd.Flags().Changed("count"), args, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of lines to pick")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for a reproducible pick (0 = random)")

	return cmd
}

func runPick(rootOpts *RootOptions, opts *PickOptions, many bool, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, rootOpts)

	if many && opts.Count < 0 {
		return formatter.Fail("pick failed", invalidFlag("--count must be >= 0, got %d", opts.Count))
	}

	result := []string{}
	err := withLines(cmd, args, func(lines iter.Seq[string]) error {
		if many {
			result = slices.AppendSeq(result, enumerable.PickRandomNFrom(lines, opts.Count, seedReader(opts.Seed)))
			return nil
		}

		picked, err := enumerable.PickRandomFrom(lines, seedReader(opts.Seed))
		if err != nil {
			return err
		}
		result = append(result, picked)
		return nil
	})
	if err != nil {
		return formatter.Fail("pick failed", err)
	}

	slog.Debug("lines picked", "requested", opts.Count, "picked", len(result))
	return formatter.Success(result)
}
