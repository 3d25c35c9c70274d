package cli

import (
	"encoding/binary"
	"io"
	"iter"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dylanjustice/extensions/enumerable"
)

// ShuffleOptions holds flags for the shuffle command.
type ShuffleOptions struct {
	Seed int64
}

// NewShuffleCommand creates the shuffle command.
func NewShuffleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShuffleOptions{}

	cmd := &cobra.Command{
		Use:   "shuffle [file]",
		Short: "Print lines in random order",
		Long: `Print every input line once, in a pseudo-random order.

With --seed the order is reproducible: the same seed and input always give
the same output.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShuffle(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for a reproducible order (0 = random)")

	return cmd
}

func runShuffle(rootOpts *RootOptions, opts *ShuffleOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, rootOpts)

	result := []string{}
	err := withLines(cmd, args, func(lines iter.Seq[string]) error {
		result = slices.AppendSeq(result, enumerable.ShuffleFrom(lines, seedReader(opts.Seed)))
		return nil
	})
	if err != nil {
		return formatter.Fail("shuffle failed", err)
	}

	slog.Debug("lines shuffled", "count", len(result), "seeded", opts.Seed != 0)
	return formatter.Success(result)
}

// seedReader returns a deterministic randomness source for a non-zero seed,
// and nil (the library default) otherwise.
func seedReader(seed int64) io.Reader {
	if seed == 0 {
		return nil
	}
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], uint64(seed))
	return rand.NewChaCha8(s)
}
