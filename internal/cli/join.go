package cli

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dylanjustice/extensions/enumerable"
	"github.com/dylanjustice/extensions/internal/input"
)

// JoinOptions holds flags for the join and join-pairs commands.
type JoinOptions struct {
	Delimiter         string
	KeyValueDelimiter string
}

// NewJoinCommand creates the join command.
func NewJoinCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JoinOptions{}

	cmd := &cobra.Command{
		Use:   "join [file]",
		Short: "Join lines into one",
		Long: `Join all input lines into a single line, separated by the delimiter.

Empty lines are kept, so "a", "b", "" joins to "a, b, ".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Delimiter, "delimiter", "d", enumerable.DefaultDelimiter, "separator between lines")

	return cmd
}

func runJoin(rootOpts *RootOptions, opts *JoinOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, rootOpts)

	var joined string
	err := withLines(cmd, args, func(lines iter.Seq[string]) error {
		joined = enumerable.Join(lines, opts.Delimiter).OrEmpty()
		return nil
	})
	if err != nil {
		return formatter.Fail("join failed", err)
	}

	return formatter.Success(joined)
}

// NewJoinPairsCommand creates the join-pairs command.
func NewJoinPairsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JoinOptions{}

	cmd := &cobra.Command{
		Use:   "join-pairs <file>",
		Short: "Join key-value pairs from a YAML or CUE file",
		Long: `Join the key-value pairs of a YAML (.yaml, .yml) or CUE (.cue) file.

Each pair is written as key, kv-delimiter, value; an empty or null key or
value is left out of its pair. Pairs are joined with the delimiter in the
order they appear in the file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoinPairs(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.KeyValueDelimiter, "kv-delimiter", "=", "separator between a key and its value")
	cmd.Flags().StringVarP(&opts.Delimiter, "delimiter", "d", enumerable.DefaultDelimiter, "separator between pairs")

	return cmd
}

func runJoinPairs(rootOpts *RootOptions, opts *JoinOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, rootOpts)

	pairs, err := input.LoadPairs(path)
	if err != nil {
		return formatter.Fail("join-pairs failed", err)
	}
	formatter.VerboseLog("Loaded %d pair(s) from %s", len(pairs), path)
	slog.Debug("pairs loaded", "path", path, "pairs", len(pairs))

	joined := enumerable.JoinPairs(slices.Values(pairs), opts.KeyValueDelimiter, opts.Delimiter).OrEmpty()
	return formatter.Success(joined)
}
