package cli

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dylanjustice/extensions/enumerable"
	"github.com/dylanjustice/extensions/internal/input"
)

// NewDistinctCommand creates the distinct command.
func NewDistinctCommand(rootOpts *RootOptions) *cobra.Command {
	keyOpts := &input.KeyOptions{}

	cmd := &cobra.Command{
		Use:   "distinct [file]",
		Short: "Print the first line for each distinct key",
		Long: `Print the first input line for every distinct key, in input order.

The key is the whole line unless --field selects one field of it. Use
--ignore-case and --normalize to treat case and Unicode spelling variants
as the same key.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistinct(rootOpts, *keyOpts, args, cmd)
		},
	}

	addKeyFlags(cmd, keyOpts)

	return cmd
}

func runDistinct(rootOpts *RootOptions, keyOpts input.KeyOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, rootOpts)

	if err := validateKeyOptions(keyOpts); err != nil {
		return formatter.Fail("distinct failed", err)
	}

	key := input.NewKeyFunc(keyOpts)
	result := []string{}
	err := withLines(cmd, args, func(lines iter.Seq[string]) error {
		result = slices.AppendSeq(result, enumerable.DistinctBy(lines, key))
		return nil
	})
	if err != nil {
		return formatter.Fail("distinct failed", err)
	}

	formatter.VerboseLog("%d distinct line(s)", len(result))
	slog.Debug("distinct lines selected", "count", len(result), "field", keyOpts.Field)
	return formatter.Success(result)
}
