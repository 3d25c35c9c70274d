package cli

import (
	"iter"
	"log/slog"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/dylanjustice/extensions/enumerable"
)

// EmptyOptions holds flags for the empty command.
type EmptyOptions struct {
	Match string
}

// NewEmptyCommand creates the empty command.
func NewEmptyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EmptyOptions{}

	cmd := &cobra.Command{
		Use:   "empty [file]",
		Short: "Report whether the input has no lines",
		Long: `Print true when the input has no lines, false otherwise.

With --match, print true when no line matches the regular expression.
Reading stops at the first line (or first match) that decides the answer.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmpty(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Match, "match", "", "only count lines matching this regular expression")

	return cmd
}

func runEmpty(rootOpts *RootOptions, opts *EmptyOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, rootOpts)

	var re *regexp.Regexp
	if opts.Match != "" {
		var err error
		re, err = regexp.Compile(opts.Match)
		if err != nil {
			return formatter.Fail("empty failed", invalidFlag("--match: %v", err))
		}
	}

	var empty bool
	err := withLines(cmd, args, func(lines iter.Seq[string]) error {
		if re == nil {
			empty = enumerable.IsEmpty(lines)
		} else {
			empty = enumerable.IsEmptyFunc(lines, re.MatchString)
		}
		return nil
	})
	if err != nil {
		return formatter.Fail("empty failed", err)
	}

	slog.Debug("emptiness checked", "empty", empty, "match", opts.Match)
	return formatter.Success(empty)
}
