package cli

import (
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dylanjustice/extensions/enumerable"
	"github.com/dylanjustice/extensions/internal/input"
)

// Adjacency modes for the group command.
const (
	GroupByEqual       = "equal"
	GroupByConsecutive = "consecutive"
)

// GroupOptions holds flags for the group command.
type GroupOptions struct {
	By             string
	GroupDelimiter string
	Key            input.KeyOptions
}

// NewGroupCommand creates the group command.
func NewGroupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GroupOptions{}

	cmd := &cobra.Command{
		Use:   "group [file]",
		Short: "Group runs of adjacent lines",
		Long: `Group consecutive input lines into runs and print one run per line.

--by equal (default) puts a line in the current run when its key equals the
key of the line before it. --by consecutive reads lines as integers and
continues a run while each number is one more than the previous one, so
"1 2 3 5 6" becomes "1 2 3" and "5 6".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", GroupByEqual, "adjacency rule (equal|consecutive)")
	cmd.Flags().StringVar(&opts.GroupDelimiter, "group-delimiter", " ", "separator between the lines of a group in text output")
	addKeyFlags(cmd, &opts.Key)

	return cmd
}

func runGroup(rootOpts *RootOptions, opts *GroupOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(cmd, rootOpts)
	formatter.GroupDelimiter = opts.GroupDelimiter

	pred, err := adjacency(opts)
	if err != nil {
		return formatter.Fail("group failed", err)
	}

	result := [][]string{}
	err = withLines(cmd, args, func(lines iter.Seq[string]) error {
		result = slices.AppendSeq(result, enumerable.GroupAdjacentBy(lines, pred))
		return nil
	})
	if err != nil {
		return formatter.Fail("group failed", err)
	}

	slog.Debug("lines grouped", "by", opts.By, "groups", len(result))
	return formatter.Success(result)
}

// adjacency returns the predicate selected by opts.By.
func adjacency(opts *GroupOptions) (func(prev, cur string) bool, error) {
	switch opts.By {
	case GroupByEqual:
		if err := validateKeyOptions(opts.Key); err != nil {
			return nil, err
		}
		key := input.NewKeyFunc(opts.Key)
		return func(prev, cur string) bool {
			return key(prev) == key(cur)
		}, nil

	case GroupByConsecutive:
		return consecutive, nil

	default:
		return nil, invalidFlag("--by must be %q or %q, got %q", GroupByEqual, GroupByConsecutive, opts.By)
	}
}

// consecutive reports whether cur is the integer right after prev. Lines
// that are not integers are never adjacent to anything.
func consecutive(prev, cur string) bool {
	p, err := strconv.Atoi(strings.TrimSpace(prev))
	if err != nil {
		return false
	}
	c, err := strconv.Atoi(strings.TrimSpace(cur))
	if err != nil {
		return false
	}
	return c == p+1
}
