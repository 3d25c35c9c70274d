package cli

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/dylanjustice/extensions/enumerable"
	"github.com/dylanjustice/extensions/internal/input"
)

// errInvalidFlag is wrapped by flag validation failures.
var errInvalidFlag = errors.New("invalid flag")

func invalidFlag(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errInvalidFlag, fmt.Sprintf(format, args...))
}

func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// withLines opens the input named by args (stdin when absent) and hands its
// lines to fn. Read errors are checked after fn returns, so fn may consume
// the lines lazily.
func withLines(cmd *cobra.Command, args []string, fn func(lines iter.Seq[string]) error) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	rc, err := input.Open(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer rc.Close()

	lr := input.NewLineReader(rc)
	if err := fn(lr.All()); err != nil {
		return err
	}
	if err := lr.Err(); err != nil {
		return &input.LoadError{Path: path, Message: "reading input", Err: err}
	}

	slog.Debug("input read", "path", path, "lines", lr.Lines())
	return nil
}

// addKeyFlags registers the flags that build an input.KeyOptions.
func addKeyFlags(cmd *cobra.Command, opts *input.KeyOptions) {
	cmd.Flags().IntVar(&opts.Field, "field", 0, "compare only this 1-based field (0 = whole line)")
	cmd.Flags().StringVar(&opts.Separator, "separator", "", "field separator (default: runs of whitespace)")
	cmd.Flags().BoolVar(&opts.IgnoreCase, "ignore-case", false, "compare case-folded keys")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "compare keys in Unicode NFC form")
}

func validateKeyOptions(opts input.KeyOptions) error {
	if opts.Field < 0 {
		return invalidFlag("--field must be >= 0, got %d", opts.Field)
	}
	return nil
}

// renderGroups joins the elements of every group with delimiter.
func renderGroups(groups [][]string, delimiter string) []string {
	return lo.Map(groups, func(group []string, _ int) string {
		return enumerable.Join(slices.Values(group), delimiter).OrEmpty()
	})
}
