// Command enumx shuffles, samples, de-duplicates, groups and joins lines of
// text from files or standard input.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dylanjustice/extensions/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Commands print their own errors. Anything else is a usage error
	// raised by cobra before a command ran.
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(cli.ExitCommandError)
}
