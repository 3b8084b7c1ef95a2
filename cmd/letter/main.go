// Command letter finds a morph between two dictionary words.
//
// The dictionary is read from --dict or stdin; the morph is written to
// stdout and diagnostics to stderr. See `letter --help` for the options.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
