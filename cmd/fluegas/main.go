// Command fluegas is a fuel-gas combustion calculator: it computes the
// combustion-air requirement and exhaust-gas composition for a
// multi-component fuel stream.
package main

import (
	"fmt"
	"os"

	"github.com/combustkit/fluegas/internal/cli"
	"github.com/combustkit/fluegas/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to exit code 1.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
