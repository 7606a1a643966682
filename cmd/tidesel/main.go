// Package main is the entry point for the tidesel CLI.
package main

import (
	"fmt"
	"os"

	"github.com/bethropolis/tidesel/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tidesel: %v\n", err)
		return 1
	}
	return 0
}
