// Package main provides the entry point for envconf.
//
// envconf merges a directory of environment-aware YAML files, validates
// the required keys and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/envconf-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
