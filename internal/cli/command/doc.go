// Package command provides CLI command definitions for envconf.
//
//   - root.go: application, global flags, logger and metrics setup
//   - config.go: show, get and check
//   - version.go: build information
//
// Every command loads the directory named by --dir through confloader and
// renders the result with the formatter chosen by --output.
package command
