// Command envconf loads a configuration directory and prints or checks it.
//
// Usage:
//
//	envconf --dir ./config show
//	envconf --dir ./config --require database get database
//	envconf --dir ./config --env live --environments dev,live check
//
// See "envconf --help" for all flags.
package main
