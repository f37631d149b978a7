// Package output renders configuration data for the envconf CLI.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: key/value tables, nested values shown as compact JSON
//   - json.go: indented JSON
//   - yaml.go: YAML via gopkg.in/yaml.v3
package output
