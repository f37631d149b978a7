// Package confloader merges a directory of YAML files into one
// environment-aware configuration map.
//
// A directory typically holds one file per environment (dev.yml,
// sandbox.yml, staging.yml, live.yml), any number of shared files, and a
// global.yml naming the active environment:
//
//	environment: dev
//	required_environments: [dev, sandbox, staging, live]
//
// Load merges every .yml file except those named after a recognised
// environment other than the active one. Later files overwrite earlier
// top-level keys, in directory-listing order. After merging, every
// required key must be present.
//
// The global file is only required when the caller has not set both the
// environment and the possible environments. Parsing goes through a
// koanf.Parser (YAML by default) and listing through a DirLister, so
// both can be replaced.
//
// Repeated loads accumulate into the same store. Create a new Loader for
// a clean result.
package confloader
