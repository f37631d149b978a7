// Package metric provides Prometheus metrics for envconf.
//
//   - prometheus.go: loader counters and load-duration histogram
//   - collector.go: Go runtime and process collectors
//
// The CLI is short-lived, so metrics are not served over HTTP; they are
// written once per invocation with WriteTextfile.
package metric
