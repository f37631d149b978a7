// Package domain defines the error model shared by envconf packages.
//
// Every failure the loader can report is a *DomainError with a stable code:
//
//   - EC-DIR-*: configuration directory problems
//   - EC-GLB-*: global file missing or incomplete
//   - EC-KEY-*: required key validation
//   - EC-FILE-*: per-file parse failures
//
// Callers match with errors.Is against the exported sentinels; details
// attached via WithDetails do not affect matching.
package domain
