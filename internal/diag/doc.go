// Package diag defines the diagnostic model shared by all compiler phases.
//
// Diagnostic is the central record: Severity, a stable numeric Code, a short
// message, the primary source.Span, and optional secondary Notes. Phases emit
// through a Reporter so that producers stay decoupled from storage; BagReporter
// aggregates into a Bag, which supports limits, sorting, and error queries.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver and the CLI.
package diag
