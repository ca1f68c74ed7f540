// Package diag defines the diagnostic model shared by loading, semantic
// checking and generation phases.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// human-oriented Message, a primary source.Span and optional Notes. Phases
// emit through a Reporter so that emission stays decoupled from storage;
// BagReporter aggregates into a Bag, which supports sorting, deduplication
// and merging per definition file.
//
// The package performs no formatting or IO. Rendering lives in diagfmt and
// the CLI layer. Only user-input errors travel through diagnostics;
// violations of compiler-internal invariants panic instead (see internal/ast).
package diag
