// Package sema is the semantic-analysis stage of the widl compiler.
//
// It runs in two passes over one compilation session. Consumption walks each
// file's syntax tree once, flattening nested declarations into per-kind
// tables and registering every declared type name for global uniqueness.
// Resolution walks the flattened tables once more in a fixed kind order
// (consts, enums, interfaces, structs, unions), resolving identifier
// references and computing wire shapes.
//
// Both passes fail fast: the first structural error is reported through the
// session's diag.Reporter and aborts the pass. No partial result is
// published.
package sema
