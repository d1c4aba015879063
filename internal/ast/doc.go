// Package ast defines the syntax tree for widl schema files.
//
// Three closed node families are modeled as interface sum types: Type,
// Constant, and Literal. Resolution code switches exhaustively over the
// concrete node structs; no node carries behavior beyond its span.
//
// Nodes are built once by the parser and are treated as immutable. The
// semantic layer takes ownership of declaration subtrees when it flattens
// them into per-kind tables; a subtree is never shared between two owners.
package ast
