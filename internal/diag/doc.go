// Package diag holds structured diagnostics for the Lox frontend.
//
// Phases never print: they report through a Reporter, diagnostics accumulate
// as values in a Bag, and presentation belongs to diagfmt and the CLI. A
// scan of one source is therefore a pure function of its bytes — the same
// input always yields the same tokens and the same bag contents.
package diag
