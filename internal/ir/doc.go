// Package ir defines the tensor compute language's intermediate
// representation: a rooted, immutable tree over three disjoint node
// universes (Expr, Stmt, Group). Nodes are constructed once, by the
// parser or the differentiator's re-entry path, and never mutated in
// place — a transformation produces a new node and relies on ordinary
// Go pointer/GC semantics for sharing, not an arena (see DESIGN.md:
// TCL kernels are a handful of statements, not whole-program ASTs, so
// an arena/payload-ID indirection buys nothing here).
package ir
