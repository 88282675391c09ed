// Package diffeng computes gradient kernels by symbolic
// differentiation over a separate, minimal string-level AST — not the
// typed IR in internal/ir. A forward kernel statement is a sum (E1)
// of products (E2) of atoms (E3); splitting is a plain depth-aware
// character scan on '=', '+' and '*' since this sublanguage has no
// parentheses (§4.4). The derivative rule differentiates one atom at
// a time via the product rule, prunes zero-containing products, and
// performs an index swap that rewrites transposes/reductions into
// correct gradient indices by substituting the literal
// `Name<shape>[indices]` substrings found in the original statement.
package diffeng
