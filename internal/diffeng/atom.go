package diffeng

import "strings"

// atom is one E3 leaf: either a numeric literal or a tensor reference
// kept as the exact `Name<shape>[indices]` substring it appeared as.
// name is empty for a literal.
type atom struct {
	full string
	name string
}

func literalAtom(text string) atom { return atom{full: text} }

func refAtom(full, name string) atom { return atom{full: full, name: name} }

// isZero reports whether this atom is the literal "0" (§9 has0
// resolution). The derivative rule itself builds no "0" atoms: it
// drops a term whose differentiated atom is unrelated (§4.4).
func (a atom) isZero() bool { return a.name == "" && a.full == "0" }

// parseAtom classifies one E3 token: a reference if it contains a
// shape angle-bracket, otherwise a bare literal.
func parseAtom(s string) atom {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '<'); i >= 0 {
		return refAtom(s, strings.TrimSpace(s[:i]))
	}
	return literalAtom(s)
}

// product is an E2 node: a '*'-joined run of atoms.
type product []atom

// hasZero is has0() for a product: true iff any atom is zero (§9).
func (p product) hasZero() bool {
	for _, a := range p {
		if a.isZero() {
			return true
		}
	}
	return false
}

func (p product) String() string {
	parts := make([]string, len(p))
	for i, a := range p {
		parts[i] = a.full
	}
	return strings.Join(parts, " * ")
}

// sum is an E1 node, sans its LHS: a '+'-joined run of products.
type sum []product

// hasZero is has0() for a sum: true only if every term is zero — an
// empty sum also counts, since it carries no nonzero contribution
// (§9, and the §7 differentiator-ambiguity fallback).
func (s sum) hasZero() bool {
	for _, p := range s {
		if !p.hasZero() {
			return false
		}
	}
	return true
}

func parseProduct(s string) product {
	parts := splitTopLevel(s, '*')
	out := make(product, len(parts))
	for i, p := range parts {
		out[i] = parseAtom(p)
	}
	return out
}

func parseSum(s string) sum {
	parts := splitTopLevel(s, '+')
	out := make(sum, len(parts))
	for i, p := range parts {
		out[i] = parseProduct(p)
	}
	return out
}
