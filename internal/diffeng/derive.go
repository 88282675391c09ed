package diffeng

import (
	"fmt"
	"strings"
)

// Result is one generated gradient kernel, ready to replace the
// "ins"/"outs"/"kernel" fields of a copy of the originating JSON case
// (§6.1) — one Result per requested target.
type Result struct {
	Target string
	Ins    []string
	Outs   []string
	Kernel string
}

// Differentiate computes the gradient kernel of src (one
// `LHS = RHS;` statement) with respect to each name in targets, using
// the product-rule derivative and index swap of §4.4.
func Differentiate(src, outName string, targets []string) ([]Result, error) {
	lhsText, rhsText, ok := splitStatement(src)
	if !ok {
		return nil, fmt.Errorf("diffeng: no top-level '=' in %q", src)
	}
	lhsFull, ok := findFullRef(lhsText, outName)
	if !ok {
		return nil, fmt.Errorf("diffeng: output %q not found in LHS %q", outName, lhsText)
	}
	terms := parseSum(rhsText)

	results := make([]Result, 0, len(targets))
	for _, tar := range targets {
		r, err := differentiateOne(src, lhsFull, outName, terms, tar)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func differentiateOne(origSrc, lhsFull, lhsName string, terms sum, tar string) (Result, error) {
	tarFull, ok := findFullRef(origSrc, tar)
	if !ok {
		return Result{}, fmt.Errorf("diffeng: target %q not found in %q", tar, origSrc)
	}
	newLHSFull := "d" + tarFull

	var survivors sum
	insSet := map[string]bool{}
	var ins []string
	addIn := func(name string) {
		if name == "" || insSet[name] {
			return
		}
		insSet[name] = true
		ins = append(ins, name)
	}

	for _, term := range terms {
		for k := range term {
			d, ok := differentiateAtom(term[k], lhsName, tar, lhsFull, tarFull)
			if !ok {
				continue
			}
			candidate := make(product, len(term))
			copy(candidate, term)
			candidate[k] = d
			survivors = append(survivors, candidate)
			for _, a := range candidate {
				addIn(a.name)
			}
		}
	}

	var kernelText string
	if survivors.hasZero() {
		// Every candidate term was pruned: the statement does not
		// depend on tar. Emit a degenerate zero instead of an empty
		// assignment (§7 differentiator-ambiguity policy).
		kernelText = fmt.Sprintf("%s = 0;", newLHSFull)
		ins = nil
	} else {
		parts := make([]string, len(survivors))
		for i, p := range survivors {
			parts[i] = p.String()
		}
		kernelText = fmt.Sprintf("%s = %s;", newLHSFull, strings.Join(parts, " + "))
	}

	return Result{
		Target: tar,
		Ins:    ins,
		Outs:   []string{"d" + tar},
		Kernel: kernelText,
	}, nil
}

// differentiateAtom applies the atom rule: an atom whose name matches
// lhsName or tar survives with its index expression kept but its
// reference swapped to the other side (§4.4's index swap); any other
// atom differentiates to zero.
func differentiateAtom(a atom, lhsName, tar, lhsFull, tarFull string) (atom, bool) {
	switch a.name {
	case lhsName:
		return refAtom("d"+tarFull, "d"+tar), true
	case tar:
		return refAtom("d"+lhsFull, "d"+lhsName), true
	default:
		return atom{}, false
	}
}

// kernelTerms extracts a generated kernel's surviving RHS product
// strings as a set, treating the degenerate "0" RHS as the empty set.
func kernelTerms(kernel string) map[string]bool {
	set := map[string]bool{}
	_, rhs, ok := splitStatement(kernel)
	if !ok {
		return set
	}
	rhs = strings.TrimSpace(rhs)
	if rhs == "0" {
		return set
	}
	for _, t := range splitTopLevel(rhs, '+') {
		set[strings.TrimSpace(t)] = true
	}
	return set
}

func setEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// Linearity checks the §8 invariant 5 the derivative rule is built
// on: differentiating src as a whole against target must agree,
// term-by-term-pruned-and-unioned, with differentiating each
// top-level '+'-separated term of src's RHS on its own — i.e.
// d(A + B) = dA + dB once zero terms are pruned. It is exercised only
// by tests; production differentiation always goes through
// Differentiate directly.
func Linearity(src, outName, target string) (bool, error) {
	lhsText, rhsText, ok := splitStatement(src)
	if !ok {
		return false, fmt.Errorf("diffeng: no top-level '=' in %q", src)
	}

	whole, err := Differentiate(src, outName, []string{target})
	if err != nil {
		return false, err
	}

	combined := map[string]bool{}
	for _, termText := range splitTopLevel(rhsText, '+') {
		sub := lhsText + " = " + strings.TrimSpace(termText) + ";"
		subResults, err := Differentiate(sub, outName, []string{target})
		if err != nil {
			return false, err
		}
		for k := range kernelTerms(subResults[0].Kernel) {
			combined[k] = true
		}
	}

	return setEqual(kernelTerms(whole[0].Kernel), combined), nil
}
