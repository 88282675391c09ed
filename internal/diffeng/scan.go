package diffeng

import "strings"

// splitTopLevel splits s on every occurrence of sep that is not
// nested inside a `<...>` shape or `[...]` index list — the
// differentiator's sublanguage has no parentheses, so tracking just
// those two bracket pairs is enough to split correctly (§4.4).
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '[':
			depth++
		case '>', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// splitStatement splits one ';'-terminated assignment into its LHS
// and RHS text at the first top-level '='.
func splitStatement(src string) (lhs, rhs string, ok bool) {
	s := strings.TrimSpace(src)
	s = strings.TrimSuffix(strings.TrimSpace(s), ";")
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '[':
			depth++
		case '>', ']':
			depth--
		case '=':
			if depth == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return "", "", false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// findFullRef locates the first literal `name<shape>[indices]`
// occurrence of name in text (name not preceded by another letter,
// so "A" does not match inside "dA") and returns the exact substring
// as it appears, used as the swap source for the index-swap step
// (§4.4's "full reference string").
func findFullRef(text, name string) (string, bool) {
	for i := 0; i+len(name) <= len(text); i++ {
		if text[i:i+len(name)] != name {
			continue
		}
		if i > 0 && isLetter(text[i-1]) {
			continue
		}
		end := i + len(name)
		if end >= len(text) || text[end] != '<' {
			continue
		}
		j := end
		depth := 0
		for ; j < len(text); j++ {
			if text[j] == '<' {
				depth++
			} else if text[j] == '>' {
				depth--
				if depth == 0 {
					j++
					break
				}
			}
		}
		if j < len(text) && text[j] == '[' {
			bdepth := 0
			k := j
			for ; k < len(text); k++ {
				if text[k] == '[' {
					bdepth++
				} else if text[k] == ']' {
					bdepth--
					if bdepth == 0 {
						k++
						break
					}
				}
			}
			j = k
		}
		return text[i:j], true
	}
	return "", false
}
