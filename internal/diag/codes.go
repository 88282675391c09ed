package diag

import "fmt"

// Code identifies a diagnostic's exact cause, grouped by phase:
// 1000s lexical, 2000s syntactic, 3000s differentiator (§7).
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar Code = 1001

	// Syntactic.
	SynUnexpectedToken     Code = 2001
	SynExpectedConst       Code = 2002
	SynExpectedIdentOrInt  Code = 2003
	SynMissingBounds       Code = 2004
	SynNonConstantShape    Code = 2005
	SynDuplicateIndexShape Code = 2006

	// Differentiator.
	DiffAmbiguousTarget Code = 3001
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "UNKNOWN"
	case LexUnknownChar:
		return "LEX_UNKNOWN_CHAR"
	case SynUnexpectedToken:
		return "SYN_UNEXPECTED_TOKEN"
	case SynExpectedConst:
		return "SYN_EXPECTED_CONST"
	case SynExpectedIdentOrInt:
		return "SYN_EXPECTED_IDENT_OR_INT"
	case SynMissingBounds:
		return "SYN_MISSING_BOUNDS"
	case SynNonConstantShape:
		return "SYN_NON_CONSTANT_SHAPE"
	case SynDuplicateIndexShape:
		return "SYN_DUPLICATE_INDEX_SHAPE"
	case DiffAmbiguousTarget:
		return "DIFF_AMBIGUOUS_TARGET"
	default:
		return fmt.Sprintf("CODE_%d", uint16(c))
	}
}
