package syntax

import "strconv"

// QuantifierKind defines a repetition suffix.
type QuantifierKind uint8

const (
	QuantNone       QuantifierKind = iota // exactly once, no suffix
	QuantMaybe                            // ?
	QuantMaybeMany                        // *
	QuantOneMany                          // +
	QuantCount                            // {n}
	QuantCountFrom                        // {n,}
	QuantCountRange                       // {n,m}
)

// LazySuffix turns a greedy quantifier into a lazy one.
const LazySuffix = "?"

func (q QuantifierKind) String() string {
	switch q {
	case QuantNone:
		return "None"
	case QuantMaybe:
		return "Maybe"
	case QuantMaybeMany:
		return "MaybeMany"
	case QuantOneMany:
		return "OneMany"
	case QuantCount:
		return "Count"
	case QuantCountFrom:
		return "CountFrom"
	case QuantCountRange:
		return "CountRange"
	default:
		return "Unknown"
	}
}

// QuantifierToken renders the suffix for kind q with bounds n and m.
// Bounds that the kind does not use are ignored.
func QuantifierToken(q QuantifierKind, n, m int, lazy bool) string {
	var s string
	switch q {
	case QuantNone:
		return ""
	case QuantMaybe:
		s = "?"
	case QuantMaybeMany:
		s = "*"
	case QuantOneMany:
		s = "+"
	case QuantCount:
		s = "{" + strconv.Itoa(n) + "}"
	case QuantCountFrom:
		s = "{" + strconv.Itoa(n) + ",}"
	case QuantCountRange:
		s = "{" + strconv.Itoa(n) + "," + strconv.Itoa(m) + "}"
	default:
		return ""
	}
	if lazy {
		s += LazySuffix
	}
	return s
}

// QuantifierDescription returns the phrase used in pattern comments, e.g.
// "from 2 to 5 times".
func QuantifierDescription(q QuantifierKind, n, m int) string {
	switch q {
	case QuantMaybe:
		return "zero or one time"
	case QuantMaybeMany:
		return "zero or more times"
	case QuantOneMany:
		return "one or more times"
	case QuantCount:
		return "exactly " + times(n)
	case QuantCountFrom:
		return "at least " + times(n)
	case QuantCountRange:
		return "from " + strconv.Itoa(n) + " to " + times(m)
	default:
		return ""
	}
}

// LazyDescription is appended to the quantifier phrase of a lazy quantifier.
const LazyDescription = "but as few times as possible"

func times(n int) string {
	if n == 1 {
		return "1 time"
	}
	return strconv.Itoa(n) + " times"
}
