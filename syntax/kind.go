package syntax

// Kind identifies a construct of the pattern language.
type Kind uint8

const (
	// None marks a missing or unknown construct.
	None Kind = iota

	Text           // literal text
	Char           // single literal character
	CharCode       // \uXXXX
	AnyChar        // .
	AnyInvariant   // [\s\S]
	Digit          // \d
	NotDigit       // \D
	WordChar       // \w
	NotWordChar    // \W
	WhiteSpace     // \s
	NotWhiteSpace  // \S
	Category       // \p{name}
	NotCategory    // \P{name}
	Block          // \p{IsName}
	NotBlock       // \P{IsName}
	CharGroup      // [
	NotCharGroup   // [^
	CharGroupEnd   // ]
	Subtraction    // -[
	NotChar        // [^c]
	CharRange      // a-z
	StartOfInput   // \A
	EndOfInput     // \z
	EndOfInputOrLF // \Z
	StartOfLine    // ^
	EndOfLine      // $
	PrevMatchEnd   // \G
	WordBoundary   // \b
	NotWordBound   // \B

	NumberedGroup       // (
	NamedGroup          // (?<name>
	NoncapturingGroup   // (?:
	NonbacktrackingGrp  // (?>
	BalancingGroup      // (?<name1-name2>
	GroupOptions        // (?imnsx-imnsx:
	Assertion           // (?=
	NotAssertion        // (?!
	AssertionBack       // (?<=
	NotAssertionBack    // (?<!
	IfGroup             // (?(name)
	IfAssertion         // (?(
	GroupEnd            // )
	Alternation         // |
	Else                // | inside a conditional
	GroupReference      // \1
	NamedGroupReference // \k<name>
	InlineComment       // (?#
	InlineOptionsKind   // (?imnsx-imnsx)

	kindCount
)

type kindInfo struct {
	name        string
	token       string
	description string
}

var kinds = [kindCount]kindInfo{
	None:           {"None", "", ""},
	Text:           {"Text", "", "text"},
	Char:           {"Char", "", "character"},
	CharCode:       {"CharCode", `\u`, "character code"},
	AnyChar:        {"AnyChar", ".", "any character except newline"},
	AnyInvariant:   {"AnyInvariant", `[\s\S]`, "any character"},
	Digit:          {"Digit", `\d`, "digit"},
	NotDigit:       {"NotDigit", `\D`, "non-digit"},
	WordChar:       {"WordChar", `\w`, "word character"},
	NotWordChar:    {"NotWordChar", `\W`, "non-word character"},
	WhiteSpace:     {"WhiteSpace", `\s`, "white-space character"},
	NotWhiteSpace:  {"NotWhiteSpace", `\S`, "non-white-space character"},
	Category:       {"Category", `\p{`, "Unicode category"},
	NotCategory:    {"NotCategory", `\P{`, "not Unicode category"},
	Block:          {"Block", `\p{`, "Unicode block"},
	NotBlock:       {"NotBlock", `\P{`, "not Unicode block"},
	CharGroup:      {"CharGroup", "[", "character group"},
	NotCharGroup:   {"NotCharGroup", "[^", "negative character group"},
	CharGroupEnd:   {"CharGroupEnd", "]", "character group end"},
	Subtraction:    {"Subtraction", "-", "character subtraction"},
	NotChar:        {"NotChar", "[^", "any character except"},
	CharRange:      {"CharRange", "-", "character range"},
	StartOfInput:   {"StartOfInput", `\A`, "start of input"},
	EndOfInput:     {"EndOfInput", `\z`, "end of input"},
	EndOfInputOrLF: {"EndOfInputOrLF", `\Z`, "end of input or before final newline"},
	StartOfLine:    {"StartOfLine", "^", "start of line or input"},
	EndOfLine:      {"EndOfLine", "$", "end of line or input"},
	PrevMatchEnd:   {"PrevMatchEnd", `\G`, "end of previous match"},
	WordBoundary:   {"WordBoundary", `\b`, "word boundary"},
	NotWordBound:   {"NotWordBound", `\B`, "not word boundary"},

	NumberedGroup:       {"NumberedGroup", "(", "numbered group"},
	NamedGroup:          {"NamedGroup", "(?", "named group"},
	NoncapturingGroup:   {"NoncapturingGroup", "(?:", "noncapturing group"},
	NonbacktrackingGrp:  {"NonbacktrackingGroup", "(?>", "nonbacktracking group"},
	BalancingGroup:      {"BalancingGroup", "(?", "balancing group"},
	GroupOptions:        {"GroupOptions", "(?", "group options"},
	Assertion:           {"Assertion", "(?=", "positive lookahead assertion"},
	NotAssertion:        {"NotAssertion", "(?!", "negative lookahead assertion"},
	AssertionBack:       {"AssertionBack", "(?<=", "positive lookbehind assertion"},
	NotAssertionBack:    {"NotAssertionBack", "(?<!", "negative lookbehind assertion"},
	IfGroup:             {"IfGroup", "(?(", "if group"},
	IfAssertion:         {"IfAssertion", "(?(", "if assertion"},
	GroupEnd:            {"GroupEnd", ")", "group end"},
	Alternation:         {"Alternation", "|", "or"},
	Else:                {"Else", "|", "else"},
	GroupReference:      {"GroupReference", `\`, "group reference"},
	NamedGroupReference: {"NamedGroupReference", `\k`, "named group reference"},
	InlineComment:       {"InlineComment", "(?#", "comment"},
	InlineOptionsKind:   {"InlineOptionsKind", "(?", "inline options"},
}

// String returns the Go-style name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kinds[k].name
}

// Token returns the fixed token that opens the construct in the dialect.
// Kinds whose text depends on their arguments return only the fixed prefix,
// and Text/Char return "".
func (k Kind) Token() string {
	if k >= kindCount {
		return ""
	}
	return kinds[k].token
}

// Description returns the phrase used when commenting a line that holds
// the construct.
func (k Kind) Description() string {
	if k >= kindCount {
		return ""
	}
	return kinds[k].description
}

// IsGroupStart reports whether the construct opens a parenthesised group
// that is closed by GroupEnd.
func (k Kind) IsGroupStart() bool {
	switch k {
	case NumberedGroup, NamedGroup, NoncapturingGroup, NonbacktrackingGrp,
		BalancingGroup, GroupOptions, Assertion, NotAssertion,
		AssertionBack, NotAssertionBack, IfGroup, IfAssertion:
		return true
	default:
		return false
	}
}

// Negate maps a shorthand or anchor kind to its semantic opposite. Kinds
// without an opposite are returned unchanged with ok set to false.
func (k Kind) Negate() (Kind, bool) {
	switch k {
	case Digit:
		return NotDigit, true
	case NotDigit:
		return Digit, true
	case WordChar:
		return NotWordChar, true
	case NotWordChar:
		return WordChar, true
	case WhiteSpace:
		return NotWhiteSpace, true
	case NotWhiteSpace:
		return WhiteSpace, true
	case Category:
		return NotCategory, true
	case NotCategory:
		return Category, true
	case Block:
		return NotBlock, true
	case NotBlock:
		return Block, true
	case CharGroup:
		return NotCharGroup, true
	case NotCharGroup:
		return CharGroup, true
	case Char:
		return NotChar, true
	case NotChar:
		return Char, true
	case WordBoundary:
		return NotWordBound, true
	case NotWordBound:
		return WordBoundary, true
	case Assertion:
		return NotAssertion, true
	case NotAssertion:
		return Assertion, true
	case AssertionBack:
		return NotAssertionBack, true
	case NotAssertionBack:
		return AssertionBack, true
	default:
		return k, false
	}
}
