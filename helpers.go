package patterns

// Frequently needed compositions.

// NewLine matches a line break with an optional carriage return: \r?\n.
func NewLine() Pattern {
	return Concat(Char('\r').Pattern().Maybe(), Char('\n'))
}

// Word matches text as a whole word: \btext\b.
func Word(text string) Pattern {
	return Concat(WordBoundary(), Text(text), WordBoundary())
}

// WhileNotChar matches a run of characters up to, not including, r: [^r]*.
func WhileNotChar(r rune) Pattern {
	return NotChar(r).Pattern().MaybeMany()
}

// WhiteSpaceExceptNewLine matches white space other than \r and \n:
// [\s-[\r\n]].
func WhiteSpaceExceptNewLine() Pattern {
	base := Must(CharGroupOf(WhiteSpace()))
	return Must(base.Except(Must(Chars("\r\n")))).Pattern()
}

// LatinLetter matches an ASCII letter: [a-zA-Z].
func LatinLetter() Pattern {
	return latinLetters().Pattern()
}

// Alphanumeric matches an ASCII letter or digit: [a-zA-Z0-9].
func Alphanumeric() Pattern {
	return latinLetters().Then(Must(CharRange('0', '9'))).Pattern()
}

func latinLetters() CharGrouping {
	return Must(CharRange('a', 'z')).Then(Must(CharRange('A', 'Z')))
}

// Line anchors the elements to a whole line: ^...$. The line anchors only
// match at inner line breaks with the multiline option.
func Line(elems ...Element) Pattern {
	return Concat(StartOfLine(), Concat(elems...), EndOfLine())
}

// Surround puts content between prefix and suffix.
func Surround(prefix, suffix Element, content ...Element) Pattern {
	return Concat(prefix, Concat(content...), suffix)
}

// SurroundParentheses is Surround with literal ( and ).
func SurroundParentheses(content ...Element) Pattern {
	return Surround(Char('('), Char(')'), content...)
}

// SurroundBrackets is Surround with literal [ and ].
func SurroundBrackets(content ...Element) Pattern {
	return Surround(Char('['), Char(']'), content...)
}

// SurroundAngleBrackets is Surround with literal < and >.
func SurroundAngleBrackets(content ...Element) Pattern {
	return Surround(Char('<'), Char('>'), content...)
}

// SurroundQuotes is Surround with literal double quotes.
func SurroundQuotes(content ...Element) Pattern {
	return Surround(Char('"'), Char('"'), content...)
}

// Join puts separator between consecutive elements.
func Join(separator Element, elems ...Element) Pattern {
	var p Pattern
	for i, e := range elems {
		if i > 0 {
			p = p.Then(separator)
		}
		p = p.Then(e)
	}
	return p
}
