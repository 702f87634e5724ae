package patterns

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/patterns/syntax"
)

func mustCompile(t *testing.T, pattern string, opt regexp2.RegexOptions) *regexp2.Regexp {
	t.Helper()
	re, err := regexp2.Compile(pattern, opt)
	require.NoError(t, err, "pattern %q", pattern)
	return re
}

func TestPatternRendering(t *testing.T) {
	t.Parallel()

	ab := Text("ab")
	year := Must(NamedGroup("year", Repeat(Must(Exactly(4)), Digit())))

	tests := []struct {
		name string
		p    Pattern
		want string
	}{
		{"empty", Pattern{}, ``},
		{"text escaped", Text("a.b"), `a\.b`},
		{"metacharacters", Text(`\*+?|{}[]()^$.# `), `\\\*\+\?\|\{\}\[\]\(\)\^\$\.\#\ `},
		{"control characters", Text("\t\n\r\f\v\a\x1b"), `\t\n\r\f\v\a\e`},
		{"class specials outside class", Text("-]"), `-\]`},
		{"char", Char('$').Pattern(), `\$`},
		{"single char quantified", Text("a").OneMany(), `a+`},
		{"text quantified", ab.Maybe(), `(?:ab)?`},
		{"sequence quantified", Concat(ab, Digit()).OneMany(), `(?:ab\d)+`},
		{"quantified twice", Text("a").OneMany().Maybe(), `(?:a+)?`},
		{"lazy range", Digit().Pattern().Repeat(Must(Between(2, 5)).Lazy()), `\d{2,5}?`},
		{"count from", Group(Digit()).Repeat(Must(AtLeast(3))), `(\d){3,}`},
		{"lazy helpers", Concat(MaybeLazy(Char('a')), MaybeManyLazy(Char('b')), OneManyLazy(Char('c'))), `a??b*?c+?`},
		{"any char", AnyChar().OneMany(), `.+`},
		{"any invariant", AnyInvariant().MaybeMany(), `[\s\S]*`},
		{"anchor quantified", StartOfLine().Maybe(), `(?:^)?`},
		{"named group", year, `(?<year>\d{4})`},
		{"numbered group", Group(ab), `(ab)`},
		{"noncapturing", NonCapturing(ab), `(?:ab)`},
		{"atomic", Atomic(ab), `(?>ab)`},
		{"balancing", Must(BalancingGroup("inner", "open", Text("x"))), `(?<inner-open>x)`},
		{"balancing without name", Must(BalancingGroup("", "open")), `(?<-open>)`},
		{"group options", Must(GroupOptions(syntax.IgnoreCase, syntax.Multiline, Text("a"))), `(?i-m:a)`},
		{"inline options", Must(Options(syntax.IgnoreCase|syntax.Singleline, 0)), `(?is)`},
		{"lookahead", Assert(ab), `(?=ab)`},
		{"negative lookahead", NotAssert(ab), `(?!ab)`},
		{"lookbehind", AssertBack(ab), `(?<=ab)`},
		{"negative lookbehind", NotAssertBack(ab), `(?<!ab)`},
		{"lookahead quantified", Assert(ab).Maybe(), `(?:(?=ab))?`},
		{"alternation alone", Alternation(Text("a"), Text("b")), `a|b`},
		{"alternation in sequence", Concat(Text("x"), Alternation(Text("a"), Text("b"))), `x(?:a|b)`},
		{"alternation in group", Group(Alternation(Text("a"), Text("b"))), `(a|b)`},
		{"alternation quantified", Alternation(Text("a"), Text("b")).OneMany(), `(?:a|b)+`},
		{"alternation with sequence branch", Alternation(Concat(Text("a"), Digit()), Text("b")), `a\d|b`},
		{"any of", AnyOf(Text("a"), Text("b")), `(?:a|b)`},
		{"empty alternation", Alternation(), ``},
		{"if group", Must(IfGroup("year", Text("a"), Text("b"))), `(?(year)a|b)`},
		{"if group numbered without else", Must(IfGroup("1", Text("a"), nil)), `(?(1)a)`},
		{"if group alternation branch", Must(IfGroup("n", Alternation(Text("a"), Text("b")), Text("c"))), `(?(n)(?:a|b)|c)`},
		{"if assert", Must(IfAssert(Digit(), Text("a"), Text("b"))), `(?(\d)a|b)`},
		{"backreference", Must(Backreference(1)), `\1`},
		{"backreference before digit", Concat(Must(Backreference(1)), Text("0")), `\10`},
		{"named backreference", Must(NamedBackreference("year")), `\k<year>`},
		{"comment", Must(Comment("note")), `(?#note)`},
		{"anchors", Concat(StartOfInput(), EndOfInput(), EndOfInputOrBeforeFinalNewLine(), PreviousMatchEnd(), WordBoundary(), NotWordBoundary()), `\A\z\Z\G\b\B`},
		{"new line", NewLine(), `\r?\n`},
		{"word", Word("cat"), `\bcat\b`},
		{"while not char", WhileNotChar('"'), `[^"]*`},
		{"white space except new line", WhiteSpaceExceptNewLine(), `[\s-[\r\n]]`},
		{"latin letter", LatinLetter(), `[a-zA-Z]`},
		{"alphanumeric", Alphanumeric(), `[a-zA-Z0-9]`},
		{"line", Line(Text("a")), `^a$`},
		{"surround parentheses", SurroundParentheses(Text("x")), `\(x\)`},
		{"surround brackets", SurroundBrackets(Text("x")), `\[x\]`},
		{"surround angle brackets", SurroundAngleBrackets(Text("x")), `<x>`},
		{"surround quotes", SurroundQuotes(Text("x")), `"x"`},
		{"surround", Surround(Text("<<"), Text(">>"), Digit()), `<<\d>>`},
		{"join", Join(Char(','), Digit(), WordChar(), WhiteSpace()), `\d,\w,\s`},
		{"join single", Join(Char(','), Digit()), `\d`},
		{"nil elements skipped", Concat(nil, Text("a"), nil), `a`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.p.String())
		})
	}
}

func TestRenderedPatternsCompile(t *testing.T) {
	t.Parallel()

	lower := Must(CharGroupOf(Must(CharRange('a', 'z'))))
	tests := []struct {
		name  string
		p     Pattern
		match string
	}{
		{"date", Concat(
			Must(NamedGroup("year", Repeat(Must(Exactly(4)), Digit()))),
			Char('-'),
			Must(NamedGroup("month", Repeat(Must(Exactly(2)), Digit()))),
		), "2024-05"},
		{"subtraction", Must(lower.Except(Must(Chars("aeiou")))).Pattern().OneMany(), "bcd"},
		{"escaped text", Line(Text(`a.b*c (d) [e] {f} #g $h ^i |j \k`)), `a.b*c (d) [e] {f} #g $h ^i |j \k`},
		{"class specials", Must(CharGroupOf(Must(Chars(`]^-\`)))).Pattern().OneMany(), `]^-\`},
		{"balancing", Concat(
			Must(NamedGroup("open", Char('('))),
			Must(BalancingGroup("inner", "open", Char(')'))),
		), "()"},
		{"conditional", Concat(
			Maybe(Group(Char('<'))),
			Digit(),
			Must(IfGroup("1", Char('>'), nil)),
		), "<1>"},
		{"assertion conditional", Must(IfAssert(Digit(), Digit().Pattern().OneMany(), LatinLetter().OneMany())), "abc"},
		{"backreference", Concat(Group(WordChar()), Must(Backreference(1))), "aa"},
		{"named backreference", Concat(Must(NamedGroup("c", WordChar())), Must(NamedBackreference("c"))), "bb"},
		{"options", Concat(Must(Options(syntax.IgnoreCase, 0)), Text("abc")), "ABC"},
		{"group options", Must(GroupOptions(syntax.IgnoreCase, 0, Text("abc"))), "aBc"},
		{"comment", Concat(Text("a"), Must(Comment("the letter a"))), "a"},
		{"category", Must(InCategory(syntax.CategoryUppercaseLetter)).Pattern().OneMany(), "AB"},
		{"white space except new line", WhiteSpaceExceptNewLine(), " "},
		{"word", Word("cat"), "a cat sat"},
		{"alternation", Line(Alternation(Text("cat"), Text("dog"))), "dog"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			re := mustCompile(t, tt.p.String(), regexp2.None)
			ok, err := re.MatchString(tt.match)
			require.NoError(t, err)
			assert.True(t, ok, "%s should match %q", tt.p, tt.match)
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	p := Concat(
		Must(NamedGroup("word", OneMany(LatinLetter()))),
		Alternation(Text(", "), Text("; ")),
		Must(NamedBackreference("word")),
	)
	settings := []*Settings{
		DefaultSettings(),
		{Format: true, IndentSize: 2},
		{Format: true, Comment: true, IndentSize: 4},
	}
	for _, s := range settings {
		first := p.Render(s)
		assert.Equal(t, first, p.Render(s))
		assert.Equal(t, first, p.Render(s))
	}
}

func TestConcatIsAssociative(t *testing.T) {
	t.Parallel()

	a := Text("a.")
	b := Must(CharGroupOf(Must(CharRange('0', '9'))))
	c := Alternation(Text("x"), Text("y"))

	left := Concat(a, Concat(b, c))
	right := Concat(Concat(a, b), c)
	assert.Equal(t, left.String(), right.String())
	assert.Equal(t, a.Then(b.Pattern().Then(c)).String(), a.Then(b).Then(c).String())
	assert.Equal(t, `a\.[0-9](?:x|y)`, left.String())
}

func TestThenKeepsReceiver(t *testing.T) {
	t.Parallel()

	base := Text("a")
	left := base.Then(Text("b"))
	right := base.Then(Text("c"))

	assert.Equal(t, `a`, base.String())
	assert.Equal(t, `ab`, left.String())
	assert.Equal(t, `ac`, right.String())
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, left.Len())
}

func TestSharedPatternFromManyGoroutines(t *testing.T) {
	t.Parallel()

	shared := Concat(StartOfInput(), Text("id-"))

	const workers = 16
	got := make([]string, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			p := shared.Then(Text(fmt.Sprint(i)), EndOfInput())
			got[i] = p.String()
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, `\Aid-`, shared.String())
	for i, s := range got {
		assert.Equal(t, fmt.Sprintf(`\Aid-%d\z`, i), s)
	}
}

func TestConstructionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"negative count", second(Exactly(-1)), ErrInvalidCount},
		{"negative at least", second(AtLeast(-3)), ErrInvalidCount},
		{"inverted between", second(Between(5, 2)), ErrInvalidCount},
		{"empty group name", second(NamedGroup("")), ErrInvalidGroupName},
		{"group name starts with digit", second(NamedGroup("1a")), ErrInvalidGroupName},
		{"group number with leading zero", second(NamedGroup("01")), ErrInvalidGroupName},
		{"group name with dash", second(NamedGroup("a-b")), ErrInvalidGroupName},
		{"balancing previous missing", second(BalancingGroup("a", "")), ErrInvalidGroupName},
		{"zero backreference", second(Backreference(0)), ErrInvalidGroupName},
		{"bad named backreference", second(NamedBackreference("x y")), ErrInvalidGroupName},
		{"bad if group", second(IfGroup("", Text("a"), nil)), ErrInvalidGroupName},
		{"empty if assert", second(IfAssert(nil, Text("a"), nil)), ErrNilOperand},
		{"comment with paren", second(Comment("a)b")), ErrInvalidComment},
		{"comment with newline", second(Comment("a\nb")), ErrInvalidComment},
		{"no options", second(Options(0, 0)), ErrInvalidOptions},
		{"overlapping options", second(Options(syntax.IgnoreCase, syntax.IgnoreCase)), ErrInvalidOptions},
		{"unknown options", second(GroupOptions(syntax.InlineOptions(0x80), 0)), ErrInvalidOptions},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.err, tt.want)
		})
	}
}

func second[T any](_ T, err error) error { return err }

func TestMustPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Must(Chars("")) })
	assert.NotPanics(t, func() { Must(Chars("a")) })
}

func TestQuantifierAccessors(t *testing.T) {
	t.Parallel()

	q := Must(Between(2, 7)).Lazy()
	n, m := q.Bounds()
	assert.Equal(t, syntax.QuantCountRange, q.Kind())
	assert.True(t, q.IsLazy())
	assert.Equal(t, 2, n)
	assert.Equal(t, 7, m)
	assert.Equal(t, "{2,7}?", q.String())

	assert.False(t, Quantifier{}.Lazy().IsLazy())
	assert.Equal(t, `a`, Text("a").Repeat(Quantifier{}).String())
	assert.True(t, Pattern{}.OneMany().IsEmpty())
}
