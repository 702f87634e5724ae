package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		class string
	}{
		{name: "plain", input: "abc", want: "abc", class: "abc"},
		{name: "dot", input: "a.b", want: `a\.b`, class: "a.b"},
		{name: "class specials", input: `]^\-`, want: `\]\^\\-`, class: `\]\^\\\-`},
		{name: "space and hash", input: "a #b", want: `a\ \#b`, class: "a #b"},
		{name: "controls", input: "\t\n\r", want: `\t\n\r`, class: `\t\n\r`},
		{name: "quantifier chars", input: "*+?{}", want: `\*\+\?\{\}`, class: "*+?{}"},
		{name: "non ascii", input: "ä€", want: "ä€", class: "ä€"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Escape(tt.input))
			assert.Equal(t, tt.class, EscapeClass(tt.input))
		})
	}
}

func TestCharCodeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `\`+"u0041", CharCodeToken(0x41))
	assert.Equal(t, `\`+"uFFFF", CharCodeToken(0xFFFF))
	assert.Equal(t, `\`+"u0001", Escape("\x01"))
	assert.Equal(t, `\e`, Escape("\x1b"))
}

func TestValidateGroupName(t *testing.T) {
	t.Parallel()

	valid := []string{"year", "_x", "a1", "Ünïcode", "1", "42"}
	for _, name := range valid {
		assert.NoError(t, ValidateGroupName(name), name)
	}

	invalid := []string{"", "0", "01", "1a", "a-b", "a b", "x)"}
	for _, name := range invalid {
		err := ValidateGroupName(name)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, ErrInvalidGroupName)
	}
}

func TestParseGroupNumber(t *testing.T) {
	t.Parallel()

	n, ok := ParseGroupNumber("12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = ParseGroupNumber("012")
	assert.False(t, ok)
	_, ok = ParseGroupNumber("x")
	assert.False(t, ok)
}

func TestKindTables(t *testing.T) {
	t.Parallel()

	for k := None + 1; k < kindCount; k++ {
		assert.NotEmpty(t, k.String(), "kind %d has no name", k)
		assert.NotEmpty(t, k.Description(), "kind %s has no description", k)
	}
	assert.Equal(t, "Unknown", Kind(255).String())
}

func TestKindNegate(t *testing.T) {
	t.Parallel()

	for k := None; k < kindCount; k++ {
		neg, ok := k.Negate()
		if !ok {
			assert.Equal(t, k, neg)
			continue
		}
		back, ok := neg.Negate()
		assert.True(t, ok)
		assert.Equal(t, k, back, "negation of %s does not round-trip", k)
	}
}

func TestQuantifierToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind QuantifierKind
		n, m int
		lazy bool
		want string
		desc string
	}{
		{QuantNone, 0, 0, false, "", ""},
		{QuantMaybe, 0, 0, false, "?", "zero or one time"},
		{QuantMaybeMany, 0, 0, true, "*?", "zero or more times"},
		{QuantOneMany, 0, 0, false, "+", "one or more times"},
		{QuantCount, 1, 0, false, "{1}", "exactly 1 time"},
		{QuantCountFrom, 3, 0, true, "{3,}?", "at least 3 times"},
		{QuantCountRange, 2, 5, false, "{2,5}", "from 2 to 5 times"},
	}

	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, QuantifierToken(tt.kind, tt.n, tt.m, tt.lazy), tt.kind.String())
		assert.Equal(t, tt.desc, QuantifierDescription(tt.kind, tt.n, tt.m), tt.kind.String())
	}
}

func TestCategoriesAndBlocks(t *testing.T) {
	t.Parallel()

	for c := GeneralCategory(0); c < categoryCount; c++ {
		got, ok := ParseCategory(c.Designation())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}

	for b := NamedBlock(0); b < blockCount; b++ {
		assert.True(t, strings.HasPrefix(b.Designation(), "Is"))
		got, ok := ParseBlock(b.Designation())
		require.True(t, ok, b.Designation())
		assert.Equal(t, b, got)
		first, last := b.Range()
		assert.LessOrEqual(t, first, last)
	}

	assert.True(t, BlockBasicLatin.Contains('a'))
	assert.False(t, BlockBasicLatin.Contains('ä'))
	assert.Equal(t, "IsLatin-1Supplement", BlockLatin1Supplement.Designation())
	_, ok := ParseBlock("IsNoSuchBlock")
	assert.False(t, ok)
}

func TestSuggestions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"L", "Ll", "Lm", "Lo", "Lt", "Lu"}, SuggestCategories("Lx"))
	assert.Nil(t, SuggestCategories("Q"))

	assert.Equal(t, []string{"IsGreekExtended", "IsGreekandCoptic"}, SuggestBlocks("IsGreek"))
	assert.Equal(t, []string{"IsGreekExtended", "IsGreekandCoptic"}, SuggestBlocks("Greek"))
	assert.Nil(t, SuggestBlocks("Is"))
}

func TestOptionsToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "i", OptionsToken(IgnoreCase, 0))
	assert.Equal(t, "im-sx", OptionsToken(Multiline|IgnoreCase, Singleline|IgnorePatternWhitespace))
	assert.Equal(t, "-n", OptionsToken(0, ExplicitCapture))
	assert.True(t, AllInlineOptions.IsValid())
	assert.False(t, InlineOptions(0x80).IsValid())

	assert.Equal(t, "(?", InlineOptionsKind.Token())
	assert.Equal(t, "inline options", InlineOptionsKind.Description())
	assert.Equal(t, "InlineOptionsKind", InlineOptionsKind.String())
}

func TestIdentifierBoundary(t *testing.T) {
	t.Parallel()

	b, err := ParseIdentifierBoundary("apostrophe")
	require.NoError(t, err)
	assert.Equal(t, "'", b.Open())
	assert.Equal(t, "'", b.Close())
	assert.Equal(t, "<", AngleBrackets.Open())
	assert.Equal(t, ">", AngleBrackets.Close())

	_, err = ParseIdentifierBoundary("curly")
	assert.Error(t, err)
}
