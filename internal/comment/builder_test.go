package comment

import (
	"strings"
	"testing"

	"github.com/gnoswap-labs/patterns/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectionOf(infos ...LineInfo) *Collection {
	c := &Collection{}
	for _, li := range infos {
		c.Add(li)
	}
	return c
}

func TestBuildAlignsComments(t *testing.T) {
	t.Parallel()

	lines := []string{
		`(?<year>`,
		`    \d{4}`,
		`)`,
		`-`,
	}
	infos := collectionOf(
		LineInfo{Kind: syntax.NamedGroup},
		LineInfo{Kind: syntax.Digit, Quantifier: syntax.QuantCount, Min: 4},
		LineInfo{Kind: syntax.GroupEnd},
		LineInfo{Kind: syntax.Text},
	)

	got := Build(lines, infos, Options{})
	want := strings.Join([]string{
		`(?<year>  # named group`,
		`    \d{4} # digit, exactly 4 times`,
		`)         # group end`,
		`-         # text`,
	}, "\n")
	assert.Equal(t, want, got)

	col := Column(lines)
	for _, line := range strings.Split(got, "\n") {
		assert.Equal(t, col, strings.Index(line, "# "), line)
	}
}

func TestQuantifiedGroupEndIsGroup(t *testing.T) {
	t.Parallel()

	li := LineInfo{Kind: syntax.GroupEnd, Quantifier: syntax.QuantOneMany, Lazy: true}
	assert.Equal(t, "group, one or more times, but as few times as possible", li.Description())

	li = LineInfo{Kind: syntax.GroupEnd}
	assert.Equal(t, "group end", li.Description())
}

func TestBuildWideRunes(t *testing.T) {
	t.Parallel()

	lines := []string{"日本", "ab"}
	got := Build(lines, collectionOf(LineInfo{Kind: syntax.Text}, LineInfo{Kind: syntax.Text}), Options{})
	assert.Equal(t, "日本 # text\nab   # text", got)
}

func TestBuildColorize(t *testing.T) {
	commentStyle.EnableColor()
	defer commentStyle.DisableColor()

	got := Build([]string{"a"}, collectionOf(LineInfo{Kind: syntax.Char}), Options{Colorize: true})
	assert.True(t, strings.HasPrefix(got, "a \x1b["), got)
	assert.Contains(t, got, "# character")
}

func TestBuildMismatchPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		Build([]string{"a", "b"}, collectionOf(LineInfo{Kind: syntax.Char}), Options{})
	})
	require.Panics(t, func() {
		Build(nil, nil, Options{})
	})
}

func TestCollectionSetLast(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.SetLast(LineInfo{Kind: syntax.Text})
	assert.Equal(t, 0, c.Len())

	c.Add(LineInfo{Kind: syntax.GroupEnd})
	c.SetLast(LineInfo{Kind: syntax.GroupEnd, Quantifier: syntax.QuantMaybe})
	assert.True(t, c.At(0).IsQuantified())
}
