package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	idx := NewArena[int]()
	idx.Insert("L", 1)
	idx.Insert("Lu", 2)
	idx.Insert("Ll", 3)
	idx.Insert("Nd", 4)

	tests := []struct {
		key    string
		want   int
		wantOk bool
	}{
		{"L", 1, true},
		{"Lu", 2, true},
		{"Ll", 3, true},
		{"Nd", 4, true},
		{"N", 0, false},
		{"Lx", 0, false},
		{"", 0, false},
		{"Lul", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			got, ok := idx.Lookup(tt.key)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInsertReplaces(t *testing.T) {
	t.Parallel()

	idx := NewArena[string]()
	idx.Insert("IsBasicLatin", "old")
	idx.Insert("IsBasicLatin", "new")

	got, ok := idx.Lookup("IsBasicLatin")
	assert.True(t, ok)
	assert.Equal(t, "new", got)
	assert.Equal(t, []string{"IsBasicLatin"}, idx.Keys(""))
}

func TestKeysAndPrefix(t *testing.T) {
	t.Parallel()

	idx := NewArena[int]()
	for i, k := range []string{"Greek", "GreekExtended", "Gothic", "Arabic"} {
		idx.Insert(k, i)
	}

	assert.Equal(t, []string{"Greek", "GreekExtended"}, idx.Keys("Gre"))
	assert.Equal(t, []string{"Arabic", "Gothic", "Greek", "GreekExtended"}, idx.Keys(""))
	assert.Nil(t, idx.Keys("Z"))
	assert.True(t, idx.HasPrefix("Go"))
	assert.False(t, idx.HasPrefix("Gx"))
	assert.False(t, NewArena[int]().HasPrefix(""))
}

func TestClosest(t *testing.T) {
	t.Parallel()

	idx := NewArena[int]()
	for i, k := range []string{"GreekandCoptic", "GreekExtended", "Gothic", "Arabic"} {
		idx.Insert(k, i)
	}

	tests := []struct {
		key  string
		want []string
	}{
		{"Greek", []string{"GreekExtended", "GreekandCoptic"}},
		{"Greece", []string{"GreekExtended", "GreekandCoptic"}},
		{"Gothik", []string{"Gothic"}},
		{"Gx", []string{"Gothic", "GreekExtended", "GreekandCoptic"}},
		{"Arabic", []string{"Arabic"}},
		{"Hebrew", nil},
		{"", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, idx.Closest(tt.key))
		})
	}
}

func BenchmarkLookup(b *testing.B) {
	idx := NewArena[int]()
	names := []string{"IsBasicLatin", "IsGreekandCoptic", "IsCyrillic", "IsHebrew", "IsArabic"}
	for i, n := range names {
		idx.Insert(n, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = idx.Lookup(names[i%len(names)])
	}
}
