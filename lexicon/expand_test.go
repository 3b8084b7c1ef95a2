package lexicon_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordmorph/lexicon"
)

// TestExpand_Directives walks every rule of the directive grammar.
func TestExpand_Directives(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"literal", "cat", []string{"cat"}},
		{"reversal", "cat&", []string{"cat", "tac"}},
		{"reversal palindrome", "aba&", []string{"aba", "aba"}},
		{"insert-each middle", "b[aeiou]t", []string{"bat", "bet", "bit", "bot", "but"}},
		{"insert-each prefix", "[abc]at", []string{"aat", "bat", "cat"}},
		{"insert-each suffix", "ca[bt]", []string{"cab", "cat"}},
		{"insert-each empty set", "ca[]t", []string{}},
		{"swap", "ab!c", []string{"abc", "bac"}},
		{"swap at end", "tab!", []string{"tab", "tba"}},
		{"double", "le?t", []string{"let", "leet"}},
		{"double at end", "se?", []string{"se", "see"}},
		{"swap below index two is literal", "a!bc", []string{"a!bc"}},
		{"double at index zero is literal", "?ab", []string{"?ab"}},
		{"reversal wins over bracket", "[ab]c&", []string{"[ab]c", "c]ba["}},
		{"bracket wins over swap", "a[bc]d!", []string{"abd!", "acd!"}},
		{"swap wins over double", "ab?c!d", []string{"ab?cd", "abc?d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lexicon.Expand(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestExpand_Errors checks that grammar violations are rejected with the right sentinel.
func TestExpand_Errors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"ab[cd", lexicon.ErrMalformedDirective},
		{"abcd]", lexicon.ErrMalformedDirective},
		{"a]b[c", lexicon.ErrMalformedDirective},
		{"a[b[c]d", lexicon.ErrMalformedDirective},
		{"&", lexicon.ErrEmptyWord},
		{"[a]", nil},
	}
	for _, tc := range cases {
		_, err := lexicon.Expand(tc.in)
		if tc.want == nil {
			if err != nil {
				t.Errorf("Expand(%q): unexpected error %v", tc.in, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("Expand(%q): want %v, got %v", tc.in, tc.want, err)
		}
	}
}

// TestExpand_Idempotent re-expands the literal output of each directive and
// checks the resulting vocabulary and ranks are unchanged.
func TestExpand_Idempotent(t *testing.T) {
	lines := []string{"cat&", "b[aeiou]t", "ab!c", "le?t", "bat"}

	var once []string
	for _, l := range lines {
		words, err := lexicon.Expand(l)
		require.NoError(t, err)
		once = append(once, words...)
	}

	var twice []string
	for _, w := range once {
		words, err := lexicon.Expand(w)
		require.NoError(t, err)
		twice = append(twice, words...)
	}

	v1, v2 := lexicon.New(once), lexicon.New(twice)
	require.Equal(t, v1.Words(), v2.Words())
	for id := 0; id < v1.Len(); id++ {
		assert.Equal(t, v1.Rank(id), v2.Rank(id), "rank of %q", v1.Word(id))
	}
}
