package lexicon_test

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordmorph/lexicon"
)

// TestRead_Simple reads a simple dictionary with comments, blanks and trailing junk.
func TestRead_Simple(t *testing.T) {
	in := strings.Join([]string{
		"S",
		"4",
		"// header comment",
		"cat",
		"",
		"bat",
		"// skipped, does not count",
		"rat",
		"hat",
		"trailing line ignored",
		"[also] ignored&",
	}, "\n")

	v, err := lexicon.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"bat", "cat", "hat", "rat"}, v.Words())

	// ranks follow input order: cat=0, bat=1, rat=2, hat=3
	for word, rank := range map[string]int{"cat": 0, "bat": 1, "rat": 2, "hat": 3} {
		id, ok := v.Lookup(word)
		require.True(t, ok, word)
		assert.Equal(t, rank, v.Rank(id), word)
	}
}

// TestRead_SimpleKeepsDirectivesLiteral verifies S dictionaries never expand.
func TestRead_SimpleKeepsDirectivesLiteral(t *testing.T) {
	v, err := lexicon.Read(strings.NewReader("S\n2\ncat&\nb[ai]t\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b[ai]t", "cat&"}, v.Words())
}

// TestRead_Complex expands directives and records first-occurrence ranks.
func TestRead_Complex(t *testing.T) {
	in := "C\n4\ncat&\nb[ai]t\n\nle?t\ntac\n"
	v, err := lexicon.Read(strings.NewReader(in))
	require.NoError(t, err)

	// raw order: cat tac bat bit let leet tac
	assert.Equal(t, []string{"bat", "bit", "cat", "leet", "let", "tac"}, v.Words())
	want := map[string]int{"cat": 0, "tac": 1, "bat": 2, "bit": 3, "let": 4, "leet": 5}
	for word, rank := range want {
		id, ok := v.Lookup(word)
		require.True(t, ok, word)
		assert.Equal(t, rank, v.Rank(id), word)
	}
}

// TestRead_CRLF accepts Windows line endings.
func TestRead_CRLF(t *testing.T) {
	v, err := lexicon.Read(strings.NewReader("S\r\n2\r\nab\r\nba\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ba"}, v.Words())
}

// TestRead_Errors covers header, truncation, grammar and option failures.
func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts []lexicon.Option
		want error
	}{
		{"empty stream", "", nil, lexicon.ErrBadHeader},
		{"no count", "S\n", nil, lexicon.ErrBadHeader},
		{"unknown kind", "X\n1\ncat\n", nil, lexicon.ErrUnknownKind},
		{"bad count", "S\nmany\ncat\n", nil, lexicon.ErrBadCount},
		{"negative count", "S\n-1\n", nil, lexicon.ErrBadCount},
		{"truncated", "S\n3\ncat\n// not a word\n\nbat\n", nil, lexicon.ErrTruncated},
		{"unmatched bracket", "C\n2\ncat\nb[at\n", nil, lexicon.ErrMalformedDirective},
		{"empty reversal", "C\n1\n&\n", nil, lexicon.ErrEmptyWord},
		{"bad option", "S\n0\n", []lexicon.Option{lexicon.WithMaxLineBytes(0)}, lexicon.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lexicon.Read(strings.NewReader(tc.in), tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

// TestRead_LineTooLong surfaces the scanner error when a line exceeds the limit.
func TestRead_LineTooLong(t *testing.T) {
	in := "S\n1\n" + strings.Repeat("a", 64) + "\n"
	_, err := lexicon.Read(strings.NewReader(in), lexicon.WithMaxLineBytes(16))
	require.Error(t, err)
}

// TestRead_ZeroCount yields an empty vocabulary.
func TestRead_ZeroCount(t *testing.T) {
	v, err := lexicon.Read(strings.NewReader("C\n0\nignored\n"), lexicon.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.False(t, v.Has("ignored"))
}
