package lexicon

import (
	"fmt"
	"strings"
)

// Directive markers recognized in complex dictionaries.
const (
	markReverse = '&'
	markOpen    = '['
	markClose   = ']'
	markSwap    = '!'
	markDouble  = '?'
)

// Expand turns one complex-dictionary entry into the literal words it encodes.
// Rules are tried in a fixed order (reversal, insert-each, swap, double) and
// the first match wins; an entry matching none is returned as-is.
func Expand(line string) ([]string, error) {
	words, err := expand(line)
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: entry %q", ErrEmptyWord, line)
		}
	}
	return words, nil
}

func expand(line string) ([]string, error) {
	if line == "" {
		return nil, nil
	}

	// reversal: "word&" → word, drow
	if line[len(line)-1] == markReverse {
		base := line[:len(line)-1]
		return []string{base, reverse(base)}, nil
	}

	// insert-each: "pre[xyz]suf" → one word per bracketed letter
	open := strings.IndexByte(line, markOpen)
	closing := strings.IndexByte(line, markClose)
	if open >= 0 || closing >= 0 {
		if open < 0 || closing < open {
			return nil, fmt.Errorf("%w: unmatched bracket in %q", ErrMalformedDirective, line)
		}
		prefix, set, suffix := line[:open], line[open+1:closing], line[closing+1:]
		if strings.IndexByte(set, markOpen) >= 0 {
			return nil, fmt.Errorf("%w: nested bracket in %q", ErrMalformedDirective, line)
		}
		out := make([]string, 0, len(set))
		for i := 0; i < len(set); i++ {
			out = append(out, prefix+string(set[i])+suffix)
		}
		return out, nil
	}

	// swap: the two letters preceding '!' trade places
	if i := strings.IndexByte(line, markSwap); i >= 2 {
		base := line[:i] + line[i+1:]
		b := []byte(base)
		b[i-2], b[i-1] = b[i-1], b[i-2]
		return []string{base, string(b)}, nil
	}

	// double: the letter preceding '?' is repeated
	if i := strings.IndexByte(line, markDouble); i >= 1 {
		base := line[:i] + line[i+1:]
		doubled := line[:i] + line[i-1:i] + line[i+1:]
		return []string{base, doubled}, nil
	}

	return []string{line}, nil
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
