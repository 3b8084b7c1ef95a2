package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const commentPrefix = "//"

// Read parses a dictionary stream and builds its Vocabulary.
//
// Layout:
//
//	line 1: kind, "S" or "C"
//	line 2: declared entry count N
//	then N entries; blank and "//" lines are skipped without counting
//	then anything, read and discarded
//
// Returns ErrBadHeader, ErrUnknownKind, ErrBadCount, ErrTruncated,
// ErrMalformedDirective, ErrEmptyWord, ErrOptionViolation, or the
// underlying read error.
func Read(r io.Reader, opts ...Option) (*Vocabulary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, o.MaxLineBytes)), o.MaxLineBytes)

	kind, count, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	raw := make([]string, 0, count)
	entries, lineNo := 0, 2
	for entries < count {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("lexicon: reading entry %d: %w", entries+1, err)
			}
			return nil, fmt.Errorf("%w: got %d of %d entries", ErrTruncated, entries, count)
		}
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		entries++

		if kind == Simple {
			raw = append(raw, line)
			continue
		}
		words, err := Expand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		raw = append(raw, words...)
	}

	// trailing lines are consumed and ignored
	trailing := 0
	for sc.Scan() {
		trailing++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: reading trailing input: %w", err)
	}

	v := New(raw)
	o.Logger.Debug("dictionary loaded",
		"kind", kind.String(),
		"entries", entries,
		"raw_words", len(raw),
		"unique_words", v.Len(),
		"trailing_lines", trailing,
	)
	return v, nil
}

func readHeader(sc *bufio.Scanner) (Kind, int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, 0, fmt.Errorf("lexicon: reading kind: %w", err)
		}
		return 0, 0, fmt.Errorf("%w: no kind line", ErrBadHeader)
	}
	kindLine := strings.TrimSpace(sc.Text())
	var kind Kind
	switch kindLine {
	case string(Simple):
		kind = Simple
	case string(Complex):
		kind = Complex
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownKind, kindLine)
	}

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, 0, fmt.Errorf("lexicon: reading count: %w", err)
		}
		return 0, 0, fmt.Errorf("%w: no count line", ErrBadHeader)
	}
	countLine := strings.TrimSpace(sc.Text())
	count, err := strconv.Atoi(countLine)
	if err != nil || count < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCount, countLine)
	}
	return kind, count, nil
}
