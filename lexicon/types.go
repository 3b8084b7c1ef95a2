// Package lexicon provides options and error definitions
// for reading and expanding morph dictionaries.
package lexicon

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for dictionary parsing.
var (
	// ErrBadHeader is returned when the kind or count line is missing.
	ErrBadHeader = errors.New("lexicon: missing dictionary header")

	// ErrUnknownKind is returned when the kind line is neither "S" nor "C".
	ErrUnknownKind = errors.New("lexicon: unknown dictionary kind")

	// ErrBadCount is returned when the declared entry count is not a non-negative integer.
	ErrBadCount = errors.New("lexicon: invalid word count")

	// ErrTruncated is returned when the stream ends before all declared entries are read.
	ErrTruncated = errors.New("lexicon: dictionary shorter than declared count")

	// ErrMalformedDirective is returned for entries whose directive syntax is broken.
	ErrMalformedDirective = errors.New("lexicon: malformed directive")

	// ErrEmptyWord is returned when an entry expands to an empty word.
	ErrEmptyWord = errors.New("lexicon: empty word")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lexicon: invalid option supplied")
)

// Kind selects how dictionary entries are interpreted.
type Kind byte

const (
	// Simple dictionaries hold one literal word per entry.
	Simple Kind = 'S'
	// Complex dictionaries may use the directive grammar.
	Complex Kind = 'C'
)

// String returns the single-letter header form of k.
func (k Kind) String() string {
	return string(k)
}

// DefaultMaxLineBytes bounds a single dictionary line.
const DefaultMaxLineBytes = 1 << 20

// Option configures Read via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Read.
type Option func(*ReadOptions)

// ReadOptions holds parameters for Read.
type ReadOptions struct {
	// Logger receives debug diagnostics. Defaults to a discarding logger.
	Logger *slog.Logger

	// MaxLineBytes caps the length of any input line.
	MaxLineBytes int

	err error
}

// DefaultOptions returns ReadOptions with a discarding logger and
// a DefaultMaxLineBytes line limit.
func DefaultOptions() ReadOptions {
	return ReadOptions{
		Logger:       slog.New(slog.DiscardHandler),
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// WithLogger sets the logger used for diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *ReadOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLineBytes overrides the per-line size limit.
//
//	n > 0:  use n
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxLineBytes(n int) Option {
	return func(o *ReadOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLineBytes must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLineBytes = n
	}
}
