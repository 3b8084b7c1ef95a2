// Package morph provides tunable options, edit metadata and error definitions
// for searching a word ladder over a lexicon.Vocabulary.
package morph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Sentinel errors for morph searches.
var (
	// ErrVocabularyNil is returned if a nil vocabulary is passed.
	ErrVocabularyNil = errors.New("morph: vocabulary is nil")

	// ErrWordNotFound is returned when the source or target word is absent.
	ErrWordNotFound = errors.New("morph: word not found in vocabulary")

	// ErrNoOperations is returned when no edit operation is enabled.
	ErrNoOperations = errors.New("morph: no edit operation enabled")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("morph: invalid option supplied")

	// ErrNoPath is returned when a path is requested from an exhausted search.
	ErrNoPath = errors.New("morph: no path to target")

	// ErrBadEdit is returned when an edit cannot be applied to a word.
	ErrBadEdit = errors.New("morph: edit does not apply")
)

// Discipline selects which end of the frontier the engine pops from.
type Discipline int

const (
	// Queue pops from the front: breadth-first.
	Queue Discipline = iota
	// Stack pops from the back: depth-first (eager-discovery variant).
	Stack
)

// String returns "queue" or "stack".
func (d Discipline) String() string {
	switch d {
	case Queue:
		return "queue"
	case Stack:
		return "stack"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

// Operation is a bit set of enabled edit families.
type Operation uint8

const (
	// OpChange substitutes one letter.
	OpChange Operation = 1 << iota
	// OpLength inserts or deletes one letter.
	OpLength
	// OpSwap transposes two adjacent letters.
	OpSwap

	opAll = OpChange | OpLength | OpSwap
)

// Has reports whether every family in x is enabled in o.
func (o Operation) Has(x Operation) bool {
	return o&x == x
}

// String lists enabled families, e.g. "change|swap".
func (o Operation) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	if o.Has(OpChange) {
		parts = append(parts, "change")
	}
	if o.Has(OpLength) {
		parts = append(parts, "length")
	}
	if o.Has(OpSwap) {
		parts = append(parts, "swap")
	}
	return strings.Join(parts, "|")
}

// EditKind names the single edit that produced a word from its parent.
type EditKind uint8

const (
	EditNone EditKind = iota
	EditChange
	EditInsert
	EditDelete
	EditSwap
)

// String returns the long name used in edit scripts.
func (k EditKind) String() string {
	switch k {
	case EditChange:
		return "change"
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	case EditSwap:
		return "swap"
	default:
		return "none"
	}
}

// Edit describes one step. Char is meaningful only for change and insert.
// Pos is relative to the predecessor word.
type Edit struct {
	Kind EditKind
	Pos  int
	Char byte
}

// Apply regenerates the successor of word under e.
func (e Edit) Apply(word string) (string, error) {
	n := len(word)
	switch e.Kind {
	case EditChange:
		if e.Pos < 0 || e.Pos >= n {
			break
		}
		return word[:e.Pos] + string(e.Char) + word[e.Pos+1:], nil
	case EditInsert:
		if e.Pos < 0 || e.Pos > n {
			break
		}
		return word[:e.Pos] + string(e.Char) + word[e.Pos:], nil
	case EditDelete:
		if e.Pos < 0 || e.Pos >= n {
			break
		}
		return word[:e.Pos] + word[e.Pos+1:], nil
	case EditSwap:
		if e.Pos < 0 || e.Pos+1 >= n {
			break
		}
		b := []byte(word)
		b[e.Pos], b[e.Pos+1] = b[e.Pos+1], b[e.Pos]
		return string(b), nil
	}
	return "", fmt.Errorf("%w: %s at %d on %q", ErrBadEdit, e.Kind, e.Pos, word)
}

// State is the discovery state of one vertex.
type State uint8

const (
	Undiscovered State = iota
	DiscoveredRoot
	DiscoveredWithParent
)

// Record is the discovery record of one vertex. Parent is -1 unless
// State is DiscoveredWithParent.
type Record struct {
	State  State
	Parent int
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks for Search.
type Options struct {
	// Ctx allows cancellation between vertex expansions.
	Ctx context.Context

	// Discipline selects breadth-first (Queue) or depth-first (Stack) popping.
	Discipline Discipline

	// Operations is the set of enabled edit families. Must be non-empty.
	Operations Operation

	// TrackEdits keeps per-vertex edit metadata for edit-script output.
	TrackEdits bool

	// Logger receives debug diagnostics.
	Logger *slog.Logger

	// OnDiscover is called when a vertex is first reached from parent via e.
	OnDiscover func(id, parent int, e Edit)

	// OnExpand is called after a vertex's neighbors are generated. The slice
	// is only valid for the duration of the call.
	OnExpand func(id int, neighbors []int)

	err error
}

// DefaultOptions returns Options with a background context, breadth-first
// discipline, no operations, no edit tracking, a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Discipline: Queue,
		Logger:     slog.New(slog.DiscardHandler),
		OnDiscover: func(int, int, Edit) {},
		OnExpand:   func(int, []int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiscipline selects Queue or Stack popping.
func WithDiscipline(d Discipline) Option {
	return func(o *Options) {
		if d != Queue && d != Stack {
			o.err = fmt.Errorf("%w: unknown discipline %d", ErrOptionViolation, int(d))
			return
		}
		o.Discipline = d
	}
}

// WithOperations sets the enabled edit families.
func WithOperations(ops Operation) Option {
	return func(o *Options) {
		if ops&^opAll != 0 {
			o.err = fmt.Errorf("%w: unknown operation bits %#x", ErrOptionViolation, uint8(ops&^opAll))
			return
		}
		o.Operations = ops
	}
}

// WithEditTracking enables or disables the edit metadata side table.
func WithEditTracking(on bool) Option {
	return func(o *Options) {
		o.TrackEdits = on
	}
}

// WithLogger sets the logger used for diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnDiscover registers a discovery hook.
func WithOnDiscover(fn func(id, parent int, e Edit)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnExpand registers an expansion hook.
func WithOnExpand(fn func(id int, neighbors []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
