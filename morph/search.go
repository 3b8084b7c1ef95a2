package morph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordmorph/lexicon"
)

// walker encapsulates mutable search state.
type walker struct {
	opts     Options
	ctx      context.Context
	gen      *generator
	frontier []int
	res      *Result
}

// Search looks for a morph from source to target over v, applying any
// number of functional Options. Both words must be in v (use
// Vocabulary.Has to fail fast before reading further input).
//
// A search ending without reaching target is not an error: the returned
// Result has Found == false and Discovered reports how many words were reached.
// Returns ErrVocabularyNil, ErrOptionViolation, ErrNoOperations,
// ErrWordNotFound, or the context error on cancellation.
func Search(v *lexicon.Vocabulary, source, target string, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrVocabularyNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Operations == 0 {
		return nil, ErrNoOperations
	}

	src, ok := v.Lookup(source)
	if !ok {
		return nil, fmt.Errorf("%w: begin word %q", ErrWordNotFound, source)
	}
	dst, ok := v.Lookup(target)
	if !ok {
		return nil, fmt.Errorf("%w: end word %q", ErrWordNotFound, target)
	}

	res := newResult(v.Len(), src, dst, o.Discipline, o.TrackEdits)
	w := &walker{
		opts:     o,
		ctx:      o.Ctx,
		gen:      newGenerator(v, o.Operations, res, o.OnDiscover),
		frontier: make([]int, 0, 64),
		res:      res,
	}
	if err := w.run(); err != nil {
		return nil, err
	}

	o.Logger.Debug("search finished",
		"discipline", o.Discipline.String(),
		"operations", o.Operations.String(),
		"found", res.Found,
		"discovered", res.discovered,
		"expanded", res.expanded,
	)
	return res, nil
}

// run drives the frontier until the target is reached or the frontier empties.
// Both disciplines share this loop; only pop differs. The target counts as
// found as soon as it is pushed, before it is ever popped.
func (w *walker) run() error {
	w.res.records[w.res.Source] = Record{State: DiscoveredRoot, Parent: -1}
	w.res.discovered++
	w.push(w.res.Source)

	for len(w.frontier) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.pop()
		if cur == w.res.Target {
			w.res.Found = true
			return nil
		}

		nbrs := w.gen.expand(cur)
		w.res.expanded++
		w.opts.OnExpand(cur, nbrs)

		for _, n := range nbrs {
			w.push(n)
			if n == w.res.Target {
				w.res.Found = true
				return nil
			}
		}
	}
	return nil
}

func (w *walker) push(id int) {
	w.frontier = append(w.frontier, id)
}

// pop removes from the front for Queue and from the back for Stack.
func (w *walker) pop() int {
	if w.opts.Discipline == Stack {
		last := len(w.frontier) - 1
		id := w.frontier[last]
		w.frontier = w.frontier[:last]
		return id
	}
	id := w.frontier[0]
	w.frontier = w.frontier[1:]
	return id
}
