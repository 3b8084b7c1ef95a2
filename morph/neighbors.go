package morph

import (
	"sort"

	"github.com/katalvlaran/wordmorph/lexicon"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// generator enumerates one-edit neighbors of a word that are present in the
// vocabulary and still undiscovered. It marks each accepted neighbor
// discovered immediately, so a word is emitted at most once per search.
type generator struct {
	vocab      *lexicon.Vocabulary
	ops        Operation
	res        *Result
	onDiscover func(id, parent int, e Edit)
	buf        []byte
	out        []int
}

func newGenerator(v *lexicon.Vocabulary, ops Operation, res *Result, onDiscover func(int, int, Edit)) *generator {
	return &generator{
		vocab:      v,
		ops:        ops,
		res:        res,
		onDiscover: onDiscover,
	}
}

// expand returns the newly discovered neighbors of id ordered by insertion
// rank. Families run in the order change, insert, delete, swap; the first
// family to produce a word owns its edit metadata. The returned slice is
// reused by the next call.
func (g *generator) expand(id int) []int {
	word := g.vocab.Word(id)
	g.out = g.out[:0]

	if g.ops.Has(OpChange) {
		g.changes(id, word)
	}
	if g.ops.Has(OpLength) {
		g.inserts(id, word)
		g.deletes(id, word)
	}
	if g.ops.Has(OpSwap) {
		g.swaps(id, word)
	}

	sort.Slice(g.out, func(i, j int) bool {
		return g.vocab.Rank(g.out[i]) < g.vocab.Rank(g.out[j])
	})
	return g.out
}

func (g *generator) changes(id int, word string) {
	g.buf = append(g.buf[:0], word...)
	for i := 0; i < len(word); i++ {
		orig := word[i]
		for c := 0; c < len(alphabet); c++ {
			if alphabet[c] == orig {
				continue
			}
			g.buf[i] = alphabet[c]
			g.try(id, Edit{Kind: EditChange, Pos: i, Char: alphabet[c]})
		}
		g.buf[i] = orig
	}
}

func (g *generator) inserts(id int, word string) {
	for i := 0; i <= len(word); i++ {
		g.buf = append(append(append(g.buf[:0], word[:i]...), 0), word[i:]...)
		for c := 0; c < len(alphabet); c++ {
			g.buf[i] = alphabet[c]
			// the reported slot is the first index where the words differ,
			// so a doubled letter is always inserted after its twin
			pos := i
			for pos < len(word) && word[pos] == g.buf[pos] {
				pos++
			}
			g.try(id, Edit{Kind: EditInsert, Pos: pos, Char: alphabet[c]})
		}
	}
}

func (g *generator) deletes(id int, word string) {
	for i := 0; i < len(word); i++ {
		g.buf = append(append(g.buf[:0], word[:i]...), word[i+1:]...)
		pos := i
		for pos < len(g.buf) && g.buf[pos] == word[pos] {
			pos++
		}
		g.try(id, Edit{Kind: EditDelete, Pos: pos})
	}
}

func (g *generator) swaps(id int, word string) {
	g.buf = append(g.buf[:0], word...)
	for i := 0; i+1 < len(word); i++ {
		g.buf[i], g.buf[i+1] = g.buf[i+1], g.buf[i]
		g.try(id, Edit{Kind: EditSwap, Pos: i})
		g.buf[i], g.buf[i+1] = g.buf[i+1], g.buf[i]
	}
}

// try looks up the candidate in g.buf and accepts it if undiscovered.
func (g *generator) try(parent int, e Edit) {
	nid, ok := g.vocab.LookupBytes(g.buf)
	if !ok {
		return
	}
	rec := &g.res.records[nid]
	if rec.State != Undiscovered {
		return
	}
	rec.State = DiscoveredWithParent
	rec.Parent = parent
	if g.res.edits != nil {
		g.res.edits[nid] = e
	}
	g.res.discovered++
	g.out = append(g.out, nid)
	g.onDiscover(nid, parent, e)
}
