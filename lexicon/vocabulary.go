package lexicon

import (
	"sort"
)

// Vocabulary is an immutable, duplicate-free, lexicographically sorted word set.
// Identity of a word is its index in sorted order; Rank is the index at which
// the word first appeared in the raw input that built the vocabulary.
// A Vocabulary is safe for concurrent reads.
type Vocabulary struct {
	words []string
	ranks []int
}

// New builds a Vocabulary from raw, possibly duplicated, words.
// The rank of each word is the smallest index at which it occurs in raw.
//
// Complexity: O(R + N·log N) comparisons for R raw and N unique words.
func New(raw []string) *Vocabulary {
	first := make(map[string]int, len(raw))
	for i, w := range raw {
		if _, seen := first[w]; !seen {
			first[w] = i
		}
	}

	words := make([]string, 0, len(first))
	for w := range first {
		words = append(words, w)
	}
	sort.Strings(words)

	ranks := make([]int, len(words))
	for id, w := range words {
		ranks[id] = first[w]
	}

	return &Vocabulary{words: words, ranks: ranks}
}

// Len reports the number of distinct words.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Word returns the word with identity id. It panics if id is out of range.
func (v *Vocabulary) Word(id int) string {
	return v.words[id]
}

// Rank returns the insertion rank of identity id.
func (v *Vocabulary) Rank(id int) int {
	return v.ranks[id]
}

// Lookup returns the identity of word, or false if it is absent.
func (v *Vocabulary) Lookup(word string) (int, bool) {
	i := sort.SearchStrings(v.words, word)
	if i < len(v.words) && v.words[i] == word {
		return i, true
	}
	return -1, false
}

// LookupBytes is Lookup for a candidate held in a scratch buffer.
// It does not retain or allocate a copy of b.
func (v *Vocabulary) LookupBytes(b []byte) (int, bool) {
	i := sort.Search(len(v.words), func(i int) bool {
		return v.words[i] >= string(b)
	})
	if i < len(v.words) && v.words[i] == string(b) {
		return i, true
	}
	return -1, false
}

// Has reports whether word is in the vocabulary.
func (v *Vocabulary) Has(word string) bool {
	_, ok := v.Lookup(word)
	return ok
}

// Words returns a copy of the sorted word list.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}
