// Package morph finds a word ladder ("morph") between two words of a
// lexicon.Vocabulary, where every step is one enabled single-letter edit.
//
// What
//
//   - The graph is implicit: vertices are vocabulary words and edges are
//     single edits. Nothing is materialized; neighbors are generated on demand.
//   - Edit families (Operation bits):
//   - OpChange: substitute one letter                 (26·L candidates)
//   - OpLength: insert one letter, or delete one      (26·(L+1) + L candidates)
//   - OpSwap:   transpose two adjacent letters        (L−1 candidates)
//   - One traversal loop serves both disciplines. Queue pops from the front
//     (breadth-first), Stack pops from the back (depth-first).
//   - Returns a Result holding one discovery Record per word, from which
//     Path reconstructs the morph and EditOf recovers each step's edit.
//
// Discovery
//
//	A word is marked discovered the instant it is generated as a neighbor,
//	not when it is later popped. This is what prevents duplicate emission and
//	decides which parent wins when several frontier words reach the same
//	word. The target counts as found as soon as it is pushed.
//
//	Under Stack this is not textbook recursive DFS: it is the LIFO-ordered
//	variant of the same eager-discovery loop, and its paths differ from a
//	backtracking search. Paths under Stack are not shortest.
//
// Determinism
//
//	Neighbors of a word are pushed in ascending insertion rank (the order in
//	which words first appeared in the dictionary input), never in
//	lexicographic or generation order. Runs with the same vocabulary,
//	endpoints, operations and discipline always produce the same Result.
//
// Complexity (N = |vocabulary|, L = word length)
//
//   - Time:   O(N · 26·L · L·log N) worst case (every word expanded).
//   - Memory: O(N) for records, plus O(N) for edits when tracking is on.
//
// Usage
//
//	res, err := morph.Search(v, "cat", "dog",
//	    morph.WithDiscipline(morph.Queue),
//	    morph.WithOperations(morph.OpChange|morph.OpLength),
//	    morph.WithEditTracking(true),
//	)
//	if err != nil {
//	    // ErrVocabularyNil, ErrOptionViolation, ErrNoOperations, ErrWordNotFound, ctx error
//	}
//	if !res.Found {
//	    fmt.Println("no solution,", res.Discovered(), "words discovered")
//	}
//	path, _ := res.Path()
//
// Errors
//
//   - ErrVocabularyNil     if the vocabulary pointer is nil.
//   - ErrOptionViolation   for an unknown discipline or operation bit.
//   - ErrNoOperations      if no edit family is enabled.
//   - ErrWordNotFound      if source or target is not in the vocabulary.
//   - ErrNoPath            from Result.Path after an unsuccessful search.
//   - ErrBadEdit           from Edit.Apply when the edit is out of range.
package morph
