// Package lexicon builds the immutable word vocabulary that a morph search runs over.
//
// What
//
//   - Reads the line-oriented dictionary stream: a kind line ("S" or "C"),
//     a declared entry count, then that many entries. Blank lines and lines
//     starting with "//" are skipped and do not consume the count. Anything
//     after the last declared entry is read and discarded.
//   - Expands "complex" (C) entries through a small directive grammar. The
//     first matching rule wins and at most one applies per line:
//   - "word&"       → word, drow              (reversal)
//   - "pre[xyz]suf" → prexsuf, preysuf, ...   (insert-each)
//   - "ab!c"        → abc, bac                (swap the two letters before '!', index ≥ 2)
//   - "le?t"        → let, leet               (double the letter before '?', index ≥ 1)
//   - anything else is taken verbatim.
//   - Deduplicates the expanded words, sorts them, and assigns each a dense
//     identity in [0, N) plus an insertion rank: the index of its first
//     occurrence in the raw, pre-dedup list.
//
// Identity vs. rank
//
//	Identities follow lexicographic order and back Lookup (binary search).
//	Ranks follow input order and are used only to break ties between
//	neighbors during a search. The two orders are independent.
//
// Complexity (R = raw expanded words, N = unique words, L = word length)
//
//   - Build:  O(R·L + N·log N·L)
//   - Lookup: O(L·log N)
//   - Memory: O(N)
//
// Errors
//
//   - ErrBadHeader, ErrUnknownKind, ErrBadCount for a malformed stream header.
//   - ErrTruncated when the stream ends before the declared count is reached.
//   - ErrMalformedDirective for grammar errors such as an unmatched bracket.
//   - ErrEmptyWord when an entry expands to the empty string.
//   - ErrOptionViolation for invalid Options.
package lexicon
