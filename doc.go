// Package wordmorph finds morphs (word ladders) between dictionary words.
//
// A morph is a sequence of dictionary words in which each word differs from
// the previous one by a single edit: changing a letter, inserting or
// deleting a letter, or swapping two adjacent letters. The search is
// deterministic for a given dictionary and configuration.
//
// Subpackages:
//
//	lexicon/  dictionary stream reader, directive expansion, sorted vocabulary
//	morph/    neighbor generation and the queue/stack search over the vocabulary
//	render/   word, edit-script and YAML report output
//
// The letter command (cmd/letter) wires them behind a flag, environment and
// config-file interface:
//
//	letter -q -b cold -e warm -c < words.txt
//
// Quick ASCII example:
//
//	cold ─c─ cord ─c─ card ─c─ ward ─c─ warm
package wordmorph
