package morph_test

import (
	"testing"

	"github.com/katalvlaran/wordmorph/morph"
)

// BenchmarkSearch_Queue measures an all-operations breadth-first search over
// the 120-word {a,b,c} ladder vocabulary.
func BenchmarkSearch_Queue(b *testing.B) {
	benchSearch(b, morph.Queue)
}

// BenchmarkSearch_Stack is the same search with depth-first popping.
func BenchmarkSearch_Stack(b *testing.B) {
	benchSearch(b, morph.Stack)
}

func benchSearch(b *testing.B, d morph.Discipline) {
	v := ladderVocabulary()
	ops := morph.OpChange | morph.OpLength | morph.OpSwap

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = morph.Search(v, "a", "cbac", morph.WithOperations(ops), morph.WithDiscipline(d), morph.WithEditTracking(true))
	}
}
