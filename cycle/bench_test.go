package cycle_test

import (
	"testing"

	"github.com/Rmoneygit/SymmetricGroupExplorer/cycle"
)

const benchInput = "(1 2 3 4 5)(6 7 8)(9 10)(11 12 13 14 15 16 17 18 19 20)"

func BenchmarkTokenize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if len(cycle.Tokenize(benchInput)) == 0 {
			b.Fatal("no tokens")
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := cycle.Parse(benchInput, 20); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
