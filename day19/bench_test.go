package day19

import (
	"testing"

	"github.com/katalvlaran/advent2022/input"
)

// BenchmarkMaxGeodes32 measures the branch-and-bound search with the
// longer part-two budget, where pruning matters most.
func BenchmarkMaxGeodes32(b *testing.B) {
	blueprints, err := parseBlueprints(input.Lines(sample))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, bp := range blueprints {
			_ = bp.maxGeodes(32)
		}
	}
}
