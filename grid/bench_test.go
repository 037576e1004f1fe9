package grid_test

import (
	"testing"

	"github.com/katalvlaran/standwave/grid"
)

func BenchmarkBuildAxis_100(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := grid.BuildAxis(-5, 5, 100); err != nil {
			b.Fatalf("BuildAxis failed: %v", err)
		}
	}
}

func BenchmarkNew_100(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := grid.New(5, 100); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
