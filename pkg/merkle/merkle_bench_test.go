package merkle

import (
	"fmt"
	"testing"
)

// BenchmarkBuild benchmarks tree construction with various sizes
func BenchmarkBuild(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Items_%d", size), func(b *testing.B) {
			items := createTestItems(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Build(items)
			}
		})
	}
}

// BenchmarkUpdate benchmarks point updates with various sizes
func BenchmarkUpdate(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		tree, _ := Build(createTestItems(size))
		contents := [][]byte{[]byte("even"), []byte("odd")}

		b.Run(fmt.Sprintf("Items_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = tree.Update(i%size, contents[i%2])
			}
		})
	}
}

// BenchmarkDiff benchmarks comparison of trees differing at a single leaf
func BenchmarkDiff(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		left, _ := Build(createTestItems(size))
		right := left.Clone()
		_ = right.Update(size/2, []byte("changed"))

		b.Run(fmt.Sprintf("Items_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Diff(left, right)
			}
		})
	}
}

// BenchmarkHashPair benchmarks internal node hashing
func BenchmarkHashPair(b *testing.B) {
	left := HashContent([]byte("left"))
	right := HashContent([]byte("right"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HashPair(left, right)
	}
}
