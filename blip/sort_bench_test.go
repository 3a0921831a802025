package blip

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(10000) - 5000
	}
	return data
}

// Int32 benchmarks
func BenchmarkSort_Int32_100(b *testing.B) {
	benchmarkSortInt32(b, 100)
}

func BenchmarkSort_Int32_1000(b *testing.B) {
	benchmarkSortInt32(b, 1000)
}

func BenchmarkSort_Int32_10000(b *testing.B) {
	benchmarkSortInt32(b, 10000)
}

func BenchmarkSort_Int32_100000(b *testing.B) {
	benchmarkSortInt32(b, 100000)
}

func benchmarkSortInt32(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Int64 benchmarks
func BenchmarkSort_Int64_100(b *testing.B) {
	benchmarkSortInt64(b, 100)
}

func BenchmarkSort_Int64_1000(b *testing.B) {
	benchmarkSortInt64(b, 1000)
}

func BenchmarkSort_Int64_10000(b *testing.B) {
	benchmarkSortInt64(b, 10000)
}

func BenchmarkSort_Int64_100000(b *testing.B) {
	benchmarkSortInt64(b, 100000)
}

func benchmarkSortInt64(b *testing.B, n int) {
	ref := generateInt64(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Pattern benchmarks: the adaptive paths the sort is tuned for
func BenchmarkSort_Sorted_10000(b *testing.B) {
	ref := make([]int32, 10000)
	for i := range ref {
		ref[i] = int32(i)
	}
	benchmarkSortPattern(b, ref)
}

func BenchmarkSort_Reverse_10000(b *testing.B) {
	ref := make([]int32, 10000)
	for i := range ref {
		ref[i] = int32(len(ref) - i)
	}
	benchmarkSortPattern(b, ref)
}

func BenchmarkSort_AllEqual_10000(b *testing.B) {
	ref := make([]int32, 10000)
	for i := range ref {
		ref[i] = 42
	}
	benchmarkSortPattern(b, ref)
}

func BenchmarkSort_FewUnique_10000(b *testing.B) {
	ref := make([]int32, 10000)
	for i := range ref {
		ref[i] = rand.Int31n(8)
	}
	benchmarkSortPattern(b, ref)
}

func benchmarkSortPattern(b *testing.B, ref []int32) {
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Stdlib comparison
func BenchmarkSlicesSort_Int32_10000(b *testing.B) {
	ref := generateInt32(10000)
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

// NthElement benchmark: median of a large random array
func BenchmarkNthElement_Int32_100000(b *testing.B) {
	ref := generateInt32(100000)
	data := make([]int32, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		NthElement(data, len(data)/2)
	}
}
