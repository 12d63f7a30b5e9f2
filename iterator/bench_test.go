package iterator_test

import (
	"testing"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/iterator"
)

// BenchmarkExhaustive_Face measures a full walk of a face six levels down.
func BenchmarkExhaustive_Face(b *testing.B) {
	e := newEngine(b)
	it, err := iterator.NewExhaustive(e, cell.MustParse("K"), 7)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = iterator.Count(it)
	}
}

// BenchmarkEdge measures the boundary walk of a face centre.
func BenchmarkEdge(b *testing.B) {
	e := newEngine(b)
	it, err := iterator.NewEdge(e, cell.MustParse("A-0"), 6)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = iterator.Count(it)
	}
}

// BenchmarkSpiral measures eight rings around a pentagon centre.
func BenchmarkSpiral(b *testing.B) {
	e := newEngine(b)
	it, err := iterator.NewSpiral(e, cell.MustParse("4-00000000"), 8)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = iterator.Count(it)
	}
}
