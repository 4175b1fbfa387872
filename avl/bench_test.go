package avl_test

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/katalvlaran/strata/avl"
)

const benchN = 1 << 14

func benchKeys() []int {
	r := rand.New(rand.NewSource(23))
	s := make([]int, benchN)
	for i := range s {
		s[i] = r.Int()
	}
	return s
}

// BenchmarkInsert_AVL measures bulk ordered insertion into this tree.
func BenchmarkInsert_AVL(b *testing.B) {
	keys := benchKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := avl.New[int]()
		for _, k := range keys {
			t.Insert(k)
		}
	}
}

// BenchmarkInsert_BTree is the same workload on google/btree.
func BenchmarkInsert_BTree(b *testing.B) {
	keys := benchKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := btree.NewOrderedG[int](32)
		for _, k := range keys {
			t.ReplaceOrInsert(k)
		}
	}
}

// BenchmarkInsert_LLRB is the same workload on petar/GoLLRB.
func BenchmarkInsert_LLRB(b *testing.B) {
	keys := benchKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, k := range keys {
			t.InsertNoReplace(llrb.Int(k))
		}
	}
}

// BenchmarkSearch_AVL measures hit-heavy lookups on a populated tree.
func BenchmarkSearch_AVL(b *testing.B) {
	keys := benchKeys()
	t := avl.New[int]()
	for _, k := range keys {
		t.Insert(k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Contains(keys[i%benchN])
	}
}

// BenchmarkSearch_BTree is the lookup baseline on google/btree.
func BenchmarkSearch_BTree(b *testing.B) {
	keys := benchKeys()
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Has(keys[i%benchN])
	}
}

// BenchmarkSearch_LLRB is the lookup baseline on petar/GoLLRB.
func BenchmarkSearch_LLRB(b *testing.B) {
	keys := benchKeys()
	t := llrb.New()
	for _, k := range keys {
		t.InsertNoReplace(llrb.Int(k))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Has(llrb.Int(keys[i%benchN]))
	}
}
