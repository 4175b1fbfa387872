package avl_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strata/avl"
)

func build(keys ...int) *avl.Tree[int] {
	t := avl.New[int]()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// heightBound returns the AVL worst-case bound c·log₂(n+2)+b with
// c = 1/log₂(φ), b = c·log₂(5)/2.
func heightBound(n int) float64 {
	c := 1 / math.Log2(math.Phi)
	b := c * math.Log2(5) / 2
	return c*math.Log2(float64(n)+2) + b
}

// TestInsert_BalancedAtEveryStep inserts the §8 scenario keys and asserts
// the balance invariant after every single insertion.
func TestInsert_BalancedAtEveryStep(t *testing.T) {
	tr := avl.New[int]()
	for i, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		require.True(t, tr.Insert(k))
		assert.True(t, tr.CheckBalanced(), "invariant broken after insert #%d (%d)", i, k)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tr.Keys())
	assert.LessOrEqual(t, float64(tr.Height()), math.Ceil(heightBound(7)))
	assert.Equal(t, 3, tr.Height(), "7 keys fit a perfectly balanced 3-level tree")
}

// TestInsert_SortedInputStaysLogarithmic is the degeneration case a plain
// BST fails: ascending insertion must still respect the height bound.
func TestInsert_SortedInputStaysLogarithmic(t *testing.T) {
	tr := avl.New[int]()
	for k := 1; k <= 1024; k++ {
		require.True(t, tr.Insert(k))
	}
	assert.True(t, tr.CheckBalanced())
	assert.Less(t, float64(tr.Height()), heightBound(1024))
	assert.GreaterOrEqual(t, float64(tr.Height()), math.Log2(1024+1))
}

// TestRebalance_AllFourCases triggers each rotation case with the minimal
// three-key sequences.
func TestRebalance_AllFourCases(t *testing.T) {
	cases := []struct {
		name string
		keys []int
	}{
		{"single right (left-left)", []int{3, 2, 1}},
		{"left-right double", []int{3, 1, 2}},
		{"single left (right-right)", []int{1, 2, 3}},
		{"right-left double", []int{1, 3, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := build(tc.keys...)
			assert.True(t, tr.CheckBalanced())
			assert.Equal(t, []int{1, 2, 3}, tr.Keys())
			assert.Equal(t, 2, tr.Height(), "three keys must settle into two levels")
		})
	}
}

// TestDelete_BalancedAtEveryStep drains a tree, checking the invariant
// after each removal.
func TestDelete_BalancedAtEveryStep(t *testing.T) {
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6}
	tr := build(keys...)
	for i, k := range keys {
		require.True(t, tr.Delete(k), "delete %d", k)
		assert.True(t, tr.CheckBalanced(), "invariant broken after delete #%d (%d)", i, k)
	}
	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.Delete(5), "deleting from empty is a reported no-op")
}

// TestMutations_RandomizedInvariant runs a mixed insert/delete workload and
// checks the invariant plus a sorted-reference equality after every batch.
func TestMutations_RandomizedInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	tr := avl.New[int]()
	ref := map[int]bool{}
	for i := 0; i < 3000; i++ {
		k := r.Intn(300)
		if r.Intn(3) > 0 { // bias toward growth
			assert.Equal(t, !ref[k], tr.Insert(k))
			ref[k] = true
		} else {
			assert.Equal(t, ref[k], tr.Delete(k))
			delete(ref, k)
		}
		if i%100 == 0 {
			require.True(t, tr.CheckBalanced(), "invariant broken at op %d", i)
		}
	}
	require.True(t, tr.CheckBalanced())

	want := make([]int, 0, len(ref))
	for k := range ref {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, tr.Keys())
	assert.Less(t, float64(tr.Height()), heightBound(len(want)))
}

// TestCrossCheck_GodsAVLTree mirrors the same workload into the gods AVL
// implementation and compares the surviving key sequences.
func TestCrossCheck_GodsAVLTree(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	mine := avl.New[int]()
	theirs := avltree.NewWithIntComparator()

	for i := 0; i < 2000; i++ {
		k := r.Intn(250)
		if r.Intn(2) == 0 {
			mine.Insert(k)
			theirs.Put(k, nil)
		} else {
			mine.Delete(k)
			theirs.Remove(k)
		}
	}

	got := mine.Keys()
	want := make([]int, 0, theirs.Size())
	for _, k := range theirs.Keys() {
		want = append(want, k.(int))
	}
	assert.Equal(t, want, got, "key sequence must match the gods avltree oracle")
	assert.True(t, mine.CheckBalanced())
}

// TestDuplicatePolicies covers reject (default) vs counted multiplicities.
func TestDuplicatePolicies(t *testing.T) {
	rej := avl.New[int]()
	assert.True(t, rej.Insert(5))
	assert.False(t, rej.Insert(5))
	assert.Equal(t, 1, rej.Len())

	cnt := avl.New[int](avl.WithCountedDuplicates())
	for i := 0; i < 3; i++ {
		assert.True(t, cnt.Insert(7))
	}
	cnt.Insert(3)
	assert.Equal(t, 4, cnt.Len())
	assert.Equal(t, 3, cnt.Count(7))
	assert.Equal(t, []int{3, 7, 7, 7}, cnt.Keys())

	assert.True(t, cnt.Delete(7))
	assert.Equal(t, 2, cnt.Count(7))
	assert.True(t, cnt.CheckBalanced())
}

// TestDelete_TwoChildrenWithCountedSuccessor checks the successor's whole
// multiplicity survives the splice.
func TestDelete_TwoChildrenWithCountedSuccessor(t *testing.T) {
	tr := avl.New[int](avl.WithCountedDuplicates())
	for _, k := range []int{5, 3, 8, 7, 7, 9} {
		tr.Insert(k)
	}
	require.True(t, tr.Delete(5)) // successor 7 carries count 2
	assert.Equal(t, []int{3, 7, 7, 8, 9}, tr.Keys())
	assert.Equal(t, 2, tr.Count(7))
	assert.True(t, tr.CheckBalanced())
}

// TestQueries covers search/min/max and their absence signaling.
func TestQueries(t *testing.T) {
	tr := build(5, 3, 8, 1, 4, 7, 9)

	v, ok := tr.Search(7)
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = tr.Search(6)
	assert.False(t, ok)
	assert.True(t, tr.Contains(1))

	mn, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 1, mn)
	mx, ok := tr.Max()
	require.True(t, ok)
	assert.Equal(t, 9, mx)

	empty := avl.New[string]()
	_, ok = empty.Min()
	assert.False(t, ok)
	_, ok = empty.Max()
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Height())
}
