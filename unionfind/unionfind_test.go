package unionfind_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/unionfind"
)

// TestNew_InvalidSize verifies that New rejects non-positive sizes.
func TestNew_InvalidSize(t *testing.T) {
	for _, m := range []int{0, -1, math.MinInt} {
		uf, err := unionfind.New(m)
		assert.ErrorIs(t, err, unionfind.ErrInvalidSize, "New(%d) should fail", m)
		assert.Nil(t, uf)
	}
}

// TestNew_Singletons checks the initial state: M roots of size 1.
func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Size())
	assert.Equal(t, 5, uf.Count())
	for i := 0; i < 5; i++ {
		root, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root, "element %d should be its own root", i)

		sz, err := uf.SizeOf(i)
		require.NoError(t, err)
		assert.Equal(t, 1, sz)
	}
}

// TestConnected_Classic replays the textbook 10-element sequence.
func TestConnected_Classic(t *testing.T) {
	uf, err := unionfind.New(10)
	require.NoError(t, err)

	pairs := [][2]int{{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1}}
	for _, p := range pairs {
		require.NoError(t, uf.Union(p[0], p[1]))
	}

	cases := []struct {
		p, q int
		want bool
	}{
		{0, 0, true},
		{4, 3, true},
		{3, 4, true},
		{8, 9, true},
		{5, 6, true},
		{0, 7, false},
		{3, 1, false},
		{6, 9, false},
	}
	for _, tc := range cases {
		got, err := uf.Connected(tc.p, tc.q)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Connected(%d, %d)", tc.p, tc.q)
	}
	// {0} {1,2} {3,4,8,9} {5,6} {7}
	assert.Equal(t, 5, uf.Count())
	sz, err := uf.SizeOf(8)
	require.NoError(t, err)
	assert.Equal(t, 4, sz)
}

// TestUnion_SameSetIsNoop ensures repeated unions leave the count unchanged.
func TestUnion_SameSetIsNoop(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)
	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(1, 0))
	require.NoError(t, uf.Union(2, 2))
	assert.Equal(t, 2, uf.Count())
	sz, _ := uf.SizeOf(0)
	assert.Equal(t, 2, sz)
}

// TestUnion_BySizeTieBreak checks that on equal sizes the second root is
// attached under the first, and that the smaller tree always goes under the larger.
func TestUnion_BySizeTieBreak(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	require.NoError(t, uf.Union(0, 1))
	root, _ := uf.Find(1)
	assert.Equal(t, 0, root, "tie: second root goes under the first")

	// {2} is smaller than {0,1}: it must end up under 0 even when passed first.
	require.NoError(t, uf.Union(2, 0))
	root, _ = uf.Find(2)
	assert.Equal(t, 0, root, "smaller tree must be attached under larger root")
}

// TestOutOfRange verifies every operation validates indices before mutating.
func TestOutOfRange(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	bad := []int{-1, 4, 100, math.MinInt, math.MaxInt}
	for _, x := range bad {
		_, err = uf.Find(x)
		assert.ErrorIs(t, err, unionfind.ErrOutOfRange, "Find(%d)", x)
		assert.ErrorIs(t, uf.Union(0, x), unionfind.ErrOutOfRange, "Union(0, %d)", x)
		assert.ErrorIs(t, uf.Union(x, 0), unionfind.ErrOutOfRange, "Union(%d, 0)", x)
		_, err = uf.Connected(x, 1)
		assert.ErrorIs(t, err, unionfind.ErrOutOfRange, "Connected(%d, 1)", x)
		_, err = uf.SizeOf(x)
		assert.ErrorIs(t, err, unionfind.ErrOutOfRange, "SizeOf(%d)", x)
	}
	assert.Equal(t, 4, uf.Count(), "failed calls must not change state")
}

// TestConnected_EquivalenceProperties drives random unions and compares
// against a naive labelling, checking reflexivity, symmetry, transitivity,
// stability under further unions and the size invariant.
func TestConnected_EquivalenceProperties(t *testing.T) {
	const m = 64
	r := rand.New(rand.NewSource(7))
	uf, err := unionfind.New(m)
	require.NoError(t, err)

	// label[i] is the naive component id of i.
	label := make([]int, m)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	prev := make([][]bool, m)
	for i := range prev {
		prev[i] = make([]bool, m)
	}

	for step := 0; step < 80; step++ {
		x, y := r.Intn(m), r.Intn(m)
		require.NoError(t, uf.Union(x, y))
		relabel(label[x], label[y])

		for i := 0; i < m; i++ {
			self, _ := uf.Connected(i, i)
			require.True(t, self, "reflexive at %d", i)
			for j := 0; j < m; j++ {
				ij, _ := uf.Connected(i, j)
				ji, _ := uf.Connected(j, i)
				require.Equal(t, ij, ji, "symmetric (%d,%d)", i, j)
				require.Equal(t, label[i] == label[j], ij, "matches naive labelling (%d,%d)", i, j)
				if prev[i][j] {
					require.True(t, ij, "stable under unions (%d,%d)", i, j)
				}
				prev[i][j] = ij
			}
		}
	}

	// size[root] equals the number of elements sharing that root, and Count
	// equals the number of distinct roots.
	members := make(map[int]int)
	for i := 0; i < m; i++ {
		root, _ := uf.Find(i)
		members[root]++
	}
	assert.Equal(t, len(members), uf.Count())
	for root, n := range members {
		sz, _ := uf.SizeOf(root)
		assert.Equal(t, n, sz, "size of root %d", root)
	}
}

// TestFind_LongChainCompresses builds a chain by always merging a singleton
// into the growing set; every element must resolve to the same root.
func TestFind_LongChainCompresses(t *testing.T) {
	const m = 1 << 12
	uf, err := unionfind.New(m)
	require.NoError(t, err)
	for i := 1; i < m; i++ {
		require.NoError(t, uf.Union(i, i-1))
	}
	assert.Equal(t, 1, uf.Count())
	want, _ := uf.Find(0)
	for i := 0; i < m; i++ {
		got, _ := uf.Find(i)
		require.Equal(t, want, got)
	}
	sz, _ := uf.SizeOf(m - 1)
	assert.Equal(t, m, sz)
}
