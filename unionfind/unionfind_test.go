package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/geom/unionfind"
)

func TestNew(t *testing.T) {
	u := unionfind.New(5)
	assert.Equal(t, 5, u.Len())
	assert.Equal(t, 5, u.GroupCount())
	for i := range 5 {
		assert.Equal(t, i, u.Find(i))
		assert.Equal(t, 1, u.GroupSize(i))
	}

	empty := unionfind.New(0)
	assert.Equal(t, 0, empty.GroupCount())
}

func TestJoin(t *testing.T) {
	u := unionfind.New(6)
	require.True(t, u.Join(0, 1))
	require.True(t, u.Join(2, 3))
	require.False(t, u.Join(1, 0))
	assert.Equal(t, 4, u.GroupCount())

	require.True(t, u.Join(1, 3))
	assert.Equal(t, 3, u.GroupCount())
	assert.True(t, u.Connected(0, 2))
	assert.False(t, u.Connected(0, 4))
	for _, n := range []int{0, 1, 2, 3} {
		assert.Equal(t, 4, u.GroupSize(n))
	}
	assert.Equal(t, 1, u.GroupSize(5))
}

func TestJoinBySize(t *testing.T) {
	u := unionfind.New(5)
	// Equal sizes pick the lower root.
	u.Join(4, 3)
	assert.Equal(t, 3, u.Find(4))

	// The larger group wins even against a lower-numbered root.
	u.Join(2, 4)
	assert.Equal(t, 3, u.Find(2))
	assert.Equal(t, 3, u.GroupSize(2))
}

func TestChainCompression(t *testing.T) {
	const n = 1000
	u := unionfind.New(n)
	for i := 1; i < n; i++ {
		u.Join(i-1, i)
	}
	assert.Equal(t, 1, u.GroupCount())
	root := u.Find(n - 1)
	for i := range n {
		assert.Equal(t, root, u.Find(i))
	}
	assert.Equal(t, n, u.GroupSize(root))
}

func TestOutOfRange(t *testing.T) {
	u := unionfind.New(3)
	assert.Panics(t, func() { u.Find(3) })
	assert.Panics(t, func() { u.Find(-1) })
	assert.Panics(t, func() { u.Join(0, 7) })
}
