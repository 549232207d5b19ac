// File: unionfind/unionfind_test.go
package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannef/RogueSharp/unionfind"
)

// TestNew_Validation covers construction bounds: negative sizes are
// rejected, the empty partition is legal.
func TestNew_Validation(t *testing.T) {
	_, err := unionfind.New(-1)
	assert.ErrorIs(t, err, unionfind.ErrNegativeSize)

	empty, err := unionfind.New(0)
	require.NoError(t, err)
	assert.Zero(t, empty.Count())
}

// TestUnion_MergeSemantics verifies groups merge exactly once, the group
// count decrements per merge, and connectivity is transitive.
func TestUnion_MergeSemantics(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Count())
	assert.False(t, uf.Connected(0, 1))

	assert.True(t, uf.Union(0, 1), "first merge happens")
	assert.Equal(t, 4, uf.Count())
	assert.True(t, uf.Connected(0, 1))

	assert.False(t, uf.Union(1, 0), "repeat merge is a no-op")
	assert.Equal(t, 4, uf.Count())

	uf.Union(1, 2)
	assert.True(t, uf.Connected(0, 2), "connectivity is transitive")

	uf.Union(3, 4)
	uf.Union(0, 4)
	assert.Equal(t, 1, uf.Count(), "all entries collapse to one group")
	assert.True(t, uf.Connected(2, 3))
}

// TestFind_StableRoots ensures Find returns the same root for every
// member of a group.
func TestFind_StableRoots(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)
	uf.Union(0, 1)
	uf.Union(2, 3)
	uf.Union(1, 3)

	root := uf.Find(0)
	for i := 1; i < 4; i++ {
		assert.Equal(t, root, uf.Find(i), "entry %d", i)
	}
}

// TestOutOfRange_Panics: indices come from region list positions, so bad
// ones are programming errors and panic.
func TestOutOfRange_Panics(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	assert.Panics(t, func() { uf.Find(3) })
	assert.Panics(t, func() { uf.Find(-1) })
	assert.Panics(t, func() { uf.Union(0, 7) })
}
