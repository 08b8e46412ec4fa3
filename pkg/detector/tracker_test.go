package detector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerAdmit(t *testing.T) {
	t.Run("visited set grows per redirect", func(t *testing.T) {
		tr := newTracker("http://h/0", 10)
		for i := 1; i <= 4; i++ {
			require.NoError(t, tr.admit(fmt.Sprintf("http://h/%d", i)))
		}
		assert.Len(t, tr.visited, 4)
		assert.Equal(t, 5, tr.hops)
	})

	t.Run("repeat is a loop", func(t *testing.T) {
		tr := newTracker("http://h/a", 10)
		require.NoError(t, tr.admit("http://h/b"))
		require.NoError(t, tr.admit("http://h/c"))
		assert.ErrorIs(t, tr.admit("http://h/b"), ErrLoopedRedirects)
		assert.Equal(t, 3, tr.hops)
	})

	t.Run("back to seed is a loop", func(t *testing.T) {
		tr := newTracker("http://h/a", 10)
		require.NoError(t, tr.admit("http://h/b"))
		assert.ErrorIs(t, tr.admit("http://h/a"), ErrLoopedRedirects)
	})

	t.Run("exact match only", func(t *testing.T) {
		tr := newTracker("http://h/a", 10)
		require.NoError(t, tr.admit("http://H/a"))
		require.NoError(t, tr.admit("http://h/%61"))
	})

	t.Run("hop ceiling", func(t *testing.T) {
		tr := newTracker("http://h/0", 3)
		require.NoError(t, tr.admit("http://h/1"))
		require.NoError(t, tr.admit("http://h/2"))
		assert.ErrorIs(t, tr.admit("http://h/3"), ErrMaxRedirects)
	})

	t.Run("max of one allows no redirects", func(t *testing.T) {
		tr := newTracker("http://h/0", 1)
		assert.ErrorIs(t, tr.admit("http://h/1"), ErrMaxRedirects)
	})
}
