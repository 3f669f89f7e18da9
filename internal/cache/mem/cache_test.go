package mem

import (
	"testing"

	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := New()

	_, ok := c.Get(1)
	require.False(t, ok)

	c.Put(model.User{ID: 1, FirstName: "a"})
	c.Put(model.User{ID: 2, FirstName: "b"})

	user, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "a", user.FirstName)

	hits, misses := c.GetMany([]int64{1, 2, 3})
	require.Len(t, hits, 2)
	require.Equal(t, []int64{3}, misses)
}
