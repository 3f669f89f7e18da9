// Package mem caches bot users so call-ups and lineups don't hit the
// database for every name lookup.
package mem

import (
	"sync"

	"github.com/AVick23/ML-Manager/bot/model"
)

type Cache struct {
	mu    sync.RWMutex
	users map[int64]model.User
}

func New() *Cache {
	return &Cache{
		users: make(map[int64]model.User),
	}
}

func (c *Cache) Put(user model.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users[user.ID] = user
}

func (c *Cache) Get(id int64) (model.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	user, ok := c.users[id]
	return user, ok
}

// GetMany splits ids into cached users and missing ids, preserving the
// requested order in the miss list.
func (c *Cache) GetMany(ids []int64) ([]model.User, []int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hits := make([]model.User, 0, len(ids))
	var misses []int64
	for _, id := range ids {
		if user, ok := c.users[id]; ok {
			hits = append(hits, user)
			continue
		}
		misses = append(misses, id)
	}
	return hits, misses
}
