package backend

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/clubreads/clubreads/pkg/db/models"
)

// cache keeps recently seen profiles so the auth middleware doesn't hit
// the database on every request.
type cache struct {
	b        *Backend
	profiles *lru.Cache[string, models.Profile]
}

func newCache(b *Backend, size int) *cache {
	if size <= 0 {
		size = 1
	}
	c := &cache{b: b}
	cache, _ := lru.New[string, models.Profile](size)
	c.profiles = cache
	return c
}

func (c *cache) Get(id string) (models.Profile, bool) {
	return c.profiles.Get(id)
}

func (c *cache) Set(id string, p models.Profile) {
	c.profiles.Add(id, p)
}

func (c *cache) Delete(id string) {
	c.profiles.Remove(id)
}

func (c *cache) Len() int {
	return c.profiles.Len()
}
