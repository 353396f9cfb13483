package catalog

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// templateCache keeps recently read templates by kind and id. Entries expire
// after a TTL so edits made by another instance become visible eventually;
// edits made through this service invalidate immediately.
type templateCache struct {
	lru *expirable.LRU[string, domain.ItemTemplate]
}

func newTemplateCache(size int, ttl time.Duration) *templateCache {
	return &templateCache{
		lru: expirable.NewLRU[string, domain.ItemTemplate](size, nil, ttl),
	}
}

func templateKey(kind domain.ItemKind, id int) string {
	return string(kind) + ":" + strconv.Itoa(id)
}

// Get returns a copy so callers cannot mutate the cached entry
func (c *templateCache) Get(kind domain.ItemKind, id int) (*domain.ItemTemplate, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.lru.Get(templateKey(kind, id))
	if !ok {
		return nil, false
	}
	return &t, true
}

func (c *templateCache) Set(t domain.ItemTemplate) {
	if c == nil {
		return
	}
	c.lru.Add(templateKey(t.Kind, t.ID), t)
}

func (c *templateCache) Invalidate(kind domain.ItemKind, id int) {
	if c == nil {
		return
	}
	c.lru.Remove(templateKey(kind, id))
}

func (c *templateCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
