// Package lru is a small, mutex-guarded, generic least-recently-used cache.
package lru

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key     K
	value   V
	element *list.Element
}

type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*entry[K, V]
	order    *list.List
	maxItems int
}

// NewCache returns a cache that holds at most maxItems entries. maxItems
// must be positive.
func NewCache[K comparable, V any](maxItems int) *Cache[K, V] {
	if maxItems <= 0 {
		panic("lru: maxItems must be positive")
	}
	return &Cache[K, V]{
		items:    make(map[K]*entry[K, V], maxItems),
		order:    list.New(),
		maxItems: maxItems,
	}
}

func (c *Cache[K, V]) Get(key K) (v V, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.items[key]
	if !found {
		return
	}
	c.order.MoveToFront(e.element)
	return e.value, true
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, found := c.items[key]; found {
		e.value = value
		c.order.MoveToFront(e.element)
		return
	}

	for c.order.Len() >= c.maxItems {
		c.evict()
	}

	e := &entry[K, V]{key: key, value: value}
	e.element = c.order.PushFront(e)
	c.items[key] = e
}

// evict drops the least recently used entry. Caller holds c.mu.
func (c *Cache[K, V]) evict() {
	back := c.order.Back()
	if back == nil {
		return
	}
	e := back.Value.(*entry[K, V])
	delete(c.items, e.key)
	c.order.Remove(back)
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.items[key]
	if !found {
		return
	}
	delete(c.items, key)
	c.order.Remove(e.element)
}

func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
