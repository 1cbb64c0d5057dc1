package cachedigest

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	key    string
	digest *Digest
}

// digestCache memoizes decoded digests keyed by the raw cookie value, so
// repeat requests from the same client skip the base64 decode and table
// rebuild. Digests are immutable, which is what makes sharing a single
// decoded instance across requests safe. Least recently used entries are
// evicted once capacity is reached.
type digestCache struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	eviction *list.List
}

func newDigestCache(capacity int) *digestCache {
	return &digestCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		eviction: list.New(),
	}
}

func (c *digestCache) get(key string) (*Digest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).digest, true
	}
	return nil, false
}

func (c *digestCache) put(key string, d *Digest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).digest = d
		return
	}

	if c.eviction.Len() >= c.capacity {
		oldest := c.eviction.Back()
		if oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, digest: d})
}

func (c *digestCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
