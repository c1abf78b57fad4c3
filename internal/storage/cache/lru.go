package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/nathadriele/creditlens/internal/core"
)

// Responses is an in-process LRU of retrieval answers keyed by
// (collection, query). Only consulted when the caller enables caching,
// and only populated from real backend answers.
type Responses struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	items    map[string]*entry
	order    *list.List
}

type entry struct {
	key     string
	value   *core.RetrievalResponse
	expires time.Time
	element *list.Element
}

// Key builds the cache key for a query within a collection.
func Key(collection, query string) string {
	return collection + "\n" + query
}

// NewResponses creates the cache with capacity entries and a fixed TTL.
// A non-positive TTL disables expiry.
func NewResponses(capacity int, ttl time.Duration) *Responses {
	if capacity <= 0 {
		capacity = 512
	}
	return &Responses{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry, capacity),
		order:    list.New(),
	}
}

func (c *Responses) Get(key string) (*core.RetrievalResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		if ent.expires.IsZero() || time.Now().Before(ent.expires) {
			c.order.MoveToFront(ent.element)
			return ent.value, true
		}
		c.removeEntry(ent)
	}
	return nil, false
}

func (c *Responses) Set(key string, value *core.RetrievalResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		ent.value = value
		ent.expires = c.computeExpiry()
		c.order.MoveToFront(ent.element)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	elem := c.order.PushFront(key)
	c.items[key] = &entry{
		key:     key,
		value:   value,
		expires: c.computeExpiry(),
		element: elem,
	}
}

func (c *Responses) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry, c.capacity)
	c.order.Init()
}

func (c *Responses) computeExpiry() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.ttl)
}

func (c *Responses) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	key := elem.Value.(string)
	if ent, ok := c.items[key]; ok {
		c.removeEntry(ent)
	}
}

func (c *Responses) removeEntry(ent *entry) {
	if ent.element != nil {
		c.order.Remove(ent.element)
	}
	delete(c.items, ent.key)
}
