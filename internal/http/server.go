// Package http provides the JSON API server for the tracker UI.
package http

import (
	"container/list"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"finmind/internal/assistant"
	"finmind/internal/core"
	applog "finmind/internal/log"
	"finmind/internal/store"
	appweb "finmind/web"
)

// lruCache is a small LRU cache with TTL and size-based eviction.
type lruCache[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
}

type cacheItem[T any] struct {
	key       string
	data      T
	expiresAt time.Time
}

func newLRUCache[T any](maxSize int, ttl time.Duration) *lruCache[T] {
	return &lruCache[T]{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *lruCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	elem, exists := c.items[key]
	if !exists {
		return zero, false
	}

	item := elem.Value.(*cacheItem[T])
	if time.Now().After(item.expiresAt) {
		c.removeElement(elem)
		return zero, false
	}

	c.lru.MoveToFront(elem)
	return item.data, true
}

func (c *lruCache[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := &cacheItem[T]{
		key:       key,
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	}

	if elem, exists := c.items[key]; exists {
		elem.Value = item
		c.lru.MoveToFront(elem)
		return
	}

	elem := c.lru.PushFront(item)
	c.items[key] = elem

	if c.lru.Len() > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

func (c *lruCache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.lru = list.New()
}

func (c *lruCache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *lruCache[T]) removeElement(elem *list.Element) {
	item := elem.Value.(*cacheItem[T])
	delete(c.items, item.key)
	c.lru.Remove(elem)
}

type Server struct {
	http.Server

	items store.Store
	chat  *assistant.Service
	now   func() time.Time

	overviewCache *lruCache[core.Overview]
	startedAt     time.Time
}

// NewServer wires routes, cache and timeouts. The chat service may be
// nil when no assistant gateway is configured; the chat endpoints then
// answer 503.
func NewServer(addr string, items store.Store, chat *assistant.Service) *Server {
	s := &Server{
		items:         items,
		chat:          chat,
		now:           time.Now,
		overviewCache: newLRUCache[core.Overview](16, 30*time.Second),
		startedAt:     time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/items", s.handleItems)
	mux.HandleFunc("/api/items/import", s.handleImport)
	mux.HandleFunc("/api/items/", s.handleDeleteItem)
	mux.HandleFunc("/api/overview", s.handleOverview)
	mux.HandleFunc("/api/chat", s.handleChat)

	if static, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		mux.Handle("/", http.FileServer(http.FS(static)))
	}

	logger := applog.New(applog.DefaultConfig()).WithComponent("http")

	s.Server = http.Server{
		Addr:         addr,
		Handler:      applog.Middleware(logger)(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}
