package data

import (
	"context"
	"strings"
	"sync"

	"github.com/udisondev/fitsim/internal/attr"
)

// Item is a catalog entry: the category identifier plus the base attribute table.
type Item struct {
	Name       string
	CategoryID int32
	Attributes map[attr.Key]float64
}

// Catalog resolves item names to catalog entries.
// Lookup returns nil, nil when the name is unknown; errors are reserved for
// transport failures (database, network, cancelled context).
type Catalog interface {
	Lookup(ctx context.Context, name string) (*Item, error)
}

// NormalizeName is the lookup key used by every catalog implementation.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MemoryCatalog хранит каталог в памяти, безопасен для конкурентных Lookup.
type MemoryCatalog struct {
	mu    sync.RWMutex
	items map[string]*Item
}

// NewMemoryCatalog builds a catalog from items. Later duplicates replace earlier ones.
func NewMemoryCatalog(items ...*Item) *MemoryCatalog {
	c := &MemoryCatalog{items: make(map[string]*Item, len(items))}
	for _, it := range items {
		c.Put(it)
	}
	return c
}

// Put inserts or replaces an item.
func (c *MemoryCatalog) Put(it *Item) {
	c.mu.Lock()
	c.items[NormalizeName(it.Name)] = it
	c.mu.Unlock()
}

// Lookup implements Catalog.
func (c *MemoryCatalog) Lookup(ctx context.Context, name string) (*Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	it := c.items[NormalizeName(name)]
	c.mu.RUnlock()
	return it, nil
}

// Items returns every item in the catalog, in no particular order.
func (c *MemoryCatalog) Items() []*Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	return out
}

// Len returns the number of items.
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
