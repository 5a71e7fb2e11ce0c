// Package cache is an in-process registry of rendered views keyed by
// route. Reads populate it through Get/Put; the mutation pipeline
// invalidates the invoice listing after a write so the next read
// recomputes.
package cache

import (
	"strings"
	"sync"
)

// ViewInvoices is the cached listing view dropped after every invoice
// mutation.
const ViewInvoices = "/dashboard/invoices"

type ViewCache struct {
	views sync.Map // view key (route, optionally "?variant") -> payload
}

func New() *ViewCache {
	return &ViewCache{}
}

// Put stores a rendered payload for a view. Variants of a view (page,
// filter) use keys of the form "<view>?<variant>" and are dropped
// together with it.
func (c *ViewCache) Put(view string, v any) {
	c.views.Store(view, v)
}

// Get returns the cached payload for a view, if any.
func (c *ViewCache) Get(view string) (any, bool) {
	return c.views.Load(view)
}

// Invalidate drops a view and all of its variants. Dropping an absent
// view is a no-op.
func (c *ViewCache) Invalidate(view string) {
	prefix := view + "?"
	c.views.Range(func(k, _ any) bool {
		key := k.(string)
		if key == view || strings.HasPrefix(key, prefix) {
			c.views.Delete(key)
		}
		return true
	})
}
