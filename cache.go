package art

import lru "github.com/hashicorp/golang-lru/v2"

// LookupCache memoizes recent Get results on top of a Tree, entirely
// outside the core node/search/insert machinery, which stays a pure
// data structure. It is keyed by the string form of the lookup key
// since golang-lru's Cache requires a comparable key type and []byte
// isn't one.
//
// A LookupCache does not observe mutations on its own: callers that
// Insert or Delete through the underlying tree must call Invalidate,
// or simply not share a Tree between a cache and a writer once the
// cache is in use.
type LookupCache[V any] struct {
	tree  *Tree[V]
	cache *lru.Cache[string, V]
}

// NewLookupCache wraps tree with an LRU memo of up to size recent Get
// results.
func NewLookupCache[V any](tree *Tree[V], size int) (*LookupCache[V], error) {
	c, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &LookupCache[V]{tree: tree, cache: c}, nil
}

// Get returns the value for key, consulting the memo first and falling
// back to the underlying tree on a miss.
func (c *LookupCache[V]) Get(key []byte) (V, bool) {
	k := string(key)
	if v, ok := c.cache.Get(k); ok {
		return v, true
	}
	v, ok := c.tree.Get(key)
	if ok {
		c.cache.Add(k, v)
	}
	return v, ok
}

// Invalidate drops key from the memo, without touching the underlying
// tree. Call it after any Insert/Delete of key through the tree that
// this cache sits in front of.
func (c *LookupCache[V]) Invalidate(key []byte) {
	c.cache.Remove(string(key))
}

// Purge empties the memo entirely.
func (c *LookupCache[V]) Purge() {
	c.cache.Purge()
}
