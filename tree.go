package art

import (
	"bytes"

	"github.com/hashicorp/go-uuid"
)

// Tree is an adaptive radix tree keyed by arbitrary byte strings. It is
// the map boundary above the core: Insert and InsertIfAbsent go through
// EntrySeek and InsertAt, Delete through removeAt, and Get,
// LongestPrefix and DeletePrefix do their own descents. A caller never
// sees a Handle or an EntryLocation unless it reaches for the
// lower-level Entry API in entry.go.
//
// A *Tree is not safe for concurrent use. Every mutating method must be
// called from a single goroutine at a time; debug builds (see debug.go)
// assert this rather than silently tolerating the race, matching
// single-writer exclusion provided by the caller.
type Tree[V any] struct {
	root  Node[V]
	size  uint64
	id    string
	owner ownerGoroutine
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	id, err := uuid.GenerateUUID()
	if err != nil {
		id = ""
	}
	return &Tree[V]{id: id}
}

// ID returns a UUID stamped on construction, stable for the lifetime of
// the tree. It has no bearing on tree contents; it exists so a caller
// correlating structured log lines across many trees (e.g. one per
// shard) has something to key on.
func (t *Tree[V]) ID() string { return t.id }

// Len reports the number of keys currently stored.
func (t *Tree[V]) Len() int { return int(t.size) }

// Get looks up key.
func (t *Tree[V]) Get(key []byte) (V, bool) {
	lf, ok := searchTree[V](t.root, key)
	if !ok {
		var zero V
		return zero, false
	}
	return lf.Value(), true
}

// Insert sets key to value, overwriting and returning the previous
// value if the key was already present.
func (t *Tree[V]) Insert(key []byte, value V) (old V, existed bool) {
	t.owner.begin()
	defer t.owner.end()

	loc := EntrySeek[V](t, key)
	_, old, existed = InsertAt[V](loc, key, value)
	if !existed {
		t.size++
	}
	return old, existed
}

// InsertIfAbsent inserts key only if it is not already present,
// returning ErrKeyExists otherwise. Unlike Insert it never overwrites.
func (t *Tree[V]) InsertIfAbsent(key []byte, value V) (*Leaf[V], error) {
	t.owner.begin()
	defer t.owner.end()

	loc := EntrySeek[V](t, key)
	if _, ok := loc.Occupied(); ok {
		return nil, ErrKeyExists
	}
	lf, _, _ := InsertAt[V](loc, key, value)
	t.size++
	return lf, nil
}

// Delete removes key, returning its value and whether it was present.
func (t *Tree[V]) Delete(key []byte) (V, bool) {
	t.owner.begin()
	defer t.owner.end()

	removed, newRoot := removeAt[V](t.root, key, 0)
	if removed == nil {
		var zero V
		return zero, false
	}
	t.root = newRoot
	t.size--
	return removed.Value(), true
}

// LongestPrefix finds the longest key in the tree that is a prefix of
// key itself, walking the same compressed path lookup would but
// remembering the last optional-leaf terminator it passed rather than
// requiring an exact match at the end.
func (t *Tree[V]) LongestPrefix(key []byte) ([]byte, V, bool) {
	var last *Leaf[V]
	n := t.root
	depth := 0

	for n != nil {
		if lf, ok := n.(*Leaf[V]); ok {
			if len(lf.key) <= len(key) && bytes.Equal(lf.key, key[:len(lf.key)]) {
				last = lf
			}
			break
		}

		pp := n.prefix()
		if depth+len(pp) > len(key) {
			break
		}
		if !bytes.Equal(key[depth:depth+len(pp)], pp) {
			break
		}
		depth += len(pp)

		if lf := n.optionalLeaf(); lf != nil {
			last = lf
		}
		if depth == len(key) {
			break
		}

		idx := n.findChild(key[depth])
		if idx < 0 {
			break
		}
		n = n.childAt(idx)
		depth++
	}

	if last == nil {
		var zero V
		return nil, zero, false
	}
	return last.key, last.value, true
}

// DeletePrefix removes every key that has prefix as a byte-string
// prefix, returning the number of keys removed. Grounded in the
// teacher's tree.go/txn.go DeletePrefix.
func (t *Tree[V]) DeletePrefix(prefix []byte) int {
	t.owner.begin()
	defer t.owner.end()

	removed := 0
	t.root = deletePrefixAt[V](t.root, prefix, 0, &removed)
	t.size -= uint64(removed)
	return removed
}

// Walk visits every (key, value) pair in ascending key order, stopping
// early if fn returns true.
func (t *Tree[V]) Walk(fn func(key []byte, value V) bool) {
	walkNode[V](t.root, fn)
}

func walkNode[V any](n Node[V], fn func(key []byte, value V) bool) bool {
	if n == nil {
		return false
	}
	if lf, ok := n.(*Leaf[V]); ok {
		return fn(lf.key, lf.value)
	}
	if lf := n.optionalLeaf(); lf != nil {
		if fn(lf.key, lf.value) {
			return true
		}
	}
	stop := false
	n.forEachChild(func(_ byte, child Node[V]) {
		if stop {
			return
		}
		stop = walkNode[V](child, fn)
	})
	return stop
}
