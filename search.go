package art

import "bytes"

// searchTree performs a pure descent for key: at each internal node,
// the node's compressed prefix must match the key at the current depth
// or the search fails; an exact depth match resolves to the node's
// optional leaf; otherwise the search continues into the child keyed
// by the next byte.
func searchTree[V any](root Node[V], key []byte) (*Leaf[V], bool) {
	n := root
	depth := 0
	for n != nil {
		if lf, ok := n.(*Leaf[V]); ok {
			if bytes.Equal(lf.key, key) {
				return lf, true
			}
			return nil, false
		}

		pp := n.prefix()
		if depth+len(pp) > len(key) {
			return nil, false
		}
		if !bytes.Equal(key[depth:depth+len(pp)], pp) {
			return nil, false
		}
		depth += len(pp)

		if depth == len(key) {
			if lf := n.optionalLeaf(); lf != nil {
				return lf, true
			}
			return nil, false
		}

		idx := n.findChild(key[depth])
		if idx < 0 {
			return nil, false
		}
		n = n.childAt(idx)
		depth++
	}
	return nil, false
}

// locationKind tags the outcome of EntrySeek: the EntryLocation
// union (Occupied / VacantAt / VacantEmpty).
type locationKind uint8

const (
	locOccupied locationKind = iota
	locVacantAt
	locVacantEmpty
)

// EntryLocation is the typed navigation result the search engine hands
// to the insertion engine: either the key is already present
// (Occupied), the tree has a concrete insertion site for it
// (VacantAt), or the tree is entirely empty (VacantEmpty).
type EntryLocation[V any] struct {
	kind   locationKind
	leaf   *Leaf[V]
	handle Handle[V]
	depth  int
}

// Occupied reports whether the sought key is already present, and if
// so the leaf holding it.
func (e EntryLocation[V]) Occupied() (*Leaf[V], bool) {
	if e.kind == locOccupied {
		return e.leaf, true
	}
	return nil, false
}

// EntrySeek descends the tree for key, returning a typed location that
// InsertAt can later splice a new leaf into without re-searching.
func EntrySeek[V any](t *Tree[V], key []byte) EntryLocation[V] {
	if t.root == nil {
		return EntryLocation[V]{kind: locVacantEmpty, handle: Handle[V]{tree: t}}
	}

	n := t.root
	h := Handle[V]{tree: t}
	depth := 0

	for {
		if lf, ok := n.(*Leaf[V]); ok {
			if bytes.Equal(lf.key, key) {
				return EntryLocation[V]{kind: locOccupied, leaf: lf, handle: h, depth: depth}
			}
			return EntryLocation[V]{kind: locVacantAt, handle: h, depth: depth}
		}

		pp := n.prefix()
		if depth+len(pp) > len(key) {
			return EntryLocation[V]{kind: locVacantAt, handle: h, depth: depth}
		}
		if !bytes.Equal(key[depth:depth+len(pp)], pp) {
			return EntryLocation[V]{kind: locVacantAt, handle: h, depth: depth}
		}
		newDepth := depth + len(pp)

		if newDepth == len(key) {
			if lf := n.optionalLeaf(); lf != nil {
				return EntryLocation[V]{
					kind:   locOccupied,
					leaf:   lf,
					handle: Handle[V]{tree: t, parent: n, leafSlot: true},
					depth:  newDepth,
				}
			}
			// Case C target: vacant at n itself (set n's own
			// optional leaf), not at a nonexistent leaf slot.
			return EntryLocation[V]{kind: locVacantAt, handle: h, depth: depth}
		}

		idx := n.findChild(key[newDepth])
		if idx < 0 {
			// Case B target: attach a new child under n.
			return EntryLocation[V]{kind: locVacantAt, handle: h, depth: depth}
		}

		child := n.childAt(idx)
		h = Handle[V]{tree: t, parent: n, index: idx}
		n = child
		depth = newDepth + 1
	}
}
