package art

// edgePair pairs a discriminating byte with the child it leads to, the
// unit forEachChild hands back one at a time and Iterator materializes
// into a slice per visited node so it can resume mid-node across calls
// to Next.
type edgePair[V any] struct {
	b byte
	n Node[V]
}

// iterNode is one stack frame of an in-progress traversal: the
// terminator leaf at this branch point (nil once emitted or absent)
// plus the node's children in traversal order, and how far through
// them the frame has gotten.
type iterNode[V any] struct {
	leaf  *Leaf[V]
	edges []edgePair[V]
	idx   int
}

func newAscendingFrame[V any](n Node[V]) iterNode[V] {
	if lf, ok := n.(*Leaf[V]); ok {
		return iterNode[V]{leaf: lf}
	}
	f := iterNode[V]{leaf: n.optionalLeaf()}
	n.forEachChild(func(b byte, c Node[V]) {
		f.edges = append(f.edges, edgePair[V]{b, c})
	})
	return f
}

// Iterator walks a tree's keys in ascending order. It holds an explicit
// stack rather than recursing so that Next can be called incrementally
// by a caller that wants to stop partway through.
type Iterator[V any] struct {
	stack []iterNode[V]
}

// NewIterator returns an iterator positioned before the first key.
func NewIterator[V any](t *Tree[V]) *Iterator[V] {
	it := &Iterator[V]{}
	if t.root != nil {
		it.stack = append(it.stack, newAscendingFrame[V](t.root))
	}
	return it
}

// Next returns the next (key, value) pair in ascending order, or
// ok == false once the traversal is exhausted.
func (it *Iterator[V]) Next() (key []byte, value V, ok bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		// A node's own terminator sorts before any of its children:
		// it is the key equal to the path so far, which is a prefix
		// of (and therefore less than) every longer key below it.
		if top.leaf != nil {
			lf := top.leaf
			top.leaf = nil
			return lf.key, lf.value, true
		}

		if top.idx < len(top.edges) {
			child := top.edges[top.idx].n
			top.idx++
			it.stack = append(it.stack, newAscendingFrame[V](child))
			continue
		}

		it.stack = it.stack[:len(it.stack)-1]
	}
	var zero V
	return nil, zero, false
}
