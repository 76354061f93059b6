package art

func newDescendingFrame[V any](n Node[V]) iterNode[V] {
	if lf, ok := n.(*Leaf[V]); ok {
		return iterNode[V]{leaf: lf, idx: -1}
	}
	f := iterNode[V]{leaf: n.optionalLeaf()}
	n.forEachChild(func(b byte, c Node[V]) {
		f.edges = append(f.edges, edgePair[V]{b, c})
	})
	f.idx = len(f.edges) - 1
	return f
}

// ReverseIterator walks a tree's keys in descending order, visiting a
// node's children from the highest discriminating byte down before its
// own terminator leaf (which, as the shortest key at that branch
// point, sorts after all of them).
type ReverseIterator[V any] struct {
	stack []iterNode[V]
}

// NewReverseIterator returns a reverse iterator positioned before the
// last key.
func NewReverseIterator[V any](t *Tree[V]) *ReverseIterator[V] {
	it := &ReverseIterator[V]{}
	if t.root != nil {
		it.stack = append(it.stack, newDescendingFrame[V](t.root))
	}
	return it
}

// Next returns the next (key, value) pair in descending order, or
// ok == false once the traversal is exhausted.
func (it *ReverseIterator[V]) Next() (key []byte, value V, ok bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if top.idx >= 0 {
			child := top.edges[top.idx].n
			top.idx--
			it.stack = append(it.stack, newDescendingFrame[V](child))
			continue
		}

		if top.leaf != nil {
			lf := top.leaf
			top.leaf = nil
			return lf.key, lf.value, true
		}

		it.stack = it.stack[:len(it.stack)-1]
	}
	var zero V
	return nil, zero, false
}
