package art

import "bytes"

// LowerBoundIterator walks a tree's keys in ascending order, starting
// at the first key greater than or equal to a seek key, without
// visiting anything before it. It is an Iterator whose initial stack
// has already been fast-forwarded past everything less than the seek
// key, so Next costs the same as plain ascending iteration once
// started.
type LowerBoundIterator[V any] struct {
	it Iterator[V]
}

// NewLowerBoundIterator returns an iterator positioned at the first key
// greater than or equal to key.
func NewLowerBoundIterator[V any](t *Tree[V], key []byte) *LowerBoundIterator[V] {
	lb := &LowerBoundIterator[V]{}
	if t.root != nil {
		lb.it.stack = seekLowerBound[V](t.root, key)
	}
	return lb
}

// Next returns the next (key, value) pair at or after the seek key, in
// ascending order.
func (lb *LowerBoundIterator[V]) Next() ([]byte, V, bool) {
	return lb.it.Next()
}

// seekLowerBound descends toward key, building the same kind of stack
// Iterator consumes, but pruned: subtrees entirely below key are
// skipped, a subtree entirely at or above key is pushed whole, and a
// subtree straddling key contributes only the portion at or above it
// plus every sibling edge to its right (which sorts higher).
func seekLowerBound[V any](root Node[V], key []byte) []iterNode[V] {
	var stack []iterNode[V]
	n := root
	depth := 0

	for n != nil {
		if lf, ok := n.(*Leaf[V]); ok {
			if bytes.Compare(lf.key, key) >= 0 {
				stack = append(stack, iterNode[V]{leaf: lf})
			}
			return stack
		}

		pp := n.prefix()
		residual := key[depth:]
		cmpLen := len(pp)
		if len(residual) < cmpLen {
			cmpLen = len(residual)
		}
		cmp := bytes.Compare(pp[:cmpLen], residual[:cmpLen])

		if cmp > 0 || (cmp == 0 && len(pp) > len(residual)) {
			// Everything under n sorts at or after key.
			stack = append(stack, newAscendingFrame[V](n))
			return stack
		}
		if cmp < 0 {
			// Everything under n sorts before key.
			return stack
		}

		depth += len(pp)
		if depth == len(key) {
			// key names this exact branch point: its own terminator
			// (if any) is >= key, and so is every child below it.
			f := iterNode[V]{leaf: n.optionalLeaf()}
			n.forEachChild(func(b byte, c Node[V]) {
				f.edges = append(f.edges, edgePair[V]{b, c})
			})
			stack = append(stack, f)
			return stack
		}

		b := key[depth]
		var pending []edgePair[V]
		var matchChild Node[V]
		n.forEachChild(func(cb byte, c Node[V]) {
			switch {
			case cb > b:
				pending = append(pending, edgePair[V]{cb, c})
			case cb == b:
				matchChild = c
			}
		})
		// n's own terminator, if any, names a key strictly shorter
		// than key at this depth, so it sorts before key and is
		// excluded; siblings with byte > b sort after key regardless
		// of what's below them.
		stack = append(stack, iterNode[V]{idx: 0, edges: pending})
		if matchChild == nil {
			return stack
		}
		n = matchChild
		depth++
	}
	return stack
}
