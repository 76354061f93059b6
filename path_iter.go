package art

import "bytes"

// PathIterator walks every stored key that is a byte-string prefix of
// a caller-supplied path, shallowest first — the shape a hierarchical
// lookup wants (matching "/", then "/a", then "/a/b" against a request
// for "/a/b/c"), as opposed to Iterator's full ordered traversal or
// LowerBoundIterator's range seek.
type PathIterator[V any] struct {
	path  []byte
	n     Node[V]
	depth int
	done  bool
}

// NewPathIterator returns an iterator over the stored keys that prefix
// path, in shallow-to-deep order.
func NewPathIterator[V any](t *Tree[V], path []byte) *PathIterator[V] {
	return &PathIterator[V]{path: path, n: t.root}
}

// Next returns the next stored key prefixing the target path, or
// ok == false once the path has been exhausted or diverges from the
// tree.
func (p *PathIterator[V]) Next() (key []byte, value V, ok bool) {
	for !p.done && p.n != nil {
		if lf, ok := p.n.(*Leaf[V]); ok {
			p.done = true
			if len(lf.key) <= len(p.path) && bytes.Equal(lf.key, p.path[:len(lf.key)]) {
				return lf.key, lf.value, true
			}
			break
		}

		pp := p.n.prefix()
		if p.depth+len(pp) > len(p.path) || !bytes.Equal(p.path[p.depth:p.depth+len(pp)], pp) {
			p.done = true
			break
		}
		p.depth += len(pp)

		emit := p.n.optionalLeaf()

		if p.depth == len(p.path) {
			p.done = true
		} else {
			idx := p.n.findChild(p.path[p.depth])
			if idx < 0 {
				p.n = nil
			} else {
				p.n = p.n.childAt(idx)
				p.depth++
			}
		}

		if emit != nil {
			return emit.key, emit.value, true
		}
	}
	var zero V
	return nil, zero, false
}
