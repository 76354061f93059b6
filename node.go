package art

// nodeType discriminates the tagged union of node layouts. Four
// internal variants share a logical interface but differ sharply in
// memory footprint (Node4/16/48/256); a leaf is its own fifth kind.
// Each node reports its tag through kind(). Variant dispatch itself
// goes through the Node interface's methods and through Go type
// switches on the concrete node types, not through a switch on this
// tag.
type nodeType uint8

const (
	typeLeaf nodeType = iota
	typeNode4
	typeNode16
	typeNode48
	typeNode256
)

func (t nodeType) String() string {
	switch t {
	case typeLeaf:
		return "leaf"
	case typeNode4:
		return "node4"
	case typeNode16:
		return "node16"
	case typeNode48:
		return "node48"
	case typeNode256:
		return "node256"
	default:
		return "unknown"
	}
}

// maxInlinePrefix is the inline capacity of a node's partial prefix.
// Prefixes at or under this length live inside the node's header;
// longer ones spill to a heap-allocated slice. The two representations
// are interchangeable by construction (setPrefix picks whichever fits).
const maxInlinePrefix = 16

// Node is the tagged union of leaf and internal node layouts. Every
// implementation answers the full method set; methods that don't apply
// to a given kind (child and prefix operations on a leaf) are no-ops
// or zero values rather than panicking, so
// callers that already know which side of the union they hold can
// still call through the shared interface without a type switch.
type Node[V any] interface {
	kind() nodeType

	// prefix is the node's compressed partial_prefix: the bytes
	// every descendant shares at this tree position, past the
	// parent edge that led here.
	prefix() []byte
	setPrefix([]byte)

	numChildren() int

	// optionalLeaf implements lazy expansion: a leaf whose key
	// terminates exactly at this node's branch point.
	optionalLeaf() *Leaf[V]
	setOptionalLeaf(*Leaf[V])

	// findChild returns the child slot index for key byte b, or -1.
	findChild(b byte) int
	childAt(idx int) Node[V]
	setChildAt(idx int, child Node[V])

	// forEachChild visits occupied children in ascending key-byte
	// order; it is the one primitive ordered traversal needs and the
	// only place a variant's storage layout leaks past this
	// interface.
	forEachChild(fn func(b byte, child Node[V]))

	minLeaf() *Leaf[V]
	maxLeaf() *Leaf[V]
}

// base is the shared header embedded in every internal-node variant:
// the compressed prefix (inline or spilled), the occupied-slot count,
// and the lazily-expanded terminator leaf.
type base[V any] struct {
	prefixLen    int
	prefixInline [maxInlinePrefix]byte
	prefixSpill  []byte
	numCh        int
	leaf         *Leaf[V]
}

func (b *base[V]) prefix() []byte {
	if b.prefixSpill != nil {
		return b.prefixSpill
	}
	return b.prefixInline[:b.prefixLen]
}

func (b *base[V]) setPrefix(p []byte) {
	b.prefixLen = len(p)
	if len(p) <= maxInlinePrefix {
		b.prefixSpill = nil
		copy(b.prefixInline[:], p)
		return
	}
	spill := make([]byte, len(p))
	copy(spill, p)
	b.prefixSpill = spill
}

func (b *base[V]) numChildren() int           { return b.numCh }
func (b *base[V]) optionalLeaf() *Leaf[V]     { return b.leaf }
func (b *base[V]) setOptionalLeaf(l *Leaf[V]) { b.leaf = l }

// isLeafNode reports whether n is a leaf in the tagged-union sense,
// guarding against a nil interface value (an empty slot).
func isLeafNode[V any](n Node[V]) bool {
	if n == nil {
		return false
	}
	return n.kind() == typeLeaf
}

// occupancy is numChildren + 1 if an optional_leaf is present. Every
// internal node must keep this at or above two, except transiently at
// the root.
func occupancy[V any](n Node[V]) int {
	c := n.numChildren()
	if n.optionalLeaf() != nil {
		c++
	}
	return c
}
