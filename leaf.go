package art

// Leaf holds one (key, value) pair. Lazy expansion means a leaf never
// stores its own depth: the ambient depth is supplied by whatever is
// walking the tree, because the same leaf is found at different
// cumulative depths depending on how much of its key was already
// consumed by compressed prefixes above it.
type Leaf[V any] struct {
	key   []byte
	value V
}

func newLeaf[V any](key []byte, value V) *Leaf[V] {
	k := make([]byte, len(key))
	copy(k, key)
	return &Leaf[V]{key: k, value: value}
}

// Key returns the leaf's full key.
func (l *Leaf[V]) Key() []byte { return l.key }

// Value returns the leaf's stored value.
func (l *Leaf[V]) Value() V { return l.value }

// ReplaceValue overwrites the stored value, returning the previous one.
func (l *Leaf[V]) ReplaceValue(v V) V {
	old := l.value
	l.value = v
	return old
}

// PartialKey returns key[depth:], or an empty slice if depth is past
// the end of the key.
func (l *Leaf[V]) PartialKey(depth int) []byte {
	if depth >= len(l.key) {
		return nil
	}
	return l.key[depth:]
}

// node interface conformance. A leaf is a terminal, childless Node: the
// internal-node-only operations are no-ops, mirroring how this corpus's
// generic Node interfaces give every implementor the full method set
// and stub out what doesn't apply to that variant.

func (l *Leaf[V]) kind() nodeType       { return typeLeaf }
func (l *Leaf[V]) prefix() []byte       { return nil }
func (l *Leaf[V]) setPrefix([]byte)     {}
func (l *Leaf[V]) numChildren() int     { return 0 }
func (l *Leaf[V]) optionalLeaf() *Leaf[V] { return nil }
func (l *Leaf[V]) setOptionalLeaf(*Leaf[V]) {}
func (l *Leaf[V]) findChild(byte) int   { return -1 }
func (l *Leaf[V]) childAt(int) Node[V]  { return nil }
func (l *Leaf[V]) setChildAt(int, Node[V]) {}
func (l *Leaf[V]) forEachChild(func(byte, Node[V])) {}
func (l *Leaf[V]) minLeaf() *Leaf[V] { return l }
func (l *Leaf[V]) maxLeaf() *Leaf[V] { return l }
