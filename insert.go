package art

// InsertAt performs the insertion engine against a
// location previously produced by EntrySeek. It returns the leaf now
// holding the key (either freshly created or the existing one, on
// overwrite), the value that occupied it before (zero if it didn't
// exist), and whether the key already existed.
//
// New nodes are fully built before they are spliced into the tree
// (handle.replace, or a direct field assignment on an already-live
// node). Not every case is a single write, though: case A shortens the
// existing node's prefix in place just before the splice, and attaching
// a child to a node that has room writes several of that live node's
// fields. A reader walking concurrently with a writer can therefore
// observe an intermediate tree; such use is not supported, and debug
// builds (see debug.go) check only that two mutations never overlap.
func InsertAt[V any](loc EntryLocation[V], key []byte, value V) (leaf *Leaf[V], old V, existed bool) {
	switch loc.kind {
	case locVacantEmpty:
		lf := newLeaf(key, value)
		loc.handle.replace(lf)
		return lf, old, false

	case locOccupied:
		lf := loc.leaf
		old = lf.ReplaceValue(value)
		return lf, old, true

	case locVacantAt:
		site := loc.handle.resolve()
		switch s := site.(type) {
		case *Leaf[V]:
			return insertAtLeaf(loc.handle, s, loc.depth, key, value)
		default:
			return insertAtInternal(loc.handle, site, loc.depth, key, value)
		}

	default:
		panic("art: unknown EntryLocation kind")
	}
}

// insertAtLeaf handles the case where the insertion site is
// occupied by an existing leaf L, which diverges from the new key
// somewhere in their shared suffix.
func insertAtLeaf[V any](h Handle[V], l *Leaf[V], d int, key []byte, value V) (*Leaf[V], V, bool) {
	var zero V

	c := longestCommonPrefix(l.PartialKey(d), key[d:])
	lDone := d+c == len(l.key)
	newDone := d+c == len(key)

	if lDone && newDone {
		// Equal residual suffixes: same key.
		old := l.ReplaceValue(value)
		return l, old, true
	}

	p := newNode4[V]()
	if c > 0 {
		p.setPrefix(l.PartialKey(d)[:c])
	}
	newLf := newLeaf(key, value)

	if lDone {
		p.setOptionalLeaf(l)
	} else {
		assertInvariant(p.findChild(l.key[d+c]) < 0, "duplicate key byte splitting leaf")
		p.insertSorted(l.key[d+c], l)
	}

	if newDone {
		p.setOptionalLeaf(newLf)
	} else {
		assertInvariant(p.findChild(key[d+c]) < 0, "duplicate key byte splitting leaf")
		p.insertSorted(key[d+c], newLf)
	}

	h.replace(p)
	return newLf, zero, false
}

// insertAtInternal handles the case where the insertion site is an
// internal node N whose compressed prefix either diverges from the new
// key's residual (case A), matches it exactly with residual bytes
// still to consume (case B), or matches it exactly with nothing left
// (case C, a new lazy-expansion terminator).
func insertAtInternal[V any](h Handle[V], n Node[V], d int, key []byte, value V) (*Leaf[V], V, bool) {
	var zero V

	pp := n.prefix()
	residual := key[d:]
	c := longestCommonPrefix(pp, residual)
	newLf := newLeaf(key, value)

	if c < len(pp) {
		// Case A: prefix split. N's compressed path diverges from
		// the new key at byte c; pp[c] and residual[c] differ by
		// construction (or residual is shorter), so they are safe
		// discriminating bytes for the new N4 parent.
		p := newNode4[V]()
		p.setPrefix(pp[:c])

		// Read the edge byte before setPrefix: an inline prefix is
		// rewritten in place, and pp aliases it.
		edge := pp[c]
		shortened := pp[c+1:]
		n.setPrefix(shortened)
		p.insertSorted(edge, n)

		if c == len(residual) {
			p.setOptionalLeaf(newLf)
		} else {
			p.insertSorted(residual[c], newLf)
		}

		h.replace(p)
		return newLf, zero, false
	}

	if c < len(residual) {
		// Case B: N's prefix is a strict prefix of the residual key;
		// descend and attach a new child, growing N if it is full.
		b := residual[c]
		grown := insertChild[V](n, b, newLf)
		if grown != n {
			h.replace(grown)
		}
		return newLf, zero, false
	}

	// Case C: c == len(pp) == len(residual). The new key terminates
	// exactly at N.
	if existing := n.optionalLeaf(); existing != nil {
		old := existing.ReplaceValue(value)
		return existing, old, true
	}
	n.setOptionalLeaf(newLf)
	return newLf, zero, false
}
