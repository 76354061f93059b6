package art

// Entry is a single-search combinator API over EntryLocation/InsertAt,
// mirroring the Occupied/Vacant entry type of the original Rust source
// (src/entry.rs): look the key up once, then decide what to do with
// whatever was or wasn't there, without searching the tree a second
// time.
type Entry[V any] struct {
	tree *Tree[V]
	key  []byte
	loc  EntryLocation[V]
}

// EntryFor seeks key once and returns the combinator handle for it.
func EntryFor[V any](t *Tree[V], key []byte) Entry[V] {
	t.owner.begin()
	return Entry[V]{tree: t, key: key, loc: EntrySeek[V](t, key)}
}

// Occupied reports whether the entry's key is already present.
func (e Entry[V]) Occupied() (*Leaf[V], bool) {
	return e.loc.Occupied()
}

// OrInsert inserts value if the key is absent, and in either case
// returns the leaf now holding the key. It releases the single-writer
// hold taken by EntryFor.
func (e Entry[V]) OrInsert(value V) *Leaf[V] {
	defer e.tree.owner.end()
	if lf, ok := e.loc.Occupied(); ok {
		return lf
	}
	lf, _, _ := InsertAt[V](e.loc, e.key, value)
	e.tree.size++
	return lf
}

// OrInsertWith is OrInsert with the value computed lazily, only when
// the key is actually absent.
func (e Entry[V]) OrInsertWith(make func() V) *Leaf[V] {
	defer e.tree.owner.end()
	if lf, ok := e.loc.Occupied(); ok {
		return lf
	}
	lf, _, _ := InsertAt[V](e.loc, e.key, make())
	e.tree.size++
	return lf
}

// AndModify calls fn with the current value if the key is present,
// leaving the tree untouched otherwise. It deliberately does not end
// the single-writer hold taken by EntryFor, so it can be chained before
// OrInsert/OrInsertWith, which do: EntryFor(...).AndModify(...).OrInsert(...).
func (e Entry[V]) AndModify(fn func(v *V)) Entry[V] {
	if lf, ok := e.loc.Occupied(); ok {
		v := lf.Value()
		fn(&v)
		lf.ReplaceValue(v)
	}
	return e
}

// Release ends the single-writer hold taken by EntryFor without
// mutating the tree, for callers that only wanted Occupied().
func (e Entry[V]) Release() {
	e.tree.owner.end()
}
