package art

import "bytes"

// removeAt removes key from the subtree rooted at root, returning the
// removed leaf and the node that should replace root in its parent
// slot afterward (root itself if nothing changed shape, a rebalanced
// node, or nil if the subtree is now empty).
//
// There are no parent pointers to patch up after a shrink or a
// collapse: the recursion itself stands in for the descent stack a
// parent-pointer scheme would otherwise need, and each stack frame
// already holds the only
// reference that needs rewriting — the one in the node it visited one
// level up.
func removeAt[V any](root Node[V], key []byte, depth int) (removed *Leaf[V], replacement Node[V]) {
	if root == nil {
		return nil, nil
	}

	if lf, ok := root.(*Leaf[V]); ok {
		if bytes.Equal(lf.key, key) {
			return lf, nil
		}
		return nil, root
	}

	pp := root.prefix()
	if depth+len(pp) > len(key) {
		return nil, root
	}
	if !bytes.Equal(key[depth:depth+len(pp)], pp) {
		return nil, root
	}
	newDepth := depth + len(pp)

	if newDepth == len(key) {
		lf := root.optionalLeaf()
		if lf == nil {
			return nil, root
		}
		root.setOptionalLeaf(nil)
		return lf, collapseIfNeeded[V](root)
	}

	b := key[newDepth]
	idx := root.findChild(b)
	if idx < 0 {
		return nil, root
	}

	child := root.childAt(idx)
	removedLeaf, newChild := removeAt[V](child, key, newDepth+1)
	if removedLeaf == nil {
		return nil, root
	}

	if newChild == nil {
		removeChildAt[V](root, idx, b)
	} else if newChild != child {
		root.setChildAt(idx, newChild)
	}

	return removedLeaf, collapseIfNeeded[V](shrinkIfNeeded[V](root))
}

// collapseIfNeeded implements the rebalancing half of removal: once an internal node's occupancy (children plus optional
// leaf) drops to one, the node itself is redundant and is replaced by
// its sole remaining descendant. A descendant that is already a leaf
// needs no prefix surgery — lazy expansion means it carries its full
// key regardless of depth. A descendant that is still internal absorbs
// the collapsing node's prefix plus the one discriminating edge byte.
func collapseIfNeeded[V any](n Node[V]) Node[V] {
	if n == nil {
		return nil
	}

	total := occupancy[V](n)
	if total > 1 {
		return n
	}
	if total == 0 {
		return nil
	}

	if lf := n.optionalLeaf(); lf != nil {
		return lf
	}

	b, child := soleChild[V](n)
	if lf, ok := child.(*Leaf[V]); ok {
		return lf
	}

	merged := make([]byte, 0, len(n.prefix())+1+len(child.prefix()))
	merged = append(merged, n.prefix()...)
	merged = append(merged, b)
	merged = append(merged, child.prefix()...)
	child.setPrefix(merged)
	return child
}

// countLeaves counts every leaf reachable from n, including n itself if
// n is a leaf and n's own optional-leaf terminator if n is internal.
func countLeaves[V any](n Node[V]) int {
	if n == nil {
		return 0
	}
	if _, ok := n.(*Leaf[V]); ok {
		return 1
	}
	count := 0
	if n.optionalLeaf() != nil {
		count++
	}
	n.forEachChild(func(_ byte, child Node[V]) {
		count += countLeaves[V](child)
	})
	return count
}

// deletePrefixAt removes every leaf under n whose key has prefix as a
// byte-string prefix, returning the node that should replace n and
// accumulating the removed count into *removed. depth is how much of
// prefix has already been consumed by the path down to n.
func deletePrefixAt[V any](n Node[V], prefix []byte, depth int, removed *int) Node[V] {
	if n == nil {
		return nil
	}

	if lf, ok := n.(*Leaf[V]); ok {
		if len(prefix) <= len(lf.key) && bytes.Equal(lf.key[:len(prefix)], prefix) {
			*removed++
			return nil
		}
		return n
	}

	remaining := prefix[depth:]
	pp := n.prefix()
	c := longestCommonPrefix(pp, remaining)

	if c == len(remaining) {
		// n's full compressed path already starts with (or equals)
		// the remaining prefix: every leaf under n qualifies.
		*removed += countLeaves[V](n)
		return nil
	}
	if c < len(pp) {
		// The prefix diverges from n's compressed path before reaching
		// any child: nothing under n can match.
		return n
	}

	// c == len(pp) < len(remaining): descend one more edge.
	newDepth := depth + len(pp)
	b := prefix[newDepth]
	idx := n.findChild(b)
	if idx < 0 {
		return n
	}

	child := n.childAt(idx)
	newChild := deletePrefixAt[V](child, prefix, newDepth+1, removed)
	if newChild == nil {
		removeChildAt[V](n, idx, b)
	} else if newChild != child {
		n.setChildAt(idx, newChild)
	}
	return collapseIfNeeded[V](shrinkIfNeeded[V](n))
}
