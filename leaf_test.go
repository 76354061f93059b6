package art

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeaf_PartialKey(t *testing.T) {
	lf := newLeaf([]byte("hello"), 1)
	require.Equal(t, "hello", string(lf.PartialKey(0)))
	require.Equal(t, "lo", string(lf.PartialKey(3)))
	require.Nil(t, lf.PartialKey(5))
	require.Nil(t, lf.PartialKey(10))
}

func TestLeaf_ReplaceValue(t *testing.T) {
	lf := newLeaf([]byte("k"), "a")
	old := lf.ReplaceValue("b")
	require.Equal(t, "a", old)
	require.Equal(t, "b", lf.Value())
}

func TestLeaf_CopiesKeyOnConstruction(t *testing.T) {
	src := []byte("mutable")
	lf := newLeaf(src, 1)
	src[0] = 'X'
	require.Equal(t, "mutable", string(lf.Key()))
}

func TestLeaf_SatisfiesNodeInterfaceAsTerminal(t *testing.T) {
	lf := newLeaf([]byte("k"), 1)
	require.Equal(t, typeLeaf, lf.kind())
	require.Equal(t, 0, lf.numChildren())
	require.Equal(t, -1, lf.findChild('x'))
	require.Nil(t, lf.childAt(0))
	require.Same(t, lf, lf.minLeaf())
	require.Same(t, lf, lf.maxLeaf())
}
