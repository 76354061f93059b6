package art

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum_EmptyTreeIsStable(t *testing.T) {
	a := New[int]()
	b := New[int]()
	require.Equal(t, a.Checksum(), b.Checksum())
}

func TestChecksum_OrderIndependent(t *testing.T) {
	a := New[int]()
	b := New[int]()

	for i, w := range []string{"apple", "banana", "cherry"} {
		a.Insert([]byte(w), i)
	}
	for i, w := range []string{"cherry", "apple", "banana"} {
		b.Insert([]byte(w), [3]int{2, 0, 1}[i])
	}

	require.Equal(t, a.Checksum(), b.Checksum())
}

func TestChecksum_ChangesWithContent(t *testing.T) {
	tr := New[int]()
	before := tr.Checksum()

	tr.Insert([]byte("k"), 1)
	afterInsert := tr.Checksum()
	require.NotEqual(t, before, afterInsert)

	tr.Delete([]byte("k"))
	require.Equal(t, before, tr.Checksum())
}

func TestChecksum_InsertThenRemoveRoundTripsThroughManyKeys(t *testing.T) {
	tr := New[int]()
	before := tr.Checksum()

	words := []string{"a", "ab", "abc", "b", "bc", "c"}
	for i, w := range words {
		tr.Insert([]byte(w), i)
	}
	require.NotEqual(t, before, tr.Checksum())

	for _, w := range words {
		tr.Delete([]byte(w))
	}
	require.Equal(t, before, tr.Checksum())
}
