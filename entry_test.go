package art

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntry_OrInsertOnAbsentKey(t *testing.T) {
	tr := New[int]()
	lf := EntryFor[int](tr, []byte("k")).OrInsert(5)
	require.Equal(t, 5, lf.Value())
	require.Equal(t, 1, tr.Len())
}

func TestEntry_OrInsertOnPresentKeyKeepsExisting(t *testing.T) {
	tr := New[int]()
	tr.Insert([]byte("k"), 1)

	lf := EntryFor[int](tr, []byte("k")).OrInsert(99)
	require.Equal(t, 1, lf.Value())
	require.Equal(t, 1, tr.Len())
}

func TestEntry_OrInsertWithOnlyCallsFuncWhenAbsent(t *testing.T) {
	tr := New[int]()
	tr.Insert([]byte("k"), 1)

	calls := 0
	EntryFor[int](tr, []byte("k")).OrInsertWith(func() int {
		calls++
		return 42
	})
	require.Equal(t, 0, calls)

	EntryFor[int](tr, []byte("other")).OrInsertWith(func() int {
		calls++
		return 42
	})
	require.Equal(t, 1, calls)
}

func TestEntry_AndModifyMutatesInPlace(t *testing.T) {
	tr := New[int]()
	tr.Insert([]byte("k"), 10)

	EntryFor[int](tr, []byte("k")).AndModify(func(v *int) { *v++ }).Release()

	v, _ := tr.Get([]byte("k"))
	require.Equal(t, 11, v)
}

func TestEntry_AndModifyNoopWhenAbsent(t *testing.T) {
	tr := New[int]()
	called := false
	EntryFor[int](tr, []byte("k")).AndModify(func(v *int) { called = true }).Release()
	require.False(t, called)
	require.Equal(t, 0, tr.Len())
}
