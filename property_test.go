package art

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func randomKeys(n int, r *rand.Rand) []string {
	seen := make(map[string]bool)
	var out []string
	for len(out) < n {
		length := 1 + r.Intn(12)
		b := make([]byte, length)
		for i := range b {
			b[i] = byte('a' + r.Intn(6))
		}
		s := string(b)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Roundtrip: every inserted key is retrievable with its own value.
func TestProperty_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	keys := randomKeys(200, r)

	tr := New[int]()
	for i, k := range keys {
		tr.Insert([]byte(k), i)
	}

	for i, k := range keys {
		v, ok := tr.Get([]byte(k))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

// Order: Walk produces keys in strict ascending lexicographic order
// regardless of insertion order.
func TestProperty_AscendingOrder(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	keys := randomKeys(300, r)

	tr := New[int]()
	for i, k := range keys {
		tr.Insert([]byte(k), i)
	}

	var walked []string
	tr.Walk(func(k []byte, v int) bool {
		walked = append(walked, string(k))
		return false
	})

	want := append([]string(nil), keys...)
	sort.Strings(want)
	require.True(t, slices.Equal(want, walked))
	require.True(t, sort.StringsAreSorted(walked))
}

// Structural: after every random insert or delete, Len() matches the
// number of live keys, and every internal node reachable from the root
// still has at least one occupant.
func TestProperty_StructuralInvariantsHoldAfterRandomOps(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	keys := randomKeys(150, r)

	tr := New[int]()
	live := map[string]bool{}
	for _, k := range keys {
		switch r.Intn(3) {
		case 0, 1:
			tr.Insert([]byte(k), len(k))
			live[k] = true
		case 2:
			if live[k] {
				tr.Delete([]byte(k))
				delete(live, k)
			}
		}
		require.Equal(t, len(live), tr.Len())
		assertStructuralInvariants(t, tr.root)
	}
}

func assertStructuralInvariants[V any](t *testing.T, n Node[V]) {
	t.Helper()
	if n == nil {
		return
	}
	if _, ok := n.(*Leaf[V]); ok {
		return
	}
	occ := occupancy[V](n)
	require.GreaterOrEqual(t, occ, 1, "internal node must have at least one occupant below root")
	n.forEachChild(func(_ byte, child Node[V]) {
		assertStructuralInvariants[V](t, child)
	})
}

// Idempotence: inserting an already-present (key, value) pair again
// leaves the tree's observable content, and its checksum, unchanged.
func TestProperty_IdempotentReinsert(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	keys := randomKeys(80, r)

	tr := New[int]()
	for i, k := range keys {
		tr.Insert([]byte(k), i)
	}
	before := tr.Checksum()
	beforeLen := tr.Len()

	for i, k := range keys {
		tr.Insert([]byte(k), i)
	}

	require.Equal(t, beforeLen, tr.Len())
	require.Equal(t, before, tr.Checksum())
}

// Size stability: inserting N keys and then removing all N of them
// returns the tree to empty, both by Len() and by Checksum().
func TestProperty_SizeStabilityAfterFullRemoval(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	keys := randomKeys(120, r)

	tr := New[int]()
	empty := tr.Checksum()

	for i, k := range keys {
		tr.Insert([]byte(k), i)
	}
	require.Equal(t, len(keys), tr.Len())

	shuffled := append([]string(nil), keys...)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	for _, k := range shuffled {
		_, ok := tr.Delete([]byte(k))
		require.True(t, ok)
	}

	require.Equal(t, 0, tr.Len())
	require.Nil(t, tr.root)
	require.Equal(t, empty, tr.Checksum())
}
