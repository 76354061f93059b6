package art

import (
	"fmt"

	"github.com/dolthub/maphash"
)

// checksumHasher is shared by every Checksum call: maphash.NewHasher
// picks a random seed, so a fresh hasher per call would make checksums
// taken at different times incomparable.
var checksumHasher = maphash.NewHasher[string]()

// Checksum returns an order-independent structural fingerprint of
// every (key, value) pair currently stored. It combines each entry's
// hash with XOR, so insertion order never affects the result — useful
// for property tests that check idempotence (inserting an existing
// pair twice must leave the tree's observable content unchanged) and
// size stability (N inserts followed by the N matching removes must
// return to the starting checksum).
//
// This is a convenience for tests and callers that want a cheap
// equality proxy; it is not part of the core and never influences
// tree shape.
func (t *Tree[V]) Checksum() uint64 {
	var sum uint64
	t.Walk(func(k []byte, v V) bool {
		sum ^= checksumHasher.Hash(string(k) + "\x00" + fmt.Sprint(v))
		return false
	})
	return sum
}
