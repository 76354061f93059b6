//go:build debug

package art

import (
	"fmt"

	"github.com/timandy/routine"
)

// debugEnabled mirrors flier-goutil's internal/debug.Enabled: a
// compile-time marker, true only in binaries built with the debug tag.
const debugEnabled = true

// assertInvariant panics if cond is false. Release builds compile this
// call away entirely (see debug_off.go); debug builds fail loudly,
// treating a violated structural invariant as a program bug rather
// than a recoverable condition.
func assertInvariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("art: invariant violation: "+format, args...))
	}
}

// ownerGoroutine, when set, is the goroutine id that opened the
// in-flight mutation. Every Insert/Delete call brackets itself with
// begin/end, turning the single-writer exclusion the caller is
// otherwise trusted to provide into a debug-build assertion instead of
// a silently-corrupted tree.
type ownerGoroutine struct {
	id   int64
	held bool
}

func (o *ownerGoroutine) begin() {
	gid := routine.Goid()
	assertInvariant(!o.held, "concurrent mutation detected: goroutine %d entered while goroutine %d's mutation was still in flight", gid, o.id)
	o.id = gid
	o.held = true
}

func (o *ownerGoroutine) end() {
	assertInvariant(o.held, "endMutation called without a matching begin")
	o.held = false
}
