// Package art implements an Adaptive Radix Tree (ART): an in-memory
// ordered map keyed by arbitrary byte strings.
//
// The tree adapts its internal fan-out to occupancy (Node4, Node16,
// Node48, Node256), compresses shared key prefixes onto the nodes that
// span them, and lazily expands keys that terminate at a branch point
// instead of forcing a dedicated leaf subtree for them. Depth scales
// with key length, not key-space size, and memory scales with the
// number of distinct keys stored.
//
// Tree is not safe for concurrent use. Callers that need concurrent
// readers must ensure no writer is active for the duration themselves.
// Debug builds (see debug.go) assert only that two mutations never
// overlap; a read running alongside a writer is not detected.
package art
