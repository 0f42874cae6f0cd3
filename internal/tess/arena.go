package tess

// Arena pools the edge slice a single Run needs so repeated tessellation
// of similarly-sized polygons (the common case: the same octahedron
// face, operation after operation) doesn't churn the allocator. It is
// not safe for concurrent use; callers scope one Arena per call, or per
// goroutine if calls run concurrently.
type Arena struct {
	edges []flatEdge
}

// NewArena returns an Arena with no pre-sized backing storage.
func NewArena() *Arena {
	return &Arena{}
}

// reset discards the contents of the arena's scratch buffers without
// releasing their backing storage, so the next Run reuses the capacity.
// Callers invoke this via a defer immediately after obtaining the arena,
// so a panic or early return mid-tessellation still leaves the arena
// reusable rather than holding references into a half-built result.
func (a *Arena) reset() {
	a.edges = a.edges[:0]
}
