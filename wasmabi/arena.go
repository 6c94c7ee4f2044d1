// Package wasmabi implements the flat, index-addressed external binding
// surface described in spec §4.6/§6: an alloc/dealloc byte-pointer
// allocator plus process-wide tree-mode and streaming-mode entry points,
// intended to be compiled to a WASI/WASM guest and driven by a host-side
// wrapper that copies strings in and out over (ptr, len) pairs.
//
// This is explicitly out of the core per spec §1 ("OUT OF SCOPE: the
// guest-host memory ABI ... the host-side wrapper ... Their only contract
// with the core is listed in §6"); it exists here so the core is usable
// from an actual WASM host, since the host/guest ABI is the one piece of
// "complete Go repo" surface spec.md leaves unbuilt. Only the entry points
// in exports.go are restricted to wasip1 targets; this arena file carries no
// build tag, so it builds and is tested in a normal `go test ./...` run.
package wasmabi

// arena is a growable bump allocator with a same-size freelist for reuse,
// grounded on the slab-backed, reset-and-reuse nodeArena pattern in
// _examples/odvcencio-gotreesitter/arena.go (that repo was not chosen as
// teacher, but its arena is the clearest grounding in the retrieval pack
// for this ambient allocator concern — see DESIGN.md).
type arena struct {
	buf       []byte
	used      int
	freeLists map[int][]int // size -> list of freed offsets of that exact size
}

const initialArenaCapacity = 64 * 1024

func newArena() *arena {
	return &arena{
		buf:       make([]byte, initialArenaCapacity),
		freeLists: make(map[int][]int),
	}
}

// alloc returns an offset into a.buf with at least size bytes available,
// growing the backing slice geometrically if needed. It first tries to
// reuse a same-size freed block (cheap common case: re-parsing the same
// shape of document repeatedly), matching the reuse intent of the teacher
// arena's sync.Pool-backed acquire/release cycle, adapted here to a single
// long-lived arena per ABI session rather than a pool of arenas.
func (a *arena) alloc(size int) int {
	if size <= 0 {
		return a.used
	}
	if free := a.freeLists[size]; len(free) > 0 {
		off := free[len(free)-1]
		a.freeLists[size] = free[:len(free)-1]
		return off
	}
	if a.used+size > len(a.buf) {
		newCap := len(a.buf) * 2
		for newCap < a.used+size {
			newCap *= 2
		}
		grown := make([]byte, newCap)
		copy(grown, a.buf[:a.used])
		a.buf = grown
	}
	off := a.used
	a.used += size
	return off
}

// dealloc returns the [offset, offset+size) block to the freelist for that
// exact size. It does not shrink the backing slice.
func (a *arena) dealloc(offset, size int) {
	if size <= 0 {
		return
	}
	a.freeLists[size] = append(a.freeLists[size], offset)
}

// write copies data into the arena starting at offset.
func (a *arena) write(offset int, data []byte) {
	copy(a.buf[offset:offset+len(data)], data)
}

// bytes returns a read-only view of the arena region [offset, offset+size).
func (a *arena) bytes(offset, size int) []byte {
	return a.buf[offset : offset+size]
}

// putString copies s into the arena and returns (ptr, len).
func (a *arena) putString(s string) (int, int) {
	off := a.alloc(len(s))
	a.write(off, []byte(s))
	return off, len(s)
}

// reset discards all allocations, keeping the backing slice's capacity.
func (a *arena) reset() {
	a.used = 0
	a.freeLists = make(map[int][]int)
}
