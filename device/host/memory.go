package host

import (
	"fmt"
	"sort"
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-gpufft/device"
)

const (
	// arenaBase is the first address handed out; low addresses stay unmapped
	// so that small integers never alias a live allocation.
	arenaBase device.Ptr = 0x10000
	// allocAlign spaces base addresses.
	allocAlign = 256
)

type allocation struct {
	base device.Ptr
	data []byte
}

func (a *allocation) contains(p device.Ptr) bool {
	return p >= a.base && p < a.base+device.Ptr(len(a.data))
}

// arena hands out non-overlapping address ranges backed by Go memory.
type arena struct {
	mu     sync.Mutex
	limit  int
	used   int
	next   device.Ptr
	allocs []*allocation // sorted by base
}

func newArena(limit int) *arena {
	return &arena{limit: limit, next: arenaBase}
}

func (a *arena) alloc(size int) (device.Ptr, error) {
	if size < 0 {
		return device.Null, fmt.Errorf("malloc %d bytes: %w", size, device.ErrInvalidSize)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.limit > 0 && a.used+size > a.limit {
		return device.Null, fmt.Errorf("malloc %d bytes (%d of %d in use): %w",
			size, a.used, a.limit, device.ErrOutOfMemory)
	}

	// uint64 backing keeps every allocation 8-byte aligned for typed views.
	words := make([]uint64, (size+7)/8)
	var data []byte
	if len(words) > 0 {
		data = unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	} else {
		data = []byte{}
	}

	base := a.next
	span := (size + allocAlign - 1) / allocAlign * allocAlign
	if span == 0 {
		span = allocAlign
	}
	a.next += device.Ptr(span)

	a.allocs = append(a.allocs, &allocation{base: base, data: data})
	a.used += size
	return base, nil
}

func (a *arena) free(p device.Ptr) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.search(p)
	if i < 0 || a.allocs[i].base != p {
		return fmt.Errorf("free %#x: %w", uintptr(p), device.ErrInvalidPointer)
	}
	a.used -= len(a.allocs[i].data)
	a.allocs = append(a.allocs[:i], a.allocs[i+1:]...)
	return nil
}

// bytes returns n bytes of device memory starting at p.
func (a *arena) bytes(p device.Ptr, n int) ([]byte, error) {
	if n < 0 {
		return nil, device.ErrInvalidSize
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.search(p)
	if i < 0 {
		return nil, fmt.Errorf("access %#x: %w", uintptr(p), device.ErrInvalidPointer)
	}
	alloc := a.allocs[i]
	off := int(p - alloc.base)
	if off+n > len(alloc.data) {
		return nil, fmt.Errorf("access %#x+%d (allocation %#x, %d bytes): %w",
			uintptr(p), n, uintptr(alloc.base), len(alloc.data), device.ErrOutOfBounds)
	}
	return alloc.data[off : off+n], nil
}

// tail returns the bytes from p to the end of its allocation.
func (a *arena) tail(p device.Ptr) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i := a.search(p)
	if i < 0 {
		return nil, fmt.Errorf("access %#x: %w", uintptr(p), device.ErrInvalidPointer)
	}
	alloc := a.allocs[i]
	return alloc.data[int(p-alloc.base):], nil
}

// search returns the index of the allocation containing p, or -1.
// A zero-size allocation contains only its base address.
func (a *arena) search(p device.Ptr) int {
	i := sort.Search(len(a.allocs), func(i int) bool {
		return a.allocs[i].base > p
	}) - 1
	if i < 0 {
		return -1
	}
	alloc := a.allocs[i]
	if alloc.contains(p) || (len(alloc.data) == 0 && alloc.base == p) {
		return i
	}
	return -1
}

func (a *arena) inUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used
}

func (a *arena) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.allocs)
}

func (a *arena) reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.allocs = nil
	a.used = 0
}
