package imgcore

import (
	"unsafe"

	"github.com/deepteams/imgcore/internal/bufpool"
	"github.com/deepteams/imgcore/pixel"
)

// Allocator is the pluggable backing-store abstraction owning images use
// to acquire row buffers. A buffer must be released through the same
// Allocator instance that produced it.
type Allocator interface {
	Allocate(n pixel.Bytes) []byte
	AllocateAligned(n, align pixel.Bytes) []byte
	Deallocate(buf []byte)
}

// defaultAlignment is the minimum alignment DefaultAllocator guarantees,
// matching spec.md §6's "at least 16 bytes".
const defaultAlignment = pixel.Bytes(16)

// DefaultAllocator is used whenever an owning image is constructed
// without an explicit Allocator. It is grounded on the bucketed pool
// allocator the teacher uses for DSP scratch buffers
// (internal/pool/pool.go), adapted here to hand back long-lived,
// alignment-guaranteed row buffers instead of pooled short-lived ones:
// image buffers in this core outlive a single decode/convolution call,
// so pooling them would mostly just delay the same allocation.
type DefaultAllocator struct{}

// Allocate returns n bytes aligned to defaultAlignment.
func (a DefaultAllocator) Allocate(n pixel.Bytes) []byte {
	return a.AllocateAligned(n, defaultAlignment)
}

// AllocateAligned returns n bytes whose first byte is aligned to align.
// align must be a power of two; align <= 1 is treated as "no alignment
// requirement".
func (a DefaultAllocator) AllocateAligned(n, align pixel.Bytes) []byte {
	if align <= 1 {
		return make([]byte, n)
	}
	raw := make([]byte, int64(n)+int64(align)-1)
	return alignSlice(raw, align)[:n]
}

// Deallocate is a no-op: the Go runtime reclaims unreferenced buffers
// through garbage collection rather than explicit release.
func (a DefaultAllocator) Deallocate(buf []byte) {}

// PooledAllocator draws row buffers from internal/bufpool's bucketed
// sync.Pool instead of allocating fresh each time, for callers that
// repeatedly create and discard similarly-sized images — a batch
// conversion pipeline, say — where DefaultAllocator's one-shot make()
// would otherwise churn the garbage collector. Deallocate must be
// called once a buffer is no longer referenced; unlike
// DefaultAllocator's, it is not a no-op.
type PooledAllocator struct{}

// Allocate returns n bytes from the pool, not alignment-guaranteed
// beyond whatever the Go allocator already provides.
func (a PooledAllocator) Allocate(n pixel.Bytes) []byte {
	return bufpool.Get(int(n))
}

// AllocateAligned pads the pooled request by align-1 bytes and trims
// to an aligned sub-slice, same technique as DefaultAllocator's.
func (a PooledAllocator) AllocateAligned(n, align pixel.Bytes) []byte {
	if align <= 1 {
		return a.Allocate(n)
	}
	raw := bufpool.Get(int(n + align - 1))
	return alignSlice(raw, align)[:n]
}

// Deallocate returns buf to the pool it came from.
func (a PooledAllocator) Deallocate(buf []byte) {
	bufpool.Put(buf)
}

// alignSlice returns the suffix of buf whose first byte's address is a
// multiple of align.
func alignSlice(buf []byte, align pixel.Bytes) []byte {
	if len(buf) == 0 {
		return buf
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))
	mis := addr % uintptr(align)
	if mis == 0 {
		return buf
	}
	return buf[uintptr(align)-mis:]
}
