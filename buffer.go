package gpufft

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-gpufft/device"
)

// Buffer is a handle to a contiguous region of device memory.
//
// An owned buffer allocated its memory and frees it on Destroy. A borrowed
// buffer wraps a caller-supplied pointer and never frees it. Ownership is
// fixed at creation.
type Buffer struct {
	id          string
	dev         device.Device
	ptr         device.Ptr
	elementSize int
	count       int
	owned       bool
	destroyed   bool
}

// CreateBuffer allocates count elements of kind on the runtime's device.
// On allocation failure no buffer is returned.
func (r *Runtime) CreateBuffer(kind ElementType, count int) (*Buffer, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("create buffer of %d elements: %w", count, ErrInvalidElementCount)
	}

	size := kind.Size()
	if count > math.MaxInt/size {
		return nil, fmt.Errorf("create buffer of %d×%d bytes overflows: %w", count, size, ErrInvalidElementCount)
	}
	p, err := r.dev.Malloc(count * size)
	if err != nil {
		return nil, fmt.Errorf("create buffer of %d×%d bytes: %w", count, size, err)
	}

	b := &Buffer{
		id:          uuid.NewString(),
		dev:         r.dev,
		ptr:         p,
		elementSize: size,
		count:       count,
		owned:       true,
	}
	Logger().Debug("gpufft: buffer allocated", "buffer", b.id, "elements", count, "element_size", size)
	return b, nil
}

// WrapBuffer wraps an existing device pointer. The element size is one
// byte; the caller is responsible for the pointer's extent.
func (r *Runtime) WrapBuffer(p device.Ptr) *Buffer {
	b := &Buffer{
		id:          uuid.NewString(),
		ptr:         p,
		elementSize: 1,
	}
	if r != nil {
		b.dev = r.dev
	}
	Logger().Debug("gpufft: buffer wrapped", "buffer", b.id, "ptr", fmt.Sprintf("%#x", uintptr(p)))
	return b
}

// Destroy releases the handle and, for owned buffers, the device memory.
// Destroying a buffer twice is a no-op.
func (b *Buffer) Destroy() error {
	if b == nil || b.destroyed {
		return nil
	}
	b.destroyed = true

	if !b.owned {
		Logger().Debug("gpufft: buffer released", "buffer", b.id)
		return nil
	}
	if err := b.dev.Free(b.ptr); err != nil {
		Logger().Warn("gpufft: buffer free failed", "buffer", b.id, "err", err)
		return fmt.Errorf("destroy buffer: %w", err)
	}
	Logger().Debug("gpufft: buffer freed", "buffer", b.id)
	return nil
}

// Pointer returns the device address of the buffer.
func (b *Buffer) Pointer() device.Ptr {
	if b == nil {
		return device.Null
	}
	return b.ptr
}

// ID returns an identifier for log correlation.
func (b *Buffer) ID() string {
	if b == nil {
		return ""
	}
	return b.id
}

// ElementSize returns the width of one element in bytes.
func (b *Buffer) ElementSize() int {
	if b == nil {
		return 0
	}
	return b.elementSize
}

// Len returns the element count of an owned buffer, 0 for borrowed ones.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.count
}

// Bytes returns the size of an owned buffer in bytes, 0 for borrowed ones.
func (b *Buffer) Bytes() int {
	return b.Len() * b.ElementSize()
}

// Owned reports whether the buffer frees its memory on Destroy.
func (b *Buffer) Owned() bool {
	return b != nil && b.owned
}

// Upload copies src into the buffer.
func (b *Buffer) Upload(src []complex64) error {
	if err := b.checkAccess(len(src)); err != nil {
		return err
	}
	return device.UploadComplex64(b.dev, b.ptr, src)
}

// Download copies len(dst) samples out of the buffer.
func (b *Buffer) Download(dst []complex64) error {
	if err := b.checkAccess(len(dst)); err != nil {
		return err
	}
	return device.DownloadComplex64(b.dev, dst, b.ptr)
}

func (b *Buffer) checkAccess(samples int) error {
	if b == nil || b.destroyed || b.dev == nil {
		return ErrInvalidBuffer
	}
	if b.owned && samples*device.Complex64Size > b.Bytes() {
		return fmt.Errorf("%d samples into %d bytes: %w", samples, b.Bytes(), ErrLengthMismatch)
	}
	return nil
}
