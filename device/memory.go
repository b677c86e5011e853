package device

import (
	"fmt"
	"unsafe"
)

// Complex64Size is the size in bytes of one complex64 sample.
const Complex64Size = int(unsafe.Sizeof(complex64(0)))

// UploadComplex64 copies src to device memory at dst.
func UploadComplex64(c Copier, dst Ptr, src []complex64) error {
	if len(src) == 0 {
		return nil
	}
	if err := c.Upload(dst, complex64Bytes(src)); err != nil {
		return fmt.Errorf("upload %d samples: %w", len(src), err)
	}
	return nil
}

// DownloadComplex64 fills dst from device memory at src.
func DownloadComplex64(c Copier, dst []complex64, src Ptr) error {
	if len(dst) == 0 {
		return nil
	}
	if err := c.Download(complex64Bytes(dst), src); err != nil {
		return fmt.Errorf("download %d samples: %w", len(dst), err)
	}
	return nil
}

// complex64Bytes reinterprets v as its native in-memory byte layout.
func complex64Bytes(v []complex64) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*Complex64Size)
}
