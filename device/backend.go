package device

import "sync"

// Backend is implemented by device backends (host simulation, HIP, etc.).
// It is responsible for device discovery and opening devices.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	Open(deviceIndex int) (Device, error)
}

// Allocator obtains and releases device memory.
type Allocator interface {
	Malloc(size int) (Ptr, error)
	Free(p Ptr) error
}

// Copier moves bytes between host and device memory.
type Copier interface {
	// Upload copies len(src) bytes from the host to dst.
	Upload(dst Ptr, src []byte) error
	// Download copies len(dst) bytes from src to the host.
	Download(dst []byte, src Ptr) error
}

// Launcher runs kernels. Launch returns after every lane has finished.
type Launcher interface {
	Launch(k Kernel, cfg LaunchConfig) error
}

// Device is an opened compute device.
type Device interface {
	Allocator
	Copier
	Launcher

	Info() DeviceInfo
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers a backend. Passing nil clears the backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	b := current()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

// Devices lists the devices of the registered backend.
func Devices() ([]DeviceInfo, error) {
	b := current()
	if b == nil {
		return nil, ErrNoBackend
	}
	if !b.Available() {
		return nil, ErrBackendUnavailable
	}
	return b.Devices()
}

// Open opens a device of the registered backend.
func Open(deviceIndex int) (Device, error) {
	b := current()
	if b == nil {
		return nil, ErrNoBackend
	}
	if !b.Available() {
		return nil, ErrBackendUnavailable
	}
	return b.Open(deviceIndex)
}

func current() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}
