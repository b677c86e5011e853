package device

import "errors"

var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("algo-gpufft/device: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not available
	// on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("algo-gpufft/device: backend unavailable")

	// ErrDeviceIndex is returned when a device index is out of range.
	ErrDeviceIndex = errors.New("algo-gpufft/device: device index out of range")

	// ErrOutOfMemory is returned when an allocation cannot be satisfied.
	ErrOutOfMemory = errors.New("algo-gpufft/device: out of memory")

	// ErrInvalidSize is returned for negative allocation or copy sizes.
	ErrInvalidSize = errors.New("algo-gpufft/device: invalid size")

	// ErrInvalidPointer is returned when a pointer does not belong to a live allocation.
	ErrInvalidPointer = errors.New("algo-gpufft/device: invalid pointer")

	// ErrOutOfBounds is returned when a copy would cross the end of an allocation.
	ErrOutOfBounds = errors.New("algo-gpufft/device: access out of bounds")

	// ErrInvalidLaunch is returned for unusable launch geometry.
	ErrInvalidLaunch = errors.New("algo-gpufft/device: invalid launch configuration")

	// ErrBarrierDivergence is returned when some lanes of a block finished
	// while others were still waiting at a barrier.
	ErrBarrierDivergence = errors.New("algo-gpufft/device: barrier divergence")

	// ErrLaneFault is returned when a lane panicked during a launch.
	ErrLaneFault = errors.New("algo-gpufft/device: lane fault")

	// ErrClosed is returned by operations on a closed device.
	ErrClosed = errors.New("algo-gpufft/device: device closed")
)
