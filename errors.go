package gpufft

import "errors"

// Sentinel errors returned by plan, buffer and execute operations.
var (
	// ErrInvalidPlan is returned when a plan is nil or was destroyed.
	ErrInvalidPlan = errors.New("algo-gpufft: invalid plan")

	// ErrInvalidBuffer is returned when a required buffer is missing,
	// nil, or was destroyed.
	ErrInvalidBuffer = errors.New("algo-gpufft: invalid buffer")

	// ErrInvalidLength is returned when the transform length is not 16,
	// the only length the kernel implements.
	ErrInvalidLength = errors.New("algo-gpufft: invalid FFT length")

	// ErrInvalidDimensions is returned for transforms that are not one-dimensional.
	ErrInvalidDimensions = errors.New("algo-gpufft: invalid dimensions")

	// ErrInvalidBatch is returned when more than one transform is requested per launch.
	ErrInvalidBatch = errors.New("algo-gpufft: invalid batch count")

	// ErrInvalidElementCount is returned for negative buffer sizes.
	ErrInvalidElementCount = errors.New("algo-gpufft: invalid element count")

	// ErrBufferTooSmall is returned when an owned buffer cannot hold one transform.
	ErrBufferTooSmall = errors.New("algo-gpufft: buffer too small")

	// ErrUnsupportedTransform is returned for transform types other than
	// the forward complex-to-complex transform.
	ErrUnsupportedTransform = errors.New("algo-gpufft: unsupported transform type")

	// ErrUnsupportedPrecision is returned for precisions other than single.
	ErrUnsupportedPrecision = errors.New("algo-gpufft: unsupported precision")

	// ErrNilDevice is returned when a runtime has no device.
	ErrNilDevice = errors.New("algo-gpufft: nil device")

	// ErrLengthMismatch is returned when host slices don't match the buffer size.
	ErrLengthMismatch = errors.New("algo-gpufft: slice length mismatch")
)
