package gpufft

import (
	"errors"

	"github.com/cwbudde/algo-gpufft/device"
)

// Status is the coarse result code of an API call, for callers that mirror
// a C-style status interface. Go callers should prefer errors.Is.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusInvalidArgValue
	StatusInvalidDimensions
	StatusInvalidArrayType
	StatusInvalidPlan
	StatusInvalidLength
	StatusUnsupported
	StatusOutOfMemory
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusInvalidArgValue:
		return "invalid-arg-value"
	case StatusInvalidDimensions:
		return "invalid-dimensions"
	case StatusInvalidArrayType:
		return "invalid-array-type"
	case StatusInvalidPlan:
		return "invalid-plan"
	case StatusInvalidLength:
		return "invalid-length"
	case StatusUnsupported:
		return "unsupported"
	case StatusOutOfMemory:
		return "out-of-memory"
	default:
		return "unknown"
	}
}

// StatusOf maps an error returned by this package to a Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrInvalidPlan):
		return StatusInvalidPlan
	case errors.Is(err, ErrInvalidLength):
		return StatusInvalidLength
	case errors.Is(err, ErrInvalidDimensions), errors.Is(err, ErrInvalidBatch):
		return StatusInvalidDimensions
	case errors.Is(err, ErrInvalidBuffer), errors.Is(err, ErrBufferTooSmall):
		return StatusInvalidArrayType
	case errors.Is(err, ErrUnsupportedTransform), errors.Is(err, ErrUnsupportedPrecision):
		return StatusUnsupported
	case errors.Is(err, ErrInvalidElementCount), errors.Is(err, ErrLengthMismatch), errors.Is(err, ErrNilDevice):
		return StatusInvalidArgValue
	case errors.Is(err, device.ErrOutOfMemory):
		return StatusOutOfMemory
	default:
		return StatusFailure
	}
}
