package gpufft

// TransformType selects the kind of transform a plan describes.
type TransformType uint8

const (
	TransformComplexForward TransformType = iota
	TransformComplexInverse
	TransformRealForward
	TransformRealInverse
)

// String returns a human-readable name for the transform type.
func (t TransformType) String() string {
	switch t {
	case TransformComplexForward:
		return "complex-forward"
	case TransformComplexInverse:
		return "complex-inverse"
	case TransformRealForward:
		return "real-forward"
	case TransformRealInverse:
		return "real-inverse"
	default:
		return "unknown"
	}
}

// Precision selects the floating-point width of a plan.
type Precision uint8

const (
	PrecisionSingle Precision = iota
	PrecisionDouble
)

// String returns a human-readable name for the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionSingle:
		return "single"
	case PrecisionDouble:
		return "double"
	default:
		return "unknown"
	}
}

// ElementType declares what a buffer stores.
type ElementType uint8

const (
	ElementComplexSingle ElementType = iota
	ElementComplexDouble
	ElementSingle
	ElementDouble
	ElementByte
)

// Size returns the width of one element in bytes. Unknown kinds are one byte wide.
func (e ElementType) Size() int {
	switch e {
	case ElementComplexSingle:
		return 8
	case ElementComplexDouble:
		return 16
	case ElementSingle:
		return 4
	case ElementDouble:
		return 8
	default:
		return 1
	}
}

// Placement selects where Execute writes its result.
type Placement uint8

const (
	// PlacementInPlace overwrites the input buffer with the spectrum.
	// The output buffer list is ignored.
	PlacementInPlace Placement = iota
	// PlacementNotInPlace writes the spectrum to the first output buffer
	// and leaves the input untouched.
	PlacementNotInPlace
)

// String returns a human-readable name for the placement.
func (p Placement) String() string {
	switch p {
	case PlacementInPlace:
		return "in-place"
	case PlacementNotInPlace:
		return "not-in-place"
	default:
		return "unknown"
	}
}

// Description carries optional plan parameters. A nil Description selects
// the defaults.
type Description struct {
	Placement Placement
}
