package gpufft

import (
	"fmt"

	"github.com/cwbudde/algo-gpufft/device"
	"github.com/cwbudde/algo-gpufft/internal/kernels"
)

// FFTLength is the only transform length Execute supports.
const FFTLength = kernels.Size

// ExecutionInfo carries optional per-call execution parameters.
type ExecutionInfo struct {
	// Trace, when non-nil, receives the launch details of a successful call.
	Trace *LaunchTrace
}

// LaunchTrace describes one kernel launch.
type LaunchTrace struct {
	Grid         device.Dim3
	Block        device.Dim3
	SharedBytes  int
	TwiddleBytes int
	InPlace      bool
}

// Execute runs plan on in[0], writing the spectrum to in[0] for in-place
// plans or to out[0] otherwise.
//
// Execute checks the plan against what the kernel implements (forward,
// complex, single precision, rank 1, length 16, batch 1) and fails without
// touching device memory when it does not match.
func (r *Runtime) Execute(plan *Plan, in, out []*Buffer, info *ExecutionInfo) error {
	if err := r.check(); err != nil {
		return err
	}
	if err := validatePlan(plan); err != nil {
		return err
	}

	src, err := r.pickBuffer(in, "input")
	if err != nil {
		return err
	}
	dst := src
	if plan.placement == PlacementNotInPlace {
		if dst, err = r.pickBuffer(out, "output"); err != nil {
			return err
		}
	}

	tw := kernels.Twiddles()
	twPtr, err := r.dev.Malloc(kernels.TwiddleBytes)
	if err != nil {
		return fmt.Errorf("allocate twiddles: %w", err)
	}
	defer func() {
		if ferr := r.dev.Free(twPtr); ferr != nil {
			Logger().Warn("gpufft: twiddle free failed", "plan", plan.id, "err", ferr)
		}
	}()

	if err := device.UploadComplex64(r.dev, twPtr, tw); err != nil {
		return fmt.Errorf("upload twiddles: %w", err)
	}

	cfg := kernels.LaunchConfig
	Logger().Debug("gpufft: launch",
		"plan", plan.id,
		"in", src.id,
		"out", dst.id,
		"lanes", cfg.Block.Size(),
	)

	if err := r.dev.Launch(kernels.ForwardFFT16(src.ptr, dst.ptr, twPtr), cfg); err != nil {
		return fmt.Errorf("launch forward fft16: %w", err)
	}

	if info != nil && info.Trace != nil {
		*info.Trace = LaunchTrace{
			Grid:         cfg.Grid,
			Block:        cfg.Block,
			SharedBytes:  cfg.SharedFloats * 4,
			TwiddleBytes: kernels.TwiddleBytes,
			InPlace:      src == dst,
		}
	}
	return nil
}

func validatePlan(p *Plan) error {
	switch {
	case p == nil || p.destroyed:
		return ErrInvalidPlan
	case p.transform != TransformComplexForward:
		return fmt.Errorf("%s: %w", p.transform, ErrUnsupportedTransform)
	case p.precision != PrecisionSingle:
		return fmt.Errorf("%s: %w", p.precision, ErrUnsupportedPrecision)
	case len(p.lengths) != 1:
		return fmt.Errorf("rank %d: %w", len(p.lengths), ErrInvalidDimensions)
	case p.lengths[0] != FFTLength:
		return fmt.Errorf("length %d, want %d: %w", p.lengths[0], FFTLength, ErrInvalidLength)
	case p.batch != 1:
		return fmt.Errorf("batch %d: %w", p.batch, ErrInvalidBatch)
	}
	return nil
}

func (r *Runtime) pickBuffer(list []*Buffer, role string) (*Buffer, error) {
	if len(list) == 0 || list[0] == nil || list[0].destroyed {
		return nil, fmt.Errorf("%s: %w", role, ErrInvalidBuffer)
	}
	b := list[0]
	// Device addresses are only meaningful on the device that issued them.
	if b.dev != nil && b.dev != r.dev {
		return nil, fmt.Errorf("%s belongs to another device: %w", role, ErrInvalidBuffer)
	}
	if b.owned && b.Bytes() < FFTLength*device.Complex64Size {
		return nil, fmt.Errorf("%s holds %d bytes, need %d: %w",
			role, b.Bytes(), FFTLength*device.Complex64Size, ErrBufferTooSmall)
	}
	return b, nil
}
