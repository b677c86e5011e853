package gpufft

import (
	"slices"

	"github.com/google/uuid"
)

// Plan describes a transform: its kind, precision and shape. A plan holds
// no device resources and is immutable once created.
type Plan struct {
	id        string
	transform TransformType
	precision Precision
	lengths   []int
	batch     int
	placement Placement
	destroyed bool
}

// CreatePlan records the transform parameters in a new plan. The shape is
// copied and not validated here; Execute rejects shapes the kernel cannot
// run.
func CreatePlan(transform TransformType, precision Precision, lengths []int, batch int, desc *Description) (*Plan, error) {
	p := &Plan{
		id:        uuid.NewString(),
		transform: transform,
		precision: precision,
		lengths:   slices.Clone(lengths),
		batch:     batch,
	}
	if desc != nil {
		p.placement = desc.Placement
	}

	Logger().Debug("gpufft: plan created",
		"plan", p.id,
		"transform", transform,
		"precision", precision,
		"lengths", p.lengths,
		"batch", batch,
		"placement", p.placement,
	)

	return p, nil
}

// Destroy releases the plan. Destroying a plan twice is a no-op.
func (p *Plan) Destroy() error {
	if p == nil || p.destroyed {
		return nil
	}
	p.destroyed = true
	p.lengths = nil
	Logger().Debug("gpufft: plan destroyed", "plan", p.id)
	return nil
}

// ID returns an identifier for log correlation.
func (p *Plan) ID() string {
	if p == nil {
		return ""
	}
	return p.id
}

// Rank returns the number of dimensions.
func (p *Plan) Rank() int {
	if p == nil {
		return 0
	}
	return len(p.lengths)
}

// Lengths returns a copy of the per-dimension lengths.
func (p *Plan) Lengths() []int {
	if p == nil {
		return nil
	}
	return slices.Clone(p.lengths)
}

// Batch returns the number of transforms per launch.
func (p *Plan) Batch() int {
	if p == nil {
		return 0
	}
	return p.batch
}

// Transform returns the transform type.
func (p *Plan) Transform() TransformType {
	if p == nil {
		return TransformComplexForward
	}
	return p.transform
}

// Precision returns the plan precision.
func (p *Plan) Precision() Precision {
	if p == nil {
		return PrecisionSingle
	}
	return p.precision
}

// Placement returns where Execute writes results.
func (p *Plan) Placement() Placement {
	if p == nil {
		return PlacementInPlace
	}
	return p.placement
}

// Destroyed reports whether Destroy was called.
func (p *Plan) Destroyed() bool {
	return p == nil || p.destroyed
}
