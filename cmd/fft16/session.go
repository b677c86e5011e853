package main

import (
	"errors"
	"fmt"

	gpufft "github.com/cwbudde/algo-gpufft"
)

// session holds one plan and its device buffers for repeated transforms.
type session struct {
	rt      *gpufft.Runtime
	plan    *gpufft.Plan
	in, out *gpufft.Buffer
	trace   gpufft.LaunchTrace
}

func newSession(rt *gpufft.Runtime, placement gpufft.Placement) (*session, error) {
	plan, err := gpufft.CreatePlan(gpufft.TransformComplexForward, gpufft.PrecisionSingle,
		[]int{gpufft.FFTLength}, 1, &gpufft.Description{Placement: placement})
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	s := &session{rt: rt, plan: plan}

	if s.in, err = rt.CreateBuffer(gpufft.ElementComplexSingle, gpufft.FFTLength); err != nil {
		_ = s.close()
		return nil, fmt.Errorf("create input buffer: %w", err)
	}
	s.out = s.in
	if placement == gpufft.PlacementNotInPlace {
		if s.out, err = rt.CreateBuffer(gpufft.ElementComplexSingle, gpufft.FFTLength); err != nil {
			_ = s.close()
			return nil, fmt.Errorf("create output buffer: %w", err)
		}
	}
	return s, nil
}

func (s *session) upload(samples []complex64) error {
	return s.in.Upload(samples)
}

// execute runs the plan on the uploaded input.
func (s *session) execute() error {
	return s.rt.Execute(s.plan, []*gpufft.Buffer{s.in}, []*gpufft.Buffer{s.out},
		&gpufft.ExecutionInfo{Trace: &s.trace})
}

func (s *session) spectrum() ([]complex64, error) {
	out := make([]complex64, gpufft.FFTLength)
	if err := s.out.Download(out); err != nil {
		return nil, err
	}
	return out, nil
}

// transform uploads samples, executes and downloads the spectrum.
func (s *session) transform(samples []complex64) ([]complex64, error) {
	if err := s.upload(samples); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if err := s.execute(); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	return s.spectrum()
}

func (s *session) close() error {
	var errs []error
	if s.out != nil && s.out != s.in {
		errs = append(errs, s.out.Destroy())
	}
	if s.in != nil {
		errs = append(errs, s.in.Destroy())
	}
	errs = append(errs, s.plan.Destroy())
	return errors.Join(errs...)
}
