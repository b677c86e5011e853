// Package gpufft runs a single-precision, complex-to-complex forward DFT of
// length 16 on a compute device.
//
// The API follows the three-object shape of GPU FFT libraries: a Plan
// describes the transform, Buffers own or borrow device memory, and
// Runtime.Execute launches the kernel. The device itself is injected
// (see package device); package device/host provides a simulated device
// that runs the kernel's lanes on goroutines.
//
//	dev := host.New()
//	rt := gpufft.NewRuntime(dev)
//
//	plan, _ := gpufft.CreatePlan(gpufft.TransformComplexForward, gpufft.PrecisionSingle,
//		[]int{16}, 1, nil)
//	defer plan.Destroy()
//
//	buf, _ := rt.CreateBuffer(gpufft.ElementComplexSingle, 16)
//	defer buf.Destroy()
//
//	_ = buf.Upload(samples)
//	_ = rt.Execute(plan, []*gpufft.Buffer{buf}, nil, nil)
//	_ = buf.Download(spectrum)
package gpufft
