// Package device describes the compute device that gpufft launches its
// kernels on.
//
// The package only defines capabilities: memory allocation, host/device
// copies and kernel launch. Concrete devices are provided by backends that
// register themselves at runtime (see the host subpackage for a software
// device that simulates lock-step lanes on goroutines).
package device
