//go:build hip

package device

// HIPBackend is a stub backend enabled with the "hip" build tag.
// It does not provide a working implementation yet.
type HIPBackend struct{}

func (b *HIPBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "hip",
		Version:     "stub",
		Description: "HIP backend stub (no implementation)",
	}
}

func (b *HIPBackend) Available() bool {
	return false
}

func (b *HIPBackend) Devices() ([]DeviceInfo, error) {
	return nil, ErrBackendUnavailable
}

func (b *HIPBackend) Open(_ int) (Device, error) {
	return nil, ErrBackendUnavailable
}

// RegisterHIPBackend registers the HIP backend stub.
func RegisterHIPBackend() {
	RegisterBackend(&HIPBackend{})
}
