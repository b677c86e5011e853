package gpufft

import (
	"fmt"

	"github.com/cwbudde/algo-gpufft/device"
)

// Runtime binds the API to one device. Every allocation, copy and launch
// goes through the injected device; nothing reads ambient device state.
type Runtime struct {
	dev   device.Device
	owned bool
}

// NewRuntime returns a runtime on dev. Closing the runtime leaves dev open.
func NewRuntime(dev device.Device) *Runtime {
	return &Runtime{dev: dev}
}

// OpenRuntime opens device deviceIndex of the registered backend. The
// runtime owns the device and closes it on Close.
func OpenRuntime(deviceIndex int) (*Runtime, error) {
	dev, err := device.Open(deviceIndex)
	if err != nil {
		return nil, fmt.Errorf("open device %d: %w", deviceIndex, err)
	}
	Logger().Debug("gpufft: device opened", "index", deviceIndex, "name", dev.Info().Name)
	return &Runtime{dev: dev, owned: true}, nil
}

// Device returns the runtime's device.
func (r *Runtime) Device() device.Device {
	if r == nil {
		return nil
	}
	return r.dev
}

// Close releases the device if the runtime opened it.
func (r *Runtime) Close() error {
	if r == nil || r.dev == nil {
		return nil
	}
	dev := r.dev
	r.dev = nil
	if !r.owned {
		return nil
	}
	return dev.Close()
}

func (r *Runtime) check() error {
	if r == nil || r.dev == nil {
		return ErrNilDevice
	}
	return nil
}
