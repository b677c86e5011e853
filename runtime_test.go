package gpufft

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-gpufft/device"
	"github.com/cwbudde/algo-gpufft/device/host"
)

func TestOpenRuntimeFromRegistry(t *testing.T) {
	host.RegisterBackend()
	defer device.RegisterBackend(nil)

	rt, err := OpenRuntime(0)
	if err != nil {
		t.Fatalf("OpenRuntime: %v", err)
	}

	dev := rt.Device()
	if dev == nil || dev.Info().Driver != "host" {
		t.Fatalf("Device() = %v", dev)
	}
	if err := rt.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// The runtime owned the device, so it is closed now.
	if _, err := dev.Malloc(8); !errors.Is(err, device.ErrClosed) {
		t.Fatalf("Malloc after Close: got %v, want ErrClosed", err)
	}
}

func TestOpenRuntimeNoBackend(t *testing.T) {
	device.RegisterBackend(nil)

	if _, err := OpenRuntime(0); !errors.Is(err, device.ErrNoBackend) {
		t.Fatalf("got %v, want ErrNoBackend", err)
	}
}

func TestNewRuntimeBorrowsDevice(t *testing.T) {
	dev := host.New()
	rt := NewRuntime(dev)
	if err := rt.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := dev.Malloc(8); err != nil {
		t.Fatalf("borrowed device closed by runtime: %v", err)
	}
	if _, err := rt.CreateBuffer(ElementComplexSingle, 1); !errors.Is(err, ErrNilDevice) {
		t.Fatalf("CreateBuffer after Close: got %v, want ErrNilDevice", err)
	}
}
