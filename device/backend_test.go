package device

import (
	"errors"
	"testing"
)

type stubBackend struct {
	available bool
}

func (b *stubBackend) Info() BackendInfo {
	return BackendInfo{Name: "stub", Version: "test"}
}

func (b *stubBackend) Available() bool { return b.available }

func (b *stubBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{{Name: "StubDevice"}}, nil
}

func (b *stubBackend) Open(deviceIndex int) (Device, error) {
	if deviceIndex != 0 {
		return nil, ErrDeviceIndex
	}
	return nil, nil
}

func TestRegistryNoBackend(t *testing.T) {
	RegisterBackend(nil)

	if _, ok := CurrentBackendInfo(); ok {
		t.Fatal("CurrentBackendInfo reported a backend after clearing")
	}
	if _, err := Open(0); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("Open: got %v, want ErrNoBackend", err)
	}
	if _, err := Devices(); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("Devices: got %v, want ErrNoBackend", err)
	}
}

func TestRegistryUnavailableBackend(t *testing.T) {
	RegisterBackend(&stubBackend{available: false})
	defer RegisterBackend(nil)

	info, ok := CurrentBackendInfo()
	if !ok || info.Name != "stub" {
		t.Fatalf("CurrentBackendInfo = %+v, %v", info, ok)
	}
	if _, err := Open(0); !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("Open: got %v, want ErrBackendUnavailable", err)
	}
}

func TestRegistryOpenForwardsIndex(t *testing.T) {
	RegisterBackend(&stubBackend{available: true})
	defer RegisterBackend(nil)

	devices, err := Devices()
	if err != nil {
		t.Fatalf("Devices: %v", err)
	}
	if len(devices) != 1 || devices[0].Name != "StubDevice" {
		t.Fatalf("Devices = %+v", devices)
	}
	if _, err := Open(3); !errors.Is(err, ErrDeviceIndex) {
		t.Fatalf("Open(3): got %v, want ErrDeviceIndex", err)
	}
}

func TestDim3Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Dim3
		want int
	}{
		{Dim3{X: 4}, 4},
		{Dim3{X: 4, Y: 2}, 8},
		{Dim3{X: 2, Y: 3, Z: 4}, 24},
		{Dim3{}, 0},
	}
	for _, tc := range tests {
		if got := tc.d.Size(); got != tc.want {
			t.Errorf("%+v.Size() = %d, want %d", tc.d, got, tc.want)
		}
	}
}
