// Package host provides a software-simulated compute device.
//
// Device memory lives in Go byte slices and every lane of a launch runs on
// its own goroutine. Lanes of a block share a scratch plane and a cyclic
// barrier, so kernels written against device.Lane execute with the same
// synchronization contract they would have on real hardware.
package host

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cwbudde/algo-gpufft/device"
	"github.com/cwbudde/algo-gpufft/internal/cpu"
)

// DefaultMaxBlockLanes bounds the lanes of one block.
const DefaultMaxBlockLanes = 1024

// Option configures a Device.
type Option func(*config)

type config struct {
	memoryLimit   int
	maxBlockLanes int
	logger        *slog.Logger
}

// WithMemoryLimit caps the bytes that may be allocated at once.
// Zero or negative means unlimited.
func WithMemoryLimit(bytes int) Option {
	return func(c *config) { c.memoryLimit = bytes }
}

// WithMaxBlockLanes overrides DefaultMaxBlockLanes.
func WithMaxBlockLanes(n int) Option {
	return func(c *config) { c.maxBlockLanes = n }
}

// WithLogger sets the logger used for allocation and launch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Backend is a device.Backend exposing a single simulated device.
type Backend struct {
	opts []Option
}

// NewBackend returns a backend whose device is created with opts.
func NewBackend(opts ...Option) *Backend {
	return &Backend{opts: opts}
}

// RegisterBackend registers a host backend as the active backend.
func RegisterBackend(opts ...Option) {
	device.RegisterBackend(NewBackend(opts...))
}

func (b *Backend) Info() device.BackendInfo {
	return device.BackendInfo{
		Name:        "host",
		Version:     "0.1",
		Description: "goroutine-simulated lock-step device",
	}
}

func (b *Backend) Available() bool {
	return true
}

func (b *Backend) Devices() ([]device.DeviceInfo, error) {
	return []device.DeviceInfo{deviceInfo(newConfig(b.opts))}, nil
}

func (b *Backend) Open(deviceIndex int) (device.Device, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("host backend: device %d: %w", deviceIndex, device.ErrDeviceIndex)
	}
	return New(b.opts...), nil
}

// Device is a simulated device. It is safe for concurrent use; launches are
// serialized.
type Device struct {
	cfg  config
	info device.DeviceInfo
	mem  *arena

	launchMu sync.Mutex
	closed   bool
	mu       sync.Mutex
}

// New creates a simulated device.
func New(opts ...Option) *Device {
	cfg := newConfig(opts)
	return &Device{
		cfg:  cfg,
		info: deviceInfo(cfg),
		mem:  newArena(cfg.memoryLimit),
	}
}

func newConfig(opts []Option) config {
	cfg := config{maxBlockLanes: DefaultMaxBlockLanes}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

func deviceInfo(cfg config) device.DeviceInfo {
	return device.DeviceInfo{
		Name:          "HostSim",
		Vendor:        "algo-gpufft",
		Driver:        "host",
		MemoryMB:      cfg.memoryLimit >> 20,
		ComputeCap:    cpu.DetectFeatures().String(),
		MaxBlockLanes: cfg.maxBlockLanes,
	}
}

func (d *Device) Info() device.DeviceInfo {
	return d.info
}

func (d *Device) Malloc(size int) (device.Ptr, error) {
	if err := d.checkOpen(); err != nil {
		return device.Null, err
	}
	p, err := d.mem.alloc(size)
	if err != nil {
		d.cfg.logger.Debug("host: malloc failed", "size", size, "err", err)
		return device.Null, err
	}
	d.cfg.logger.Debug("host: malloc", "ptr", fmt.Sprintf("%#x", uintptr(p)), "size", size)
	return p, nil
}

func (d *Device) Free(p device.Ptr) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if err := d.mem.free(p); err != nil {
		return err
	}
	d.cfg.logger.Debug("host: free", "ptr", fmt.Sprintf("%#x", uintptr(p)))
	return nil
}

func (d *Device) Upload(dst device.Ptr, src []byte) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	view, err := d.mem.bytes(dst, len(src))
	if err != nil {
		return err
	}
	copy(view, src)
	return nil
}

func (d *Device) Download(dst []byte, src device.Ptr) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	view, err := d.mem.bytes(src, len(dst))
	if err != nil {
		return err
	}
	copy(dst, view)
	return nil
}

// Allocated reports the number of bytes currently allocated.
func (d *Device) Allocated() int {
	return d.mem.inUse()
}

// Allocations reports the number of live allocations.
func (d *Device) Allocations() int {
	return d.mem.count()
}

// Close releases all device memory. Further calls fail with device.ErrClosed.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	d.mem.reset()
	return nil
}

func (d *Device) checkOpen() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return device.ErrClosed
	}
	return nil
}
