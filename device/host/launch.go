package host

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-gpufft/device"
)

// Launch runs k over cfg. Blocks execute one after another; the lanes of a
// block run concurrently and synchronize only through Barrier.
func (d *Device) Launch(k device.Kernel, cfg device.LaunchConfig) error {
	if err := d.checkOpen(); err != nil {
		return err
	}
	if k == nil {
		return fmt.Errorf("nil kernel: %w", device.ErrInvalidLaunch)
	}

	blocks, lanes := cfg.Grid.Size(), cfg.Block.Size()
	if blocks < 1 || lanes < 1 || cfg.SharedFloats < 0 {
		return fmt.Errorf("grid %+v block %+v shared %d: %w",
			cfg.Grid, cfg.Block, cfg.SharedFloats, device.ErrInvalidLaunch)
	}
	if d.cfg.maxBlockLanes > 0 && lanes > d.cfg.maxBlockLanes {
		return fmt.Errorf("block of %d lanes exceeds %d: %w",
			lanes, d.cfg.maxBlockLanes, device.ErrInvalidLaunch)
	}

	d.launchMu.Lock()
	defer d.launchMu.Unlock()

	d.cfg.logger.Debug("host: launch", "blocks", blocks, "lanes", lanes, "shared", cfg.SharedFloats)

	for blk := range blocks {
		crossings, err := d.runBlock(k, blk, lanes, cfg.SharedFloats)
		if err != nil {
			return fmt.Errorf("block %d: %w", blk, err)
		}
		d.cfg.logger.Debug("host: block done", "block", blk, "barriers", crossings)
	}
	return nil
}

func (d *Device) runBlock(k device.Kernel, blk, lanes, shared int) (uint64, error) {
	blockState := &block{
		dev:     d,
		index:   blk,
		dim:     lanes,
		shared:  make([]float32, shared),
		barrier: newBarrier(lanes),
	}

	var wg sync.WaitGroup
	wg.Add(lanes)
	for i := range lanes {
		go func() {
			defer wg.Done()
			blockState.runLane(k, i)
		}()
	}
	wg.Wait()

	return blockState.barrier.result()
}

// block is the state shared by the lanes of one block.
type block struct {
	dev     *Device
	index   int
	dim     int
	shared  []float32
	barrier *barrier
}

func (b *block) runLane(k device.Kernel, idx int) {
	defer b.barrier.leave()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(errBroken); ok {
			return
		}
		b.barrier.abort(fmt.Errorf("lane %d: %v: %w", idx, r, device.ErrLaneFault))
	}()

	k(&lane{block: b, idx: idx})
}

// lane implements device.Lane.
type lane struct {
	block *block
	idx   int
}

func (l *lane) ThreadIdx() int    { return l.idx }
func (l *lane) BlockIdx() int     { return l.block.index }
func (l *lane) BlockDim() int     { return l.block.dim }
func (l *lane) Barrier()          { l.block.barrier.await() }
func (l *lane) Shared() []float32 { return l.block.shared }

// Complex64s panics on an invalid pointer; the panic becomes a lane fault.
func (l *lane) Complex64s(p device.Ptr) []complex64 {
	if uintptr(p)%unsafe.Alignof(complex64(0)) != 0 {
		panic(fmt.Sprintf("misaligned complex64 pointer %#x", uintptr(p)))
	}
	b, err := l.block.dev.mem.tail(p)
	if err != nil {
		panic(err)
	}
	n := len(b) / device.Complex64Size
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*complex64)(unsafe.Pointer(&b[0])), n)
}
