package host

import (
	"sync"

	"github.com/cwbudde/algo-gpufft/device"
)

// barrier is a cyclic all-arrive-before-any-proceed barrier for the lanes
// of one block. Lanes that finish are tracked so that a block whose lanes
// diverge around a barrier fails instead of deadlocking.
type barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	waiting    int
	exited     int
	generation uint64
	err        error
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// await blocks until all parties have arrived. It panics with errBroken when
// the barrier was broken while waiting; the lane runner swallows that panic.
func (b *barrier) await() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		panic(errBroken{})
	}

	gen := b.generation
	b.waiting++

	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return
	}

	// Some lanes already returned and can never arrive.
	if b.waiting+b.exited == b.parties {
		b.breakLocked(device.ErrBarrierDivergence)
		panic(errBroken{})
	}

	for gen == b.generation && b.err == nil {
		b.cond.Wait()
	}
	if gen == b.generation {
		panic(errBroken{})
	}
}

// leave records that a lane has returned from the kernel.
func (b *barrier) leave() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.exited++
	if b.waiting > 0 && b.waiting+b.exited == b.parties {
		b.breakLocked(device.ErrBarrierDivergence)
	}
}

// abort breaks the barrier with err and wakes every waiter.
func (b *barrier) abort(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.breakLocked(err)
}

func (b *barrier) breakLocked(err error) {
	if b.err == nil {
		b.err = err
	}
	b.cond.Broadcast()
}

func (b *barrier) result() (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation, b.err
}

// errBroken unwinds a lane blocked on a broken barrier.
type errBroken struct{}
