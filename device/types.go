package device

// Ptr is an opaque device address. The zero value is the null pointer.
type Ptr uintptr

// Null is the null device pointer.
const Null Ptr = 0

// Add returns p advanced by off bytes.
func (p Ptr) Add(off int) Ptr {
	return p + Ptr(off)
}

// Dim3 describes grid or block extents.
type Dim3 struct {
	X, Y, Z int
}

// Size returns the total number of elements covered by d.
// Zero Y or Z extents count as 1.
func (d Dim3) Size() int {
	y, z := d.Y, d.Z
	if y == 0 {
		y = 1
	}
	if z == 0 {
		z = 1
	}
	return d.X * y * z
}

// LaunchConfig is the launch geometry of a kernel.
type LaunchConfig struct {
	Grid  Dim3
	Block Dim3

	// SharedFloats is the number of float32 slots of block-local scratch
	// memory visible to every lane of a block.
	SharedFloats int
}

// Lane is one unit of parallel execution inside a launch.
type Lane interface {
	// ThreadIdx is the lane index within its block.
	ThreadIdx() int
	// BlockIdx is the index of the lane's block within the grid.
	BlockIdx() int
	// BlockDim is the number of lanes in the block.
	BlockDim() int

	// Barrier blocks until every lane of the block has reached it.
	// Every lane must call Barrier the same number of times.
	Barrier()

	// Shared returns the block-local scratch memory.
	Shared() []float32

	// Complex64s returns a view of global memory starting at p and
	// extending to the end of the containing allocation.
	Complex64s(p Ptr) []complex64
}

// Kernel is the per-lane entry point of a launch.
type Kernel func(l Lane)

// DeviceInfo describes a compute device.
type DeviceInfo struct {
	Name       string
	Vendor     string
	Driver     string
	MemoryMB   int
	ComputeCap string
	// MaxBlockLanes is the largest supported Block.Size(); 0 means unbounded.
	MaxBlockLanes int
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}
