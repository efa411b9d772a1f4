//go:build linux && !mips && !mipsle && !mips64 && !mips64le && !ppc64 && !ppc64le && !sparc64

package ioctl

// The generic request code layout from the kernel's asm-generic/ioctl.h,
// used by every Linux architecture except the handful that predate it
// (see layout_linux_legacy.go):
//
//	dir:2 | size:14 | type:8 | nr:8
const (
	nrBits   = 8
	typeBits = 8
	sizeBits = 14
	dirBits  = 2

	nrShift   = 0
	typeShift = nrShift + nrBits
	sizeShift = typeShift + typeBits
	dirShift  = sizeShift + sizeBits
)

// The four fields must exactly fill the 32-bit request code.
var _ [32]struct{} = [nrBits + typeBits + sizeBits + dirBits]struct{}{}

// Raw direction values for the generic layout.
const (
	None  Direction = 0
	Write Direction = 1
	Read  Direction = 2

	// ReadWrite is precomputed so command tables can be declared without
	// going through Direction.Or.
	ReadWrite = Read | Write
)

// MaxArgSize is the largest argument size in bytes that fits in the size
// field of a request code on this target.
const MaxArgSize = 1<<sizeBits - 1

// requestCode packs the components into a request code. Validation happens
// in ioc; this is pure bit layout.
func requestCode(dir Direction, typ, nr uint8, size uintptr) uint32 {
	return uint32(dir)<<dirShift | uint32(size)<<sizeShift | uint32(typ)<<typeShift | uint32(nr)<<nrShift
}
