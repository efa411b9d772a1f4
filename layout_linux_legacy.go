//go:build linux && (mips || mipsle || mips64 || mips64le || ppc64 || ppc64le || sparc64)

package ioctl

// MIPS, PowerPC and SPARC kept their historical encoding instead of
// adopting the generic one: a 13-bit size field, three direction bits, and
// a nonzero "none" value (see e.g. arch/powerpc/include/uapi/asm/ioctl.h):
//
//	dir:3 | size:13 | type:8 | nr:8
const (
	nrBits   = 8
	typeBits = 8
	sizeBits = 13
	dirBits  = 3

	nrShift   = 0
	typeShift = nrShift + nrBits
	sizeShift = typeShift + typeBits
	dirShift  = sizeShift + sizeBits
)

// The four fields must exactly fill the 32-bit request code.
var _ [32]struct{} = [nrBits + typeBits + sizeBits + dirBits]struct{}{}

// Raw direction values for the legacy layout. None being nonzero here is
// the reason Direction.Or refuses to mix it with read/write.
const (
	None  Direction = 1
	Read  Direction = 2
	Write Direction = 4

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
