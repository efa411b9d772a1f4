//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package ioctl

// The fixed BSD layout from sys/ioccom.h. Unlike Linux it does not vary by
// architecture: the direction is one of three fixed high-order bit
// patterns, the size field is 13 bits, and type/nr are called group/num:
//
//	dir (high bits) | size:13 | group:8 | num:8
const (
	sizeBits = 13 // IOCPARM_SHIFT

	nrShift   = 0
	typeShift = 8
	sizeShift = 16
)

// Raw direction values for the BSD layout. None (IOC_VOID) is a nonzero
// bit pattern, which is the reason Direction.Or refuses to mix it with
// read/write.
const (
	None  Direction = 0x20000000 // IOC_VOID
	Read  Direction = 0x40000000 // IOC_OUT: kernel writes to user space
	Write Direction = 0x80000000 // IOC_IN: kernel reads from user space

	ReadWrite = Read | Write // IOC_INOUT
)

// MaxArgSize is the largest argument size in bytes that fits in the size
// field of a request code on this target.
const MaxArgSize = 1<<sizeBits - 1

// requestCode packs the components into a request code. Validation happens
// in ioc; this is pure bit layout.
func requestCode(dir Direction, typ, nr uint8, size uintptr) uint32 {
	return uint32(dir) | uint32(size)<<sizeShift | uint32(typ)<<typeShift | uint32(nr)<<nrShift
}

// IOWInt replicates the BSD-only _IOWINT macro: an ioctl that takes a plain
// int directly in the argument word rather than by address. From the
// caller's point of view this writes an int to the kernel, but the headers
// encode it with the void direction bit, not IOC_IN, and put sizeof(int)
// in the size field; the kernel only accepts that encoding, so the handle
// carries it verbatim.
func IOWInt(group, num uint8) ValRequest[int32] {
	return ValRequest[int32]{code: ioc(None, group, num, 4)}
}
