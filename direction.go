package ioctl

import "fmt"

// Direction describes how an ioctl moves data through its argument: from the
// kernel to user space (Read), from user space to the kernel (Write), both,
// or not at all (None).
//
// The raw values are platform specific and come from the layout selected for
// the build target. Notably None is NOT the all-zero bit pattern on every
// platform, which is why combining directions must go through Or instead of
// a bare bitwise OR.
type Direction uint32

// Or returns the union of two directions, for ioctls that both read and
// write through their argument. ReadWrite is provided precomputed for the
// common case.
//
// Combining None with a read or write direction panics. On platforms where
// None is a nonzero value the bitwise union would silently encode a request
// code no driver recognizes, so the mix is treated as a bug in the calling
// code rather than something to encode and let the kernel reject later.
func (d Direction) Or(other Direction) Direction {
	if (d == None) != (other == None) {
		panic(fmt.Sprintf("ioctl: combining direction %#x with %#x mixes the none direction with read/write and would produce a meaningless request code", uint32(d), uint32(other)))
	}
	return d | other
}
