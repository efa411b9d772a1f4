//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package ioctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Codes below are the published values from sys/filio.h, sys/ttycom.h and
// dev/filemon/filemon.h, so these pin the exact bit layout rather than
// comparing the codec against itself.
func TestBSDLayoutMatchesPublishedCodes(t *testing.T) {
	// #define FIOSETOWN _IOW('f', 124, int)
	// = IOC_IN | 4<<16 | 'f'<<8 | 124
	assert.Equal(t, uint32(0x8004667c), IOW[int32]('f', 124).Code())

	// #define FIONREAD _IOR('f', 127, int)
	assert.Equal(t, uint32(0x4004667f), IOR[int32]('f', 127).Code())

	// #define TIOCEXCL _IO('t', 13)
	assert.Equal(t, uint32(0x2000740d), IO('t', 13).Code())

	// #define FILEMON_SET_FD _IOWINT('S', 0)
	// _IOWINT carries the void direction with sizeof(int) in the size
	// field even though the caller passes the int directly.
	assert.Equal(t, uint32(0x20045300), IOWInt('S', 0).Code())
	assert.Equal(t, IOC(None, 'S', 0, 4).Code(), IOWInt('S', 0).Code())
}

func TestBSDLayoutFieldPlacement(t *testing.T) {
	code := IOC(Write, 0xAB, 0xCD, 0x123).Code()
	assert.Equal(t, uint32(0xCD), code&0xFF, "num occupies the low byte")
	assert.Equal(t, uint32(0xAB), code>>8&0xFF, "group occupies bits 8-15")
	assert.Equal(t, uint32(0x123), code>>16&0x1FFF, "size occupies bits 16-28")
	assert.Equal(t, uint32(Write), code&0xE0000000, "direction occupies the fixed high bits")
}
