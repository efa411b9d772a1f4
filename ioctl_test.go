package ioctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Argument types sitting exactly on and just past the platform size limit.
type maxSizedArg struct {
	_ [MaxArgSize]byte
}

type oversizedArg struct {
	_ [MaxArgSize + 1]byte
}

func TestConstructorsAcceptMaximumArgumentSize(t *testing.T) {
	assert.NotPanics(t, func() { IOR[maxSizedArg]('t', 1) })
	assert.NotPanics(t, func() { IOW[maxSizedArg]('t', 2) })
	assert.NotPanics(t, func() { IOWR[maxSizedArg]('t', 3) })
	assert.NotPanics(t, func() { IOC(Read, 't', 4, MaxArgSize) })
}

func TestConstructorsRejectOversizedArguments(t *testing.T) {
	assert.Panics(t, func() { IOR[oversizedArg]('t', 1) })
	assert.Panics(t, func() { IOW[oversizedArg]('t', 2) })
	assert.Panics(t, func() { IOWR[oversizedArg]('t', 3) })
	// The dynamic-size escape hatch enforces the same limit at the call
	// site.
	assert.Panics(t, func() { IOC(Read, 't', 4, MaxArgSize+1) })
}

func TestIOCRejectsInventedDirections(t *testing.T) {
	// 1<<28 is outside the direction field on every supported layout.
	assert.Panics(t, func() { IOC(Direction(1<<28), 't', 0, 0) })
}

func TestFromRawBypassesAllValidation(t *testing.T) {
	// Legacy codes predate the dir/type/nr/size scheme, so nothing about
	// them can be checked; any 32-bit pattern must be accepted verbatim.
	for _, code := range []uint32{0, 0x541B /* FIONREAD */, 0xFFFFFFFF} {
		var r Request
		assert.NotPanics(t, func() { r = FromRaw(code) })
		assert.Equal(t, code, r.Code())
	}
}

func TestReMarkingPreservesTheCode(t *testing.T) {
	orig := IO('t', 9)
	assert.Equal(t, orig.Code(), AsVal[int32](orig).Code())
	assert.Equal(t, orig.Code(), AsPtr[uint64](orig).Code())

	ptr := IOW[uint64]('t', 10)
	assert.Equal(t, ptr.Code(), AsVal[uint64](ptr).Code())
	assert.Equal(t, ptr.Code(), AsPtr[uint32](ptr).Code(), "changing the declared type must not touch the encoded size")
}

func TestPointerConstructorsEncodeDeclaredDirection(t *testing.T) {
	// All three pointer constructors of the same type/nr/size may only
	// differ in the direction field.
	r := IOR[uint64]('t', 11).Code()
	w := IOW[uint64]('t', 11).Code()
	rw := IOWR[uint64]('t', 11).Code()
	assert.NotEqual(t, r, w)
	// The direction bits are disjoint and every other field is identical,
	// so the read-write code is exactly the union.
	assert.Equal(t, r|w, rw)
	assert.Equal(t, IOC(ReadWrite, 't', 11, 8).Code(), rw, "IOWR must match the manually assembled read+write code")
}
