package ioctl

import (
	"syscall"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFd uintptr

func (f fakeFd) Fd() uintptr { return uintptr(f) }

// capturedCall records what reached the fake kernel.
type capturedCall struct {
	fd, code, arg uintptr
}

// fakeKernel substitutes the syscall collaborator for the duration of a
// test and returns a pointer to the words captured by the last call.
func fakeKernel(t *testing.T, res uintptr, errno syscall.Errno) *capturedCall {
	t.Helper()
	captured := &capturedCall{}
	prev := sysIoctl
	sysIoctl = func(fd, code, arg uintptr) (uintptr, syscall.Errno) {
		*captured = capturedCall{fd: fd, code: code, arg: arg}
		return res, errno
	}
	t.Cleanup(func() { sysIoctl = prev })
	return captured
}

func TestExecNoArgPassesZeroPlaceholder(t *testing.T) {
	captured := fakeKernel(t, 0, 0)

	cmd := IO('t', 1)
	_, err := cmd.Exec(fakeFd(7))
	require.NoError(t, err)

	assert.Equal(t, uintptr(7), captured.fd)
	assert.Equal(t, uintptr(cmd.Code()), captured.code)
	// A no-argument command must never dereference anything: the kernel
	// sees exactly the zero placeholder.
	assert.Equal(t, uintptr(0), captured.arg)
}

func TestExecPtrPassesAddressUnchanged(t *testing.T) {
	captured := fakeKernel(t, 0, 0)

	cmd := IOR[int32]('t', 2)
	arg := new(int32)
	_, err := cmd.Exec(fakeFd(3), arg)
	require.NoError(t, err)

	assert.Equal(t, uintptr(unsafe.Pointer(arg)), captured.arg, "the address must reach the kernel unmodified")
}

func TestExecValPassesValueDirectly(t *testing.T) {
	captured := fakeKernel(t, 0, 0)

	cmd := AsVal[int32](IO('t', 3))
	_, err := cmd.Exec(fakeFd(3), 42)
	require.NoError(t, err)

	assert.Equal(t, uintptr(42), captured.arg)
}

func TestExecReturnsSyscallResult(t *testing.T) {
	// Commands like KVM_GET_API_VERSION answer exclusively through the
	// return value.
	fakeKernel(t, 12, 0)

	res, err := IO('t', 4).Exec(fakeFd(1))
	require.NoError(t, err)
	assert.Equal(t, 12, res)
}

func TestExecSurfacesErrno(t *testing.T) {
	fakeKernel(t, 0, syscall.ENOTTY)

	res, err := IO('t', 5).Exec(fakeFd(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.ENOTTY, "the platform error code must stay reachable for callers")
	assert.Zero(t, res)
}

func TestExecFromRawLegacyCode(t *testing.T) {
	captured := fakeKernel(t, 0, 0)

	// FIONREAD, defined long before the layout scheme existed.
	legacy := AsPtr[int32](FromRaw(0x541B))
	pending := new(int32)
	_, err := legacy.Exec(fakeFd(0), pending)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x541B), captured.code)
}
