//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ioctl

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"
)

// Fd is anything that carries an open file descriptor, most commonly an
// *os.File. The descriptor is only borrowed for the duration of a single
// Exec call; this package never closes or retains it.
type Fd interface {
	Fd() uintptr
}

// sysIoctl is the raw syscall collaborator. It is a variable so tests can
// substitute a fake kernel and capture the exact words passed through; the
// default comes from the per-platform invoke file.
var sysIoctl func(fd, code, arg uintptr) (uintptr, syscall.Errno) = invokeIoctl

// Exec performs an ioctl that takes no argument.
//
// The kernel receives 0 as a placeholder argument word. Some no-argument
// commands fail unless they receive exactly 0 (KVM_GET_API_VERSION), and
// drivers ignore excess arguments otherwise, so passing it unconditionally
// is harmless.
//
// On success the raw integer returned by the syscall is returned; several
// commands communicate their entire result through it. On failure the
// error wraps the platform errno, so errors.Is works against the unix
// error constants.
//
// Exec cannot verify that the request code was assembled correctly or that
// f belongs to the driver the caller intends. Those remain caller
// obligations; see the package documentation.
func (r Request) Exec(f Fd) (int, error) {
	return exec(f, r.code, 0)
}

// Exec performs an ioctl passing arg by address. The kernel reads and/or
// writes through the pointer according to the direction encoded in the
// request code, so arg must reference valid memory of the exact type and
// size the driver expects. Result and error semantics match Request.Exec.
func (r PtrRequest[T]) Exec(f Fd, arg *T) (int, error) {
	// The pointer is flattened to a word for the syscall collaborator;
	// KeepAlive pins the object until the call has returned.
	res, err := exec(f, r.code, uintptr(unsafe.Pointer(arg)))
	runtime.KeepAlive(arg)
	return res, err
}

// Exec performs an ioctl passing arg directly in the argument word.
// Result and error semantics match Request.Exec.
func (r ValRequest[T]) Exec(f Fd, arg T) (int, error) {
	return exec(f, r.code, uintptr(arg))
}

func exec(f Fd, code uint32, arg uintptr) (int, error) {
	res, errno := sysIoctl(f.Fd(), uintptr(code), arg)
	if errno != 0 {
		return 0, fmt.Errorf("ioctl %#08x failed: %w (errno: %d)", code, errno, int(errno))
	}
	return int(res), nil
}
