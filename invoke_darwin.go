//go:build darwin

package ioctl

import "syscall"

// invokeIoctl issues the raw syscall. Darwin routes syscalls through
// libSystem and golang.org/x/sys/unix no longer exposes SYS_IOCTL there,
// so this one platform goes through the standard library's trampoline
// instead.
func invokeIoctl(fd, code, arg uintptr) (uintptr, syscall.Errno) {
	res, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, code, arg)
	return res, errno
}
