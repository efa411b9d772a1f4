//go:build linux || dragonfly || freebsd || netbsd || openbsd

package ioctl

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// invokeIoctl issues the raw syscall. The -1 failure return from the C
// level surfaces here as a nonzero errno.
func invokeIoctl(fd, code, arg uintptr) (uintptr, syscall.Errno) {
	res, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, code, arg)
	return res, errno
}
