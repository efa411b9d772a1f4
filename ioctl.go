package ioctl

// The Go equivalents of the _IO* request code macros from the kernel's
// uapi headers, plus the typed command kinds they return.

import (
	"fmt"
	"unsafe"
)

// Cmd is satisfied by every command kind and exposes the packed request
// code. The accessor exists because syscall interfaces differ in the word
// width they want the code in, so callers sometimes need the raw value.
type Cmd interface {
	// Code returns the packed 32-bit request code.
	Code() uint32
}

// Int constrains the integer types that can be passed directly in the
// argument word of the ioctl syscall instead of by address.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Request is an ioctl command that takes no argument. It is a small
// immutable value and can be copied and shared freely.
//
// Some drivers declare a command without an argument but still read a
// direct integer from the argument word (KVM_CREATE_VM is the classic
// case); re-mark those with AsVal.
type Request struct {
	code uint32
}

// Code returns the packed request code.
func (r Request) Code() uint32 { return r.code }

// PtrRequest is an ioctl command whose argument of type T is passed by
// address: the kernel reads and/or writes through the pointer, per the
// direction encoded in the request code.
type PtrRequest[T any] struct {
	code uint32
}

// Code returns the packed request code.
func (r PtrRequest[T]) Code() uint32 { return r.code }

// ValRequest is an ioctl command whose integer argument is passed directly
// in the argument word instead of by address.
type ValRequest[T Int] struct {
	code uint32
}

// Code returns the packed request code.
func (r ValRequest[T]) Code() uint32 { return r.code }

// ioc validates and packs one request code. dir must be a combination of
// None, Read and Write, and size must fit the platform's size field. Both
// violations panic: an oversized argument or an invented direction cannot
// be encoded on the target platform, so attempting it means the calling
// code itself is wrong, not that there is an error to recover from. When
// commands are declared as package-level variables the panic surfaces
// during initialization, before anything that references them can run.
func ioc(dir Direction, typ, nr uint8, size uintptr) uint32 {
	if dir&^(None|Read|Write) != 0 {
		panic(fmt.Sprintf("ioctl: direction %#x is not a combination of None, Read and Write", uint32(dir)))
	}
	if size > MaxArgSize {
		panic(fmt.Sprintf("ioctl: argument size %d exceeds the platform maximum of %d bytes", size, uintptr(MaxArgSize)))
	}
	return requestCode(dir, typ, nr, size)
}

// IO replicates _IO: a command that neither reads nor writes through an
// argument. Drivers frequently still communicate a result through the
// syscall return value.
func IO(typ, nr uint8) Request {
	return Request{code: ioc(None, typ, nr, 0)}
}

// IOR replicates _IOR: a command that reads data of type T from the
// kernel. A pointer to a T is passed to the syscall and the kernel fills
// the caller's buffer.
//
// Panics if the size of T exceeds the platform's size field; declare
// commands at package scope so this fires during initialization.
func IOR[T any](typ, nr uint8) PtrRequest[T] {
	var v T
	return PtrRequest[T]{code: ioc(Read, typ, nr, unsafe.Sizeof(v))}
}

// IOW replicates _IOW: a command that writes data of type T to the kernel.
// A pointer to a T is passed to the syscall and the kernel reads the
// caller's buffer.
//
// A number of drivers declare commands with _IOW but actually expect the
// value directly in the argument word. That mismatch is inherited from the
// kernel's own headers and cannot be detected here; re-mark such commands
// with AsVal instead of passing a pointer.
//
// Panics if the size of T exceeds the platform's size field; declare
// commands at package scope so this fires during initialization.
func IOW[T any](typ, nr uint8) PtrRequest[T] {
	var v T
	return PtrRequest[T]{code: ioc(Write, typ, nr, unsafe.Sizeof(v))}
}

// IOWR replicates _IOWR: a command whose argument of type T is both read
// and written by the kernel through the pointer.
//
// Panics if the size of T exceeds the platform's size field; declare
// commands at package scope so this fires during initialization.
func IOWR[T any](typ, nr uint8) PtrRequest[T] {
	var v T
	return PtrRequest[T]{code: ioc(ReadWrite, typ, nr, unsafe.Sizeof(v))}
}

// IOC replicates _IOC: the escape hatch that assembles a request code
// manually from its components. It exists for polymorphic commands whose
// argument size is only known at the call site (UI_GET_SYSNAME takes a
// caller-chosen buffer length, for example); prefer IO/IOR/IOW/IOWR when
// the argument type is fixed. Re-mark the result with AsPtr or AsVal to
// attach an argument.
//
// Panics if dir is not a combination of None, Read and Write, or if size
// exceeds the platform's size field.
func IOC(dir Direction, typ, nr uint8, size uintptr) Request {
	return Request{code: ioc(dir, typ, nr, size)}
}

// FromRaw wraps a pre-existing numeric request code, for legacy commands
// that were defined before the dir/type/nr/size scheme existed (FIONREAD
// is 0x541B, for example). No validation of any kind runs; the caller
// asserts the code is correct for the target platform.
func FromRaw(code uint32) Request {
	return Request{code: code}
}

// AsPtr reinterprets the argument of c as a pointer to T while keeping its
// request code. It exists for drivers whose documented argument type is
// simply wrong, which happens often enough to need an auditable way to
// say so.
//
// No size or direction re-validation occurs. The request code still
// encodes whatever c was built with, and the caller takes over the
// obligation that T is what the kernel actually reads or writes.
func AsPtr[T any](c Cmd) PtrRequest[T] {
	return PtrRequest[T]{code: c.Code()}
}

// AsVal reinterprets the argument of c as an integer passed directly in
// the argument word while keeping its request code. Use it for commands
// declared without an argument, or with a pointer argument, that really
// consume the argument word itself:
//
//	// #define KVM_CREATE_VM _IO(KVMIO, 0x01) /* takes the VM type as an int */
//	var kvmCreateVM = ioctl.AsVal[int32](ioctl.IO(0xAE, 0x01))
//
// No re-validation occurs; see AsPtr.
func AsVal[T Int](c Cmd) ValRequest[T] {
	return ValRequest[T]{code: c.Code()}
}
