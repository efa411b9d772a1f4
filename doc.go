// Package ioctl builds the request codes passed to the ioctl(2) system call
// and pairs each code with the static type of its argument, so a call site
// cannot accidentally hand the wrong kind of data to a device driver.
//
// Request codes pack a direction, a driver type/group byte, a command number
// and the argument size into a single 32-bit word. The exact bit layout
// differs between Linux architectures and again on the BSD family; the
// right layout is selected at build time and never revisited at runtime.
//
// Commands are normally declared once as package-level variables using the
// constructors named after the C macros they replicate:
//
//	// From linux/videodev2.h:
//	//   #define VIDIOC_QUERYCAP _IOR('V', 0, struct v4l2_capability)
//	type v4l2Capability struct {
//		Driver       [16]byte
//		Card         [32]byte
//		BusInfo      [32]byte
//		Version      uint32
//		Capabilities uint32
//		DeviceCaps   uint32
//		Reserved     [3]uint32
//	}
//
//	var vidiocQuerycap = ioctl.IOR[v4l2Capability]('V', 0)
//
//	func queryCap(dev *os.File) (v4l2Capability, error) {
//		var caps v4l2Capability
//		_, err := vidiocQuerycap.Exec(dev, &caps)
//		return caps, err
//	}
//
// Declaring commands as package-level variables matters: the constructors
// verify the argument type fits the platform's size field and panic if it
// does not, and at package scope that panic fires during initialization,
// before any code that could reference the broken command runs.
//
// General notes on safety:
//
// This package can guarantee a request code is well formed, but not that it
// means what the caller thinks it means. Whether the driver behind a file
// descriptor actually implements the command, whether its documented
// argument type is the one it really reads or writes, and whether a pointer
// argument references enough valid memory are all caller obligations, the
// same as when binding any foreign C function. Driver documentation is
// wrong often enough that the explicit re-marking helpers (AsPtr, AsVal)
// exist for exactly that case.
package ioctl
