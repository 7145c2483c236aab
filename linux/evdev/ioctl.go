//go:build linux

package evdev

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctlGet issues an EVIOCG* request against fd, reading the kernel's
// response into *arg. Every capability query in this package (Name,
// HasEventCode, HasProperty, Abs) funnels through this one syscall site.
func ioctlGet[T any](fd uintptr, req uint, arg *T) error {
	var errno syscall.Errno

	_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), uintptr(unsafe.Pointer(arg)))
	if errno != 0 {
		return errno
	}

	return nil
}
