//go:build linux

// Package ioctl builds Linux ioctl request codes. Issuing the resulting
// codes against a file descriptor is left to callers (see
// evdev.ioctlGet), since the syscall site is small enough to live next
// to the domain code that calls it.
//
// From [ioctl.h]:
//
// ioctl command encoding: 32 bits total, command in lower 16 bits,
// size of the parameter structure in the lower 14 bits of the
// upper 16 bits. Encoding the size of the parameter structure in the
// ioctl request is useful for catching programs compiled with old
// versions and to avoid overwriting user space outside the user
// buffer area. The highest 2 bits are reserved for indicating the
// "access mode".
//
// [ioctl.h]: https://github.com/torvalds/linux/blob/master/include/uapi/asm-generic/ioctl.h
package ioctl
