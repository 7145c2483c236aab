//go:build linux

// Package evdev implements the slice of the Linux kernel's evdev userspace
// API (input.h) that a multi-touch injector needs: opening an event device,
// reading its capability bitmaps and absolute-axis ranges, and writing
// input_event records to it.
//
// [input.h]: https://github.com/torvalds/linux/blob/master/include/uapi/linux/input.h
package evdev
