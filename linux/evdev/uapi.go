//go:build linux

package evdev

import (
	"syscall"

	"github.com/inputkit/minitouch/linux/ioctl"
)

const (
	// EV_SYN is the event type for synchronization markers.
	EV_SYN = 0x00

	// EV_KEY is the event type for keys and buttons.
	EV_KEY = 0x01

	// EV_ABS is the event type for absolute axis values.
	EV_ABS = 0x03

	// EV_MAX is the highest defined event type code.
	EV_MAX = 0x1f

	// EV_CNT is the total number of event types.
	EV_CNT = EV_MAX + 1
)

const (
	// SYN_REPORT marks the end of a batch of input events.
	SYN_REPORT = 0x00

	// SYN_MT_REPORT separates per-contact reports in the Type-A
	// multi-touch protocol.
	SYN_MT_REPORT = 0x02
)

// BTN_TOUCH indicates a touch event on the digitizer.
const BTN_TOUCH = 0x14a

const (
	// ABS_MT_SLOT selects the slot a subsequent Type-B report applies to.
	ABS_MT_SLOT = 0x2f

	// ABS_MT_TOUCH_MAJOR is the major axis of the touch ellipse.
	ABS_MT_TOUCH_MAJOR = 0x30

	// ABS_MT_WIDTH_MAJOR is the major axis of the approaching tool.
	ABS_MT_WIDTH_MAJOR = 0x32

	// ABS_MT_POSITION_X is the X coordinate of the touch position.
	ABS_MT_POSITION_X = 0x35

	// ABS_MT_POSITION_Y is the Y coordinate of the touch position.
	ABS_MT_POSITION_Y = 0x36

	// ABS_MT_TOOL_TYPE is the type of tool in contact (finger, pen, ...).
	ABS_MT_TOOL_TYPE = 0x37

	// ABS_MT_TRACKING_ID identifies a touch contact across reports.
	ABS_MT_TRACKING_ID = 0x39

	// ABS_MT_PRESSURE is the pressure of the touch.
	ABS_MT_PRESSURE = 0x3a

	// ABS_MAX is the highest absolute axis code.
	ABS_MAX = 0x3f
)

// MT_TOOL_FINGER identifies a finger in multi-touch protocols.
const MT_TOOL_FINGER = 0x00

// INPUT_PROP_DIRECT indicates the device is a direct touch surface
// (as opposed to an indirect pointing device such as a touchpad).
const INPUT_PROP_DIRECT = 0x01

// INPUT_PROP_MAX is the highest input property code.
const INPUT_PROP_MAX = 0x1f

// AbsInfo holds the parameters of an absolute input axis, the result of
// the [EVIOCGABS] ioctl.
//
// From [input.h]:
//
//	struct input_absinfo {
//		__s32 value;
//		__s32 minimum;
//		__s32 maximum;
//		__s32 fuzz;
//		__s32 flat;
//		__s32 resolution;
//	};
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// Event is the kernel's input_event record. Timestamps are zero-filled by
// this package; the kernel fills them in on delivery.
//
// From [input.h]:
//
//	struct input_event {
//		struct timeval time;
//		__u16 type;
//		__u16 code;
//		__s32 value;
//	};
type Event struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// EVIOCGNAME returns the ioctl request code to read the device name into a
// buffer of the given length.
func EVIOCGNAME(length uint) uint {
	return ioctl.IOC(ioctl.IOC_READ, 'E', 0x06, length)
}

// EVIOCGPROP returns the ioctl request code to read the device's property
// bitmask into a buffer of the given length.
func EVIOCGPROP(length uint) uint {
	return ioctl.IOC(ioctl.IOC_READ, 'E', 0x09, length)
}

// EVIOCGBIT returns the ioctl request code to read the bitmask of codes
// supported for event type ev into a buffer of the given length. Passing
// ev == 0 returns the bitmask of supported event types themselves.
func EVIOCGBIT(ev, length uint) uint {
	return ioctl.IOC(ioctl.IOC_READ, 'E', 0x20+ev, length)
}

// EVIOCGABS returns the ioctl request code to read the [AbsInfo] for the
// given absolute axis code.
func EVIOCGABS(abs uint) uint {
	return ioctl.IOR('E', 0x40+abs, AbsInfo{})
}
