//go:build linux

package evdev

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMismatch indicates a candidate device failed one of the probe's
// rejection rules and should be skipped without side effect.
var ErrMismatch = errors.New("evdev: device does not match touch requirements")

// Capabilities is a snapshot of the facts about a device that feed the
// selection score. It is deliberately a plain value: scoring is a pure
// function of this struct, independent of any open file descriptor.
type Capabilities struct {
	Name string

	HasToolType bool
	ToolTypeMax int32

	HasSlot bool
	MaxSlot int32

	HasTrackingID   bool
	MaxTrackingID   int32

	HasDirect bool

	MaxX, MaxY int32

	HasPressure   bool
	MaxPressure   int32
	HasTouchMajor bool
	HasWidthMajor bool
	HasBTNTouch   bool
}

// Probe opens path and determines whether it is usable as a multi-touch
// injection target. It returns [ErrMismatch] (wrapped with the specific
// reason) when the device fails a rejection rule; the returned Device is
// nil in that case. On success the caller owns the returned Device and
// must eventually Close it.
func Probe(path string) (Capabilities, *Device, error) {
	var (
		caps    Capabilities
		isChar  bool
		dev     *Device
		hasPos  bool
		abs     AbsInfo
		err     error
	)

	isChar, err = IsCharDevice(path)
	if err != nil {
		return Capabilities{}, nil, fmt.Errorf("%w: %s: %w", ErrMismatch, path, err)
	}

	if !isChar {
		return Capabilities{}, nil, fmt.Errorf("%w: %s: not a character device", ErrMismatch, path)
	}

	dev, err = Open(path)
	if err != nil {
		return Capabilities{}, nil, fmt.Errorf("%w: %s: %w", ErrMismatch, path, err)
	}

	caps, err = probeCapabilities(dev)
	if err != nil {
		dev.Close()

		return Capabilities{}, nil, fmt.Errorf("%w: %s: %w", ErrMismatch, path, err)
	}

	hasPos, err = dev.HasEventCode(EV_ABS, ABS_MT_POSITION_X)
	if err != nil {
		dev.Close()

		return Capabilities{}, nil, fmt.Errorf("%w: %s: %w", ErrMismatch, path, err)
	}

	if !hasPos {
		dev.Close()

		return Capabilities{}, nil, fmt.Errorf("%w: %s: no ABS_MT_POSITION_X", ErrMismatch, path)
	}

	abs, err = dev.Abs(ABS_MT_POSITION_X)
	if err != nil {
		dev.Close()

		return Capabilities{}, nil, fmt.Errorf("%w: %s: %w", ErrMismatch, path, err)
	}

	caps.MaxX = abs.Maximum

	abs, err = dev.Abs(ABS_MT_POSITION_Y)
	if err != nil {
		dev.Close()

		return Capabilities{}, nil, fmt.Errorf("%w: %s: %w", ErrMismatch, path, err)
	}

	caps.MaxY = abs.Maximum

	if caps.HasToolType && caps.ToolTypeMax < MT_TOOL_FINGER {
		dev.Close()

		return Capabilities{}, nil, fmt.Errorf("%w: %s: tool type range excludes MT_TOOL_FINGER", ErrMismatch, path)
	}

	return caps, dev, nil
}

// probeCapabilities gathers every capability bit and axis range the
// scorer needs, leaving the position-axis mismatch checks to the caller.
func probeCapabilities(dev *Device) (Capabilities, error) {
	var (
		caps Capabilities
		has  bool
		abs  AbsInfo
		err  error
	)

	caps.Name, err = dev.Name()
	if err != nil {
		return Capabilities{}, err
	}

	has, err = dev.HasEventCode(EV_ABS, ABS_MT_TOOL_TYPE)
	if err != nil {
		return Capabilities{}, err
	}

	if has {
		abs, err = dev.Abs(ABS_MT_TOOL_TYPE)
		if err != nil {
			return Capabilities{}, err
		}

		caps.HasToolType = true
		caps.ToolTypeMax = abs.Maximum
	}

	has, err = dev.HasEventCode(EV_ABS, ABS_MT_SLOT)
	if err != nil {
		return Capabilities{}, err
	}

	if has {
		abs, err = dev.Abs(ABS_MT_SLOT)
		if err != nil {
			return Capabilities{}, err
		}

		caps.HasSlot = true
		caps.MaxSlot = abs.Maximum
	}

	has, err = dev.HasEventCode(EV_ABS, ABS_MT_TRACKING_ID)
	if err != nil {
		return Capabilities{}, err
	}

	if has {
		abs, err = dev.Abs(ABS_MT_TRACKING_ID)
		if err != nil {
			return Capabilities{}, err
		}

		caps.HasTrackingID = true
		caps.MaxTrackingID = abs.Maximum
	}

	has, err = dev.HasProperty(INPUT_PROP_DIRECT)
	if err != nil {
		return Capabilities{}, err
	}

	caps.HasDirect = has

	has, err = dev.HasEventCode(EV_ABS, ABS_MT_PRESSURE)
	if err != nil {
		return Capabilities{}, err
	}

	if has {
		abs, err = dev.Abs(ABS_MT_PRESSURE)
		if err != nil {
			return Capabilities{}, err
		}

		caps.HasPressure = true
		caps.MaxPressure = abs.Maximum
	}

	caps.HasTouchMajor, err = dev.HasEventCode(EV_ABS, ABS_MT_TOUCH_MAJOR)
	if err != nil {
		return Capabilities{}, err
	}

	caps.HasWidthMajor, err = dev.HasEventCode(EV_ABS, ABS_MT_WIDTH_MAJOR)
	if err != nil {
		return Capabilities{}, err
	}

	caps.HasBTNTouch, err = dev.HasEventCode(EV_KEY, BTN_TOUCH)
	if err != nil {
		return Capabilities{}, err
	}

	return caps, nil
}

// Score ranks a candidate device's desirability as a touch injection
// target. Higher is better: it starts at 10000, loses the tool-type range
// above MT_TOOL_FINGER, gains 1000 plus the max slot index for a slotted
// device, loses 1 for a name containing "key" or "_side", gains 10000 for
// INPUT_PROP_DIRECT, and gains floor(sqrt(MaxX*MaxY)).
func Score(caps Capabilities) int {
	var score int

	score = 10000

	if caps.HasToolType {
		score -= int(caps.ToolTypeMax - MT_TOOL_FINGER)
	}

	if caps.HasSlot {
		score += 1000
		score += int(caps.MaxSlot)
	}

	if strings.Contains(caps.Name, "key") || strings.Contains(caps.Name, "_side") {
		score--
	}

	if caps.HasDirect {
		score += 10000
	}

	score += int(math.Sqrt(float64(caps.MaxX) * float64(caps.MaxY)))

	return score
}
