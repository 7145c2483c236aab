//go:build linux

package evdev

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// Device wraps an opened evdev character device node. The zero value is
// not usable; construct one with Open.
type Device struct {
	file *os.File
	fd   uintptr
}

// IsCharDevice reports whether path stats to a character device.
func IsCharDevice(path string) (bool, error) {
	var (
		info os.FileInfo
		err  error
	)

	info, err = os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("evdev.IsCharDevice: %w", err)
	}

	return info.Mode()&os.ModeCharDevice != 0, nil
}

// Open opens the evdev device at path for reading and writing. The caller
// must Close the returned Device.
func Open(path string) (*Device, error) {
	var (
		file *os.File
		err  error
	)

	file, err = os.OpenFile(filepath.Clean(path), os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("evdev.Open: %w", err)
	}

	return &Device{file: file, fd: file.Fd()}, nil
}

// Name reads the device's human-readable name via [EVIOCGNAME].
func (dev *Device) Name() (string, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, 256)

	err = ioctlGet(dev.fd, EVIOCGNAME(uint(len(buf))), &buf[0])
	if err != nil {
		return "", fmt.Errorf("Device.Name: %w", err)
	}

	return string(bytes.TrimRight(buf, "\x00")), nil
}

// HasEventCode reports whether the device advertises code under event
// type evType, per [EVIOCGBIT].
func (dev *Device) HasEventCode(evType, code uint) (bool, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, (max(ABS_MAX, code)+7)/8+1)

	err = ioctlGet(dev.fd, EVIOCGBIT(evType, uint(len(buf))), &buf[0])
	if err != nil {
		return false, fmt.Errorf("Device.HasEventCode: %w", err)
	}

	return testBit(buf, code), nil
}

// HasProperty reports whether the device advertises the given
// INPUT_PROP_* property, per [EVIOCGPROP].
func (dev *Device) HasProperty(prop uint) (bool, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, (INPUT_PROP_MAX+7)/8+1)

	err = ioctlGet(dev.fd, EVIOCGPROP(uint(len(buf))), &buf[0])
	if err != nil {
		return false, fmt.Errorf("Device.HasProperty: %w", err)
	}

	return testBit(buf, prop), nil
}

// Abs reads the [AbsInfo] for the given absolute axis code, per
// [EVIOCGABS].
func (dev *Device) Abs(code uint) (AbsInfo, error) {
	var (
		info AbsInfo
		err  error
	)

	err = ioctlGet(dev.fd, EVIOCGABS(code), &info)
	if err != nil {
		return AbsInfo{}, fmt.Errorf("Device.Abs: %w", err)
	}

	return info, nil
}

// WriteEvent serializes and writes a single input_event record to the
// device in one system call. A short write is reported as an error.
// Timestamps are always zero; the kernel fills them in.
func (dev *Device) WriteEvent(evType, code uint16, value int32) error {
	var (
		buf bytes.Buffer
		n   int
		err error
	)

	err = binary.Write(&buf, binary.LittleEndian, Event{Type: evType, Code: code, Value: value})
	if err != nil {
		return fmt.Errorf("Device.WriteEvent: %w", err)
	}

	n, err = dev.file.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("Device.WriteEvent: %w", err)
	}

	if n != buf.Len() {
		return fmt.Errorf("Device.WriteEvent: short write: wrote %d of %d bytes", n, buf.Len())
	}

	return nil
}

// Close closes the underlying device file.
func (dev *Device) Close() error {
	var err error

	err = dev.file.Close()
	if err != nil {
		return fmt.Errorf("Device.Close: %w", err)
	}

	return nil
}
