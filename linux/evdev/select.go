//go:build linux

package evdev

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// MaxSupportedContacts bounds the number of simultaneous contacts this
// package will track, independent of what a device reports.
const MaxSupportedContacts = 10

// Notifier receives human-readable diagnostic notes during device
// selection. Implementations are expected to gate verbosity themselves;
// Select and SelectExplicit call Notef unconditionally.
type Notifier interface {
	Notef(format string, args ...any)
}

// discardNotifier is used when the caller passes a nil Notifier.
type discardNotifier struct{}

func (discardNotifier) Notef(string, ...any) {}

// DeviceState describes the winning device from a selection pass: its
// path, open handle, capabilities, and the score that won it the slot.
type DeviceState struct {
	Path string
	Dev  *Device
	Caps Capabilities
	Score int
}

// MaxContacts returns the effective max_contacts for the selected
// device, applying the Type-A kernel-misreport correction from the
// selector's slot-counting rule: a Type-A device that misreports
// max_tracking_id == 0 is treated as supporting MAX_SUPPORTED_CONTACTS-1
// contacts.
func (state *DeviceState) MaxContacts(notify Notifier) int {
	var contacts int

	if notify == nil {
		notify = discardNotifier{}
	}

	if state.Caps.HasSlot {
		contacts = int(state.Caps.MaxSlot) + 1
		if contacts > MaxSupportedContacts {
			contacts = MaxSupportedContacts
		}

		return contacts
	}

	if !state.Caps.HasTrackingID {
		return MaxSupportedContacts
	}

	if state.Caps.MaxTrackingID > 0 {
		contacts = int(state.Caps.MaxTrackingID) + 1
		if contacts > MaxSupportedContacts {
			contacts = MaxSupportedContacts
		}

		return contacts
	}

	notify.Notef("device %s: Type-A device advertises ABS_MT_TRACKING_ID but reports max_tracking_id == 0, treating as kernel misreport", state.Path)

	return MaxSupportedContacts - 1
}

// Select walks every character device under dir, probes each, and keeps
// the highest-scoring match open. It returns an error if no device in
// dir matches. Every probe outcome, win or loss, is reported through
// notify.
func Select(dir string, notify Notifier) (*DeviceState, error) {
	var (
		entries []os.DirEntry
		best    *DeviceState
		err     error
	)

	if notify == nil {
		notify = discardNotifier{}
	}

	entries, err = os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("evdev.Select: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		var (
			path       string
			caps       Capabilities
			dev        *Device
			score      int
			probeErr   error
		)

		path = filepath.Join(dir, entry.Name())

		caps, dev, probeErr = Probe(path)
		if probeErr != nil {
			notify.Notef("probe %s: %s", path, probeErr)

			continue
		}

		score = Score(caps)

		if best != nil && score <= best.Score {
			notify.Notef("probe %s: score %d did not beat incumbent %s (score %d)", path, score, best.Path, best.Score)
			dev.Close()

			continue
		}

		if best != nil {
			notify.Notef("probe %s: score %d beats incumbent %s (score %d)", path, score, best.Path, best.Score)
			best.Dev.Close()
		} else {
			notify.Notef("probe %s: score %d, first candidate", path, score)
		}

		best = &DeviceState{Path: path, Dev: dev, Caps: caps, Score: score}
	}

	if best == nil {
		return nil, fmt.Errorf("evdev.Select: no usable touch device found under %s", dir)
	}

	return best, nil
}

// SelectExplicit probes exactly one path, bypassing the scoring walk.
// It is used when the caller names a device with the -d flag.
func SelectExplicit(path string, notify Notifier) (*DeviceState, error) {
	var (
		caps Capabilities
		dev  *Device
		err  error
	)

	if notify == nil {
		notify = discardNotifier{}
	}

	caps, dev, err = Probe(path)
	if err != nil {
		return nil, fmt.Errorf("evdev.SelectExplicit: %w", err)
	}

	notify.Notef("using explicitly selected device %s", path)

	return &DeviceState{Path: path, Dev: dev, Caps: caps, Score: Score(caps)}, nil
}
