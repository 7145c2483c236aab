// Package touch maintains the contact table for a multi-touch injection
// session and translates down/move/up/commit/reset operations into
// kernel evdev events, using either the Type-A or Type-B wire protocol.
package touch

import "math"

// MaxSupportedContacts is the hard cap on tracked contacts regardless of
// what a device reports.
const MaxSupportedContacts = 10

// state is the lifecycle of one contact since the last commit.
type state int

const (
	idle state = iota
	down
	moved
	up
)

// Contact is a fixed-size record describing one touch point. A contact
// with state == idle has no meaningful X/Y/Pressure/TrackingID.
type Contact struct {
	state      state
	trackingID int32
	x, y       int32
	pressure   int32
}

// active reports whether the contact currently counts toward
// active_contacts (down or moved).
func (c Contact) active() bool {
	return c.state == down || c.state == moved
}

// ContactTable is an ordered sequence of MaxSupportedContacts contacts,
// indexed by slot number. Slot index is the stable external identifier
// the client uses.
type ContactTable [MaxSupportedContacts]Contact

// nextTrackingID mints the next tracking id, wrapping to 0 when it
// would exceed math.MaxInt32. The sequence is strictly monotonically
// increasing across the 32-bit signed range before wrap.
func nextTrackingID(cur int32) int32 {
	if cur >= math.MaxInt32 {
		return 0
	}

	return cur + 1
}
