package touch_test

import (
	. "gopkg.in/check.v1"

	"github.com/inputkit/minitouch/touch"
)

type typeASuite struct{}

var _ = Suite(&typeASuite{})

func typeAConfig() touch.Config {
	return touch.Config{
		MaxContacts:   5,
		MaxX:          1079,
		MaxY:          1919,
		MaxPressure:   255,
		HasSlot:       false,
		HasTrackingID: true,
		HasBTNTouch:   true,
	}
}

func (s *typeASuite) TestSingleTapTypeA(c *C) {
	var (
		w       fakeWriter
		emitter touch.Emitter
	)

	emitter = touch.NewEmitter(&w, typeAConfig())

	c.Assert(emitter.Down(0, 100, 200, 50), IsNil)
	c.Assert(emitter.Commit(), IsNil)

	c.Assert(w.events[0], Equals, event{0x03, 0x39, 0})               // ABS_MT_TRACKING_ID = slot
	c.Assert(w.events[1], Equals, event{0x01, 0x14a, 1})              // BTN_TOUCH 1
	c.Assert(w.events[len(w.events)-2], Equals, event{0x00, 0x02, 0}) // SYN_MT_REPORT
	c.Assert(w.events[len(w.events)-1], Equals, event{0x00, 0x00, 0}) // SYN_REPORT
	c.Assert(emitter.ActiveContacts(), Equals, 1)

	w.events = nil

	c.Assert(emitter.Up(0), IsNil)
	c.Assert(emitter.Commit(), IsNil)

	c.Assert(w.events[0], Equals, event{0x03, 0x39, 0})
	c.Assert(w.events[1], Equals, event{0x01, 0x14a, 0})
	c.Assert(emitter.ActiveContacts(), Equals, 0)
}

func (s *typeASuite) TestMoveDoesNotRetriggerBTNTouch(c *C) {
	var (
		w       fakeWriter
		emitter touch.Emitter
	)

	emitter = touch.NewEmitter(&w, typeAConfig())

	c.Assert(emitter.Down(0, 1, 1, 1), IsNil)
	c.Assert(emitter.Commit(), IsNil)

	w.events = nil

	c.Assert(emitter.Move(0, 2, 2, 2), IsNil)
	c.Assert(emitter.Commit(), IsNil)

	for _, e := range w.events {
		c.Assert(e.evType == 0x01, Equals, false)
	}
}

func (s *typeASuite) TestOutOfRangeSlotFails(c *C) {
	var (
		w       fakeWriter
		emitter touch.Emitter
	)

	emitter = touch.NewEmitter(&w, typeAConfig())

	c.Assert(emitter.Down(99, 1, 1, 1), NotNil)
	c.Assert(w.events, HasLen, 0)
}

func (s *typeASuite) TestRepeatedDownPanicResets(c *C) {
	var (
		w       fakeWriter
		emitter touch.Emitter
	)

	emitter = touch.NewEmitter(&w, typeAConfig())

	c.Assert(emitter.Down(0, 1, 1, 1), IsNil)
	c.Assert(emitter.Commit(), IsNil)
	c.Assert(emitter.ActiveContacts(), Equals, 1)

	// A second down on the same slot without an intervening up forces a
	// panic reset first: Down itself commits the reset synchronously.
	c.Assert(emitter.Down(0, 2, 2, 2), IsNil)
	c.Assert(emitter.ActiveContacts(), Equals, 0)

	c.Assert(emitter.Commit(), IsNil)
	c.Assert(emitter.ActiveContacts(), Equals, 1)
}
