package touch

import (
	"math"

	. "gopkg.in/check.v1"
)

type contactSuite struct{}

var _ = Suite(&contactSuite{})

func (s *contactSuite) TestNextTrackingIDWrapsAtMaxInt32(c *C) {
	c.Assert(nextTrackingID(math.MaxInt32), Equals, int32(0))
	c.Assert(nextTrackingID(math.MaxInt32-1), Equals, int32(math.MaxInt32))
	c.Assert(nextTrackingID(0), Equals, int32(1))
}

func (s *contactSuite) TestActiveReflectsDownAndMoved(c *C) {
	c.Assert(Contact{state: idle}.active(), Equals, false)
	c.Assert(Contact{state: down}.active(), Equals, true)
	c.Assert(Contact{state: moved}.active(), Equals, true)
	c.Assert(Contact{state: up}.active(), Equals, false)
}
