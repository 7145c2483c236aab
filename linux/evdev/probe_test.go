//go:build linux

package evdev_test

import (
	"testing"

	. "gopkg.in/check.v1"

	"github.com/inputkit/minitouch/linux/evdev"
)

func Test(t *testing.T) { TestingT(t) }

type scoreSuite struct{}

var _ = Suite(&scoreSuite{})

func (s *scoreSuite) TestDirectPropertyWinsTiebreak(c *C) {
	var base evdev.Capabilities

	base = evdev.Capabilities{MaxX: 1079, MaxY: 1919}

	direct := base
	direct.HasDirect = true

	indirect := base

	c.Assert(evdev.Score(direct) > evdev.Score(indirect), Equals, true)
}

func (s *scoreSuite) TestMoreSlotsScoreHigher(c *C) {
	var base evdev.Capabilities

	base = evdev.Capabilities{MaxX: 1079, MaxY: 1919, HasSlot: true}

	few := base
	few.MaxSlot = 1

	many := base
	many.MaxSlot = 9

	c.Assert(evdev.Score(many) > evdev.Score(few), Equals, true)
}

func (s *scoreSuite) TestKeySubstringPenalizesName(c *C) {
	var base evdev.Capabilities

	base = evdev.Capabilities{MaxX: 1079, MaxY: 1919}

	plain := base
	plain.Name = "touchscreen"

	sideKey := base
	sideKey.Name = "gpio_side_key"

	c.Assert(evdev.Score(plain) > evdev.Score(sideKey), Equals, true)
}

func (s *scoreSuite) TestLargerSurfaceScoresHigher(c *C) {
	small := evdev.Capabilities{MaxX: 100, MaxY: 100}
	large := evdev.Capabilities{MaxX: 1079, MaxY: 1919}

	c.Assert(evdev.Score(large) > evdev.Score(small), Equals, true)
}
