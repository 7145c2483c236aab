package protocol_test

import (
	"io"
	"strings"
	"testing"

	. "gopkg.in/check.v1"

	"github.com/inputkit/minitouch/protocol"
	"github.com/inputkit/minitouch/touch"
)

func Test(t *testing.T) { TestingT(t) }

type interpreterSuite struct{}

var _ = Suite(&interpreterSuite{})

type call struct {
	name string
	args []int32
}

// fakeEmitter records every call made to it instead of touching real
// kernel state, for testing the interpreter's parsing and dispatch in
// isolation from touch's own emitters.
type fakeEmitter struct {
	calls       []call
	maxContacts int
	active      int
}

func (f *fakeEmitter) Down(slot int, x, y, p int32) error {
	f.calls = append(f.calls, call{"down", []int32{int32(slot), x, y, p}})
	f.active++

	return nil
}

func (f *fakeEmitter) Move(slot int, x, y, p int32) error {
	f.calls = append(f.calls, call{"move", []int32{int32(slot), x, y, p}})

	return nil
}

func (f *fakeEmitter) Up(slot int) error {
	f.calls = append(f.calls, call{"up", []int32{int32(slot)}})
	f.active--

	return nil
}

func (f *fakeEmitter) Commit() error {
	f.calls = append(f.calls, call{"commit", nil})

	return nil
}

func (f *fakeEmitter) PanicResetAll() error {
	f.calls = append(f.calls, call{"reset", nil})

	return nil
}

func (f *fakeEmitter) MaxContacts() int { return f.maxContacts }
func (f *fakeEmitter) ActiveContacts() int { return f.active }

var _ touch.Emitter = (*fakeEmitter)(nil)

func (s *interpreterSuite) TestDispatchesKnownCommands(c *C) {
	var (
		emitter fakeEmitter
		interp  *protocol.Interpreter
		err     error
	)

	emitter = fakeEmitter{maxContacts: 5}
	interp = protocol.NewInterpreter(&emitter, nil)

	err = interp.Run(strings.NewReader("d 0 100 200 50\nc\nu 0\nc\n"))
	c.Assert(err, Equals, io.EOF)

	c.Assert(emitter.calls, DeepEquals, []call{
		{"down", []int32{0, 100, 200, 50}},
		{"commit", nil},
		{"up", []int32{0}},
		{"commit", nil},
	})
}

func (s *interpreterSuite) TestIgnoresUnknownFirstByte(c *C) {
	var (
		emitter fakeEmitter
		interp  *protocol.Interpreter
	)

	emitter = fakeEmitter{maxContacts: 5}
	interp = protocol.NewInterpreter(&emitter, nil)

	_ = interp.Run(strings.NewReader("x garbage line\nc\n"))

	c.Assert(emitter.calls, DeepEquals, []call{{"commit", nil}})
}

func (s *interpreterSuite) TestLenientIntegerScan(c *C) {
	var (
		emitter fakeEmitter
		interp  *protocol.Interpreter
	)

	emitter = fakeEmitter{maxContacts: 5}
	interp = protocol.NewInterpreter(&emitter, nil)

	_ = interp.Run(strings.NewReader("d 0 100abc 200 50\n"))

	c.Assert(emitter.calls, DeepEquals, []call{
		{"down", []int32{0, 100, 200, 50}},
	})
}

func (s *interpreterSuite) TestMissingFieldsScanAsZero(c *C) {
	var (
		emitter fakeEmitter
		interp  *protocol.Interpreter
	)

	emitter = fakeEmitter{maxContacts: 5}
	interp = protocol.NewInterpreter(&emitter, nil)

	_ = interp.Run(strings.NewReader("d 1\n"))

	c.Assert(emitter.calls, DeepEquals, []call{
		{"down", []int32{1, 0, 0, 0}},
	})
}

func (s *interpreterSuite) TestBannerOrder(c *C) {
	var (
		emitter fakeEmitter
		buf     strings.Builder
		cfg     touch.Config
		err     error
	)

	emitter = fakeEmitter{maxContacts: 5}
	cfg = touch.Config{MaxX: 1079, MaxY: 1919, MaxPressure: 255}

	err = protocol.WriteBanner(&buf, &emitter, cfg, 1234)
	c.Assert(err, IsNil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	c.Assert(lines, DeepEquals, []string{
		"v 1",
		"^ 5 1079 1919 255",
		"$ 1234",
	})
}
