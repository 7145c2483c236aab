// Package protocol implements the line-oriented wire protocol: the
// startup banner and the command interpreter that drives a
// [touch.Emitter] from client input.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/inputkit/minitouch/touch"
)

// ProtocolVersion is the version reported in the banner's first line.
const ProtocolVersion = 1

// Notifier receives human-readable diagnostic notes, gated by the
// caller's verbosity setting.
type Notifier interface {
	Notef(format string, args ...any)
}

type discardNotifier struct{}

func (discardNotifier) Notef(string, ...any) {}

// WriteBanner writes the three-line protocol banner: version, device
// bounds, and process id. It is the first thing written to any client,
// on any transport.
func WriteBanner(w io.Writer, emitter touch.Emitter, cfg touch.Config, pid int) error {
	var err error

	if _, err = fmt.Fprintf(w, "v %d\n", ProtocolVersion); err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "^ %d %d %d %d\n", emitter.MaxContacts(), cfg.MaxX, cfg.MaxY, cfg.MaxPressure); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "$ %d\n", pid)

	return err
}

// Interpreter reads commands from r and drives emitter, sleeping on "w"
// commands, until r reaches EOF or returns an error. It reports
// per-command failures through notify but never propagates them to the
// caller: the only externally visible error path is EOF/read error.
type Interpreter struct {
	emitter touch.Emitter
	notify  Notifier
	sleep   func(time.Duration)
}

// NewInterpreter constructs an Interpreter bound to emitter. A nil
// notify discards diagnostics.
func NewInterpreter(emitter touch.Emitter, notify Notifier) *Interpreter {
	if notify == nil {
		notify = discardNotifier{}
	}

	return &Interpreter{emitter: emitter, notify: notify, sleep: time.Sleep}
}

// Run consumes lines from r until EOF or a read error, which it returns
// (io.EOF included, so the caller can distinguish clean close from
// transport failure if it wants to).
func (in *Interpreter) Run(r io.Reader) error {
	var (
		scanner *bufio.Scanner
		err     error
	)

	scanner = bufio.NewScanner(r)

	for scanner.Scan() {
		in.dispatch(strings.TrimRight(scanner.Text(), "\r\n"))
	}

	err = scanner.Err()
	if err != nil {
		return err
	}

	return io.EOF
}

// dispatch parses and executes a single command line. Malformed or
// out-of-range commands are silently dropped, per the protocol's lack of
// an error response channel.
func (in *Interpreter) dispatch(line string) {
	var (
		fields []string
		err    error
	)

	if line == "" {
		return
	}

	fields = strings.Fields(line)

	switch line[0] {
	case 'd':
		err = in.emitter.Down(scanInt(fields, 1), scanInt32(fields, 2), scanInt32(fields, 3), scanInt32(fields, 4))
	case 'm':
		err = in.emitter.Move(scanInt(fields, 1), scanInt32(fields, 2), scanInt32(fields, 3), scanInt32(fields, 4))
	case 'u':
		err = in.emitter.Up(scanInt(fields, 1))
	case 'c':
		err = in.emitter.Commit()
	case 'r':
		err = in.emitter.PanicResetAll()
	case 'w':
		in.sleep(time.Duration(scanInt(fields, 1)) * time.Millisecond)

		return
	default:
		return
	}

	if err != nil {
		in.notify.Notef("command %q: %s", line, err)
	}
}

// scanInt parses fields[idx] leniently, strtol-style: unparseable or
// missing fields scan as 0.
func scanInt(fields []string, idx int) int {
	return int(scanInt32(fields, idx))
}

// scanInt32 is scanInt's 32-bit counterpart, used for coordinate and
// pressure fields.
func scanInt32(fields []string, idx int) int32 {
	var (
		n   int64
		err error
	)

	if idx >= len(fields) {
		return 0
	}

	n, err = strconv.ParseInt(leadingInt(fields[idx]), 10, 32)
	if err != nil {
		return 0
	}

	return int32(n)
}

// leadingInt trims s down to its longest valid leading integer
// (optional sign followed by digits), mirroring strtol's behavior of
// stopping at the first non-digit instead of failing the whole field.
func leadingInt(s string) string {
	var (
		end   int
		start int
	)

	if s == "" {
		return "0"
	}

	if s[0] == '+' || s[0] == '-' {
		start = 1
	}

	end = start

	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == start {
		return "0"
	}

	return s[:end]
}
