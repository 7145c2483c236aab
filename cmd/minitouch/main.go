// Command minitouch is a Linux multi-touch injection daemon: it
// discovers a suitable /dev/input event device, speaks a line-oriented
// text protocol over an abstract Unix socket (or stdin/a script file),
// and replays the commands it receives as kernel evdev events.
package main

import (
	"bufio"
	"io"
	"net"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/inputkit/minitouch/diag"
	"github.com/inputkit/minitouch/linux/evdev"
	"github.com/inputkit/minitouch/protocol"
	"github.com/inputkit/minitouch/touch"
)

type options struct {
	Device  string `short:"d" long:"device" description:"explicit evdev device path" value-name:"PATH"`
	Name    string `short:"n" long:"name" description:"abstract socket name" default:"minitouch"`
	Verbose bool   `short:"v" long:"verbose" description:"enable diagnostic logging"`
	Stdin   bool   `short:"i" long:"stdin" description:"read commands from standard input instead of a socket"`
	File    string `short:"f" long:"file" description:"read commands from the named file" value-name:"PATH"`
}

func exitf(log *diag.Logger, format string, args ...any) {
	log.Errorf(format, args...)
	os.Exit(1)
}

func main() {
	var (
		opts    options
		log     *diag.Logger
		state   *evdev.DeviceState
		cfg     touch.Config
		emitter touch.Emitter
		err     error
	)

	log = diag.New(os.Stderr, false)

	_, err = flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	log = diag.New(os.Stderr, opts.Verbose)

	if opts.Device != "" {
		state, err = evdev.SelectExplicit(opts.Device, log)
	} else {
		state, err = evdev.Select("/dev/input", log)
	}

	if err != nil {
		exitf(log, "%s", err)
	}

	defer state.Dev.Close()

	cfg = buildConfig(state, log)

	// The emitter owns the contact table and tracking-id counter for the
	// entire process lifetime: it is built once here, never per client,
	// so state (and a misbehaving client's mess) carries across sessions.
	emitter = touch.NewEmitter(state.Dev, cfg)

	switch {
	case opts.Stdin:
		serveOnce(os.Stdin, os.Stdout, emitter, cfg, log)
	case opts.File != "":
		runFile(opts.File, emitter, cfg, log)
	default:
		runServer(opts.Name, emitter, cfg, log)
	}
}

// buildConfig translates a probed device's capability snapshot into the
// emitter configuration, applying the Type-A max_tracking_id misreport
// correction via DeviceState.MaxContacts.
func buildConfig(state *evdev.DeviceState, log *diag.Logger) touch.Config {
	return touch.Config{
		MaxContacts:   state.MaxContacts(log),
		MaxX:          state.Caps.MaxX,
		MaxY:          state.Caps.MaxY,
		MaxPressure:   state.Caps.MaxPressure,
		HasSlot:       state.Caps.HasSlot,
		HasTrackingID: state.Caps.HasTrackingID,
		HasBTNTouch:   state.Caps.HasBTNTouch,
		HasTouchMajor: state.Caps.HasTouchMajor,
		HasWidthMajor: state.Caps.HasWidthMajor,
		HasPressure:   state.Caps.HasPressure,
	}
}

// runServer accepts one client at a time on an abstract Unix domain
// socket named name, servicing each to EOF before accepting the next.
// Every client is driven against the same emitter instance.
func runServer(name string, emitter touch.Emitter, cfg touch.Config, log *diag.Logger) {
	var (
		listener net.Listener
		err      error
	)

	listener, err = net.Listen("unix", "@"+name)
	if err != nil {
		exitf(log, "bind abstract socket %q: %s", name, err)
	}

	defer listener.Close()

	log.Notef("listening on abstract socket @%s", name)

	for {
		var conn net.Conn

		conn, err = listener.Accept()
		if err != nil {
			exitf(log, "accept: %s", err)
		}

		serveOnce(conn, conn, emitter, cfg, log)
		conn.Close()
	}
}

// runFile replays commands from a script file, sending the banner to
// standard output since a file has no reply channel of its own.
func runFile(path string, emitter touch.Emitter, cfg touch.Config, log *diag.Logger) {
	var (
		file *os.File
		err  error
	)

	file, err = os.Open(path)
	if err != nil {
		exitf(log, "open script file %q: %s", path, err)
	}

	defer file.Close()

	serveOnce(file, os.Stdout, emitter, cfg, log)
}

// serveOnce writes the banner and drives r to EOF against the shared
// emitter, via a fresh interpreter (the interpreter itself holds no
// device state, only the sleep/dispatch loop).
func serveOnce(r io.Reader, w io.Writer, emitter touch.Emitter, cfg touch.Config, log *diag.Logger) {
	var (
		interp *protocol.Interpreter
		bw     *bufio.Writer
		err    error
	)

	bw = bufio.NewWriter(w)

	err = protocol.WriteBanner(bw, emitter, cfg, os.Getpid())
	if err == nil {
		err = bw.Flush()
	}

	if err != nil {
		log.Notef("write banner: %s", err)

		return
	}

	interp = protocol.NewInterpreter(emitter, log)

	err = interp.Run(r)
	if err != nil {
		log.Notef("client session ended: %s", err)
	}
}
