package touch

// eventWriter is the subset of evdev.Device this package depends on,
// kept as an interface so sessions can be tested against a fake writer
// instead of a real kernel device.
type eventWriter interface {
	WriteEvent(evType, code uint16, value int32) error
}

const (
	evSyn = 0x00
	evKey = 0x01
	evAbs = 0x03

	synReport   = 0x00
	synMTReport = 0x02

	btnTouch = 0x14a

	absMTSlot       = 0x2f
	absMTTouchMajor = 0x30
	absMTWidthMajor = 0x32
	absMTPositionX  = 0x35
	absMTPositionY  = 0x36
	absMTTrackingID = 0x39
	absMTPressure   = 0x3a
)

const (
	touchMajorValue = 0x06
	widthMajorValue = 0x04
)

// Config describes the capabilities of the selected device that the
// emitters need: which optional axes exist, and the bounds to report in
// the protocol banner.
type Config struct {
	MaxContacts int
	MaxX, MaxY  int32
	MaxPressure int32

	HasSlot       bool
	HasTrackingID bool
	HasBTNTouch   bool
	HasTouchMajor bool
	HasWidthMajor bool
	HasPressure   bool
}

// Emitter is the uniform interface the protocol dispatcher (C7) presents
// to the command interpreter, regardless of whether the underlying
// device speaks Type-A or Type-B multi-touch.
type Emitter interface {
	Down(slot int, x, y, p int32) error
	Move(slot int, x, y, p int32) error
	Up(slot int) error
	Commit() error
	PanicResetAll() error
	MaxContacts() int
	ActiveContacts() int
}

// base holds the state and behavior shared by the Type-A and Type-B
// emitters: the contact table, the tracking-id mint, and the
// BTN_TOUCH edge counter.
type base struct {
	writer eventWriter
	cfg    Config

	table          ContactTable
	nextTrackingID int32
	activeContacts int
}

func newBase(writer eventWriter, cfg Config) *base {
	if cfg.MaxContacts > MaxSupportedContacts {
		cfg.MaxContacts = MaxSupportedContacts
	}

	return &base{writer: writer, cfg: cfg}
}

func (b *base) MaxContacts() int {
	return b.cfg.MaxContacts
}

func (b *base) ActiveContacts() int {
	return b.activeContacts
}

func (b *base) inRange(slot int) bool {
	return slot >= 0 && slot < b.cfg.MaxContacts
}

// mintTrackingID advances and returns the next Type-B tracking id.
func (b *base) mintTrackingID() int32 {
	b.nextTrackingID = nextTrackingID(b.nextTrackingID)

	return b.nextTrackingID
}

// NewEmitter constructs the Type-B emitter if the device advertises
// ABS_MT_SLOT, else the Type-A emitter. This is the whole of the
// protocol dispatch: a one-time choice held for the session's lifetime.
func NewEmitter(writer eventWriter, cfg Config) Emitter {
	if cfg.HasSlot {
		return &typeB{base: newBase(writer, cfg)}
	}

	return &typeA{base: newBase(writer, cfg)}
}
