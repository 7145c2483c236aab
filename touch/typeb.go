package touch

import "fmt"

// typeB implements the slotted multi-touch protocol: ABS_MT_SLOT
// selects a persistent slot and each operation emits its events
// immediately; Commit only flushes the pending SYN_REPORT.
type typeB struct {
	*base
}

func (t *typeB) Down(slot int, x, y, p int32) error {
	var (
		contact *Contact
		err     error
	)

	if !t.inRange(slot) {
		return fmt.Errorf("touch: slot %d out of range", slot)
	}

	if t.table[slot].state != idle {
		if err = t.PanicResetAll(); err != nil {
			return err
		}
	}

	contact = &t.table[slot]
	contact.state = down
	contact.x, contact.y, contact.pressure = x, y, p
	contact.trackingID = t.mintTrackingID()
	t.activeContacts++

	if err = t.writer.WriteEvent(evAbs, absMTSlot, int32(slot)); err != nil {
		return err
	}

	if err = t.writer.WriteEvent(evAbs, absMTTrackingID, contact.trackingID); err != nil {
		return err
	}

	if t.activeContacts == 1 && t.cfg.HasBTNTouch {
		if err = t.writer.WriteEvent(evKey, btnTouch, 1); err != nil {
			return err
		}
	}

	return t.emitAxes(contact)
}

func (t *typeB) Move(slot int, x, y, p int32) error {
	var (
		contact *Contact
		err     error
	)

	if !t.inRange(slot) {
		return fmt.Errorf("touch: slot %d out of range", slot)
	}

	if t.table[slot].state == idle {
		return nil
	}

	contact = &t.table[slot]
	contact.x, contact.y, contact.pressure = x, y, p

	if err = t.writer.WriteEvent(evAbs, absMTSlot, int32(slot)); err != nil {
		return err
	}

	return t.emitAxes(contact)
}

func (t *typeB) Up(slot int) error {
	if !t.inRange(slot) {
		return fmt.Errorf("touch: slot %d out of range", slot)
	}

	if t.table[slot].state == idle {
		return nil
	}

	return t.retireSlot(slot)
}

// retireSlot marks slot idle and writes its retiring frame: ABS_MT_SLOT,
// ABS_MT_TRACKING_ID=-1, and BTN_TOUCH 0 if this was the last active
// contact. It does not flush a SYN_REPORT; callers (Up, PanicResetAll)
// decide when the frame is complete.
func (t *typeB) retireSlot(slot int) error {
	var err error

	t.table[slot].state = idle
	t.activeContacts--

	if err = t.writer.WriteEvent(evAbs, absMTSlot, int32(slot)); err != nil {
		return err
	}

	if err = t.writer.WriteEvent(evAbs, absMTTrackingID, -1); err != nil {
		return err
	}

	if t.activeContacts == 0 && t.cfg.HasBTNTouch {
		return t.writer.WriteEvent(evKey, btnTouch, 0)
	}

	return nil
}

// PanicResetAll retires every active slot through the same path Up uses,
// so BTN_TOUCH 0 still fires exactly when active_contacts reaches zero,
// then flushes a single trailing SYN_REPORT if anything changed.
func (t *typeB) PanicResetAll() error {
	var changed bool

	for slot := range t.table[:t.cfg.MaxContacts] {
		if t.table[slot].state == idle {
			continue
		}

		if err := t.retireSlot(slot); err != nil {
			return err
		}

		changed = true
	}

	if changed {
		return t.writer.WriteEvent(evSyn, synReport, 0)
	}

	return nil
}

func (t *typeB) Commit() error {
	return t.writer.WriteEvent(evSyn, synReport, 0)
}

// emitAxes writes the optional touch-major/width-major/pressure axes
// followed by position X and Y, shared by Down and Move.
func (t *typeB) emitAxes(c *Contact) error {
	var err error

	if t.cfg.HasTouchMajor {
		if err = t.writer.WriteEvent(evAbs, absMTTouchMajor, touchMajorValue); err != nil {
			return err
		}
	}

	if t.cfg.HasWidthMajor {
		if err = t.writer.WriteEvent(evAbs, absMTWidthMajor, widthMajorValue); err != nil {
			return err
		}
	}

	if t.cfg.HasPressure {
		if err = t.writer.WriteEvent(evAbs, absMTPressure, c.pressure); err != nil {
			return err
		}
	}

	if err = t.writer.WriteEvent(evAbs, absMTPositionX, c.x); err != nil {
		return err
	}

	return t.writer.WriteEvent(evAbs, absMTPositionY, c.y)
}
