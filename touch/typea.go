package touch

import "fmt"

// typeA implements the stateless multi-touch protocol: operations only
// mutate the contact table, and events are written solely on Commit, one
// SYN_MT_REPORT-delimited frame per active slot followed by a single
// SYN_REPORT.
type typeA struct {
	*base
}

func (t *typeA) Down(slot int, x, y, p int32) error {
	if !t.inRange(slot) {
		return fmt.Errorf("touch: slot %d out of range", slot)
	}

	if t.table[slot].state != idle {
		if err := t.PanicResetAll(); err != nil {
			return err
		}
	}

	t.table[slot] = Contact{state: down, x: x, y: y, pressure: p}

	return nil
}

func (t *typeA) Move(slot int, x, y, p int32) error {
	if !t.inRange(slot) {
		return fmt.Errorf("touch: slot %d out of range", slot)
	}

	if t.table[slot].state == idle {
		return nil
	}

	t.table[slot].state = moved
	t.table[slot].x = x
	t.table[slot].y = y
	t.table[slot].pressure = p

	return nil
}

func (t *typeA) Up(slot int) error {
	if !t.inRange(slot) {
		return fmt.Errorf("touch: slot %d out of range", slot)
	}

	if t.table[slot].state == idle {
		return nil
	}

	t.table[slot].state = up

	return nil
}

func (t *typeA) PanicResetAll() error {
	for slot := range t.table[:t.cfg.MaxContacts] {
		if t.table[slot].state != idle {
			t.table[slot].state = up
		}
	}

	return t.Commit()
}

func (t *typeA) Commit() error {
	var emittedAny bool

	for slot := 0; slot < t.cfg.MaxContacts; slot++ {
		var (
			contact   *Contact
			emitted   bool
			err       error
		)

		contact = &t.table[slot]

		switch contact.state {
		case down:
			err = t.emitPresence(slot, contact, true)
			contact.state = moved
			t.activeContacts++
			emitted = true
		case moved:
			err = t.emitPresence(slot, contact, false)
			emitted = true
		case up:
			err = t.emitRetire(slot, contact)
			contact.state = idle
			t.activeContacts--
			emitted = true
		case idle:
			// nothing to report for this slot
		}

		if err != nil {
			return err
		}

		if !emitted {
			continue
		}

		emittedAny = true

		if err = t.writer.WriteEvent(evSyn, synMTReport, 0); err != nil {
			return err
		}
	}

	if emittedAny {
		if err := t.writer.WriteEvent(evSyn, synReport, 0); err != nil {
			return err
		}
	}

	return nil
}

// emitPresence writes the down-or-moved frame for slot. becomingDown is
// true only on the first commit of a fresh down.
func (t *typeA) emitPresence(slot int, c *Contact, becomingDown bool) error {
	var err error

	if t.cfg.HasTrackingID {
		if err = t.writer.WriteEvent(evAbs, absMTTrackingID, int32(slot)); err != nil {
			return err
		}
	}

	if becomingDown && t.activeContacts == 0 && t.cfg.HasBTNTouch {
		if err = t.writer.WriteEvent(evKey, btnTouch, 1); err != nil {
			return err
		}
	}

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

// emitRetire writes the up frame for slot. activeContacts still holds
// its pre-decrement value when this is called.
func (t *typeA) emitRetire(slot int, _ *Contact) error {
	var err error

	if t.cfg.HasTrackingID {
		if err = t.writer.WriteEvent(evAbs, absMTTrackingID, int32(slot)); err != nil {
			return err
		}
	}

	if t.activeContacts == 1 && t.cfg.HasBTNTouch {
		return t.writer.WriteEvent(evKey, btnTouch, 0)
	}

	return nil
}
