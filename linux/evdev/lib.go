//go:build linux

package evdev

// testBit returns true if the bit numbered pos is set in b.
func testBit(b []byte, pos uint) bool {
	return b[pos/8]&(1<<(pos%8)) != 0
}
