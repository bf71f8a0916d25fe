package sysexconf

// Split14Bit packs a 14-bit value into two 7-bit transport bytes.
//
// The transform matches the firmware-side Split14Bit routine: the value is
// masked to 14 bits, the low byte keeps its lower 7 bits, and the high byte
// carries bits 8-13 shifted left by one with bit 7 of the low byte folded
// into bit 0. This is not a plain 7-bit split; the carry bit placement must
// be reproduced exactly or the device will decode wrong values.
//
// Bit layout:
//
//	value: ..xxxxxx yzzzzzzz  (14 bits)
//	high:  0xxxxxxy
//	low:   0zzzzzzz
//
// The function is total: out-of-range input is masked, never rejected.
func Split14Bit(value int) (high, low byte) {
	v := value & 0x3FFF

	high = byte(v >> 8)
	low = byte(v & 0xFF)

	high = (high << 1) & 0x7F
	if low&0x80 != 0 {
		high |= 0x01
	} else {
		high &^= 0x01
	}

	low &= 0x7F
	return high, low
}

// Merge14Bit is the inverse of Split14Bit, as performed by the receiving
// device. It recovers the original value masked to 14 bits.
func Merge14Bit(high, low byte) int {
	v := int(high>>1) << 8
	if high&0x01 != 0 {
		v |= 0x80
	}
	return v | int(low&0x7F)
}
