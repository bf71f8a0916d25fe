package sysexconf

// SysEx frame markers. These are the only bytes in a frame allowed to have
// the high bit set.
const (
	FrameStart = 0xF0
	FrameEnd   = 0xF7
)

// ManufacturerID is the 3-byte Shantea Controls (OpenDeck) MIDI
// manufacturer identifier carried by every frame.
var ManufacturerID = [3]byte{0x00, 0x53, 0x43}

// StatusRequest marks a host-to-device request frame. Device responses use
// other status codes, which this tool never produces.
const StatusRequest = 0x00

// Special request codes, carried in the wish position of a special request
// frame.
const (
	SpecialConnClose = 0x00
	SpecialConnOpen  = 0x01
)

// Wish and amount opcodes for standard parameter requests.
const (
	WishGet      = 0x00
	WishSet      = 0x01
	AmountSingle = 0x00
)

// Frame sizes in bytes.
const (
	// SpecialRequestSize: F0 + 3x manufacturer + status + part + wish + F7.
	SpecialRequestSize = 8

	// SetSingleSize: F0 + 3x manufacturer + status + part + wish + amount +
	// block + section + 2x index + 2x value + F7.
	SetSingleSize = 15
)

// BuildSpecialRequest builds a connection-control frame. The wish byte
// selects the request: SpecialConnOpen opens a configuration session,
// SpecialConnClose closes it.
//
// Frame layout:
//
//	[0]    0xF0      frame start
//	[1-3]  00 53 43  manufacturer ID
//	[4]    0x00      status (request)
//	[5]    0x00      part
//	[6]    wish      special request code
//	[7]    0xF7      frame end
func BuildSpecialRequest(wish byte) []byte {
	return []byte{
		FrameStart,
		ManufacturerID[0], ManufacturerID[1], ManufacturerID[2],
		StatusRequest,
		0x00, // part
		wish & 0x7F,
		FrameEnd,
	}
}

// BuildSetSingle builds a frame that sets a single device parameter,
// addressed by block, section and index. Index and value are 14-bit
// quantities and are split into 7-bit byte pairs before embedding.
//
// Frame layout:
//
//	[0]      0xF0      frame start
//	[1-3]    00 53 43  manufacturer ID
//	[4]      0x00      status (request)
//	[5]      part
//	[6]      0x01      wish (set)
//	[7]      0x00      amount (single)
//	[8]      block
//	[9]      section
//	[10-11]  index     high, low
//	[12-13]  value     high, low
//	[14]     0xF7      frame end
//
// Inputs are masked to their wire width, never rejected; range checking is
// the caller's responsibility.
func BuildSetSingle(block, section byte, index, value int, part byte) []byte {
	idxHigh, idxLow := Split14Bit(index)
	valHigh, valLow := Split14Bit(value)

	return []byte{
		FrameStart,
		ManufacturerID[0], ManufacturerID[1], ManufacturerID[2],
		StatusRequest,
		part & 0x7F,
		WishSet,
		AmountSingle,
		block & 0x7F,
		section & 0x7F,
		idxHigh, idxLow,
		valHigh, valLow,
		FrameEnd,
	}
}
