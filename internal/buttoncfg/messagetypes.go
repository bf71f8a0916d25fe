package buttoncfg

import "fmt"

// OpenDeck configuration blocks.
const (
	BlockGlobal  = 0
	BlockButtons = 1
)

// Sections within the buttons block.
const (
	SectionButtonType        = 0
	SectionButtonMessageType = 1
	SectionButtonMIDIID      = 2
	SectionButtonValue       = 3
	SectionButtonChannel     = 4
)

// MessageTypeBankSelectProgramChange is the firmware enum code for the
// "Bank Select (MSB/LSB) + Program Change" button message type. The button
// then sends CC#0 (bank MSB), CC#32 (bank LSB) and a Program Change on
// every press.
const MessageTypeBankSelectProgramChange = 24

// messageTypeNames lists the firmware button message types in enum order.
// The enum is ordinal, so the position in this slice is the wire code.
var messageTypeNames = []string{
	"Note",
	"Program Change",
	"Control Change",
	"Control Change with Reset",
	"MMC Stop",
	"MMC Play",
	"MMC Record",
	"MMC Pause",
	"Real-Time Clock",
	"Real-Time Start",
	"Real-Time Continue",
	"Real-Time Stop",
	"Real-Time Active Sensing",
	"Real-Time System Reset",
	"Program Change Increment",
	"Program Change Decrement",
	"None",
	"Preset Change",
	"Multi-Value Increment/Reset Note",
	"Multi-Value Increment/Decrement Note",
	"Multi-Value Increment/Reset CC",
	"Multi-Value Increment/Decrement CC",
	"Note Off Only",
	"Control Change 0 Only",
	"Bank Select + Program Change",
	"Program Change Offset Increment",
	"Program Change Offset Decrement",
	"BPM Increment",
	"BPM Decrement",
	"MMC Play/Stop",
	"Note Legato",
}

// MessageTypeName returns the human-readable name for a firmware button
// message-type code.
func MessageTypeName(code int) string {
	if code < 0 || code >= len(messageTypeNames) {
		return fmt.Sprintf("Unknown (%d)", code)
	}
	return messageTypeNames[code]
}

// MessageTypeCount returns the number of known button message types.
func MessageTypeCount() int {
	return len(messageTypeNames)
}
