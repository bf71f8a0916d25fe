package buttoncfg

// ButtonConfig describes one button to be configured as Bank Select +
// Program Change. All fields hold user-facing values; encoding-level
// masking and splitting happen in the sysexconf package.
type ButtonConfig struct {
	Button  int // parameter index, 0..16383
	Channel int // MIDI channel 1..16, encoded verbatim (no 0-based shift)
	Bank    int // 14-bit bank number, 0..16383
	Program int // program change number, 0..127

	// MessageType is the firmware message-type code for the button.
	// Defaults to MessageTypeBankSelectProgramChange; overridable because
	// the firmware enum is ordinal and has moved between releases.
	MessageType int
}

// NewButtonConfig returns a config with the message type defaulted.
func NewButtonConfig(button, channel, bank, program int) *ButtonConfig {
	return &ButtonConfig{
		Button:      button,
		Channel:     channel,
		Bank:        bank,
		Program:     program,
		MessageType: MessageTypeBankSelectProgramChange,
	}
}

// BankMSB returns the controller 0 (Bank Select MSB) portion of the bank.
func (c *ButtonConfig) BankMSB() int {
	return c.Bank >> 7
}

// BankLSB returns the controller 32 (Bank Select LSB) portion of the bank.
func (c *ButtonConfig) BankLSB() int {
	return c.Bank & 0x7F
}

// BankFromMSBLSB combines a Bank Select MSB/LSB pair into the 14-bit bank
// number the firmware stores in the button value field.
func BankFromMSBLSB(msb, lsb int) int {
	return msb<<7 | lsb
}
