package buttoncfg

import (
	"fmt"
	"strings"
)

// Summary returns the two-line report printed after a successful write.
func (c *ButtonConfig) Summary(path string, size int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Wrote %d bytes to %s\n", size, path))
	b.WriteString(fmt.Sprintf("Button %d: CH=%d, BANK=%d (MSB=%d, LSB=%d), PC=%d",
		c.Button, c.Channel, c.Bank, c.BankMSB(), c.BankLSB(), c.Program))

	return b.String()
}

// FormatDetailed returns a multi-line breakdown of the configuration,
// suitable for the wizard result screen.
func (c *ButtonConfig) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Button Configuration ===\n")
	b.WriteString(fmt.Sprintf("Button Index:  %d\n", c.Button))
	b.WriteString(fmt.Sprintf("Message Type:  %s (code %d)\n", MessageTypeName(c.MessageType), c.MessageType))
	b.WriteString(fmt.Sprintf("MIDI Channel:  %d\n", c.Channel))
	b.WriteString(fmt.Sprintf("Bank:          %d (MSB=%d, LSB=%d)\n", c.Bank, c.BankMSB(), c.BankLSB()))
	b.WriteString(fmt.Sprintf("Program:       %d\n", c.Program))

	return b.String()
}
