package buttoncfg

import (
	"fmt"
	"strings"
)

// ValidateButtonIndex validates a button parameter index.
// Valid range is 0-16383 (14-bit).
func ValidateButtonIndex(button int) error {
	if button < 0 || button > 0x3FFF {
		return fmt.Errorf("button index must be 0-16383, got %d", button)
	}
	return nil
}

// ValidateChannel validates a MIDI channel. Channels are 1-based; the value
// is encoded into the channel field exactly as given.
func ValidateChannel(channel int) error {
	if channel < 1 || channel > 16 {
		return fmt.Errorf("channel must be 1-16, got %d", channel)
	}
	return nil
}

// ValidateProgram validates a program change number.
func ValidateProgram(program int) error {
	if program < 0 || program > 127 {
		return fmt.Errorf("program number must be 0-127, got %d", program)
	}
	return nil
}

// ValidateBank validates a 14-bit bank number.
func ValidateBank(bank int) error {
	if bank < 0 || bank > 0x3FFF {
		return fmt.Errorf("bank must be 0-16383 (14-bit), got %d", bank)
	}
	return nil
}

// ValidateBankMSB validates the Bank Select MSB (controller 0) value.
func ValidateBankMSB(msb int) error {
	if msb < 0 || msb > 127 {
		return fmt.Errorf("bank MSB must be 0-127, got %d", msb)
	}
	return nil
}

// ValidateBankLSB validates the Bank Select LSB (controller 32) value.
func ValidateBankLSB(lsb int) error {
	if lsb < 0 || lsb > 127 {
		return fmt.Errorf("bank LSB must be 0-127, got %d", lsb)
	}
	return nil
}

// ValidateMessageType validates a firmware button message-type code. Codes
// outside the known enum are rejected so a typo cannot silently program a
// different behavior.
func ValidateMessageType(code int) error {
	if code < 0 || code >= MessageTypeCount() {
		return fmt.Errorf("message type must be 0-%d, got %d", MessageTypeCount()-1, code)
	}
	return nil
}

// ValidateConfig validates a complete button configuration.
// Returns a slice of validation errors (empty if valid).
func ValidateConfig(cfg *ButtonConfig) []error {
	var errors []error

	if err := ValidateButtonIndex(cfg.Button); err != nil {
		errors = append(errors, err)
	}
	if err := ValidateChannel(cfg.Channel); err != nil {
		errors = append(errors, err)
	}
	if err := ValidateBank(cfg.Bank); err != nil {
		errors = append(errors, err)
	}
	if err := ValidateProgram(cfg.Program); err != nil {
		errors = append(errors, err)
	}
	if err := ValidateMessageType(cfg.MessageType); err != nil {
		errors = append(errors, err)
	}

	return errors
}

// FormatValidationErrors joins validation errors into a single
// user-facing message.
func FormatValidationErrors(errors []error) string {
	if len(errors) == 0 {
		return "no validation errors"
	}

	msgs := make([]string, len(errors))
	for i, err := range errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
