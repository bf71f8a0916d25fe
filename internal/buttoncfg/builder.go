package buttoncfg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opendeck-tools/opendeck-cfg/internal/sysexconf"
)

// SequenceSize is the flattened byte size of one configuration
// transaction: two special requests plus four single-parameter sets.
const SequenceSize = 2*sysexconf.SpecialRequestSize + 4*sysexconf.SetSingleSize

// BuildMessageSequence builds the six-frame session configuring one button.
// The order is a protocol invariant; the device processes the frames as a
// single session.
//
// Inputs must already be validated with ValidateConfig; the builders mask
// rather than reject.
func BuildMessageSequence(cfg *ButtonConfig) [][]byte {
	return [][]byte{
		sysexconf.BuildSpecialRequest(sysexconf.SpecialConnOpen),
		sysexconf.BuildSetSingle(BlockButtons, SectionButtonMessageType, cfg.Button, cfg.MessageType, 0),
		sysexconf.BuildSetSingle(BlockButtons, SectionButtonChannel, cfg.Button, cfg.Channel, 0),
		sysexconf.BuildSetSingle(BlockButtons, SectionButtonMIDIID, cfg.Button, cfg.Program, 0),
		sysexconf.BuildSetSingle(BlockButtons, SectionButtonValue, cfg.Button, cfg.Bank, 0),
		sysexconf.BuildSpecialRequest(sysexconf.SpecialConnClose),
	}
}

// Flatten concatenates frames into the byte stream written to disk.
func Flatten(frames [][]byte) []byte {
	size := 0
	for _, f := range frames {
		size += len(f)
	}

	out := make([]byte, 0, size)
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}

// Encode builds and flattens the configuration sequence in one step.
func Encode(cfg *ButtonConfig) []byte {
	return Flatten(BuildMessageSequence(cfg))
}

// WriteFile writes the encoded byte stream to path, creating parent
// directories as needed. The data is written in a single call, so the file
// either holds the complete stream or the write fails as a whole.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
