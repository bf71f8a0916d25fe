package buttoncfg

import "testing"

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(int) error
		value   int
		wantErr bool
	}{
		{"button min", ValidateButtonIndex, 0, false},
		{"button max", ValidateButtonIndex, 16383, false},
		{"button negative", ValidateButtonIndex, -1, true},
		{"button too large", ValidateButtonIndex, 16384, true},

		{"channel min", ValidateChannel, 1, false},
		{"channel max", ValidateChannel, 16, false},
		{"channel zero", ValidateChannel, 0, true},
		{"channel seventeen", ValidateChannel, 17, true},

		{"program min", ValidateProgram, 0, false},
		{"program max", ValidateProgram, 127, false},
		{"program too large", ValidateProgram, 128, true},
		{"program negative", ValidateProgram, -1, true},

		{"bank min", ValidateBank, 0, false},
		{"bank max", ValidateBank, 16383, false},
		{"bank too large", ValidateBank, 16384, true},

		{"msb max", ValidateBankMSB, 127, false},
		{"msb too large", ValidateBankMSB, 128, true},
		{"lsb max", ValidateBankLSB, 127, false},
		{"lsb too large", ValidateBankLSB, 128, true},

		{"message type known", ValidateMessageType, MessageTypeBankSelectProgramChange, false},
		{"message type last", ValidateMessageType, MessageTypeCount() - 1, false},
		{"message type past enum", ValidateMessageType, MessageTypeCount(), true},
		{"message type negative", ValidateMessageType, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("got error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *ButtonConfig
		wantErrors int
	}{
		{
			name:       "valid config",
			cfg:        NewButtonConfig(0, 1, 2, 5),
			wantErrors: 0,
		},
		{
			name:       "boundary values",
			cfg:        NewButtonConfig(16383, 16, 16383, 127),
			wantErrors: 0,
		},
		{
			name:       "single invalid field",
			cfg:        NewButtonConfig(0, 0, 2, 5),
			wantErrors: 1,
		},
		{
			name: "every field invalid",
			cfg: &ButtonConfig{
				Button:      -1,
				Channel:     17,
				Bank:        16384,
				Program:     128,
				MessageType: 99,
			},
			wantErrors: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateConfig(tt.cfg)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateConfig() returned %d errors, want %d: %s",
					len(errors), tt.wantErrors, FormatValidationErrors(errors))
			}
		})
	}
}
