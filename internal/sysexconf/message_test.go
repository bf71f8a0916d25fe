package sysexconf

import (
	"bytes"
	"testing"
)

// checkFrameShape verifies the invariants every frame must satisfy: start
// marker, manufacturer ID at offset 1, end marker, and 7-bit clean payload.
func checkFrameShape(t *testing.T, frame []byte) {
	t.Helper()

	if frame[0] != FrameStart {
		t.Errorf("frame start = 0x%02X, want 0x%02X", frame[0], FrameStart)
	}
	if !bytes.Equal(frame[1:4], ManufacturerID[:]) {
		t.Errorf("manufacturer ID = % 02X, want % 02X", frame[1:4], ManufacturerID)
	}
	if frame[len(frame)-1] != FrameEnd {
		t.Errorf("frame end = 0x%02X, want 0x%02X", frame[len(frame)-1], FrameEnd)
	}
	for i := 1; i < len(frame)-1; i++ {
		if frame[i] > 0x7F {
			t.Errorf("byte %d = 0x%02X, payload must be 7-bit clean", i, frame[i])
		}
	}
}

func TestBuildSpecialRequest(t *testing.T) {
	tests := []struct {
		name string
		wish byte
		want []byte
	}{
		{
			name: "connection open",
			wish: SpecialConnOpen,
			want: []byte{0xF0, 0x00, 0x53, 0x43, 0x00, 0x00, 0x01, 0xF7},
		},
		{
			name: "connection close",
			wish: SpecialConnClose,
			want: []byte{0xF0, 0x00, 0x53, 0x43, 0x00, 0x00, 0x00, 0xF7},
		},
		{
			name: "wish byte is masked to 7 bits",
			wish: 0x81,
			want: []byte{0xF0, 0x00, 0x53, 0x43, 0x00, 0x00, 0x01, 0xF7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildSpecialRequest(tt.wish)

			if len(frame) != SpecialRequestSize {
				t.Errorf("frame size = %d, want %d", len(frame), SpecialRequestSize)
			}
			checkFrameShape(t, frame)

			if !bytes.Equal(frame, tt.want) {
				t.Errorf("frame = % 02X, want % 02X", frame, tt.want)
			}
		})
	}
}

func TestBuildSetSingle(t *testing.T) {
	tests := []struct {
		name    string
		block   byte
		section byte
		index   int
		value   int
		part    byte
		want    []byte
	}{
		{
			name:    "button message type",
			block:   1,
			section: 1,
			index:   0,
			value:   24,
			want: []byte{
				0xF0, 0x00, 0x53, 0x43, 0x00, 0x00, 0x01, 0x00,
				0x01, 0x01, 0x00, 0x00, 0x00, 0x18, 0xF7,
			},
		},
		{
			name:    "button channel",
			block:   1,
			section: 4,
			index:   3,
			value:   16,
			want: []byte{
				0xF0, 0x00, 0x53, 0x43, 0x00, 0x00, 0x01, 0x00,
				0x01, 0x04, 0x00, 0x03, 0x00, 0x10, 0xF7,
			},
		},
		{
			name:    "14-bit index and value are split",
			block:   1,
			section: 3,
			index:   16383,
			value:   300,
			want: []byte{
				0xF0, 0x00, 0x53, 0x43, 0x00, 0x00, 0x01, 0x00,
				0x01, 0x03, 0x7F, 0x7F, 0x02, 0x2C, 0xF7,
			},
		},
		{
			name:    "block, section and part are masked",
			block:   0x81,
			section: 0x84,
			index:   0,
			value:   0,
			part:    0x80,
			want: []byte{
				0xF0, 0x00, 0x53, 0x43, 0x00, 0x00, 0x01, 0x00,
				0x01, 0x04, 0x00, 0x00, 0x00, 0x00, 0xF7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildSetSingle(tt.block, tt.section, tt.index, tt.value, tt.part)

			if len(frame) != SetSingleSize {
				t.Errorf("frame size = %d, want %d", len(frame), SetSingleSize)
			}
			checkFrameShape(t, frame)

			if !bytes.Equal(frame, tt.want) {
				t.Errorf("frame = % 02X, want % 02X", frame, tt.want)
			}
		})
	}
}

func BenchmarkBuildSetSingle(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildSetSingle(1, 3, i&0x3FFF, 24, 0)
	}
}
