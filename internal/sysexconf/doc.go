// Package sysexconf implements the OpenDeck SysEx configuration protocol.
//
// This package handles construction of the vendor-specific System Exclusive
// frames understood by the libsysexconf layer of the OpenDeck firmware.
// Frames carry device configuration requests and are 7-bit clean: every
// byte between the frame markers has its high bit clear.
//
// # Frame Structure
//
// All frames share a common header:
//   - Frame start: 0xF0
//   - Manufacturer ID: 0x00 0x53 0x43 (Shantea Controls)
//   - Status byte: 0x00 for host-to-device requests
//   - Part byte
//
// and end with the 0xF7 frame marker.
//
// # Message Types
//
// Two frame shapes are supported:
//   - Special requests: connection open/close, no parameter payload (8 bytes)
//   - Single-parameter set requests: block, section, index and value
//     addressing one device parameter (15 bytes)
//
// # 14-bit Values
//
// Parameter index and value fields are logical 14-bit quantities. They are
// transported as two 7-bit bytes using the Split14Bit transform, which must
// match the firmware-side unpacking bit for bit. See Split14Bit for the
// exact layout.
//
// # Usage Example
//
//	open := sysexconf.BuildSpecialRequest(sysexconf.SpecialConnOpen)
//	set := sysexconf.BuildSetSingle(1, 4, buttonIndex, channel, 0)
//	close := sysexconf.BuildSpecialRequest(sysexconf.SpecialConnClose)
//
// # Thread Safety
//
// All functions are pure and stateless, safe for concurrent use.
package sysexconf
