// Package buttoncfg builds OpenDeck button configuration sequences.
//
// It layers OpenDeck's parameter addressing (blocks and sections) on top of
// the wire-level sysexconf package and knows how to express one complete
// configuration transaction: turning a button into a "Bank Select (MSB/LSB)
// + Program Change" control.
//
// A transaction is always six frames in this fixed order:
//  1. connection open
//  2. set button message type
//  3. set button channel
//  4. set button MIDI ID (program number)
//  5. set button value (14-bit bank)
//  6. connection close
//
// The device treats the sequence as one session; callers must preserve the
// order when transmitting.
//
// Validation is separate from encoding: the builders are total functions
// over masked inputs, and ValidateConfig is the single entry point that
// rejects out-of-range user values before anything is encoded or written.
package buttoncfg
