// Package tui implements the interactive configuration wizard.
//
// The wizard is a single-screen bubbletea form that collects the button
// parameters (output path, button index, channel, bank, program), validates
// them with the buttoncfg package and writes the encoded SysEx file on
// submit. It is an alternative front end to the flag-based CLI; both drive
// the same encoder.
package tui
