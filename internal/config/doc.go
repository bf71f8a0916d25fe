// Package config manages persistent user configuration for opendeck-cfg.
//
// It stores named button presets (channel, bank, program, message type) and
// application preferences in a YAML file under the platform configuration
// directory. Saves are atomic: the file is written to a temporary path and
// renamed into place.
//
// Presets hold only the reusable parameters; the button index and output
// path are per-invocation and never persisted.
package config
