// Package logging provides the shared zap logger for opendeck-cfg.
//
// Logging is silent by default so the CLI summary output stays clean; set
// OPENDECK_LOG_LEVEL (debug, info, warn, error) to enable console logging
// on stderr. Debug level additionally dumps every generated SysEx frame as
// hex via LogFrame.
package logging
