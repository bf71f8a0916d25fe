// Opendeck-cfg generates OpenDeck SysEx configuration files.
//
// It encodes a fixed configuration session that sets up one control-surface
// button as "Bank Select (MSB/LSB) + Program Change" and writes the result
// to a .syx file. The tool never talks to a device; transmit the generated
// file with any SysEx sender.
//
// Usage:
//
//	opendeck-cfg --out button.syx --button 0 --channel 1 --bank 2 --pc 5
//
// Running without arguments launches the interactive wizard.
// See 'opendeck-cfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opendeck-tools/opendeck-cfg/internal/logging"
	"github.com/opendeck-tools/opendeck-cfg/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}

	logging.Sync()
}

var rootCmd = &cobra.Command{
	Use:   "opendeck-cfg",
	Short: "OpenDeck button configuration generator",
	Long: `Generate OpenDeck SysEx (.syx) files that configure one button as
Bank Select (MSB/LSB) + Program Change.

The generated file contains a complete configuration session (connection
open, four parameter sets, connection close) and can be sent to the device
with any SysEx transmitter.

If no flags or command are given, the interactive wizard will launch.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateRequested(cmd) {
			return runGenerate(cmd, args)
		}
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("opendeck-cfg %s (commit: %s)\n", version.Version, version.Commit)
	},
}
