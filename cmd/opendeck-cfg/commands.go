package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opendeck-tools/opendeck-cfg/internal/buttoncfg"
	"github.com/opendeck-tools/opendeck-cfg/internal/config"
	"github.com/opendeck-tools/opendeck-cfg/internal/logging"
	"github.com/opendeck-tools/opendeck-cfg/internal/wizard/tui"
)

// Generation flags (on the root command, so the bare invocation mirrors the
// classic one-shot generator)
var (
	outPath     string
	buttonIndex int
	channel     int
	bank        int
	msbLSB      bool
	msb         int
	lsb         int
	pc          int
	messageType int
	presetName  string
)

// generationFlags are the root flags that select one-shot generation over
// the wizard.
var generationFlags = []string{
	"out", "button", "channel", "bank", "msb-lsb", "msb", "lsb", "pc",
	"message-type", "preset",
}

func init() {
	rootCmd.Flags().StringVar(&outPath, "out", "", "Output .syx file (parent directories are created)")
	rootCmd.Flags().IntVar(&buttonIndex, "button", 0, "Button index 0-16383")
	rootCmd.Flags().IntVar(&channel, "channel", 0, "MIDI channel 1-16")
	rootCmd.Flags().IntVar(&bank, "bank", 0, "14-bit bank number 0-16383")
	rootCmd.Flags().BoolVar(&msbLSB, "msb-lsb", false, "Provide --msb and --lsb instead of --bank")
	rootCmd.Flags().IntVar(&msb, "msb", 0, "Bank MSB 0-127 (used with --msb-lsb)")
	rootCmd.Flags().IntVar(&lsb, "lsb", 0, "Bank LSB 0-127 (used with --msb-lsb)")
	rootCmd.Flags().IntVar(&pc, "pc", 0, "Program Change number 0-127")
	rootCmd.Flags().IntVar(&messageType, "message-type", buttoncfg.MessageTypeBankSelectProgramChange,
		"Firmware message-type code (see 'opendeck-cfg types')")
	rootCmd.Flags().StringVar(&presetName, "preset", "", "Load channel/bank/program from a saved preset")

	rootCmd.MarkFlagsMutuallyExclusive("bank", "msb-lsb")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(typesCmd)
}

// generateRequested reports whether any generation flag was supplied.
func generateRequested(cmd *cobra.Command) bool {
	for _, name := range generationFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	if !flags.Changed("out") {
		return errors.New("--out is required")
	}
	if !flags.Changed("button") {
		return errors.New("--button is required")
	}

	cfg := buttoncfg.NewButtonConfig(buttonIndex, 0, 0, 0)

	// Preset values load first; explicit flags override them below.
	if presetName != "" {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load presets: %w", err)
		}
		preset := registry.GetPreset(presetName)
		if preset == nil {
			return fmt.Errorf("unknown preset %q (see 'opendeck-cfg preset list')", presetName)
		}
		applyPreset(cfg, preset)
	}

	if flags.Changed("channel") {
		cfg.Channel = channel
	} else if presetName == "" {
		return errors.New("--channel is required")
	}

	if flags.Changed("pc") {
		cfg.Program = pc
	} else if presetName == "" {
		return errors.New("--pc is required")
	}

	switch {
	case flags.Changed("bank"):
		cfg.Bank = bank
	case msbLSB:
		if err := buttoncfg.ValidateBankMSB(msb); err != nil {
			return err
		}
		if err := buttoncfg.ValidateBankLSB(lsb); err != nil {
			return err
		}
		cfg.Bank = buttoncfg.BankFromMSBLSB(msb, lsb)
	case presetName == "":
		return errors.New("one of --bank or --msb-lsb is required")
	}

	if flags.Changed("message-type") {
		cfg.MessageType = messageType
	}

	// Validate everything before touching the filesystem.
	if errs := buttoncfg.ValidateConfig(cfg); len(errs) > 0 {
		return errors.New(buttoncfg.FormatValidationErrors(errs))
	}

	frames := buttoncfg.BuildMessageSequence(cfg)
	for i, frame := range frames {
		logging.LogFrame(fmt.Sprintf("frame %d", i+1), frame)
	}
	data := buttoncfg.Flatten(frames)

	if err := buttoncfg.WriteFile(outPath, data); err != nil {
		return err
	}

	fmt.Println(cfg.Summary(outPath, len(data)))
	return nil
}

// applyPreset copies stored preset values into cfg. A stored message type
// of 0 is a real firmware code ("Note") and is applied as-is; only a nil
// pointer leaves the application default in place.
func applyPreset(cfg *buttoncfg.ButtonConfig, p *config.Preset) {
	cfg.Channel = p.Channel
	cfg.Bank = p.Bank
	cfg.Program = p.Program
	if p.MessageType != nil {
		cfg.MessageType = *p.MessageType
	}
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch interactive configuration wizard",
	Long: `Launch an interactive form for entering the button parameters.

The wizard collects the output path, button index, channel, bank and
program number, then validates and writes the .syx file.`,
	Example: `  # Launch the wizard
  opendeck-cfg wizard
  # Or simply (wizard is default):
  opendeck-cfg`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("wizard requires an interactive terminal; use the generation flags instead (see --help)")
	}

	defaultDir := ""
	if registry, err := config.LoadRegistry(); err == nil && registry.Preferences != nil {
		defaultDir = registry.Preferences.DefaultOutputDir
	}

	return tui.Run(defaultDir)
}

// presetCmd groups the preset management subcommands
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved button presets",
	Long: `Manage named presets of channel, bank and program values.

Presets are stored in the user configuration file and can be applied with
the --preset flag when generating.`,
}

// Preset save flags
var (
	presetChannel     int
	presetBank        int
	presetProgram     int
	presetMessageType int
	presetDescription string
)

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save or replace a preset",
	Example: `  # Save a preset for channel 1, bank 300, program 42
  opendeck-cfg preset save lead --channel 1 --bank 300 --pc 42

  # Use it later
  opendeck-cfg --out lead.syx --button 3 --preset lead`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetSave,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

func init() {
	presetSaveCmd.Flags().IntVar(&presetChannel, "channel", 1, "MIDI channel 1-16")
	presetSaveCmd.Flags().IntVar(&presetBank, "bank", 0, "14-bit bank number 0-16383")
	presetSaveCmd.Flags().IntVar(&presetProgram, "pc", 0, "Program Change number 0-127")
	presetSaveCmd.Flags().IntVar(&presetMessageType, "message-type", buttoncfg.MessageTypeBankSelectProgramChange,
		"Firmware message-type code")
	presetSaveCmd.Flags().StringVar(&presetDescription, "description", "", "Free-form note")

	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetDeleteCmd)
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	name := args[0]

	var errs []error
	if err := buttoncfg.ValidateChannel(presetChannel); err != nil {
		errs = append(errs, err)
	}
	if err := buttoncfg.ValidateBank(presetBank); err != nil {
		errs = append(errs, err)
	}
	if err := buttoncfg.ValidateProgram(presetProgram); err != nil {
		errs = append(errs, err)
	}
	if err := buttoncfg.ValidateMessageType(presetMessageType); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.New(buttoncfg.FormatValidationErrors(errs))
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	mt := presetMessageType
	registry.SetPreset(name, &config.Preset{
		Channel:     presetChannel,
		Bank:        presetBank,
		Program:     presetProgram,
		MessageType: &mt,
		Description: presetDescription,
	})

	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("Saved preset %q (CH=%d, BANK=%d, PC=%d)\n", name, presetChannel, presetBank, presetProgram)
	return nil
}

func runPresetList(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	names := registry.PresetNames()
	if len(names) == 0 {
		fmt.Println("No presets saved.")
		fmt.Println("Use 'opendeck-cfg preset save <name>' to create one.")
		return nil
	}

	for _, name := range names {
		p := registry.GetPreset(name)
		mt := buttoncfg.MessageTypeBankSelectProgramChange
		if p.MessageType != nil {
			mt = *p.MessageType
		}
		fmt.Printf("%s: CH=%d, BANK=%d (MSB=%d, LSB=%d), PC=%d, type=%s\n",
			name, p.Channel, p.Bank, p.Bank>>7, p.Bank&0x7F, p.Program,
			buttoncfg.MessageTypeName(mt))
		if p.Description != "" {
			fmt.Printf("    %s\n", p.Description)
		}
	}

	return nil
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	if !registry.DeletePreset(name) {
		return fmt.Errorf("unknown preset %q", name)
	}

	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("Deleted preset %q\n", name)
	return nil
}

// typesCmd lists the firmware button message types
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List firmware button message types",
	Long: `List the button message-type codes known to the firmware.

The codes are ordinal enum values and may shift between firmware releases;
pass --message-type to override the default when generating.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for code := 0; code < buttoncfg.MessageTypeCount(); code++ {
			marker := "  "
			if code == buttoncfg.MessageTypeBankSelectProgramChange {
				marker = "* "
			}
			fmt.Printf("%s%3d  %s\n", marker, code, buttoncfg.MessageTypeName(code))
		}
		fmt.Println()
		fmt.Println("* default message type for generated configurations")
	},
}
