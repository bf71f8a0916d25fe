package config

import "time"

// Registry represents the entire user configuration file.
// It stores named button presets and application preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Presets     map[string]*Preset `yaml:"presets,omitempty"` // Keyed by preset name
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Preset is a reusable set of button parameters. The button index and
// output path are deliberately not stored; those vary per invocation.
//
// MessageType is a pointer because 0 is a valid firmware code ("Note"); a
// nil pointer means the preset never set it and the application default
// applies. The omitempty tag only drops the nil case from the file.
type Preset struct {
	Channel     int       `yaml:"channel"`                // MIDI channel 1-16
	Bank        int       `yaml:"bank"`                   // 14-bit bank number
	Program     int       `yaml:"program"`                // Program change number
	MessageType *int      `yaml:"message_type,omitempty"` // Firmware message-type code, nil = unset
	Description string    `yaml:"description,omitempty"`  // User note
	UpdatedAt   time.Time `yaml:"updated_at,omitempty"`   // Last save time
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultOutputDir string `yaml:"default_output_dir,omitempty"` // Directory offered by the wizard
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Presets:     make(map[string]*Preset),
		Preferences: &Preferences{},
	}
}

// GetPreset retrieves a preset by name.
// Returns nil if the preset doesn't exist.
func (r *Registry) GetPreset(name string) *Preset {
	return r.Presets[name]
}

// SetPreset stores or replaces a preset under the given name.
func (r *Registry) SetPreset(name string, p *Preset) {
	if r.Presets == nil {
		r.Presets = make(map[string]*Preset)
	}
	p.UpdatedAt = time.Now()
	r.Presets[name] = p
}

// DeletePreset removes a preset. Returns true if it existed.
func (r *Registry) DeletePreset(name string) bool {
	if _, ok := r.Presets[name]; !ok {
		return false
	}
	delete(r.Presets, name)
	return true
}
