package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	if r.Version != 1 {
		t.Errorf("Version = %d, want 1", r.Version)
	}
	if r.Presets == nil {
		t.Error("Presets map not initialized")
	}
	if r.Preferences == nil {
		t.Error("Preferences not initialized")
	}
}

func TestPresetLifecycle(t *testing.T) {
	r := NewRegistry()

	if got := r.GetPreset("lead"); got != nil {
		t.Errorf("GetPreset on empty registry = %v, want nil", got)
	}

	r.SetPreset("lead", &Preset{Channel: 1, Bank: 300, Program: 42})

	p := r.GetPreset("lead")
	if p == nil {
		t.Fatal("GetPreset returned nil after SetPreset")
	}
	if p.Channel != 1 || p.Bank != 300 || p.Program != 42 {
		t.Errorf("preset = %+v, want Channel=1 Bank=300 Program=42", p)
	}
	if p.UpdatedAt.IsZero() {
		t.Error("SetPreset did not stamp UpdatedAt")
	}

	if !r.DeletePreset("lead") {
		t.Error("DeletePreset returned false for existing preset")
	}
	if r.DeletePreset("lead") {
		t.Error("DeletePreset returned true for missing preset")
	}
}

func TestPresetNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zulu", "alpha", "mike"} {
		r.SetPreset(name, &Preset{Channel: 1})
	}

	got := r.PresetNames()
	want := []string{"alpha", "mike", "zulu"}

	if len(got) != len(want) {
		t.Fatalf("PresetNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PresetNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPresetMessageTypeZeroSurvivesYAML(t *testing.T) {
	// Code 0 is a real firmware message type; it must be written to the
	// file and come back as a set value, not as "unset".
	mt := 0
	r := NewRegistry()
	r.SetPreset("note", &Preset{Channel: 1, MessageType: &mt})

	data, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "message_type: 0") {
		t.Errorf("marshaled yaml is missing message_type: 0:\n%s", data)
	}

	var loaded Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	p := loaded.GetPreset("note")
	if p == nil {
		t.Fatal("preset lost in round trip")
	}
	if p.MessageType == nil {
		t.Fatal("MessageType came back nil, want explicit 0")
	}
	if *p.MessageType != 0 {
		t.Errorf("MessageType = %d, want 0", *p.MessageType)
	}
}

func TestPresetMessageTypeUnsetOmitted(t *testing.T) {
	r := NewRegistry()
	r.SetPreset("plain", &Preset{Channel: 1})

	data, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "message_type") {
		t.Errorf("unset message type should be omitted from the file:\n%s", data)
	}

	var loaded Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p := loaded.GetPreset("plain"); p == nil || p.MessageType != nil {
		t.Errorf("unset message type should load as nil, got %+v", p)
	}
}

func TestRegistryYAMLRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.SetPreset("rhythm", &Preset{
		Channel:     10,
		Bank:        2,
		Program:     5,
		Description: "verse patch",
	})
	r.Preferences.DefaultOutputDir = "/tmp/syx"

	data, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var loaded Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if loaded.Version != 1 {
		t.Errorf("Version = %d, want 1", loaded.Version)
	}
	p := loaded.GetPreset("rhythm")
	if p == nil {
		t.Fatal("preset lost in round trip")
	}
	if p.Channel != 10 || p.Bank != 2 || p.Program != 5 || p.Description != "verse patch" {
		t.Errorf("preset = %+v", p)
	}
	if loaded.Preferences.DefaultOutputDir != "/tmp/syx" {
		t.Errorf("DefaultOutputDir = %q", loaded.Preferences.DefaultOutputDir)
	}
}
