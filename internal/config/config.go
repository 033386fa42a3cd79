// Package config loads the optional collection profile: which device
// directories to pull, which recent-file sources to sample, which
// introspection commands to capture. Profiles are CUE files; absent fields
// fall back to the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Bridge configures the external adb invocation.
type Bridge struct {
	Program   string `json:"program"`
	TimeoutMs int    `json:"timeoutMs"`
}

// RecentSource is a device directory paired with a listing command that
// sorts entries by modification time, newest first.
type RecentSource struct {
	Dir         string `json:"dir"`
	ListCommand string `json:"listCommand"`
}

// LogCommand names one device-introspection command. The command string is
// whitespace-split into adb arguments.
type LogCommand struct {
	Name    string `json:"name"`
	Command string `json:"command"`
}

// Profile is the full collection profile for one run.
type Profile struct {
	ConfigVersion   string
	Bridge          Bridge
	PullDirectories []string
	RecentSources   []RecentSource
	AppDataDirs     []string
	LogCommands     []LogCommand
}

// Default returns the built-in profile, reproducing the QA collection tables.
func Default() Profile {
	return Profile{
		ConfigVersion: "1",
		Bridge:        Bridge{Program: "adb", TimeoutMs: 60000},
		PullDirectories: []string{
			"/sdcard/Pictures",
			"/sdcard/Movies",
		},
		RecentSources: []RecentSource{
			{Dir: "/sdcard/Movies", ListCommand: `ls -t /sdcard/Movies | grep "^screen-"`},
			{Dir: "/sdcard/Documents/Navsuite", ListCommand: "ls -t /sdcard/Documents/Navsuite"},
		},
		AppDataDirs: []string{
			"/sdcard/Android/data/org.mavlink.qgroundcontrol/files/PDW_GCS",
			"/sdcard/Android/data/ai.pdw.gcs/files/PDW_GCS",
		},
		LogCommands: []LogCommand{
			{Name: "logcat", Command: "logcat -d"},
			{Name: "device_info", Command: "shell getprop"},
			{Name: "meminfo", Command: "shell dumpsys meminfo ai.pdw.gcs"},
			{Name: "cpu_usage", Command: "shell top -n 1"},
			{Name: "network_stats", Command: "shell dumpsys netstats"},
			{Name: "network_config", Command: "shell ifconfig"},
			{Name: "battery_info", Command: "shell dumpsys battery"},
			{Name: "storage_info", Command: "shell df -h"},
			{Name: "event_logs", Command: "shell dumpsys activity"},
		},
	}
}

// LoadAndValidate loads a CUE profile and validates the minimal required
// schema. Required fields:
//   - configVersion: string
func LoadAndValidate(path string) error {
	_, err := Load(path)
	return err
}

// Load parses a CUE profile, overlaying present fields onto the defaults.
func Load(path string) (Profile, error) {
	if filepath.Ext(path) != ".cue" {
		return Profile{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Profile{}, fmt.Errorf("invalid config: %v", err)
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Profile{}, err
	}

	p := Default()
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&p.ConfigVersion); err != nil {
		return Profile{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if err := decodeOptional(v, "bridge", &p.Bridge); err != nil {
		return Profile{}, err
	}
	if err := decodeOptional(v, "pullDirectories", &p.PullDirectories); err != nil {
		return Profile{}, err
	}
	if err := decodeOptional(v, "recentSources", &p.RecentSources); err != nil {
		return Profile{}, err
	}
	if err := decodeOptional(v, "appDataDirs", &p.AppDataDirs); err != nil {
		return Profile{}, err
	}
	if err := decodeOptional(v, "logCommands", &p.LogCommands); err != nil {
		return Profile{}, err
	}
	if err := validate(p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

// decodeOptional decodes the named field into out when present, leaving the
// default value in place otherwise.
func decodeOptional(v cue.Value, name string, out any) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if err := f.Decode(out); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}

func validate(p Profile) error {
	if p.Bridge.Program == "" {
		return errors.New("bridge.program must not be empty")
	}
	for i, s := range p.RecentSources {
		if s.Dir == "" || s.ListCommand == "" {
			return fmt.Errorf("recentSources[%d]: dir and listCommand are required", i)
		}
	}
	for i, lc := range p.LogCommands {
		if lc.Name == "" || lc.Command == "" {
			return fmt.Errorf("logCommands[%d]: name and command are required", i)
		}
	}
	return nil
}
