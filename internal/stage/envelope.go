package stage

import (
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/config"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/manifest"
)

// Error represents one recoverable collection failure. The run continues;
// the item is simply absent from the final archive.
type Error struct {
	Stage   string `json:"stage"`
	Command string `json:"command,omitempty"`
	Message string `json:"message"`
}

// Meta holds run-wide settings. Profile and flags are fixed before the
// pipeline starts; Device and Summary are filled by the early stages.
type Meta struct {
	Profile    config.Profile
	NumRecent  int
	Simplified bool

	Device  string
	Summary string
}

// Envelope is the contract passed between stages. Stages append to Sources,
// Artifacts and Errors and never remove entries written by earlier stages.
type Envelope struct {
	Meta      *Meta
	Sources   []config.RecentSource
	Artifacts []manifest.Artifact
	Errors    []Error
}
