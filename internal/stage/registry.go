package stage

import (
	"context"
	"io"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/adb"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/prompt"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/report"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/route"
)

// Deps carries the external collaborators injected into every stage: the
// adb boundary, the interactive prompter, the report layout and the console
// writers.
type Deps struct {
	Bridge adb.Bridge
	Prompt *prompt.Prompter
	Report *report.Context
	Routes route.Table
	Out    io.Writer
	Err    io.Writer
}

// Runner executes a stage.
type Runner func(ctx context.Context, in Envelope, deps Deps) (Envelope, error)

var registry = map[string]Runner{}

// Register adds a stage runner.
func Register(name string, r Runner) {
	registry[name] = r
}

// Run executes a registered stage by name.
func Run(ctx context.Context, name string, in Envelope, deps Deps) (Envelope, error) {
	r, ok := registry[name]
	if !ok {
		return Envelope{}, ErrUnknown{name: name}
	}
	return r(ctx, in, deps)
}

// ErrUnknown is returned when a stage is not found.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown stage: " + e.name }
