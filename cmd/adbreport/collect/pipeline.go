package collect

import (
	"context"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/stage"
)

// executePipeline runs the fixed collection pipeline for `adbreport collect`.
// The sequence is strictly linear; every stage after device selection is
// best-effort except packaging.
func executePipeline(ctx context.Context, in stage.Envelope, deps stage.Deps) (stage.Envelope, error) {
	stages := []string{
		"discover-devices",
		"probe-app-dirs",
		"capture-summary",
		"pull-directories",
		"pull-recent-files",
		"collect-logs",
		// collect-bugreport stays registered but out of the default list
		// until product signs off on shipping vendor bugreport bundles.
		"package-report",
	}
	return runStages(ctx, in, deps, stages)
}

// runStages executes the provided list of stage names in order.
func runStages(ctx context.Context, in stage.Envelope, deps stage.Deps, stages []string) (stage.Envelope, error) {
	out := in
	var err error
	for _, name := range stages {
		out, err = stage.Run(ctx, name, out, deps)
		if err != nil {
			return stage.Envelope{}, err
		}
	}
	return out, nil
}
