package stage

import (
	"context"
	"fmt"
)

const summaryStage = "capture-summary"

func captureSummaryRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	out := in
	fmt.Fprintln(deps.Out, "Please provide a summary of the incident:")
	summary, err := deps.Prompt.Line("Incident Summary: ")
	if err != nil {
		return Envelope{}, fmt.Errorf("summary capture aborted: %w", err)
	}
	out.Meta.Summary = summary
	return out, nil
}

func init() { Register(summaryStage, captureSummaryRunner) }
