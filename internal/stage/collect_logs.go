package stage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/manifest"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/report"
)

const collectLogsStage = "collect-logs"

// collectLogsRunner runs the device-introspection command table and writes
// each non-empty result to its own timestamped text file. Commands producing
// no output leave no file behind; failures are logged and skipped.
func collectLogsRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	out := in
	for _, lc := range in.Meta.Profile.LogCommands {
		fmt.Fprintf(deps.Out, "Collecting %s...\n", lc.Name)
		args := strings.Fields(lc.Command)
		text, err := deps.Bridge.Command(ctx, in.Meta.Device, args...)
		if err != nil {
			accumulate(&out, deps, collectLogsStage, lc.Command, err)
			continue
		}
		if text == "" {
			continue
		}
		name := lc.Name + "_" + deps.Report.Timestamp + ".txt"
		logPath := filepath.Join(deps.Report.DeviceInfo, name)
		if err := os.WriteFile(logPath, []byte(text), 0o644); err != nil {
			accumulate(&out, deps, collectLogsStage, lc.Command, err)
			continue
		}
		fmt.Fprintf(deps.Out, "%s saved to %s\n", lc.Name, logPath)
		out.Artifacts = append(out.Artifacts, manifest.Artifact{
			Category: "device-info",
			Source:   lc.Command,
			Dest:     filepath.Join(report.DeviceInfoFolder, name),
		})
	}
	return out, nil
}

func init() { Register(collectLogsStage, collectLogsRunner) }
