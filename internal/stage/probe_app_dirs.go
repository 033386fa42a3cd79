package stage

import (
	"context"
	"fmt"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/config"
)

const probeStage = "probe-app-dirs"

// probeAppDirsRunner checks which candidate application data directories
// exist on the device and adds their console-log subfolders as recent-file
// sources. The run proceeds without them when neither exists.
func probeAppDirsRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	out := in
	found := 0
	for _, dir := range in.Meta.Profile.AppDataDirs {
		script := fmt.Sprintf("test -d %s && echo exists", dir)
		res, err := deps.Bridge.Shell(ctx, in.Meta.Device, script)
		if err != nil {
			accumulate(&out, deps, probeStage, script, err)
			continue
		}
		if res != "exists" {
			continue
		}
		found++
		logDir := dir + "/Logs/ConsoleLogs"
		out.Sources = append(out.Sources, config.RecentSource{
			Dir:         logDir,
			ListCommand: "ls -t " + logDir,
		})
	}
	if found == 0 {
		fmt.Fprintln(deps.Err, "No valid application directories found.")
	}
	return out, nil
}

func init() { Register(probeStage, probeAppDirsRunner) }
