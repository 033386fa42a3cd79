package stage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/manifest"
)

const bugreportStage = "collect-bugreport"

// collectBugreportRunner generates the vendor bugreport bundle into the
// report directory. Registered but absent from the default pipeline; see
// the stage list in cmd/adbreport/collect.
func collectBugreportRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	out := in
	fmt.Fprintln(deps.Out, "Generating bug report...")
	name := "bugreport_" + deps.Report.Timestamp + ".zip"
	dest := filepath.Join(deps.Report.Dir, name)
	if err := deps.Bridge.Bugreport(ctx, in.Meta.Device, dest); err != nil {
		accumulate(&out, deps, bugreportStage, "bugreport "+dest, err)
		return out, nil
	}
	fmt.Fprintf(deps.Out, "Bug report saved to %s\n", dest)
	out.Artifacts = append(out.Artifacts, manifest.Artifact{
		Category: "bugreport",
		Source:   "bugreport",
		Dest:     name,
	})
	return out, nil
}

func init() { Register(bugreportStage, collectBugreportRunner) }
