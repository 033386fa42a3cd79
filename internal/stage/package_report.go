package stage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/archive"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/manifest"
)

const packageStage = "package-report"

// packageReportRunner writes the artifact manifest into the report tree and
// compresses the whole tree plus metadata into the final incident archive.
// This is the only stage after device selection that can fail the run.
func packageReportRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	out := in
	manifestPath := filepath.Join(deps.Report.Dir, "manifest.yaml")
	if err := manifest.Write(manifestPath, in.Meta.Device, in.Artifacts); err != nil {
		// The archive is still valid without the manifest.
		accumulate(&out, deps, packageStage, "", fmt.Errorf("failed to write manifest: %w", err))
	}

	metadata := fmt.Sprintf("Incident Summary: %s\nTimestamp: %s\nDevice: %s",
		in.Meta.Summary, deps.Report.Timestamp, in.Meta.Device)
	archivePath := deps.Report.ArchivePath()
	if err := archive.Create(deps.Report.Dir, archivePath, metadata); err != nil {
		return Envelope{}, err
	}
	fmt.Fprintf(deps.Out, "Incident report created: %s\n", archivePath)
	return out, nil
}

func init() { Register(packageStage, packageReportRunner) }
