package stage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/manifest"
)

const pullDirsStage = "pull-directories"

// thumbnailMarker excludes the hidden thumbnail cache from full-tree pulls.
const thumbnailMarker = ".thumbnails"

// pullDirectoriesRunner copies each configured directory tree from the
// device into a local folder named after the source directory. Skipped
// entirely in simplified mode; each entry failure is logged and skipped.
func pullDirectoriesRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Meta.Simplified {
		return in, nil
	}
	out := in
	for _, dir := range in.Meta.Profile.PullDirectories {
		pullDirectory(ctx, &out, deps, dir)
	}
	return out, nil
}

func pullDirectory(ctx context.Context, env *Envelope, deps Deps, dir string) {
	localDir := filepath.Join(deps.Report.Dir, path.Base(dir))
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		accumulate(env, deps, pullDirsStage, "", err)
		return
	}

	script := "ls -p " + dir
	listing, err := deps.Bridge.Shell(ctx, env.Meta.Device, script)
	if err != nil {
		accumulate(env, deps, pullDirsStage, script, err)
		return
	}
	if listing == "" {
		fmt.Fprintf(deps.Out, "No items found in %s\n", dir)
		return
	}
	for _, item := range strings.Split(listing, "\n") {
		item = strings.TrimSpace(item)
		if item == "" || strings.Contains(item, thumbnailMarker) {
			continue
		}
		remote := dir + "/" + strings.TrimSuffix(item, "/")
		if err := deps.Bridge.Pull(ctx, env.Meta.Device, remote, localDir); err != nil {
			accumulate(env, deps, pullDirsStage, "pull "+remote, err)
			continue
		}
		fmt.Fprintf(deps.Out, "Pulled %s to %s\n", remote, localDir)
		env.Artifacts = append(env.Artifacts, manifest.Artifact{
			Category: "media",
			Source:   remote,
			Dest:     deps.Report.Rel(filepath.Join(localDir, path.Base(remote))),
		})
	}
}

func init() { Register(pullDirsStage, pullDirectoriesRunner) }
