package stage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/config"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/manifest"
)

const pullRecentStage = "pull-recent-files"

// pullRecentRunner pulls the N most recently modified files from each
// recent-file source, routing every filename through the destination table.
// A listing shorter than N is not an error.
func pullRecentRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	out := in
	for _, src := range in.Sources {
		pullRecentSource(ctx, &out, deps, src)
	}
	return out, nil
}

func pullRecentSource(ctx context.Context, env *Envelope, deps Deps, src config.RecentSource) {
	n := env.Meta.NumRecent
	fmt.Fprintf(deps.Out, "Getting %d most recent file(s) from %s on device %s\n", n, src.Dir, env.Meta.Device)

	script := fmt.Sprintf("%s | head -n %d", src.ListCommand, n)
	listing, err := deps.Bridge.Shell(ctx, env.Meta.Device, script)
	if err != nil {
		accumulate(env, deps, pullRecentStage, script, err)
		return
	}
	if listing == "" {
		fmt.Fprintf(deps.Out, "No files found in %s\n", src.Dir)
		return
	}
	for _, name := range strings.Split(listing, "\n") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		remote := src.Dir + "/" + name
		dest := deps.Routes.Resolve(src.Dir, name)
		local := filepath.Join(dest.Dir, name)
		if err := deps.Bridge.Pull(ctx, env.Meta.Device, remote, local); err != nil {
			accumulate(env, deps, pullRecentStage, "pull "+remote, err)
			continue
		}
		fmt.Fprintf(deps.Out, "Pulled %s to %s\n", remote, local)
		env.Artifacts = append(env.Artifacts, manifest.Artifact{
			Category: dest.Category,
			Source:   remote,
			Dest:     deps.Report.Rel(filepath.Join(dest.Dir, path.Base(name))),
		})
	}
}

func init() { Register(pullRecentStage, pullRecentRunner) }
