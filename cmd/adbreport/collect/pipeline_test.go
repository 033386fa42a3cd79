package collect

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/config"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/prompt"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/report"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/route"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/stage"
)

// scriptedBridge answers device shell commands from a fixed map and
// materializes pulled files locally.
type scriptedBridge struct {
	devices []string
	shell   map[string]string
}

func (b *scriptedBridge) Devices(ctx context.Context) ([]string, error) { return b.devices, nil }

func (b *scriptedBridge) Shell(ctx context.Context, device, script string) (string, error) {
	return b.shell[script], nil
}

func (b *scriptedBridge) Command(ctx context.Context, device string, args ...string) (string, error) {
	return b.shell[strings.Join(args, " ")], nil
}

func (b *scriptedBridge) Pull(ctx context.Context, device, remote, local string) error {
	if info, err := os.Stat(local); err == nil && info.IsDir() {
		local = filepath.Join(local, path.Base(remote))
	}
	return os.WriteFile(local, []byte("pulled"), 0o644)
}

func (b *scriptedBridge) Bugreport(ctx context.Context, device, dest string) error {
	return os.WriteFile(dest, []byte("bundle"), 0o644)
}

func runTestPipeline(t *testing.T, simplified bool, bridge *scriptedBridge) (stage.Envelope, *report.Context) {
	t.Helper()
	rep, err := report.NewContext(filepath.Join(t.TempDir(), "incident_reports"), time.Now())
	if err != nil {
		t.Fatalf("report context: %v", err)
	}
	out := &bytes.Buffer{}
	deps := stage.Deps{
		Bridge: bridge,
		Prompt: prompt.New(strings.NewReader("summary of the incident\n"), out),
		Report: rep,
		Routes: route.ForReport(rep),
		Out:    out,
		Err:    out,
	}
	profile := config.Default()
	env := stage.Envelope{
		Meta:    &stage.Meta{Profile: profile, NumRecent: 5, Simplified: simplified},
		Sources: profile.RecentSources,
	}
	res, err := executePipeline(context.Background(), env, deps)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	return res, rep
}

func archiveNames(t *testing.T, p string) []string {
	t.Helper()
	zr, err := zip.OpenReader(p)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()
	var names []string
	for _, zf := range zr.File {
		names = append(names, zf.Name)
	}
	return names
}

func TestPipelineFullRun(t *testing.T) {
	bridge := &scriptedBridge{
		devices: []string{"emulator-5554"},
		shell: map[string]string{
			"ls -p /sdcard/Movies":   "screen-1.mp4\n.thumbnails/\n",
			"ls -p /sdcard/Pictures": "IMG_1.jpg\n",
			`ls -t /sdcard/Movies | grep "^screen-" | head -n 5`: "screen-1.mp4",
			"shell getprop": "ro.product.model=[Pixel]",
		},
	}
	res, rep := runTestPipeline(t, false, bridge)
	if res.Meta.Device != "emulator-5554" {
		t.Fatalf("unexpected device: %q", res.Meta.Device)
	}
	names := archiveNames(t, rep.ArchivePath())
	joined := strings.Join(names, "\n")
	for _, want := range []string{
		"metadata.txt",
		"manifest.yaml",
		"Movies/screen-1.mp4",
		"Pictures/IMG_1.jpg",
		"Screen Recordings/screen-1.mp4",
		"Device Info/device_info_" + rep.Timestamp + ".txt",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("archive missing %s:\n%s", want, joined)
		}
	}
	if strings.Contains(joined, ".thumbnails") {
		t.Fatalf("thumbnail cache leaked into archive:\n%s", joined)
	}
}

func TestPipelineSimplifiedRun(t *testing.T) {
	bridge := &scriptedBridge{
		devices: []string{"emulator-5554"},
		shell: map[string]string{
			"shell getprop": "ro.product.model=[Pixel]",
		},
	}
	_, rep := runTestPipeline(t, true, bridge)
	names := archiveNames(t, rep.ArchivePath())
	joined := strings.Join(names, "\n")
	if strings.Contains(joined, "Pictures/") || strings.Contains(joined, "Movies/") {
		t.Fatalf("simplified archive must not contain media folders:\n%s", joined)
	}
	for _, want := range []string{"metadata.txt", "Device Info/device_info_" + rep.Timestamp + ".txt"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("archive missing %s:\n%s", want, joined)
		}
	}
}
