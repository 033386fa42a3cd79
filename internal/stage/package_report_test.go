package stage

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/manifest"
)

func archiveEntries(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()
	entries := map[string]string{}
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("open entry: %v", err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry: %v", err)
		}
		entries[zf.Name] = string(b)
	}
	return entries
}

func TestPackageReportArchivesTreeWithMetadata(t *testing.T) {
	env := testEnvelope("dev1")
	env.Meta.Summary = "screen froze during mission upload"
	env.Artifacts = []manifest.Artifact{
		{Category: "device-info", Source: "shell getprop", Dest: "Device Info/device_info.txt"},
	}
	fb := &fakeBridge{}
	h := newHarness(t, fb, "")
	if err := os.WriteFile(filepath.Join(h.report.DeviceInfo, "device_info.txt"), []byte("props"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if _, err := packageReportRunner(context.Background(), env, h.deps); err != nil {
		t.Fatalf("package: %v", err)
	}
	entries := archiveEntries(t, h.report.ArchivePath())
	meta, ok := entries["metadata.txt"]
	if !ok {
		t.Fatalf("metadata.txt missing: %v", entries)
	}
	for _, want := range []string{
		"Incident Summary: screen froze during mission upload",
		"Timestamp: " + h.report.Timestamp,
		"Device: dev1",
	} {
		if !strings.Contains(meta, want) {
			t.Fatalf("metadata missing %q:\n%s", want, meta)
		}
	}
	if _, ok := entries["Device Info/device_info.txt"]; !ok {
		t.Fatalf("collected file missing from archive: %v", entries)
	}
	mf, ok := entries["manifest.yaml"]
	if !ok {
		t.Fatalf("manifest.yaml missing: %v", entries)
	}
	if !strings.Contains(mf, "device: dev1") || !strings.Contains(mf, "category: device-info") {
		t.Fatalf("unexpected manifest:\n%s", mf)
	}
}

func TestPackageReportSimplifiedTreeHasNoMediaFolders(t *testing.T) {
	env := testEnvelope("dev1")
	env.Meta.Simplified = true
	fb := &fakeBridge{shellOut: map[string]string{}, cmdOut: map[string]string{"shell getprop": "x"}}
	h := newHarness(t, fb, "")

	out, err := pullDirectoriesRunner(context.Background(), env, h.deps)
	if err != nil {
		t.Fatalf("pull dirs: %v", err)
	}
	out, err = collectLogsRunner(context.Background(), out, h.deps)
	if err != nil {
		t.Fatalf("collect logs: %v", err)
	}
	if _, err = packageReportRunner(context.Background(), out, h.deps); err != nil {
		t.Fatalf("package: %v", err)
	}
	for name := range archiveEntries(t, h.report.ArchivePath()) {
		if strings.HasPrefix(name, "Pictures/") || strings.HasPrefix(name, "Movies/") {
			t.Fatalf("simplified archive must not contain media folders: %s", name)
		}
	}
	entries := archiveEntries(t, h.report.ArchivePath())
	found := false
	for name := range entries {
		if strings.HasPrefix(name, "Device Info/") {
			found = true
		}
	}
	if !found {
		t.Fatalf("device info logs must still be collected: %v", entries)
	}
}
