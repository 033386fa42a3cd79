package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewContextCreatesLayout(t *testing.T) {
	root := t.TempDir()
	now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	c, err := NewContext(filepath.Join(root, "incident_reports"), now)
	if err != nil {
		t.Fatalf("new context: %v", err)
	}
	if c.Timestamp != "01-02-2024_15:04:05" {
		t.Fatalf("unexpected timestamp: %q", c.Timestamp)
	}
	for _, d := range []string{c.Dir, c.ScreenRecordings, c.QGCLogs, c.DeviceInfo, c.NavsuiteLogs} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("missing directory %s: %v", d, err)
		}
	}
	if !strings.HasSuffix(c.ArchivePath(), "QA_bug_report_01-02-2024_15:04:05.zip") {
		t.Fatalf("unexpected archive path: %s", c.ArchivePath())
	}
}

func TestRel(t *testing.T) {
	root := t.TempDir()
	c, err := NewContext(root, time.Now())
	if err != nil {
		t.Fatalf("new context: %v", err)
	}
	got := c.Rel(filepath.Join(c.DeviceInfo, "logcat.txt"))
	if got != filepath.Join(DeviceInfoFolder, "logcat.txt") {
		t.Fatalf("unexpected relative path: %q", got)
	}
}
