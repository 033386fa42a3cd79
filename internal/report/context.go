// Package report owns the on-disk layout of a single incident report run:
// the timestamped report directory, its fixed subfolders, and the final
// archive path. The context is built once at process start and passed
// explicitly to every stage.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout matches the report naming used by QA tooling downstream.
const TimestampLayout = "01-02-2006_15:04:05"

// Fixed subfolder names inside the report directory.
const (
	ScreenRecordingsFolder = "Screen Recordings"
	QGCLogsFolder          = "QGC Logs"
	DeviceInfoFolder       = "Device Info"
	NavsuiteLogsFolder     = "Navsuite Logs"
)

// Context is the per-run report layout. All paths are absolute or relative to
// the process working directory, created before the pipeline starts and never
// mutated afterwards.
type Context struct {
	Timestamp   string
	IncidentDir string
	Dir         string

	ScreenRecordings string
	QGCLogs          string
	DeviceInfo       string
	NavsuiteLogs     string
}

// NewContext creates the incident directory, the timestamped report directory
// and its subfolders.
func NewContext(incidentDir string, now time.Time) (*Context, error) {
	ts := now.Format(TimestampLayout)
	dir := filepath.Join(incidentDir, "report_"+ts)
	c := &Context{
		Timestamp:        ts,
		IncidentDir:      incidentDir,
		Dir:              dir,
		ScreenRecordings: filepath.Join(dir, ScreenRecordingsFolder),
		QGCLogs:          filepath.Join(dir, QGCLogsFolder),
		DeviceInfo:       filepath.Join(dir, DeviceInfoFolder),
		NavsuiteLogs:     filepath.Join(dir, NavsuiteLogsFolder),
	}
	for _, d := range []string{c.IncidentDir, c.Dir, c.ScreenRecordings, c.QGCLogs, c.DeviceInfo, c.NavsuiteLogs} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create report directory %s: %w", d, err)
		}
	}
	return c, nil
}

// ArchivePath is where the final zip is written. An existing archive of the
// same name is overwritten.
func (c *Context) ArchivePath() string {
	return filepath.Join(c.IncidentDir, "QA_bug_report_"+c.Timestamp+".zip")
}

// Rel converts an absolute destination under the report directory to a path
// relative to the report root, falling back to the input on failure.
func (c *Context) Rel(dest string) string {
	rel, err := filepath.Rel(c.Dir, dest)
	if err != nil {
		return dest
	}
	return rel
}
