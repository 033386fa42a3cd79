// Package route decides where a pulled file lands inside the report tree.
// Routing is an explicit ordered rule table: each rule pairs a predicate over
// (source directory, filename) with a destination; rules are evaluated
// top-to-bottom and the first match wins, falling through to a default
// destination when nothing matches.
package route

import (
	"strings"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/report"
)

// Destination is a resolved routing target.
type Destination struct {
	// Category is a stable label used in the artifact manifest.
	Category string
	// Dir is the local directory files matching the rule are pulled into.
	Dir string
}

// Rule pairs a predicate with a destination.
type Rule struct {
	Match func(dir, name string) bool
	Dest  Destination
}

// Table is an ordered rule list with a fallback destination.
type Table struct {
	Rules    []Rule
	Fallback Destination
}

// Resolve returns the destination for a file pulled from dir.
func (t Table) Resolve(dir, name string) Destination {
	for _, r := range t.Rules {
		if r.Match(dir, name) {
			return r.Dest
		}
	}
	return t.Fallback
}

// ForReport builds the routing table for one report run. Screen recordings
// out of Movies go to their own folder, console logs and navigation logs to
// theirs; anything else lands at the report root.
func ForReport(c *report.Context) Table {
	return Table{
		Rules: []Rule{
			{
				Match: func(dir, name string) bool {
					return strings.Contains(dir, "Movies") && strings.HasPrefix(name, "screen-")
				},
				Dest: Destination{Category: "screen-recording", Dir: c.ScreenRecordings},
			},
			{
				Match: func(dir, name string) bool { return strings.Contains(dir, "ConsoleLogs") },
				Dest:  Destination{Category: "qgc-log", Dir: c.QGCLogs},
			},
			{
				Match: func(dir, name string) bool { return strings.Contains(dir, "Navsuite") },
				Dest:  Destination{Category: "navsuite-log", Dir: c.NavsuiteLogs},
			},
		},
		Fallback: Destination{Category: "file", Dir: c.Dir},
	}
}
