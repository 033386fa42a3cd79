package cli

import "strings"

// Version and Date should be set at build time using ldflags, e.g.:
//
//  -ldflags "-X 'github.com/jlh28145/ADB-Bug-Report-Generator/cli.Version=1.2.3' -X 'github.com/jlh28145/ADB-Bug-Report-Generator/cli.Date=2026-08-23'"
var (
	Version string
	Date    string
)

// niceDate replaces dashes with spaces for nicer display.
var niceDate = strings.ReplaceAll(Date, "-", " ")
