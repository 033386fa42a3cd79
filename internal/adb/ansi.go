package adb

import "regexp"

// ansiPattern matches the SGR color sequences some device shells emit.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape sequences from captured command output.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
