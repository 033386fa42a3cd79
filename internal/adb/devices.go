package adb

import "strings"

// liveMarker is the state adb reports for a device ready to accept commands.
const liveMarker = "device"

// ParseDevices extracts device serials from `adb devices` output. The first
// line is the listing header; each remaining line holds a serial followed by
// the device state. Order is preserved.
func ParseDevices(out string) []string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) <= 1 {
		return nil
	}
	var devices []string
	for _, line := range lines[1:] {
		if !strings.Contains(line, liveMarker) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		devices = append(devices, fields[0])
	}
	return devices
}
