package machineuid

import (
	"strings"
	"unicode"
)

// ioregUUIDMarker identifies the device-tree line carrying the hardware UUID
// in `ioreg -rd1 -c IOPlatformExpertDevice` output.
const ioregUUIDMarker = "IOPlatformUUID"

// extractPlatformUUID scans ioreg output line by line, in order, for the
// first line containing the IOPlatformUUID marker. The value is the segment
// after the last "=" on that line, with quotes and whitespace trimmed.
// Returns [ErrUUIDNotFound] when no line carries the marker.
func extractPlatformUUID(output string) (string, error) {
	for line := range strings.SplitSeq(output, "\n") {
		if !strings.Contains(line, ioregUUIDMarker) {
			continue
		}

		value := line
		if idx := strings.LastIndex(line, "="); idx >= 0 {
			value = line[idx+1:]
		}

		return strings.TrimFunc(value, func(c rune) bool {
			return c == '"' || unicode.IsSpace(c)
		}), nil
	}

	return "", ErrUUIDNotFound
}
